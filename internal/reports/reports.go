// Package reports contains the derived-view computations: pure functions
// over a snapshot of the collections. Nothing here mutates state or talks
// to the store.
package reports

import (
	"sort"
	"strings"
	"time"

	"github.com/lendifyit/lendify-api/internal/models"
)

// FilterItems keeps items whose name or description contains the search
// term case-insensitively and which belong to the selected category.
// categoryID 0 means all categories.
func FilterItems(items []models.Item, search string, categoryID int) []models.Item {
	term := strings.ToLower(strings.TrimSpace(search))
	var out []models.Item
	for _, it := range items {
		if term != "" &&
			!strings.Contains(strings.ToLower(it.Name), term) &&
			!strings.Contains(strings.ToLower(it.Description), term) {
			continue
		}
		if categoryID != 0 && it.CategoryID != categoryID {
			continue
		}
		out = append(out, it)
	}
	return out
}

// Item sort fields accepted by SortItems. Anything else falls back to name.
const (
	SortByName         = "name"
	SortByPurchaseDate = "purchase_date"
	SortByQuantity     = "quantity"
)

// SortItems returns a sorted copy. String fields compare case-insensitively
// and ties keep their input order.
func SortItems(items []models.Item, field string, descending bool) []models.Item {
	out := make([]models.Item, len(items))
	copy(out, items)

	less := func(a, b models.Item) bool {
		switch field {
		case SortByQuantity:
			return a.Quantity < b.Quantity
		case SortByPurchaseDate:
			return a.PurchaseDate < b.PurchaseDate
		default:
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if descending {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}

// ItemCount is one row of the popularity ranking.
type ItemCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// PopularItems counts loan records per item across all history, including
// returned loans, and reports the top n by count descending. Loans whose
// item no longer exists are skipped.
func PopularItems(loans []models.LoanRecord, items []models.Item, n int) []ItemCount {
	counts := make(map[int]int)
	for _, l := range loans {
		counts[l.ItemID]++
	}

	var ranked []ItemCount
	for _, it := range items {
		if c, ok := counts[it.ID]; ok {
			ranked = append(ranked, ItemCount{Name: it.Name, Count: c})
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// DayCount is the number of loans created on one calendar day.
type DayCount struct {
	Date  string `json:"date"` // 2006-01-02
	Count int    `json:"count"`
}

// DailyLoanCounts reports, for each of the last days calendar days ending
// at today inclusive, how many loan records were created on that day. A
// record matches by string prefix of its borrow date.
func DailyLoanCounts(loans []models.LoanRecord, today time.Time, days int) []DayCount {
	out := make([]DayCount, 0, days)
	for i := days - 1; i >= 0; i-- {
		date := today.AddDate(0, 0, -i).Format("2006-01-02")
		count := 0
		for _, l := range loans {
			if strings.HasPrefix(l.BorrowDate, date) {
				count++
			}
		}
		out = append(out, DayCount{Date: date, Count: count})
	}
	return out
}

// CategoryShare is one slice of a distribution chart.
type CategoryShare struct {
	Name    string `json:"name"`
	Count   int    `json:"count"`
	Percent int    `json:"percent"`
}

// CategoryDistribution counts items per category and attaches each
// category's rounded share of the total. Categories with no items are
// omitted.
func CategoryDistribution(categories []models.Category, items []models.Item) []CategoryShare {
	total := 0
	perCategory := make(map[int]int)
	for _, it := range items {
		perCategory[it.CategoryID]++
		total++
	}
	if total == 0 {
		return nil
	}

	var shares []CategoryShare
	for _, cat := range categories {
		count := perCategory[cat.ID]
		if count == 0 {
			continue
		}
		shares = append(shares, CategoryShare{
			Name:    cat.Name,
			Count:   count,
			Percent: int(float64(count)/float64(total)*100 + 0.5),
		})
	}
	return shares
}

// ActiveLoans filters the records still out on loan.
func ActiveLoans(loans []models.LoanRecord) []models.LoanRecord {
	var active []models.LoanRecord
	for _, l := range loans {
		if l.Status == models.LoanStatusBorrowed {
			active = append(active, l)
		}
	}
	return active
}

// OverdueEntry is one row of the dashboard's needs-action list.
type OverdueEntry struct {
	LoanID       int    `json:"loan_id"`
	ItemName     string `json:"item_name"`
	BorrowerName string `json:"borrower_name"`
	BorrowDate   string `json:"borrow_date"`
	Duration     string `json:"duration"`
}

// Dashboard aggregates the loan analytics view.
type Dashboard struct {
	ActiveCount         int             `json:"active_count"`
	OverdueCount        int             `json:"overdue_count"`
	TotalPhysicalAssets int             `json:"total_physical_assets"`
	ActiveByCategory    []CategoryShare `json:"active_by_category"`
	Overdue             []OverdueEntry  `json:"overdue"`
}

// BuildDashboard computes the dashboard numbers from one snapshot of the
// collections. Total physical assets is the stock currently on the shelf
// plus every unit out on loan.
func BuildDashboard(
	categories []models.Category,
	items []models.Item,
	loans []models.LoanRecord,
	now time.Time,
) Dashboard {
	active := ActiveLoans(loans)
	overdue := OverdueLoans(loans, now)

	stock := 0
	for _, it := range items {
		stock += it.Quantity
	}

	entries := make([]OverdueEntry, 0, len(overdue))
	for _, l := range overdue {
		entries = append(entries, OverdueEntry{
			LoanID:       l.ID,
			ItemName:     l.ItemName,
			BorrowerName: l.BorrowerName,
			BorrowDate:   l.BorrowDate,
			Duration:     FormatDuration(l.BorrowDate, nil, now),
		})
	}

	return Dashboard{
		ActiveCount:         len(active),
		OverdueCount:        len(overdue),
		TotalPhysicalAssets: stock + len(active),
		ActiveByCategory:    activeLoanCategories(categories, items, active),
		Overdue:             entries,
	}
}

// activeLoanCategories distributes the active loans across the categories
// their items belong to.
func activeLoanCategories(categories []models.Category, items []models.Item, active []models.LoanRecord) []CategoryShare {
	itemCategory := make(map[int]int, len(items))
	for _, it := range items {
		itemCategory[it.ID] = it.CategoryID
	}

	total := 0
	perCategory := make(map[int]int)
	for _, l := range active {
		catID, ok := itemCategory[l.ItemID]
		if !ok {
			continue
		}
		perCategory[catID]++
		total++
	}
	if total == 0 {
		return nil
	}

	var shares []CategoryShare
	for _, cat := range categories {
		count := perCategory[cat.ID]
		if count == 0 {
			continue
		}
		shares = append(shares, CategoryShare{
			Name:    cat.Name,
			Count:   count,
			Percent: int(float64(count)/float64(total)*100 + 0.5),
		})
	}
	return shares
}
