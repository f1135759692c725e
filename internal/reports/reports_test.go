package reports

import (
	"testing"
	"time"

	"github.com/lendifyit/lendify-api/internal/models"
)

func date(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestFormatDuration(t *testing.T) {
	now := date("2026-03-10T15:00:00Z")

	tests := []struct {
		name       string
		borrowDate string
		returnDate string
		expected   string
	}{
		{
			name:       "same day counts as one",
			borrowDate: "2026-03-10T09:00:00Z",
			returnDate: "2026-03-10T17:00:00Z",
			expected:   "1 Hari",
		},
		{
			name:       "three calendar days",
			borrowDate: "2026-03-01T09:00:00Z",
			returnDate: "2026-03-04T08:00:00Z",
			expected:   "3 Hari",
		},
		{
			name:       "open loan measures against now",
			borrowDate: "2026-03-08T09:00:00Z",
			expected:   "2 Hari",
		},
		{
			name:       "unparseable borrow date renders dash",
			borrowDate: "not-a-date",
			expected:   "-",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ret *string
			if tt.returnDate != "" {
				ret = &tt.returnDate
			}
			if got := FormatDuration(tt.borrowDate, ret, now); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestIsOverdue(t *testing.T) {
	tests := []struct {
		name     string
		loan     models.LoanRecord
		now      time.Time
		expected bool
	}{
		{
			name: "five day limit exceeded after six days",
			loan: models.LoanRecord{
				BorrowDate:       "2026-03-01T10:00:00Z",
				Status:           models.LoanStatusBorrowed,
				ExpectedDuration: 5,
			},
			now:      date("2026-03-07T10:00:01Z"),
			expected: true,
		},
		{
			name: "five day limit not exceeded after four days",
			loan: models.LoanRecord{
				BorrowDate:       "2026-03-01T10:00:00Z",
				Status:           models.LoanStatusBorrowed,
				ExpectedDuration: 5,
			},
			now:      date("2026-03-05T10:00:00Z"),
			expected: false,
		},
		{
			name: "default limit applies when no duration set",
			loan: models.LoanRecord{
				BorrowDate: "2026-03-01T10:00:00Z",
				Status:     models.LoanStatusBorrowed,
			},
			now:      date("2026-03-09T10:00:01Z"),
			expected: true,
		},
		{
			name: "returned loan is never overdue",
			loan: models.LoanRecord{
				BorrowDate:       "2026-01-01T10:00:00Z",
				Status:           models.LoanStatusReturned,
				ExpectedDuration: 1,
			},
			now:      date("2026-03-09T10:00:00Z"),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsOverdue(tt.loan, tt.now); got != tt.expected {
				t.Errorf("expected overdue=%v, got %v", tt.expected, got)
			}
		})
	}
}

func TestFilterItems(t *testing.T) {
	items := []models.Item{
		{ID: 1, Name: "ThinkPad X1", Description: "Development laptop", CategoryID: 1},
		{ID: 2, Name: "Dell Monitor", Description: "27 inch display", CategoryID: 2},
		{ID: 3, Name: "HDMI Cable", Description: "Connects a laptop to a display", CategoryID: 3},
	}

	t.Run("search matches name case-insensitively", func(t *testing.T) {
		got := FilterItems(items, "thinkpad", 0)
		if len(got) != 1 || got[0].ID != 1 {
			t.Errorf("expected only item 1, got %v", got)
		}
	})

	t.Run("search matches description too", func(t *testing.T) {
		got := FilterItems(items, "laptop", 0)
		if len(got) != 2 {
			t.Errorf("expected two matches, got %d", len(got))
		}
	})

	t.Run("category narrows the search", func(t *testing.T) {
		got := FilterItems(items, "laptop", 3)
		if len(got) != 1 || got[0].ID != 3 {
			t.Errorf("expected only item 3, got %v", got)
		}
	})

	t.Run("category zero means all", func(t *testing.T) {
		if got := FilterItems(items, "", 0); len(got) != 3 {
			t.Errorf("expected all three items, got %d", len(got))
		}
	})
}

func TestSortItems(t *testing.T) {
	items := []models.Item{
		{ID: 1, Name: "banana stand", Quantity: 3, PurchaseDate: "2025-06-01"},
		{ID: 2, Name: "Apple TV", Quantity: 7, PurchaseDate: "2024-01-15"},
		{ID: 3, Name: "cable", Quantity: 3, PurchaseDate: "2026-02-20"},
	}

	t.Run("by name ascending ignores case", func(t *testing.T) {
		got := SortItems(items, SortByName, false)
		if got[0].ID != 2 || got[1].ID != 1 || got[2].ID != 3 {
			t.Errorf("unexpected order: %v", got)
		}
	})

	t.Run("by purchase date descending", func(t *testing.T) {
		got := SortItems(items, SortByPurchaseDate, true)
		if got[0].ID != 3 || got[2].ID != 2 {
			t.Errorf("unexpected order: %v", got)
		}
	})

	t.Run("equal quantities keep input order", func(t *testing.T) {
		got := SortItems(items, SortByQuantity, false)
		if got[0].ID != 1 || got[1].ID != 3 || got[2].ID != 2 {
			t.Errorf("unexpected order: %v", got)
		}
	})

	t.Run("input slice is not mutated", func(t *testing.T) {
		SortItems(items, SortByQuantity, true)
		if items[0].ID != 1 {
			t.Errorf("input slice was reordered: %v", items)
		}
	})
}

func TestPopularItems(t *testing.T) {
	items := []models.Item{
		{ID: 1, Name: "Laptop"},
		{ID: 2, Name: "Monitor"},
		{ID: 3, Name: "Cable"},
	}
	var loans []models.LoanRecord
	addLoans := func(itemID, n int, status string) {
		for i := 0; i < n; i++ {
			loans = append(loans, models.LoanRecord{ItemID: itemID, Status: status})
		}
	}
	addLoans(1, 3, models.LoanStatusReturned)
	addLoans(2, 5, models.LoanStatusBorrowed)
	addLoans(3, 1, models.LoanStatusReturned)
	// A loan whose item was deleted afterwards.
	addLoans(99, 4, models.LoanStatusReturned)

	got := PopularItems(loans, items, 2)
	if len(got) != 2 {
		t.Fatalf("expected top 2, got %d entries", len(got))
	}
	if got[0].Name != "Monitor" || got[0].Count != 5 {
		t.Errorf("expected Monitor with 5 loans first, got %+v", got[0])
	}
	if got[1].Name != "Laptop" || got[1].Count != 3 {
		t.Errorf("expected Laptop with 3 loans second, got %+v", got[1])
	}
}

func TestDailyLoanCounts(t *testing.T) {
	today := date("2026-03-10T12:00:00Z")
	loans := []models.LoanRecord{
		{BorrowDate: "2026-03-10T09:00:00Z"},
		{BorrowDate: "2026-03-10T16:00:00Z"},
		{BorrowDate: "2026-03-08T09:00:00Z"},
		{BorrowDate: "2026-02-01T09:00:00Z"}, // outside the window
	}

	got := DailyLoanCounts(loans, today, 7)
	if len(got) != 7 {
		t.Fatalf("expected 7 days, got %d", len(got))
	}
	if got[0].Date != "2026-03-04" {
		t.Errorf("expected window to start at 2026-03-04, got %s", got[0].Date)
	}
	if got[6].Date != "2026-03-10" || got[6].Count != 2 {
		t.Errorf("expected 2 loans on 2026-03-10, got %+v", got[6])
	}
	if got[4].Date != "2026-03-08" || got[4].Count != 1 {
		t.Errorf("expected 1 loan on 2026-03-08, got %+v", got[4])
	}
	if got[5].Count != 0 {
		t.Errorf("expected 0 loans on 2026-03-09, got %d", got[5].Count)
	}
}

func TestCategoryDistribution(t *testing.T) {
	categories := []models.Category{
		{ID: 1, Name: "Laptop"},
		{ID: 2, Name: "Monitor"},
		{ID: 3, Name: "Lainnya"},
	}
	items := []models.Item{
		{ID: 1, CategoryID: 1},
		{ID: 2, CategoryID: 1},
		{ID: 3, CategoryID: 1},
		{ID: 4, CategoryID: 2},
	}

	got := CategoryDistribution(categories, items)
	if len(got) != 2 {
		t.Fatalf("expected empty category to be omitted, got %d entries", len(got))
	}
	if got[0].Name != "Laptop" || got[0].Count != 3 || got[0].Percent != 75 {
		t.Errorf("unexpected first share: %+v", got[0])
	}
	if got[1].Name != "Monitor" || got[1].Count != 1 || got[1].Percent != 25 {
		t.Errorf("unexpected second share: %+v", got[1])
	}

	if CategoryDistribution(categories, nil) != nil {
		t.Error("expected nil distribution with no items")
	}
}

func TestBuildDashboard(t *testing.T) {
	now := date("2026-03-10T12:00:00Z")
	categories := []models.Category{{ID: 1, Name: "Laptop"}, {ID: 2, Name: "Monitor"}}
	items := []models.Item{
		{ID: 1, Name: "ThinkPad", CategoryID: 1, Quantity: 2},
		{ID: 2, Name: "Dell U2723", CategoryID: 2, Quantity: 5},
	}
	loans := []models.LoanRecord{
		{ID: 1, ItemID: 1, ItemName: "ThinkPad", BorrowerName: "Budi",
			BorrowDate: "2026-03-01T09:00:00Z", Status: models.LoanStatusBorrowed},
		{ID: 2, ItemID: 2, ItemName: "Dell U2723", BorrowerName: "Sari",
			BorrowDate: "2026-03-09T09:00:00Z", Status: models.LoanStatusBorrowed},
		{ID: 3, ItemID: 1, ItemName: "ThinkPad", BorrowerName: "Andi",
			BorrowDate: "2026-02-01T09:00:00Z", Status: models.LoanStatusReturned},
	}

	d := BuildDashboard(categories, items, loans, now)

	if d.ActiveCount != 2 {
		t.Errorf("expected 2 active loans, got %d", d.ActiveCount)
	}
	if d.OverdueCount != 1 {
		t.Errorf("expected 1 overdue loan, got %d", d.OverdueCount)
	}
	if d.TotalPhysicalAssets != 9 {
		t.Errorf("expected 9 physical assets (7 in stock + 2 on loan), got %d", d.TotalPhysicalAssets)
	}
	if len(d.Overdue) != 1 || d.Overdue[0].LoanID != 1 {
		t.Fatalf("expected loan 1 in the overdue list, got %+v", d.Overdue)
	}
	if d.Overdue[0].BorrowerName != "Budi" {
		t.Errorf("expected borrower Budi, got %s", d.Overdue[0].BorrowerName)
	}
	if len(d.ActiveByCategory) != 2 {
		t.Errorf("expected both categories in the active distribution, got %+v", d.ActiveByCategory)
	}
}
