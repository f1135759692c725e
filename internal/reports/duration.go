package reports

import (
	"fmt"
	"math"
	"time"

	"github.com/lendifyit/lendify-api/internal/models"
)

// DefaultLoanLimitDays applies when a loan carries no expected duration.
const DefaultLoanLimitDays = 7

func parseDate(s string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DurationDays counts the whole calendar days spanned from start to end,
// with a floor of one: a loan borrowed and returned the same day counts as
// one day.
func DurationDays(start, end time.Time) int {
	diff := truncateToDay(end).Sub(truncateToDay(start))
	if diff < 0 {
		diff = -diff
	}
	days := int(math.Ceil(diff.Hours() / 24))
	if days == 0 {
		return 1
	}
	return days
}

// FormatDuration renders the span between a loan's borrow date and its
// return date (or now, for open loans) as "N Hari". Unparseable dates
// render as "-".
func FormatDuration(borrowDate string, returnDate *string, now time.Time) string {
	start, ok := parseDate(borrowDate)
	if !ok {
		return "-"
	}
	end := now
	if returnDate != nil {
		parsed, ok := parseDate(*returnDate)
		if !ok {
			return "-"
		}
		end = parsed
	}
	return fmt.Sprintf("%d Hari", DurationDays(start, end))
}

// elapsedDays mirrors the overdue rule's day count: raw elapsed time,
// rounded up, without truncating to calendar days.
func elapsedDays(borrow, now time.Time) int {
	diff := now.Sub(borrow)
	if diff < 0 {
		diff = -diff
	}
	return int(math.Ceil(diff.Hours() / 24))
}

// IsOverdue classifies a borrowed loan as overdue when its elapsed days
// exceed the expected duration, or DefaultLoanLimitDays when none was set.
// The classification is recomputed from the current time on every call and
// is never persisted.
func IsOverdue(l models.LoanRecord, now time.Time) bool {
	if l.Status != models.LoanStatusBorrowed {
		return false
	}
	borrow, ok := parseDate(l.BorrowDate)
	if !ok {
		return false
	}
	limit := l.ExpectedDuration
	if limit == 0 {
		limit = DefaultLoanLimitDays
	}
	return elapsedDays(borrow, now) > limit
}

// OverdueLoans filters the borrowed records that are past their limit.
func OverdueLoans(loans []models.LoanRecord, now time.Time) []models.LoanRecord {
	var overdue []models.LoanRecord
	for _, l := range loans {
		if IsOverdue(l, now) {
			overdue = append(overdue, l)
		}
	}
	return overdue
}
