package handlers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/lendifyit/lendify-api/internal/reports"
)

// GetDashboardHandler godoc
// @Summary Dashboard summary
// @Description Active and overdue loan counts, the total physical asset count
// @Description and the active loans grouped by category.
// @Tags reports
// @Produce json
// @Success 200 {object} reports.Dashboard
// @Router /reports/dashboard [get]
func GetDashboardHandler(w http.ResponseWriter, r *http.Request) {
	s := snap.Current()
	dashboard := reports.BuildDashboard(s.Categories, s.Items, s.Loans, time.Now())
	if err := writeJSON(w, http.StatusOK, dashboard); err != nil {
		log.Printf("failed to write JSON response: %v", err)
	}
}

// GetPopularItemsHandler godoc
// @Summary Most borrowed items across all loan history
// @Tags reports
// @Produce json
// @Success 200 {array} reports.ItemCount
// @Router /reports/popular [get]
func GetPopularItemsHandler(w http.ResponseWriter, r *http.Request) {
	s := snap.Current()
	if err := writeJSON(w, http.StatusOK, reports.PopularItems(s.Loans, s.Items, 5)); err != nil {
		log.Printf("failed to write JSON response: %v", err)
	}
}

// GetDailyLoanCountsHandler godoc
// @Summary Loans started per day over a recent window
// @Tags reports
// @Produce json
// @Param days query int false "Window size in days, default 7"
// @Success 200 {array} reports.DayCount
// @Router /reports/daily [get]
func GetDailyLoanCountsHandler(w http.ResponseWriter, r *http.Request) {
	days := 7
	if raw := r.URL.Query().Get("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			http.Error(w, "invalid days window", http.StatusBadRequest)
			return
		}
		days = n
	}

	counts := reports.DailyLoanCounts(snap.Current().Loans, time.Now(), days)
	if err := writeJSON(w, http.StatusOK, counts); err != nil {
		log.Printf("failed to write JSON response: %v", err)
	}
}

// GetCategoryDistributionHandler godoc
// @Summary Stock share per category
// @Description Categories holding no stock are omitted.
// @Tags reports
// @Produce json
// @Success 200 {array} reports.CategoryShare
// @Router /reports/categories [get]
func GetCategoryDistributionHandler(w http.ResponseWriter, r *http.Request) {
	s := snap.Current()
	if err := writeJSON(w, http.StatusOK, reports.CategoryDistribution(s.Categories, s.Items)); err != nil {
		log.Printf("failed to write JSON response: %v", err)
	}
}
