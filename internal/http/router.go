package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/lendifyit/lendify-api/internal/http/handlers"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	r.With(LoginRateLimit).Post("/login", handlers.LoginHandler)

	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware)

		r.Post("/logout", handlers.LogoutHandler)
		r.Get("/session", handlers.SessionHandler)

		r.Get("/admins", handlers.GetAdminsHandler)
		r.Post("/admins", handlers.CreateAdminHandler)
		r.Put("/admins/{id}", handlers.UpdateAdminHandler)
		r.Delete("/admins/{id}", handlers.DeleteAdminHandler)

		r.Get("/categories", handlers.GetCategoriesHandler)
		r.Post("/categories", handlers.CreateCategoryHandler)
		r.Delete("/categories/{id}", handlers.DeleteCategoryHandler)

		r.Get("/items", handlers.GetItemsHandler)
		r.Post("/items", handlers.CreateItemHandler)
		r.Get("/items/export", handlers.ExportItemsHandler)
		r.Get("/items/{id}", handlers.GetItemByIDHandler)
		r.Put("/items/{id}", handlers.UpdateItemHandler)
		r.Delete("/items/{id}", handlers.DeleteItemHandler)
		r.Get("/items/{id}/history", handlers.GetItemHistoryHandler)

		r.Get("/units", handlers.GetUnitsHandler)
		r.Post("/units", handlers.CreateUnitHandler)
		r.Delete("/units/{id}", handlers.DeleteUnitHandler)
		r.Post("/units/import", handlers.ImportUnitsHandler)

		r.Get("/borrowers", handlers.GetBorrowersHandler)
		r.Post("/borrowers", handlers.CreateBorrowerHandler)
		r.Delete("/borrowers/{id}", handlers.DeleteBorrowerHandler)
		r.Get("/borrowers/{id}/history", handlers.GetBorrowerHistoryHandler)
		r.Post("/borrowers/import", handlers.ImportBorrowersHandler)

		r.Get("/loans", handlers.GetLoansHandler)
		r.Post("/loans", handlers.BorrowItemHandler)
		r.Post("/loans/{id}/return", handlers.ReturnLoanHandler)

		r.Get("/reports/dashboard", handlers.GetDashboardHandler)
		r.Get("/reports/popular", handlers.GetPopularItemsHandler)
		r.Get("/reports/daily", handlers.GetDailyLoanCountsHandler)
		r.Get("/reports/categories", handlers.GetCategoryDistributionHandler)
	})

	return r
}
