// Package seed populates reference data the first time the application sees
// an empty database.
package seed

import (
	"fmt"

	"github.com/lendifyit/lendify-api/internal/models"
	"github.com/lendifyit/lendify-api/internal/repo"
	"github.com/lendifyit/lendify-api/internal/snapshot"
)

const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "password"
)

var initialCategories = []string{
	"Laptop",
	"Peripherals",
	"Kabel & Adaptor",
	"Monitor",
	"Lainnya",
}

var initialUnits = []string{
	"IT Development",
	"Human Resources",
	"Finance",
	"Marketing",
}

// Run seeds categories, units and a default admin when both the categories
// and items collections are empty, then reloads the snapshot. The only
// guard is the emptiness check.
func Run(
	snap *snapshot.Store,
	categories repo.CategoryRepository,
	units repo.UnitRepository,
	admins repo.AdminRepository,
) (bool, error) {
	current := snap.Current()
	if len(current.Categories) > 0 || len(current.Items) > 0 {
		return false, nil
	}

	for _, name := range initialCategories {
		if _, err := categories.Create(models.Category{Name: name}); err != nil {
			return false, fmt.Errorf("seed category %q: %w", name, err)
		}
	}
	for _, name := range initialUnits {
		if _, err := units.Create(models.Unit{Name: name}); err != nil {
			return false, fmt.Errorf("seed unit %q: %w", name, err)
		}
	}

	if len(current.Admins) == 0 {
		admin := models.Admin{Username: DefaultAdminUsername, Password: DefaultAdminPassword}
		if _, err := admins.Create(admin); err != nil {
			return false, fmt.Errorf("seed default admin: %w", err)
		}
	}

	if err := snap.Reload(); err != nil {
		return true, err
	}
	return true, nil
}
