package handlers

import (
	"strings"
	"time"
)

type ValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateItem(req ItemRequest) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, ValidationError{Field: "Name", Description: "Name is required"})
	}
	if strings.TrimSpace(req.Description) == "" {
		errs = append(errs, ValidationError{Field: "Description", Description: "Description is required"})
	}
	if req.Quantity < 0 {
		errs = append(errs, ValidationError{Field: "Quantity", Description: "Quantity cannot be negative"})
	}
	if req.PurchaseDate != "" {
		if _, err := time.Parse("2006-01-02", req.PurchaseDate); err != nil {
			errs = append(errs, ValidationError{Field: "PurchaseDate", Description: "Purchase date must be YYYY-MM-DD"})
		}
	}
	return errs
}

func validateBorrow(req BorrowRequest) []ValidationError {
	errs := []ValidationError{}
	if req.BorrowerID == 0 {
		errs = append(errs, ValidationError{Field: "BorrowerID", Description: "A borrower must be selected"})
	}
	if strings.TrimSpace(req.Purpose) == "" {
		errs = append(errs, ValidationError{Field: "Purpose", Description: "Purpose is required"})
	}
	if req.Duration < 1 {
		errs = append(errs, ValidationError{Field: "Duration", Description: "Duration must be at least one day"})
	}
	return errs
}

func validateAdmin(req AdminRequest, requirePassword bool) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(req.Username) == "" {
		errs = append(errs, ValidationError{Field: "Username", Description: "Username is required"})
	}
	if requirePassword && req.Password == "" {
		errs = append(errs, ValidationError{Field: "Password", Description: "Password is required for a new admin"})
	}
	return errs
}
