package model

import "time"

// Product is a vendor-owned catalog entry.
type Product struct {
	ID          int64
	VendorID    int64
	CategoryID  int64
	Name        string
	Description string
	Price       float64
	Stock       int
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
