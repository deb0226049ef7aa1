package models

import "time"

// Product represents a catalog entry. Images and Specs are stored as
// JSON columns so the flexible document shape survives the relational
// store; Specs is nullable and stays nil when a product has none.
type Product struct {
	ID          string         `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name        string         `json:"name" gorm:"type:varchar(200);index"`
	Description string         `json:"description"`
	Category    string         `json:"category" gorm:"type:varchar(100);index"`
	Price       float64        `json:"price"`
	Stock       int            `json:"stock"`
	Images      []string       `json:"images" gorm:"serializer:json"`
	Specs       map[string]any `json:"specs" gorm:"serializer:json"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// ProductFilter carries the optional catalog filters. All present
// filters are combined with AND; Search matches name or description
// case-insensitively.
type ProductFilter struct {
	Category string
	MinPrice *float64
	MaxPrice *float64
	Search   string
}

// Pagination describes one page of a filtered catalog listing.
// Pages is always ceil(Total/Limit).
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

// ProductPage is the envelope returned by the catalog listing.
type ProductPage struct {
	Products   []Product  `json:"products"`
	Pagination Pagination `json:"pagination"`
}

// CreateProductRequest is the admin product creation payload. Price is
// a pointer so a zero price still satisfies the required check.
type CreateProductRequest struct {
	Name        string         `json:"name" validate:"required,min=2,max=200"`
	Description string         `json:"description" validate:"required"`
	Category    string         `json:"category" validate:"required"`
	Price       *float64       `json:"price" validate:"required,gte=0"`
	Stock       *int           `json:"stock" validate:"omitempty,gte=0"`
	Images      []string       `json:"images"`
	Specs       map[string]any `json:"specs"`
}

// UpdateProductRequest is a partial update; only non-nil fields are
// merged into the existing product.
type UpdateProductRequest struct {
	Name        *string        `json:"name" validate:"omitempty,min=2,max=200"`
	Description *string        `json:"description"`
	Category    *string        `json:"category"`
	Price       *float64       `json:"price" validate:"omitempty,gte=0"`
	Stock       *int           `json:"stock" validate:"omitempty,gte=0"`
	Images      []string       `json:"images"`
	Specs       map[string]any `json:"specs"`
}
