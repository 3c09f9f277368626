package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ProductFields holds the columns shared by catalog products and purchased items.
// Each owner declares its own barcode and category since their key semantics differ.
type ProductFields struct {
	Title       string          `gorm:"type:text;not null" json:"title" validate:"required"`
	Description string          `gorm:"type:text;not null" json:"description"`
	Image       string          `gorm:"size:255" json:"image" validate:"max=255"`
	Price       decimal.Decimal `gorm:"type:decimal(8,3);not null" json:"price" validate:"decimal,nonnegative"`
}

// Product represents a product in the catalog.
// It is keyed by barcode and addressed in URLs by its slug.
type Product struct {
	Barcode string `gorm:"primaryKey;size:20" json:"barcode" validate:"required,max=20"`
	Slug    string `gorm:"size:50;uniqueIndex;not null" json:"slug" validate:"omitempty,max=50,slug"`
	ProductFields
	CategoryID uint     `gorm:"not null;index" json:"category_id" validate:"required"`
	Category   Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"category" validate:"-"`
}

func (p *Product) TableName() string {
	return "products"
}

func (p Product) String() string {
	return "Product - " + p.Title
}

func (p Product) GoString() string {
	return fmt.Sprintf("Product(barcode=%s,title=%s,description=%s,price=%s,category=%s,slug=%s)",
		p.Barcode,
		p.Title,
		p.Description,
		p.Price.String(),
		p.Category.Description,
		p.Slug,
	)
}

// Validate checks the product before it is persisted.
func (p *Product) Validate() error {
	return validateStruct(p)
}
