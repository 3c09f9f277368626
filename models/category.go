package models

import "fmt"

// Category represents a product category.
// Products and purchased items reference it; deleting a category removes both.
type Category struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Description string `gorm:"size:50;not null" json:"description" validate:"required,max=50"`
}

func (c *Category) TableName() string {
	return "categories"
}

func (c Category) String() string {
	return "Category - " + c.Description
}

func (c Category) GoString() string {
	return fmt.Sprintf("Category(description=%s)", c.Description)
}

// Validate checks the category before it is persisted.
func (c *Category) Validate() error {
	return validateStruct(c)
}
