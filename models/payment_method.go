package models

import "fmt"

// PaymentMethod is a way of paying for an order, such as cash or card.
// It cannot be deleted while a purchase still references it.
type PaymentMethod struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Description string `gorm:"size:50;uniqueIndex;not null" json:"description" validate:"required,max=50"`
}

func (m *PaymentMethod) TableName() string {
	return "payment_methods"
}

func (m PaymentMethod) String() string {
	return "PaymentMethod - " + m.Description
}

func (m PaymentMethod) GoString() string {
	return fmt.Sprintf("PaymentMethod(description=%s)", m.Description)
}

func (m *PaymentMethod) Validate() error {
	return validateStruct(m)
}
