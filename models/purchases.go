package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TimestampLayout is how order timestamps are rendered in diagnostics.
const TimestampLayout = "2006-01-02 15:04:05.999999-07:00"

// PurchaseOrder groups the items and payments of a single checkout.
// Cart is true while the basket is still open and false once the order is finalized.
type PurchaseOrder struct {
	ID        uint                    `gorm:"primaryKey" json:"id"`
	Timestamp time.Time               `gorm:"not null" json:"timestamp" validate:"required"`
	UserID    uint                    `gorm:"not null;index" json:"user_id" validate:"required"`
	User      User                    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-" validate:"-"`
	Cart      bool                    `gorm:"not null" json:"cart"`
	Items     []PurchaseItem          `gorm:"foreignKey:PurchaseOrderID;constraint:OnDelete:CASCADE" json:"items,omitempty" validate:"-"`
	Payments  []PurchasePaymentMethod `gorm:"foreignKey:PurchaseOrderID;constraint:OnDelete:CASCADE" json:"payments,omitempty" validate:"-"`
}

func (o *PurchaseOrder) TableName() string {
	return "purchase_orders"
}

func (o PurchaseOrder) String() string {
	return fmt.Sprintf("PurchaseOrder - %d", o.ID)
}

func (o PurchaseOrder) GoString() string {
	return fmt.Sprintf("PurchaseOrder(id=%d,timestamp=%s,user=%s,cart=%t)",
		o.ID,
		o.Timestamp.Format(TimestampLayout),
		o.User,
		o.Cart,
	)
}

func (o *PurchaseOrder) Validate() error {
	return validateStruct(o)
}

// PurchaseItem is a product line of a purchase order.
// The barcode is copied from the product at purchase time and is not a foreign key,
// so the line survives later catalog edits.
type PurchaseItem struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Barcode string `gorm:"size:20;not null" json:"barcode" validate:"required,max=20"`
	ProductFields
	PurchaseOrderID uint            `gorm:"not null;index" json:"purchase_order_id" validate:"required"`
	PurchaseOrder   PurchaseOrder   `gorm:"foreignKey:PurchaseOrderID;constraint:OnDelete:CASCADE" json:"-" validate:"-"`
	Quantity        decimal.Decimal `gorm:"type:decimal(8,3);not null" json:"quantity" validate:"decimal,positive"`
	TotalPrice      decimal.Decimal `gorm:"type:decimal(8,3);not null" json:"total_price" validate:"decimal,nonnegative"`
	CategoryID      uint            `gorm:"not null;index" json:"category_id" validate:"required"`
	Category        Category        `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"-" validate:"-"`
}

func (i *PurchaseItem) TableName() string {
	return "purchase_items"
}

func (i PurchaseItem) String() string {
	return fmt.Sprintf("PurchaseItem %d - order %d", i.ID, i.PurchaseOrderID)
}

func (i PurchaseItem) GoString() string {
	return fmt.Sprintf("PurchaseItem(id=%d,barcode=%s,purchase_order=%d,quantity=%s,total_price=%s)",
		i.ID,
		i.Barcode,
		i.PurchaseOrderID,
		i.Quantity.String(),
		i.TotalPrice.String(),
	)
}

// ExpectedTotal is quantity times unit price at the stored precision.
func (i PurchaseItem) ExpectedTotal() decimal.Decimal {
	return i.Quantity.Mul(i.Price).Round(3)
}

func (i *PurchaseItem) Validate() error {
	return validateStruct(i)
}

// PurchasePaymentMethod records how much of an order was paid with a given method.
type PurchasePaymentMethod struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	PurchaseOrderID uint            `gorm:"not null;index" json:"purchase_order_id" validate:"required"`
	PurchaseOrder   PurchaseOrder   `gorm:"foreignKey:PurchaseOrderID;constraint:OnDelete:CASCADE" json:"-" validate:"-"`
	PaymentMethodID uint            `gorm:"not null;index" json:"payment_method_id" validate:"required"`
	PaymentMethod   PaymentMethod   `gorm:"foreignKey:PaymentMethodID;constraint:OnDelete:RESTRICT" json:"payment_method" validate:"-"`
	Value           decimal.Decimal `gorm:"type:decimal(8,3);not null" json:"value" validate:"decimal,nonnegative"`
}

func (p *PurchasePaymentMethod) TableName() string {
	return "purchase_payment_methods"
}

func (p PurchasePaymentMethod) String() string {
	return fmt.Sprintf("PurchasePaymentMethod %d - order %d", p.ID, p.PurchaseOrderID)
}

func (p PurchasePaymentMethod) GoString() string {
	return fmt.Sprintf("PurchasePaymentMethod(id=%d,purchase_order=%d,payment_method=%s,value=%s)",
		p.ID,
		p.PurchaseOrderID,
		p.PaymentMethod.Description,
		p.Value.String(),
	)
}

func (p *PurchasePaymentMethod) Validate() error {
	return validateStruct(p)
}
