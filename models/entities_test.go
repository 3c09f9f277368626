package models

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCategoryFormatting(t *testing.T) {
	c := Category{Description: "Test123"}

	assert.Equal(t, "Category - Test123", c.String())
	assert.Equal(t, "Category(description=Test123)", c.GoString())
	assert.Equal(t, "Category(description=Test123)", fmt.Sprintf("%#v", c))
}

func TestProductFormatting(t *testing.T) {
	p := Product{
		Barcode: "5901234123457",
		Slug:    "mattress",
		ProductFields: ProductFields{
			Title:       "Mattress",
			Description: "Mattress",
			Price:       decimal.RequireFromString("800.724"),
		},
		Category: Category{Description: "Category"},
	}

	assert.Equal(t, "Product - Mattress", p.String())
	assert.Equal(t,
		"Product(barcode=5901234123457,title=Mattress,description=Mattress,price=800.724,category=Category,slug=mattress)",
		p.GoString())
}

func TestPaymentMethodFormatting(t *testing.T) {
	m := PaymentMethod{Description: "Cash"}

	assert.Equal(t, "PaymentMethod - Cash", m.String())
	assert.Equal(t, "PaymentMethod(description=Cash)", m.GoString())
}

func TestPurchaseFormatting(t *testing.T) {
	ts := time.Date(2024, 3, 1, 10, 30, 0, 500000000, time.UTC)
	order := PurchaseOrder{
		ID:        1,
		Timestamp: ts,
		User:      User{Username: "admin"},
		Cart:      true,
	}

	assert.Equal(t, "PurchaseOrder - 1", order.String())
	assert.Equal(t, "PurchaseOrder(id=1,timestamp=2024-03-01 10:30:00.5+00:00,user=admin,cart=true)", order.GoString())

	finalized := PurchaseOrder{ID: 1, Timestamp: ts, User: User{Username: "user12"}, Cart: false}
	assert.Equal(t, "PurchaseOrder - 1", finalized.String())
	assert.Contains(t, finalized.GoString(), ",user=user12,cart=false)")

	item := PurchaseItem{
		ID:              2,
		Barcode:         "5901234123457",
		PurchaseOrderID: 1,
		Quantity:        decimal.NewFromInt(2),
		TotalPrice:      decimal.RequireFromString("1601.448"),
	}
	assert.Equal(t, "PurchaseItem 2 - order 1", item.String())
	assert.Equal(t, "PurchaseItem(id=2,barcode=5901234123457,purchase_order=1,quantity=2,total_price=1601.448)", item.GoString())

	payment := PurchasePaymentMethod{
		ID:              3,
		PurchaseOrderID: 1,
		PaymentMethod:   PaymentMethod{Description: "Card"},
		Value:           decimal.RequireFromString("1601.448"),
	}
	assert.Equal(t, "PurchasePaymentMethod 3 - order 1", payment.String())
	assert.Equal(t, "PurchasePaymentMethod(id=3,purchase_order=1,payment_method=Card,value=1601.448)", payment.GoString())
}

func TestPurchaseItemExpectedTotal(t *testing.T) {
	item := PurchaseItem{
		ProductFields: ProductFields{Price: decimal.RequireFromString("800.724")},
		Quantity:      decimal.RequireFromString("0.5"),
	}
	assert.Equal(t, "400.362", item.ExpectedTotal().String())
}
