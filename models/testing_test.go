package models

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory database with every table migrated.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, db.AutoMigrate(
		&User{},
		&Category{},
		&Product{},
		&PaymentMethod{},
		&PurchaseOrder{},
		&PurchaseItem{},
		&PurchasePaymentMethod{},
	))
	return db
}

func seedCategory(t *testing.T, db *gorm.DB, description string) *Category {
	t.Helper()
	c := &Category{Description: description}
	require.NoError(t, NewCategoriesRepository(db).CreateCategory(context.Background(), c))
	return c
}

func seedUser(t *testing.T, db *gorm.DB, username string) *User {
	t.Helper()
	u := &User{Username: username}
	require.NoError(t, NewUsersRepository(db).CreateUser(context.Background(), u))
	return u
}

func seedOrder(t *testing.T, db *gorm.DB, userID uint) *PurchaseOrder {
	t.Helper()
	o := &PurchaseOrder{Timestamp: time.Now(), UserID: userID, Cart: true}
	require.NoError(t, NewPurchasesRepository(db).CreatePurchaseOrder(context.Background(), o))
	return o
}

func newProduct(barcode, title string, categoryID uint, price string) *Product {
	return &Product{
		Barcode: barcode,
		ProductFields: ProductFields{
			Title:       title,
			Description: title,
			Price:       decimal.RequireFromString(price),
		},
		CategoryID: categoryID,
	}
}
