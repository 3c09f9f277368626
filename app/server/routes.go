package server

import (
	"log/slog"
	"net/http"

	"gorm.io/gorm"

	"github.com/Radmir1876/Zadaniedek1/app/api"
	"github.com/Radmir1876/Zadaniedek1/app/catalog"
	"github.com/Radmir1876/Zadaniedek1/app/categories"
	"github.com/Radmir1876/Zadaniedek1/app/middleware"
	"github.com/Radmir1876/Zadaniedek1/app/payments"
	"github.com/Radmir1876/Zadaniedek1/app/purchases"
	"github.com/Radmir1876/Zadaniedek1/models"
)

// NewHandler wires the repositories and HTTP handlers of the shop onto one mux.
func NewHandler(db *gorm.DB, slugs models.SlugGenerator, logger *slog.Logger) http.Handler {
	cat := categories.NewCategoryHandler(models.NewCategoriesRepository(db))
	prod := catalog.NewCatalogHandler(models.NewProductsRepository(db, slugs))
	pay := payments.NewPaymentMethodHandler(models.NewPaymentMethodsRepository(db))
	pur := purchases.NewPurchaseHandler(models.NewPurchasesRepository(db))

	mux := http.NewServeMux()

	// Management
	mux.HandleFunc("GET /manager/categories", cat.HandleGetAll)
	mux.HandleFunc("GET /manager/categories/{id}", cat.HandleGet)
	mux.HandleFunc("PUT /manager/categories/{id}", cat.HandleEdit)
	mux.HandleFunc("GET /manager/categories/{id}/delete", cat.HandleConfirmDelete)
	mux.HandleFunc("POST /manager/categories/{id}/delete", cat.HandleDelete)

	mux.HandleFunc("GET /manager/products", prod.HandleGet)
	mux.HandleFunc("GET /manager/products/{slug}", prod.HandleGetProduct)
	mux.HandleFunc("PUT /manager/products/{slug}", prod.HandleEdit)
	mux.HandleFunc("GET /manager/products/{slug}/delete", prod.HandleConfirmDelete)
	mux.HandleFunc("POST /manager/products/{slug}/delete", prod.HandleDelete)

	mux.HandleFunc("GET /manager/payment-methods", pay.HandleGetAll)
	mux.HandleFunc("PUT /manager/payment-methods/{id}", pay.HandleEdit)
	mux.HandleFunc("GET /manager/payment-methods/{id}/delete", pay.HandleConfirmDelete)
	mux.HandleFunc("POST /manager/payment-methods/{id}/delete", pay.HandleDelete)

	// REST creation
	mux.HandleFunc("POST /api/categories", cat.HandleCreate)
	mux.HandleFunc("GET /api/categories/{description}", cat.HandleLookup)
	mux.HandleFunc("POST /api/products", prod.HandleCreate)
	mux.HandleFunc("GET /api/products/{barcode}", prod.HandleLookup)
	mux.HandleFunc("POST /api/payment-methods", pay.HandleCreate)
	mux.HandleFunc("GET /api/payment-methods/{description}", pay.HandleLookup)
	mux.HandleFunc("POST /api/purchase-orders", pur.HandleCreateOrder)
	mux.HandleFunc("GET /api/purchase-orders", pur.HandleListOrders)
	mux.HandleFunc("GET /api/purchase-orders/{id}", pur.HandleGetOrder)
	mux.HandleFunc("POST /api/purchase-items", pur.HandleCreateItem)
	mux.HandleFunc("GET /api/purchase-items/{id}", pur.HandleGetItem)
	mux.HandleFunc("POST /api/purchase-payment-methods", pur.HandleCreatePayment)
	mux.HandleFunc("GET /api/purchase-payment-methods/{id}", pur.HandleGetPayment)

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(r.Context())
		}
		if err != nil {
			api.ErrorResponse(w, http.StatusServiceUnavailable, "database unavailable")
			return
		}
		api.OKResponse(w, map[string]string{"status": "ok"})
	})

	return middleware.Chain(mux,
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recover(logger),
	)
}
