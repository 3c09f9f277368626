package payments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Radmir1876/Zadaniedek1/app/api"
	"github.com/Radmir1876/Zadaniedek1/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MockPaymentMethodRepo struct {
	Methods    []models.PaymentMethod
	Err        error
	CreateErr  error
	DeleteErr  error
	LastSaved  *models.PaymentMethod
	DeletedID  uint
	Referenced map[uint]bool
}

func (m *MockPaymentMethodRepo) GetAllPaymentMethods(_ context.Context) ([]models.PaymentMethod, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Methods, nil
}

func (m *MockPaymentMethodRepo) GetPaymentMethod(_ context.Context, id uint) (*models.PaymentMethod, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, pm := range m.Methods {
		if pm.ID == id {
			method := pm
			return &method, nil
		}
	}
	return nil, models.ErrPaymentMethodNotFound
}

func (m *MockPaymentMethodRepo) GetPaymentMethodByDescription(_ context.Context, description string) (*models.PaymentMethod, error) {
	for _, pm := range m.Methods {
		if pm.Description == description {
			method := pm
			return &method, nil
		}
	}
	return nil, models.ErrPaymentMethodNotFound
}

func (m *MockPaymentMethodRepo) CreatePaymentMethod(_ context.Context, method *models.PaymentMethod) error {
	m.LastSaved = method
	if m.CreateErr != nil {
		return m.CreateErr
	}
	method.ID = uint(len(m.Methods) + 1)
	m.Methods = append(m.Methods, *method)
	return nil
}

func (m *MockPaymentMethodRepo) UpdatePaymentMethod(ctx context.Context, method *models.PaymentMethod) error {
	m.LastSaved = method
	_, err := m.GetPaymentMethod(ctx, method.ID)
	return err
}

func (m *MockPaymentMethodRepo) DeletePaymentMethod(ctx context.Context, id uint) error {
	if _, err := m.GetPaymentMethod(ctx, id); err != nil {
		return err
	}
	if m.Referenced[id] {
		return models.ErrReferenced
	}
	m.DeletedID = id
	return nil
}

func TestHandleGetAll(t *testing.T) {
	testCases := []struct {
		name               string
		repo               *MockPaymentMethodRepo
		expectedStatusCode int
		expectedBody       string
	}{
		{
			name: "Success",
			repo: &MockPaymentMethodRepo{Methods: []models.PaymentMethod{
				{ID: 1, Description: "Cash"},
				{ID: 2, Description: "Card"},
			}},
			expectedStatusCode: http.StatusOK,
			expectedBody:       `[{"id":1,"description":"Cash"},{"id":2,"description":"Card"}]`,
		},
		{
			name:               "Empty",
			repo:               &MockPaymentMethodRepo{},
			expectedStatusCode: http.StatusOK,
			expectedBody:       `[]`,
		},
		{
			name:               "Repository error",
			repo:               &MockPaymentMethodRepo{Err: errors.New("db failure")},
			expectedStatusCode: http.StatusInternalServerError,
			expectedBody:       `{"error":"failed to fetch payment methods"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			handler := NewPaymentMethodHandler(tc.repo)
			req := httptest.NewRequest("GET", "/manager/payment-methods", nil)
			rec := httptest.NewRecorder()

			// Act
			handler.HandleGetAll(rec, req)

			// Assert
			assert.Equal(t, tc.expectedStatusCode, rec.Code)
			assert.JSONEq(t, tc.expectedBody, rec.Body.String())
		})
	}
}

func TestHandleCreate(t *testing.T) {
	testCases := []struct {
		name               string
		body               string
		repo               *MockPaymentMethodRepo
		expectedStatusCode int
		expectedBody       string
	}{
		{
			name:               "Success",
			body:               `{"description":"Voucher"}`,
			repo:               &MockPaymentMethodRepo{},
			expectedStatusCode: http.StatusCreated,
			expectedBody:       `{"id":1,"description":"Voucher"}`,
		},
		{
			name: "Duplicate description",
			body: `{"description":"Cash"}`,
			repo: &MockPaymentMethodRepo{CreateErr: &models.ValidationError{
				Fields: map[string]string{"description": "payment method with this description already exists."},
				Err:    models.ErrDuplicate,
			}},
			expectedStatusCode: http.StatusBadRequest,
			expectedBody:       `{"error":"validation failed","fields":{"description":"payment method with this description already exists."}}`,
		},
		{
			name:               "Unknown field",
			body:               `{"description":"Cash","id":4}`,
			repo:               &MockPaymentMethodRepo{},
			expectedStatusCode: http.StatusBadRequest,
			expectedBody:       `{"error":"Invalid JSON body"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			handler := NewPaymentMethodHandler(tc.repo)
			req := httptest.NewRequest("POST", "/api/payment-methods", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()

			// Act
			handler.HandleCreate(rec, req)

			// Assert
			assert.Equal(t, tc.expectedStatusCode, rec.Code)
			assert.JSONEq(t, tc.expectedBody, rec.Body.String())
		})
	}
}

func TestHandleLookupAndEdit(t *testing.T) {
	repo := &MockPaymentMethodRepo{Methods: []models.PaymentMethod{{ID: 1, Description: "Cash"}}}
	handler := NewPaymentMethodHandler(repo)

	t.Run("Lookup by description", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/payment-methods/Cash", nil)
		req.SetPathValue("description", "Cash")
		rec := httptest.NewRecorder()

		handler.HandleLookup(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"id":1,"description":"Cash"}`, rec.Body.String())
	})

	t.Run("Lookup unknown description", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/payment-methods/Cheque", nil)
		req.SetPathValue("description", "Cheque")
		rec := httptest.NewRecorder()

		handler.HandleLookup(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"Payment method not found"}`, rec.Body.String())
	})

	t.Run("Edit", func(t *testing.T) {
		req := httptest.NewRequest("PUT", "/manager/payment-methods/1", strings.NewReader(`{"description":"Cash only"}`))
		req.SetPathValue("id", "1")
		rec := httptest.NewRecorder()

		handler.HandleEdit(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"id":1,"description":"Cash only"}`, rec.Body.String())
		require.NotNil(t, repo.LastSaved)
		assert.Equal(t, uint(1), repo.LastSaved.ID)
	})
}

func TestHandleDelete(t *testing.T) {
	testCases := []struct {
		name               string
		id                 string
		expectedStatusCode int
		expectedBody       string
		expectedDeleted    uint
	}{
		{
			name:               "Success",
			id:                 "2",
			expectedStatusCode: http.StatusNoContent,
			expectedDeleted:    2,
		},
		{
			name:               "Referenced by a purchase",
			id:                 "1",
			expectedStatusCode: http.StatusConflict,
			expectedBody:       `{"error":"record is still referenced by purchases"}`,
		},
		{
			name:               "Not found",
			id:                 "9",
			expectedStatusCode: http.StatusNotFound,
			expectedBody:       `{"error":"Payment method not found"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			repo := &MockPaymentMethodRepo{
				Methods: []models.PaymentMethod{
					{ID: 1, Description: "Cash"},
					{ID: 2, Description: "Card"},
				},
				Referenced: map[uint]bool{1: true},
			}
			handler := NewPaymentMethodHandler(repo)
			req := httptest.NewRequest("POST", "/manager/payment-methods/"+tc.id+"/delete", nil)
			req.SetPathValue("id", tc.id)
			rec := httptest.NewRecorder()

			// Act
			handler.HandleDelete(rec, req)

			// Assert
			assert.Equal(t, tc.expectedStatusCode, rec.Code)
			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rec.Body.String())
			}
			assert.Equal(t, tc.expectedDeleted, repo.DeletedID)
		})
	}
}

func TestHandleConfirmDelete(t *testing.T) {
	repo := &MockPaymentMethodRepo{Methods: []models.PaymentMethod{{ID: 1, Description: "Cash"}}}
	handler := NewPaymentMethodHandler(repo)
	req := httptest.NewRequest("GET", "/manager/payment-methods/1/delete", nil)
	req.SetPathValue("id", "1")
	rec := httptest.NewRecorder()

	handler.HandleConfirmDelete(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp api.DeleteConfirmation
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "PaymentMethod - Cash", resp.Object)
}
