package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Radmir1876/Zadaniedek1/app/slug"
	"github.com/Radmir1876/Zadaniedek1/models"
)

// ErrorBody is the JSON shape of every failed request.
type ErrorBody struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func OKResponse(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, data)
}

func CreatedResponse(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusCreated, data)
}

func ErrorResponse(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorBody{Error: message})
}

// WriteError maps a gateway error onto an HTTP response. notFoundMsg and internalMsg
// are the messages shown for missing records and unexpected failures; the latter are
// logged with the request context.
func WriteError(w http.ResponseWriter, r *http.Request, err error, notFoundMsg, internalMsg string) {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, ErrorBody{Error: "validation failed", Fields: verr.Fields})
	case errors.Is(err, models.ErrNotFound):
		ErrorResponse(w, http.StatusNotFound, notFoundMsg)
	case errors.Is(err, models.ErrReferenced):
		ErrorResponse(w, http.StatusConflict, "record is still referenced by purchases")
	case errors.Is(err, models.ErrSlugConflict), errors.Is(err, slug.ErrExhausted):
		ErrorResponse(w, http.StatusConflict, "could not generate a unique slug")
	case errors.Is(err, models.ErrDuplicate):
		ErrorResponse(w, http.StatusConflict, "record already exists")
	default:
		slog.ErrorContext(r.Context(), internalMsg,
			"error", err,
			"method", r.Method,
			"path", r.URL.Path,
		)
		ErrorResponse(w, http.StatusInternalServerError, internalMsg)
	}
}

// DecodeJSON reads the request body into dst, rejecting unknown fields.
func DecodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// DeleteConfirmation is shown before a record is removed.
type DeleteConfirmation struct {
	Object  string `json:"object"`
	Message string `json:"message"`
}

// ConfirmDelete answers the first step of a delete flow with the record's summary.
func ConfirmDelete(w http.ResponseWriter, object fmt.Stringer) {
	OKResponse(w, DeleteConfirmation{
		Object:  object.String(),
		Message: fmt.Sprintf("Are you sure you want to delete %q?", object.String()),
	})
}

// PathID parses the numeric path parameter name.
func PathID(r *http.Request, name string) (uint, error) {
	id, err := strconv.ParseUint(r.PathValue(name), 10, 0)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
