// Package httpapi exposes the HTTP API layer of the service.
package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/verichain/coldchain/internal/tracking"
)

// Envelope is the uniform response wrapper: data is present iff success.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message"`
}

// WriteSuccess writes a 200 envelope around data.
func WriteSuccess(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(Envelope{Success: true, Data: data, Message: "Success"})
}

// WriteError writes a failure envelope with the given status code.
func WriteError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Envelope{Success: false, Message: message})
}

// WriteDomainError maps a tracking error code to an HTTP status.
func WriteDomainError(w http.ResponseWriter, err error) {
	var derr *tracking.Error
	if !errors.As(err, &derr) {
		WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	switch derr.Code {
	case tracking.CodeNotFound:
		WriteError(w, http.StatusNotFound, derr.Message)
	case tracking.CodeInvalidStateTransition, tracking.CodeValidation:
		WriteError(w, http.StatusBadRequest, derr.Message)
	case tracking.CodeVerificationFailed:
		WriteError(w, http.StatusInternalServerError, derr.Message)
	default:
		WriteError(w, http.StatusInternalServerError, derr.Message)
	}
}
