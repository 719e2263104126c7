package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bluesmoth12/Blossom/internal/logger"
	"github.com/bluesmoth12/Blossom/internal/validation"
)

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		json.NewEncoder(w).Encode(v)
	}
}

// Error writes a JSON error body of the form {"message": ...}.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"message": message})
}

// ValidationError writes a 400 with the offending field and detail.
func ValidationError(w http.ResponseWriter, err error) {
	var fe *validation.FieldError
	if errors.As(err, &fe) {
		JSON(w, http.StatusBadRequest, map[string]string{
			"message": fe.Error(),
			"field":   fe.Field,
		})
		return
	}
	Error(w, http.StatusBadRequest, err.Error())
}

// internalError logs the underlying failure and returns an opaque 500.
func internalError(w http.ResponseWriter, message string, err error) {
	logger.Error(message, "err", err)
	Error(w, http.StatusInternalServerError, message)
}
