package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Message(t *testing.T) {
	err := ValidationError("bad input")
	assert.Equal(t, "validation: bad input", err.Error())
}

func TestError_MessageWithCause(t *testing.T) {
	cause := errors.New("disk full")
	err := InternalError("write failed", cause)
	assert.Equal(t, "internal: write failed: disk full", err.Error())
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := InternalError("wrapper", cause)

	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, fmt.Errorf("outer: %w", err), cause)
}

func TestError_HTTPStatus(t *testing.T) {
	tests := []struct {
		err  *Error
		want int
	}{
		{ValidationError("v"), http.StatusBadRequest},
		{NotFoundError("n"), http.StatusNotFound},
		{InternalError("i", nil), http.StatusInternalServerError},
		{&Error{Type: "bogus"}, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.err.HTTPStatus())
	}
}

func TestError_WithContext(t *testing.T) {
	err := NotFoundError("missing").
		WithContext("path", "/app").
		WithContext("method", "GET")

	assert.Equal(t, "/app", err.Context["path"])
	assert.Equal(t, "GET", err.Context["method"])
}

func TestToResponse_HidesInternalDetails(t *testing.T) {
	err := InternalError("database exploded", errors.New("secret detail"))
	resp := err.ToResponse()

	assert.Equal(t, "internal server error", resp.Error)
	assert.Equal(t, TypeInternal, resp.Type)
	assert.NotContains(t, resp.Error, "secret detail")
}

func TestToResponse_KeepsClientFacingMessage(t *testing.T) {
	err := ValidationError("name is required")
	resp := err.ToResponse()

	assert.Equal(t, "name is required", resp.Error)
	assert.Equal(t, TypeValidation, resp.Type)
}

func TestAsStructuredError_PassesThrough(t *testing.T) {
	original := NotFoundError("nope")
	structured := AsStructuredError(original)
	assert.Same(t, original, structured)
}

func TestAsStructuredError_WrapsPlainError(t *testing.T) {
	plain := errors.New("boom")
	structured := AsStructuredError(plain)

	require.NotNil(t, structured)
	assert.Equal(t, TypeInternal, structured.Type)
	assert.ErrorIs(t, structured, plain)
}

func TestAsStructuredError_UnwrapsWrappedStructured(t *testing.T) {
	inner := ValidationError("inner")
	wrapped := fmt.Errorf("outer: %w", inner)

	structured := AsStructuredError(wrapped)
	assert.Same(t, inner, structured)
}
