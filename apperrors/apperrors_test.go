package apperrors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", New(Validation, "bad input"), http.StatusBadRequest},
		{"invalid transition", New(InvalidTransition, "no"), http.StatusBadRequest},
		{"insufficient stock", New(InsufficientStock, "short"), http.StatusBadRequest},
		{"conflict", New(Conflict, "taken"), http.StatusBadRequest},
		{"not found", New(NotFound, "missing"), http.StatusNotFound},
		{"unauthorized", New(Unauthorized, "who"), http.StatusUnauthorized},
		{"forbidden", New(Forbidden, "nope"), http.StatusForbidden},
		{"internal", New(Internal, "boom"), http.StatusInternalServerError},
		{"untagged", errors.New("plain"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Status(tt.err))
		})
	}
}

func TestIsKind(t *testing.T) {
	err := Newf(InsufficientStock, "Insufficient stock for product ID %d.", 7)
	assert.True(t, IsKind(err, InsufficientStock))
	assert.False(t, IsKind(err, NotFound))
	assert.False(t, IsKind(errors.New("plain"), Internal))
	assert.EqualError(t, err, "Insufficient stock for product ID 7.")
}
