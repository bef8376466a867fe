package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/imadhurgupta/bio-keeper/internal/models"
)

func TestStatusForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", models.ErrValidation, http.StatusBadRequest},
		{"invalid credentials", models.ErrInvalidCredentials, http.StatusUnauthorized},
		{"auth failed", models.ErrAuthFailed, http.StatusUnauthorized},
		{"forbidden", models.ErrForbidden, http.StatusForbidden},
		{"not found", models.ErrNotFound, http.StatusNotFound},
		{"email in use", models.ErrEmailAlreadyInUse, http.StatusConflict},
		{"weak password", models.ErrWeakPassword, http.StatusUnprocessableEntity},
		{"store", models.ErrStore, http.StatusBadGateway},
		{"upload", models.ErrUpload, http.StatusBadGateway},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := statusForError(tt.err); got != tt.want {
				t.Errorf("statusForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
			// Wrapped sentinels must map the same way.
			wrapped := fmt.Errorf("%w: context", tt.err)
			if got := statusForError(wrapped); got != tt.want {
				t.Errorf("statusForError(wrapped %v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
