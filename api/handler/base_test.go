package handler

import (
	"net/http"
	"testing"

	"github.com/mentortrack/backend/domain"
)

func TestStatusForError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"invalid payload", domain.ErrInvalidPayload, http.StatusBadRequest},
		{"password mismatch", domain.ErrPasswordMismatch, http.StatusBadRequest},
		{"duplicate email", domain.ErrDuplicateEmail, http.StatusBadRequest},
		{"duplicate mentorship", domain.ErrDuplicateMentorship, http.StatusBadRequest},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"unauthorized", domain.ErrUnauthorized, http.StatusForbidden},
		{"task not found", domain.ErrTaskNotFound, http.StatusNotFound},
		{"wrapped not found", domain.WrapError(domain.ErrCodeNotFound, "mentorship lookup", domain.ErrMentorshipNotFound), http.StatusNotFound},
		{"internal", domain.NewError(domain.ErrCodeInternal, "boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := statusForError(tc.err); got != tc.want {
				t.Fatalf("statusForError(%v) = %d, want %d", tc.err, got, tc.want)
			}
		})
	}
}
