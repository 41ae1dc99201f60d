package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestApiErr_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ApiErr
		want string
	}{
		{"plain", NewApiErr(http.StatusTeapot, "short and stout"), "short and stout"},
		{"not found", NewNotFoundError("asset", "x"), "resource not found: asset 'x' does not exist"},
		{"invalid field", NewInvalidFieldError("category", "unknown"), "invalid field: Invalid field category: unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestApiErr_Sentinels(t *testing.T) {
	notFound := fmt.Errorf("handler: %w", NewNotFoundError("asset", "x"))
	if !IsNotFound(notFound) {
		t.Error("wrapped not-found error should match ErrNotFound")
	}

	invalid := NewInvalidFieldError("category", "unknown")
	if !IsInvalidFieldError(invalid) {
		t.Error("invalid field error should match ErrInvalidField")
	}
	if invalid.StatusCode != http.StatusBadRequest || invalid.Field != "category" {
		t.Errorf("unexpected invalid field error: %+v", invalid)
	}

	if IsNotFound(NewApiErr(http.StatusMethodNotAllowed, "nope")) {
		t.Error("plain api error should not match ErrNotFound")
	}
}

func TestApiErr_GetFullError(t *testing.T) {
	inner := NewInternalErrorWithCause("catalog", errors.New("disk gone"))
	outer := NewInternalErrorWithCause("list assets", inner)

	want := "list assets -> catalog -> disk gone"
	if got := outer.GetFullError(); got != want {
		t.Errorf("GetFullError() = %q, want %q", got, want)
	}
}
