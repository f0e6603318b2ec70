package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	t.Run("simple", func(t *testing.T) {
		e := NewDomainErrorSimple("MEMBER_NOT_FOUND", "Member not found", http.StatusNotFound)
		if e.Error() != "MEMBER_NOT_FOUND: Member not found" {
			t.Fatalf("unexpected message: %s", e.Error())
		}
		body := e.ToHTTPError()
		if body.Code != "MEMBER_NOT_FOUND" || body.Details != nil {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("wrapped", func(t *testing.T) {
		cause := errors.New("boom")
		e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)
		if !errors.Is(e, cause) {
			t.Fatalf("expected wrapped cause")
		}
	})

	t.Run("details copy", func(t *testing.T) {
		base := NewDomainErrorSimple("VALIDATION_FAILED", "Validation failed", http.StatusUnprocessableEntity)
		withDetails := base.WithDetails(map[string]string{"name": "required"})
		if base.Details != nil {
			t.Fatalf("base error must not be mutated")
		}
		if withDetails.ToHTTPError().Details["name"] != "required" {
			t.Fatalf("unexpected details: %+v", withDetails.Details)
		}
	})
}
