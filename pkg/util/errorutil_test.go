package util

import (
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
)

func TestMapErrorNilPassthrough(t *testing.T) {
	if MapError(nil) != nil {
		t.Fatal("nil must map to nil")
	}
}

func TestToDomainErrorMapsMissingRows(t *testing.T) {
	de := ToDomainError(pgx.ErrNoRows)
	if de.Code != "NOT_FOUND" || de.HTTPStatus != http.StatusNotFound {
		t.Fatalf("got %+v", de)
	}
}

func TestToDomainErrorWrapsUnknownErrors(t *testing.T) {
	de := ToDomainError(errors.New("boom"))
	if de.Code != "INTERNAL_ERROR" || de.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("got %+v", de)
	}
}

func TestToDomainErrorPreservesDomainErrors(t *testing.T) {
	original := NewForbidden("staff or admin role required")
	de := ToDomainError(original)
	if de.Code != "FORBIDDEN" || de.HTTPStatus != http.StatusForbidden {
		t.Fatalf("got %+v", de)
	}
}
