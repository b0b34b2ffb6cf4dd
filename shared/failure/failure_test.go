package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"hostel/shared/failure"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		kind failure.Kind
	}{
		{name: "BadRequest", err: failure.BadRequest(errors.New("bad")), code: http.StatusBadRequest, kind: failure.KindValidation},
		{name: "BadRequestFromString", err: failure.BadRequestFromString("bad"), code: http.StatusBadRequest, kind: failure.KindValidation},
		{name: "Unauthorized", err: failure.Unauthorized("who"), code: http.StatusUnauthorized, kind: failure.KindUnauthorized},
		{name: "InternalError", err: failure.InternalError(errors.New("db down")), code: http.StatusInternalServerError, kind: failure.KindStorage},
		{name: "NotFound", err: failure.NotFound("room not found"), code: http.StatusNotFound, kind: failure.KindNotFound},
		{name: "Conflict", err: failure.Conflict("room is not free"), code: http.StatusConflict, kind: failure.KindStateConflict},
		{name: "Duplicate", err: failure.Duplicate("room number already exists"), code: http.StatusConflict, kind: failure.KindDuplicateKey},
		{name: "Forbidden", err: failure.Forbidden("no"), code: http.StatusForbidden, kind: failure.KindForbidden},
		{name: "Unimplemented", err: failure.Unimplemented("Export"), code: http.StatusNotImplemented, kind: failure.KindUnimplemented},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if code := failure.GetCode(tt.err); code != tt.code {
				t.Errorf("expected code %d, got %d", tt.code, code)
			}

			if kind := failure.GetKind(tt.err); kind != tt.kind {
				t.Errorf("expected kind %s, got %s", tt.kind, kind)
			}
		})
	}
}

func TestNilErrors(t *testing.T) {
	if failure.BadRequest(nil) != nil {
		t.Error("expected nil for BadRequest(nil)")
	}

	if failure.InternalError(nil) != nil {
		t.Error("expected nil for InternalError(nil)")
	}
}

func TestGetKind_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("failed to check in: %w", failure.Conflict("room is not free"))

	if !failure.Is(wrapped, failure.KindStateConflict) {
		t.Errorf("expected wrapped failure to keep its kind, got %s", failure.GetKind(wrapped))
	}

	if failure.GetCode(wrapped) != http.StatusConflict {
		t.Errorf("expected wrapped failure to keep its code, got %d", failure.GetCode(wrapped))
	}
}

func TestGetKind_PlainError(t *testing.T) {
	err := errors.New("connection refused")

	if failure.GetKind(err) != failure.KindStorage {
		t.Errorf("expected storage_error for plain errors, got %s", failure.GetKind(err))
	}

	if failure.GetCode(err) != http.StatusInternalServerError {
		t.Errorf("expected 500 for plain errors, got %d", failure.GetCode(err))
	}
}

func TestPredefinedFailures(t *testing.T) {
	if failure.ForbiddenError.Code != http.StatusForbidden || failure.ForbiddenError.Kind != failure.KindForbidden {
		t.Errorf("unexpected ForbiddenError %+v", failure.ForbiddenError)
	}

	if failure.PendingApprovalError.Code != http.StatusForbidden {
		t.Errorf("unexpected PendingApprovalError %+v", failure.PendingApprovalError)
	}

	if failure.InvalidPageParam.Kind != failure.KindValidation {
		t.Errorf("unexpected InvalidPageParam %+v", failure.InvalidPageParam)
	}
}
