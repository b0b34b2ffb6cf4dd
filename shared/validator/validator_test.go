package validator_test

import (
	"strings"
	"testing"

	"hostel/shared/failure"
	"hostel/shared/validator"
)

type level string

func (l level) IsValid() bool {
	return l == "low" || l == "high"
}

type guestRequest struct {
	Name        string `validate:"required,max=100" json:"name"`
	Email       string `validate:"omitempty,email" json:"email"`
	Phone       string `validate:"omitempty,phone" json:"phone"`
	CheckinDate string `validate:"omitempty,dateonly" json:"checkin_date"`
	Month       string `validate:"omitempty,monthonly" json:"month"`
	Level       level  `validate:"omitempty,enum" json:"level"`
	Internal    string `validate:"empty" json:"-"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        *guestRequest
		expectError bool
	}{
		{
			name:        "valid struct",
			data:        &guestRequest{Name: "Ana", Email: "ana@example.com", Phone: "+34 600-111-222", CheckinDate: "2024-05-01", Month: "2024-05", Level: "low"},
			expectError: false,
		},
		{
			name:        "missing required field",
			data:        &guestRequest{Phone: "+34600111222"},
			expectError: true,
		},
		{
			name:        "invalid email",
			data:        &guestRequest{Name: "Ana", Email: "invalid-email"},
			expectError: true,
		},
		{
			name:        "invalid phone",
			data:        &guestRequest{Name: "Ana", Phone: "0123"},
			expectError: true,
		},
		{
			name:        "invalid date",
			data:        &guestRequest{Name: "Ana", CheckinDate: "01/05/2024"},
			expectError: true,
		},
		{
			name:        "invalid month",
			data:        &guestRequest{Name: "Ana", Month: "2024-13"},
			expectError: true,
		},
		{
			name:        "invalid enum",
			data:        &guestRequest{Name: "Ana", Level: "medium"},
			expectError: true,
		},
		{
			name:        "field that must stay empty",
			data:        &guestRequest{Name: "Ana", Internal: "set"},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(tt.data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}

			if err != nil && !failure.Is(err, failure.KindValidation) {
				t.Errorf("expected validation_error kind, got %s", failure.GetKind(err))
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       any
		tag         string
		expectError bool
	}{
		{name: "valid required string", field: "test", tag: "required", expectError: false},
		{name: "empty required string", field: "", tag: "required", expectError: true},
		{name: "valid oneof", field: "asc", tag: "oneof=asc desc", expectError: false},
		{name: "invalid oneof", field: "up", tag: "oneof=asc desc", expectError: true},
		{name: "valid phone", field: "(351) 912 345 678", tag: "phone", expectError: false},
		{name: "valid date", field: "2024-02-29", tag: "dateonly", expectError: false},
		{name: "invalid date", field: "2023-02-29", tag: "dateonly", expectError: true},
		{name: "number out of range", field: 1500, tag: "gte=1,lte=1000", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError bool
	}{
		{name: "valid JSON", jsonBody: `{"name":"Ana","phone":"+351912345678"}`, expectError: false},
		{name: "invalid field", jsonBody: `{"name":"Ana","phone":"phone"}`, expectError: true},
		{name: "malformed JSON", jsonBody: `{"name":}`, expectError: true},
		{name: "empty JSON", jsonBody: `{}`, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data guestRequest

			err := validator.Validate(strings.NewReader(tt.jsonBody), &data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidationMessages(t *testing.T) {
	tests := []struct {
		name string
		data *guestRequest
		want string
	}{
		{name: "required uses json name", data: &guestRequest{}, want: "name is required"},
		{name: "phone", data: &guestRequest{Name: "Ana", Phone: "x"}, want: "phone must be a valid phone number"},
		{name: "date", data: &guestRequest{Name: "Ana", CheckinDate: "x"}, want: "checkin_date must be a date formatted as YYYY-MM-DD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(tt.data)
			if err == nil {
				t.Fatal("expected validation error")
			}

			if err.Error() != tt.want {
				t.Errorf("expected %q, got %q", tt.want, err.Error())
			}
		})
	}
}
