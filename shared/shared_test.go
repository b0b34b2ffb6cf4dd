package shared_test

import (
	"context"
	"reflect"
	"testing"
	"time"

	"hostel/shared"
	"hostel/shared/constant"
	"hostel/shared/dto"
)

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *bool
	}{
		{name: "empty string returns nil", input: "", expected: nil},
		{name: "valid true string", input: "true", expected: boolPtr(true)},
		{name: "valid false string", input: "false", expected: boolPtr(false)},
		{name: "valid 1 string", input: "1", expected: boolPtr(true)},
		{name: "invalid string returns nil", input: "maybe", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.ConvertStringToBool(tt.input)

			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestConvertStringToInt(t *testing.T) {
	if v, err := shared.ConvertStringToInt(" 42 "); err != nil || v != 42 {
		t.Errorf("expected 42, got %d (%v)", v, err)
	}

	if _, err := shared.ConvertStringToInt("abc"); err == nil {
		t.Error("expected error for non numeric input")
	}
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{name: "zero total", total: 0, limit: 10, expected: 1},
		{name: "zero limit", total: 10, limit: 0, expected: 1},
		{name: "exact division", total: 20, limit: 10, expected: 2},
		{name: "remainder", total: 21, limit: 10, expected: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := shared.CalculateTotalPage(tt.total, tt.limit); result != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestTransformFields(t *testing.T) {
	type TestStruct struct {
		Number     string  `db:"number"`
		Company    *string `db:"company"`
		Notes      string  `db:"notes"`
		NoDBTag    string
		IgnoredTag string `db:"-"`
	}

	tests := []struct {
		name     string
		data     interface{}
		username string
		expected map[string]any
	}{
		{
			name: "struct with populated fields",
			data: TestStruct{
				Number:     "101",
				Company:    stringPtr("Acme"),
				NoDBTag:    "ignored",
				IgnoredTag: "ignored",
			},
			username: "admin-id",
			expected: map[string]any{
				"number":  "101",
				"company": "Acme",
			},
		},
		{
			name:     "struct with all zero values",
			data:     TestStruct{},
			username: "admin-id",
			expected: map[string]any{},
		},
		{
			name:     "pointer to empty string is kept",
			data:     TestStruct{Company: stringPtr("")},
			username: "admin-id",
			expected: map[string]any{
				"company": "",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.TransformFields(tt.data, tt.username)

			if _, ok := result[constant.FieldModifiedAt].(time.Time); !ok {
				t.Error("expected modified_at to be a time.Time")
			}

			if result[constant.FieldModifiedBy] != tt.username {
				t.Errorf("expected modified_by to be %s, got %v", tt.username, result[constant.FieldModifiedBy])
			}

			for key, expectedValue := range tt.expected {
				if actualValue, exists := result[key]; !exists {
					t.Errorf("expected field %s to exist", key)
				} else if !reflect.DeepEqual(actualValue, expectedValue) {
					t.Errorf("expected field %s to be %v, got %v", key, expectedValue, actualValue)
				}
			}

			for key := range result {
				if key == constant.FieldModifiedAt || key == constant.FieldModifiedBy {
					continue
				}

				if _, expected := tt.expected[key]; !expected {
					t.Errorf("unexpected field %s in result", key)
				}
			}
		})
	}
}

func TestFilterByID(t *testing.T) {
	result := shared.FilterByID("123", "id", "rooms")

	expected := dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    "id",
				Value:    "123",
				Operator: dto.FilterOperatorEq,
				Table:    "rooms",
			},
		},
	}

	if !reflect.DeepEqual(result, expected) {
		t.Errorf("expected %+v, got %+v", expected, result)
	}
}

func TestIsValidID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{id: "3b8f2c1e-6d4a-4f0b-9c2e-7a1d5e8f0a11", want: true},
		{id: "", want: false},
		{id: "42", want: false},
		{id: "room-1", want: false},
		{id: "3b8f2c1e-6d4a-4f0b-9c2e-7a1d5e8f0a1z", want: false},
	}

	for _, tt := range tests {
		if got := shared.IsValidID(tt.id); got != tt.want {
			t.Errorf("IsValidID(%q) = %v, want %v", tt.id, got, tt.want)
		}
	}
}

func TestActor(t *testing.T) {
	if actor := shared.Actor(context.Background()); actor != constant.ContextSystem {
		t.Errorf("expected system actor, got %s", actor)
	}

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "user-1")
	if actor := shared.Actor(ctx); actor != "user-1" {
		t.Errorf("expected user-1, got %s", actor)
	}
}

func TestBuildCacheKey(t *testing.T) {
	if key := shared.BuildCacheKey("rooms"); key != "rooms" {
		t.Errorf("expected rooms, got %s", key)
	}

	if key := shared.BuildCacheKey("limiter", "127.0.0.1", "curl"); key != "limiter:127.0.0.1:curl" {
		t.Errorf("unexpected key %s", key)
	}
}

func boolPtr(b bool) *bool {
	return &b
}

func stringPtr(s string) *string {
	return &s
}
