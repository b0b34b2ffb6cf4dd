package phone_test

import (
	"testing"

	"hostel/shared/phone"

	"github.com/stretchr/testify/assert"
)

func TestValid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "international", input: "+34600111222", want: true},
		{name: "with spaces and dashes", input: "+34 600-111-222", want: true},
		{name: "with parentheses", input: "(351) 912 345 678", want: true},
		{name: "single digit", input: "7", want: true},
		{name: "leading zero", input: "0600111222", want: false},
		{name: "letters", input: "abc", want: false},
		{name: "too long", input: "+12345678901234567", want: false},
		{name: "double plus", input: "++351912345678", want: false},
		{name: "empty", input: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, phone.Valid(tt.input))
		})
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "+34600111222", phone.Normalize(" +34 (600) 111-222 "))
}
