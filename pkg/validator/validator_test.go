package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateThoughtText(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr bool
	}{
		{"empty", "", true},
		{"one char", "a", false},
		{"exactly 280", strings.Repeat("a", 280), false},
		{"281 chars", strings.Repeat("a", 281), true},
		{"280 multibyte runes", strings.Repeat("é", 280), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateThoughtText(tt.text)
			assert.Equal(t, tt.wantErr, errs.HasErrors())
		})
	}
}

func TestValidateReactionBody(t *testing.T) {
	assert.True(t, ValidateReactionBody("").HasErrors())
	assert.True(t, ValidateReactionBody(strings.Repeat("x", 281)).HasErrors())
	assert.False(t, ValidateReactionBody("nice!").HasErrors())
}

func TestValidateRegister(t *testing.T) {
	assert.False(t, ValidateRegister("ann", "ann@x.com", "secret1").HasErrors())

	errs := ValidateRegister("", "ann@x.com", "secret1")
	assert.Contains(t, errs, "username")

	errs = ValidateRegister("ann smith", "ann@x.com", "secret1")
	assert.Contains(t, errs, "username")

	errs = ValidateRegister("ann", "not-an-email", "secret1")
	assert.Contains(t, errs, "email")

	errs = ValidateRegister("ann", "ann@x.com", "1234")
	assert.Contains(t, errs, "password")
}

func TestValidateLogin(t *testing.T) {
	assert.False(t, ValidateLogin("ann@x.com", "secret1").HasErrors())
	assert.True(t, ValidateLogin("", "secret1").HasErrors())
	assert.True(t, ValidateLogin("ann@x.com", "").HasErrors())
}
