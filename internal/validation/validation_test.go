package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateName(t *testing.T) {
	t.Parallel()
	assert.NoError(t, ValidateName("Ada Lovelace"))
	assert.Error(t, ValidateName(""))
	assert.Error(t, ValidateName("   "))
	assert.Error(t, ValidateName(strings.Repeat("x", 101)))
}

func TestValidateEmail(t *testing.T) {
	t.Parallel()
	valid := []string{"a@b.co", "first.last@example.com", "x+tag@sub.domain.org"}
	for _, email := range valid {
		assert.NoError(t, ValidateEmail(email), email)
	}

	invalid := []string{"", "plain", "no@tld", "spaces in@example.com", "@example.com", "a@"}
	for _, email := range invalid {
		assert.Error(t, ValidateEmail(email), email)
	}
}

func TestValidatePassword(t *testing.T) {
	t.Parallel()
	assert.NoError(t, ValidatePassword("secret"))
	assert.NoError(t, ValidatePassword("a longer passphrase"))
	assert.Error(t, ValidatePassword(""))
	assert.Error(t, ValidatePassword("abc12"))
}
