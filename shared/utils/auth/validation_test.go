package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("user@example.com"))
	assert.NoError(t, ValidateEmail("  user@example.com  "))

	assert.Error(t, ValidateEmail(""))
	assert.Error(t, ValidateEmail("   "))
	assert.Error(t, ValidateEmail("not-an-email"))
	assert.Error(t, ValidateEmail("user@"))
}

func TestValidateLink(t *testing.T) {
	assert.NoError(t, ValidateLink(""))
	assert.NoError(t, ValidateLink("https://example.com/profile"))
	assert.NoError(t, ValidateLink("http://example.com"))

	assert.Error(t, ValidateLink("ftp://example.com"))
	assert.Error(t, ValidateLink("example.com"))
	assert.Error(t, ValidateLink("https://"))
}

func TestValidateRequired(t *testing.T) {
	assert.NoError(t, ValidateRequired("value", "name"))

	err := ValidateRequired("   ", "name")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "name is required")
}

func TestValidateLength(t *testing.T) {
	assert.NoError(t, ValidateLength("hello", "name", 1, 10))

	err := ValidateLength("hi", "name", 3, 10)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "at least 3")

	err = ValidateLength("this is far too long", "name", 1, 10)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "at most 10")
}
