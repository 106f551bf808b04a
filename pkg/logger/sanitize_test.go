package logger_test

import (
	"testing"

	"github.com/credsink/credsink/pkg/logger"
	"github.com/stretchr/testify/assert"
)

func TestSanitizedEmail(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"user@example.com", "u***@*******.com"},
		{"a@x.com", "a@*.com"},
		{"not-an-email", "[invalid-email]"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, logger.SanitizedEmail(tc.input), tc.input)
	}
}

func TestSanitizeQueryString(t *testing.T) {
	assert.True(t, logger.SanitizeQueryString("password=hunter2"))
	assert.True(t, logger.SanitizeQueryString("email=a%40x.com"))
	assert.True(t, logger.SanitizeQueryString("TOKEN=abc"))
	assert.False(t, logger.SanitizeQueryString("page=2&sort=desc"))
	assert.False(t, logger.SanitizeQueryString(""))
}
