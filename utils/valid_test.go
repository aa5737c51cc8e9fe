package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeEmailNormalizes(t *testing.T) {
	email, err := SanitizeEmail("  Admin@Flowventory.TEST ")
	require.NoError(t, err)
	assert.Equal(t, "admin@flowventory.test", email)
}

func TestSanitizeEmailRejectsMalformed(t *testing.T) {
	for _, bad := range []string{"", "not-an-email", "missing@tld", "@flowventory.test"} {
		_, err := SanitizeEmail(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestSanitizeInputStripsControlAndEscapes(t *testing.T) {
	assert.Equal(t, "hello", SanitizeInput("  hello\x00 "))
	assert.Equal(t, "&lt;b&gt;bold&lt;/b&gt;", SanitizeInput("<b>bold</b>"))
}
