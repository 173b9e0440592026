package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "hello-world", Slugify("Hello World"))
	assert.Equal(t, "hello-world", Slugify("Hello World!"))
	assert.Equal(t, "nino", Slugify("Niño"))
	assert.Equal(t, "emmanuel-berrio-jimenez", Slugify("  Emmanuel Berrío Jiménez "))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "This is a...", Truncate("This is a very long text that should be truncated", 3))
	assert.Equal(t, "Short", Truncate("Short", 10))
}

func TestInitials(t *testing.T) {
	assert.Equal(t, "EJ", Initials("Emmanuel Berrio Jiménez"))
	assert.Equal(t, "ZA", Initials("zach"))
	assert.Equal(t, "", Initials("   "))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("test@example.com"))
	assert.False(t, IsValidEmail("invalid-email"))
	assert.False(t, IsValidEmail("testexample.com"))
}
