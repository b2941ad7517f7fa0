package service

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectName(t *testing.T) {
	t.Parallel()

	name := objectName("user", 7, "me.png")
	require.True(t, strings.HasPrefix(name, "user_7_"))
	require.True(t, strings.HasSuffix(name, ".png"))

	middle := strings.TrimSuffix(strings.TrimPrefix(name, "user_7_"), ".png")
	_, err := uuid.Parse(middle)
	assert.NoError(t, err)
}

func TestObjectNameTakesLastDotSegment(t *testing.T) {
	t.Parallel()

	name := objectName("service", 3, "logo.final.svg")
	assert.True(t, strings.HasSuffix(name, ".svg"))
	assert.False(t, strings.Contains(name, "final"))
}

func TestObjectNameWithoutExtension(t *testing.T) {
	t.Parallel()

	// A filename without a dot yields the whole filename as the extension.
	name := objectName("user", 1, "avatar")
	assert.True(t, strings.HasSuffix(name, ".avatar"))
}

func TestObjectNamesAreUnique(t *testing.T) {
	t.Parallel()

	a := objectName("user", 1, "me.png")
	b := objectName("user", 1, "me.png")
	assert.NotEqual(t, a, b)
}

func TestObjectFromURL(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "user_7_abc.png",
		objectFromURL("https://blobs.test/avatars/user_7_abc.png"))
	assert.Equal(t, "plain", objectFromURL("plain"))
}
