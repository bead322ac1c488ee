package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUUIDint64Unique(t *testing.T) {
	seen := make(map[int64]struct{})
	for i := 0; i < 1000; i++ {
		id := UUIDint64()
		_, dup := seen[id]
		assert.False(t, dup)
		seen[id] = struct{}{}
	}
	assert.NotEmpty(t, UUID())
}

func TestTrimAll(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, TrimAll([]string{" a", "", "  ", "b "}))
	assert.Equal(t, "def", IfEmptyStr(" ", "def"))
	assert.Equal(t, "v", IfEmptyStr("v", "def"))
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "vps-hosting-2024", Slugify("  VPS Hosting: 2024! "))
	assert.Equal(t, "облачный-сервер", Slugify("Облачный сервер"))
	assert.Equal(t, "", Slugify(" -- "))
}
