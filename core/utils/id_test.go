package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateID(t *testing.T) {
	a := GenerateID()
	b := GenerateID()

	assert.Len(t, a, 7)
	assert.NotEqual(t, a, b)
}

func TestObjectKey(t *testing.T) {
	key := ObjectKey("Our Wedding Photo.JPG")

	assert.True(t, strings.HasPrefix(key, "our-wedding-photo-"), key)
	assert.True(t, strings.HasSuffix(key, ".jpg"), key)
}

func TestObjectKey_SameNameDiffers(t *testing.T) {
	assert.NotEqual(t, ObjectKey("photo.jpg"), ObjectKey("photo.jpg"))
}

func TestObjectKey_UnsluggableName(t *testing.T) {
	key := ObjectKey("???.png")

	assert.True(t, strings.HasPrefix(key, "file-"), key)
	assert.True(t, strings.HasSuffix(key, ".png"), key)
}
