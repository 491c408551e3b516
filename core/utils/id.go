package utils

import (
	"path/filepath"
	"strings"

	"github.com/gosimple/slug"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

func GenerateID() string {
	id, err := gonanoid.Generate("0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz", 7)
	if err != nil {
		return ""
	}
	return id
}

// ObjectKey derives a unique object-store key from an uploaded filename.
// The slugged base name keeps keys readable; the nanoid suffix prevents two
// uploads with the same original name from overwriting one another.
func ObjectKey(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))

	s := slug.Make(base)
	if s == "" {
		s = "file"
	}
	return s + "-" + GenerateID() + ext
}
