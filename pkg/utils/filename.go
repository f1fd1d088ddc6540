package utils

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

const filesPrefix = "files/"

var dangerousChars = regexp.MustCompile(`[<>:"|?*\x00-\x1f\x7f]`)

// SanitizeFileName strips path components and unsafe characters from a
// client-supplied filename. The result is kept as the display name only; the
// storage key comes from GenerateHashName.
func SanitizeFileName(filename string) string {
	filename = filepath.Base(filename)
	filename = dangerousChars.ReplaceAllString(filename, "_")
	filename = strings.TrimSpace(filename)

	if filename == "" || filename == "." || filename == ".." {
		filename = "file"
	}

	return filename
}

// GenerateHashName builds a collision-resistant storage-safe name carrying
// the original extension. Not derivable from any sequential id.
func GenerateHashName(originalName string) string {
	ext := strings.ToLower(filepath.Ext(SanitizeFileName(originalName)))
	return uuid.New().String() + ext
}

// StoragePath derives the deterministic object key for a hash name.
func StoragePath(hashName string) string {
	return filesPrefix + hashName
}

// FilesPrefix is the storage namespace swept for orphaned blobs.
func FilesPrefix() string {
	return filesPrefix
}
