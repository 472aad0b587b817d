// Package classifier validates uploads by declared media type and size.
package classifier

import (
	"fmt"
	"mime"
	"path/filepath"
	"sort"
	"strings"

	"docuextract/internal/domain"
)

// Classify maps a declared media type to a category. Size is checked first, so an
// oversized file fails with ErrTooLarge whatever its type.
func Classify(mediaType string, size int64) (domain.Category, error) {
	if size > domain.MaxFileSizeBytes {
		return "", fmt.Errorf("%w: %d bytes (max %d)", domain.ErrTooLarge, size, domain.MaxFileSizeBytes)
	}

	category, ok := domain.AllowedMediaTypes[NormalizeMediaType(mediaType)]
	if !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedType, mediaType)
	}
	return category, nil
}

// NormalizeMediaType lowercases a media type and drops any parameters.
func NormalizeMediaType(mediaType string) string {
	mt := strings.TrimSpace(mediaType)
	if parsed, _, err := mime.ParseMediaType(mt); err == nil {
		return parsed
	}
	if i := strings.IndexByte(mt, ';'); i >= 0 {
		mt = mt[:i]
	}
	return strings.ToLower(strings.TrimSpace(mt))
}

// MediaTypeForFileName resolves the media type of an accepted extension,
// or "" when the extension is not accepted.
func MediaTypeForFileName(name string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	return domain.AllowedExtensions[ext]
}

// ResolveMediaType prefers the declared type and falls back to the file extension
// when the declared type is empty or generic.
func ResolveMediaType(declared, fileName string) string {
	mt := NormalizeMediaType(declared)
	if mt == "" || mt == "application/octet-stream" {
		if byExt := MediaTypeForFileName(fileName); byExt != "" {
			return byExt
		}
	}
	if mt == "" {
		return declared
	}
	return mt
}

// AllowedMediaTypes lists every accepted media type, sorted.
func AllowedMediaTypes() []string {
	out := make([]string, 0, len(domain.AllowedMediaTypes))
	for mt := range domain.AllowedMediaTypes {
		out = append(out, mt)
	}
	sort.Strings(out)
	return out
}
