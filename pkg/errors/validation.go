package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// demoIDRegex matches kebab-case demo slugs such as "bounds-origin".
var demoIDRegex = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// ValidateDemoID checks that id is a well-formed demo slug.
// It does not check that the demo exists; the registry does that.
func ValidateDemoID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "demo id cannot be empty")
	}
	if len(id) > 64 {
		return New(ErrCodeInvalidInput, "demo id too long (max 64 characters)")
	}
	if !demoIDRegex.MatchString(id) {
		return New(ErrCodeInvalidInput, "invalid demo id: %q", id)
	}
	return nil
}

// ValidateOutputPath validates a file path the CLI is asked to write.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	for _, part := range strings.Split(path, "/") {
		if part == ".." {
			return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
		}
	}

	return nil
}
