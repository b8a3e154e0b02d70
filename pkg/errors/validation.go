package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// maxIDLength bounds node ids and set names.
const maxIDLength = 256

// ValidateNodeID validates a node id read from user input (CLI arguments,
// subtree files). Graph files are checked separately by the graph itself.
//
// Rules:
//   - No empty ids
//   - No control characters or null bytes
//   - Maximum length of 256 characters
func ValidateNodeID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "node id cannot be empty")
	}
	if len(id) > maxIDLength {
		return New(ErrCodeInvalidInput, "node id too long (max %d characters)", maxIDLength)
	}
	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "node id contains invalid control characters")
		}
	}
	return nil
}

// ValidateSetName validates a reference set name. Names become part of
// domain node ids, so they follow the same rules as node ids and must not
// carry surrounding whitespace.
func ValidateSetName(name string) error {
	if err := ValidateNodeID(name); err != nil {
		return New(ErrCodeInvalidSets, "set name: %s", UserMessage(err))
	}
	if strings.TrimSpace(name) != name {
		return New(ErrCodeInvalidSets, "set name %q has leading or trailing whitespace", name)
	}
	return nil
}

// colorRegex matches #rgb and #rrggbb hex colors.
var colorRegex = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ValidateColor validates a hex color such as "#ff0000".
func ValidateColor(color string) error {
	if color == "" {
		return New(ErrCodeInvalidSets, "color cannot be empty")
	}
	if !colorRegex.MatchString(color) {
		return New(ErrCodeInvalidSets, "invalid color %q (want #rgb or #rrggbb)", color)
	}
	return nil
}

// ValidatePath validates an input or output file path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}
	return nil
}
