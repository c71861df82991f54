package errors

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
)

// diagramIDRegex matches catalog and file-derived diagram identifiers.
var diagramIDRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// maxDiagramIDLength bounds identifiers used in URLs and cache keys.
const maxDiagramIDLength = 64

// ValidateDiagramID validates a diagram identifier such as "phase1-flow".
// Identifiers appear in URLs and file names, so the rules are conservative:
// lowercase ASCII letters, digits and dashes, not starting with a dash.
func ValidateDiagramID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "diagram id cannot be empty")
	}
	if len(id) > maxDiagramIDLength {
		return New(ErrCodeInvalidInput, "diagram id too long (max %d characters)", maxDiagramIDLength)
	}
	if !diagramIDRegex.MatchString(id) {
		return New(ErrCodeInvalidInput, "invalid diagram id: %q", id)
	}
	return nil
}

// definitionExts lists the file extensions a diagram definition may use.
var definitionExts = map[string]bool{
	".json": true,
	".toml": true,
	".yaml": true,
	".yml":  true,
}

// ValidateDefinitionFilename validates a diagram definition filename.
// It must be a simple basename with a supported extension.
func ValidateDefinitionFilename(filename string) error {
	if filename == "" {
		return New(ErrCodeInvalidPath, "definition filename cannot be empty")
	}
	if strings.ContainsAny(filename, "/\\") {
		return New(ErrCodeInvalidPath, "definition filename cannot contain path separators")
	}
	if strings.HasPrefix(filename, ".") {
		return New(ErrCodeInvalidPath, "definition filename cannot be a hidden file")
	}
	ext := strings.ToLower(filepath.Ext(filename))
	if !definitionExts[ext] {
		return New(ErrCodeInvalidFormat, "unsupported definition extension %q (want .json, .toml, .yaml or .yml)", ext)
	}
	return nil
}

// ValidatePath validates a file path relative to a served directory.
// It prevents path traversal and ensures reasonable path length.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No absolute paths (must be relative)
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.HasPrefix(path, "/") {
		return New(ErrCodeInvalidPath, "path must be relative (cannot start with /)")
	}
	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}
	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "path cannot contain backslashes")
	}

	return nil
}
