package io

import (
	"path/filepath"
	"strings"

	errs "github.com/kunhq/kundocs/pkg/errors"
)

// Syntax is a definition file encoding.
type Syntax string

const (
	SyntaxJSON Syntax = "json"
	SyntaxTOML Syntax = "toml"
	SyntaxYAML Syntax = "yaml"
)

// Syntaxes lists the supported encodings.
var Syntaxes = []Syntax{SyntaxJSON, SyntaxTOML, SyntaxYAML}

// ParseSyntax accepts a syntax name ("yml" is an alias of yaml).
func ParseSyntax(s string) (Syntax, error) {
	switch strings.ToLower(s) {
	case "json":
		return SyntaxJSON, nil
	case "toml":
		return SyntaxTOML, nil
	case "yaml", "yml":
		return SyntaxYAML, nil
	}
	return "", errs.New(errs.ErrCodeInvalidFormat, "unknown syntax %q (must be one of: json, toml, yaml)", s)
}

// SyntaxFor picks the syntax from path's extension.
func SyntaxFor(path string) (Syntax, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", errs.New(errs.ErrCodeInvalidFormat, "%s has no extension", filepath.Base(path))
	}
	return ParseSyntax(ext)
}

// IsDefinition reports whether path has a definition file extension.
func IsDefinition(path string) bool {
	_, err := SyntaxFor(path)
	return err == nil
}

// Extension returns the canonical file extension for s, with the dot.
func (s Syntax) Extension() string { return "." + string(s) }
