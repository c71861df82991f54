package io

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/kunhq/kundocs/pkg/diagram"
	errs "github.com/kunhq/kundocs/pkg/errors"
)

// WriteDocument encodes d in syntax s to w. The output can be re-imported
// with [ReadDocument].
func WriteDocument(d diagram.Document, w io.Writer, s Syntax) error {
	switch s {
	case SyntaxJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(d); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
	case SyntaxTOML:
		enc := toml.NewEncoder(w)
		enc.Indent = ""
		if err := enc.Encode(d); err != nil {
			return fmt.Errorf("encode toml: %w", err)
		}
	case SyntaxYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return errs.New(errs.ErrCodeInvalidFormat, "unknown syntax %q", s)
	}
	return nil
}

// MarshalDocument is WriteDocument into a byte slice.
func MarshalDocument(d diagram.Document, s Syntax) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteDocument(d, &buf, s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportDocument writes d to path in the syntax implied by its extension.
func ExportDocument(d diagram.Document, path string) error {
	s, err := SyntaxFor(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteDocument(d, f, s); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
