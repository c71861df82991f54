package io

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/kunhq/kundocs/pkg/diagram"
	errs "github.com/kunhq/kundocs/pkg/errors"
)

// ReadDocument decodes a document in syntax s from r and validates it.
//
// Unknown fields are rejected so that typos such as "childs" fail loudly
// instead of rendering an empty tree. Errors carry INVALID_INPUT for syntax
// problems and the diagram's own codes for validation failures.
func ReadDocument(r io.Reader, s Syntax) (diagram.Document, error) {
	d, err := decode(r, s)
	if err != nil {
		return diagram.Document{}, err
	}
	if err := d.Validate(); err != nil {
		return diagram.Document{}, err
	}
	return d, nil
}

func decode(r io.Reader, s Syntax) (diagram.Document, error) {
	var d diagram.Document
	switch s {
	case SyntaxJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&d); err != nil {
			return d, errs.Wrap(errs.ErrCodeInvalidInput, err, "decode json")
		}
	case SyntaxTOML:
		md, err := toml.NewDecoder(r).Decode(&d)
		if err != nil {
			return d, errs.Wrap(errs.ErrCodeInvalidInput, err, "decode toml")
		}
		if undec := md.Undecoded(); len(undec) > 0 {
			return d, errs.New(errs.ErrCodeInvalidInput, "decode toml: unknown field %q", undec[0].String())
		}
	case SyntaxYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&d); err != nil && !errors.Is(err, io.EOF) {
			return d, errs.Wrap(errs.ErrCodeInvalidInput, err, "decode yaml")
		}
	default:
		return d, errs.New(errs.ErrCodeInvalidFormat, "unknown syntax %q", s)
	}
	return d, nil
}

// ParseDocument is ReadDocument over a byte slice.
func ParseDocument(data []byte, s Syntax) (diagram.Document, error) {
	return ReadDocument(bytes.NewReader(data), s)
}

// ImportDocument reads the definition file at path. A document without an id
// takes [IDFromPath] of the file name; when that is empty too (a name with no
// ASCII letters or digits) the import fails with INVALID_INPUT.
func ImportDocument(path string) (diagram.Document, error) {
	s, err := SyntaxFor(path)
	if err != nil {
		return diagram.Document{}, err
	}
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return diagram.Document{}, errs.Wrap(errs.ErrCodeFileNotFound, err, "open %s", path)
	}
	if err != nil {
		return diagram.Document{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	d, err := decode(f, s)
	if err != nil {
		return diagram.Document{}, fmt.Errorf("%s: %w", path, err)
	}
	if d.ID == "" {
		if d.ID = IDFromPath(path); d.ID == "" {
			return diagram.Document{}, errs.New(errs.ErrCodeInvalidInput,
				"%s: no id in the file and none derivable from its name; set \"id\"", path)
		}
	}
	if err := d.Validate(); err != nil {
		return diagram.Document{}, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// IDFromPath derives a document id from a file name: "Phase 1.toml" becomes
// "phase-1".
func IDFromPath(path string) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(base) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case b.Len() > 0 && !dash:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// LoadDir imports every definition file directly inside dir, sorted by
// file name. Files that fail to import are returned in the error slice and
// skipped; duplicate ids keep the first file.
func LoadDir(dir string) ([]diagram.Document, []error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, []error{fmt.Errorf("read %s: %w", dir, err)}
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && IsDefinition(e.Name()) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var (
		docs []diagram.Document
		bad  []error
		seen = map[string]string{}
	)
	for _, name := range names {
		d, err := ImportDocument(filepath.Join(dir, name))
		if err != nil {
			bad = append(bad, err)
			continue
		}
		if prev, ok := seen[d.ID]; ok {
			bad = append(bad, errs.New(errs.ErrCodeInvalidInput, "%s: id %q already defined by %s", name, d.ID, prev))
			continue
		}
		seen[d.ID] = name
		docs = append(docs, d)
	}
	return docs, bad
}
