// Package catalog holds the built-in Kun documentation diagrams.
//
// Every call returns freshly built documents, so callers may modify what they
// get without affecting later lookups.
package catalog

import (
	"github.com/kunhq/kundocs/pkg/diagram"
	errs "github.com/kunhq/kundocs/pkg/errors"
)

var builders = []func() diagram.Document{
	directoryStructure,
	phaseStructure,
	prismaStructure,
	phase1Flow,
	phase2Flow,
	phase3Flow,
	endToEndFlow,
	buildingBlocks,
	stackedBlocks,
	phase1Setup,
	phase2Setup,
}

// All returns every catalog document in display order.
func All() []diagram.Document {
	docs := make([]diagram.Document, len(builders))
	for i, b := range builders {
		docs[i] = b()
	}
	return docs
}

// IDs returns the catalog ids in display order.
func IDs() []string {
	ids := make([]string, len(builders))
	for i, b := range builders {
		ids[i] = b().ID
	}
	return ids
}

// Get returns the document with the given id.
func Get(id string) (diagram.Document, error) {
	for _, b := range builders {
		if d := b(); d.ID == id {
			return d, nil
		}
	}
	return diagram.Document{}, errs.New(errs.ErrCodeDiagramNotFound, "no catalog diagram %q", id)
}

// Has reports whether id names a catalog document.
func Has(id string) bool {
	_, err := Get(id)
	return err == nil
}
