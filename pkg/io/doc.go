// Package io reads and writes diagram documents as JSON, TOML or YAML.
//
// # Formats
//
// The syntax is chosen from the file extension ([SyntaxFor]): .json, .toml,
// .yaml and .yml. All three carry the same fields as [diagram.Document]:
//
//	kind = "flow"
//	title = "Phase 1: Individual Setup"
//	large = true
//
//	[titles]
//	ar = "المرحلة 1: الإعداد الفردي"
//
//	[[flow.nodes]]
//	id = "install"
//	label = "Install Tailscale"
//	icon = "cloud"
//
//	[[flow.edges]]
//	from = "install"
//	to = "ssh"
//	note = "tailscale up --ssh"
//
// Tree nodes accept "file" and "directory" as aliases of "leaf" and
// "branch".
//
// # Import
//
// [ImportDocument] reads a file, fills in the document id from the file name
// when the document has none, and validates the result. [ReadDocument] does
// the same for any io.Reader without the id fallback. [LoadDir] imports every
// definition file of a directory in name order.
//
// # Export
//
// [WriteDocument] and [ExportDocument] encode a document in any of the three
// syntaxes; the CLI uses them for `kundocs source` and the json render format.
//
// [diagram.Document]: github.com/kunhq/kundocs/pkg/diagram.Document
package io
