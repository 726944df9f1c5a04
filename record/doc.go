// Package record implements nested data records whose attributes may
// themselves be records or ordered collections of records, mirroring a JSON
// API response tree.
//
// A record type declares, per attribute key, which record or collection type
// manages that attribute's data. The engine then keeps the whole tree
// consistent: assigning plain data to a nested key merges into the existing
// nested instance in place, preserving its identity and listeners;
// serialization recursively expands nested instances back into plain data;
// validation failures on any nested node are collected and re-attached,
// path-qualified, to every node along the path from the root to the failing
// node.
//
// # Declaring types
//
// A [Type] describes a concrete record type: defaults, nested schema, an
// optional parse step and an optional validation collaborator:
//
//	var addressType = &record.Type{Name: "address"}
//
//	var customerType = &record.Type{
//	    Name: "customer",
//	    Nested: []record.NestedField{
//	        {Key: "address", Kind: record.KindRecord, Type: addressType},
//	        {Key: "contacts", Kind: record.KindCollection, Type: contactType},
//	    },
//	}
//
// Each schema entry declares up front whether its managed type is
// record-valued or collection-valued; no runtime type probing is involved in
// choosing the merge branch.
//
// # Identity
//
// Every record carries a client identifier assigned once at construction. It
// addresses collection members that lack a server-assigned key, appears in
// serialized output under [ClientIDKey], and is stripped from outgoing
// create and update payloads by [Record.Sync].
//
// # Errors
//
// The package defines resolution errors for validation-error routing:
//
//   - [ErrBadPath] - an error path cannot be parsed or ends on a member segment
//   - [ErrNotCollection] - a member segment names a non-collection attribute
//   - [ErrMemberNotFound] - no collection member has the named client identifier
//
// All are reported wrapped in a [*PathError] naming the failing segment.
package record
