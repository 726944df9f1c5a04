// Package dynamosync persists record payloads to DynamoDB.
//
// Store implements [record.Syncer]: create maps to a conditional PutItem,
// update to an expression-built UpdateItem, read to GetItem and delete to
// DeleteItem. Tables are resolved per record type through [Config]. The
// store manages a small set of bookkeeping attributes (record_type,
// created_at, updated_at) that never surface in read results; they let
// stream consumers route change events back to the right record type.
//
// Conditional failures map to package errors:
//
//   - [ErrAlreadyExists] - create hit an existing id
//   - [ErrNotFound] - read or update addressed a missing item
//   - [ErrMissingID] - the payload carries no id attribute
package dynamosync
