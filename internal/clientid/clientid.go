// Package clientid generates process-local identifiers for record instances.
package clientid

import "github.com/google/uuid"

// Prefix marks a string as a client identifier.
const Prefix = "cid-"

// New returns a fresh client identifier. Identifiers are unique for the
// lifetime of the process and are never persisted; they exist so collection
// members can be addressed before a server-assigned key is available.
func New() string {
	return Prefix + uuid.NewString()
}
