package scanner

import (
	"github.com/google/uuid"

	"github.com/vvka-141/playscan/pkg/playscan"
)

// NamespaceEntryIdentity is the UUID v5 namespace for entry identities,
// derived from the URL namespace and "playscan/entry-identity/v1".
var NamespaceEntryIdentity = uuid.NewSHA1(uuid.NameSpaceURL, []byte("playscan/entry-identity/v1"))

// EntryID creates a deterministic UUID v5 for a classified file.
//
// The kind is part of the name because a .yml file may be listed both as a
// playbook and as an inventory; the two entries get distinct IDs.
// Paths are expected with forward slashes, as produced by the scanner.
//
// Examples:
//   - ("playbook", "site.yml")        → uuid_v5(namespace, "playbook:site.yml")
//   - ("inventory", "inventory/hosts") → uuid_v5(namespace, "inventory:inventory/hosts")
func EntryID(kind playscan.Kind, path string) uuid.UUID {
	return uuid.NewSHA1(NamespaceEntryIdentity, []byte(string(kind)+":"+path))
}
