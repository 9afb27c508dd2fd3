package playscan

// Kind identifies what a discovered file was classified as.
type Kind string

const (
	KindPlaybook  Kind = "playbook"
	KindInventory Kind = "inventory"
)

// Entry describes a single file accepted by a classifier.
type Entry struct {
	// Path is relative to the project root and always uses forward slashes.
	Path string `json:"path"`

	// ID is a deterministic UUID derived from Kind and Path, stable across
	// scans. A file listed as both playbook and inventory gets two IDs.
	ID string `json:"id"`

	Kind Kind `json:"kind"`

	SizeBytes int64 `json:"size_bytes"`

	// Checksum is the SHA-256 of the normalized content. Empty when the
	// file could not be read (inventories are accepted on name alone).
	Checksum string `json:"checksum,omitempty"`

	// RawChecksum is the SHA-256 of the exact bytes on disk.
	RawChecksum string `json:"raw_checksum,omitempty"`
}

// ScanResult contains the results of scanning a project directory.
type ScanResult struct {
	Playbooks   []Entry `json:"playbooks"`
	Inventories []Entry `json:"inventories"`

	// InventoryTruncated is true when the inventory listing hit its cap.
	InventoryTruncated bool `json:"inventory_truncated"`
}
