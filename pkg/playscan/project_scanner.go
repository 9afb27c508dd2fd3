package playscan

// ProjectScanner discovers playbooks and inventory files in a project tree.
// Implementations must be safe for concurrent use by multiple goroutines.
type ProjectScanner interface {
	// Scan walks the project and returns both playbook and inventory listings.
	Scan(projectPath string) (ScanResult, error)

	// ScanPlaybooks returns files that look like playbooks, sorted by path.
	ScanPlaybooks(projectPath string) ([]Entry, error)

	// ScanInventories returns files that look like inventories, sorted by
	// path and capped at the configured inventory limit.
	ScanInventories(projectPath string) ([]Entry, bool, error)
}
