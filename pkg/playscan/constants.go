package playscan

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess         = 0  // Scan completed successfully
	ExitGeneralError    = 1  // Unknown or unclassified error
	ExitUsageError      = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic           = 3  // Internal panic (unexpected crash)
	ExitConfigError     = 10 // Invalid configuration
	ExitProjectNotFound = 11 // Project directory missing or not a directory
)

const (
	// VaultMarker prefixes the first line of any file encrypted with vault.
	VaultMarker = "$ANSIBLE_VAULT;"

	// MaxInventoryProbeLines is the number of leading lines inspected when
	// deciding whether an extensionless file looks like an inventory.
	MaxInventoryProbeLines = 10

	// DefaultInventoryLimit caps the number of inventory files listed per project.
	DefaultInventoryLimit = 50

	// ConfigFileName is the optional per-project configuration file.
	ConfigFileName = "playscan.yaml"

	// EnvInventoryLimit overrides the inventory listing cap.
	EnvInventoryLimit = "PLAYSCAN_INVENTORY_LIMIT"
)
