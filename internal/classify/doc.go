// Package classify decides which files in a project tree look like playbooks
// or inventories, and which directories a scan should never descend into.
//
// The checks are heuristics over file names, path segments and a few leading
// lines; nothing is parsed as YAML or INI. A playbook candidate must have a
// .yml or .yaml extension and contain a "hosts:" or "include:" line (or be
// vault-encrypted). An inventory candidate is accepted by extension (.yml,
// .yaml, .ini) or execute permission; extensionless files are accepted when
// their first ten lines all start with a plausible inventory character.
//
// Read errors are never reported: an unreadable file simply does not match,
// so one bad file can never abort a scan of a large tree.
//
// # Thread Safety
//
// All functions and Classifier methods are safe for concurrent use.
package classify
