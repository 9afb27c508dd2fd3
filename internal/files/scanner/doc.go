// Package scanner builds a project's playbook and inventory listings.
//
// The scanner package is responsible for:
//   - Recursively walking a project tree, pruning directories that
//     classify.SkipDirectory rejects (roles, tasks, variable and hidden dirs)
//   - Running the playbook and inventory classifiers on every file
//   - Capping the inventory listing at a configurable limit
//   - Attaching a stable identity and a content checksum to each entry
//
// Unreadable files and directories are logged and skipped; only a missing
// or unopenable project root is an error.
//
// The scanner is filesystem-agnostic through the filesystem.FileSystemProvider
// interface, enabling both production use with the OS filesystem and testing
// with in-memory filesystems.
package scanner
