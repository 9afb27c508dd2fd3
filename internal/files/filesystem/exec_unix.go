//go:build unix

package filesystem

import (
	"os"

	"golang.org/x/sys/unix"
)

// isExecutable asks the kernel, so ACLs, ownership and root's override
// are all taken into account. Directories are never executable files,
// even though X_OK succeeds on any searchable one.
func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	return unix.Access(path, unix.X_OK) == nil
}
