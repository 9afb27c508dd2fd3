package classify

import (
	"path/filepath"
	"strings"
)

// skippedSegments are directory names whose whole subtree holds role
// internals or variable files rather than runnable content.
var skippedSegments = map[string]bool{
	"roles":      true,
	"tasks":      true,
	"group_vars": true,
	"host_vars":  true,
}

// SkipDirectory reports whether a directory, given relative to the scan root
// with platform separators, should be excluded together with its subtree.
// Hidden directories (any segment starting with ".") are excluded too.
func SkipDirectory(relativeDirPath string) bool {
	for _, segment := range strings.Split(relativeDirPath, string(filepath.Separator)) {
		if skippedSegments[segment] || strings.HasPrefix(segment, ".") {
			return true
		}
	}
	return false
}
