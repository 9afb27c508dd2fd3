//go:build windows

package filesystem

import (
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sys/windows"
)

const defaultPathExt = ".COM;.EXE;.BAT;.CMD"

// isExecutable treats a file as executable when it exists and its extension
// is listed in PATHEXT; Windows has no execute permission bit.
func isExecutable(path string) bool {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return false
	}
	attrs, err := windows.GetFileAttributes(p)
	if err != nil || attrs&windows.FILE_ATTRIBUTE_DIRECTORY != 0 {
		return false
	}

	ext := strings.ToUpper(filepath.Ext(path))
	if ext == "" {
		return false
	}
	pathExt := os.Getenv("PATHEXT")
	if pathExt == "" {
		pathExt = defaultPathExt
	}
	for _, candidate := range strings.Split(strings.ToUpper(pathExt), ";") {
		if candidate == ext {
			return true
		}
	}
	return false
}
