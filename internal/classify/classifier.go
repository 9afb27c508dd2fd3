package classify

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/vvka-141/playscan/internal/files/filesystem"
	"github.com/vvka-141/playscan/pkg/playscan"
)

// space is the whitespace class of byte-string regexes, which unlike RE2's
// \s includes the vertical tab.
const space = `[\t\n\v\f\r ]`

var (
	playbookMarker       = regexp.MustCompile(`^` + space + `*?-?` + space + `*?(?:hosts|include):` + space + `*?.*?$`)
	inventoryLeadingChar = regexp.MustCompile(`^[a-zA-Z0-9_.=\[\]]`)
)

// Classifier runs the playbook and inventory heuristics against a filesystem.
// It holds no mutable state.
type Classifier struct {
	fsProvider filesystem.FileSystemProvider
}

// New creates a Classifier reading through fsProvider.
// Panics if fsProvider is nil.
func New(fsProvider filesystem.FileSystemProvider) *Classifier {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &Classifier{fsProvider: fsProvider}
}

var defaultClassifier = New(filesystem.NewOSFileSystem())

// CouldBePlaybook classifies a file on the OS filesystem; see Classifier.CouldBePlaybook.
func CouldBePlaybook(projectRoot, dirPath, filename string) (string, bool) {
	return defaultClassifier.CouldBePlaybook(projectRoot, dirPath, filename)
}

// CouldBeInventory classifies a file on the OS filesystem; see Classifier.CouldBeInventory.
func CouldBeInventory(projectRoot, dirPath, filename string) (string, bool) {
	return defaultClassifier.CouldBeInventory(projectRoot, dirPath, filename)
}

// SkipDirectory applies the package-level SkipDirectory policy.
func (c *Classifier) SkipDirectory(relativeDirPath string) bool {
	return SkipDirectory(relativeDirPath)
}

// CouldBePlaybook reports whether dirPath/filename looks like a playbook and
// returns its path relative to projectRoot.
//
// Only .yml and .yaml files are considered. The file qualifies when any line
// is a "hosts:" or "include:" entry, optionally behind a list dash, or when
// its first line carries the vault marker. Every line is read even after a
// match.
func (c *Classifier) CouldBePlaybook(projectRoot, dirPath, filename string) (string, bool) {
	switch extension(filename) {
	case ".yml", ".yaml":
	default:
		return "", false
	}

	playbookPath := filepath.Join(dirPath, filename)

	matched := false
	err := c.eachLine(playbookPath, func(n int, line []byte) bool {
		if playbookMarker.Match(line) {
			matched = true
		} else if n == 0 && bytes.HasPrefix(line, []byte(playscan.VaultMarker)) {
			matched = true
		}
		return true
	})
	if err != nil || !matched {
		return "", false
	}

	return relativeTo(projectRoot, playbookPath)
}

// CouldBeInventory reports whether dirPath/filename looks like an inventory
// and returns its path relative to projectRoot.
//
// Files ending in .yml, .yaml or .ini and executable files (dynamic inventory
// scripts) are accepted without being read. Any other extension rejects the
// file, so "host.1" is rejected as having extension ".1". Extensionless files
// are accepted only when each of their first ten lines starts with a letter,
// digit, "_", ".", "=", "[" or "]"; an empty or "#" comment line rejects.
func (c *Classifier) CouldBeInventory(projectRoot, dirPath, filename string) (string, bool) {
	inventoryPath := filepath.Join(dirPath, filename)

	switch ext := extension(filename); ext {
	case ".yml", ".yaml", ".ini":
		return relativeTo(projectRoot, inventoryPath)
	default:
		if c.fsProvider.IsExecutable(inventoryPath) {
			return relativeTo(projectRoot, inventoryPath)
		}
		if ext != "" {
			return "", false
		}
	}

	plausible := true
	err := c.eachLine(inventoryPath, func(n int, line []byte) bool {
		if n >= playscan.MaxInventoryProbeLines {
			return false
		}
		if !inventoryLeadingChar.Match(line) {
			plausible = false
			return false
		}
		return true
	})
	if err != nil || !plausible {
		return "", false
	}

	return relativeTo(projectRoot, inventoryPath)
}

// eachLine feeds fn every line of path with its terminator stripped, until
// fn returns false or the file ends. Bytes are passed through untouched, so
// invalid UTF-8 and arbitrarily long lines never fail the read.
func (c *Classifier) eachLine(path string, fn func(n int, line []byte) bool) error {
	rc, err := c.fsProvider.OpenFile(path)
	if err != nil {
		return err
	}
	defer rc.Close()

	reader := bufio.NewReader(rc)
	for n := 0; ; n++ {
		line, readErr := reader.ReadBytes('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return readErr
		}
		if len(line) == 0 && readErr != nil {
			return nil
		}
		if !fn(n, trimEOL(line)) {
			return nil
		}
		if readErr != nil {
			return nil
		}
	}
}

// trimEOL strips one trailing "\n" or "\r\n".
func trimEOL(line []byte) []byte {
	line = bytes.TrimSuffix(line, []byte("\n"))
	return bytes.TrimSuffix(line, []byte("\r"))
}

// extension is filepath.Ext except that leading dots never start an
// extension: ".hosts" and "..yml" have none.
func extension(filename string) string {
	ext := filepath.Ext(filename)
	if strings.Trim(filename[:len(filename)-len(ext)], ".") == "" {
		return ""
	}
	return ext
}

// relativeTo expresses target relative to projectRoot. Either may be
// relative to the working directory; both are made absolute first.
func relativeTo(projectRoot, target string) (string, bool) {
	absRoot, err := filepath.Abs(projectRoot)
	if err != nil {
		return "", false
	}
	absTarget, err := filepath.Abs(target)
	if err != nil {
		return "", false
	}
	rel, err := filepath.Rel(absRoot, absTarget)
	if err != nil {
		return "", false
	}
	return rel, true
}
