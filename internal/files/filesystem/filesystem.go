package filesystem

import (
	"io"
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
// This provides compatibility with the fs.FS ecosystem while maintaining
// a stable local type for our abstraction layer.
type FileInfo = fs.FileInfo

// SkipDir may be returned from a Walk callback to prune the current directory.
var SkipDir = fs.SkipDir

// File represents an individual file or directory encountered during a walk
type File interface {
	// Path returns the absolute path to the file
	Path() string

	// RelativePath returns the path relative to the walk root ("." for the root itself)
	RelativePath() string

	// Info returns file metadata
	Info() FileInfo
}

// Directory represents a directory that can be traversed to discover files
type Directory interface {
	// Path returns the absolute path to the directory
	Path() string

	// Walk traverses the directory tree in lexical order, calling fn for each
	// file and directory, the root included. Returning SkipDir from fn for a
	// directory prunes its subtree; any other error stops the walk.
	Walk(fn func(File, error) error) error
}

// FileSystemProvider is the read-only view of a filesystem used by the
// classifiers and the project scanner.
type FileSystemProvider interface {
	// Open opens a directory at the specified path
	Open(path string) (Directory, error)

	// OpenFile opens a regular file for streaming reads.
	OpenFile(path string) (io.ReadCloser, error)

	// ReadFile reads a specific file at the given path
	ReadFile(path string) ([]byte, error)

	// Stat returns file information for the given path
	Stat(path string) (FileInfo, error)

	// IsExecutable reports whether the invoking user may execute path.
	// Any error (missing file, permission lookup failure) yields false.
	IsExecutable(path string) bool
}
