// Package filesystem provides filesystem abstraction interfaces and implementations.
//
// This package defines interfaces for file and directory operations, enabling
// testability through in-memory implementations while maintaining compatibility
// with the OS filesystem.
//
// Key interfaces:
//   - FileSystemProvider: Opens directories and files, stats paths, checks execute permission
//   - Directory: Represents a directory that can be traversed (with SkipDir pruning)
//   - File: Represents an entry encountered during a walk
//   - FileInfo: File metadata similar to os.FileInfo
//
// Implementations:
//   - OSFileSystem: Production implementation using the OS filesystem
//   - MemoryFileSystem: In-memory implementation for testing
//
// Symbolic links are never followed during a walk.
package filesystem
