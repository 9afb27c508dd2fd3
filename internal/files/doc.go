// Package files groups the project-tree packages:
//   - filesystem: Filesystem abstraction interfaces and implementations (OS and in-memory)
//   - scanner: Playbook and inventory discovery over a project tree
//
// # Usage
//
//	import (
//	    "github.com/vvka-141/playscan/internal/files/filesystem"
//	    "github.com/vvka-141/playscan/internal/files/scanner"
//	)
//
//	s := scanner.NewScannerWithFS(checksum.New(), filesystem.NewOSFileSystem(), logger, scanner.Options{})
//	result, err := s.Scan("./my-project")
package files
