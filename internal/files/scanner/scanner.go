package scanner

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vvka-141/playscan/internal/checksum"
	"github.com/vvka-141/playscan/internal/classify"
	"github.com/vvka-141/playscan/internal/files/filesystem"
	"github.com/vvka-141/playscan/pkg/playscan"
)

// errLimitReached stops a walk once enough entries were collected.
var errLimitReached = errors.New("listing limit reached")

// Options tune a Scanner. The zero value scans with the defaults.
type Options struct {
	// InventoryLimit caps the inventory listing; 0 means
	// playscan.DefaultInventoryLimit and a negative value means no cap.
	InventoryLimit int

	// Exclude lists additional directory names pruned from every scan,
	// on top of the classify.SkipDirectory policy.
	Exclude []string
}

func (o Options) inventoryLimit() int {
	if o.InventoryLimit == 0 {
		return playscan.DefaultInventoryLimit
	}
	return o.InventoryLimit
}

// Scanner discovers playbooks and inventories in a project tree.
// Scanner is safe for concurrent use by multiple goroutines as long as
// the provided calculator, fsProvider and logger are also thread-safe.
type Scanner struct {
	calculator checksum.Calculator
	fsProvider filesystem.FileSystemProvider
	classifier *classify.Classifier
	logger     playscan.Logger
	excluded   map[string]bool
	opts       Options
}

// NewScanner creates a new project scanner on the OS filesystem.
// Panics if calculator or logger is nil.
func NewScanner(calculator checksum.Calculator, logger playscan.Logger, opts Options) *Scanner {
	return NewScannerWithFS(calculator, filesystem.NewOSFileSystem(), logger, opts)
}

// NewScannerWithFS creates a new project scanner with a custom filesystem provider.
// This is primarily useful for testing with in-memory filesystems.
// Panics if calculator, fsProvider or logger is nil.
func NewScannerWithFS(calculator checksum.Calculator, fsProvider filesystem.FileSystemProvider, logger playscan.Logger, opts Options) *Scanner {
	if calculator == nil {
		panic("calculator cannot be nil")
	}
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}

	excluded := make(map[string]bool, len(opts.Exclude))
	for _, name := range opts.Exclude {
		if name = strings.TrimSpace(name); name != "" {
			excluded[name] = true
		}
	}

	return &Scanner{
		calculator: calculator,
		fsProvider: fsProvider,
		classifier: classify.New(fsProvider),
		logger:     logger,
		excluded:   excluded,
		opts:       opts,
	}
}

// Scan walks the project and returns both listings.
func (s *Scanner) Scan(projectPath string) (playscan.ScanResult, error) {
	playbooks, err := s.ScanPlaybooks(projectPath)
	if err != nil {
		return playscan.ScanResult{}, err
	}

	inventories, truncated, err := s.ScanInventories(projectPath)
	if err != nil {
		return playscan.ScanResult{}, err
	}

	return playscan.ScanResult{
		Playbooks:          playbooks,
		Inventories:        inventories,
		InventoryTruncated: truncated,
	}, nil
}

// ScanPlaybooks returns every file in the project that looks like a playbook,
// sorted case-insensitively by relative path.
func (s *Scanner) ScanPlaybooks(projectPath string) ([]playscan.Entry, error) {
	entries := []playscan.Entry{}

	err := s.walk(projectPath, func(root, dirPath string, info filesystem.FileInfo) error {
		rel, ok := s.classifier.CouldBePlaybook(root, dirPath, info.Name())
		if !ok {
			return nil
		}
		entries = append(entries, s.newEntry(playscan.KindPlaybook, rel, filepath.Join(dirPath, info.Name()), info))
		return nil
	})
	if err != nil {
		return nil, err
	}

	sortEntries(entries)
	s.logger.Verbose("Found %d playbook(s) in %s", len(entries), projectPath)
	return entries, nil
}

// ScanInventories returns files that look like inventories, sorted
// case-insensitively by relative path. The walk stops at the inventory limit;
// the boolean result reports whether more inventories were left unlisted.
func (s *Scanner) ScanInventories(projectPath string) ([]playscan.Entry, bool, error) {
	limit := s.opts.inventoryLimit()

	entries := []playscan.Entry{}
	truncated := false

	err := s.walk(projectPath, func(root, dirPath string, info filesystem.FileInfo) error {
		rel, ok := s.classifier.CouldBeInventory(root, dirPath, info.Name())
		if !ok {
			return nil
		}
		if limit >= 0 && len(entries) >= limit {
			truncated = true
			return errLimitReached
		}
		entries = append(entries, s.newEntry(playscan.KindInventory, rel, filepath.Join(dirPath, info.Name()), info))
		return nil
	})
	if err != nil && !errors.Is(err, errLimitReached) {
		return nil, false, err
	}

	if truncated {
		s.logger.Info("Inventory listing truncated at %d file(s) in %s", limit, projectPath)
	}

	sortEntries(entries)
	s.logger.Verbose("Found %d inventory file(s) in %s", len(entries), projectPath)
	return entries, truncated, nil
}

// walk visits every non-directory entry of projectPath that is not inside a
// skipped directory. visit receives the absolute project root, the directory
// holding the file and its info; an error from visit stops the walk.
func (s *Scanner) walk(projectPath string, visit func(root, dirPath string, info filesystem.FileInfo) error) error {
	dir, err := s.fsProvider.Open(projectPath)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", playscan.ErrProjectNotFound, projectPath, err)
	}
	root := dir.Path()

	return dir.Walk(func(file filesystem.File, walkErr error) error {
		if walkErr != nil {
			s.logger.Verbose("Skipping unreadable path: %v", walkErr)
			return nil
		}

		info := file.Info()
		if info.IsDir() {
			rel := file.RelativePath()
			if rel == "." {
				return nil
			}
			if classify.SkipDirectory(rel) || s.excluded[info.Name()] {
				s.logger.Verbose("Skipping directory: %s", filepath.ToSlash(rel))
				return filesystem.SkipDir
			}
			return nil
		}

		// Symlinks are never followed into directories.
		if info.Mode()&fs.ModeSymlink != 0 {
			if target, err := s.fsProvider.Stat(file.Path()); err == nil && target.IsDir() {
				return nil
			}
		}

		return visit(root, filepath.Dir(file.Path()), info)
	})
}

func (s *Scanner) newEntry(kind playscan.Kind, rel, absPath string, info filesystem.FileInfo) playscan.Entry {
	path := filepath.ToSlash(rel)
	s.logger.Verbose("Accepted %s: %s", kind, path)

	entry := playscan.Entry{
		Path:      path,
		ID:        EntryID(kind, path).String(),
		Kind:      kind,
		SizeBytes: info.Size(),
	}

	if content, err := s.fsProvider.ReadFile(absPath); err == nil {
		entry.Checksum = s.calculator.CalculateNormalized(content)
		entry.RawChecksum = s.calculator.CalculateRaw(content)
	}

	return entry
}

func sortEntries(entries []playscan.Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return strings.ToLower(entries[i].Path) < strings.ToLower(entries[j].Path)
	})
}

// Verify Scanner implements the interface at compile time
var _ playscan.ProjectScanner = (*Scanner)(nil)
