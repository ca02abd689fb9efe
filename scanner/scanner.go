package scanner

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charlievieth/fastwalk"
	"github.com/m-mizutani/goerr/v2"
)

// ErrRootNotFound is returned by Scan when the root path cannot be stat'ed.
var ErrRootNotFound = errors.New("directory not found")

type Options struct {
	// Excludes are doublestar patterns matched against the slash separated
	// path relative to the scan root. Matching directories are not descended.
	Excludes []string

	// Workers is the fastwalk worker count, 0 picks the fastwalk default.
	Workers int

	Logger *slog.Logger
}

func (o Options) Validate() error {
	for _, p := range o.Excludes {
		if !doublestar.ValidatePattern(p) {
			return goerr.New("invalid exclude pattern", goerr.V("pattern", p))
		}
	}
	if o.Workers < 0 {
		return goerr.New("worker count must not be negative", goerr.V("workers", o.Workers))
	}
	return nil
}

type Scanner struct {
	rootPath string
	opts     Options
	logger   *slog.Logger

	mu      sync.Mutex
	results []ScanResult

	// total entries visited, classified or not
	fileCount atomic.Int64

	startTime   time.Time
	elapsedTime time.Duration
}

func NewScanner(rootPath string, opts Options) *Scanner {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Scanner{
		rootPath: rootPath,
		opts:     opts,
		logger:   logger,
	}
}

func (s *Scanner) FileCount() int64 {
	return s.fileCount.Load()
}

func (s *Scanner) ElapsedTime() time.Duration {
	return s.elapsedTime
}

// Scan walks the tree below the root and returns the classified entries
// ordered by path. A non-nil error means either the root was missing (empty
// results) or the walk stopped early (results gathered so far).
func (s *Scanner) Scan() ([]ScanResult, error) {
	s.startTime = time.Now()
	s.results = nil
	s.fileCount.Store(0)
	defer func() { s.elapsedTime = time.Since(s.startTime) }()

	if err := s.opts.Validate(); err != nil {
		return []ScanResult{}, err
	}

	root := filepath.Clean(s.rootPath)
	if _, err := os.Stat(root); err != nil {
		s.logger.Warn("scan root not accessible", "root", root, "error", err)
		return []ScanResult{}, goerr.Wrap(ErrRootNotFound, "cannot scan root", goerr.V("root", s.rootPath))
	}

	conf := fastwalk.Config{Follow: false, NumWorkers: s.opts.Workers}

	walkFn := func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// unreadable subtree or entry removed mid-walk
			s.logger.Debug("skipping entry", "path", path, "error", err)
			return nil
		}
		if path == root {
			return nil
		}

		s.fileCount.Add(1)

		if s.excluded(root, path) {
			if d.IsDir() {
				return fastwalk.SkipDir
			}
			return nil
		}

		if isDirEntry(path, d) {
			if IsHidden(path) {
				s.add(ScanResult{Kind: HiddenDirectory, Path: path})
			}
			return nil
		}

		switch {
		case IsHidden(path):
			s.add(ScanResult{Kind: HiddenFile, Path: path, Size: FileSize(path)})
		case IsPotentialFlag(d.Name()):
			s.add(ScanResult{Kind: PotentialFlag, Path: path, Size: FileSize(path)})
		}
		return nil
	}

	walkErr := fastwalk.Walk(&conf, root, walkFn)

	results := s.sortedResults()
	s.logger.Info("scan finished",
		"root", root,
		"entries", s.fileCount.Load(),
		"found", len(results),
		"elapsed", time.Since(s.startTime),
	)

	if walkErr != nil {
		s.logger.Warn("walk aborted", "root", root, "error", walkErr)
		return results, goerr.Wrap(walkErr, "walk aborted", goerr.V("root", root))
	}
	return results, nil
}

func (s *Scanner) add(r ScanResult) {
	s.mu.Lock()
	s.results = append(s.results, r)
	s.mu.Unlock()
}

// fastwalk delivers entries from several workers, so the collected results
// are sorted to keep the output stable for a given tree.
func (s *Scanner) sortedResults() []ScanResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	results := slices.Clone(s.results)
	if results == nil {
		results = []ScanResult{}
	}
	slices.SortStableFunc(results, func(a, b ScanResult) int {
		return strings.Compare(a.Path, b.Path)
	})
	return results
}

func (s *Scanner) excluded(root, path string) bool {
	if len(s.opts.Excludes) == 0 {
		return false
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	for _, pattern := range s.opts.Excludes {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}
