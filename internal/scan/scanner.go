package scan

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

const (
	// DefaultMaxEntries is the entry cap applied when none is configured.
	DefaultMaxEntries = 1000

	errorAbsolutePathFormat = "resolving absolute path for %s: %w"
	errorWalkFormat         = "walking %s: %w"
)

// Options configures visibility and cap policy for a scan.
type Options struct {
	ShowHidden bool
	DirsOnly   bool
	// MaxEntries caps the entries that pass filtering; zero or less is unlimited.
	MaxEntries int
	// Warn receives recoverable errors as they occur.
	Warn func(error)
}

// Listing holds the sorted candidates of one scan. Its entry sequence can be
// consumed once.
type Listing struct {
	rootPath   string
	options    Options
	candidates []Entry
	warnings   []error
	limiter    *Limiter
	consumed   bool
}

// Open validates root and enumerates every filesystem object beneath it. The
// candidates are sorted by relative path before any filter is applied.
func Open(ctx context.Context, root string, options Options) (*Listing, error) {
	absoluteRoot, absolutePathError := filepath.Abs(root)
	if absolutePathError != nil {
		return nil, fmt.Errorf(errorAbsolutePathFormat, root, absolutePathError)
	}
	absoluteRoot = filepath.Clean(absoluteRoot)

	rootInfo, statError := os.Stat(absoluteRoot)
	if statError != nil {
		if errors.Is(statError, fs.ErrNotExist) {
			return nil, &RootNotFoundError{Path: absoluteRoot, Err: statError}
		}
		return nil, newScanError(absoluteRoot, statError)
	}
	if !rootInfo.IsDir() {
		return nil, &RootNotFoundError{Path: absoluteRoot, NotDirectory: true}
	}
	if ctx == nil {
		ctx = context.Background()
	}

	listing := &Listing{
		rootPath: absoluteRoot,
		options:  options,
		limiter:  NewLimiter(options.MaxEntries),
	}
	if walkError := listing.collect(ctx); walkError != nil {
		return nil, walkError
	}
	slices.SortFunc(listing.candidates, func(left, right Entry) int {
		return strings.Compare(left.Path, right.Path)
	})
	return listing, nil
}

func (listing *Listing) collect(ctx context.Context) error {
	walkError := filepath.WalkDir(listing.rootPath, func(currentPath string, directoryEntry fs.DirEntry, visitError error) error {
		if contextError := ctx.Err(); contextError != nil {
			return contextError
		}
		if currentPath == listing.rootPath {
			if visitError != nil {
				return newScanError(currentPath, visitError)
			}
			return nil
		}
		if visitError != nil {
			listing.warn(newScanError(currentPath, visitError))
			if directoryEntry != nil && directoryEntry.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		relativePath, relativeError := filepath.Rel(listing.rootPath, currentPath)
		if relativeError != nil {
			listing.warn(newScanError(currentPath, relativeError))
			return nil
		}
		kind := KindFile
		if directoryEntry.IsDir() {
			kind = KindDirectory
		}
		listing.candidates = append(listing.candidates, NewEntry(filepath.ToSlash(relativePath), kind))
		return nil
	})
	if walkError != nil {
		var scanError *ScanError
		if errors.As(walkError, &scanError) || errors.Is(walkError, context.Canceled) || errors.Is(walkError, context.DeadlineExceeded) {
			return walkError
		}
		return fmt.Errorf(errorWalkFormat, listing.rootPath, walkError)
	}
	return nil
}

func (listing *Listing) warn(err error) {
	listing.warnings = append(listing.warnings, err)
	if listing.options.Warn != nil {
		listing.options.Warn(err)
	}
}

// RootPath returns the absolute, cleaned scan root.
func (listing *Listing) RootPath() string {
	return listing.rootPath
}

// RootName returns the base name of the scan root.
func (listing *Listing) RootName() string {
	return filepath.Base(listing.rootPath)
}

// Entries yields the entries that pass the visibility filters, in relative
// path order, until the cap is reached. Only the first iteration yields.
func (listing *Listing) Entries() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		if listing.consumed {
			return
		}
		listing.consumed = true
		candidates := listing.candidates
		listing.candidates = nil
		for _, candidate := range candidates {
			if !listing.passes(candidate) {
				continue
			}
			if !listing.limiter.Admit() {
				return
			}
			if !yield(candidate) {
				return
			}
		}
	}
}

func (listing *Listing) passes(entry Entry) bool {
	if !listing.options.ShowHidden && entry.IsHidden() {
		return false
	}
	if listing.options.DirsOnly && !entry.IsDir() {
		return false
	}
	return true
}

// Truncated reports whether the cap stopped the sequence before the candidates
// were exhausted. It is meaningful once Entries has been consumed.
func (listing *Listing) Truncated() bool {
	return listing.limiter.Truncated()
}

// MaxEntries returns the configured cap.
func (listing *Listing) MaxEntries() int {
	return listing.limiter.Maximum()
}

// Warnings returns the recoverable errors collected during the walk.
func (listing *Listing) Warnings() []error {
	return listing.warnings
}
