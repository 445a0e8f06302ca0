package scan

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrorKind classifies recoverable failures met while walking a subtree.
type ErrorKind string

const (
	// ErrorKindPermissionDenied reports an entry the process may not read.
	ErrorKindPermissionDenied ErrorKind = "permission denied"
	// ErrorKindIO reports any other I/O failure.
	ErrorKindIO ErrorKind = "scan error"

	rootNotFoundMessageFormat = "directory '%s' does not exist"
	rootNotDirectoryFormat    = "'%s' is not a directory"
	scanErrorMessageFormat    = "%s: %s: %v"
)

// RootNotFoundError reports a scan root that does not resolve to an existing directory.
type RootNotFoundError struct {
	Path         string
	NotDirectory bool
	Err          error
}

func (rootError *RootNotFoundError) Error() string {
	if rootError.NotDirectory {
		return fmt.Sprintf(rootNotDirectoryFormat, rootError.Path)
	}
	return fmt.Sprintf(rootNotFoundMessageFormat, rootError.Path)
}

func (rootError *RootNotFoundError) Unwrap() error {
	return rootError.Err
}

// ScanError reports a failure to read an entry during the walk.
type ScanError struct {
	Path string
	Kind ErrorKind
	Err  error
}

func newScanError(path string, cause error) *ScanError {
	kind := ErrorKindIO
	if errors.Is(cause, fs.ErrPermission) {
		kind = ErrorKindPermissionDenied
	}
	return &ScanError{Path: path, Kind: kind, Err: cause}
}

func (scanError *ScanError) Error() string {
	return fmt.Sprintf(scanErrorMessageFormat, scanError.Kind, scanError.Path, scanError.Err)
}

func (scanError *ScanError) Unwrap() error {
	return scanError.Err
}

// IsPermissionDenied reports whether err carries a permission failure.
func IsPermissionDenied(err error) bool {
	var scanError *ScanError
	if errors.As(err, &scanError) {
		return scanError.Kind == ErrorKindPermissionDenied
	}
	return errors.Is(err, fs.ErrPermission)
}
