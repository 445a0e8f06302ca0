// Package commands contains the core logic for data collection for each command.
package commands

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/temirov/dtree/internal/scan"
	"github.com/temirov/dtree/internal/tree"
	"github.com/temirov/dtree/internal/types"
)

const (
	// warningSkipSubentryMessage is logged when a subentry cannot be read.
	warningSkipSubentryMessage = "skipping unreadable entry"

	logFieldPath = "path"
	logFieldKind = "kind"

	// errorScanRootFormat is used when the root cannot be scanned.
	errorScanRootFormat = "scanning %s: %w"
)

// TreeResult is the built tree of one root plus its summary.
type TreeResult struct {
	RootPath string
	Root     *tree.Branch
	Summary  types.OutputSummary
	Warnings []error
}

// GetTreeData scans the root configured on treeBuilder and builds its tree.
// Unreadable subentries are logged and skipped.
func (treeBuilder *TreeBuilder) GetTreeData(ctx context.Context, rootDirectoryPath string) (*TreeResult, error) {
	logger := treeBuilder.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	listing, openError := scan.Open(ctx, rootDirectoryPath, scan.Options{
		ShowHidden: treeBuilder.ShowHidden,
		DirsOnly:   treeBuilder.DirsOnly,
		MaxEntries: treeBuilder.MaxEntries,
		Warn: func(warning error) {
			logger.Warn(warningSkipSubentryMessage, warningFields(warning)...)
		},
	})
	if openError != nil {
		return nil, fmt.Errorf(errorScanRootFormat, rootDirectoryPath, openError)
	}

	root := tree.Build(listing.RootName(), listing.Entries())
	counts := tree.Count(root)
	return &TreeResult{
		RootPath: listing.RootPath(),
		Root:     root,
		Summary: types.OutputSummary{
			Files:      counts.Files,
			Folders:    counts.Folders,
			Truncated:  listing.Truncated(),
			MaxEntries: listing.MaxEntries(),
		},
		Warnings: listing.Warnings(),
	}, nil
}

func warningFields(warning error) []zap.Field {
	var scanError *scan.ScanError
	if errors.As(warning, &scanError) {
		return []zap.Field{
			zap.String(logFieldPath, scanError.Path),
			zap.String(logFieldKind, string(scanError.Kind)),
			zap.Error(scanError.Err),
		}
	}
	return []zap.Field{zap.Error(warning)}
}
