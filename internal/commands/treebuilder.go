package commands

import "go.uber.org/zap"

// TreeBuilder builds directory trees using configured options.
type TreeBuilder struct {
	ShowHidden bool
	DirsOnly   bool
	MaxEntries int
	Logger     *zap.Logger
}
