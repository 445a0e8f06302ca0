package utils

import (
	"runtime/debug"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestGetApplicationVersion(t *testing.T) {
	testCases := []struct {
		name      string
		stamped   string
		buildInfo *debug.BuildInfo
		available bool
		expected  string
	}{
		{
			name:      "stamped_version_wins",
			stamped:   "v1.2.3",
			buildInfo: &debug.BuildInfo{Main: debug.Module{Version: "v0.9.0"}},
			available: true,
			expected:  "v1.2.3",
		},
		{
			name:      "module_version",
			buildInfo: &debug.BuildInfo{Main: debug.Module{Version: "v0.9.0"}},
			available: true,
			expected:  "v0.9.0",
		},
		{
			name: "dirty_revision",
			buildInfo: &debug.BuildInfo{
				Main: debug.Module{Version: "(devel)"},
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "0123456789abcdef0123"},
					{Key: "vcs.modified", Value: "true"},
				},
			},
			available: true,
			expected:  "devel-0123456789ab-dirty",
		},
		{
			name:      "devel_without_revision",
			buildInfo: &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}},
			available: true,
			expected:  "unknown",
		},
		{
			name:     "no_build_info",
			expected: "unknown",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			originalVersion, originalReader := Version, readBuildInfo
			t.Cleanup(func() { Version, readBuildInfo = originalVersion, originalReader })
			Version = testCase.stamped
			readBuildInfo = func() (*debug.BuildInfo, bool) { return testCase.buildInfo, testCase.available }

			if got := GetApplicationVersion(); got != testCase.expected {
				t.Fatalf("expected %q, got %q", testCase.expected, got)
			}
		})
	}
}

func TestNewApplicationLogger(t *testing.T) {
	level := zap.NewAtomicLevelAt(DefaultLogLevel)
	logger, err := NewApplicationLogger(level)
	if err != nil {
		t.Fatalf("NewApplicationLogger error: %v", err)
	}
	if logger == nil {
		t.Fatalf("expected a logger")
	}
	if logger.Core().Enabled(zapcore.InfoLevel) {
		t.Fatalf("expected info to be disabled at the default level")
	}
	level.SetLevel(zapcore.DebugLevel)
	if !logger.Core().Enabled(zapcore.InfoLevel) {
		t.Fatalf("expected info to follow the atomic level")
	}
}
