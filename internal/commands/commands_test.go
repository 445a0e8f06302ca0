package commands_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/temirov/dtree/internal/commands"
	"github.com/temirov/dtree/internal/scan"
)

const (
	projectDirectoryName = "project"
	plainFileName        = "a.txt"
	nestedDirectoryName  = "b"
	nestedFileName       = "c.txt"
	hiddenFileName       = ".env"
)

// createProject builds project/{a.txt, b/, b/c.txt, .env}.
func createProject(t *testing.T) string {
	t.Helper()
	rootDirectory := filepath.Join(t.TempDir(), projectDirectoryName)
	nestedDirectory := filepath.Join(rootDirectory, nestedDirectoryName)
	if makeDirError := os.MkdirAll(nestedDirectory, 0o755); makeDirError != nil {
		t.Fatalf("mkdir: %v", makeDirError)
	}
	for _, filePath := range []string{
		filepath.Join(rootDirectory, plainFileName),
		filepath.Join(nestedDirectory, nestedFileName),
		filepath.Join(rootDirectory, hiddenFileName),
	} {
		if writeError := os.WriteFile(filePath, []byte("x"), 0o644); writeError != nil {
			t.Fatalf("write %s: %v", filePath, writeError)
		}
	}
	return rootDirectory
}

// TestGetTreeData verifies counts, filtering, and truncation for the project layout.
func TestGetTreeData(t *testing.T) {
	testCases := []struct {
		name              string
		builder           commands.TreeBuilder
		expectedFiles     int
		expectedFolders   int
		expectedChildren  []string
		expectedTruncated bool
	}{
		{
			name:             "default",
			builder:          commands.TreeBuilder{MaxEntries: scan.DefaultMaxEntries},
			expectedFiles:    2,
			expectedFolders:  2,
			expectedChildren: []string{plainFileName, nestedDirectoryName},
		},
		{
			name:             "dirs_only",
			builder:          commands.TreeBuilder{DirsOnly: true, MaxEntries: scan.DefaultMaxEntries},
			expectedFiles:    0,
			expectedFolders:  2,
			expectedChildren: []string{nestedDirectoryName},
		},
		{
			name:             "show_hidden",
			builder:          commands.TreeBuilder{ShowHidden: true, MaxEntries: scan.DefaultMaxEntries},
			expectedFiles:    3,
			expectedFolders:  2,
			expectedChildren: []string{hiddenFileName, plainFileName, nestedDirectoryName},
		},
		{
			name:              "single_entry_cap",
			builder:           commands.TreeBuilder{MaxEntries: 1},
			expectedFiles:     1,
			expectedFolders:   1,
			expectedChildren:  []string{plainFileName},
			expectedTruncated: true,
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			rootDirectory := createProject(t)
			result, getError := testCase.builder.GetTreeData(context.Background(), rootDirectory)
			if getError != nil {
				t.Fatalf("GetTreeData error: %v", getError)
			}
			if result.Root.Name() != projectDirectoryName {
				t.Fatalf("expected root %s, got %s", projectDirectoryName, result.Root.Name())
			}
			if result.Summary.Files != testCase.expectedFiles || result.Summary.Folders != testCase.expectedFolders {
				t.Fatalf("unexpected summary %+v", result.Summary)
			}
			if result.Summary.Truncated != testCase.expectedTruncated {
				t.Fatalf("expected truncated=%t, got %t", testCase.expectedTruncated, result.Summary.Truncated)
			}
			children := result.Root.Children()
			if len(children) != len(testCase.expectedChildren) {
				t.Fatalf("expected children %v, got %d", testCase.expectedChildren, len(children))
			}
			for index, child := range children {
				if child.Name() != testCase.expectedChildren[index] {
					t.Fatalf("child %d: expected %s, got %s", index, testCase.expectedChildren[index], child.Name())
				}
			}
		})
	}
}

// TestGetTreeDataMissingRoot verifies that a missing root surfaces RootNotFoundError.
func TestGetTreeDataMissingRoot(t *testing.T) {
	missingRoot := filepath.Join(t.TempDir(), "missing")
	builder := commands.TreeBuilder{}
	_, getError := builder.GetTreeData(context.Background(), missingRoot)
	var rootError *scan.RootNotFoundError
	if !errors.As(getError, &rootError) {
		t.Fatalf("expected RootNotFoundError, got %v", getError)
	}
}

// TestGetTreeDataLogsSkippedSubtrees verifies that unreadable subtrees are logged and skipped.
func TestGetTreeDataLogsSkippedSubtrees(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for this user")
	}
	rootDirectory := createProject(t)
	nestedDirectory := filepath.Join(rootDirectory, nestedDirectoryName)
	if chmodError := os.Chmod(nestedDirectory, 0o000); chmodError != nil {
		t.Fatalf("chmod: %v", chmodError)
	}
	t.Cleanup(func() { _ = os.Chmod(nestedDirectory, 0o755) })

	core, logs := observer.New(zapcore.WarnLevel)
	builder := commands.TreeBuilder{MaxEntries: scan.DefaultMaxEntries, Logger: zap.New(core)}
	result, getError := builder.GetTreeData(context.Background(), rootDirectory)
	if getError != nil {
		t.Fatalf("GetTreeData error: %v", getError)
	}
	if result.Summary.Files != 1 || result.Summary.Folders != 2 {
		t.Fatalf("unexpected summary %+v", result.Summary)
	}
	if logs.Len() != 1 {
		t.Fatalf("expected one warning log, got %d", logs.Len())
	}
	loggedFields := logs.All()[0].ContextMap()
	if loggedFields["path"] != nestedDirectory {
		t.Fatalf("expected path field %s, got %v", nestedDirectory, loggedFields["path"])
	}
	if loggedFields["kind"] != string(scan.ErrorKindPermissionDenied) {
		t.Fatalf("expected kind field %s, got %v", scan.ErrorKindPermissionDenied, loggedFields["kind"])
	}
	if len(result.Warnings) != 1 || !scan.IsPermissionDenied(result.Warnings[0]) {
		t.Fatalf("expected a permission warning, got %v", result.Warnings)
	}
}
