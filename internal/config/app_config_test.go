package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/temirov/dtree/internal/utils"
)

type configTestCase struct {
	name             string
	globalContent    string
	localContent     string
	explicitPath     string
	explicitContent  string
	expectFormat     string
	expectAll        *bool
	expectGuides     *bool
	expectMaxEntries *int
	expectColor      string
}

func boolPointer(value bool) *bool {
	pointer := value
	return &pointer
}

func intPointer(value int) *int {
	pointer := value
	return &pointer
}

func TestLoadApplicationConfigurationMergesSources(t *testing.T) {
	testCases := []configTestCase{
		{
			name:             "local_overrides_global",
			globalContent:    "tree:\n  format: json\n  all: true\n  max_entries: 50\n  color: never\n",
			localContent:     "tree:\n  format: yaml\n  guides: false\n",
			expectFormat:     "yaml",
			expectAll:        boolPointer(true),
			expectGuides:     boolPointer(false),
			expectMaxEntries: intPointer(50),
			expectColor:      "never",
		},
		{
			name:             "explicit_path_replaces_local",
			globalContent:    "tree:\n  format: json\n",
			localContent:     "tree:\n  format: xml\n",
			explicitPath:     "custom.yaml",
			explicitContent:  "tree:\n  format: raw\n  max_entries: 5\n",
			expectFormat:     "raw",
			expectMaxEntries: intPointer(5),
		},
		{
			name:         "no_files",
			expectFormat: "",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			homeDir := t.TempDir()
			workingDir := t.TempDir()
			configDir := filepath.Join(homeDir, utils.GlobalConfigDirectoryName)
			if err := os.MkdirAll(configDir, 0o755); err != nil {
				t.Fatalf("create config dir: %v", err)
			}
			if testCase.globalContent != "" {
				globalPath := filepath.Join(configDir, utils.ConfigFileName)
				if err := os.WriteFile(globalPath, []byte(testCase.globalContent), 0o600); err != nil {
					t.Fatalf("write global config: %v", err)
				}
			}
			if testCase.localContent != "" {
				localPath := filepath.Join(workingDir, utils.LocalConfigFileName)
				if err := os.WriteFile(localPath, []byte(testCase.localContent), 0o600); err != nil {
					t.Fatalf("write local config: %v", err)
				}
			}
			if testCase.explicitPath != "" {
				target := filepath.Join(workingDir, testCase.explicitPath)
				if err := os.WriteFile(target, []byte(testCase.explicitContent), 0o600); err != nil {
					t.Fatalf("write explicit config: %v", err)
				}
			}

			t.Setenv("HOME", homeDir)
			t.Setenv("USERPROFILE", homeDir)

			loadedConfig, err := LoadApplicationConfiguration(LoadOptions{
				WorkingDirectory: workingDir,
				ExplicitFilePath: testCase.explicitPath,
			})
			if err != nil {
				t.Fatalf("LoadApplicationConfiguration error: %v", err)
			}
			treeConfig := loadedConfig.Tree
			if treeConfig.Format != testCase.expectFormat {
				t.Fatalf("expected format %q, got %q", testCase.expectFormat, treeConfig.Format)
			}
			if treeConfig.Color != testCase.expectColor {
				t.Fatalf("expected color %q, got %q", testCase.expectColor, treeConfig.Color)
			}
			assertBoolPointer(t, "all", testCase.expectAll, treeConfig.All)
			assertBoolPointer(t, "guides", testCase.expectGuides, treeConfig.Guides)
			if (testCase.expectMaxEntries == nil) != (treeConfig.MaxEntries == nil) {
				t.Fatalf("expected max entries %v, got %v", testCase.expectMaxEntries, treeConfig.MaxEntries)
			}
			if testCase.expectMaxEntries != nil && *testCase.expectMaxEntries != *treeConfig.MaxEntries {
				t.Fatalf("expected max entries %d, got %d", *testCase.expectMaxEntries, *treeConfig.MaxEntries)
			}
		})
	}
}

func TestLoadApplicationConfigurationRequiresExplicitFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("USERPROFILE", t.TempDir())
	_, err := LoadApplicationConfiguration(LoadOptions{
		WorkingDirectory: t.TempDir(),
		ExplicitFilePath: "missing.yaml",
	})
	if err == nil {
		t.Fatalf("expected error for a missing explicit configuration file")
	}
}

func TestMergeKeepsUnsetFields(t *testing.T) {
	base := ApplicationConfiguration{Tree: TreeConfiguration{All: boolPointer(true), Format: "json"}}
	override := ApplicationConfiguration{Tree: TreeConfiguration{DirsOnly: boolPointer(true)}}

	merged := base.Merge(override)
	if merged.Tree.All == nil || !*merged.Tree.All {
		t.Fatalf("expected all to survive the merge")
	}
	if merged.Tree.DirsOnly == nil || !*merged.Tree.DirsOnly {
		t.Fatalf("expected dirs_only from override")
	}
	if merged.Tree.Format != "json" {
		t.Fatalf("expected format json, got %q", merged.Tree.Format)
	}
	*override.Tree.DirsOnly = false
	if !*merged.Tree.DirsOnly {
		t.Fatalf("merge must copy pointer values")
	}
}

func assertBoolPointer(t *testing.T, name string, expected, actual *bool) {
	t.Helper()
	if (expected == nil) != (actual == nil) {
		t.Fatalf("%s: expected %v, got %v", name, expected, actual)
	}
	if expected != nil && *expected != *actual {
		t.Fatalf("%s: expected %t, got %t", name, *expected, *actual)
	}
}
