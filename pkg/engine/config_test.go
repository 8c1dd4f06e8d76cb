package engine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name string
		file string
		data string
	}{
		{"toml", "computor.toml", "format = \"json\"\nprecision = 3\nsteps = false\nmax_depth = 10\n"},
		{"yaml", "computor.yaml", "format: json\nprecision: 3\nsteps: false\nmax_depth: 10\n"},
		{"yml", "computor.yml", "format: json\nprecision: 3\nsteps: false\nmax_depth: 10\n"},
	}

	want := DefaultConfig()
	want.Format = "json"
	want.Precision = 3
	want.Steps = false
	want.MaxDepth = 10

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := LoadConfig(writeFile(t, tc.file, tc.data))
			if err != nil {
				t.Fatalf("LoadConfig: %v", err)
			}
			if diff := cmp.Diff(want, cfg); diff != "" {
				t.Errorf("config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		file string
		data string
	}{
		{"unknown extension", "computor.ini", "format = text\n"},
		{"bad toml", "computor.toml", "format = \n"},
		{"bad yaml", "computor.yaml", "format: [\n"},
		{"unknown format", "computor.toml", "format = \"xml\"\n"},
		{"negative precision", "computor.yaml", "precision: -1\n"},
		{"zero depth", "computor.toml", "max_depth = 0\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := LoadConfig(writeFile(t, tc.file, tc.data)); err == nil {
				t.Error("expected error")
			}
		})
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}
