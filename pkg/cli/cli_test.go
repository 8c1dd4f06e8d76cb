package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

// run executes the root command with fresh flag state and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		if err := f.Value.Set(f.DefValue); err != nil {
			t.Fatalf("reset --%s: %v", f.Name, err)
		}
		f.Changed = false
	})

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRootSolvesArguments(t *testing.T) {
	out, err := run(t, "--no-color", "x^2 = 4", "2*x + 4 = 0")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	for _, want := range []string{
		">>> x^2 = 4",
		"==> x^2 - 4 = 0",
		"Polynomial: [(2, 1), (0, -4)]",
		"Discriminant: 16",
		"x = -4 / 2 = -2",
		"x = 4 / 2 = 2",
		">>> 2*x + 4 = 0",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestSolveReportsFailures(t *testing.T) {
	out, err := run(t, "solve", "--no-color", "--no-steps", "x*x = 0", "x = 0")
	if !errors.Is(err, ErrFailed) {
		t.Fatalf("error = %v, want ErrFailed", err)
	}
	if !strings.Contains(out, "Error: not a polynomial") {
		t.Errorf("missing failure report:\n%s", out)
	}
	// The second equation is still solved.
	if !strings.Contains(out, ">>> x = 0") || !strings.Contains(out, "Degree: 1") {
		t.Errorf("second equation not solved:\n%s", out)
	}
	if strings.Contains(out, "==>") {
		t.Errorf("steps shown with --no-steps:\n%s", out)
	}
}

func TestSolveJSON(t *testing.T) {
	out, err := run(t, "solve", "--format", "json", "x^2 + 1 = 0")
	if err != nil {
		t.Fatal(err)
	}
	var got struct {
		Status string `json:"status"`
		Kind   string `json:"kind"`
		Roots  []struct {
			Text string `json:"text"`
		} `json:"roots"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if got.Status != "solved" || got.Kind != "complex" || len(got.Roots) != 2 {
		t.Fatalf("unexpected report: %+v", got)
	}
	if got.Roots[0].Text != "-1*i" || got.Roots[1].Text != "1*i" {
		t.Errorf("roots = %q, %q", got.Roots[0].Text, got.Roots[1].Text)
	}
}

func TestConfigFileWithFlagOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "computor.toml")
	data := "format = \"json\"\nprecision = 3\ncolor = false\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "--config", path, "x^2 = 2")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, `"text": "1.41"`) {
		t.Errorf("precision from config not applied:\n%s", out)
	}

	out, err = run(t, "--config", path, "--format", "text", "x^2 = 2")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, ">>> x^2 = 2") {
		t.Errorf("--format did not override config:\n%s", out)
	}
}

func TestBadFlags(t *testing.T) {
	if _, err := run(t, "--format", "xml", "x = 0"); err == nil {
		t.Error("expected error for unknown format")
	}
	if _, err := run(t, "--precision", "40", "x = 0"); err == nil {
		t.Error("expected error for out-of-range precision")
	}
	if _, err := run(t, "--config", "missing.ini", "x = 0"); err == nil {
		t.Error("expected error for unsupported config file")
	}
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "computor v"+Version) {
		t.Errorf("version output = %q", out)
	}
}
