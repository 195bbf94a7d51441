package e2e

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/you-not-fish/aqa/internal/aqa"
)

// TestE2E runs end-to-end tests for all .aqa files in testdata/.
// Each test:
//  1. Runs the full pipeline: scan → parse → evaluate
//  2. Renders the value, or the stage-tagged diagnostic on failure
//  3. Compares the result against the .golden file
func TestE2E(t *testing.T) {
	testFiles, err := filepath.Glob("testdata/*.aqa")
	if err != nil {
		t.Fatal(err)
	}
	if len(testFiles) == 0 {
		t.Fatal("no .aqa test files found in testdata/")
	}

	for _, testFile := range testFiles {
		name := strings.TrimSuffix(filepath.Base(testFile), ".aqa")
		t.Run(name, func(t *testing.T) {
			runE2ETest(t, testFile)
		})
	}
}

// runE2ETest runs a single end-to-end test.
func runE2ETest(t *testing.T, aqaFile string) {
	t.Helper()

	goldenFile := strings.TrimSuffix(aqaFile, ".aqa") + ".golden"
	expected, err := os.ReadFile(goldenFile)
	if err != nil {
		t.Fatalf("reading golden file: %v", err)
	}
	src, err := os.ReadFile(aqaFile)
	if err != nil {
		t.Fatalf("reading source: %v", err)
	}

	got := evaluate(t, filepath.Base(aqaFile), string(src))
	if want := string(expected); got != want {
		t.Errorf("output mismatch:\ngot:  %q\nwant: %q", got, want)
	}
}

// evaluate runs src through the pipeline and renders the outcome the way
// "aqa run" does: the value's display form, or "stage error: message".
func evaluate(t *testing.T, filename, src string) string {
	t.Helper()

	p := &aqa.Pipeline{Filename: filename}
	v, err := p.Run(src)
	if err == nil {
		return v.String() + "\n"
	}

	var e *aqa.Error
	if !errors.As(err, &e) {
		t.Fatalf("pipeline returned an untagged error: %v", err)
	}
	return e.Stage.String() + " error: " + e.Error() + "\n"
}
