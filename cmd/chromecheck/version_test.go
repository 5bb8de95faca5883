package main

import (
	"bytes"
	"strings"
	"testing"
)

// TestGetVersion verifies a usable version string is always produced,
// whether or not ldflags were set.
func TestGetVersion(t *testing.T) {
	t.Parallel()

	if got := getVersion(); got == "" {
		t.Error("getVersion() should never return an empty string")
	}
}

// TestGetCommit verifies a commit identifier is always produced.
func TestGetCommit(t *testing.T) {
	t.Parallel()

	if got := getCommit(); got == "" {
		t.Error("getCommit() should never return an empty string")
	}
}

// TestGetDate verifies a build date is always produced.
func TestGetDate(t *testing.T) {
	t.Parallel()

	if got := getDate(); got == "" {
		t.Error("getDate() should never return an empty string")
	}
}

// TestNewVersionCmd verifies the version subcommand output shape.
func TestNewVersionCmd(t *testing.T) {
	t.Parallel()

	cmd := NewVersionCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	output := out.String()
	if !strings.Contains(output, "chromecheck version") {
		t.Errorf("output = %q, want the version line", output)
	}
	if !strings.Contains(output, "commit:") {
		t.Errorf("output = %q, want the commit line", output)
	}
	if !strings.Contains(output, "built:") {
		t.Errorf("output = %q, want the build date line", output)
	}
}
