package cli

import (
	"bytes"
	"strings"
	"testing"
)

// resetGlobals resets package-level state between tests to avoid cross-test
// contamination.
func resetGlobals(t *testing.T) {
	t.Helper()
	oldSource := globalSource
	oldVerbose := globalVerbose
	t.Cleanup(func() {
		globalSource = oldSource
		globalVerbose = oldVerbose
	})
	globalSource = ""
	globalVerbose = false
}

func TestRootHelp(t *testing.T) {
	resetGlobals(t)
	cmd := newRootCmd("test-version")
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--help"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	out := buf.String()
	for _, sub := range []string{"generate", "preview", "serve"} {
		if !strings.Contains(out, sub) {
			t.Errorf("root --help output should mention %q subcommand", sub)
		}
	}
}

func TestRootVersion(t *testing.T) {
	resetGlobals(t)
	cmd := newRootCmd("1.2.3")
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--version"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(buf.String(), "1.2.3") {
		t.Errorf("--version output should contain the version, got %q", buf.String())
	}
}

func TestGenerateHelp(t *testing.T) {
	resetGlobals(t)
	cmd := newRootCmd("test-version")
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"generate", "--help"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("generate --help should exit 0, got error: %v", err)
	}

	out := buf.String()
	for _, flag := range []string{"editor", "output", "from-runner", "skip", "skip-pattern", "zed-option", "vscode-option"} {
		if !strings.Contains(out, flag) {
			t.Errorf("generate --help should mention --%s", flag)
		}
	}
}

func TestConvertAlias(t *testing.T) {
	resetGlobals(t)
	cmd := newRootCmd("test-version")
	found, _, err := cmd.Find([]string{"convert"})
	if err != nil {
		t.Fatalf("expected 'convert' to route to a command, got error: %v", err)
	}
	if found.Name() != "generate" {
		t.Errorf("expected 'convert' to alias 'generate', got %q", found.Name())
	}
}

func TestPreviewHelp(t *testing.T) {
	resetGlobals(t)
	cmd := newRootCmd("test-version")
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"preview", "--help"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("preview --help should exit 0, got error: %v", err)
	}
	if !strings.Contains(buf.String(), "from-runner") {
		t.Error("preview --help should mention --from-runner")
	}
}

func TestServeHelp(t *testing.T) {
	resetGlobals(t)
	cmd := newRootCmd("test-version")
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"serve", "--help"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("serve --help should exit 0, got error: %v", err)
	}
	if !strings.Contains(buf.String(), "addr") {
		t.Error("serve --help should mention --addr flag")
	}
}

func TestPersistentFlags(t *testing.T) {
	resetGlobals(t)
	cmd := newRootCmd("test-version")
	for _, name := range []string{"source", "verbose"} {
		if cmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("--%s should be a persistent flag on root", name)
		}
	}
}

func TestSourceFlagBeforeSubcommandExecute(t *testing.T) {
	// Execute "--source=nonexistent.yml generate" through cobra to verify
	// that the persistent --source flag is consumed and sets globalSource.
	// generate fails because the file does not exist, but globalSource must
	// be set before the failure.
	resetGlobals(t)
	cmd := newRootCmd("test-version")
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--source=nonexistent.yml", "generate"})

	_ = cmd.Execute() // expected to fail (source not found)

	if globalSource != "nonexistent.yml" {
		t.Errorf("globalSource = %q, want %q", globalSource, "nonexistent.yml")
	}
}

func TestGenerateMissingSourceExitCode(t *testing.T) {
	resetGlobals(t)
	cmd := newRootCmd("test-version")
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--source=nonexistent.yml", "generate"})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected an error for a missing source file")
	}
	ee, ok := err.(*exitError)
	if !ok {
		t.Fatalf("expected *exitError, got %T: %v", err, err)
	}
	if ee.code != 1 {
		t.Errorf("exit code = %d, want 1", ee.code)
	}
}

func TestUnknownSubcommand(t *testing.T) {
	resetGlobals(t)
	cmd := newRootCmd("test-version")
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"frobnicate"})

	if code := run(cmd); code != 1 {
		t.Errorf("exit code = %d, want 1 for an unknown subcommand", code)
	}
	out := buf.String()
	if !strings.Contains(out, "Error:") {
		t.Errorf("failure should be reported on stderr, got %q", out)
	}
	if !strings.Contains(out, "frobnicate") {
		t.Errorf("error message should name the unknown subcommand, got %q", out)
	}
}

func TestUnknownFlagReported(t *testing.T) {
	resetGlobals(t)
	cmd := newRootCmd("test-version")
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"generate", "--frobnicate"})

	if code := run(cmd); code != 1 {
		t.Errorf("exit code = %d, want 1 for an unknown flag", code)
	}
	if !strings.Contains(buf.String(), "Error:") {
		t.Errorf("failure should be reported on stderr, got %q", buf.String())
	}
}
