package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCachePathCommand(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg-cache")

	var out bytes.Buffer
	cmd := New(&bytes.Buffer{}, LogInfo).cachePathCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	if got, want := strings.TrimSpace(out.String()), filepath.Join("/tmp/xdg-cache", "stylewheel"); got != want {
		t.Errorf("cache path = %q, want %q", got, want)
	}
}

func TestCacheClearCommand(t *testing.T) {
	root := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", root)

	run := func() string {
		var out bytes.Buffer
		cmd := New(&bytes.Buffer{}, LogInfo).cacheClearCommand()
		cmd.SetOut(&out)
		cmd.SetArgs([]string{})
		if err := cmd.Execute(); err != nil {
			t.Fatal(err)
		}
		return out.String()
	}

	if got := run(); !strings.Contains(got, "Cache is empty") {
		t.Errorf("clear on missing dir = %q", got)
	}

	dir := filepath.Join(root, "stylewheel")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"a.json", "b.json"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	if got := run(); !strings.Contains(got, "Cleared 2 cached entries") {
		t.Errorf("clear = %q", got)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("%d entries left after clear", len(entries))
	}
}

func TestCacheInfoCommand(t *testing.T) {
	root := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", root)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	dir := filepath.Join(root, "stylewheel")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "entry"), make([]byte, 2048), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	cmd := New(&bytes.Buffer{}, LogInfo).cacheCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{dir, "1 (0 expired)", "2.0 kB", "24h0m0s"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("cache info missing %q:\n%s", want, out.String())
		}
	}
}
