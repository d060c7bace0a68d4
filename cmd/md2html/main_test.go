package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOpenInputFileAndURL(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.md")
	if err := os.WriteFile(path, []byte("hello"), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	reader, closer, err := openInput(path, nil)
	if err != nil {
		t.Fatalf("openInput file: %v", err)
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}
	buf, _ := io.ReadAll(reader)
	if string(buf) != "hello" {
		t.Fatalf("unexpected file content: %q", string(buf))
	}

	fileURL := "file://" + path
	reader, closer, err = openInput(fileURL, nil)
	if err != nil {
		t.Fatalf("openInput file URL: %v", err)
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}
	buf, _ = io.ReadAll(reader)
	if string(buf) != "hello" {
		t.Fatalf("unexpected file URL content: %q", string(buf))
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("stream"))
	}))
	defer srv.Close()
	reader, closer, err = openInput(srv.URL, nil)
	if err != nil {
		t.Fatalf("openInput http: %v", err)
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}
	buf, _ = io.ReadAll(reader)
	if string(buf) != "stream" {
		t.Fatalf("unexpected http content: %q", string(buf))
	}
}

func TestOpenInputStdin(t *testing.T) {
	stdin := strings.NewReader("from stdin")
	for _, arg := range []string{"", "-", " - "} {
		reader, closer, err := openInput(arg, stdin)
		if err != nil {
			t.Fatalf("openInput(%q): %v", arg, err)
		}
		if closer != nil {
			t.Fatalf("openInput(%q) returned a closer for stdin", arg)
		}
		if reader != io.Reader(stdin) {
			t.Fatalf("openInput(%q) did not return stdin", arg)
		}
	}
}

func TestRunConvertsStdin(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(nil, strings.NewReader("# Title\n\n* a\n* b\n"), &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code %d, stderr %q", code, stderr.String())
	}
	want := "<h1>Title</h1>\n<ul><li>a</li><li>b</li></ul>\n"
	if got := stdout.String(); got != want {
		t.Fatalf("stdout %q want %q", got, want)
	}
	if stderr.Len() != 0 {
		t.Fatalf("unexpected stderr %q", stderr.String())
	}
}

func TestRunConvertsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.md")
	if err := os.WriteFile(path, []byte("5 < 6 & true"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	var stdout, stderr bytes.Buffer
	if code := run([]string{path}, strings.NewReader("ignored"), &stdout, &stderr); code != 0 {
		t.Fatalf("exit code %d, stderr %q", code, stderr.String())
	}
	if got, want := stdout.String(), "<p>5 &lt; 6 &amp; true</p>\n"; got != want {
		t.Fatalf("stdout %q want %q", got, want)
	}
}

func TestRunStripFrontMatter(t *testing.T) {
	var stdout, stderr bytes.Buffer
	src := "---\ntitle: x\n---\nbody\n"
	if code := run([]string{"--strip-front-matter"}, strings.NewReader(src), &stdout, &stderr); code != 0 {
		t.Fatalf("exit code %d, stderr %q", code, stderr.String())
	}
	if got, want := stdout.String(), "<p>body</p>\n"; got != want {
		t.Fatalf("stdout %q want %q", got, want)
	}
}

func TestRunMissingFileFails(t *testing.T) {
	var stdout, stderr bytes.Buffer
	missing := filepath.Join(t.TempDir(), "missing.md")
	if code := run([]string{missing}, nil, &stdout, &stderr); code != 1 {
		t.Fatalf("exit code %d want 1", code)
	}
	if !strings.Contains(stderr.String(), "missing.md") {
		t.Fatalf("stderr does not name the file: %q", stderr.String())
	}
	if stdout.Len() != 0 {
		t.Fatalf("unexpected stdout %q", stdout.String())
	}
}

func TestRunUsageErrors(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"a.md", "b.md"}, nil, &stdout, &stderr); code != 2 {
		t.Fatalf("two inputs: exit code %d want 2", code)
	}
	stderr.Reset()
	if code := run([]string{"--no-such-flag"}, nil, &stdout, &stderr); code != 2 {
		t.Fatalf("unknown flag: exit code %d want 2", code)
	}
	stderr.Reset()
	if code := run([]string{"--help"}, nil, &stdout, &stderr); code != 0 {
		t.Fatalf("help: exit code %d want 0", code)
	}
	if !strings.Contains(stderr.String(), "Usage: md2html") {
		t.Fatalf("help output missing usage: %q", stderr.String())
	}
}

func TestRunVersion(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"--version"}, nil, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code %d want 0", code)
	}
	if !strings.Contains(stdout.String(), "md2html") {
		t.Fatalf("version output %q", stdout.String())
	}
}
