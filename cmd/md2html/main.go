package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/md2html"
	"pkt.systems/version"
)

func init() {
	version.SetDefaultModule("pkt.systems/md2html")
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var (
		showVersion      bool
		stripFrontMatter bool
	)
	flags := pflag.NewFlagSet("md2html", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.BoolVarP(&showVersion, "version", "V", false, "Print version and exit")
	flags.BoolVarP(&stripFrontMatter, "strip-front-matter", "f", false, "Drop a leading YAML/TOML/JSON front matter block")
	flags.Usage = func() {
		fmt.Fprintln(stderr, version.Module(), version.Current())
		fmt.Fprintf(stderr, "Usage: md2html [flags] [input]\n")
		fmt.Fprintln(stderr, "\nConverts Markdown to an HTML fragment on stdout.")
		fmt.Fprintln(stderr, "If no input (or -) is given, Markdown is read from stdin.")
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return 0
		}
		return 2
	}
	if showVersion {
		fmt.Fprintln(stdout, version.Module(), version.Current())
		return 0
	}
	if flags.NArg() > 1 {
		fmt.Fprintf(stderr, "expected at most one input, got %d\n", flags.NArg())
		flags.Usage()
		return 2
	}

	input := flags.Arg(0)
	reader, closer, err := openInput(input, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "open input: %v\n", err)
		return 1
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}
	if isStdin(input) && isTerminal(stdin) {
		fmt.Fprintln(stderr, "reading Markdown from terminal, end with Ctrl-D")
	}

	var opts []md2html.ConvertOption
	if stripFrontMatter {
		opts = append(opts, md2html.WithStripFrontMatter(true))
	}
	if err := md2html.Convert(md2html.ConvertRequest{
		Reader:  reader,
		Writer:  stdout,
		Options: opts,
	}); err != nil {
		fmt.Fprintf(stderr, "md2html: %v\n", err)
		return 1
	}
	return 0
}

// openInput resolves the positional argument. Empty or "-" is stdin; http,
// https and file URLs are accepted besides plain paths.
func openInput(raw string, stdin io.Reader) (io.Reader, io.Closer, error) {
	if isStdin(raw) {
		return stdin, nil, nil
	}
	raw = strings.TrimSpace(raw)
	u, err := url.Parse(raw)
	if err == nil && u.Scheme != "" {
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return openURL(raw)
		case "file":
			path := u.Path
			if path == "" {
				path = u.Host
			}
			if unescaped, err := url.PathUnescape(path); err == nil {
				path = unescaped
			}
			return openFile(path)
		}
	}
	return openFile(raw)
}

func isStdin(raw string) bool {
	raw = strings.TrimSpace(raw)
	return raw == "" || raw == "-"
}

func openURL(raw string) (io.Reader, io.Closer, error) {
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, raw, nil)
	if err != nil {
		return nil, nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_ = resp.Body.Close()
		return nil, nil, fmt.Errorf("http %s: %s", raw, resp.Status)
	}
	return resp.Body, resp.Body, nil
}

func openFile(path string) (io.Reader, io.Closer, error) {
	f, err := os.Open(normalizePath(path))
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	return filepath.Clean(path)
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
