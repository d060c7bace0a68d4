package md2html

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
)

// ErrUnsupportedContentType is returned by HTTPConvert when the server
// declares a body that is not text.
var ErrUnsupportedContentType = errors.New("unsupported content type")

const acceptMarkdown = "text/markdown, text/x-markdown;q=0.9, text/plain;q=0.8, */*;q=0.1"

// HTTPConvertRequest configures HTTPConvert.
type HTTPConvertRequest struct {
	URL     string
	Client  *http.Client
	Writer  io.Writer
	Options []ConvertOption
}

// HTTPConvert fetches Markdown over HTTP(S) and streams the HTML fragment to
// req.Writer as the body arrives. Responses declared as something other
// than text (or an untyped octet stream) are refused before anything is
// written.
func HTTPConvert(ctx context.Context, req HTTPConvertRequest) error {
	if req.URL == "" {
		return fmt.Errorf("convert http: URL is required")
	}
	if req.Writer == nil {
		return fmt.Errorf("convert http: writer is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.URL, nil)
	if err != nil {
		return fmt.Errorf("convert http: %w", err)
	}
	if s := httpReq.URL.Scheme; s != "http" && s != "https" {
		return fmt.Errorf("convert http: unsupported scheme %q", s)
	}
	httpReq.Header.Set("Accept", acceptMarkdown)

	client := req.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("convert http: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("convert http: %s: status %s", req.URL, resp.Status)
	}
	if err := checkMarkdownType(resp.Header.Get("Content-Type")); err != nil {
		return fmt.Errorf("convert http: %s: %w", req.URL, err)
	}

	body := &bodyReader{r: resp.Body}
	err = Convert(ConvertRequest{
		Reader:  body,
		Writer:  req.Writer,
		Options: req.Options,
	})
	if body.err != nil {
		return fmt.Errorf("convert http: read body: %w", body.err)
	}
	if err != nil {
		return fmt.Errorf("convert http: %w", err)
	}
	return nil
}

func checkMarkdownType(contentType string) error {
	if contentType == "" {
		return nil
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return fmt.Errorf("%w %q", ErrUnsupportedContentType, contentType)
	}
	if strings.HasPrefix(mediaType, "text/") || mediaType == "application/octet-stream" {
		return nil
	}
	return fmt.Errorf("%w %q", ErrUnsupportedContentType, mediaType)
}

// bodyReader remembers the first read error other than io.EOF so a broken
// connection can be told apart from a failing writer.
type bodyReader struct {
	r   io.Reader
	err error
}

func (b *bodyReader) Read(p []byte) (int, error) {
	n, err := b.r.Read(p)
	if err != nil && err != io.EOF && b.err == nil {
		b.err = err
	}
	return n, err
}
