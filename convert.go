package md2html

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"
)

var converterPool = sync.Pool{
	New: func() any {
		return &converter{}
	},
}

var readerPool = sync.Pool{
	New: func() any {
		return bufio.NewReaderSize(nil, defaultReadBufferSize)
	},
}

var writerPool = sync.Pool{
	New: func() any {
		return bufio.NewWriterSize(nil, 4096)
	},
}

var frontMatterPool = sync.Pool{
	New: func() any {
		return &frontMatterReader{}
	},
}

var configPool = sync.Pool{
	New: func() any {
		return &convertConfig{}
	},
}

// ConvertRequest configures Convert.
type ConvertRequest struct {
	Reader  io.Reader
	Writer  io.Writer
	Options []ConvertOption
}

// Convert reads Markdown from req.Reader and writes the HTML fragment to
// req.Writer in one streaming pass. Malformed Markdown is never an error;
// only failures of the reader or the writer are reported.
func Convert(req ConvertRequest) error {
	if req.Reader == nil {
		return fmt.Errorf("convert: reader is nil")
	}
	if req.Writer == nil {
		return fmt.Errorf("convert: writer is nil")
	}
	cfg := resolveConfig(req.Options)

	src := req.Reader
	var fm *frontMatterReader
	if cfg.stripFrontMatter {
		fm = frontMatterPool.Get().(*frontMatterReader)
		fm.reset(src)
		src = fm
	}

	var reader *bufio.Reader
	pooledReader := cfg.readBufferSize == defaultReadBufferSize
	if pooledReader {
		reader = readerPool.Get().(*bufio.Reader)
		reader.Reset(src)
	} else {
		reader = bufio.NewReaderSize(src, cfg.readBufferSize)
	}
	writer := writerPool.Get().(*bufio.Writer)
	writer.Reset(req.Writer)

	conv := converterPool.Get().(*converter)
	conv.reset(reader, writer)
	conv.run()

	if conv.werr == nil {
		conv.werr = writer.Flush()
	}
	var retErr error
	switch {
	case conv.in.err != nil:
		retErr = fmt.Errorf("convert: read: %w", conv.in.err)
	case conv.werr != nil:
		retErr = fmt.Errorf("convert: write: %w", conv.werr)
	}

	conv.reset(nil, nil)
	converterPool.Put(conv)
	writer.Reset(nil)
	writerPool.Put(writer)
	if pooledReader {
		reader.Reset(nil)
		readerPool.Put(reader)
	}
	if fm != nil {
		fm.reset(nil)
		frontMatterPool.Put(fm)
	}
	return retErr
}

// ConvertString converts an in-memory document.
func ConvertString(src string, opts ...ConvertOption) string {
	var out strings.Builder
	// Neither side can fail.
	_ = Convert(ConvertRequest{
		Reader:  strings.NewReader(src),
		Writer:  &out,
		Options: opts,
	})
	return out.String()
}
