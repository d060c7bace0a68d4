package md2html

import (
	"bytes"
	"io"
)

// maxFrontMatterBytes bounds how much input is held back while deciding.
// A block that has not closed by then is passed through untouched.
const maxFrontMatterBytes = 64 * 1024

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

type frontMatterState uint8

const (
	fmOpening frontMatterState = iota // waiting for the delimiter line
	fmFirstField                      // waiting for the first metadata line
	fmBody                            // waiting for the closing delimiter
	fmPassthrough
)

// frontMatterReader drops a YAML (---), TOML (+++) or JSON (;;;) block from
// the very start of r. Input is held back line by line until the block is
// either closed, in which case it is dropped, or ruled out, in which case
// everything held is released unchanged.
type frontMatterReader struct {
	r       io.Reader
	state   frontMatterState
	delim   string
	held    []byte
	off     int
	pending []byte
	err     error

	heldArr [4096]byte
	buf     [4096]byte
}

func (f *frontMatterReader) reset(r io.Reader) {
	f.r = r
	f.state = fmOpening
	f.delim = ""
	f.held = f.heldArr[:0]
	f.off = 0
	f.pending = nil
	f.err = nil
}

func (f *frontMatterReader) Read(p []byte) (int, error) {
	for len(f.pending) == 0 && f.state != fmPassthrough {
		if f.err != nil {
			f.release()
			break
		}
		n, err := f.r.Read(f.buf[:])
		f.held = append(f.held, f.buf[:n]...)
		f.err = err
		f.scan()
		if f.state != fmPassthrough && len(f.held) > maxFrontMatterBytes {
			f.release()
		}
	}
	if len(f.pending) > 0 {
		n := copy(p, f.pending)
		f.pending = f.pending[n:]
		return n, nil
	}
	if f.err != nil {
		return 0, f.err
	}
	return f.r.Read(p)
}

// release gives up on front matter and hands back everything held.
func (f *frontMatterReader) release() {
	f.pending = f.held
	f.state = fmPassthrough
}

// scan advances over the complete lines held so far.
func (f *frontMatterReader) scan() {
	for f.state != fmPassthrough {
		line, next, ok := f.nextLine()
		if !ok {
			return
		}
		f.off = next
		switch f.state {
		case fmOpening:
			delim := string(bytes.TrimSpace(bytes.TrimPrefix(line, utf8BOM)))
			switch delim {
			case "---", "+++", ";;;":
				f.delim = delim
				f.state = fmFirstField
			default:
				f.release()
			}
		case fmFirstField:
			if !looksLikeMetadata(bytes.TrimSpace(line)) {
				f.release()
				return
			}
			f.state = fmBody
		case fmBody:
			if string(bytes.TrimSpace(line)) == f.delim {
				f.pending = f.held[next:]
				f.state = fmPassthrough
			}
		}
	}
}

// nextLine returns the held line starting at f.off and the offset after it.
// A final line without a newline only counts once the input has ended.
func (f *frontMatterReader) nextLine() ([]byte, int, bool) {
	rest := f.held[f.off:]
	if i := bytes.IndexByte(rest, '\n'); i >= 0 {
		return rest[:i], f.off + i + 1, true
	}
	if f.err != nil && len(rest) > 0 {
		return rest, len(f.held), true
	}
	return nil, 0, false
}

func looksLikeMetadata(line []byte) bool {
	if len(line) == 0 {
		return false
	}
	if line[0] == '{' || line[0] == '[' {
		return true
	}
	return bytes.ContainsAny(line, ":=")
}
