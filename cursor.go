package md2html

import (
	"bufio"
	"io"
)

// eof is returned by the cursor once the input is exhausted.
const eof = -1

// cursor is a byte reader with a pushback stack. Pushed back bytes are
// returned before anything else is read from the underlying reader.
type cursor struct {
	r       *bufio.Reader
	back    []byte
	backArr [8]byte
	done    bool
	err     error
}

func (c *cursor) reset(r *bufio.Reader) {
	c.r = r
	c.back = c.backArr[:0]
	c.done = false
	c.err = nil
}

// next consumes one byte. It returns eof at end of input and after any read
// error; the error is kept in c.err.
func (c *cursor) next() int {
	if n := len(c.back); n > 0 {
		b := c.back[n-1]
		c.back = c.back[:n-1]
		return int(b)
	}
	if c.done || c.r == nil {
		return eof
	}
	b, err := c.r.ReadByte()
	if err != nil {
		c.done = true
		if err != io.EOF {
			c.err = err
		}
		return eof
	}
	return int(b)
}

// unread pushes ch back. Pushing back eof is a no-op.
func (c *cursor) unread(ch int) {
	if ch == eof {
		return
	}
	c.back = append(c.back, byte(ch))
}

func (c *cursor) unreadString(s string) {
	for i := len(s) - 1; i >= 0; i-- {
		c.back = append(c.back, s[i])
	}
}

func (c *cursor) peek() int {
	ch := c.next()
	c.unread(ch)
	return ch
}

func (c *cursor) nextIf(want byte) bool {
	ch := c.next()
	if ch != int(want) {
		c.unread(ch)
		return false
	}
	return true
}

// nextLiteral consumes want if the input continues with it. On a mismatch
// every byte read is pushed back, so the cursor is left untouched.
func (c *cursor) nextLiteral(want string) bool {
	for i := 0; i < len(want); i++ {
		ch := c.next()
		if ch != int(want[i]) {
			c.unread(ch)
			c.unreadString(want[:i])
			return false
		}
	}
	return true
}

func (c *cursor) peekLiteral(want string) bool {
	if !c.nextLiteral(want) {
		return false
	}
	c.unreadString(want)
	return true
}

func (c *cursor) skipWhitespace() {
	for {
		switch ch := c.next(); ch {
		case ' ', '\t', '\r', '\n', '\v', '\f':
		default:
			c.unread(ch)
			return
		}
	}
}

// skipBlank drops spaces and tabs without leaving the current line.
func (c *cursor) skipBlank() {
	for c.nextIf(' ') || c.nextIf('\t') {
	}
}
