package md2html

import (
	"bufio"
	"strconv"
)

const maxHeadingLevel = 6

var headingOpen, headingClose = func() (opening, closing [maxHeadingLevel + 1]string) {
	for i := 1; i <= maxHeadingLevel; i++ {
		n := strconv.Itoa(i)
		opening[i] = "<h" + n + ">"
		closing[i] = "</h" + n + ">\n"
	}
	return opening, closing
}()

const codeFence = "```"

// blockKind is a set of top-level block kinds, used when a block looks
// ahead for the start of the next one.
type blockKind uint8

const (
	blockHeading blockKind = 1 << iota
	blockQuote
	blockList
	blockFence
)

// converter turns one Markdown stream into HTML in a single forward pass.
type converter struct {
	in   cursor
	out  *bufio.Writer
	werr error
}

func (c *converter) reset(r *bufio.Reader, w *bufio.Writer) {
	c.in.reset(r)
	c.out = w
	c.werr = nil
}

func (c *converter) put(s string) {
	if c.werr != nil {
		return
	}
	_, c.werr = c.out.WriteString(s)
}

func (c *converter) putByte(b byte) {
	if c.werr != nil {
		return
	}
	c.werr = c.out.WriteByte(b)
}

func (c *converter) putEscaped(b byte) {
	c.put(escapeByte(b))
}

// run dispatches blocks until the input or the writer gives out.
func (c *converter) run() {
	for c.werr == nil {
		switch ch := c.in.next(); ch {
		case eof:
			return
		case '\n':
		case '#':
			level := 1
			for c.in.nextIf('#') {
				level++
			}
			c.heading(level)
		case '>':
			c.blockquote()
		case '*':
			if c.in.peek() == '*' {
				c.in.unread(ch)
				c.paragraph()
				continue
			}
			c.list()
		case '-':
			c.list()
		case '`':
			if c.in.nextLiteral(codeFence[1:]) {
				c.codeBlock()
				continue
			}
			c.in.unread(ch)
			c.paragraph()
		default:
			c.in.unread(ch)
			c.paragraph()
		}
	}
}

// blockAhead reports whether the input continues with the opening marker of
// one of kinds. Nothing is consumed. A "**" opens bold text, not a list.
func (c *converter) blockAhead(kinds blockKind) bool {
	switch c.in.peek() {
	case '#':
		return kinds&blockHeading != 0
	case '>':
		return kinds&blockQuote != 0
	case '-':
		return kinds&blockList != 0
	case '*':
		if kinds&blockList == 0 {
			return false
		}
		c.in.next()
		bold := c.in.peek() == '*'
		c.in.unread('*')
		return !bold
	case '`':
		return kinds&blockFence != 0 && c.in.peekLiteral(codeFence)
	}
	return false
}

// blockEnds is called after a newline inside a block. It consumes a
// second newline and reports true if the block is over.
func (c *converter) blockEnds(kinds blockKind) bool {
	if c.in.nextIf('\n') || c.in.peek() == eof {
		return true
	}
	return c.blockAhead(kinds)
}

// itemMarker consumes a list item marker at the start of a line.
func (c *converter) itemMarker() bool {
	if c.in.nextIf('-') {
		return true
	}
	if !c.in.nextIf('*') {
		return false
	}
	if c.in.peek() == '*' {
		c.in.unread('*')
		return false
	}
	return true
}

func (c *converter) heading(level int) {
	// HTML stops at h6; longer runs of '#' are still one heading.
	if level > maxHeadingLevel {
		level = maxHeadingLevel
	}
	c.in.skipWhitespace()
	c.put(headingOpen[level])
	for c.werr == nil {
		ch := c.in.next()
		if ch == eof || ch == '\n' {
			break
		}
		c.putEscaped(byte(ch))
	}
	c.put(headingClose[level])
}

func (c *converter) blockquote() {
	c.in.skipBlank()
	c.put("<blockquote>")
	for c.werr == nil {
		ch := c.in.next()
		if ch == eof {
			break
		}
		if ch != '\n' {
			c.inline(ch)
			continue
		}
		if c.blockEnds(blockHeading | blockList | blockFence) {
			break
		}
		if c.in.nextIf('>') {
			c.in.skipBlank()
			c.put("<br/>")
			continue
		}
		c.putByte('\n')
	}
	c.put("</blockquote>\n")
}

func (c *converter) list() {
	c.in.skipBlank()
	c.put("<ul><li>")
	for c.werr == nil {
		ch := c.in.next()
		if ch == eof {
			break
		}
		if ch != '\n' {
			c.inline(ch)
			continue
		}
		if c.blockEnds(blockHeading | blockQuote | blockFence) {
			break
		}
		if c.itemMarker() {
			c.in.skipBlank()
			c.put("</li><li>")
			continue
		}
		c.putByte('\n')
	}
	c.put("</li></ul>\n")
}

func (c *converter) codeBlock() {
	c.in.skipWhitespace()
	c.put("<pre><code>")
	for c.werr == nil {
		ch := c.in.next()
		if ch == eof {
			break
		}
		if ch == '`' && c.in.nextLiteral(codeFence[1:]) {
			break
		}
		c.putEscaped(byte(ch))
	}
	c.put("</code></pre>\n")
}

func (c *converter) paragraph() {
	c.put("<p>")
	for c.werr == nil {
		ch := c.in.next()
		if ch == eof {
			break
		}
		if ch != '\n' {
			c.inline(ch)
			continue
		}
		if c.blockEnds(blockHeading | blockQuote | blockList | blockFence) {
			break
		}
		c.putByte('\n')
	}
	c.put("</p>\n")
}
