package md2html

type spanKind struct {
	open  string
	close string
	delim string
}

var (
	spanCode    = spanKind{open: "<code>", close: "</code>", delim: "`"}
	spanEscCode = spanKind{open: "<code>", close: "</code>", delim: "``"}
	spanBold    = spanKind{open: "<b>", close: "</b>", delim: "**"}
	spanItalic  = spanKind{open: "<it>", close: "</it>", delim: "_"}
)

// inline handles ch, already consumed from a paragraph, list item or
// blockquote body.
func (c *converter) inline(ch int) {
	switch ch {
	case eof:
	case '\\':
		if e := c.in.next(); e != eof {
			c.putByte(byte(e))
		}
	case '`':
		if c.in.nextIf('`') {
			c.span(spanEscCode)
		} else {
			c.span(spanCode)
		}
	case '$':
		c.rawHTML()
	case '*':
		if !c.in.nextIf('*') {
			c.putByte('*')
			return
		}
		c.span(spanBold)
	case '_':
		c.span(spanItalic)
	default:
		c.putEscaped(byte(ch))
	}
}

// span writes escaped text up to the first occurrence of k.delim. Spans do
// not nest. Reaching EOF closes the span.
func (c *converter) span(k spanKind) {
	c.put(k.open)
	for c.werr == nil && !c.in.nextLiteral(k.delim) {
		ch := c.in.next()
		if ch == eof {
			break
		}
		c.putEscaped(byte(ch))
	}
	c.put(k.close)
}

// rawHTML copies bytes verbatim up to the next unescaped '$'.
func (c *converter) rawHTML() {
	for c.werr == nil {
		switch ch := c.in.next(); ch {
		case eof, '$':
			return
		case '\\':
			if e := c.in.next(); e != eof {
				c.putByte(byte(e))
			}
		default:
			c.putByte(byte(ch))
		}
	}
}
