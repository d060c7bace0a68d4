// Package md2html converts a small Markdown dialect to an HTML fragment.
//
// The converter makes a single forward pass over an io.Reader and writes
// HTML to an io.Writer as it goes. No document tree is built and at most a
// few bytes of lookahead are held back, so arbitrarily large inputs stream
// through in constant memory.
//
// Supported blocks are ATX headings ("#" to "######"), blockquotes (">"),
// unordered lists ("*" or "-"), fenced code blocks ("```") and paragraphs.
// Inside paragraphs, list items and blockquotes the following spans are
// recognized:
//
//	`code`        <code>code</code>
//	``co`de``     <code>co`de</code>
//	**bold**      <b>bold</b>
//	_italic_      <it>italic</it>
//	$<br/>$       raw HTML, copied verbatim
//	\*            the next byte, copied verbatim
//
// Text content is escaped byte by byte: &, ", < and > become entities and
// everything else, including bytes of multi-byte UTF-8 sequences, passes
// through untouched. A span left open at end of input is closed, so the
// output is balanced for any input.
//
// Example:
//
//	err := md2html.Convert(md2html.ConvertRequest{
//		Reader: strings.NewReader("# Hello\n\nMarkdown in, **HTML** out.\n"),
//		Writer: os.Stdout,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
package md2html
