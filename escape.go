package md2html

import "io"

// htmlEscapes follows the HTML fragment serialization rules for text. U+00A0
// is left alone since the input is never decoded as UTF-8.
var htmlEscapes = [256]string{
	'&': "&amp;",
	'"': "&quot;",
	'<': "&lt;",
	'>': "&gt;",
}

var byteStrings = func() [256]string {
	var out [256]string
	for i := range out {
		out[i] = string([]byte{byte(i)})
	}
	return out
}()

// escapeByte returns the text content form of c.
func escapeByte(c byte) string {
	if s := htmlEscapes[c]; s != "" {
		return s
	}
	return byteStrings[c]
}

// EscapeHTML writes s to w with &, ", < and > replaced by entities. All other
// bytes, including non-ASCII ones, are written unchanged.
func EscapeHTML(w io.Writer, s []byte) error {
	start := 0
	for i, c := range s {
		esc := htmlEscapes[c]
		if esc == "" {
			continue
		}
		if start < i {
			if _, err := w.Write(s[start:i]); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, esc); err != nil {
			return err
		}
		start = i + 1
	}
	if start < len(s) {
		if _, err := w.Write(s[start:]); err != nil {
			return err
		}
	}
	return nil
}
