// Package sanitize implements output encoding for user-supplied text.
//
// Sanitization happens when entities are serialized into responses, not
// when they are stored: the database keeps the original text, and every
// read path passes display fields through [String] so that stored markup
// cannot execute when a client renders the response.
//
// The rules mirror a whitelist sanitizer: a small set of harmless inline
// tags passes through (with unknown attributes dropped), and any other
// markup has its angle brackets converted to entity references. Text that
// contains no markup is returned unchanged.
package sanitize

import (
	"strings"
	"unicode"
)

// allowedTags maps a whitelisted tag name to the attributes that may
// survive on it. A nil slice means the tag carries no attributes.
var allowedTags = map[string][]string{
	"a":      {"href", "title", "target"},
	"b":      nil,
	"strong": nil,
	"i":      nil,
	"em":     nil,
	"br":     nil,
	"code":   nil,
	"sub":    nil,
	"sup":    nil,
}

// String sanitizes a single user-supplied text value for inclusion in a
// response. Whitelisted tags are re-emitted with only their allowed
// attributes; every other '<' and '>' becomes "&lt;" / "&gt;".
func String(s string) string {
	if !strings.ContainsAny(s, "<>") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 16)

	for i := 0; i < len(s); {
		c := s[i]
		switch c {
		case '<':
			tag, length, ok := parseTag(s[i:])
			if !ok {
				b.WriteString("&lt;")
				i++
				continue
			}
			b.WriteString(tag)
			i += length
		case '>':
			b.WriteString("&gt;")
			i++
		default:
			b.WriteByte(c)
			i++
		}
	}

	return b.String()
}

// parseTag inspects s (which starts with '<') and, when it forms a
// complete tag, returns its sanitized replacement and the number of input
// bytes consumed. ok is false when s is not a well-formed tag at all, in
// which case only the leading '<' should be escaped.
func parseTag(s string) (string, int, bool) {
	end := strings.IndexByte(s, '>')
	if end < 0 {
		return "", 0, false
	}

	body := s[1:end]
	closing := strings.HasPrefix(body, "/")
	inner := strings.TrimPrefix(body, "/")
	name := tagName(inner)
	if name == "" {
		return "", 0, false
	}

	attrs, whitelisted := allowedTags[name]
	if !whitelisted {
		// Escaped verbatim so the payload stays visible but inert.
		return "&lt;" + body + "&gt;", end + 1, true
	}

	if closing {
		return "</" + name + ">", end + 1, true
	}

	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(name)
	for _, attr := range parseAttributes(inner[len(name):]) {
		if !attrAllowed(attrs, attr.name) || unsafeAttrValue(attr.value) {
			continue
		}
		b.WriteByte(' ')
		b.WriteString(attr.name)
		if attr.value != "" {
			b.WriteString(`="`)
			b.WriteString(strings.ReplaceAll(attr.value, `"`, "&quot;"))
			b.WriteByte('"')
		}
	}
	if strings.HasSuffix(strings.TrimSpace(inner), "/") {
		b.WriteByte('/')
	}
	b.WriteByte('>')

	return b.String(), end + 1, true
}

// tagName extracts the leading tag name of a tag body, lower-cased.
// Returns "" when the body does not start with a letter.
func tagName(body string) string {
	var n int
	for n < len(body) {
		c := body[n]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (n > 0 && c >= '0' && c <= '9') {
			n++
			continue
		}
		break
	}
	if n == 0 {
		return ""
	}
	return strings.ToLower(body[:n])
}

type attribute struct {
	name  string
	value string
}

// parseAttributes tokenizes the attribute section of a tag body.
// Values may be double-quoted, single-quoted, or bare; a name without '='
// yields an empty value (boolean attribute form).
func parseAttributes(s string) []attribute {
	var attrs []attribute

	i := 0
	for i < len(s) {
		for i < len(s) && (unicode.IsSpace(rune(s[i])) || s[i] == '/') {
			i++
		}
		start := i
		for i < len(s) && s[i] != '=' && s[i] != '/' && !unicode.IsSpace(rune(s[i])) {
			i++
		}
		if start == i {
			break
		}
		name := strings.ToLower(s[start:i])

		var value string
		if i < len(s) && s[i] == '=' {
			i++
			if i < len(s) && (s[i] == '"' || s[i] == '\'') {
				quote := s[i]
				i++
				vStart := i
				for i < len(s) && s[i] != quote {
					i++
				}
				value = s[vStart:i]
				if i < len(s) {
					i++
				}
			} else {
				vStart := i
				for i < len(s) && !unicode.IsSpace(rune(s[i])) && s[i] != '/' {
					i++
				}
				value = s[vStart:i]
			}
		}

		attrs = append(attrs, attribute{name: name, value: value})
	}

	return attrs
}

func attrAllowed(allowed []string, name string) bool {
	for _, a := range allowed {
		if a == name {
			return true
		}
	}
	return false
}

// unsafeAttrValue rejects attribute values that smuggle a script scheme.
func unsafeAttrValue(v string) bool {
	trimmed := strings.ToLower(strings.TrimSpace(v))
	return strings.HasPrefix(trimmed, "javascript:") ||
		strings.HasPrefix(trimmed, "data:") ||
		strings.HasPrefix(trimmed, "vbscript:")
}
