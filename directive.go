package book

import "strings"

// The escape marker that starts an inline formatting directive.
// Two consecutive markers ("\\") produce a literal marker.
const Marker = '\\'

// A Directive is an inline formatting instruction embedded in the
// text, like "\c[16]" to change the text color. Directives are never
// drawn: they are handed to the host [Canvas] right before the text
// that follows them.
//
// The grammar is the [Marker], one ASCII alphanumeric command code and
// an optional bracketed alphanumeric parameter. Any other sequence
// starting with the marker is kept as literal text.
type Directive struct {
	Code rune     // command code, 0 for "no directive"
	Param string  // parameter without brackets, if any
	HasParam bool // distinguishes "\c" from "\c[]"-like cases
	At int        // byte offset of the attachment point within the literal text
}

// Returns whether the directive is the zero value (no directive).
func (self Directive) IsZero() bool {
	return self.Code == 0
}

// Returns the directive written back in its escaped form
// (e.g. "\c[16]"). The zero directive returns an empty string.
func (self Directive) String() string {
	if self.IsZero() { return "" }
	if !self.HasParam { return string(Marker) + string(self.Code) }
	return string(Marker) + string(self.Code) + "[" + self.Param + "]"
}

// A Segment pairs a directive (or none) with the literal text
// immediately following it.
type Segment struct {
	Directive Directive
	Text string
}

// Tokenize scans the raw text once and returns the ordered list of
// (directive, literal) pairs. Concatenating the Text fields of the
// result reproduces the raw text without any directive sequence
// (and with "\\" collapsed to a single marker).
//
// A directive followed only by whitespace or by the end of the text
// still gets its own segment, with that whitespace or an empty string
// as its text. Malformed sequences never cause errors, they are simply
// treated as literal text.
func Tokenize(raw string) []Segment {
	var segments []Segment
	var literal strings.Builder
	var pending Directive
	var literalLen int

	flush := func() {
		if pending.IsZero() && literal.Len() == 0 { return }
		segments = append(segments, Segment{ Directive: pending, Text: literal.String() })
		literalLen += literal.Len()
		literal.Reset()
		pending = Directive{}
	}

	index := 0
	for index < len(raw) {
		char := raw[index]
		if char != Marker {
			literal.WriteByte(char)
			index += 1
			continue
		}

		directive, size := scanDirective(raw[index : ])
		switch {
		case size == 0: // not a directive, keep the marker
			literal.WriteByte(char)
			index += 1
		case directive.IsZero(): // escaped marker
			literal.WriteByte(Marker)
			index += size
		default:
			flush()
			directive.At = literalLen
			pending = directive
			index += size
		}
	}
	flush()
	return segments
}

// StripDirectives returns the literal text of raw, without directives.
func StripDirectives(raw string) string {
	if strings.IndexByte(raw, Marker) == -1 { return raw }

	var builder strings.Builder
	for _, segment := range Tokenize(raw) {
		builder.WriteString(segment.Text)
	}
	return builder.String()
}

// ---- helpers ----

// Precondition: text[0] == Marker. Returns the directive and the number
// of bytes it spans. A zero size means the marker is literal text, and a
// zero directive with size 2 means an escaped marker.
func scanDirective(text string) (Directive, int) {
	if len(text) < 2 { return Directive{}, 0 }
	if text[1] == Marker { return Directive{}, 2 }
	if !isAlnum(text[1]) { return Directive{}, 0 }

	directive := Directive{ Code: rune(text[1]) }
	if len(text) == 2 || text[2] != '[' { return directive, 2 }

	// bracketed parameter: must be non-empty, alphanumeric and closed,
	// otherwise the whole sequence stays literal
	end := 3
	for end < len(text) && isAlnum(text[end]) { end += 1 }
	if end == 3 || end >= len(text) || text[end] != ']' {
		return Directive{}, 0
	}
	directive.Param = text[3 : end]
	directive.HasParam = true
	return directive, end + 1
}

func isAlnum(char byte) bool {
	return (char >= 'a' && char <= 'z') || (char >= 'A' && char <= 'Z') || (char >= '0' && char <= '9')
}
