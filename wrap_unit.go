package book

import "errors"
import "strconv"
import "strings"
import "unicode"
import "unicode/utf8"

import "golang.org/x/text/unicode/norm"

// Line wrapping granularity. See [SplitUnits]().
type WrapMode uint8
const (
	WrapWord WrapMode = iota // break between words (default)
	WrapCharacter            // break between any two characters
)

var ErrUnknownWrapMode = errors.New("unknown wrap mode")

// Returns "word" or "character".
func (self WrapMode) String() string {
	switch self {
	case WrapWord: return "word"
	case WrapCharacter: return "character"
	default:
		return "WrapMode(" + strconv.Itoa(int(self)) + ")"
	}
}

// Parses "word" or "character" (also "char") into a [WrapMode].
// Matching is case-insensitive.
func ParseWrapMode(name string) (WrapMode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "word", "":
		return WrapWord, nil
	case "character", "char":
		return WrapCharacter, nil
	default:
		return WrapWord, ErrUnknownWrapMode
	}
}

// A WrapUnit is the smallest element the layout engine may move to the
// next row: a word with its trailing space in [WrapWord] mode, or a
// single character in [WrapCharacter] mode. Directives found before the
// unit's text are attached to it, in order.
type WrapUnit struct {
	Directives []Directive
	Text string
}

// Returns the unit text without trailing whitespace. This is the
// width used to decide whether the unit still fits in the row.
func (self WrapUnit) Trimmed() string {
	return strings.TrimRightFunc(self.Text, unicode.IsSpace)
}

// Returns whether the unit text is empty or whitespace only.
func (self WrapUnit) IsBlank() bool {
	return strings.TrimSpace(self.Text) == ""
}

// SplitUnits splits a text item into its wrap units.
//
// In [WrapWord] mode the text is split at every whitespace character
// and a single space is appended to each field, so consecutive spaces
// produce blank units. Trailing empty fields are dropped. A directive
// placed in the middle of a word splits the word in two units, the
// second one carrying the directive.
//
// In [WrapCharacter] mode the text is normalized to NFC and each rune
// becomes its own unit. Directives are not interpreted in this mode.
//
// Every directive in the input ends up attached to exactly one unit,
// and units keep the original text order.
func SplitUnits(text string, mode WrapMode) []WrapUnit {
	if mode == WrapCharacter { return splitCharacters(text) }
	return splitWords(text)
}

// ---- helpers ----

func splitCharacters(text string) []WrapUnit {
	text = norm.NFC.String(text)
	units := make([]WrapUnit, 0, utf8.RuneCountInString(text))
	for _, codePoint := range text {
		units = append(units, WrapUnit{ Text: string(codePoint) })
	}
	return units
}

func splitWords(text string) []WrapUnit {
	var units []WrapUnit
	for _, field := range whitespaceFields(text) {
		var carry []Directive
		for _, segment := range Tokenize(field + " ") {
			if !segment.Directive.IsZero() {
				carry = append(carry, segment.Directive)
			}
			if segment.Text == "" { continue } // merge forward
			units = append(units, WrapUnit{ Directives: carry, Text: segment.Text })
			carry = nil
		}

		// unreachable with the trailing space, but directives
		// must never be dropped
		if len(carry) > 0 {
			units = append(units, WrapUnit{ Directives: carry })
		}
	}
	return units
}

// Splits at every whitespace rune, keeping empty fields between
// consecutive separators but dropping the trailing empty ones.
func whitespaceFields(text string) []string {
	var fields []string
	start := 0
	for index, codePoint := range text {
		if !unicode.IsSpace(codePoint) { continue }
		fields = append(fields, text[start : index])
		start = index + utf8.RuneLen(codePoint)
	}
	fields = append(fields, text[start : ])

	for len(fields) > 0 && fields[len(fields) - 1] == "" {
		fields = fields[ : len(fields) - 1]
	}
	return fields
}
