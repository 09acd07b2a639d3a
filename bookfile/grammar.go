// Package bookfile parses book definition files.
//
// A book file describes the pages of a book and a few of its viewer
// settings:
//
//	// the tutorial guide
//	book "Game Guide" {
//		pages 5
//		wrap word
//		speed 6
//		page 1 { title "\c[14]Game Guide" }
//		page 2 { "In this mini guide you will be given..." }
//		page 3 {
//			"\c[16]Button Controls:"
//			""
//			columns {
//				column { "Move" "Menu" }
//				column { "Arrows" "Esc" }
//			}
//		}
//	}
//
// Strings keep backslashes as they are, so text directives can be
// written without doubling them. Only \" is unescaped, into a quote.
package bookfile

import "fmt"
import "io"
import "os"
import "strings"

import "github.com/alecthomas/participle/v2"
import "github.com/alecthomas/participle/v2/lexer"

var (
	bookLexer = lexer.MustSimple([]lexer.SimpleRule{
		{ Name: "Whitespace", Pattern: `[ \t\r\n]+` },
		{ Name: "LineComment", Pattern: `//[^\n]*` },
		{ Name: "String", Pattern: `"(?:\\.|[^"\\])*"` },
		{ Name: "Number", Pattern: `\d+` },
		{ Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*` },
		{ Name: "Punct", Pattern: `[{}]` },
	})

	fileParser = participle.MustBuild[File](
		participle.Lexer(bookLexer),
		participle.Elide("Whitespace", "LineComment"),
	)
)

// The root node of a book file.
type File struct {
	Pos lexer.Position
	Title Text `parser:"'book' @String"`
	Entries []*Entry `parser:"'{' @@* '}'"`
}

// A book level setting or page.
type Entry struct {
	Pos lexer.Position
	Pages *int `parser:"  'pages' @Number"`
	Wrap *string `parser:"| 'wrap' @Ident"`
	Speed *int `parser:"| 'speed' @Number"`
	Offset *int `parser:"| 'offset' @Number"`
	OverlayForOne bool `parser:"| @'overlay_for_one'"`
	Page *Page `parser:"| @@"`
}

type Page struct {
	Pos lexer.Position
	Number int `parser:"'page' @Number"`
	Items []*Item `parser:"'{' @@* '}'"`
}

// A page item: a centered title, a text line or a column group.
type Item struct {
	Pos lexer.Position
	Title *Text `parser:"  'title' @String"`
	Line *Text `parser:"| @String"`
	Columns *ColumnGroup `parser:"| @@"`
}

type ColumnGroup struct {
	Columns []*Column `parser:"'columns' '{' @@* '}'"`
}

type Column struct {
	Lines []*Line `parser:"'column' '{' @@* '}'"`
}

type Line struct {
	Text Text `parser:"@String"`
}

// A quoted string from a book file.
type Text string

// Implements participle.Capture.
func (self *Text) Capture(values []string) error {
	if len(values) == 0 { return fmt.Errorf("string capture requires a value") }
	quoted := values[0]
	if len(quoted) < 2 { return fmt.Errorf("malformed string %s", quoted) }
	*self = Text(unescapeQuotes(quoted[1 : len(quoted) - 1]))
	return nil
}

// Parses a book file from the reader. The filename is only used
// for error positions.
func Parse(r io.Reader, filename string) (*Definition, error) {
	file, err := fileParser.Parse(filename, r)
	if err != nil { return nil, err }
	return newDefinition(file)
}

// Parses a book file from a string.
func ParseString(input string) (*Definition, error) {
	file, err := fileParser.ParseString("", input)
	if err != nil { return nil, err }
	return newDefinition(file)
}

// Opens and parses the book file at the given path.
func ParseFile(path string) (*Definition, error) {
	file, err := os.Open(path)
	if err != nil { return nil, err }
	defer file.Close()
	return Parse(file, path)
}

// ---- helpers ----

// Turns \" into a quote and leaves any other escape untouched.
func unescapeQuotes(str string) string {
	if !strings.Contains(str, `\"`) { return str }

	var builder strings.Builder
	builder.Grow(len(str))
	for i := 0; i < len(str); i++ {
		if str[i] == '\\' && i + 1 < len(str) {
			if str[i + 1] != '"' { builder.WriteByte('\\') }
			builder.WriteByte(str[i + 1])
			i += 1
			continue
		}
		builder.WriteByte(str[i])
	}
	return builder.String()
}
