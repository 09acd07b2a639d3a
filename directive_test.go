package book

import "testing"

import "github.com/google/go-cmp/cmp"

func TestTokenize(t *testing.T) {
	color := func(param string, at int) Directive {
		return Directive{ Code: 'c', Param: param, HasParam: true, At: at }
	}

	tests := []struct {
		in string
		want []Segment
	}{
		{ "", nil },
		{ "plain text", []Segment{{ Text: "plain text" }} },
		{ `\c[16]Hello`, []Segment{{ Directive: color("16", 0), Text: "Hello" }} },
		{ `a \c[2]b\c[0] c`, []Segment{
			{ Text: "a " },
			{ Directive: color("2", 2), Text: "b" },
			{ Directive: color("0", 3), Text: " c" },
		}},
		{ `tail\c[1]`, []Segment{{ Text: "tail" }, { Directive: color("1", 4) }} },
		{ `x\c[1] `, []Segment{{ Text: "x" }, { Directive: color("1", 1), Text: " " }} },
		{ `\c[1]\c[2]z`, []Segment{{ Directive: color("1", 0) }, { Directive: color("2", 0), Text: "z" }} },
		{ `\i`, []Segment{{ Directive: Directive{ Code: 'i' } }} },
		{ `\iok`, []Segment{{ Directive: Directive{ Code: 'i' }, Text: "ok" }} },
		{ `back\\slash`, []Segment{{ Text: `back\slash` }} },
		{ `\\c[1]`, []Segment{{ Text: `\c[1]` }} },
		{ `end\`, []Segment{{ Text: `end\` }} },
		{ `\ space`, []Segment{{ Text: `\ space` }} },
		{ `\c[16`, []Segment{{ Text: `\c[16` }} },
		{ `\c[]x`, []Segment{{ Text: `\c[]x` }} },
		{ `\c[1 6]`, []Segment{{ Text: `\c[1 6]` }} },
		{ `\é`, []Segment{{ Text: `\é` }} },
	}

	for i, test := range tests {
		got := Tokenize(test.in)
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Fatalf("test #%d (%q) mismatch (-want +got):\n%s", i, test.in, diff)
		}
	}
}

func TestTokenizeRoundTrip(t *testing.T) {
	inputs := []string{
		`The \c[16]red\c[0] fox`,
		`\c[3]\c[4]double`,
		`unterminated \c[12 bracket`,
		`escaped \\ marker and \\\c[2]directive`,
		`   spaces   \c[1]   `,
		`\`,
	}
	for _, input := range inputs {
		var literal string
		for _, segment := range Tokenize(input) {
			literal += segment.Text
		}
		if literal != StripDirectives(input) {
			t.Fatalf("literal for %q was %q, but StripDirectives() gave %q", input, literal, StripDirectives(input))
		}
	}

	// the segments can be written back into an equivalent text
	input := `a\c[1]b\c[22]c`
	var rebuilt string
	for _, segment := range Tokenize(input) {
		rebuilt += segment.Directive.String() + segment.Text
	}
	if rebuilt != input {
		t.Fatalf("expected %q, got %q", input, rebuilt)
	}
}

func TestStripDirectives(t *testing.T) {
	tests := []struct{ in, want string }{
		{ "no markers", "no markers" },
		{ `\c[16]Hello\c[0] world`, "Hello world" },
		{ `one \\ two`, `one \ two` },
		{ `broken \c[`, `broken \c[` },
	}
	for _, test := range tests {
		got := StripDirectives(test.in)
		if got != test.want {
			t.Fatalf("StripDirectives(%q): expected %q, got %q", test.in, test.want, got)
		}
	}
}
