package book

import "testing"

import "github.com/google/go-cmp/cmp"
import "github.com/google/go-cmp/cmp/cmpopts"

func TestSplitUnitsWord(t *testing.T) {
	color := func(param string) Directive {
		return Directive{ Code: 'c', Param: param, HasParam: true }
	}
	ignoreAt := cmpopts.IgnoreFields(Directive{}, "At")

	tests := []struct {
		in string
		want []WrapUnit
	}{
		{ "", nil },
		{ "abc def", []WrapUnit{{ Text: "abc " }, { Text: "def " }} },
		{ "abc  def", []WrapUnit{{ Text: "abc " }, { Text: " " }, { Text: "def " }} },
		{ " lead", []WrapUnit{{ Text: " " }, { Text: "lead " }} },
		{ "trail   ", []WrapUnit{{ Text: "trail " }} },
		{ "tab\tand\nbreak", []WrapUnit{{ Text: "tab " }, { Text: "and " }, { Text: "break " }} },
		{ `\c[16]Hello world`, []WrapUnit{
			{ Directives: []Directive{ color("16") }, Text: "Hello " },
			{ Text: "world " },
		}},
		{ `red\c[2]green`, []WrapUnit{
			{ Text: "red" },
			{ Directives: []Directive{ color("2") }, Text: "green " },
		}},
		{ `end\c[0]`, []WrapUnit{
			{ Text: "end" },
			{ Directives: []Directive{ color("0") }, Text: " " },
		}},
		{ `\c[1]\c[2]x`, []WrapUnit{
			{ Directives: []Directive{ color("1"), color("2") }, Text: "x " },
		}},
		{ `a \c[3] b`, []WrapUnit{
			{ Text: "a " },
			{ Directives: []Directive{ color("3") }, Text: " " },
			{ Text: "b " },
		}},
	}

	for i, test := range tests {
		got := SplitUnits(test.in, WrapWord)
		if diff := cmp.Diff(test.want, got, ignoreAt, cmpopts.EquateEmpty()); diff != "" {
			t.Fatalf("test #%d (%q) mismatch (-want +got):\n%s", i, test.in, diff)
		}
	}
}

func TestSplitUnitsKeepsDirectives(t *testing.T) {
	inputs := []string{
		`\c[1]a \c[2]b\c[3]c \c[4]`,
		`\c[5]   \c[6]`,
		`no directives at all`,
	}
	for _, input := range inputs {
		var expected int
		for _, segment := range Tokenize(input) {
			if !segment.Directive.IsZero() { expected += 1 }
		}
		var got int
		for _, unit := range SplitUnits(input, WrapWord) {
			got += len(unit.Directives)
		}
		if got != expected {
			t.Fatalf("%q: expected %d directives in units, got %d", input, expected, got)
		}
	}
}

func TestSplitUnitsCharacter(t *testing.T) {
	units := SplitUnits("ab c", WrapCharacter)
	texts := make([]string, len(units))
	for i, unit := range units { texts[i] = unit.Text }
	if diff := cmp.Diff([]string{"a", "b", " ", "c"}, texts); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}

	// decomposed "é" must stay a single unit
	units = SplitUnits("e\u0301!", WrapCharacter)
	if len(units) != 2 || units[0].Text != "\u00e9" {
		t.Fatalf("expected NFC composed units, got %v", units)
	}

	// directives are not interpreted in character mode
	units = SplitUnits(`\c[1]`, WrapCharacter)
	if len(units) != 5 {
		t.Fatalf("expected 5 units, got %d", len(units))
	}
}

func TestWrapUnitHelpers(t *testing.T) {
	unit := WrapUnit{ Text: "word \t" }
	if unit.Trimmed() != "word" { t.Fatalf("expected trimmed 'word', got %q", unit.Trimmed()) }
	if unit.IsBlank() { t.Fatal("'word' is not blank") }
	if !(WrapUnit{ Text: "  " }).IsBlank() { t.Fatal("spaces must be blank") }
	if !(WrapUnit{}).IsBlank() { t.Fatal("empty text must be blank") }
}

func TestParseWrapMode(t *testing.T) {
	for name, expected := range map[string]WrapMode{ "word": WrapWord, "": WrapWord, "Character": WrapCharacter, "char": WrapCharacter } {
		mode, err := ParseWrapMode(name)
		if err != nil || mode != expected {
			t.Fatalf("ParseWrapMode(%q): expected %s, got %s (err %v)", name, expected, mode, err)
		}
	}
	if _, err := ParseWrapMode("syllable"); err != ErrUnknownWrapMode {
		t.Fatalf("expected ErrUnknownWrapMode, got %v", err)
	}
	if WrapCharacter.String() != "character" { t.Fatal(WrapCharacter.String()) }
}
