package font

import "strings"
import "testing"

func TestGetProperties(t *testing.T) {
	font := Default()

	// ensure state sanity
	buffer := getSfntBuffer()
	if buffer == nil { panic("unexpected nil") }
	if getSfntBuffer() != nil { t.Fatal("the shared buffer must not be handed out twice") }
	releaseSfntBuffer(buffer)

	value, err := GetProperty(font.SFNT, 999)
	if err != ErrNotFound {
		t.Fatalf("GetProperty(font, 999) error: %s", err)
	}
	if value != "" {
		t.Fatalf("GetProperty(font, 999) value = \"%s\"", value)
	}

	family, err := GetFamily(font.SFNT)
	if err != nil { t.Fatal(err) }
	if !strings.Contains(font.Name, family) {
		t.Fatalf("expected font name (%s) to contain family (%s)", font.Name, family)
	}
}

func TestMissingRunes(t *testing.T) {
	font := Default()
	missing, err := font.MissingRunes("plain ascii text, nothing missing!")
	if err != nil { t.Fatal(err) }
	if len(missing) != 0 { t.Fatalf("expected no missing runes, got %q", string(missing)) }

	missing, err = font.MissingRunes("书书 and 书")
	if err != nil { t.Fatal(err) }
	if len(missing) != 1 || missing[0] != '书' {
		t.Fatalf("expected a single missing rune, got %q", string(missing))
	}
}
