package ebitenhost

import "testing"

import "github.com/sesvxace/book"

func TestRepeats(t *testing.T) {
	var fired []int
	for duration := 0; duration <= 40; duration++ {
		if repeats(duration) { fired = append(fired, duration) }
	}
	expected := []int{ 1, 24, 30, 36 }
	if len(fired) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, fired)
	}
	for i := range expected {
		if fired[i] != expected[i] { t.Fatalf("expected %v, got %v", expected, fired) }
	}
}

func TestKeyMap(t *testing.T) {
	for _, key := range []book.Key{ book.KeyLeft, book.KeyRight, book.KeyUp, book.KeyDown, book.KeyCancel } {
		if len(KeyMap[key]) == 0 { t.Fatalf("key %s has no physical keys", key) }
	}
	width, height := ScreenSize(book.Options{ X: 10, Y: 20, Width: 100, Height: 50 })
	if width != 110 || height != 70 { t.Fatalf("unexpected screen size %dx%d", width, height) }
}
