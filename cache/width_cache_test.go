package cache

import "strconv"
import "testing"

import "github.com/sesvxace/book/fract"

func TestWidthCache(t *testing.T) {
	const millis200 = 200_000_000 // 200 milliseconds in ns

	keys := make([]string, 10)
	for i := 0; i < 10; i++ {
		keys[i] = "k" + strconv.Itoa(i)
	}
	refSize := EntryByteSize(keys[0])

	cache := NewWidthCache(int(refSize*8))
	gotSize := cache.ApproxByteSize()
	if gotSize != 0 { t.Fatalf("expected %d, got %d", 0, gotSize) }

	gotSize  = cache.PeakSize()
	if gotSize != 0 { t.Fatalf("expected %d, got %d", 0, gotSize) }

	width, found := cache.GetWidth(keys[1])
	if found { t.Fatal("didn't expect to find width") }
	if width != 0 { t.Fatal("expected zero width") }

	cache.PassWidth(keys[2], fract.FromInt(2))
	_, found = cache.GetWidth(keys[1])
	if found { t.Fatal("didn't expect to find width") }

	width, found = cache.GetWidth(keys[2])
	if !found { t.Fatal("expected to find width") }
	if width != fract.FromInt(2) { t.Fatal("nonsensical width") }

	for i := 3; i < 10; i++ {
		if i <= 5 { testInstantNanosHack += millis200 } // keep additions appart
		cache.PassWidth(keys[i], fract.FromInt(i))
	}

	for i := 3; i < 10; i++ {
		width, found = cache.GetWidth(keys[i])
		if !found { t.Fatal("expected to find width") }
		if width != fract.FromInt(i) { t.Fatal("wrong width") }
	}

	gotSize = cache.ApproxByteSize()
	expectSize := int(refSize)*8
	if gotSize != expectSize { t.Fatalf("expected %d, got %d", expectSize, gotSize) }
	gotSize = cache.PeakSize()
	if gotSize != expectSize { t.Fatalf("expected %d, got %d", expectSize, gotSize) }

	testInstantNanosHack += millis200
	cache.PassWidth(keys[0], 0)
	_, found = cache.GetWidth(keys[0])
	if !found { t.Fatal("expected width to be added") }

	_, found = cache.GetWidth(keys[2])
	if found { t.Fatal("expected width to be evicted") }

	gotSize = cache.ApproxByteSize()
	if gotSize != expectSize { t.Fatalf("expected %d, got %d", expectSize, gotSize) }

	for i := 3; i < 10; i++ {
		width, found = cache.GetWidth(keys[i])
		if !found { t.Fatal("expected to find width") }
		if width != fract.FromInt(i) { t.Fatal("wrong width") }
	}

	// cooldown for recently accessed widths
	testInstantNanosHack += millis200

	biggerKey := "bigger-key"
	cache.PassWidth(biggerKey, fract.FromInt(99))
	_, found = cache.GetWidth(keys[3])
	if found { t.Fatal("expected width to be evicted") }
	_, found = cache.GetWidth(keys[4])
	if found { t.Fatal("expected width to be evicted") }
	_, found = cache.GetWidth(keys[5])
	if !found { t.Fatal("expected width to be present") }
	_, found = cache.GetWidth(keys[0])
	if !found { t.Fatal("expected width to be present") }

	gotSize = cache.PeakSize()
	if gotSize != expectSize { t.Fatalf("expected %d, got %d", expectSize, gotSize) }
	expectSize = expectSize - int(refSize*2) + int(EntryByteSize(biggerKey))
	gotSize = cache.ApproxByteSize()
	if gotSize != expectSize { t.Fatalf("expected %d, got %d", expectSize, gotSize) }

	// entries bigger than the whole cache are ignored
	tiny := NewWidthCache(8)
	tiny.PassWidth("too big for this cache", fract.FromInt(1))
	if tiny.ApproxByteSize() != 0 { t.Fatal("expected the entry to be ignored") }
}

func TestMeasurer(t *testing.T) {
	var calls int
	measurer := NewMeasurer(func(text string) fract.Unit {
		calls += 1
		return fract.FromInt(len(text)*7)
	}, nil)

	for i := 0; i < 3; i++ {
		if width := measurer.Measure("word"); width != fract.FromInt(28) {
			t.Fatalf("expected 28, got %v", width.ToFloat64())
		}
	}
	if calls != 1 { t.Fatalf("expected a single measurement, got %d", calls) }
	if measurer.Measure("") != 0 || calls != 1 { t.Fatal("empty text must not be measured") }
	if measurer.Cache().ApproxByteSize() != int(EntryByteSize("word")) {
		t.Fatalf("unexpected cache size %d", measurer.Cache().ApproxByteSize())
	}
}
