package cache

import "github.com/sesvxace/book/fract"

// Default capacity for [NewMeasurer]().
const DefaultByteSize = 64*1024

// A measuring function with a width cache in front of it.
// Like the functions it wraps, it's not concurrent-safe.
type Measurer struct {
	measure func(string) fract.Unit
	cache *WidthCache
}

// Wraps the given measuring function. If cache is nil, a new cache
// of [DefaultByteSize] is created.
func NewMeasurer(measure func(string) fract.Unit, cache *WidthCache) *Measurer {
	if measure == nil { panic("NewMeasurer() requires a non-nil function") }
	if cache == nil { cache = NewWidthCache(DefaultByteSize) }
	return &Measurer{ measure: measure, cache: cache }
}

// Returns the cache used by the measurer.
func (self *Measurer) Cache() *WidthCache { return self.cache }

func (self *Measurer) Measure(text string) fract.Unit {
	if text == "" { return 0 }
	if width, found := self.cache.GetWidth(text); found { return width }
	width := self.measure(text)
	self.cache.PassWidth(text, width)
	return width
}
