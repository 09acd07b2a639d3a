package cache

import "sync"
import "sync/atomic"

import "github.com/sesvxace/book/fract"

// A cache of text widths. It is concurrent-safe (though not optimized
// or expected to be used under heavily concurrent scenarios), it has
// memory bounds and uses random sampling for evicting entries.
//
// Widths depend on the font face, so each face needs its own cache.
type WidthCache struct {
	widths map[string]*widthEntry
	spaceBytesLeft uint32
	lowestBytesLeft uint32
	byteSizeLimit uint32
	mutex sync.RWMutex
}

// Creates a new cache bounded by the given size. Negative values
// will panic.
func NewWidthCache(maxByteSize int) *WidthCache {
	if maxByteSize < 0 { panic("maxByteSize < 0") } // likely a dev mistake
	return &WidthCache {
		widths: make(map[string]*widthEntry, 128),
		spaceBytesLeft: uint32(maxByteSize),
		lowestBytesLeft: uint32(maxByteSize),
		byteSizeLimit: uint32(maxByteSize),
	}
}

// Attempts to remove the entry with the lowest eviction cost from a
// small pool of samples. Map iteration order is what makes the
// sampling random. May not remove anything in some cases.
//
// The returned value is the freed space, which must be manually
// added to spaceBytesLeft by the caller.
func (self *WidthCache) removeRandEntry(hotness uint32, instant uint32) uint32 {
	const SampleSize = 10

	self.mutex.RLock()
	var selectedKey string
	lowestHotness := ^uint32(0)
	samplesTaken  := 0
	for key, entry := range self.widths {
		currHotness := entry.Hotness(instant)
		if currHotness < lowestHotness {
			lowestHotness = currHotness
			selectedKey = key
		}

		samplesTaken += 1
		if samplesTaken >= SampleSize { break }
	}
	self.mutex.RUnlock()

	freedSpace := uint32(0)
	if lowestHotness < hotness {
		self.mutex.Lock()
		entry, stillExists := self.widths[selectedKey]
		if stillExists {
			delete(self.widths, selectedKey)
			freedSpace = entry.ByteSize
		}
		self.mutex.Unlock()
	}
	return freedSpace
}

// Stores the width of the given text.
func (self *WidthCache) PassWidth(text string, width fract.Unit) {
	const MaxMakeRoomAttempts = 2

	// see if we have enough space to add the width, or try to
	// make some room otherwise
	entry, instant := newWidthEntry(text, width)
	if entry.ByteSize > atomic.LoadUint32(&self.byteSizeLimit) { return }
	spaceBytesLeft := atomic.LoadUint32(&self.spaceBytesLeft)
	freedSpace := uint32(0)
	if entry.ByteSize > spaceBytesLeft {
		hotness := entry.Hotness(instant)
		missingSpace := entry.ByteSize - spaceBytesLeft
		for i := 0; i < MaxMakeRoomAttempts; i++ {
			freedSpace += self.removeRandEntry(hotness, instant)
			if freedSpace >= missingSpace { goto roomMade }
		}

		// we didn't make enough room for the new entry. desist.
		if freedSpace != 0 {
			atomic.AddUint32(&self.spaceBytesLeft, freedSpace)
		}
		return
	}

roomMade:
	self.mutex.Lock()
	defer self.mutex.Unlock()
	if freedSpace != 0 { atomic.AddUint32(&self.spaceBytesLeft, freedSpace) }
	_, alreadyExists := self.widths[text]
	if alreadyExists { return }
	if atomic.LoadUint32(&self.spaceBytesLeft) < entry.ByteSize { return }
	newLeft := atomic.AddUint32(&self.spaceBytesLeft, ^uint32(entry.ByteSize - 1))
	if newLeft < atomic.LoadUint32(&self.lowestBytesLeft) {
		atomic.StoreUint32(&self.lowestBytesLeft, newLeft)
	}
	self.widths[text] = entry
}

// Gets the width cached for the given text.
func (self *WidthCache) GetWidth(text string) (fract.Unit, bool) {
	self.mutex.RLock()
	entry, found := self.widths[text]
	self.mutex.RUnlock()
	if !found { return 0, false }
	entry.IncreaseAccessCount()
	return entry.Width, true
}

// Returns an approximation of the number of bytes taken by the
// widths currently stored in the cache.
func (self *WidthCache) ApproxByteSize() int {
	return int(atomic.LoadUint32(&self.byteSizeLimit) - atomic.LoadUint32(&self.spaceBytesLeft))
}

// Returns an approximation of the maximum amount of bytes that the
// cache has been filled with at any point of its life.
func (self *WidthCache) PeakSize() int {
	return int(atomic.LoadUint32(&self.byteSizeLimit) - atomic.LoadUint32(&self.lowestBytesLeft))
}
