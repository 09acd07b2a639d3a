package cache

import "sync/atomic"
import "time"

import "github.com/sesvxace/book/fract"

// Approximate memory taken by an entry besides its text: map slot,
// key header, pointer and the entry itself.
const entryOverhead = 32

// Returns the approximate number of bytes taken by a cached width
// for the given text.
func EntryByteSize(text string) uint32 {
	return uint32(len(text)) + entryOverhead
}

// A cached width with additional information to estimate how
// much the entry is being used.
type widthEntry struct {
	Width fract.Unit // Read-only.
	ByteSize uint32 // Read-only.
	CreationInstant uint32 // see cacheEntryInstant(). Read-only.
	accessCount uint32 // number of times the entry has been accessed
}

// Must be called after accessing an entry in order to keep the
// Hotness() heuristic making sense. Concurrent-safe.
func (self *widthEntry) IncreaseAccessCount() {
	atomic.AddUint32(&self.accessCount, 1)
}

// A measure of "bytes accessed per time". Coldest entries
// (smallest values) are candidates for eviction. Concurrent-safe.
func (self *widthEntry) Hotness(instant uint32) uint32 {
	const ConstEvictionCost = 1000 // additional threshold and pad
	bytesHit := self.ByteSize*atomic.LoadUint32(&self.accessCount)
	elapsed  := instant - self.CreationInstant
	if elapsed == 0 { elapsed = 1 }
	return (ConstEvictionCost + bytesHit)/elapsed
}

var processStart = time.Now()

// Tests move time forward with this instead of sleeping. One
// second would be 1000_000_000, half a second 500_000_000, etc.
var testInstantNanosHack int64

// A time instant based on the monotonic clock, downscaled to roughly
// a tenth of a second (2^27 nanoseconds).
func cacheEntryInstant() uint32 {
	return uint32((int64(time.Since(processStart)) + testInstantNanosHack) >> 27)
}

func newWidthEntry(text string, width fract.Unit) (*widthEntry, uint32) {
	instant := cacheEntryInstant()
	return &widthEntry {
		Width: width,
		ByteSize: EntryByteSize(text),
		CreationInstant: instant,
		accessCount: 1,
	}, instant
}
