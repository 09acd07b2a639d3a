// The cache subpackage provides a bounded cache for text widths.
//
// Measuring text is not free: hosts need to look up glyph advances and
// kerning pairs for each rune, and the layout engine measures every
// wrap unit at least twice per page (once to measure the page, once to
// draw it) plus once more for the row fit test. Pages are also redrawn
// on every page turn, so the same words get measured over and over.
//
// [WidthCache] keeps those widths around with a memory bound. Entries
// are small (the text plus a fixed overhead, see [EntryByteSize]()),
// so even 64KiB fit more than a thousand different words, which is
// plenty for most books.
package cache
