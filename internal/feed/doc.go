// Package feed models and renders podcast RSS documents.
//
// The output dialect is RSS 2.0 with the iTunes podcast extension: one
// channel per playlist, one item per episode, enclosure plus guid plus
// optional pubDate and itunes:duration per item. The element set is fixed;
// this package owns the document shape the same way a wire codec owns its
// frames, and renders through encoding/xml so every piece of text is
// escaped exactly once.
//
// Callers hand Render raw strings. Pre-escaped input will be escaped
// again and show up mangled in readers; that is the caller's bug, not a
// rendering mode.
package feed
