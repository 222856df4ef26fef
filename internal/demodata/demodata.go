// Copyright (C) 2025, VectorSync Authors. All rights reserved.
// See the file LICENSE for licensing terms.

// Package demodata supplies the fixed text article the cmd/vsync demo
// publishes chunk by chunk, grounded on the original source's vsync()
// (examples/ndn_sync/vsync.c): a single free-standing string, sliced
// into article.per_pkt-sized pieces as each publish tick fires.
package demodata

// Article is the demo dataset one peer publishes in per-tick chunks.
const Article = "Soldiers. Scientists. Adventurers. Oddities. In a time of " +
	"global crisis, an international task force of heroes banded " +
	"together to restore peace to a war-torn world: OVERWATCH. " +
	"Overwatch ended the crisis, and helped maintain peace in " +
	"the decades that followed, inspiring an era of exploration, " +
	"innovation, and discovery. But, after many years, Overwatch's " +
	"influence waned, and it was eventually disbanded. Now, " +
	"conflict is rising across the world again, and the call has " +
	"gone out to heroes old and new. Are you with us?"

// Chunker slices Article into per-tick publish payloads.
type Chunker struct {
	buf     []byte
	current int
	perPkt  int
}

// NewChunker returns a Chunker over text, yielding perPkt bytes per Next
// call (the original's article.per_pkt; cmd/vsync passes its
// --bytes-per-pkt flag, default config.DefaultBytesPerPkt = 10).
func NewChunker(text string, perPkt int) *Chunker {
	return &Chunker{buf: []byte(text), perPkt: perPkt}
}

// Next returns the next chunk to publish, or ok=false once the whole
// text has been emitted.
func (c *Chunker) Next() (chunk []byte, ok bool) {
	if c.current >= len(c.buf) {
		return nil, false
	}
	end := c.current + c.perPkt
	if end > len(c.buf) {
		end = len(c.buf)
	}
	chunk = c.buf[c.current:end]
	c.current = end
	return chunk, true
}

// Done reports whether every byte of the text has been emitted.
func (c *Chunker) Done() bool {
	return c.current >= len(c.buf)
}
