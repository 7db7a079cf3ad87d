// Package ansicache memoizes ANSI parsing and stripping per logical output
// stream. Output buffers grow for the lifetime of a run and are re-rendered
// every frame; the hash check keeps the per-frame cost at one digest of the
// raw bytes instead of a full re-parse.
package ansicache

import (
	"sync"

	"github.com/cespare/xxhash/v2"

	"pkt.systems/scratchdock/internal/ansi"
	"pkt.systems/scratchdock/internal/theme"
	"pkt.systems/scratchdock/schema"
)

type styledEntry struct {
	hash    uint64
	palette theme.Palette
	value   schema.StyledText
}

type plainEntry struct {
	hash  uint64
	value string
}

// Cache memoizes styled and plain derivations of raw stream content. An
// entry is recomputed if and only if the stored hash (or palette, for the
// styled form) differs from the current one; a stale entry would show
// outdated output, so the contract is correctness, not just speed.
type Cache struct {
	mu     sync.Mutex
	styled map[schema.StreamID]*styledEntry
	plain  map[schema.StreamID]*plainEntry

	styledRecomputes int
	plainRecomputes  int
}

// New constructs an empty cache.
func New() *Cache {
	return &Cache{
		styled: make(map[schema.StreamID]*styledEntry),
		plain:  make(map[schema.StreamID]*plainEntry),
	}
}

// ParseStyled returns the styled-run form of raw for the stream, reusing
// the cached value when the content hash and palette are unchanged.
func (c *Cache) ParseStyled(stream schema.StreamID, raw string, palette theme.Palette) schema.StyledText {
	hash := xxhash.Sum64String(raw)

	c.mu.Lock()
	defer c.mu.Unlock()
	if entry, ok := c.styled[stream]; ok && entry.hash == hash && entry.palette == palette {
		return entry.value
	}
	value := styleText(ansi.Parse(raw), palette)
	c.styled[stream] = &styledEntry{hash: hash, palette: palette, value: value}
	c.styledRecomputes++
	return value
}

// StripToPlain returns the escape-free form of raw for the stream, reusing
// the cached value when the content hash is unchanged.
func (c *Cache) StripToPlain(stream schema.StreamID, raw string) string {
	hash := xxhash.Sum64String(raw)

	c.mu.Lock()
	defer c.mu.Unlock()
	if entry, ok := c.plain[stream]; ok && entry.hash == hash {
		return entry.value
	}
	value := ansi.Strip(raw)
	c.plain[stream] = &plainEntry{hash: hash, value: value}
	c.plainRecomputes++
	return value
}

// Forget drops both stream entries of a destroyed tab so the cache does not
// grow without bound across long sessions.
func (c *Cache) Forget(tab schema.TabID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, kind := range []schema.StreamKind{schema.StreamStdout, schema.StreamStderr} {
		stream := schema.StreamID{Tab: tab, Kind: kind}
		delete(c.styled, stream)
		delete(c.plain, stream)
	}
}

// StyledRecomputes reports how many styled parses have run.
func (c *Cache) StyledRecomputes() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.styledRecomputes
}

// PlainRecomputes reports how many strip passes have run.
func (c *Cache) PlainRecomputes() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.plainRecomputes
}

func styleText(parsed ansi.Parsed, palette theme.Palette) schema.StyledText {
	runs := make([]schema.StyledRun, 0, len(parsed.Runs))
	for _, run := range parsed.Runs {
		styled := schema.StyledRun{
			Start:         run.Start,
			End:           run.End,
			FG:            palette.Resolve(run.Style.FG, palette.DefaultFG),
			Italic:        run.Style.Italic,
			Underline:     run.Style.Underline,
			Strikethrough: run.Style.Strikethrough,
		}
		if run.Style.BG != nil {
			styled.BG = palette.Resolve(run.Style.BG, schema.RGBColor{})
			styled.HasBG = true
		}
		runs = append(runs, styled)
	}
	return schema.StyledText{Plain: parsed.Plain, Runs: runs}
}
