package core

import "sync"

// OutputBuffer is an append-only byte buffer for one output stream. A
// process reader goroutine appends while the render thread copies the
// content once per frame; the lock is held only for the copy, never across
// a frame boundary.
type OutputBuffer struct {
	mu   sync.Mutex
	data []byte
}

// Append adds bytes to the buffer.
func (b *OutputBuffer) Append(p []byte) {
	if len(p) == 0 {
		return
	}
	b.mu.Lock()
	b.data = append(b.data, p...)
	b.mu.Unlock()
}

// String copies the current content under the lock.
func (b *OutputBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return string(b.data)
}

// Len reports the current content size.
func (b *OutputBuffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.data)
}
