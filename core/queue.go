package core

import "pkt.systems/scratchdock/schema"

// commandQueue buffers deferred structural commands. The render pass only
// appends; the processor drains after the pass, so the tree is never
// mutated while it is being traversed.
type commandQueue struct {
	items []schema.Command
}

// Push appends a command. Insertion order is emission order within the
// frame and is preserved by Retain.
func (q *commandQueue) Push(cmd schema.Command) {
	q.items = append(q.items, cmd)
}

// Len reports the number of queued commands.
func (q *commandQueue) Len() int {
	return len(q.items)
}

// Retain processes commands in order, keeping those whose handler returns
// true for the next frame. Multi-frame commands (an open rename dialog)
// stay queued until their handler reports completion.
func (q *commandQueue) Retain(fn func(schema.Command) bool) {
	kept := q.items[:0]
	for _, cmd := range q.items {
		if fn(cmd) {
			kept = append(kept, cmd)
		}
	}
	q.items = kept
}
