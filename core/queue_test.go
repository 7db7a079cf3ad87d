package core

import (
	"testing"

	"pkt.systems/scratchdock/schema"
)

func TestQueueRetainPreservesEmissionOrder(t *testing.T) {
	var q commandQueue
	q.Push(schema.AddTabCommand(0))
	q.Push(schema.CloseTabCommand(0, 1))
	q.Push(schema.RenameCommand(0, 0))

	var seen []schema.CommandKind
	q.Retain(func(cmd schema.Command) bool {
		seen = append(seen, cmd.Kind)
		return false
	})
	want := []schema.CommandKind{schema.CommandAddTab, schema.CommandCloseTab, schema.CommandRename}
	if len(seen) != len(want) {
		t.Fatalf("expected %d commands, got %d", len(want), len(seen))
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("order broken at %d: %v", i, seen)
		}
	}
	if q.Len() != 0 {
		t.Fatalf("expected drained queue, got %d", q.Len())
	}
}

func TestQueueRetainKeepsMultiFrameCommands(t *testing.T) {
	var q commandQueue
	q.Push(schema.RenameCommand(0, 0))
	q.Push(schema.AddTabCommand(0))

	q.Retain(func(cmd schema.Command) bool {
		return cmd.Kind == schema.CommandRename
	})
	if q.Len() != 1 {
		t.Fatalf("expected rename retained, got %d commands", q.Len())
	}
	if q.items[0].Kind != schema.CommandRename {
		t.Fatalf("wrong command retained: %+v", q.items[0])
	}
}
