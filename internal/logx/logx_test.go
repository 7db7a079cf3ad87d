package logx

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"pkt.systems/pslog"
	"pkt.systems/scratchdock/schema"
)

func TestWithTabAddsField(t *testing.T) {
	capture := &logCapture{}
	logger := pslog.NewWithOptions(capture, pslog.Options{
		Mode:          pslog.ModeStructured,
		NoColor:       true,
		MinLevel:      pslog.InfoLevel,
		VerboseFields: true,
	})
	ctx := pslog.ContextWithLogger(context.Background(), logger)
	log := WithTab(ctx, "Scratch 1")
	log.Info("hello")

	entry := capture.firstEntry(t)
	if entry["tab"] != "Scratch 1" {
		t.Fatalf("expected tab field, got %+v", entry)
	}
}

func TestWithTabSkipsDuplicateMarker(t *testing.T) {
	capture := &logCapture{}
	logger := pslog.NewWithOptions(capture, pslog.Options{
		Mode:          pslog.ModeStructured,
		NoColor:       true,
		MinLevel:      pslog.InfoLevel,
		VerboseFields: true,
	})
	ctx := ContextWithTabLogger(context.Background(), logger.With("tab", "Scratch 1"), "Scratch 1")
	log := WithTab(ctx, "Scratch 1")
	log.Info("hello")

	entry := capture.firstEntry(t)
	if entry["tab"] != "Scratch 1" {
		t.Fatalf("expected tab field, got %+v", entry)
	}
}

func TestWithStreamAddsFields(t *testing.T) {
	capture := &logCapture{}
	logger := pslog.NewWithOptions(capture, pslog.Options{
		Mode:          pslog.ModeStructured,
		NoColor:       true,
		MinLevel:      pslog.InfoLevel,
		VerboseFields: true,
	})
	log := WithStream(logger, schema.StreamID{Tab: "Scratch 1", Kind: schema.StreamStderr})
	log.Info("hello")

	entry := capture.firstEntry(t)
	if entry["tab"] != "Scratch 1" {
		t.Fatalf("expected tab field, got %+v", entry)
	}
	if entry["stream"] != "stderr" {
		t.Fatalf("expected stream field, got %+v", entry)
	}
}

func TestCopyContextFields(t *testing.T) {
	src := ContextWithTab(context.Background(), "Scratch 2-0-2")
	dst := CopyContextFields(context.Background(), src)
	if tab, ok := dst.Value(tabKey).(schema.TabID); !ok || tab != "Scratch 2-0-2" {
		t.Fatalf("tab marker not copied: %v", dst.Value(tabKey))
	}
}

type logCapture struct {
	buf bytes.Buffer
}

func (c *logCapture) Write(p []byte) (int, error) {
	return c.buf.Write(p)
}

func (c *logCapture) firstEntry(t *testing.T) map[string]any {
	t.Helper()
	data := c.buf.Bytes()
	idx := bytes.IndexByte(data, '\n')
	if idx == -1 {
		idx = len(data)
	}
	line := bytes.TrimSpace(data[:idx])
	entry := map[string]any{}
	if err := json.Unmarshal(line, &entry); err != nil {
		t.Fatalf("parse log entry: %v", err)
	}
	return entry
}
