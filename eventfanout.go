package scratchdock

import (
	"pkt.systems/scratchdock/core"
	"pkt.systems/scratchdock/schema"
)

type eventFanout struct {
	sinks []core.EventSink
}

func (f eventFanout) OnTabEvent(event schema.TabEvent) {
	for _, sink := range f.sinks {
		if sink == nil {
			continue
		}
		sink.OnTabEvent(event)
	}
}

func (f eventFanout) OnNotify(event schema.NotifyEvent) {
	for _, sink := range f.sinks {
		if sink == nil {
			continue
		}
		sink.OnNotify(event)
	}
}
