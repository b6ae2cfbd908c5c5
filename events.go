/*
Copyright 2011-2026 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package fmseek

import (
	"fmt"
	"log/slog"
	"time"
)

const (
	EvtConcatenateStart = 0 // Collection concatenation/sentinel insertion starts
	EvtConcatenateEnd   = 1 // Collection concatenation ends
	EvtSuffixArrayStart = 2 // Suffix-array construction starts
	EvtSuffixArrayEnd   = 3 // Suffix-array construction ends
	EvtBWTStart         = 4 // BWT/C-table derivation starts
	EvtBWTEnd           = 5 // BWT/C-table derivation ends
	EvtSampleStart      = 6 // Sampled suffix array construction starts
	EvtSampleEnd        = 7 // Sampled suffix array construction ends
	EvtMergeStart       = 8 // Index merge starts
	EvtMergeEnd         = 9 // Index merge ends
)

// Event reports one stage of FM-index construction or merge. Listeners are
// the primary reporting mechanism (mirroring the teacher's compression
// Event/Listener pair); a *slog.Logger adapter is provided by
// fmseek.NewSlogListener for callers who want it on the default sink.
type Event struct {
	eventType int
	size      int64
	eventTime time.Time
	msg       string
}

// NewEvent creates a construction-progress event.
func NewEvent(evtType int, size int64, msg string, evtTime time.Time) *Event {
	if evtTime.IsZero() {
		evtTime = time.Now()
	}

	return &Event{eventType: evtType, size: size, msg: msg, eventTime: evtTime}
}

// Type returns the event type constant.
func (this *Event) Type() int {
	return this.eventType
}

// Time returns when the event was recorded.
func (this *Event) Time() time.Time {
	return this.eventTime
}

// Size returns the size info associated with the event (e.g. bytes processed).
func (this *Event) Size() int64 {
	return this.size
}

// String returns a human-readable representation of the event.
func (this *Event) String() string {
	if len(this.msg) > 0 {
		return this.msg
	}

	return fmt.Sprintf("{ \"type\":%d, \"size\":%d, \"time\":%d }", this.eventType, this.size,
		this.eventTime.UnixNano()/1000000)
}

// Listener is implemented by construction-progress observers.
type Listener interface {
	ProcessEvent(evt *Event)
}

// Notify fans an event out to every listener, ignoring nil listeners. It is
// a no-op helper so that construction code does not need a nil check at
// every call site.
func Notify(listeners []Listener, evt *Event) {
	for _, l := range listeners {
		if l != nil {
			l.ProcessEvent(evt)
		}
	}
}

// slogListener adapts Listener onto a *slog.Logger.
type slogListener struct {
	log *slog.Logger
}

// NewSlogListener returns a Listener that logs every event to log at debug
// level, tagging each line with its event type and size.
func NewSlogListener(log *slog.Logger) Listener {
	return &slogListener{log: log}
}

func (this *slogListener) ProcessEvent(evt *Event) {
	this.log.Debug(evt.String(), "type", evt.eventType, "size", evt.size)
}
