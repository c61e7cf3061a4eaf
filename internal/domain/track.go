package domain

import (
	"fmt"
	"sort"
	"time"
)

// Minute is a time of day expressed in minutes since midnight.
type Minute int

func At(hour, minute int) Minute {
	return Minute(hour*60 + minute)
}

// Clock renders the minute as a 12-hour wall clock time, e.g. "01:05 PM".
func (m Minute) Clock() string {
	ref := time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC).Add(time.Duration(m) * time.Minute)
	return ref.Format("03:04 PM")
}

func (m Minute) String() string {
	return m.Clock()
}

const (
	MorningStart   Minute = 9 * 60
	MorningEnd     Minute = 12 * 60
	LunchStart     Minute = 12 * 60
	LunchEnd       Minute = 13 * 60
	AfternoonStart Minute = 13 * 60
	AfternoonEnd   Minute = 17 * 60

	// NetworkingEarliest is the earliest start of the networking event.
	NetworkingEarliest Minute = 16 * 60
)

// LongestWindow is the longest stretch a single talk can be given.
const LongestWindow = int(AfternoonEnd - AfternoonStart)

const (
	LunchName      = "Lunch"
	NetworkingName = "Networking event"
)

type SegmentKind string

const (
	SegmentMorning    SegmentKind = "morning"
	SegmentLunch      SegmentKind = "lunch"
	SegmentAfternoon  SegmentKind = "afternoon"
	SegmentNetworking SegmentKind = "networking"
)

// Session is a talk placed at a start time.
type Session struct {
	Start     Minute
	Talk      Talk
	Synthetic bool
}

func (s Session) End() Minute {
	return s.Start + Minute(s.Talk.Duration)
}

type Segment struct {
	Kind     SegmentKind
	Sessions []Session
}

// Used reports the minutes consumed by the segment's sessions.
func (s Segment) Used() int {
	total := 0
	for _, session := range s.Sessions {
		total += session.Talk.Duration
	}
	return total
}

// Track is one day of sessions: morning, lunch, afternoon and networking.
type Track struct {
	Number   int
	Segments []Segment
}

func (t Track) Label() string {
	return fmt.Sprintf("Track %d", t.Number)
}

func (t Track) Segment(kind SegmentKind) (Segment, bool) {
	for _, segment := range t.Segments {
		if segment.Kind == kind {
			return segment, true
		}
	}
	return Segment{}, false
}

// Sessions merges all segments ordered by start time. Sessions sharing a
// start time keep their segment order.
func (t Track) Sessions() []Session {
	var merged []Session
	for _, segment := range t.Segments {
		merged = append(merged, segment.Sessions...)
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Start < merged[j].Start
	})
	return merged
}

// Talks returns the non-synthetic talks placed in the track.
func (t Track) Talks() []Talk {
	var talks []Talk
	for _, session := range t.Sessions() {
		if session.Synthetic {
			continue
		}
		talks = append(talks, session.Talk)
	}
	return talks
}
