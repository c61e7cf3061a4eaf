package application

import (
	"encoding/json"

	"github.com/paakwasi317/conference-tracker/internal/domain"
)

type TrackSlot struct {
	Time string `json:"time" toml:"time"`
	Talk string `json:"talk" toml:"talk"`
	// Synthetic marks the lunch and networking fixtures.
	Synthetic bool `json:"-" toml:"-"`
}

// FormattedTrack is a track rendered for output. It marshals to JSON as
// {"Track N": [{"time": ..., "talk": ...}, ...]}.
type FormattedTrack struct {
	Label string
	Slots []TrackSlot
}

func (t FormattedTrack) MarshalJSON() ([]byte, error) {
	slots := t.Slots
	if slots == nil {
		slots = []TrackSlot{}
	}
	return json.Marshal(map[string][]TrackSlot{t.Label: slots})
}

type Schedule struct {
	Tracks      []FormattedTrack `json:"schedules"`
	Unscheduled []domain.Talk    `json:"unscheduled,omitempty"`
}

// UnscheduledBreakdown splits the unscheduled talks into those longer than any
// session window and those left over once the track limit was reached.
func (s Schedule) UnscheduledBreakdown() (tooLong, overTrackLimit int) {
	for _, talk := range s.Unscheduled {
		if talk.FitsWindow() {
			overTrackLimit++
		} else {
			tooLong++
		}
	}
	return tooLong, overTrackLimit
}

// FormatTrack renders every session of track ordered by start time.
func FormatTrack(track domain.Track) FormattedTrack {
	sessions := track.Sessions()
	slots := make([]TrackSlot, 0, len(sessions))
	for _, session := range sessions {
		slots = append(slots, TrackSlot{
			Time:      session.Start.Clock(),
			Talk:      session.Talk.Label(),
			Synthetic: session.Synthetic,
		})
	}

	return FormattedTrack{Label: track.Label(), Slots: slots}
}

func FormatTracks(tracks []domain.Track) []FormattedTrack {
	formatted := make([]FormattedTrack, 0, len(tracks))
	for _, track := range tracks {
		formatted = append(formatted, FormatTrack(track))
	}
	return formatted
}
