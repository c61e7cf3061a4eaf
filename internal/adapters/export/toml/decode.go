package toml

import (
	"github.com/paakwasi317/conference-tracker/internal/application"
	"github.com/paakwasi317/conference-tracker/internal/domain"
)

func fromSchema(file fileSchema) application.Schedule {
	schedule := application.Schedule{
		Tracks: make([]application.FormattedTrack, 0, len(file.Tracks)),
	}

	for _, track := range file.Tracks {
		slots := make([]application.TrackSlot, 0, len(track.Sessions))
		for _, session := range track.Sessions {
			slots = append(slots, application.TrackSlot{Time: session.Time, Talk: session.Talk, Synthetic: session.Fixture})
		}
		schedule.Tracks = append(schedule.Tracks, application.FormattedTrack{Label: track.Name, Slots: slots})
	}

	for _, talk := range file.Unscheduled {
		schedule.Unscheduled = append(schedule.Unscheduled, domain.Talk{Name: talk.Name, Duration: talk.Duration})
	}

	return schedule
}
