package toml

import (
	"fmt"
	"io"

	"github.com/paakwasi317/conference-tracker/internal/application"
	toml "github.com/pelletier/go-toml/v2"
)

// Encode writes schedule as a versioned TOML document with one [[tracks]]
// table per track.
func Encode(w io.Writer, schedule application.Schedule) error {
	data, err := toml.Marshal(toSchema(schedule))
	if err != nil {
		return fmt.Errorf("encode schedule: %w", err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write schedule: %w", err)
	}

	return nil
}

// Decode reads a document produced by Encode. Documents from a newer schema
// version are rejected.
func Decode(r io.Reader) (application.Schedule, error) {
	var file fileSchema
	if err := toml.NewDecoder(r).Decode(&file); err != nil {
		return application.Schedule{}, fmt.Errorf("decode schedule: %w", err)
	}
	if file.Version > currentSchemaVersion {
		return application.Schedule{}, fmt.Errorf("unsupported schedule schema version %d (current %d)", file.Version, currentSchemaVersion)
	}

	return fromSchema(file), nil
}

func toSchema(schedule application.Schedule) fileSchema {
	file := fileSchema{
		Version: currentSchemaVersion,
		Tracks:  make([]trackSchema, 0, len(schedule.Tracks)),
	}

	for _, track := range schedule.Tracks {
		sessions := make([]sessionSchema, 0, len(track.Slots))
		for _, slot := range track.Slots {
			sessions = append(sessions, sessionSchema{Time: slot.Time, Talk: slot.Talk, Fixture: slot.Synthetic})
		}
		file.Tracks = append(file.Tracks, trackSchema{Name: track.Label, Sessions: sessions})
	}

	for _, talk := range schedule.Unscheduled {
		file.Unscheduled = append(file.Unscheduled, talkSchema{Name: talk.Name, Duration: talk.Duration})
	}

	return file
}
