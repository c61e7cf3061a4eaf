package toml

import (
	"bytes"
	"strings"
	"testing"

	"github.com/paakwasi317/conference-tracker/internal/application"
	"github.com/paakwasi317/conference-tracker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeWritesTrackTables(t *testing.T) {
	t.Parallel()

	schedule := application.Schedule{
		Tracks: []application.FormattedTrack{{
			Label: "Track 1",
			Slots: []application.TrackSlot{
				{Time: "09:00 AM", Talk: "Talk 1 [45 mins]"},
				{Time: "12:00 PM", Talk: "Lunch [60 mins]", Synthetic: true},
			},
		}},
		Unscheduled: []domain.Talk{{Name: "Marathon", Duration: 300}},
	}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, schedule))

	out := buf.String()
	assert.Contains(t, out, "version = 1")
	assert.Contains(t, out, "[[tracks]]")
	assert.Contains(t, out, "name = 'Track 1'")
	assert.Contains(t, out, "[[tracks.sessions]]")
	assert.Contains(t, out, "talk = 'Lunch [60 mins]'")
	assert.Contains(t, out, "fixture = true")
	assert.Equal(t, 1, strings.Count(out, "fixture"))
	assert.Contains(t, out, "[[unscheduled]]")

	decoded, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, schedule, decoded)
}

func TestEncodeOmitsEmptyUnscheduled(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, application.Schedule{}))

	assert.NotContains(t, buf.String(), "unscheduled")
}

func TestDecodeRejectsNewerSchema(t *testing.T) {
	t.Parallel()

	_, err := Decode(strings.NewReader("version = 2\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported schedule schema version 2")
}
