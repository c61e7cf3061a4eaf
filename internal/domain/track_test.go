package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinuteClock(t *testing.T) {
	tests := []struct {
		name   string
		minute Minute
		want   string
	}{
		{name: "midnight", minute: 0, want: "12:00 AM"},
		{name: "morning start", minute: MorningStart, want: "09:00 AM"},
		{name: "noon", minute: LunchStart, want: "12:00 PM"},
		{name: "afternoon with minutes", minute: At(13, 5), want: "01:05 PM"},
		{name: "networking", minute: NetworkingEarliest, want: "04:00 PM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.minute.Clock())
		})
	}
}

func TestTrackSessionsOrderedByStart(t *testing.T) {
	t.Parallel()

	track := Track{
		Number: 1,
		Segments: []Segment{
			{Kind: SegmentMorning, Sessions: []Session{
				{Start: At(9, 0), Talk: Talk{Name: "a", Duration: 60}},
				{Start: At(10, 0), Talk: Talk{Name: "b", Duration: 0}},
				{Start: At(10, 0), Talk: Talk{Name: "c", Duration: 30}},
			}},
			{Kind: SegmentLunch, Sessions: []Session{
				{Start: LunchStart, Talk: Talk{Name: LunchName, Duration: 60}, Synthetic: true},
			}},
		},
	}

	sessions := track.Sessions()
	names := make([]string, 0, len(sessions))
	for _, s := range sessions {
		names = append(names, s.Talk.Name)
	}

	assert.Equal(t, []string{"a", "b", "c", LunchName}, names)
	assert.Equal(t, "Track 1", track.Label())
	assert.Len(t, track.Talks(), 3)
}

func TestSegmentUsed(t *testing.T) {
	t.Parallel()

	segment := Segment{Sessions: []Session{
		{Talk: Talk{Duration: 45}},
		{Talk: Talk{Duration: 30}},
	}}

	assert.Equal(t, 75, segment.Used())
	assert.Equal(t, At(9, 45), Session{Start: MorningStart, Talk: Talk{Duration: 45}}.End())
}
