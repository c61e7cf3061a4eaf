package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTalk(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want Talk
	}{
		{name: "minutes suffix", line: "Talk 1 45 mins", want: Talk{Name: "Talk 1", Duration: 45}},
		{name: "lightning keeps full text", line: "Talk 2 lightning", want: Talk{Name: "Talk 2 lightning", Duration: 5}},
		{name: "lightning wins over duration", line: "Rapid lightning 30min", want: Talk{Name: "Rapid lightning 30min", Duration: 5}},
		{name: "lightning is case sensitive", line: "Lightning Talk 30min", want: Talk{Name: "Lightning Talk", Duration: 30}},
		{name: "suffix glued to number", line: "Talk 2 78mins", want: Talk{Name: "Talk 2", Duration: 78}},
		{name: "single min", line: "Writing Fast Tests Against Enterprise Rails 60min", want: Talk{Name: "Writing Fast Tests Against Enterprise Rails", Duration: 60}},
		{name: "doubled min", line: "Ruby Errors 45 min min", want: Talk{Name: "Ruby Errors", Duration: 45}},
		{name: "suffix optional", line: "Keynote 30", want: Talk{Name: "Keynote", Duration: 30}},
		{name: "surrounding whitespace trimmed", line: "  Talk 3 20 mins  ", want: Talk{Name: "Talk 3", Duration: 20}},
		{name: "no duration", line: "talks", want: Talk{Name: "talks"}},
		{name: "number without separator", line: "Go60min", want: Talk{Name: "Go60min"}},
		{name: "unknown unit", line: "Sprint 2 hours", want: Talk{Name: "Sprint 2 hours"}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseTalk(tc.line)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseTalkRejectsOverflowingDuration(t *testing.T) {
	t.Parallel()

	_, err := ParseTalk("Forever 99999999999999999999999 mins")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestTalkLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Talk 1 [45 mins]", Talk{Name: "Talk 1", Duration: 45}.Label())
	assert.Equal(t, "Lunch [60 mins]", Talk{Name: LunchName, Duration: 60}.Label())
	assert.Equal(t, "Networking event", Talk{Name: NetworkingName}.Label())
}

func TestTalkFitsWindow(t *testing.T) {
	t.Parallel()

	assert.True(t, Talk{Name: "Note"}.FitsWindow())
	assert.True(t, Talk{Name: "Deep Dive", Duration: LongestWindow}.FitsWindow())
	assert.False(t, Talk{Name: "Marathon", Duration: LongestWindow + 1}.FitsWindow())
}
