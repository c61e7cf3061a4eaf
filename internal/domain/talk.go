package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const LightningDuration = 5

type TalkID int

// Talk is one schedulable activity parsed from a single input line.
type Talk struct {
	Name     string `json:"name" toml:"name"`
	Duration int    `json:"duration" toml:"duration"`
}

var durationPattern = regexp.MustCompile(`^(.*?)\s+(\d+)\s*(min|min\s*min|mins)?$`)

// ParseTalk extracts a talk from a trimmed input line. Lines without a
// recognised duration become zero-length talks named after the full line.
func ParseTalk(line string) (Talk, error) {
	text := strings.TrimSpace(line)

	if strings.Contains(text, "lightning") {
		return Talk{Name: text, Duration: LightningDuration}, nil
	}

	match := durationPattern.FindStringSubmatch(text)
	if match == nil {
		return Talk{Name: text}, nil
	}

	minutes, err := strconv.Atoi(match[2])
	if err != nil {
		return Talk{}, fmt.Errorf("%w: duration %q: %v", ErrInvalidInput, match[2], err)
	}

	return Talk{Name: strings.TrimSpace(match[1]), Duration: minutes}, nil
}

// FitsWindow reports whether the talk is short enough for an empty session.
func (t Talk) FitsWindow() bool {
	return t.Duration <= LongestWindow
}

// Label renders the talk the way it appears in a formatted track.
func (t Talk) Label() string {
	if t.Duration > 0 {
		return fmt.Sprintf("%s [%d mins]", t.Name, t.Duration)
	}
	return t.Name
}
