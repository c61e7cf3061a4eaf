package tracks

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/paakwasi317/conference-tracker/internal/application"
	"github.com/paakwasi317/conference-tracker/internal/domain"
)

type RenderOptions struct {
	Title string
}

// Render lays out schedule as styled text, one block per track.
func Render(schedule application.Schedule, opts RenderOptions) string {
	return renderView(schedule, opts, newStyles())
}

func renderView(schedule application.Schedule, opts RenderOptions, s styles) string {
	title := opts.Title
	if strings.TrimSpace(title) == "" {
		title = "Conference Schedule"
	}

	lines := []string{
		s.title.Render(title),
		s.header.Render(fmt.Sprintf("tracks: %d", len(schedule.Tracks))),
	}

	if len(schedule.Tracks) == 0 {
		lines = append(lines, s.empty.Render("No tracks scheduled."))
	}

	for _, track := range schedule.Tracks {
		lines = append(lines, s.section.Render(renderTrack(track, s)))
	}

	if len(schedule.Unscheduled) > 0 {
		lines = append(lines, s.section.Render(renderUnscheduled(schedule.Unscheduled, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderTrack(track application.FormattedTrack, s styles) string {
	parts := []string{s.track.Render(track.Label)}

	for _, slot := range track.Slots {
		parts = append(parts, lipgloss.JoinHorizontal(
			lipgloss.Top,
			s.time.Render(slot.Time),
			"  ",
			slotStyle(slot, s).Render(slot.Talk),
		))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderUnscheduled(talks []domain.Talk, s styles) string {
	parts := []string{s.warning.Render(fmt.Sprintf("unscheduled: %d", len(talks)))}
	for _, talk := range talks {
		parts = append(parts, s.unschedule.Render("- "+talk.Label()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func slotStyle(slot application.TrackSlot, s styles) lipgloss.Style {
	if slot.Synthetic {
		return s.fixture
	}
	return s.talk
}
