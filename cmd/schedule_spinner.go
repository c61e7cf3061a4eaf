package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/paakwasi317/conference-tracker/internal/application"
)

type scheduleProgressMsg application.ScheduleProgress

type scheduleDoneMsg struct {
	schedule application.Schedule
	err      error
}

// scheduleSpinnerModel shows which phase a schedule run is in and, once done,
// how the talks were split into tracks.
type scheduleSpinnerModel struct {
	spinner  spinner.Model
	progress application.ScheduleProgress
	run      tea.Cmd
	schedule application.Schedule
	err      error
	done     bool
}

func newScheduleSpinnerModel(run tea.Cmd) scheduleSpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return scheduleSpinnerModel{spinner: s, run: run}
}

func (m scheduleSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.run)
}

func (m scheduleSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case scheduleProgressMsg:
		m.progress = application.ScheduleProgress(msg)
		return m, nil
	case scheduleDoneMsg:
		m.done = true
		m.schedule = msg.schedule
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m scheduleSpinnerModel) View() string {
	if m.done {
		if m.err != nil || m.progress.Phase != application.PhaseDone {
			return ""
		}
		return progressLabel(m.progress) + "\n"
	}

	return fmt.Sprintf("%s %s", m.spinner.View(), progressLabel(m.progress))
}

func progressLabel(p application.ScheduleProgress) string {
	switch p.Phase {
	case application.PhaseBuilding:
		return fmt.Sprintf("Building tracks from %s...", plural(p.Talks, "talk"))
	case application.PhaseDone:
		label := fmt.Sprintf("Scheduled %s into %s", plural(p.Talks-p.Unscheduled, "talk"), plural(p.Tracks, "track"))
		if p.Unscheduled > 0 {
			label += fmt.Sprintf(", %d unscheduled", p.Unscheduled)
		}
		return label
	default:
		return "Parsing talks..."
	}
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// runScheduleSpinner runs schedule on a spinner program writing to output. The
// progress callback handed to schedule feeds the spinner label.
func runScheduleSpinner(
	ctx context.Context,
	output io.Writer,
	schedule func(context.Context, func(application.ScheduleProgress)) (application.Schedule, error),
) (application.Schedule, error) {
	var p *tea.Program
	runCmd := func() tea.Msg {
		result, err := schedule(ctx, func(progress application.ScheduleProgress) {
			p.Send(scheduleProgressMsg(progress))
		})
		return scheduleDoneMsg{schedule: result, err: err}
	}

	p = tea.NewProgram(
		newScheduleSpinnerModel(runCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return application.Schedule{}, err
	}

	result, ok := finalModel.(scheduleSpinnerModel)
	if !ok {
		return application.Schedule{}, fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.schedule, result.err
}
