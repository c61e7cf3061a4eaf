package application

import (
	"context"
	"fmt"
	"io"

	"github.com/paakwasi317/conference-tracker/internal/domain"
	"github.com/paakwasi317/conference-tracker/internal/ports"
)

type ScheduleOptions struct {
	// Seed makes track building reproducible. Zero picks a fresh seed per call.
	Seed      uint64
	MaxTracks int
}

type SchedulePhase int

const (
	PhaseParsing SchedulePhase = iota
	PhaseBuilding
	PhaseDone
)

// ScheduleProgress describes how far a Schedule call has got. Counts are
// filled in as they become known.
type ScheduleProgress struct {
	Phase       SchedulePhase
	Talks       int
	Tracks      int
	Unscheduled int
}

// ScheduleService parses talk lists and builds tracks. Each call gets its own
// pool and random source, so one service can serve concurrent callers.
type ScheduleService struct {
	parser ports.TalkParser
	opts   ScheduleOptions
}

func NewScheduleService(parser ports.TalkParser, opts ScheduleOptions) *ScheduleService {
	return &ScheduleService{parser: parser, opts: opts}
}

func (s *ScheduleService) Parse(ctx context.Context, r io.Reader) (*domain.Pool, error) {
	return s.parser.Parse(ctx, r)
}

// BuildTracks drains pool. Talks left in pool afterwards could not be placed.
func (s *ScheduleService) BuildTracks(ctx context.Context, pool *domain.Pool) ([]domain.Track, error) {
	return NewTrackBuilder(ports.NewSeededRandom(s.opts.Seed), s.opts.MaxTracks).Build(ctx, pool)
}

func (s *ScheduleService) Schedule(ctx context.Context, r io.Reader) (Schedule, error) {
	return s.ScheduleWithProgress(ctx, r, nil)
}

// ScheduleWithProgress is Schedule calling report once the talks are parsed
// and once the tracks are built. report may be nil.
func (s *ScheduleService) ScheduleWithProgress(ctx context.Context, r io.Reader, report func(ScheduleProgress)) (Schedule, error) {
	if report == nil {
		report = func(ScheduleProgress) {}
	}

	pool, err := s.Parse(ctx, r)
	if err != nil {
		return Schedule{}, fmt.Errorf("parse talks: %w", err)
	}

	talks := pool.Len()
	report(ScheduleProgress{Phase: PhaseBuilding, Talks: talks})

	tracks, err := s.BuildTracks(ctx, pool)
	if err != nil {
		return Schedule{}, fmt.Errorf("build tracks: %w", err)
	}

	report(ScheduleProgress{
		Phase:       PhaseDone,
		Talks:       talks,
		Tracks:      len(tracks),
		Unscheduled: pool.Len(),
	})

	return Schedule{
		Tracks:      FormatTracks(tracks),
		Unscheduled: pool.Talks(),
	}, nil
}
