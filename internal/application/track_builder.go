package application

import (
	"context"

	"github.com/paakwasi317/conference-tracker/internal/domain"
	"github.com/paakwasi317/conference-tracker/internal/ports"
)

// TrackBuilder drains a pool into tracks using a randomized greedy fill.
type TrackBuilder struct {
	random    ports.Random
	maxTracks int
}

// NewTrackBuilder returns a builder drawing from random. A positive maxTracks
// caps the number of tracks built per call.
func NewTrackBuilder(random ports.Random, maxTracks int) *TrackBuilder {
	if random == nil {
		random = ports.NewSeededRandom(0)
	}

	return &TrackBuilder{random: random, maxTracks: maxTracks}
}

// Build consumes pool and returns the tracks in order. It stops when the pool
// is empty, when a track would place no talk, or when the track cap is hit;
// whatever is left in pool could not be scheduled. Every placement removes a
// talk from pool, so the work is bounded by the pool size. ctx is checked
// before each track.
func (b *TrackBuilder) Build(ctx context.Context, pool *domain.Pool) ([]domain.Track, error) {
	tracks := make([]domain.Track, 0)
	for !pool.Empty() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if b.maxTracks > 0 && len(tracks) >= b.maxTracks {
			break
		}

		remaining := pool.Len()
		track := b.buildTrack(len(tracks)+1, pool)
		if pool.Len() == remaining {
			break
		}

		tracks = append(tracks, track)
	}

	return tracks, nil
}

func (b *TrackBuilder) buildTrack(number int, pool *domain.Pool) domain.Track {
	morning := b.fill(pool, domain.SegmentMorning, domain.MorningStart, domain.MorningEnd)
	lunch := lunchSegment()
	afternoon := b.fill(pool, domain.SegmentAfternoon, domain.AfternoonStart, domain.AfternoonEnd)

	track := domain.Track{
		Number:   number,
		Segments: []domain.Segment{morning, lunch, afternoon},
	}
	track.Segments = append(track.Segments, networkingSegment(track))

	return track
}

func (b *TrackBuilder) fill(pool *domain.Pool, kind domain.SegmentKind, start, end domain.Minute) domain.Segment {
	segment := domain.Segment{Kind: kind}

	current := start
	for current < end {
		capacity := int(end - current)
		count := pool.CountFitting(capacity)
		if count == 0 {
			break
		}

		id, _ := pool.NthFitting(capacity, b.random.IntN(count))
		talk, _ := pool.Take(id)
		segment.Sessions = append(segment.Sessions, domain.Session{Start: current, Talk: talk})
		current += domain.Minute(talk.Duration)
	}

	return segment
}

func lunchSegment() domain.Segment {
	return domain.Segment{
		Kind: domain.SegmentLunch,
		Sessions: []domain.Session{{
			Start:     domain.LunchStart,
			Talk:      domain.Talk{Name: domain.LunchName, Duration: int(domain.LunchEnd - domain.LunchStart)},
			Synthetic: true,
		}},
	}
}

// networkingSegment starts after the latest session so far, never before 16:00.
func networkingSegment(track domain.Track) domain.Segment {
	start := domain.NetworkingEarliest
	if sessions := track.Sessions(); len(sessions) > 0 {
		if end := sessions[len(sessions)-1].End(); end > start {
			start = end
		}
	}

	return domain.Segment{
		Kind: domain.SegmentNetworking,
		Sessions: []domain.Session{{
			Start:     start,
			Talk:      domain.Talk{Name: domain.NetworkingName},
			Synthetic: true,
		}},
	}
}
