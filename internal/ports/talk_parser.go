package ports

import (
	"context"
	"io"

	"github.com/paakwasi317/conference-tracker/internal/domain"
)

type TalkParser interface {
	Parse(ctx context.Context, r io.Reader) (*domain.Pool, error)
}
