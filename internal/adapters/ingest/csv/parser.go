package csv

import (
	"context"
	stdcsv "encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/paakwasi317/conference-tracker/internal/domain"
	"github.com/paakwasi317/conference-tracker/internal/ports"
)

const byteOrderMark = "\ufeff"

// Parser reads one talk per row from single-column CSV content.
type Parser struct{}

var _ ports.TalkParser = Parser{}

func NewParser() Parser {
	return Parser{}
}

func (Parser) Parse(ctx context.Context, r io.Reader) (*domain.Pool, error) {
	reader := stdcsv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.ReuseRecord = true
	reader.LazyQuotes = true

	pool := domain.NewPool()
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}

		line, _ := reader.FieldPos(0)
		if len(record) != 1 {
			return nil, fmt.Errorf("%w: line %d: expected 1 field, got %d", domain.ErrInvalidInput, line, len(record))
		}

		text := record[0]
		if pool.Empty() {
			text = strings.TrimPrefix(text, byteOrderMark)
		}
		if strings.TrimSpace(text) == "" {
			continue
		}

		talk, err := domain.ParseTalk(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		pool.Add(talk)
	}

	if pool.Empty() {
		return nil, domain.ErrEmptyInput
	}

	return pool, nil
}
