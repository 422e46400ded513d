package roster

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/DoyleJ11/unite-synergy/internal/engine"
)

var ErrNoSource = errors.New("no roster source configured")

// Source says where a roster lives. DSN wins over Path when both are set.
type Source struct {
	Path  string
	DSN   string
	Table string
}

func (s Source) String() string {
	if s.DSN != "" {
		return "postgres:" + s.tableName()
	}
	return s.Path
}

func (s Source) tableName() string {
	if s.Table == "" {
		return DefaultTable
	}
	return s.Table
}

// Load reads and validates the roster from src.
func Load(ctx context.Context, src Source) ([]engine.RosterEntry, error) {
	records, err := readRecords(ctx, src)
	if err != nil {
		return nil, err
	}
	entries, err := Build(records)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src, err)
	}
	return entries, nil
}

func readRecords(ctx context.Context, src Source) ([]Record, error) {
	if src.DSN != "" {
		return LoadPostgres(ctx, src.DSN, src.tableName())
	}
	if src.Path == "" {
		return nil, ErrNoSource
	}

	f, err := os.Open(src.Path)
	if err != nil {
		return nil, fmt.Errorf("open roster: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(src.Path)) {
	case ".json":
		return DecodeJSON(f)
	case ".csv":
		return DecodeCSV(f)
	default:
		return nil, fmt.Errorf("unsupported roster file %q (want .json or .csv)", src.Path)
	}
}
