package roster

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Querier is the subset of *pgx.Conn and *pgxpool.Pool the loader needs.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// DefaultTable holds one row per roster entry.
const DefaultTable = "roster"

// QueryPostgres reads roster records from table, ordered by name. The table needs the
// columns name, role, preferred_lane, win_rate, feedback_boosted_win_rate and tier.
func QueryPostgres(ctx context.Context, db Querier, table string) ([]Record, error) {
	if table == "" {
		table = DefaultTable
	}
	sql := fmt.Sprintf(
		`SELECT name, coalesce(role, ''), coalesce(preferred_lane, ''), win_rate, feedback_boosted_win_rate, coalesce(tier, '')
		FROM %s ORDER BY name`,
		pgx.Identifier{table}.Sanitize(),
	)

	rows, err := db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("query roster: %w", err)
	}

	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Record, error) {
		var r Record
		err := row.Scan(&r.Name, &r.Role, &r.PreferredLane, &r.WinRate, &r.FeedbackBoostedWinRate, &r.Tier)
		return r, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan roster: %w", err)
	}
	return records, nil
}

// LoadPostgres connects to dsn, reads the roster table and closes the connection.
func LoadPostgres(ctx context.Context, dsn, table string) ([]Record, error) {
	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect roster db: %w", err)
	}
	defer conn.Close(ctx)

	return QueryPostgres(ctx, conn, table)
}
