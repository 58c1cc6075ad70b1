// Package obslog keeps the damage observations made against each opposing Pokemon so that
// inference can be replayed across runs.
package obslog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nathanieltooley/porygon/infer"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

var ErrNoObservations = errors.New("no observations recorded")

// Entry is one recorded hit. Opponent names the Pokemon being inferred, e.g. "peer/mew".
type Entry struct {
	ID         uuid.UUID
	Opponent   string
	Move       int
	MoveName   string
	Damage     uint
	Crit       bool
	DefenderHP uint
	Recorded   time.Time
}

func (e Entry) Observation() infer.Observation {
	return infer.Observation{Move: e.Move, Crit: e.Crit, DefenderHP: e.DefenderHP, Damage: e.Damage}
}

type Log struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS observations (
	id TEXT PRIMARY KEY,
	opponent TEXT NOT NULL,
	move INTEGER NOT NULL,
	move_name TEXT NOT NULL,
	damage INTEGER NOT NULL,
	crit INTEGER NOT NULL DEFAULT 0,
	defender_hp INTEGER NOT NULL DEFAULT 0,
	recorded INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS observations_opponent ON observations (opponent, recorded);
`

// Open opens or creates the database at path. ":memory:" keeps everything in memory.
func Open(ctx context.Context, path string) (*Log, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening observation db: %w", err)
	}
	// every connection to :memory: is its own database
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating observation table: %w", err)
	}

	log.Debug().Str("location", "obslog").Str("path", path).Msg("Opened observation log")
	return &Log{db: db}, nil
}

func (l *Log) Close() error {
	return l.db.Close()
}

// Add records e, filling in ID and Recorded when unset, and returns the stored entry.
func (l *Log) Add(ctx context.Context, e Entry) (Entry, error) {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.Recorded.IsZero() {
		e.Recorded = time.Now()
	}

	_, err := l.db.ExecContext(ctx, `
		INSERT INTO observations (id, opponent, move, move_name, damage, crit, defender_hp, recorded)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID.String(), e.Opponent, e.Move, e.MoveName, e.Damage, e.Crit, e.DefenderHP, e.Recorded.UnixNano())
	if err != nil {
		return Entry{}, fmt.Errorf("recording observation: %w", err)
	}

	log.Debug().Str("location", "obslog").Str("opponent", e.Opponent).Uint("damage", e.Damage).Msg("Recorded observation")
	return e, nil
}

// List returns opponent's entries oldest first, or ErrNoObservations.
func (l *Log) List(ctx context.Context, opponent string) ([]Entry, error) {
	rows, err := l.db.QueryContext(ctx, `
		SELECT id, opponent, move, move_name, damage, crit, defender_hp, recorded
		FROM observations WHERE opponent = ? ORDER BY recorded, id`, opponent)
	if err != nil {
		return nil, fmt.Errorf("listing observations: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var id string
		var recorded int64
		if err := rows.Scan(&id, &e.Opponent, &e.Move, &e.MoveName, &e.Damage, &e.Crit, &e.DefenderHP, &recorded); err != nil {
			return nil, fmt.Errorf("reading observation: %w", err)
		}
		if e.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("observation id %q: %w", id, err)
		}
		e.Recorded = time.Unix(0, recorded)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing observations: %w", err)
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("%w for %s", ErrNoObservations, opponent)
	}
	return entries, nil
}

// Observations is List converted for infer.FilterAll.
func (l *Log) Observations(ctx context.Context, opponent string) ([]infer.Observation, error) {
	entries, err := l.List(ctx, opponent)
	if err != nil {
		return nil, err
	}
	observations := make([]infer.Observation, 0, len(entries))
	for _, e := range entries {
		observations = append(observations, e.Observation())
	}
	return observations, nil
}

// Clear forgets every entry for opponent and reports how many were removed.
func (l *Log) Clear(ctx context.Context, opponent string) (int64, error) {
	result, err := l.db.ExecContext(ctx, `DELETE FROM observations WHERE opponent = ?`, opponent)
	if err != nil {
		return 0, fmt.Errorf("clearing observations: %w", err)
	}
	return result.RowsAffected()
}

// Opponents lists every opponent with at least one entry.
func (l *Log) Opponents(ctx context.Context) ([]string, error) {
	rows, err := l.db.QueryContext(ctx, `SELECT DISTINCT opponent FROM observations ORDER BY opponent`)
	if err != nil {
		return nil, fmt.Errorf("listing opponents: %w", err)
	}
	defer rows.Close()

	var opponents []string
	for rows.Next() {
		var opponent string
		if err := rows.Scan(&opponent); err != nil {
			return nil, err
		}
		opponents = append(opponents, opponent)
	}
	return opponents, rows.Err()
}
