// Package store keeps a history of generation runs in SQLite.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/Lrrr908/sewer-showdown/pkg/pipeline"
	"github.com/Lrrr908/sewer-showdown/pkg/region"
	"github.com/Lrrr908/sewer-showdown/pkg/validation"
)

// ErrNotFound is returned when a run id is unknown.
var ErrNotFound = errors.New("run not found")

// Store wraps a SQLite connection holding the run history.
type Store struct {
	conn *sqlx.DB
}

// Run is one recorded generation.
type Run struct {
	ID        string `db:"id" json:"id"`
	CreatedAt int64  `db:"created_at" json:"created_at"` // unix nanoseconds
	Project   string `db:"project" json:"project"`
	Seed      int64  `db:"seed" json:"seed"`
	Width     int    `db:"width" json:"width"`
	Height    int    `db:"height" json:"height"`
	Towns     int    `db:"towns" json:"towns"`
	RoadTiles int    `db:"road_tiles" json:"road_tiles"`
	Buildings int    `db:"buildings" json:"buildings"`
	Specials  int    `db:"specials" json:"specials"`
	Warnings  int    `db:"warnings" json:"warnings"`
	Valid     bool   `db:"valid" json:"valid"`
	StatsJSON string `db:"stats_json" json:"-"`
}

// Time returns when the run was recorded.
func (r Run) Time() time.Time { return time.Unix(0, r.CreatedAt) }

// Stats decodes the stored run statistics.
func (r Run) Stats() (pipeline.Stats, error) {
	var s pipeline.Stats
	err := json.Unmarshal([]byte(r.StatsJSON), &s)
	return s, err
}

// Open opens or creates the history database at path.
func Open(path string) (*Store, error) {
	conn, err := sqlx.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	s := &Store{conn: conn}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		created_at INTEGER NOT NULL,
		project TEXT NOT NULL,
		seed INTEGER NOT NULL,
		width INTEGER NOT NULL,
		height INTEGER NOT NULL,
		towns INTEGER NOT NULL,
		road_tiles INTEGER NOT NULL,
		buildings INTEGER NOT NULL,
		specials INTEGER NOT NULL,
		warnings INTEGER NOT NULL,
		valid INTEGER NOT NULL,
		stats_json TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS run_buildings (
		run_id TEXT NOT NULL REFERENCES runs(id),
		seq INTEGER NOT NULL,
		x INTEGER NOT NULL,
		y INTEGER NOT NULL,
		kind TEXT NOT NULL,
		zone TEXT NOT NULL,
		facing TEXT NOT NULL,
		floors INTEGER NOT NULL,
		color_variant INTEGER NOT NULL,
		rotated INTEGER NOT NULL,
		PRIMARY KEY (run_id, seq)
	);

	CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);
	`
	_, err := s.conn.Exec(schema)
	return err
}

// Record stores a finished run and its building list, returning the new run
// id.
func (s *Store) Record(project string, seed int64, rg *region.Region, stats pipeline.Stats, report *validation.Report) (string, error) {
	statsJSON, err := json.Marshal(stats)
	if err != nil {
		return "", fmt.Errorf("encode stats: %w", err)
	}
	run := Run{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UnixNano(),
		Project:   project,
		Seed:      seed,
		Width:     rg.Width(),
		Height:    rg.Height(),
		Towns:     len(rg.Towns),
		RoadTiles: len(rg.RoadTiles),
		Buildings: len(rg.Buildings),
		Specials:  len(rg.Placements),
		Warnings:  len(report.Warnings),
		Valid:     report.Valid,
		StatsJSON: string(statsJSON),
	}

	tx, err := s.conn.Beginx()
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	if _, err := tx.NamedExec(`INSERT INTO runs
		(id, created_at, project, seed, width, height, towns, road_tiles,
		 buildings, specials, warnings, valid, stats_json)
		VALUES (:id, :created_at, :project, :seed, :width, :height, :towns, :road_tiles,
		 :buildings, :specials, :warnings, :valid, :stats_json)`, run); err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	stmt, err := tx.Preparex(`INSERT INTO run_buildings
		(run_id, seq, x, y, kind, zone, facing, floors, color_variant, rotated)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", err
	}
	defer stmt.Close()
	for i, b := range rg.Buildings {
		if _, err := stmt.Exec(run.ID, i, b.X, b.Y, b.Kind, b.Zone, b.Facing, b.Floors, b.ColorVariant, b.Rotated); err != nil {
			return "", fmt.Errorf("insert building %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	slog.Info("run recorded", "id", run.ID, "buildings", run.Buildings)
	return run.ID, nil
}

// Runs returns the most recent runs, newest first.
func (s *Store) Runs(limit int) ([]Run, error) {
	var runs []Run
	err := s.conn.Select(&runs, "SELECT * FROM runs ORDER BY created_at DESC, id LIMIT ?", limit)
	return runs, err
}

// Run returns a single run by id.
func (s *Store) Run(id string) (Run, error) {
	var run Run
	err := s.conn.Get(&run, "SELECT * FROM runs WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return run, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return run, err
}

// Buildings returns the building list of a run in placement order.
func (s *Store) Buildings(id string) ([]region.Building, error) {
	var rows []struct {
		X            int    `db:"x"`
		Y            int    `db:"y"`
		Kind         string `db:"kind"`
		Zone         string `db:"zone"`
		Facing       string `db:"facing"`
		Floors       int    `db:"floors"`
		ColorVariant int    `db:"color_variant"`
		Rotated      bool   `db:"rotated"`
	}
	err := s.conn.Select(&rows, `SELECT x, y, kind, zone, facing, floors, color_variant, rotated
		FROM run_buildings WHERE run_id = ? ORDER BY seq`, id)
	if err != nil {
		return nil, err
	}
	out := make([]region.Building, len(rows))
	for i, r := range rows {
		out[i] = region.Building{
			X: r.X, Y: r.Y, Kind: r.Kind, Zone: r.Zone, Facing: r.Facing,
			Floors: r.Floors, ColorVariant: r.ColorVariant, Rotated: r.Rotated,
		}
	}
	return out, nil
}
