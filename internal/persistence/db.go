// Package persistence provides SQLite-based storage of river
// generation runs, so results can be inspected or re-rendered without
// regenerating.
package persistence

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/riverforge/internal/rivers"
)

// DB wraps a SQLite connection for run storage.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		created_at TEXT NOT NULL,
		mesh TEXT NOT NULL,
		cell_count INTEGER NOT NULL,
		requested INTEGER NOT NULL,
		generated INTEGER NOT NULL,
		config_json TEXT NOT NULL,
		new_lakes_json TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS run_rivers (
		run_id TEXT NOT NULL,
		idx INTEGER NOT NULL,
		source INTEGER NOT NULL,
		sink INTEGER NOT NULL,
		sink_type TEXT NOT NULL,
		length INTEGER NOT NULL,
		confluences INTEGER NOT NULL,
		tributary INTEGER NOT NULL,
		cells_json TEXT NOT NULL,
		PRIMARY KEY (run_id, idx)
	);

	CREATE TABLE IF NOT EXISTS run_logs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL,
		line TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_run_rivers_run ON run_rivers(run_id);
	CREATE INDEX IF NOT EXISTS idx_run_logs_run ON run_logs(run_id);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// RunSummary is one row of run metadata.
type RunSummary struct {
	ID        string `db:"id"`
	CreatedAt string `db:"created_at"`
	Mesh      string `db:"mesh"`
	CellCount int    `db:"cell_count"`
	Requested int    `db:"requested"`
	Generated int    `db:"generated"`
}

// SaveRun stores one generation result and returns its run id.
func (db *DB) SaveRun(meshDesc string, cellCount int, cfg rivers.Config, res *rivers.Result) (string, error) {
	runID := uuid.NewString()

	tx, err := db.conn.Beginx()
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	cfgJSON, _ := json.Marshal(cfg)
	lakesJSON, _ := json.Marshal(res.NewLakes)

	_, err = tx.Exec(`INSERT INTO runs
		(id, created_at, mesh, cell_count, requested, generated, config_json, new_lakes_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		runID, time.Now().UTC().Format(time.RFC3339), meshDesc, cellCount,
		res.Requested, res.Generated, string(cfgJSON), string(lakesJSON),
	)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	stmt, err := tx.Preparex(`INSERT INTO run_rivers
		(run_id, idx, source, sink, sink_type, length, confluences, tributary, cells_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", err
	}
	defer stmt.Close()

	for i, r := range res.Rivers {
		cellsJSON, _ := json.Marshal(r.Cells)
		tributary := 0
		if r.Tributary {
			tributary = 1
		}
		_, err := stmt.Exec(runID, i, r.Source, r.Sink, r.SinkType.String(),
			r.Length, r.Confluences, tributary, string(cellsJSON))
		if err != nil {
			return "", fmt.Errorf("insert river %d: %w", i, err)
		}
	}

	for _, line := range res.Log {
		if _, err := tx.Exec(
			"INSERT INTO run_logs (run_id, line) VALUES (?, ?)", runID, line); err != nil {
			return "", err
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}

	slog.Info("run saved", "run_id", runID, "rivers", len(res.Rivers))
	return runID, nil
}

// RecentRuns returns the most recent N run summaries.
func (db *DB) RecentRuns(limit int) ([]RunSummary, error) {
	var runs []RunSummary
	err := db.conn.Select(&runs,
		`SELECT id, created_at, mesh, cell_count, requested, generated
		 FROM runs ORDER BY created_at DESC LIMIT ?`, limit)
	return runs, err
}

// RunLogs reads back the log lines of one run in insertion order.
func (db *DB) RunLogs(runID string) ([]string, error) {
	var lines []string
	err := db.conn.Select(&lines,
		"SELECT line FROM run_logs WHERE run_id = ? ORDER BY id", runID)
	return lines, err
}

// LoadRivers reads back the rivers of one run in commit order.
func (db *DB) LoadRivers(runID string) ([]rivers.RiverPath, error) {
	rows, err := db.conn.Queryx(
		`SELECT source, sink, sink_type, confluences, tributary, cells_json
		 FROM run_rivers WHERE run_id = ? ORDER BY idx`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []rivers.RiverPath
	for rows.Next() {
		var (
			source, sink        int32
			confluences         int
			sinkType, cellsJSON string
			tributary           int
		)
		if err := rows.Scan(&source, &sink, &sinkType, &confluences, &tributary, &cellsJSON); err != nil {
			return nil, err
		}
		var cells []int32
		if err := json.Unmarshal([]byte(cellsJSON), &cells); err != nil {
			return nil, fmt.Errorf("run %s: decode cells: %w", runID, err)
		}
		st := rivers.SinkLake
		if sinkType == "ocean" {
			st = rivers.SinkOcean
		}
		out = append(out, rivers.RiverPath{
			Cells:       cells,
			Source:      source,
			Sink:        sink,
			SinkType:    st,
			Length:      len(cells),
			Confluences: confluences,
			Tributary:   tributary != 0,
		})
	}
	return out, rows.Err()
}
