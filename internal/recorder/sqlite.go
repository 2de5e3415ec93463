package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"TrendCast/internal/model"
)

// SQLiteRecorder persists run history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so ad-hoc sqlite3 queries don't block the writer.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp      INTEGER NOT NULL,
			run_id         TEXT NOT NULL,
			mode           TEXT,
			provider       TEXT,
			duration_ms    INTEGER,
			tickers_total  INTEGER,
			tickers_failed INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_ts ON runs(timestamp)`,

		`CREATE TABLE IF NOT EXISTS fits (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp    INTEGER NOT NULL,
			run_id       TEXT NOT NULL,
			ticker       TEXT NOT NULL,
			observations INTEGER,
			slope        REAL,
			intercept    REAL,
			r2           REAL,
			rmse         REAL,
			last_close   REAL,
			horizon_days INTEGER,
			change_pct   REAL,
			trend        TEXT,
			confidence   TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_fits_ticker ON fits(ticker, timestamp)`,

		`CREATE TABLE IF NOT EXISTS predictions (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp INTEGER NOT NULL,
			run_id    TEXT NOT NULL,
			ticker    TEXT NOT NULL,
			idx       INTEGER NOT NULL,
			price     REAL NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_predictions_run ON predictions(run_id, ticker)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordRun(rec *RunRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO runs
		(timestamp, run_id, mode, provider, duration_ms, tickers_total, tickers_failed)
		VALUES (?,?,?,?,?,?,?)`,
		rec.StartedAt.Unix(), rec.RunID, rec.Mode, rec.Provider,
		rec.Duration.Milliseconds(), rec.TickersTotal, rec.TickersFailed,
	)
	return err
}

func (r *SQLiteRecorder) RecordFit(rec *FitRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO fits
		(timestamp, run_id, ticker, observations, slope, intercept, r2, rmse,
		 last_close, horizon_days, change_pct, trend, confidence)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), rec.RunID, rec.Ticker, rec.Observations,
		rec.Slope, rec.Intercept, rec.R2, rec.RMSE,
		rec.LastClose, rec.HorizonDays, rec.ChangePct, rec.Trend, rec.Confidence,
	)
	return err
}

func (r *SQLiteRecorder) RecordPredictions(runID, ticker string, points []model.PredictedPoint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	stmt, err := tx.Prepare(`INSERT INTO predictions (timestamp, run_id, ticker, idx, price) VALUES (?,?,?,?,?)`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	now := time.Now().Unix()
	for _, p := range points {
		if _, err := stmt.Exec(now, runID, ticker, p.Index, p.Price); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
