package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"debt-planner/domain"

	_ "github.com/lib/pq"  // register postgres driver
	_ "modernc.org/sqlite" // register sqlite driver
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

const planSchema = `
CREATE TABLE IF NOT EXISTS plan_snapshots (
  id TEXT PRIMARY KEY,
  created_at_ms BIGINT NOT NULL,
  input_json TEXT NOT NULL,
  comparison_json TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_plan_snapshots_created ON plan_snapshots(created_at_ms);
`

// SQLPlanRepository keeps plan snapshots in postgres or sqlite.
type SQLPlanRepository struct {
	db     *sql.DB
	driver string
}

// OpenSQLPlanRepository opens dsn with driver and creates the schema.
func OpenSQLPlanRepository(driver, dsn string) (*SQLPlanRepository, error) {
	if driver != DriverPostgres && driver != DriverSQLite {
		return nil, fmt.Errorf("unsupported plan store driver %q", driver)
	}
	if driver == DriverSQLite {
		sep := "?"
		if strings.Contains(dsn, "?") {
			sep = "&"
		}
		dsn += sep + "_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)"
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("opening plan store: %w", err)
	}
	if driver == DriverSQLite {
		db.SetMaxOpenConns(1)
	}

	repo, err := NewSQLPlanRepository(db, driver)
	if err != nil {
		db.Close()
		return nil, err
	}
	return repo, nil
}

// NewSQLPlanRepository wraps an open database and creates the schema.
func NewSQLPlanRepository(db *sql.DB, driver string) (*SQLPlanRepository, error) {
	if _, err := db.Exec(planSchema); err != nil {
		return nil, fmt.Errorf("migrating plan store: %w", err)
	}
	return &SQLPlanRepository{db: db, driver: driver}, nil
}

func (r *SQLPlanRepository) Save(ctx context.Context, plan domain.PlanSnapshot) error {
	input, err := json.Marshal(plan.Input)
	if err != nil {
		return fmt.Errorf("failed to encode plan input: %w", err)
	}
	comparison, err := json.Marshal(plan.Comparison)
	if err != nil {
		return fmt.Errorf("failed to encode plan comparison: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		r.rebind(`INSERT INTO plan_snapshots (id, created_at_ms, input_json, comparison_json) VALUES (?, ?, ?, ?)`),
		plan.ID, plan.CreatedAt.UTC().UnixMilli(), string(input), string(comparison),
	)
	if err != nil {
		return fmt.Errorf("failed to insert plan snapshot: %w", err)
	}
	return nil
}

func (r *SQLPlanRepository) List(ctx context.Context, limit int) ([]domain.PlanSnapshot, error) {
	query := `SELECT id, created_at_ms, input_json, comparison_json FROM plan_snapshots ORDER BY created_at_ms DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, r.rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list plan snapshots: %w", err)
	}
	defer rows.Close()

	out := []domain.PlanSnapshot{}
	for rows.Next() {
		var plan domain.PlanSnapshot
		var createdAtMs int64
		var inputJSON, compareJSON string
		if err := rows.Scan(&plan.ID, &createdAtMs, &inputJSON, &compareJSON); err != nil {
			return nil, fmt.Errorf("failed to scan plan snapshot: %w", err)
		}
		plan.CreatedAt = time.UnixMilli(createdAtMs).UTC()
		if err := json.Unmarshal([]byte(inputJSON), &plan.Input); err != nil {
			return nil, fmt.Errorf("failed to decode plan %s input: %w", plan.ID, err)
		}
		if err := json.Unmarshal([]byte(compareJSON), &plan.Comparison); err != nil {
			return nil, fmt.Errorf("failed to decode plan %s comparison: %w", plan.ID, err)
		}
		out = append(out, plan)
	}
	return out, rows.Err()
}

func (r *SQLPlanRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *SQLPlanRepository) Close() error {
	return r.db.Close()
}

// rebind turns ? placeholders into $N for postgres.
func (r *SQLPlanRepository) rebind(query string) string {
	if r.driver != DriverPostgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, ch := range query {
		if ch == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(ch)
	}
	return b.String()
}
