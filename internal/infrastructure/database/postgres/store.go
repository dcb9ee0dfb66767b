package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/teraseg/geoinsight/internal/infrastructure/monitoring/logging"
	"github.com/teraseg/geoinsight/pkg/errors"
)

// Result is a persisted analysis run: the full pipeline output document plus
// identification metadata.
type Result struct {
	ID        uuid.UUID       `json:"id"`
	Domain    string          `json:"domain"`
	Title     string          `json:"title"`
	Document  json.RawMessage `json:"document"`
	CreatedAt time.Time       `json:"created_at"`
}

// ResultSummary is the listing projection of a Result, without the document.
type ResultSummary struct {
	ID        uuid.UUID `json:"id"`
	Domain    string    `json:"domain"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

// ListFilter narrows and bounds a List call.
type ListFilter struct {
	Domain string
	Limit  int
}

const defaultListLimit = 50

// ResultStore persists analysis results in PostgreSQL.  Documents are stored
// as JSONB so individual runs stay queryable without a per-domain schema.
type ResultStore struct {
	db  *sql.DB
	log logging.Logger
}

// NewResultStore builds a ResultStore on an established connection.
func NewResultStore(conn *Connection, log logging.Logger) *ResultStore {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &ResultStore{db: conn.DB(), log: log.Named("resultstore")}
}

// NewResultStoreFromDB builds a ResultStore directly on a *sql.DB, used by
// tests to inject a mock.
func NewResultStoreFromDB(db *sql.DB, log logging.Logger) *ResultStore {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &ResultStore{db: db, log: log.Named("resultstore")}
}

// Save stores a result document and returns its generated id.
func (s *ResultStore) Save(ctx context.Context, domain, title string, document interface{}) (uuid.UUID, error) {
	raw, err := json.Marshal(document)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, errors.ErrCodeSerialization, "cannot encode result document")
	}

	id := uuid.New()
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO analysis_results (id, domain, title, document) VALUES ($1, $2, $3, $4)`,
		id, domain, title, raw)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, errors.ErrCodeResultSaveFailed, "cannot insert analysis result")
	}

	s.log.Info("analysis result saved",
		logging.String("id", id.String()),
		logging.String("domain", domain))
	return id, nil
}

// Get loads one result by id.
func (s *ResultStore) Get(ctx context.Context, id uuid.UUID) (*Result, error) {
	var r Result
	err := s.db.QueryRowContext(ctx,
		`SELECT id, domain, title, document, created_at FROM analysis_results WHERE id = $1`,
		id).Scan(&r.ID, &r.Domain, &r.Title, (*[]byte)(&r.Document), &r.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, errors.New(errors.ErrCodeResultNotFound, "analysis result not found").
			WithDetail(id.String())
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "cannot load analysis result")
	}
	return &r, nil
}

// List returns result summaries, newest first.  An empty filter domain
// matches all domains; a non-positive limit falls back to the default.
func (s *ResultStore) List(ctx context.Context, filter ListFilter) ([]ResultSummary, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	query := `SELECT id, domain, title, created_at FROM analysis_results`
	args := []interface{}{}
	if filter.Domain != "" {
		query += ` WHERE domain = $1`
		args = append(args, filter.Domain)
	}
	query += ` ORDER BY created_at DESC`
	if filter.Domain != "" {
		query += ` LIMIT $2`
	} else {
		query += ` LIMIT $1`
	}
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeResultListFailed, "cannot list analysis results")
	}
	defer rows.Close()

	summaries := make([]ResultSummary, 0)
	for rows.Next() {
		var sum ResultSummary
		if err := rows.Scan(&sum.ID, &sum.Domain, &sum.Title, &sum.CreatedAt); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeResultListFailed, "cannot scan analysis result row")
		}
		summaries = append(summaries, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeResultListFailed, "result listing aborted")
	}
	return summaries, nil
}

// Delete removes one result by id.
func (s *ResultStore) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM analysis_results WHERE id = $1`, id)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "cannot delete analysis result")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "cannot confirm result deletion")
	}
	if affected == 0 {
		return errors.New(errors.ErrCodeResultNotFound, "analysis result not found").
			WithDetail(id.String())
	}

	s.log.Info("analysis result deleted", logging.String("id", id.String()))
	return nil
}
