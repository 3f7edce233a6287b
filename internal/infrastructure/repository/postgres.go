package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/eridiumdev/clickpay-web/config"
	"github.com/eridiumdev/clickpay-web/internal/entity"
	"github.com/eridiumdev/clickpay-web/pkg/logger"
)

type PostgresAttemptRepo struct {
	cfg config.PostgreSQL
	db  *sql.DB
	log *logger.Logger
}

func OpenPostgres(ctx context.Context, cfg config.PostgreSQL) (*sql.DB, error) {
	if cfg.ConnString == "" {
		return nil, fmt.Errorf("postgres DSN is not configured")
	}

	db, err := sql.Open("pgx", cfg.ConnString)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.PingTimeout)
	defer cancel()

	err = db.PingContext(pingCtx)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func NewPostgresAttemptRepo(ctx context.Context, cfg config.PostgreSQL, log *logger.Logger) (*PostgresAttemptRepo, error) {
	err := Migrate(ctx, cfg)
	if err != nil {
		return nil, log.Wrap(err, "migrate")
	}

	db, err := OpenPostgres(ctx, cfg)
	if err != nil {
		return nil, log.Wrap(err, "open")
	}

	return &PostgresAttemptRepo{
		cfg: cfg,
		db:  db,
		log: log,
	}, nil
}

func (r *PostgresAttemptRepo) Ping(ctx context.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx, r.cfg.PingTimeout)
	defer cancel()

	err := r.db.PingContext(pingCtx)
	if err != nil {
		return r.log.Wrap(err, "ping")
	}
	return nil
}

func (r *PostgresAttemptRepo) SaveAttempts(ctx context.Context, attempts []*entity.RedirectAttempt) error {
	if len(attempts) == 0 {
		return nil
	}

	query, args := buildInsertAttempts(attempts)

	_, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return r.log.Wrapf(err, "insert %d attempts", len(attempts))
	}
	return nil
}

func buildInsertAttempts(attempts []*entity.RedirectAttempt) (string, []any) {
	var sb strings.Builder
	args := make([]any, 0, len(attempts)*6)

	sb.WriteString("INSERT INTO redirect_attempts (slug, ip, user_agent, outcome, reason, created_at) VALUES ")
	for i, a := range attempts {
		if i > 0 {
			sb.WriteString(", ")
		}
		n := i * 6
		fmt.Fprintf(&sb, "($%d, $%d, $%d, $%d, $%d, $%d)", n+1, n+2, n+3, n+4, n+5, n+6)
		args = append(args, a.Slug, a.IP, a.UserAgent, string(a.Outcome), a.Reason, a.CreatedAt)
	}

	return sb.String(), args
}

func (r *PostgresAttemptRepo) ListAttempts(ctx context.Context, limit int) ([]*entity.RedirectAttempt, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, slug, ip, user_agent, outcome, reason, created_at
		FROM redirect_attempts
		ORDER BY id DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, r.log.Wrap(err, "query attempts")
	}
	defer rows.Close()

	var attempts []*entity.RedirectAttempt
	for rows.Next() {
		var a entity.RedirectAttempt
		var outcome string
		err = rows.Scan(&a.ID, &a.Slug, &a.IP, &a.UserAgent, &outcome, &a.Reason, &a.CreatedAt)
		if err != nil {
			return nil, r.log.Wrap(err, "scan attempt")
		}
		a.Outcome = entity.RedirectOutcome(outcome)
		attempts = append(attempts, &a)
	}

	return attempts, rows.Err()
}

func (r *PostgresAttemptRepo) Close(ctx context.Context) error {
	return r.db.Close()
}
