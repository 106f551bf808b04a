package repositories

import (
	"context"
	"time"

	"github.com/credsink/credsink/internal/database"
	"github.com/credsink/credsink/internal/models"
	"github.com/google/uuid"
)

// LoginAttemptRepository owns the durable collection of captured login
// attempts. It is the only component that touches the login_attempts table,
// and its read path never selects the password columns.
type LoginAttemptRepository struct {
	db *database.DB
}

// NewLoginAttemptRepository creates a new LoginAttemptRepository
func NewLoginAttemptRepository(db *database.DB) *LoginAttemptRepository {
	return &LoginAttemptRepository{db: db}
}

// Insert persists a captured attempt. The store assigns the ID and, when the
// caller left it zero, the timestamp. Email, password and hashed password
// must all be non-empty; anything else is rejected before touching the
// database.
func (r *LoginAttemptRepository) Insert(ctx context.Context, attempt *models.LoginAttempt) (*models.LoginAttempt, error) {
	if attempt.Email == "" || attempt.Password == "" || attempt.HashedPassword == "" {
		return nil, models.ErrValidation
	}

	stored := *attempt
	stored.ID = uuid.NewString()
	if stored.Timestamp.IsZero() {
		stored.Timestamp = time.Now()
	}

	query := `
		INSERT INTO login_attempts (id, email, password, hashed_password, attempt_time, user_agent, ip_address, success)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Pool.Exec(ctx, query,
		stored.ID,
		stored.Email,
		stored.Password,
		stored.HashedPassword,
		stored.Timestamp,
		stored.UserAgent,
		stored.IP,
		stored.Success,
	)
	if err != nil {
		return nil, database.MapPostgresError(err)
	}

	return &stored, nil
}

// List returns up to limit attempts, most recent first. The projection
// excludes password and hashed_password by contract: the secret columns are
// not part of the query, so they cannot leave this operation.
func (r *LoginAttemptRepository) List(ctx context.Context, limit int) ([]*models.LoginAttempt, error) {
	query := `
		SELECT id, email, attempt_time, user_agent, ip_address, success
		FROM login_attempts
		ORDER BY attempt_time DESC
		LIMIT $1
	`

	rows, err := r.db.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, database.MapPostgresError(err)
	}
	defer rows.Close()

	attempts := make([]*models.LoginAttempt, 0)
	for rows.Next() {
		var a models.LoginAttempt
		if err := rows.Scan(&a.ID, &a.Email, &a.Timestamp, &a.UserAgent, &a.IP, &a.Success); err != nil {
			return nil, database.MapPostgresError(err)
		}
		attempts = append(attempts, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, database.MapPostgresError(err)
	}

	return attempts, nil
}

// Purge unconditionally removes all attempts and reports how many rows were
// deleted. Purging an empty table succeeds with a zero count.
func (r *LoginAttemptRepository) Purge(ctx context.Context) (int64, error) {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM login_attempts`)
	if err != nil {
		return 0, database.MapPostgresError(err)
	}
	return tag.RowsAffected(), nil
}

// DeleteOlderThan removes attempts captured before the cutoff. Used by the
// background retention task, never by the request path.
func (r *LoginAttemptRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM login_attempts WHERE attempt_time < $1`, cutoff)
	if err != nil {
		return 0, database.MapPostgresError(err)
	}
	return tag.RowsAffected(), nil
}

// Count returns the total number of stored attempts.
func (r *LoginAttemptRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM login_attempts`).Scan(&count)
	if err != nil {
		return 0, database.MapPostgresError(err)
	}
	return count, nil
}
