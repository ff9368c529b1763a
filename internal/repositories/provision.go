package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/divergent-flow/internal/logger"
	"github.com/sbilibin2017/divergent-flow/internal/models"
)

// ProvisionRepository creates or refreshes the local records of an external identity.
type ProvisionRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewProvisionRepository(db *sqlx.DB, txGetter TxGetter) *ProvisionRepository {
	return &ProvisionRepository{db: db, txGetter: txGetter}
}

// Provision upserts the user, its OAuth link and its profile in one transaction.
// Every statement is idempotent, so concurrent calls for the same identity converge on one user.
// The request transaction is reused when the context carries one.
func (r *ProvisionRepository) Provision(ctx context.Context, req models.ProvisionRequest) (*models.User, error) {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return r.provision(ctx, tx, req)
		}
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin provisioning transaction: %w", err)
	}

	user, err := r.provision(ctx, tx, req)
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.Log.Errorw("failed to rollback provisioning transaction", "error", rbErr)
		}
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit provisioning transaction: %w", err)
	}
	return user, nil
}

func (r *ProvisionRepository) provision(ctx context.Context, tx *sqlx.Tx, req models.ProvisionRequest) (*models.User, error) {
	if err := lockIdentity(ctx, tx, req.Email); err != nil {
		return nil, err
	}

	userID, err := linkedUserID(ctx, tx, req.Provider, req.ProviderAccountID)
	if err != nil {
		return nil, err
	}

	var user *models.User
	if userID != uuid.Nil {
		user, err = touchUser(ctx, tx, userID, req.EmailVerified)
	} else {
		// taken after the email lock on every path, so the two never deadlock
		if err := lockUsername(ctx, tx, req.Username); err != nil {
			return nil, err
		}
		user, err = upsertUserByEmail(ctx, tx, req)
		if err == nil {
			err = linkAccount(ctx, tx, user.ID, req.Provider, req.ProviderAccountID)
		}
	}
	if err != nil {
		return nil, mapError(err)
	}

	if !req.Profile.IsEmpty() {
		profile := req.Profile
		profile.UserID = user.ID

		var saved models.UserProfile
		if err := upsertProfile(ctx, tx, profile, &saved); err != nil {
			return nil, mapError(err)
		}
		user.Profile = &saved
	}

	return user, nil
}

// Advisory lock namespaces, the first key of pg_advisory_xact_lock(int, int).
const (
	emailLockSpace    = 1
	usernameLockSpace = 2
)

const (
	usernameMaxLen    = 100 // users.username is VARCHAR(100)
	usernameSuffixLen = 9   // "-" and eight hex digits
)

// lockIdentity serializes provisioning of one email until the transaction ends.
func lockIdentity(ctx context.Context, tx *sqlx.Tx, email string) error {
	if err := advisoryLock(ctx, tx, emailLockSpace, email); err != nil {
		return fmt.Errorf("lock identity: %w", err)
	}
	return nil
}

// lockUsername serializes the choice of a free username between different identities.
func lockUsername(ctx context.Context, tx *sqlx.Tx, username string) error {
	if err := advisoryLock(ctx, tx, usernameLockSpace, username); err != nil {
		return fmt.Errorf("lock username: %w", err)
	}
	return nil
}

func advisoryLock(ctx context.Context, tx *sqlx.Tx, space int, key string) error {
	const query = `SELECT pg_advisory_xact_lock($1, hashtext(lower($2)))`
	args := []any{space, key}

	_, err := tx.ExecContext(ctx, query, args...)
	logQuery(query, args, nil, err)

	return err
}

// suffixedUsername appends suffix to username, cutting the name so the result fits the column.
func suffixedUsername(username, suffix string) string {
	base := []rune(username)
	if limit := usernameMaxLen - usernameSuffixLen; len(base) > limit {
		base = base[:limit]
	}
	return string(base) + "-" + suffix
}

// linkedUserID returns the id of the user linked to the provider account, uuid.Nil when unlinked.
func linkedUserID(ctx context.Context, tx *sqlx.Tx, provider, providerAccountID string) (uuid.UUID, error) {
	const query = `
		SELECT user_id FROM oauth_accounts
		WHERE provider = $1 AND provider_account_id = $2
	`
	args := []any{provider, providerAccountID}

	var userID uuid.UUID
	err := tx.GetContext(ctx, &userID, query, args...)
	logQuery(query, args, userID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return uuid.Nil, nil
	}
	return userID, err
}

// touchUser records a login of an already linked user.
func touchUser(ctx context.Context, tx *sqlx.Tx, userID uuid.UUID, emailVerified bool) (*models.User, error) {
	query := `
		UPDATE users
		SET last_login_at = NOW(),
		    email_verified = email_verified OR $2,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + userColumns
	args := []any{userID, emailVerified}

	var user models.User
	err := tx.GetContext(ctx, &user, query, args...)
	logQuery(query, args, user.ID, err)

	if err != nil {
		return nil, err
	}
	return &user, nil
}

// upsertUserByEmail creates the user or, when the email is taken, adopts the existing row.
// A taken username gets a short random suffix. The caller holds the username lock.
func upsertUserByEmail(ctx context.Context, tx *sqlx.Tx, req models.ProvisionRequest) (*models.User, error) {
	query := `
		INSERT INTO users (id, email, username, email_verified, last_login_at, created_at, updated_at)
		VALUES (
			$1, $2,
			CASE WHEN EXISTS (SELECT 1 FROM users WHERE username = $3) THEN $4 ELSE $3 END,
			$5, NOW(), NOW(), NOW()
		)
		ON CONFLICT (email) DO UPDATE
		SET last_login_at = NOW(),
		    email_verified = users.email_verified OR EXCLUDED.email_verified,
		    updated_at = NOW()
		RETURNING ` + userColumns

	id := uuid.New()
	args := []any{id, req.Email, req.Username, suffixedUsername(req.Username, id.String()[:8]), req.EmailVerified}

	var user models.User
	err := tx.GetContext(ctx, &user, query, args...)
	logQuery(query, args, user.ID, err)

	if err != nil {
		return nil, err
	}
	return &user, nil
}

func linkAccount(ctx context.Context, tx *sqlx.Tx, userID uuid.UUID, provider, providerAccountID string) error {
	const query = `
		INSERT INTO oauth_accounts (id, user_id, provider, provider_account_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (provider, provider_account_id) DO NOTHING
	`
	args := []any{uuid.New(), userID, provider, providerAccountID}

	res, err := tx.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, args, rowsAffected, err)

	return err
}
