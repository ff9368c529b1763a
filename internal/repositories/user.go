package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/divergent-flow/internal/models"
)

const (
	userColumns         = `id, email, username, password_hash, email_verified, last_login_at, created_at, updated_at`
	profileColumns      = `id, user_id, display_name, first_name, last_name, avatar_url, bio, timezone, created_at, updated_at`
	oauthAccountColumns = `id, user_id, provider, provider_account_id, created_at, updated_at`
)

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// getOne runs a single-row user query, returning nil when nothing matches.
func (r *UserReadRepository) getOne(ctx context.Context, query string, args ...any) (*models.User, error) {
	var user models.User
	err := r.db.GetContext(ctx, &user, query, args...)
	logQuery(query, args, user.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
}

// GetByOAuthAccount returns the user linked to the given identity provider account.
func (r *UserReadRepository) GetByOAuthAccount(ctx context.Context, provider, providerAccountID string) (*models.User, error) {
	const query = `
		SELECT u.id, u.email, u.username, u.password_hash, u.email_verified, u.last_login_at, u.created_at, u.updated_at
		FROM users u
		JOIN oauth_accounts a ON a.user_id = u.id
		WHERE a.provider = $1 AND a.provider_account_id = $2
	`
	return r.getOne(ctx, query, provider, providerAccountID)
}

// List returns all users ordered by creation time.
func (r *UserReadRepository) List(ctx context.Context) ([]models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at`

	users := []models.User{}
	err := r.db.SelectContext(ctx, &users, query)
	logQuery(query, nil, len(users), err)

	if err != nil {
		return nil, err
	}
	return users, nil
}

// GetProfile returns the profile of a user, or nil when the user has none.
func (r *UserReadRepository) GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM user_profiles WHERE user_id = $1`

	var profile models.UserProfile
	err := r.db.GetContext(ctx, &profile, query, userID)
	logQuery(query, []any{userID}, profile.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// ListOAuthAccounts returns the identity provider accounts linked to a user.
func (r *UserReadRepository) ListOAuthAccounts(ctx context.Context, userID uuid.UUID) ([]models.OAuthAccount, error) {
	query := `SELECT ` + oauthAccountColumns + ` FROM oauth_accounts WHERE user_id = $1 ORDER BY created_at`

	accounts := []models.OAuthAccount{}
	err := r.db.SelectContext(ctx, &accounts, query, userID)
	logQuery(query, []any{userID}, len(accounts), err)

	if err != nil {
		return nil, err
	}
	return accounts, nil
}

type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserWriteRepository(db *sqlx.DB, txGetter TxGetter) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a user. Duplicate email or username yields models.ErrAlreadyExists.
func (r *UserWriteRepository) Save(ctx context.Context, user *models.User) (*models.User, error) {
	query := `
		INSERT INTO users (id, email, username, password_hash, email_verified, last_login_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING ` + userColumns

	id := user.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	args := []any{id, user.Email, user.Username, user.PasswordHash, user.EmailVerified, user.LastLoginAt}

	var saved models.User
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &saved, query, args...)
	// password hash is never logged
	logQuery(query, []any{id, user.Email, user.Username, user.EmailVerified}, saved.ID, err)

	if err != nil {
		return nil, mapError(err)
	}
	return &saved, nil
}

// Update applies a partial update and returns the new state of the user.
func (r *UserWriteRepository) Update(ctx context.Context, update models.UserUpdate) (*models.User, error) {
	query := `
		UPDATE users
		SET email = COALESCE($2, email),
		    username = COALESCE($3, username),
		    password_hash = COALESCE($4, password_hash),
		    email_verified = COALESCE($5, email_verified),
		    last_login_at = COALESCE($6, last_login_at),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + userColumns

	args := []any{update.ID, update.Email, update.Username, update.PasswordHash, update.EmailVerified, update.LastLoginAt}

	var updated models.User
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &updated, query, args...)
	logQuery(query, []any{update.ID, update.Email, update.Username, update.EmailVerified, update.LastLoginAt}, updated.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, mapError(err)
	}
	return &updated, nil
}

// Delete removes a user along with its profile, OAuth links and captures.
func (r *UserWriteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM users WHERE id = $1`
	args := []any{id}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, args, rowsAffected, err)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

// SaveOAuthAccount links an identity provider account to a user.
// Linking an already linked pair is a no-op that returns the existing link.
// ErrAlreadyExists is returned when the account belongs to another user, ErrNotFound when the user is absent.
func (r *UserWriteRepository) SaveOAuthAccount(ctx context.Context, account *models.OAuthAccount) (*models.OAuthAccount, error) {
	query := `
		INSERT INTO oauth_accounts (id, user_id, provider, provider_account_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (provider, provider_account_id) DO UPDATE
		SET updated_at = NOW()
		WHERE oauth_accounts.user_id = EXCLUDED.user_id
		RETURNING ` + oauthAccountColumns

	args := []any{uuid.New(), account.UserID, account.Provider, account.ProviderAccountID}

	var saved models.OAuthAccount
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &saved, query, args...)
	logQuery(query, args, saved.ID, err)

	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, models.ErrAlreadyExists
	case isPgError(err, foreignKeyViolation):
		return nil, models.ErrNotFound
	case err != nil:
		return nil, mapError(err)
	}
	return &saved, nil
}

// SaveProfile inserts or updates the profile of a user. Nil fields keep their stored value.
func (r *UserWriteRepository) SaveProfile(ctx context.Context, profile models.ProfileUpdate) (*models.UserProfile, error) {
	var saved models.UserProfile
	err := upsertProfile(ctx, executor(ctx, r.db, r.txGetter), profile, &saved)
	if err != nil {
		return nil, mapError(err)
	}
	return &saved, nil
}

func upsertProfile(ctx context.Context, ext sqlx.ExtContext, profile models.ProfileUpdate, dest *models.UserProfile) error {
	query := `
		INSERT INTO user_profiles (id, user_id, display_name, first_name, last_name, avatar_url, bio, timezone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE
		SET display_name = COALESCE(EXCLUDED.display_name, user_profiles.display_name),
		    first_name = COALESCE(EXCLUDED.first_name, user_profiles.first_name),
		    last_name = COALESCE(EXCLUDED.last_name, user_profiles.last_name),
		    avatar_url = COALESCE(EXCLUDED.avatar_url, user_profiles.avatar_url),
		    bio = COALESCE(EXCLUDED.bio, user_profiles.bio),
		    timezone = COALESCE(EXCLUDED.timezone, user_profiles.timezone),
		    updated_at = NOW()
		RETURNING ` + profileColumns

	args := []any{
		uuid.New(), profile.UserID,
		profile.DisplayName, profile.FirstName, profile.LastName,
		profile.AvatarURL, profile.Bio, profile.Timezone,
	}

	err := sqlx.GetContext(ctx, ext, dest, query, args...)
	logQuery(query, args, dest.ID, err)
	return err
}
