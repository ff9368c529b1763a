package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/divergent-flow/internal/migrations"
	"github.com/sbilibin2017/divergent-flow/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func provisionRequest() models.ProvisionRequest {
	name := "Alice Doe"
	return models.ProvisionRequest{
		Provider:          "auth0",
		ProviderAccountID: "auth0|alice",
		Email:             "alice@example.com",
		Username:          "alice",
		EmailVerified:     true,
		Profile:           models.ProfileUpdate{DisplayName: &name},
	}
}

func TestProvisionRepository_NewIdentity(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProvisionRepository(db, nil)
	req := provisionRequest()
	userID := uuid.New()
	now := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectExec("pg_advisory_xact_lock").
		WithArgs(emailLockSpace, req.Email).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT user_id FROM oauth_accounts").
		WithArgs(req.Provider, req.ProviderAccountID).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}))
	mock.ExpectExec("pg_advisory_xact_lock").
		WithArgs(usernameLockSpace, req.Username).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("INSERT INTO users (.+) ON CONFLICT \\(email\\) DO UPDATE").
		WithArgs(sqlmock.AnyArg(), req.Email, req.Username, sqlmock.AnyArg(), true).
		WillReturnRows(sqlmock.NewRows(userRowColumns).
			AddRow(userID.String(), req.Email, req.Username, nil, true, now, now, now))
	mock.ExpectExec("INSERT INTO oauth_accounts (.+) DO NOTHING").
		WithArgs(sqlmock.AnyArg(), userID, req.Provider, req.ProviderAccountID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("INSERT INTO user_profiles").
		WithArgs(sqlmock.AnyArg(), userID, "Alice Doe", nil, nil, nil, nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "display_name", "created_at", "updated_at"}).
			AddRow(uuid.NewString(), userID.String(), "Alice Doe", now, now))
	mock.ExpectCommit()

	user, err := repo.Provision(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
	require.NotNil(t, user.Profile)
	assert.Equal(t, "Alice Doe", *user.Profile.DisplayName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProvisionRepository_LinkedIdentity(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProvisionRepository(db, nil)
	req := provisionRequest()
	req.Profile = models.ProfileUpdate{}
	userID := uuid.New()
	now := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectExec("pg_advisory_xact_lock").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT user_id FROM oauth_accounts").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(userID.String()))
	mock.ExpectQuery("UPDATE users SET last_login_at = NOW\\(\\)").
		WithArgs(userID, true).
		WillReturnRows(sqlmock.NewRows(userRowColumns).
			AddRow(userID.String(), req.Email, req.Username, nil, true, now, now, now))
	mock.ExpectCommit()

	user, err := repo.Provision(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
	assert.Nil(t, user.Profile)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProvisionRepository_RollbackOnError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProvisionRepository(db, nil)

	mock.ExpectBegin()
	mock.ExpectExec("pg_advisory_xact_lock").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT user_id FROM oauth_accounts").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}))
	mock.ExpectExec("pg_advisory_xact_lock").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	user, err := repo.Provision(context.Background(), provisionRequest())
	assert.EqualError(t, err, "disk full")
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProvisionRepository_UsesContextTransaction(t *testing.T) {
	db, mock := newMockDB(t)
	req := provisionRequest()
	req.Profile = models.ProfileUpdate{}
	userID := uuid.New()
	now := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectExec("pg_advisory_xact_lock").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT user_id FROM oauth_accounts").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(userID.String()))
	mock.ExpectQuery("UPDATE users").
		WillReturnRows(sqlmock.NewRows(userRowColumns).
			AddRow(userID.String(), req.Email, req.Username, nil, true, now, now, now))

	tx, err := db.Beginx()
	require.NoError(t, err)

	repo := NewProvisionRepository(db, func(context.Context) *sqlx.Tx { return tx })
	_, err = repo.Provision(context.Background(), req)
	require.NoError(t, err)

	// the transaction belongs to the caller and is still open
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSuffixedUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		expected string
	}{
		{"short", "alice", "alice-1a2b3c4d"},
		{"fits exactly", strings.Repeat("a", 91), strings.Repeat("a", 91) + "-1a2b3c4d"},
		{"cut to fit", strings.Repeat("a", 100), strings.Repeat("a", 91) + "-1a2b3c4d"},
		{"multibyte runes", strings.Repeat("ж", 95), strings.Repeat("ж", 91) + "-1a2b3c4d"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := suffixedUsername(tt.username, "1a2b3c4d")
			assert.Equal(t, tt.expected, got)
			assert.LessOrEqual(t, utf8.RuneCountInString(got), usernameMaxLen)
		})
	}
}

func TestProvisionRepository_LockFailure(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProvisionRepository(db, nil)
	req := provisionRequest()

	mock.ExpectBegin()
	mock.ExpectExec("pg_advisory_xact_lock").
		WithArgs(emailLockSpace, req.Email).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT user_id FROM oauth_accounts").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}))
	mock.ExpectExec("pg_advisory_xact_lock").
		WithArgs(usernameLockSpace, req.Username).
		WillReturnError(errors.New("canceling statement due to lock timeout"))
	mock.ExpectRollback()

	user, err := repo.Provision(context.Background(), req)
	assert.ErrorContains(t, err, "lock username")
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func setupPostgresContainer(t *testing.T) *sqlx.DB {
	t.Helper()
	tc.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { container.Terminate(context.Background()) })

	host, _ := container.Host(ctx)
	port, _ := container.MappedPort(ctx, "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, migrations.Up(ctx, db.DB))
	return db
}

func TestProvisionRepository_Postgres(t *testing.T) {
	db := setupPostgresContainer(t)
	ctx := context.Background()
	repo := NewProvisionRepository(db, nil)
	users := NewUserReadRepository(db)

	t.Run("concurrent first logins converge", func(t *testing.T) {
		req := provisionRequest()

		const workers = 8
		ids := make([]uuid.UUID, workers)
		errs := make([]error, workers)

		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				user, err := repo.Provision(ctx, req)
				errs[i] = err
				if user != nil {
					ids[i] = user.ID
				}
			}(i)
		}
		wg.Wait()

		for i := 0; i < workers; i++ {
			require.NoError(t, errs[i])
			assert.Equal(t, ids[0], ids[i])
		}

		var count int
		require.NoError(t, db.Get(&count, `SELECT COUNT(*) FROM users WHERE email = $1`, req.Email))
		assert.Equal(t, 1, count)

		accounts, err := users.ListOAuthAccounts(ctx, ids[0])
		require.NoError(t, err)
		assert.Len(t, accounts, 1)

		profile, err := users.GetProfile(ctx, ids[0])
		require.NoError(t, err)
		require.NotNil(t, profile)
		assert.Equal(t, "Alice Doe", *profile.DisplayName)
	})

	t.Run("second provider links to the same email", func(t *testing.T) {
		req := provisionRequest()
		req.Provider = "keycloak"
		req.ProviderAccountID = "kc-alice"

		user, err := repo.Provision(ctx, req)
		require.NoError(t, err)

		existing, err := users.GetByEmail(ctx, req.Email)
		require.NoError(t, err)
		assert.Equal(t, existing.ID, user.ID)

		accounts, err := users.ListOAuthAccounts(ctx, user.ID)
		require.NoError(t, err)
		assert.Len(t, accounts, 2)
	})

	t.Run("taken username gets a suffix", func(t *testing.T) {
		req := provisionRequest()
		req.ProviderAccountID = "auth0|other-alice"
		req.Email = "other.alice@example.com"
		req.Profile = models.ProfileUpdate{}

		user, err := repo.Provision(ctx, req)
		require.NoError(t, err)
		assert.NotEqual(t, "alice", user.Username)
		assert.Contains(t, user.Username, "alice-")
	})

	t.Run("concurrent identities sharing a username", func(t *testing.T) {
		const workers = 6
		usernames := make([]string, workers)
		errs := make([]error, workers)

		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				req := provisionRequest()
				req.Provider = "keycloak"
				req.ProviderAccountID = fmt.Sprintf("kc-bob-%d", i)
				req.Email = fmt.Sprintf("bob%d@example.com", i)
				req.Username = "bob"
				req.Profile = models.ProfileUpdate{}

				user, err := repo.Provision(ctx, req)
				errs[i] = err
				if user != nil {
					usernames[i] = user.Username
				}
			}(i)
		}
		wg.Wait()

		seen := make(map[string]bool, workers)
		for i := 0; i < workers; i++ {
			require.NoError(t, errs[i])
			assert.True(t, strings.HasPrefix(usernames[i], "bob"))
			assert.False(t, seen[usernames[i]], "duplicate username %s", usernames[i])
			seen[usernames[i]] = true
		}
		assert.True(t, seen["bob"])
	})

	t.Run("long taken username still fits", func(t *testing.T) {
		long := strings.Repeat("c", usernameMaxLen)

		first := provisionRequest()
		first.ProviderAccountID = "auth0|long-1"
		first.Email = "long1@example.com"
		first.Username = long
		first.Profile = models.ProfileUpdate{}
		user, err := repo.Provision(ctx, first)
		require.NoError(t, err)
		assert.Equal(t, long, user.Username)

		second := first
		second.ProviderAccountID = "auth0|long-2"
		second.Email = "long2@example.com"
		user, err = repo.Provision(ctx, second)
		require.NoError(t, err)
		assert.Len(t, user.Username, usernameMaxLen)
		assert.True(t, strings.HasPrefix(user.Username, strings.Repeat("c", 91)+"-"))
	})
}
