package services

//go:generate mockgen -source=user.go -destination=user_mock.go -package=services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/divergent-flow/internal/logger"
	"github.com/sbilibin2017/divergent-flow/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByOAuthAccount(ctx context.Context, provider, providerAccountID string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error)
	ListOAuthAccounts(ctx context.Context, userID uuid.UUID) ([]models.OAuthAccount, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user *models.User) (*models.User, error)
	Update(ctx context.Context, update models.UserUpdate) (*models.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SaveOAuthAccount(ctx context.Context, account *models.OAuthAccount) (*models.OAuthAccount, error)
	SaveProfile(ctx context.Context, profile models.ProfileUpdate) (*models.UserProfile, error)
}

// UserService manages user accounts, their profiles and OAuth links.
type UserService struct {
	reader UserReader
	writer UserWriter
	cache  ProvisionCache
}

// NewUserService creates a new UserService. cache may be nil.
func NewUserService(reader UserReader, writer UserWriter, cache ProvisionCache) *UserService {
	return &UserService{
		reader: reader,
		writer: writer,
		cache:  cache,
	}
}

func hashPassword(password string) (*string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}
	hash := string(hashed)
	return &hash, nil
}

// CreateUser registers a user. The optional password is stored as a bcrypt hash.
func (svc *UserService) CreateUser(ctx context.Context, create models.UserCreate) (*models.User, error) {
	if strings.TrimSpace(create.Email) == "" || strings.TrimSpace(create.Username) == "" {
		return nil, ErrUserInvalid
	}

	user := &models.User{
		Email:         normalizeEmail(create.Email),
		Username:      create.Username,
		EmailVerified: create.EmailVerified,
	}
	if create.Password != nil && *create.Password != "" {
		hash, err := hashPassword(*create.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	saved, err := svc.writer.Save(ctx, user)
	if err != nil {
		logger.Log.Errorw("failed to save user", "email", create.Email, "username", create.Username, "err", err)
		return nil, err
	}
	return saved, nil
}

// GetUserByID returns the user with its profile and OAuth links, or nil when absent.
func (svc *UserService) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", id, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	user.Profile, err = svc.reader.GetProfile(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get user profile", "userID", id, "err", err)
		return nil, err
	}

	user.OAuthAccounts, err = svc.reader.ListOAuthAccounts(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to list oauth accounts", "userID", id, "err", err)
		return nil, err
	}

	return user, nil
}

// GetUserByEmail looks the email up case-insensitively.
func (svc *UserService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	email = normalizeEmail(email)
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user by email", "email", email, "err", err)
		return nil, err
	}
	return user, nil
}

func (svc *UserService) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user by username", "username", username, "err", err)
		return nil, err
	}
	return user, nil
}

// GetUserByOAuthAccount returns the user linked to an identity provider account, or nil.
func (svc *UserService) GetUserByOAuthAccount(ctx context.Context, provider, providerAccountID string) (*models.User, error) {
	user, err := svc.reader.GetByOAuthAccount(ctx, provider, providerAccountID)
	if err != nil {
		logger.Log.Errorw("failed to get user by oauth account", "provider", provider, "err", err)
		return nil, err
	}
	return user, nil
}

// UpdateUser applies a partial update. A non-empty password replaces the stored hash.
func (svc *UserService) UpdateUser(ctx context.Context, update models.UserUpdate, password *string) (*models.User, error) {
	if update.ID == uuid.Nil {
		return nil, ErrIDRequired
	}

	if update.Email != nil {
		email := normalizeEmail(*update.Email)
		update.Email = &email
	}
	if password != nil && *password != "" {
		hash, err := hashPassword(*password)
		if err != nil {
			return nil, err
		}
		update.PasswordHash = hash
	}

	user, err := svc.writer.Update(ctx, update)
	if err != nil {
		logger.Log.Errorw("failed to update user", "userID", update.ID, "err", err)
		return nil, err
	}
	return user, nil
}

// DeleteUser removes a user and forgets its cached identities.
func (svc *UserService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrIDRequired
	}

	accounts, err := svc.reader.ListOAuthAccounts(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to list oauth accounts", "userID", id, "err", err)
		return err
	}

	if err := svc.writer.Delete(ctx, id); err != nil {
		logger.Log.Errorw("failed to delete user", "userID", id, "err", err)
		return err
	}

	if svc.cache != nil {
		for _, account := range accounts {
			if err := svc.cache.Delete(ctx, account.Provider, account.ProviderAccountID); err != nil {
				logger.Log.Warnw("failed to evict provisioned identity", "provider", account.Provider, "err", err)
			}
		}
	}
	return nil
}

func (svc *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "err", err)
		return nil, err
	}
	return users, nil
}

// LinkOAuthAccount links an identity provider account to a user.
// Relinking an account the user already owns returns the existing link.
func (svc *UserService) LinkOAuthAccount(ctx context.Context, userID uuid.UUID, provider, providerAccountID string) (*models.OAuthAccount, error) {
	if userID == uuid.Nil {
		return nil, ErrUserIDRequired
	}
	if strings.TrimSpace(provider) == "" || strings.TrimSpace(providerAccountID) == "" {
		return nil, ErrAccountInvalid
	}

	account, err := svc.writer.SaveOAuthAccount(ctx, &models.OAuthAccount{
		UserID:            userID,
		Provider:          provider,
		ProviderAccountID: providerAccountID,
	})
	if err != nil {
		logger.Log.Errorw("failed to link oauth account", "userID", userID, "provider", provider, "err", err)
		return nil, err
	}
	return account, nil
}

// UpsertProfile creates or updates the profile of a user.
func (svc *UserService) UpsertProfile(ctx context.Context, profile models.ProfileUpdate) (*models.UserProfile, error) {
	if profile.UserID == uuid.Nil {
		return nil, ErrUserIDRequired
	}

	saved, err := svc.writer.SaveProfile(ctx, profile)
	if err != nil {
		logger.Log.Errorw("failed to save profile", "userID", profile.UserID, "err", err)
		return nil, err
	}
	return saved, nil
}

// normalizeEmail makes emails comparable, the users table holds them in lower case.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
