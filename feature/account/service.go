package account

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"furnishing-helper/core/middleware/auth"
	"furnishing-helper/core/server"
	"furnishing-helper/feature/account/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	// ErrInvalidCredentials covers both unknown users and wrong passwords.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrUsernameTaken is returned when registering an existing username.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrInvalidInput is returned for empty or oversized credentials.
	ErrInvalidInput = errors.New("username and password are required")
)

const (
	maxUsernameLen = 64
	// bcrypt ignores input beyond 72 bytes.
	maxPasswordLen = 72
)

// Service registers accounts and issues session tokens.
type Service struct {
	db     *gorm.DB
	secret string
	ttl    time.Duration
	logger *zap.Logger
}

// NewService creates an account service.
func NewService(db *gorm.DB, cfg server.Config, logger *zap.Logger) *Service {
	return &Service{db: db, secret: cfg.JWTSecret, ttl: cfg.TokenTTL(), logger: logger}
}

// AutoMigrate creates or updates the accounts table.
func (s *Service) AutoMigrate(ctx context.Context) error {
	return s.db.WithContext(ctx).AutoMigrate(&models.Account{})
}

// Register creates an account with a bcrypt password hash.
func (s *Service) Register(ctx context.Context, creds models.Credentials) (*models.Account, error) {
	username := strings.TrimSpace(creds.Username)
	if username == "" || creds.Password == "" || len(username) > maxUsernameLen || len(creds.Password) > maxPasswordLen {
		return nil, ErrInvalidInput
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Account{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if count > 0 {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	acc := &models.Account{ID: uuid.NewString(), Username: username, PasswordHash: string(hash)}
	if err := s.db.WithContext(ctx).Create(acc).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	return acc, nil
}

// Login verifies credentials and returns a signed session token.
func (s *Service) Login(ctx context.Context, creds models.Credentials) (*models.Session, error) {
	var acc models.Account
	err := s.db.WithContext(ctx).Where("username = ?", strings.TrimSpace(creds.Username)).First(&acc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find account: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(creds.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := auth.IssueToken(s.secret, acc.ID, acc.Username, s.ttl)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &models.Session{Token: token, UserID: acc.ID, ExpiresAt: time.Now().Add(s.ttl)}, nil
}
