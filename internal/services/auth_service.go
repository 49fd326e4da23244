package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/platewatch/platewatch/internal/config"
	"github.com/platewatch/platewatch/internal/dto"
	"github.com/platewatch/platewatch/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

// adminBootstrapLockID keys the advisory lock that serializes first-admin
// election across concurrent registrations.
const adminBootstrapLockID = 874611

type AuthService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{db: db, cfg: cfg}
}

// Register creates a user with a bcrypt-hashed password. The first user ever
// registered is promoted to admin; the admin count and the insert run in the
// same transaction so two concurrent first registrations cannot both win.
func (s *AuthService) Register(req *dto.RegisterRequest) (*models.User, error) {
	var existing models.User
	if err := s.db.Where("username = ?", req.Username).First(&existing).Error; err == nil {
		return nil, ErrUsernameTaken
	}
	if err := s.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:       uuid.New(),
		Username: req.Username,
		Password: string(hash),
		Email:    req.Email,
		Active:   true,
		Role:     models.RoleUser,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		// FOR UPDATE cannot guard an empty result set, so two simultaneous
		// first registrations could both count zero admins; the advisory
		// lock holds until commit and serializes the election. SQLite's
		// single-writer lock already serializes the transaction.
		if tx.Dialector.Name() == "postgres" {
			if err := tx.Exec("SELECT pg_advisory_xact_lock(?)", adminBootstrapLockID).Error; err != nil {
				return err
			}
		}

		var admins int64
		if err := tx.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&admins).Error; err != nil {
			return err
		}
		if admins == 0 {
			user.Role = models.RoleAdmin
		}
		return tx.Create(&user).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost a registration race; report which field collided.
			if e := s.db.Where("username = ?", req.Username).First(&existing).Error; e == nil {
				return nil, ErrUsernameTaken
			}
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

// Login verifies credentials and issues a signed access token. Unknown user
// and wrong password return the same error so existence is never revealed.
func (s *AuthService) Login(req *dto.LoginRequest) (string, error) {
	var user models.User
	if err := s.db.Where("username = ?", req.Username).First(&user).Error; err != nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.generateAccessToken(&user)
}

// UserByID resolves the acting user for guarded routes.
func (s *AuthService) UserByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, ErrUserNotFound
	}
	return &user, nil
}

func (s *AuthService) generateAccessToken(user *models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      user.ID.String(),
		"username": user.Username,
		"iat":      now.Unix(),
		"exp":      now.Add(s.cfg.JWTAccessExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
