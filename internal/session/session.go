package session

import (
	"context"
	"errors"
	"sync"

	"gorm.io/gorm"

	"github.com/ydalvarez/techstore/internal/hash"
	"github.com/ydalvarez/techstore/internal/logging"
	"github.com/ydalvarez/techstore/internal/models"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
)

// Store holds the user registry and the single active session of the process.
// Logged-out is a distinct state, not a zero-valued user.
type Store struct {
	DB *gorm.DB

	mu      sync.RWMutex
	current *models.User
}

func NewStore(db *gorm.DB) *Store {
	return &Store{DB: db}
}

// Seed inserts the demo accounts when the registry is empty.
func (s *Store) Seed(ctx context.Context) error {
	var count int64
	if err := s.DB.WithContext(ctx).Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	seed := []struct {
		name, email, password, role string
	}{
		{"Admin", "admin@techstore.cu", "admin123", models.RoleAdmin},
		{"Usuario", "user@techstore.cu", "user123", models.RoleUser},
	}
	for _, u := range seed {
		pwHash, err := hash.HashPassword(u.password)
		if err != nil {
			return err
		}
		user := models.User{Name: u.name, Email: u.email, PasswordHash: pwHash, Role: u.role}
		if err := s.DB.WithContext(ctx).Create(&user).Error; err != nil {
			return err
		}
	}
	return nil
}

// Login matches the email exactly (case-sensitive) and checks the password.
// Success replaces the current session with the found user.
func (s *Store) Login(ctx context.Context, email, password string) (models.User, error) {
	l := logging.FromContext(ctx).With("svc", "session.login")

	var user models.User
	if err := s.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("login_failed", "status", 401, "reason", "unknown email")
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, err
	}
	if user.Email != email || !hash.CheckPassword(user.PasswordHash, password) {
		l.Warn("login_failed", "status", 401, "reason", "wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	s.mu.Lock()
	u := user
	s.current = &u
	s.mu.Unlock()

	l.Info("login_success", "user_id", user.ID)
	return user, nil
}

// Register creates a role=user account. It does not establish a session; the
// caller is expected to log in explicitly afterwards.
func (s *Store) Register(ctx context.Context, name, email, password string) (models.User, error) {
	l := logging.FromContext(ctx).With("svc", "session.register")

	var existing models.User
	err := s.DB.WithContext(ctx).Where("email = ?", email).First(&existing).Error
	if err == nil && existing.Email == email {
		l.Warn("register_failed", "status", 409, "reason", "email taken")
		return models.User{}, ErrEmailTaken
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, err
	}

	pwHash, err := hash.HashPassword(password)
	if err != nil {
		l.Error("register_failed", "status", 500, "reason", "cannot hash the password", "error", err)
		return models.User{}, err
	}
	user := models.User{Name: name, Email: email, PasswordHash: pwHash, Role: models.RoleUser}
	if err := s.DB.WithContext(ctx).Create(&user).Error; err != nil {
		l.Error("register_failed", "status", 500, "reason", "db_error", "error", err)
		return models.User{}, err
	}

	l.Info("register_success", "user_id", user.ID)
	return user, nil
}

// Logout clears the session unconditionally and is safe to call repeatedly.
func (s *Store) Logout() {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
}

func (s *Store) Current() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return models.User{}, false
	}
	return *s.current, true
}

func (s *Store) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.DB.WithContext(ctx).Model(&models.User{}).Count(&count).Error
	return count, err
}
