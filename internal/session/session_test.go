package session

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ydalvarez/techstore/internal/models"
)

func newTestStore(t *testing.T) *Store {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	s := NewStore(db)
	require.NoError(t, s.Seed(context.Background()))
	return s
}

func TestLoginWrongPassword(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Login(ctx, "user@techstore.cu", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, ok := s.Current()
	require.False(t, ok, "failed login must not establish a session")
}

func TestLoginUnknownEmail(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Login(context.Background(), "nobody@techstore.cu", "user123")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginSetsSession(t *testing.T) {
	s := newTestStore(t)
	user, err := s.Login(context.Background(), "admin@techstore.cu", "admin123")
	require.NoError(t, err)
	require.Equal(t, models.RoleAdmin, user.Role)

	current, ok := s.Current()
	require.True(t, ok)
	require.Equal(t, user.ID, current.ID)
}

func TestRegisterEmailTaken(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	before, err := s.Count(ctx)
	require.NoError(t, err)

	_, err = s.Register(ctx, "Otro", "user@techstore.cu", "secret")
	require.ErrorIs(t, err, ErrEmailTaken)

	after, err := s.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, before, after, "registry size must not change")
}

func TestRegisterEmailMatchIsCaseSensitive(t *testing.T) {
	s := newTestStore(t)
	user, err := s.Register(context.Background(), "Mayus", "USER@techstore.cu", "secret")
	require.NoError(t, err)
	require.Equal(t, models.RoleUser, user.Role)
}

func TestRegisterDoesNotLogIn(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Register(context.Background(), "Nuevo", "nuevo@techstore.cu", "secret")
	require.NoError(t, err)

	_, ok := s.Current()
	require.False(t, ok)

	_, err = s.Login(context.Background(), "nuevo@techstore.cu", "secret")
	require.NoError(t, err)
}

func TestLogoutIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Login(context.Background(), "user@techstore.cu", "user123")
	require.NoError(t, err)

	s.Logout()
	_, ok := s.Current()
	require.False(t, ok)

	s.Logout()
	_, ok = s.Current()
	require.False(t, ok)
}
