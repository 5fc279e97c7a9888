package prefs

import (
	"context"
	"errors"
	"strconv"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ydalvarez/techstore/internal/i18n"
	"github.com/ydalvarez/techstore/internal/models"
)

const (
	KeyDarkMode = "darkMode"
	KeyLang     = "lang"
)

var ErrUnsupportedLang = errors.New("unsupported language")

type Service struct {
	DB *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{DB: db}
}

func (s *Service) get(ctx context.Context, key, def string) (string, error) {
	var p models.Preference
	if err := s.DB.WithContext(ctx).First(&p, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return def, nil
		}
		return "", err
	}
	return p.Value, nil
}

func (s *Service) set(ctx context.Context, key, value string) error {
	p := models.Preference{Key: key, Value: value}
	return s.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&p).Error
}

func (s *Service) DarkMode(ctx context.Context) (bool, error) {
	v, err := s.get(ctx, KeyDarkMode, "false")
	if err != nil {
		return false, err
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, nil
	}
	return b, nil
}

func (s *Service) SetDarkMode(ctx context.Context, on bool) error {
	return s.set(ctx, KeyDarkMode, strconv.FormatBool(on))
}

func (s *Service) Language(ctx context.Context) (string, error) {
	return s.get(ctx, KeyLang, i18n.DefaultLang)
}

func (s *Service) SetLanguage(ctx context.Context, lang string) error {
	if !i18n.Supported(lang) {
		return ErrUnsupportedLang
	}
	return s.set(ctx, KeyLang, lang)
}
