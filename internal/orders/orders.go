package orders

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ydalvarez/techstore/internal/models"
)

var (
	ErrNotFound      = errors.New("order not found")
	ErrInvalidStatus = errors.New("invalid order status")
)

type Service struct {
	DB *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{DB: db}
}

func (s *Service) ListForUser(ctx context.Context, userID uint, offset, limit int) ([]models.Order, error) {
	var out []models.Order
	err := s.DB.WithContext(ctx).Preload("Lines").
		Where("user_id = ?", userID).
		Order("created_at DESC").Offset(offset).Limit(limit).
		Find(&out).Error
	return out, err
}

func (s *Service) ListAll(ctx context.Context, offset, limit int) ([]models.Order, error) {
	var out []models.Order
	err := s.DB.WithContext(ctx).Preload("Lines").
		Order("created_at DESC").Offset(offset).Limit(limit).
		Find(&out).Error
	return out, err
}

// SetStatus moves an order to any valid status; ordering between pending,
// paid and shipped is the admin's call.
func (s *Service) SetStatus(ctx context.Context, id uuid.UUID, status string) (*models.Order, error) {
	if !models.OrderStatusValid(status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	var order models.Order
	if err := s.DB.WithContext(ctx).First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	order.Status = status
	if err := s.DB.WithContext(ctx).Save(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}
