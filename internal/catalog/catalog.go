package catalog

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ydalvarez/techstore/internal/models"
)

var (
	ErrValidation = errors.New("validation")
	ErrNotFound   = errors.New("not found")
)

type Service struct {
	DB *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{DB: db}
}

// Seed loads the demo catalog when the table is empty.
func (s *Service) Seed(ctx context.Context) error {
	var count int64
	if err := s.DB.WithContext(ctx).Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	seed := []models.Product{
		{Name: "Laptop Gamer Pro", Category: models.CategoryLaptop, Price: 800, Stock: 10,
			Image: "https://placehold.co/300x200/333/FFF?text=Laptop", Description: "Potente laptop para juegos y trabajo."},
		{Name: "PC Escritorio 16GB", Category: models.CategoryDesktop, Price: 1200, Stock: 5,
			Image: "https://placehold.co/300x200/444/FFF?text=PC", Description: "Computadora de escritorio con 16GB RAM."},
		{Name: "Smartphone Ultra", Category: models.CategoryPhone, Price: 600, Stock: 20,
			Image: "https://placehold.co/300x200/555/FFF?text=Phone", Description: "Teléfono con cámara de 108MP."},
		{Name: "Teclado Mecánico", Category: models.CategoryAccessory, Price: 80, Stock: 50,
			Image: "https://placehold.co/300x200/666/FFF?text=Teclado", Description: "Teclado mecánico RGB."},
	}
	for i := range seed {
		if err := s.DB.WithContext(ctx).Create(&seed[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) Get(ctx context.Context, id uint) (*models.Product, error) {
	var p models.Product
	if err := s.DB.WithContext(ctx).First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &p, nil
}

func (s *Service) List(ctx context.Context, offset, limit int) (int64, []models.Product, error) {
	var total int64
	if err := s.DB.WithContext(ctx).Model(&models.Product{}).Count(&total).Error; err != nil {
		return 0, nil, err
	}
	var items []models.Product
	if err := s.DB.WithContext(ctx).Model(&models.Product{}).
		Order("id ASC").Offset(offset).Limit(limit).Find(&items).Error; err != nil {
		return 0, nil, err
	}
	return total, items, nil
}

func (s *Service) Create(ctx context.Context, p *models.Product) error {
	if p.Name == "" {
		return fmt.Errorf("%w: name required", ErrValidation)
	}
	if !models.CategoryValid(p.Category) {
		return fmt.Errorf("%w: unknown category %q", ErrValidation, p.Category)
	}
	if p.Price <= 0 {
		return fmt.Errorf("%w: price must be positive", ErrValidation)
	}
	return s.DB.WithContext(ctx).Create(p).Error
}

func (s *Service) Patch(ctx context.Context, id uint, req models.Product) (*models.Product, error) {
	if !models.CategoryValid(req.Category) {
		return nil, fmt.Errorf("%w: unknown category %q", ErrValidation, req.Category)
	}
	if req.Price <= 0 {
		return nil, fmt.Errorf("%w: price must be positive", ErrValidation)
	}

	var p models.Product
	if err := s.DB.WithContext(ctx).First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product %d: %w", id, ErrNotFound)
		}
		return nil, err
	}

	p.Name = req.Name
	p.Description = req.Description
	p.Category = req.Category
	p.Price = req.Price
	p.Stock = req.Stock
	p.Image = req.Image

	if err := s.DB.WithContext(ctx).Save(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	res := s.DB.WithContext(ctx).Delete(&models.Product{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product %d: %w", id, ErrNotFound)
	}
	return nil
}
