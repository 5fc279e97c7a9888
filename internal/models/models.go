package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Product categories form a closed set; CategoryValid gates admin input.
const (
	CategoryDesktop   = "desktop"
	CategoryLaptop    = "laptop"
	CategoryPhone     = "phone"
	CategoryAccessory = "accessory"
)

func CategoryValid(c string) bool {
	switch c {
	case CategoryDesktop, CategoryLaptop, CategoryPhone, CategoryAccessory:
		return true
	}
	return false
}

const (
	OrderStatusPending = "pending"
	OrderStatusPaid    = "paid"
	OrderStatusShipped = "shipped"
)

func OrderStatusValid(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusShipped:
		return true
	}
	return false
}

type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string `gorm:"not null"                 json:"name"`
	Email        string `gorm:"unique;not null"          json:"email"`
	PasswordHash string `gorm:"not null"                 json:"-"`
	Role         string `gorm:"not null"                 json:"role"`
}

type Product struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"not null"                 json:"name"`
	Description string  `json:"description"`
	Category    string  `gorm:"not null;index"           json:"category"`
	Price       float64 `gorm:"not null"                 json:"price"`
	Stock       uint    `json:"stock"`
	Image       string  `json:"image"`
}

type Order struct {
	ID               uuid.UUID   `gorm:"primaryKey"     json:"id"`
	UserID           uint        `gorm:"index;not null" json:"user_id"`
	Total            float64     `gorm:"not null"       json:"total"`
	PaymentMethod    string      `gorm:"not null"       json:"payment_method"`
	PaymentReference string      `gorm:"not null"       json:"payment_reference"`
	Status           string      `gorm:"not null"       json:"status"`
	CreatedAt        int64       `gorm:"not null"       json:"created_at"`
	Lines            []OrderLine `gorm:"foreignKey:OrderID" json:"lines"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

type OrderLine struct {
	ID        uint      `gorm:"primaryKey"                 json:"id"`
	OrderID   uuid.UUID `gorm:"index;not null"             json:"order_id"`
	ProductID uint      `gorm:"not null"                   json:"product_id"`
	Name      string    `gorm:"not null"                   json:"name"`
	UnitPrice float64   `gorm:"not null"                   json:"unit_price"`
	Quantity  uint      `gorm:"default:1;check:quantity>0" json:"quantity"`
}

// Preference is a single scalar setting (dark mode flag, language code).
type Preference struct {
	Key   string `gorm:"primaryKey" json:"key"`
	Value string `json:"value"`
}
