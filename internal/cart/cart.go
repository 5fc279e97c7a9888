package cart

import (
	"errors"
	"sync"

	"github.com/ydalvarez/techstore/internal/models"
)

var ErrInvalidQuantity = errors.New("quantity must be at least 1")

// Line is one product entry in the cart. UnitPrice is captured when the
// product is first added and never refreshed from the catalog afterwards.
type Line struct {
	ProductID uint    `json:"product_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  uint    `json:"quantity"`
}

type ActionType string

const (
	ActionAdd         ActionType = "ADD_TO_CART"
	ActionRemove      ActionType = "REMOVE_FROM_CART"
	ActionSetQuantity ActionType = "UPDATE_QUANTITY"
	ActionClear       ActionType = "CLEAR_CART"
)

type Action struct {
	Type      ActionType
	Product   models.Product
	ProductID uint
	Quantity  uint
}

// Reduce applies one action to a cart state and returns the next state. The
// input slice is never mutated; callers can hold the old snapshot safely.
// A rejected action (quantity below 1) returns the input state untouched
// together with ErrInvalidQuantity.
func Reduce(lines []Line, act Action) ([]Line, error) {
	switch act.Type {
	case ActionAdd:
		for i, l := range lines {
			if l.ProductID == act.Product.ID {
				next := snapshot(lines)
				next[i].Quantity++
				return next, nil
			}
		}
		next := snapshot(lines)
		return append(next, Line{
			ProductID: act.Product.ID,
			Name:      act.Product.Name,
			UnitPrice: act.Product.Price,
			Quantity:  1,
		}), nil

	case ActionRemove:
		next := make([]Line, 0, len(lines))
		for _, l := range lines {
			if l.ProductID != act.ProductID {
				next = append(next, l)
			}
		}
		return next, nil

	case ActionSetQuantity:
		if act.Quantity < 1 {
			return lines, ErrInvalidQuantity
		}
		next := snapshot(lines)
		for i := range next {
			if next[i].ProductID == act.ProductID {
				next[i].Quantity = act.Quantity
			}
		}
		return next, nil

	case ActionClear:
		return nil, nil

	default:
		return lines, nil
	}
}

func snapshot(lines []Line) []Line {
	out := make([]Line, len(lines))
	copy(out, lines)
	return out
}

// Store holds the single cart of the process behind a mutex so the HTTP layer
// can drive it. All reads hand out copies.
type Store struct {
	mu    sync.RWMutex
	lines []Line
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) AddItem(p models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines, _ = Reduce(s.lines, Action{Type: ActionAdd, Product: p})
}

func (s *Store) RemoveItem(productID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines, _ = Reduce(s.lines, Action{Type: ActionRemove, ProductID: productID})
}

func (s *Store) SetQuantity(productID uint, quantity uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := Reduce(s.lines, Action{Type: ActionSetQuantity, ProductID: productID, Quantity: quantity})
	if err != nil {
		return err
	}
	s.lines = next
	return nil
}

func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines, _ = Reduce(s.lines, Action{Type: ActionClear})
}

func (s *Store) Items() []Line {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot(s.lines)
}

func (s *Store) Total() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var total float64
	for _, l := range s.lines {
		total += l.UnitPrice * float64(l.Quantity)
	}
	return total
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.lines)
}
