package checkout

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/ydalvarez/techstore/internal/cart"
	"github.com/ydalvarez/techstore/internal/events"
	"github.com/ydalvarez/techstore/internal/logging"
	"github.com/ydalvarez/techstore/internal/models"
)

type State string

const (
	StateReviewing        State = "reviewing"
	StateSelectingPayment State = "selecting_payment"
	StateConfirmed        State = "confirmed"
)

const (
	MethodTransfermovil = "transfermovil"
	MethodEnzona        = "enzona"
)

func MethodValid(m string) bool {
	return m == MethodTransfermovil || m == MethodEnzona
}

var (
	ErrEmptyCart             = errors.New("cart is empty")
	ErrIncompletePaymentInfo = errors.New("payment method and reference required")
	ErrInvalidPaymentMethod  = errors.New("unknown payment method")
	ErrInvalidTransition     = errors.New("operation not allowed in current state")
)

// Flow drives the cart through review -> payment selection -> confirmation.
// It borrows the cart contents to build an order snapshot and clears the cart
// once the order is persisted.
type Flow struct {
	DB       *gorm.DB
	Cart     *cart.Store
	Producer *events.Producer

	mu     sync.Mutex
	state  State
	method string
}

func NewFlow(db *gorm.DB, c *cart.Store, p *events.Producer) *Flow {
	return &Flow{DB: db, Cart: c, Producer: p, state: StateReviewing}
}

func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *Flow) Method() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.method
}

// Proceed moves from Reviewing to SelectingPayment. An empty cart blocks the
// transition; the caller renders the empty-cart presentation instead.
func (f *Flow) Proceed() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != StateReviewing {
		return fmt.Errorf("%w: proceed from %s", ErrInvalidTransition, f.state)
	}
	if f.Cart.Len() == 0 {
		return ErrEmptyCart
	}
	f.state = StateSelectingPayment
	return nil
}

func (f *Flow) SelectPayment(method string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != StateSelectingPayment {
		return fmt.Errorf("%w: select payment from %s", ErrInvalidTransition, f.state)
	}
	if !MethodValid(method) {
		return fmt.Errorf("%w: %q", ErrInvalidPaymentMethod, method)
	}
	f.method = method
	return nil
}

// Confirm validates the payment info, persists an order snapshot with
// status=pending and empties the cart. On a validation failure the state
// stays at SelectingPayment with nothing written.
func (f *Flow) Confirm(ctx context.Context, buyer models.User, reference string) (models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	l := logging.FromContext(ctx).With("svc", "checkout.confirm")

	if f.state != StateSelectingPayment {
		return models.Order{}, fmt.Errorf("%w: confirm from %s", ErrInvalidTransition, f.state)
	}
	if f.method == "" || reference == "" {
		l.Warn("confirm_rejected", "reason", "incomplete payment info")
		return models.Order{}, ErrIncompletePaymentInfo
	}

	items := f.Cart.Items()
	if len(items) == 0 {
		return models.Order{}, ErrEmptyCart
	}

	order := models.Order{
		UserID:           buyer.ID,
		Total:            f.Cart.Total(),
		PaymentMethod:    f.method,
		PaymentReference: reference,
		Status:           models.OrderStatusPending,
		CreatedAt:        time.Now().Unix(),
	}
	for _, it := range items {
		order.Lines = append(order.Lines, models.OrderLine{
			ProductID: it.ProductID,
			Name:      it.Name,
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
		})
	}

	if err := f.DB.WithContext(ctx).Create(&order).Error; err != nil {
		l.Error("confirm_failed", "reason", "db_error", "error", err)
		return models.Order{}, err
	}

	f.Cart.Clear()
	f.state = StateConfirmed

	event := map[string]interface{}{
		"type":    "order_created",
		"orderID": order.ID,
		"userID":  buyer.ID,
		"total":   order.Total,
		"method":  order.PaymentMethod,
	}
	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := f.Producer.PublishEvent(pubCtx, events.TopicOrderEvents, order.ID.String(), event); err != nil {
		l.Error("kafka_publish_error", "error", err)
	}

	l.Info("confirm_success", "order_id", order.ID)
	return order, nil
}

// Reset starts a fresh review round, clearing the selected payment method.
func (f *Flow) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = StateReviewing
	f.method = ""
}
