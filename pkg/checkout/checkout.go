// Package checkout implements the simulated order flow. Orders are
// processed by an in-process actor and exist only in the response; there
// is no payment backend and nothing is persisted.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/asynkron/protoactor-go/actor"
	"github.com/example/moldz3d/pkg/cart"
	"github.com/example/moldz3d/pkg/config"
	"github.com/example/moldz3d/pkg/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrEmptyCart rejects order placement when there is nothing to buy.
var ErrEmptyCart = errors.New("checkout: cart is empty")

type ShippingInfo struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	ZipCode  string `json:"zip_code"`
}

func (s ShippingInfo) Validate() error {
	fields := map[string]string{
		"full_name": s.FullName,
		"email":     s.Email,
		"phone":     s.Phone,
		"address":   s.Address,
		"city":      s.City,
		"state":     s.State,
		"zip_code":  s.ZipCode,
	}
	for name, value := range fields {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("checkout: %s is required", name)
		}
	}
	if !strings.Contains(s.Email, "@") {
		return errors.New("checkout: email is invalid")
	}
	return nil
}

type PaymentInfo struct {
	CardNumber string `json:"card_number"`
	CardName   string `json:"card_name"`
	ExpiryDate string `json:"expiry_date"`
	CVV        string `json:"cvv"`
}

func (p PaymentInfo) Validate() error {
	if strings.TrimSpace(p.CardName) == "" {
		return errors.New("checkout: card_name is required")
	}
	if strings.TrimSpace(p.ExpiryDate) == "" {
		return errors.New("checkout: expiry_date is required")
	}
	digits := strings.ReplaceAll(p.CardNumber, " ", "")
	if len(digits) < 13 || len(digits) > 19 {
		return errors.New("checkout: card_number is invalid")
	}
	if len(p.CVV) < 3 || len(p.CVV) > 4 {
		return errors.New("checkout: cvv is invalid")
	}
	return nil
}

type Quote struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Total    float64 `json:"total"`
}

type Order struct {
	Number   string            `json:"number"`
	Items    []models.CartLine `json:"items"`
	Subtotal float64           `json:"subtotal"`
	Shipping float64           `json:"shipping"`
	Total    float64           `json:"total"`
	Status   string            `json:"status"`
	PlacedAt time.Time         `json:"placed_at"`
}

// Service drives the checkout flow against the cart store. Order
// processing runs on a dedicated actor so the simulated delay and the
// confirmation stay off the caller's stack until the future resolves.
type Service struct {
	cart      *cart.Store
	logger    *zap.Logger
	shipping  config.ShippingConfig
	timeout   time.Duration
	system    *actor.ActorSystem
	processor *actor.PID
}

func NewService(cartStore *cart.Store, logger *zap.Logger, shipping config.ShippingConfig, co config.CheckoutConfig) (*Service, error) {
	system := actor.NewActorSystem()

	props := actor.PropsFromProducer(func() actor.Actor {
		return &orderProcessor{
			logger: logger.Named("order-processor"),
			delay:  co.ProcessingDelay,
		}
	})
	pid, err := system.Root.SpawnNamed(props, "order-processor")
	if err != nil {
		return nil, fmt.Errorf("failed to spawn order processor: %w", err)
	}

	timeout := co.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return &Service{
		cart:      cartStore,
		logger:    logger,
		shipping:  shipping,
		timeout:   timeout,
		system:    system,
		processor: pid,
	}, nil
}

// Quote prices the current cart without placing an order.
func (s *Service) Quote(ctx context.Context) Quote {
	subtotal := s.cart.Total(ctx)
	shipping := s.shippingFor(subtotal)
	return Quote{
		Subtotal: subtotal,
		Shipping: shipping,
		Total:    subtotal + shipping,
	}
}

func (s *Service) shippingFor(subtotal float64) float64 {
	// Nothing to ship, nothing to charge.
	if subtotal <= 0 {
		return 0
	}
	if subtotal >= s.shipping.FreeThreshold {
		return 0
	}
	return s.shipping.FlatRate
}

// PlaceOrder validates both forms, runs the simulated processing, and on
// confirmation clears the cart. The returned order is the only record of
// the purchase.
func (s *Service) PlaceOrder(ctx context.Context, ship ShippingInfo, pay PaymentInfo) (*Order, error) {
	if err := ship.Validate(); err != nil {
		return nil, err
	}
	if err := pay.Validate(); err != nil {
		return nil, err
	}

	items := s.cart.Items(ctx)
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	var subtotal float64
	for _, line := range items {
		subtotal += line.Subtotal()
	}
	shipping := s.shippingFor(subtotal)

	future := s.system.Root.RequestFuture(s.processor, &processOrder{
		ItemCount: len(items),
		Total:     subtotal + shipping,
	}, s.timeout)

	result, err := future.Result()
	if err != nil {
		return nil, fmt.Errorf("order processing failed: %w", err)
	}

	conf, ok := result.(*orderConfirmation)
	if !ok {
		return nil, fmt.Errorf("order processing returned unexpected response %T", result)
	}

	s.cart.Clear(ctx)

	order := &Order{
		Number:   conf.Number,
		Items:    items,
		Subtotal: subtotal,
		Shipping: shipping,
		Total:    subtotal + shipping,
		Status:   conf.Status,
		PlacedAt: conf.PlacedAt,
	}

	s.logger.Info("Order placed",
		zap.String("order_number", order.Number),
		zap.Int("items", len(order.Items)),
		zap.Float64("total", order.Total))

	return order, nil
}

func (s *Service) Close() {
	s.system.Root.Stop(s.processor)
}

// Messages
type processOrder struct {
	ItemCount int
	Total     float64
}

type orderConfirmation struct {
	Number   string
	Status   string
	PlacedAt time.Time
}

// orderProcessor simulates payment and fulfillment hand-off.
type orderProcessor struct {
	logger *zap.Logger
	delay  time.Duration
}

func (a *orderProcessor) Receive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case *processOrder:
		a.logger.Info("Processing order",
			zap.Int("item_count", msg.ItemCount),
			zap.Float64("total", msg.Total))

		if a.delay > 0 {
			time.Sleep(a.delay)
		}

		ctx.Respond(&orderConfirmation{
			Number:   fmt.Sprintf("ORD-%s", strings.ToUpper(uuid.New().String()[:8])),
			Status:   "confirmed",
			PlacedAt: time.Now(),
		})

	case *actor.Started:
		a.logger.Info("Order processor started")

	case *actor.Stopping:
		a.logger.Info("Order processor stopping")
	}
}
