package application

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tanakrit-dev/pizzashop-pos/internal/order/domain"
)

var (
	ErrSessionNotFound = errors.New("checkout session not found")
	ErrMemberInactive  = errors.New("member is inactive")
	ErrMemberExpired   = errors.New("membership has expired")
	ErrEmptyOrder      = errors.New("cannot check out an empty order")
)

// Service runs the checkout sessions for one register. Exactly one order
// is live per session; the mutex confines each order to a single writer
// and serialises order-log access, as the in-memory collaborators
// require.
type Service struct {
	log     *slog.Logger
	catalog Catalog
	members MemberDirectory
	orders  OrderLog
	rules   domain.Rules
	now     func() time.Time

	mu       sync.Mutex
	sessions map[string]*domain.Order
}

func NewService(log *slog.Logger, catalog Catalog, members MemberDirectory, orders OrderLog, rules domain.Rules, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		log:      log,
		catalog:  catalog,
		members:  members,
		orders:   orders,
		rules:    rules,
		now:      now,
		sessions: make(map[string]*domain.Order),
	}
}

// OpenSession starts a checkout session with a fresh empty order.
func (s *Service) OpenSession(ctx context.Context, dineIn bool) (Snapshot, error) {
	id, err := s.orders.NextOrderID(ctx)
	if err != nil {
		return Snapshot{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sessionID := uuid.NewString()
	o := domain.NewOrder(id, s.rules, s.now)
	o.SetDineIn(dineIn)
	s.sessions[sessionID] = o

	s.log.Info("session opened", "session_id", sessionID, "order_id", id)
	return snapshotOf(sessionID, o), nil
}

// AddItem resolves the menu item through the catalog and adds it to the
// session's cart.
func (s *Service) AddItem(ctx context.Context, sessionID, itemID string, quantity int) (Snapshot, error) {
	item, err := s.catalog.FindItemByID(ctx, itemID)
	if err != nil {
		return Snapshot{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.sessions[sessionID]
	if !ok {
		return Snapshot{}, ErrSessionNotFound
	}
	if err := o.AddItem(item, quantity); err != nil {
		return Snapshot{}, err
	}
	return snapshotOf(sessionID, o), nil
}

// RemoveItem removes quantity units of the item from the cart; a
// non-positive quantity removes the whole line.
func (s *Service) RemoveItem(ctx context.Context, sessionID, itemID string, quantity int) (Snapshot, error) {
	item, err := s.catalog.FindItemByID(ctx, itemID)
	if err != nil {
		return Snapshot{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.sessions[sessionID]
	if !ok {
		return Snapshot{}, ErrSessionNotFound
	}
	if quantity <= 0 {
		o.RemoveItem(item)
	} else {
		o.RemoveItemQuantity(item, quantity)
	}
	return snapshotOf(sessionID, o), nil
}

// AttachMember looks the member up by phone and attaches them to the
// cart. Inactive and expired members are rejected here; the cart itself
// does not re-validate whoever is attached.
func (s *Service) AttachMember(ctx context.Context, sessionID, phone string) (Snapshot, error) {
	m, err := s.members.FindByPhone(ctx, phone)
	if err != nil {
		return Snapshot{}, err
	}
	if !m.Active {
		return Snapshot{}, ErrMemberInactive
	}
	if m.IsExpired(s.now()) {
		return Snapshot{}, ErrMemberExpired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.sessions[sessionID]
	if !ok {
		return Snapshot{}, ErrSessionNotFound
	}
	o.SetMember(m)
	return snapshotOf(sessionID, o), nil
}

func (s *Service) DetachMember(ctx context.Context, sessionID string) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.sessions[sessionID]
	if !ok {
		return Snapshot{}, ErrSessionNotFound
	}
	o.SetMember(nil)
	return snapshotOf(sessionID, o), nil
}

func (s *Service) SetDineIn(ctx context.Context, sessionID string, dineIn bool) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.sessions[sessionID]
	if !ok {
		return Snapshot{}, ErrSessionNotFound
	}
	o.SetDineIn(dineIn)
	return snapshotOf(sessionID, o), nil
}

func (s *Service) ClearCart(ctx context.Context, sessionID string) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.sessions[sessionID]
	if !ok {
		return Snapshot{}, ErrSessionNotFound
	}
	o.Clear()
	return snapshotOf(sessionID, o), nil
}

func (s *Service) Snapshot(ctx context.Context, sessionID string) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.sessions[sessionID]
	if !ok {
		return Snapshot{}, ErrSessionNotFound
	}
	return snapshotOf(sessionID, o), nil
}

// Checkout persists the session's order and replaces it with a fresh
// empty one. The returned snapshot is the receipt of the order just
// finalized.
func (s *Service) Checkout(ctx context.Context, sessionID string) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.sessions[sessionID]
	if !ok {
		return Snapshot{}, ErrSessionNotFound
	}
	if o.IsEmpty() {
		return Snapshot{}, ErrEmptyOrder
	}

	if err := s.orders.Save(ctx, o); err != nil {
		return Snapshot{}, err
	}

	nextID, err := s.orders.NextOrderID(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	fresh := domain.NewOrder(nextID, s.rules, s.now)
	fresh.SetDineIn(o.DineIn())
	s.sessions[sessionID] = fresh

	s.log.Info("order checked out",
		"session_id", sessionID,
		"order_id", o.ID(),
		"total", o.TotalPrice().StringFixed(2),
		"savings", o.TotalSavings().StringFixed(2),
	)
	return snapshotOf(sessionID, o), nil
}

// CloseSession discards a session without persisting anything.
func (s *Service) CloseSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sessionID]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, sessionID)
	return nil
}
