// Package memory is an in-process implementation of the store ports. Units of work are
// serialized: only one is active at a time, so a validation and the write that follows
// it never interleave with another unit of work. Changes are staged in the unit of work
// and applied on Commit.
//
// It backs the service when STORE_DRIVER=memory and the HTTP and use case tests.
package memory

import (
	"sort"
	"sync"
	"time"

	"foodorders/internal/core/domain/model/catalog"
	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/core/domain/model/order"
	"foodorders/internal/core/ports"
)

type lineRecord struct {
	productID int64
	quantity  int
}

type orderRecord struct {
	id           int64
	restaurantID int64
	address      string
	lines        []lineRecord
	createdAt    time.Time
	startedAt    *time.Time
	sentAt       *time.Time
	deliveredAt  *time.Time
}

type outboxRecord struct {
	message ports.OutboxMessage
	sentAt  *time.Time
}

// Store holds orders, the catalog and the outbox.
type Store struct {
	// sem is held by the active unit of work
	sem chan struct{}

	mu          sync.RWMutex
	lastOrderID int64
	orders      map[int64]orderRecord
	restaurants map[int64]*catalog.Restaurant
	products    map[int64]*catalog.Product
	outbox      []*outboxRecord
}

func NewStore() *Store {
	return &Store{
		sem:         make(chan struct{}, 1),
		orders:      make(map[int64]orderRecord),
		restaurants: make(map[int64]*catalog.Restaurant),
		products:    make(map[int64]*catalog.Product),
	}
}

// AddRestaurant seeds the catalog.
func (s *Store) AddRestaurant(r *catalog.Restaurant) error {
	if err := r.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.restaurants[r.ID().Value()] = r
	return nil
}

// AddProduct seeds the catalog.
func (s *Store) AddProduct(p *catalog.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products[p.ID().Value()] = p
	return nil
}

func (s *Store) nextOrderID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastOrderID++
	return s.lastOrderID
}

func (s *Store) order(id int64) (orderRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.orders[id]
	return rec, ok
}

func (s *Store) orderIDs() []int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]int64, 0, len(s.orders))
	for id := range s.orders {
		ids = append(ids, id)
	}
	return ids
}

func (s *Store) apply(staged map[int64]*orderRecord, messages []ports.OutboxMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, rec := range staged {
		if rec == nil {
			delete(s.orders, id)
			continue
		}
		s.orders[id] = *rec
	}
	for _, m := range messages {
		s.outbox = append(s.outbox, &outboxRecord{message: m})
	}
}

func recordOf(o *order.Order) orderRecord {
	lines := make([]lineRecord, 0, len(o.Lines()))
	for _, l := range o.Lines() {
		lines = append(lines, lineRecord{productID: l.ProductID().Value(), quantity: l.Quantity()})
	}
	return orderRecord{
		id:           o.ID().Value(),
		restaurantID: o.RestaurantID().Value(),
		address:      o.Address(),
		lines:        lines,
		createdAt:    o.CreatedAt(),
		startedAt:    o.StartedAt(),
		sentAt:       o.SentAt(),
		deliveredAt:  o.DeliveredAt(),
	}
}

func (r orderRecord) toDomain() (*order.Order, error) {
	lines := make([]order.Line, 0, len(r.lines))
	for _, l := range r.lines {
		productID, err := kernel.NewID(l.productID)
		if err != nil {
			return nil, err
		}
		line, err := order.NewLine(productID, l.quantity)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	id, err := kernel.NewID(r.id)
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.NewID(r.restaurantID)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, restaurantID, lines, r.address, r.createdAt, r.startedAt, r.sentAt, r.deliveredAt)
}

func sortNewestFirst(orders []*order.Order) {
	sort.Slice(orders, func(i, j int) bool {
		if orders[i].CreatedAt().Equal(orders[j].CreatedAt()) {
			return orders[i].ID().Value() > orders[j].ID().Value()
		}
		return orders[i].CreatedAt().After(orders[j].CreatedAt())
	})
}
