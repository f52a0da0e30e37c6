package cache

import (
	"sync"

	"github.com/pkg/errors"

	"order-store/internal/models"
)

// ErrMiss is returned when an order is not cached or has expired.
var ErrMiss = errors.New("cache miss")

type OrderCacheRepo struct {
	cch KV

	// guards read-through fills against invalidations that land while the
	// store read is in flight
	mu          sync.Mutex
	seq         uint64
	fills       int
	invalidated map[string]uint64
}

// Fill is an in-flight read-through fill started by BeginFill.
type Fill struct {
	uid string
	seq uint64
}

func NewOrderCache(cch KV) *OrderCacheRepo {
	return &OrderCacheRepo{
		cch:         cch,
		invalidated: make(map[string]uint64),
	}
}

func (o *OrderCacheRepo) PutOrder(uid string, ord models.Order) {
	o.cch.Put(uid, ord)
}

func (o *OrderCacheRepo) GetOrder(uid string) (models.Order, error) {
	v, ok := o.cch.Get(uid)
	if !ok {
		return models.Order{}, errors.Wrapf(ErrMiss, "order %s", uid)
	}

	ord, ok := v.(models.Order)
	if !ok {
		return models.Order{}, errors.Errorf("cached value for order %s is %T", uid, v)
	}
	return ord, nil
}

// DeleteOrder drops the cached order and fails every fill for it that is
// still in flight.
func (o *OrderCacheRepo) DeleteOrder(uid string) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.seq++
	if o.fills > 0 {
		o.invalidated[uid] = o.seq
	}
	o.cch.Delete(uid)
}

// BeginFill must be called before reading uid from the store. Every
// BeginFill is paired with one EndFill.
func (o *OrderCacheRepo) BeginFill(uid string) Fill {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.fills++
	return Fill{uid: uid, seq: o.seq}
}

// EndFill caches ord unless the order was invalidated after f began. A nil
// ord only closes the fill. It reports whether ord was cached.
func (o *OrderCacheRepo) EndFill(f Fill, ord *models.Order) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.fills--
	stale := o.invalidated[f.uid] > f.seq
	if o.fills == 0 {
		clear(o.invalidated)
	}
	if stale || ord == nil {
		return false
	}
	o.cch.Put(f.uid, *ord)
	return true
}

// PurgeExpired drops expired orders and returns how many were removed.
func (o *OrderCacheRepo) PurgeExpired() int {
	return o.cch.Purge()
}

func (o *OrderCacheRepo) Len() int {
	return o.cch.Len()
}
