package services

import "github.com/minsmanse/bar/entity"

// OrderNotifier pushes order events to connected viewers. Delivery is best
// effort with no replay: viewers re-sync with a full fetch on (re)connect,
// so the push channel is a liveliness optimization, not the source of truth.
type OrderNotifier interface {
	OrderCreated(o *entity.Order)
	OrderUpdated(o *entity.Order)
}
