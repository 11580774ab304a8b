package services

// EventPublisher publishes domain events to the message broker. It is
// satisfied by *rabbitmq.Client; services treat a nil publisher as
// "events disabled" and publish failures are logged, never propagated.
type EventPublisher interface {
	PublishEvent(eventType string, payload map[string]interface{}) error
}

// Event types emitted by the services.
const (
	EventStoreCreated   = "store.created"
	EventProductAdded   = "inventory.product.added"
	EventProductUpdated = "inventory.product.updated"
	EventProductRemoved = "inventory.product.removed"
	EventStockIncreased = "stock.increased"
	EventStockReduced   = "stock.reduced"
	EventOrderCreated   = "order.created"
)
