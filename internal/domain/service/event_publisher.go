package service

import (
	"context"
	"time"
)

// CatalogEventType names the mutation that produced a CatalogEvent.
type CatalogEventType string

const (
	CatalogEventCategoryCreated CatalogEventType = "category.created"
	CatalogEventCategoryUpdated CatalogEventType = "category.updated"
	CatalogEventCategoryDeleted CatalogEventType = "category.deleted"
	CatalogEventProductCreated  CatalogEventType = "product.created"
	CatalogEventProductUpdated  CatalogEventType = "product.updated"
	CatalogEventProductDeleted  CatalogEventType = "product.deleted"
)

// CatalogEvent is published after a catalog mutation has committed.
type CatalogEvent struct {
	RequestID  string           `json:"request_id,omitempty"` // For distributed tracing
	EventID    string           `json:"event_id"`
	Type       CatalogEventType `json:"type"`
	EntityID   int64            `json:"entity_id"`
	PhotoRef   string           `json:"photo_ref,omitempty"`
	OccurredAt time.Time        `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishCatalogEvent publishes a committed catalog change
	PublishCatalogEvent(ctx context.Context, event *CatalogEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
