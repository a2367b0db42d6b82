package handlers

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/skotch-labs/shop-backoffice/internal/logging"
	"github.com/skotch-labs/shop-backoffice/internal/mykafka"
)

const (
	topicProductEvents  = "product_events"
	topicUserEvents     = "user_events"
	topicFeedbackEvents = "feedback_events"
	topicCatalogEvents  = "catalog_events"
)

// publish fires a domain event after a successful mutation. The store is the
// source of truth, so a broker failure is logged and never fails the request.
func publish(c echo.Context, p mykafka.Publisher, topic, key string, event map[string]interface{}) {
	if p == nil {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := p.PublishEvent(ctx, topic, key, event); err != nil {
		logging.FromContext(c.Request().Context()).Error("kafka publish failed", "topic", topic, "error", err)
	}
}
