package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/GeoTsinganos/booking-system-api/internal/logger"

	"github.com/redis/go-redis/v9"
)

const cacheTTL = 5 * time.Minute

// Cache is a read-through cache over the service catalog. Only catalog
// rows are cached; availability and booking state always hit storage.
type Cache struct {
	client *redis.Client
}

func NewCache(client *redis.Client) *Cache {
	return &Cache{client: client}
}

func serviceKey(id int) string {
	return fmt.Sprintf("catalog:service:%d", id)
}

func (c *Cache) GetService(ctx context.Context, id int) (*Service, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}

	data, err := c.client.Get(ctx, serviceKey(id)).Bytes()
	if err != nil {
		return nil, false
	}

	var service Service
	if err := json.Unmarshal(data, &service); err != nil {
		return nil, false
	}

	return &service, true
}

func (c *Cache) SetService(ctx context.Context, service *Service) {
	if c == nil || c.client == nil || service == nil {
		return
	}

	data, err := json.Marshal(service)
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, serviceKey(service.ID), data, cacheTTL).Err(); err != nil {
		logger.Debug("catalog cache set failed", "service_id", service.ID, "error", err)
	}
}

func (c *Cache) InvalidateService(ctx context.Context, id int) {
	if c == nil || c.client == nil {
		return
	}

	if err := c.client.Del(ctx, serviceKey(id)).Err(); err != nil {
		logger.Debug("catalog cache invalidate failed", "service_id", id, "error", err)
	}
}
