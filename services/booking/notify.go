package booking

import (
	"context"
	"encoding/json"
	"time"

	"venuehive/models"
	"venuehive/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RedisNotifier publishes booking change events on a per-booking pub/sub
// channel. Delivery is best-effort; a publish failure is logged and dropped.
type RedisNotifier struct {
	Client *redis.Client
}

func (n *RedisNotifier) BookingChanged(event models.BookingEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		utils.GetLogger().Warn("failed to marshal booking event", zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	channel := utils.BookingEventChannel + ":" + event.BookingID
	if err := n.Client.Publish(ctx, channel, payload).Err(); err != nil {
		utils.GetLogger().Warn("failed to publish booking event",
			zap.String("bookingID", event.BookingID), zap.Error(err))
	}
}
