package cron

import (
	"context"
	"log"
	"time"

	"venuehive/config"
	bookingRepo "venuehive/database/repository/booking"
	"venuehive/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeBookingExpire = "booking:expire"

// InitExpiryWorker runs the async worker that cancels abandoned checkouts.
// A booking stuck in pending/pending past the configured TTL will never be
// paid; sweeping it frees the slot for other clients. TTL 0 disables the
// sweep entirely.
func InitExpiryWorker(repo bookingRepo.BookingRepository) {
	ttlHours := config.AppConfig.PendingBookingTTLHours
	if ttlHours <= 0 {
		log.Println("[ExpiryWorker] pending booking TTL disabled, worker not started")
		return
	}

	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 1,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeBookingExpire, handleExpireTask(repo, time.Duration(ttlHours)*time.Hour))

	scheduler := asynq.NewScheduler(redisOpts, nil)
	if _, err := scheduler.Register("@every 1h", asynq.NewTask(TypeBookingExpire, nil)); err != nil {
		log.Printf("[ExpiryWorker] failed to register expiry schedule: %v", err)
		return
	}

	go func() {
		log.Println("[ExpiryWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ExpiryWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ExpiryWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()

	go func() {
		if err := scheduler.Run(); err != nil {
			log.Printf("[ExpiryWorker] scheduler stopped: %v", err)
		}
	}()
}

func handleExpireTask(repo bookingRepo.BookingRepository, ttl time.Duration) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		cutoff := time.Now().Add(-ttl)
		swept, err := repo.CancelStalePending(cutoff)
		if err != nil {
			utils.GetLogger().Error("pending booking sweep failed", zap.Error(err))
			return err
		}
		if swept > 0 {
			utils.GetLogger().Info("swept stale pending bookings",
				zap.Int64("count", swept),
				zap.Time("cutoff", cutoff))
		}
		return nil
	}
}
