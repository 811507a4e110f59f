package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"vendora/config"
	vendorRepo "vendora/database/repository/vendor"
	"vendora/services/availability"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

const TypeWarmVendor = "availability:warm"

// warmPayload is the asynq task payload for a single vendor warm-up.
type warmPayload struct {
	VendorID    string `json:"vendorId"`
	MonthsAhead int    `json:"monthsAhead"`
}

// InitCacheWarmer runs the async worker in background and periodically
// enqueues warm-up tasks for every known vendor so month views are hot
// before clients ask for them.
func InitCacheWarmer(availSvc availability.AvailabilityService, vendorRepo vendorRepo.VendorAvailabilityRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisWarmerDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeWarmVendor, handleWarmTask(availSvc))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Periodic enqueuer
	go enqueueWarmTasks(redisOpts, vendorRepo)

	// Start async worker with retry logic
	go func() {
		log.Println("[CacheWarmer] 🚀 Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[CacheWarmer] ❌ Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[CacheWarmer] ❗ Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleWarmTask(availSvc availability.AvailabilityService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p warmPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[WarmHandler] 🔴 Invalid payload: %v", err)
			return err
		}

		months := p.MonthsAhead
		if months <= 0 {
			months = config.AppConfig.WarmMonthsAhead
		}

		log.Printf("[WarmHandler] 🔥 Warming %d month(s) for vendor %s", months, p.VendorID)
		if err := availSvc.WarmVendorCaches(ctx, p.VendorID, months); err != nil {
			log.Printf("[WarmHandler] ❌ Failed to warm vendor %s: %v", p.VendorID, err)
			return err
		}
		return nil
	}
}

// enqueueWarmTasks enqueues one warm task per known vendor every hour.
func enqueueWarmTasks(redisOpts asynq.RedisClientOpt, repo vendorRepo.VendorAvailabilityRepository) {
	client := asynq.NewClient(redisOpts)
	defer client.Close()

	// Give the worker a moment before the first sweep.
	time.Sleep(5 * time.Second)

	for {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		ids, err := repo.ListVendorIDs(ctx)
		cancel()
		if err != nil {
			log.Printf("[CacheWarmer] ⚠️ Failed to list vendors: %v", err)
		}

		for _, id := range ids {
			payload, err := json.Marshal(warmPayload{
				VendorID:    id,
				MonthsAhead: config.AppConfig.WarmMonthsAhead,
			})
			if err != nil {
				continue
			}
			task := asynq.NewTask(TypeWarmVendor, payload)
			if _, err := client.Enqueue(task, asynq.MaxRetry(3), asynq.Timeout(2*time.Minute)); err != nil {
				log.Printf("[CacheWarmer] ⚠️ Failed to enqueue warm task for %s: %v", id, err)
			}
		}

		time.Sleep(time.Hour)
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisWarmerDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[CacheWarmer] ⚠️ Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
