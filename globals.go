package main

import (
    "context"
    "time"

    redis "github.com/redis/go-redis/v9"
    "golang.org/x/time/rate"
)

var (
    // Metrics
    activeDownloads    int64
    completedDownloads int64
    failedDownloads    int64

    // Rate limiter
    rateLimiter = rate.NewLimiter(rate.Limit(RequestsPerSecond), BurstSize)

    // Redis client; nil when Redis is unreachable
    redisClient *redis.Client

    // Server start time
    serverStartTime = time.Now()

    // Context for graceful shutdown
    ctx, cancel = context.WithCancel(context.Background())
)
