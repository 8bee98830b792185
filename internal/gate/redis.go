package gate

import (
	"context"
	"time"

	"aurora/pkg/serrors"

	"github.com/redis/go-redis/v9"
)

// redisPong is the literal reply a healthy Redis server gives to PING.
const redisPong = "PONG"

// RedisCheck probes the cache store with a PING command and requires the
// literal PONG reply.
type RedisCheck struct {
	client  *redis.Client
	timeout time.Duration
}

// NewRedisCheck creates a Redis liveness check against addr ("host:port").
// The client connects lazily, so construction never fails.
func NewRedisCheck(addr string, timeout time.Duration) *RedisCheck {
	return &RedisCheck{
		client: redis.NewClient(&redis.Options{
			Addr: addr,
			// the gate owns retries, one attempt per pass is enough
			MaxRetries: -1,
		}),
		timeout: timeout,
	}
}

// Name implements Check.
func (c *RedisCheck) Name() string { return "redis" }

// Ready issues PING and verifies the reply. Any failure is reported as
// transient unavailability.
func (c *RedisCheck) Ready(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	reply, err := c.client.Ping(ctx).Result()
	if err != nil {
		return serrors.Wrap(serrors.ErrUnavailable, err, "redis ping failed")
	}
	if reply != redisPong {
		return serrors.With(serrors.ErrUnavailable, "unexpected redis ping reply %q", reply)
	}

	return nil
}

// Close releases the underlying client connections.
func (c *RedisCheck) Close() error {
	return c.client.Close()
}
