package lock

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// releaseScript deletes the key only if it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLocker holds slot locks in redis so several API replicas share them.
type RedisLocker struct {
	rdb  *redis.Client
	log  *zap.Logger
	ttl  time.Duration
	wait time.Duration
	poll time.Duration
}

func NewRedisLocker(rdb *redis.Client, log *zap.Logger) *RedisLocker {
	return &RedisLocker{
		rdb:  rdb,
		log:  log,
		ttl:  DefaultTTL,
		wait: DefaultWait,
		poll: 50 * time.Millisecond,
	}
}

func (l *RedisLocker) Acquire(ctx context.Context, key string) (func(), error) {
	token := uuid.NewString()

	ctx, cancel := context.WithTimeout(ctx, l.wait)
	defer cancel()

	ticker := time.NewTicker(l.poll)
	defer ticker.Stop()

	for {
		ok, err := l.rdb.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil && ctx.Err() == nil {
			return nil, err
		}
		if ok {
			return func() { l.release(key, token) }, nil
		}

		select {
		case <-ticker.C:
		case <-ctx.Done():
			return nil, ErrBusy
		}
	}
}

func (l *RedisLocker) release(key, token string) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := releaseScript.Run(ctx, l.rdb, []string{key}, token).Err(); err != nil {
		l.log.Warn("failed to release slot lock", zap.String("key", key), zap.Error(err))
	}
}
