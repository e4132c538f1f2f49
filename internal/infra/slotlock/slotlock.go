package slotlock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrLockNotAcquired возвращается, когда день уже заблокирован другим бронированием
// Вызывающий код трактует это как конфликт слота (повторить позже), а не как сбой
var ErrLockNotAcquired = errors.New("slotlock: lock not acquired")

// Locker блокирует пару (мастер, день) на время транзакции бронирования
// Нужен только при нескольких инстансах сервиса; сериализуемая транзакция
// остаётся главной защитой от двойного бронирования
type Locker interface {
	WithLock(ctx context.Context, businessID, stylistID int64, date time.Time, fn func(ctx context.Context) error) error
}

// RedisLocker блокировка через Redis SETNX с токеном владельца
type RedisLocker struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisLocker создает Redis-локер с заданным TTL ключа
func NewRedisLocker(client *redis.Client, ttl time.Duration) *RedisLocker {
	return &RedisLocker{
		client: client,
		ttl:    ttl,
	}
}

// WithLock выполняет fn под блокировкой; освобождение — только своим токеном
func (l *RedisLocker) WithLock(ctx context.Context, businessID, stylistID int64, date time.Time, fn func(ctx context.Context) error) error {
	key := fmt.Sprintf("lock:agenda:%d:%d:%s", businessID, stylistID, date.Format("2006-01-02"))
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
	if err != nil {
		return fmt.Errorf("slotlock: acquire: %w", err)
	}
	if !ok {
		return ErrLockNotAcquired
	}

	defer func() {
		_ = l.release(ctx, key, token)
	}()

	lockCtx, cancel := context.WithTimeout(ctx, l.ttl)
	defer cancel()

	return fn(lockCtx)
}

// releaseScript удаляет ключ только если он всё ещё принадлежит нам
var releaseScript = redis.NewScript(`
local val = redis.call("GET", KEYS[1])
if val == ARGV[1] then
  return redis.call("DEL", KEYS[1])
else
  return 0
end
`)

func (l *RedisLocker) release(ctx context.Context, key, token string) error {
	_, err := releaseScript.Run(ctx, l.client, []string{key}, token).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("slotlock: release: %w", err)
	}
	return nil
}

// NoopLocker используется, когда Redis отключен в конфигурации
type NoopLocker struct{}

// NewNoopLocker создает локер-пустышку
func NewNoopLocker() *NoopLocker {
	return &NoopLocker{}
}

// WithLock просто выполняет fn
func (l *NoopLocker) WithLock(ctx context.Context, businessID, stylistID int64, date time.Time, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
