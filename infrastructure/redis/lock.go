package redis

import (
	"context"
	"time"

	"github.com/google/uuid"

	"companydocs/domain/ports"
	"companydocs/pkg/logger"
)

const (
	lockTTL      = 30 * time.Second
	lockPollWait = 50 * time.Millisecond
)

// releaseScript deletes the key only if it still holds our token, so an
// expired lock reacquired by someone else is never released by us.
const releaseScript = `
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`

// Lock is a SET NX keyed lock. Suitable for serializing file lifecycle
// transitions across multiple API instances.
type Lock struct {
	client *Client
}

func NewLock(client *Client) ports.LockPort {
	return &Lock{client: client}
}

func (l *Lock) Lock(ctx context.Context, key string) (func(), error) {
	key = "lock:" + key
	token := uuid.New().String()

	for {
		ok, err := l.client.rdb.SetNX(ctx, key, token, lockTTL).Result()
		if err != nil {
			return nil, err
		}
		if ok {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(lockPollWait):
		}
	}

	release := func() {
		if err := l.client.rdb.Eval(context.Background(), releaseScript, []string{key}, token).Err(); err != nil {
			logger.Warn("Failed to release lock", "key", key, "error", err)
		}
	}

	return release, nil
}
