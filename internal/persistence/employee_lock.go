package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	apperrors "github.com/spec-kit/staff-service/pkg/util/errorutil"
)

const releaseTimeout = 2 * time.Second

// releaseScript deletes the key only while it still carries our token, so an
// expired lock taken over by another process is left alone.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// EmployeeLock is a Redis backed per-employee mutex for lifecycle transitions.
type EmployeeLock struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewEmployeeLock builds a lock using keys under prefix that expire after ttl.
func NewEmployeeLock(client *redis.Client, prefix string, ttl time.Duration) *EmployeeLock {
	if prefix == "" {
		prefix = "staff-service"
	}
	return &EmployeeLock{client: client, prefix: prefix, ttl: ttl}
}

func (l *EmployeeLock) key(employeeID int) string {
	return fmt.Sprintf("%s:lifecycle:employee:%d", l.prefix, employeeID)
}

// Acquire takes the lock with SET NX PX. A held lock yields a Conflict error.
func (l *EmployeeLock) Acquire(ctx context.Context, employeeID int) (func() error, error) {
	if l.client == nil {
		return nil, fmt.Errorf("acquire lifecycle lock: redis client not configured")
	}
	key := l.key(employeeID)
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("acquire lifecycle lock: %w", err)
	}
	if !ok {
		return nil, apperrors.NewConflict("another lifecycle change for this employee is in progress", map[string]any{
			"employee_id": employeeID,
		})
	}

	return func() error {
		releaseCtx, cancel := context.WithTimeout(context.Background(), releaseTimeout)
		defer cancel()
		if err := releaseScript.Run(releaseCtx, l.client, []string{key}, token).Err(); err != nil {
			return fmt.Errorf("release lifecycle lock: %w", err)
		}
		return nil
	}, nil
}
