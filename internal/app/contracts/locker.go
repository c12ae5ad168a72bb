package contracts

import (
	"context"
	"time"
)

// LockerService is a best-effort distributed lock on top of redis SETNX.
// TryLock returns the lock token needed to Unlock; a false first return
// means another holder owns the key.
type LockerService interface {
	TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error)
	Unlock(ctx context.Context, key, lockValue string) error
}
