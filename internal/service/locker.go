package service

import "context"

// EmployeeLocker serialises lifecycle transitions per employee across
// processes. Acquire returns a Conflict DomainError when the lock is held.
type EmployeeLocker interface {
	Acquire(ctx context.Context, employeeID int) (release func() error, err error)
}

// NoopLocker is used when no distributed lock is configured; the optimistic
// version check on the employee row still rejects the second writer.
type NoopLocker struct{}

func (NoopLocker) Acquire(context.Context, int) (func() error, error) {
	return func() error { return nil }, nil
}
