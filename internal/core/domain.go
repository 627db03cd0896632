package core

import (
	"errors"
	"strings"
	"time"
)

type (
	// Transaction is a single recorded expense. Immutable once created;
	// identified by ID for removal.
	Transaction struct {
		ID        string
		Name      string
		Amount    Money
		Timestamp time.Time
	}

	// WeekBucket groups the transactions of one Monday-start week together
	// with its derived totals. DailyTotal is recomputed against the instant
	// of the last rebuild, not against the bucket's own week, so on a
	// historical bucket it settles to zero once the week has passed.
	WeekBucket struct {
		WeekStart    time.Time
		Transactions []Transaction
		DailyTotal   Money
		WeeklyTotal  Money
	}

	// Ledger is the full persisted state: the bucket for the week containing
	// "now" at the last mutation, plus archived buckets in the order they
	// were rotated out of current.
	Ledger struct {
		CurrentWeek   WeekBucket
		PreviousWeeks []WeekBucket
	}
)

var (
	ErrInvalidAmount = errors.New("invalid amount")
	ErrEmptyName     = errors.New("empty name")
	ErrZeroTimestamp = errors.New("zero timestamp")
)

func (t Transaction) Validate() error {
	if len(strings.TrimSpace(t.Name)) == 0 {
		return ErrEmptyName
	}
	if len(t.Name) > 200 {
		return errors.New("name too long (max 200 characters)")
	}
	if err := t.Amount.Validate(); err != nil {
		return err
	}
	if t.Timestamp.IsZero() {
		return ErrZeroTimestamp
	}
	return nil
}

// Contains reports whether the bucket holds a transaction with the given id.
func (b WeekBucket) Contains(id string) bool {
	for _, tx := range b.Transactions {
		if tx.ID == id {
			return true
		}
	}
	return false
}
