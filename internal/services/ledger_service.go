// Package services orchestrates the ledger core against the persistence
// boundary.
package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"weekly/internal/core"
	"weekly/internal/id"
	applog "weekly/internal/log"
	"weekly/internal/storage"
)

// LedgerService owns the in-memory ledger snapshot and the load/save
// boundary around it. Operations are expected to be serialized by the
// caller; there is never more than one mutation in flight.
//
// Persistence failures never propagate as faults: a failed read degrades to
// a fresh ledger for the present week, and a failed write leaves the
// in-memory snapshot authoritative until the next successful save.
type LedgerService struct {
	store  storage.KeyValue
	logger *applog.Logger

	ledger       core.Ledger
	showPrevious bool
	now          func() time.Time
}

func NewLedgerService(store storage.KeyValue, logger *applog.Logger) *LedgerService {
	if logger == nil {
		logger = applog.New(applog.DefaultConfig())
	}
	return &LedgerService{
		store:        store,
		logger:       logger.WithComponent(applog.ComponentLedger),
		showPrevious: true,
		now:          time.Now,
	}
}

// Load restores the persisted state. The ledger blob and the display
// preference live under separate keys and are fetched concurrently.
// Missing or malformed state degrades to defaults and is never an error.
func (s *LedgerService) Load(ctx context.Context) {
	var (
		ledgerBlob, prefBlob string
		ledgerOK, prefOK     bool
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		ledgerBlob, ledgerOK, err = s.store.Get(gctx, storage.KeyLedger)
		return err
	})
	g.Go(func() error {
		var err error
		prefBlob, prefOK, err = s.store.Get(gctx, storage.KeyShowPreviousWeeks)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.WarnContext(ctx, "Failed to read persisted state, starting fresh",
			applog.FieldError, err)
		s.ledger = core.NewLedger(s.now())
		return
	}

	if !ledgerOK {
		s.logger.InfoContext(ctx, "No persisted ledger, starting fresh")
		s.ledger = core.NewLedger(s.now())
	} else if ledger, err := core.DecodeLedger(ledgerBlob); err != nil {
		s.logger.WarnContext(ctx, "Persisted ledger is malformed, starting fresh",
			applog.FieldError, err)
		s.ledger = core.NewLedger(s.now())
	} else {
		s.ledger = ledger
	}

	if prefOK {
		if v, err := strconv.ParseBool(prefBlob); err == nil {
			s.showPrevious = v
		}
	}
}

// Ledger returns the current in-memory snapshot.
func (s *LedgerService) Ledger() core.Ledger {
	return s.ledger
}

// AddTransaction records a new transaction with an id derived from the
// creation instant and a timestamp of now, rotating the current week bucket
// into history first when the real-world week has advanced past it.
func (s *LedgerService) AddTransaction(ctx context.Context, name string, amount core.Money) (core.Transaction, error) {
	now := s.now()
	tx := core.Transaction{
		ID:        id.New(now),
		Name:      name,
		Amount:    amount,
		Timestamp: now,
	}
	if err := tx.Validate(); err != nil {
		return core.Transaction{}, fmt.Errorf("validate transaction: %w", err)
	}

	s.ledger = s.ledger.Add(tx, now)
	s.save(ctx)

	s.logger.InfoContext(ctx, "Transaction added",
		applog.FieldTransactionID, tx.ID,
		applog.FieldTransactionName, tx.Name,
		applog.FieldAmountCents, tx.Amount.Cents,
		applog.FieldWeekStart, s.ledger.CurrentWeek.WeekStart)
	return tx, nil
}

// RemoveTransaction deletes the transaction with the given id from the
// bucket whose week contains targetWeek. An unknown id or an unmatched week
// is a silent no-op.
func (s *LedgerService) RemoveTransaction(ctx context.Context, txID string, targetWeek time.Time) {
	s.ledger = s.ledger.Remove(txID, targetWeek, s.now())
	s.save(ctx)

	s.logger.InfoContext(ctx, "Transaction removed",
		applog.FieldTransactionID, txID,
		applog.FieldWeekStart, core.WeekStart(targetWeek))
}

// ShowPreviousWeeks reports the persisted display preference.
func (s *LedgerService) ShowPreviousWeeks() bool {
	return s.showPrevious
}

// SetShowPreviousWeeks updates and persists the display preference.
func (s *LedgerService) SetShowPreviousWeeks(ctx context.Context, show bool) {
	s.showPrevious = show
	if err := s.store.Set(ctx, storage.KeyShowPreviousWeeks, strconv.FormatBool(show)); err != nil {
		s.logger.WarnContext(ctx, "Failed to persist display preference",
			applog.FieldError, err)
	}
}

func (s *LedgerService) save(ctx context.Context) {
	blob, err := core.EncodeLedger(s.ledger)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to encode ledger", applog.FieldError, err)
		return
	}
	if err := s.store.Set(ctx, storage.KeyLedger, blob); err != nil {
		// The in-memory snapshot stays authoritative; the next successful
		// save writes the full current state.
		s.logger.WarnContext(ctx, "Failed to persist ledger", applog.FieldError, err)
	}
}

// Close releases the underlying store.
func (s *LedgerService) Close() error {
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			return fmt.Errorf("close store: %w", err)
		}
	}
	return nil
}
