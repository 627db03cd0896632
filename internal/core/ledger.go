package core

import "time"

// The bucketing policy. Exactly one bucket represents the week containing
// "now"; every mutation returns a new Ledger snapshot and rebuilds only the
// bucket it touched.

// NewLedger returns an empty ledger whose current bucket covers the week
// containing now.
func NewLedger(now time.Time) Ledger {
	return Ledger{CurrentWeek: RebuildBucket(WeekStart(now), nil, now)}
}

// DailyTotal sums the amounts of the transactions whose timestamp falls on
// the same calendar date as date. Empty input yields zero.
func DailyTotal(transactions []Transaction, date time.Time) Money {
	var total Money
	for _, tx := range transactions {
		if SameDay(tx.Timestamp, date) {
			total = total.Add(tx.Amount)
		}
	}
	return total
}

// WeeklyTotal sums the amounts of the transactions whose timestamp falls
// within the week starting at weekStart, both bounds inclusive.
func WeeklyTotal(transactions []Transaction, weekStart time.Time) Money {
	ws := WeekStart(weekStart)
	we := WeekEnd(ws)
	var total Money
	for _, tx := range transactions {
		if !tx.Timestamp.Before(ws) && !tx.Timestamp.After(we) {
			total = total.Add(tx.Amount)
		}
	}
	return total
}

// RebuildBucket constructs a bucket for the week starting at weekStart with
// freshly derived totals. The daily total is computed against now, not
// against the bucket's own week: on an archived bucket it decays to zero
// once its week has passed. That matches how the totals are displayed (only
// the active bucket ever shows a daily figure) and is kept as-is.
func RebuildBucket(weekStart time.Time, transactions []Transaction, now time.Time) WeekBucket {
	ws := WeekStart(weekStart)
	return WeekBucket{
		WeekStart:    ws,
		Transactions: transactions,
		DailyTotal:   DailyTotal(transactions, now),
		WeeklyTotal:  WeeklyTotal(transactions, ws),
	}
}

// Add records tx into the ledger and returns the updated snapshot.
//
// When tx falls in the same week as the current bucket it is appended
// there. Otherwise the real-world week has advanced: the old current bucket
// is archived (appended after any existing previous weeks) and a fresh
// bucket for tx's week becomes current, holding only tx.
//
// The caller is expected to have validated tx already; Add itself does not
// re-validate.
func (l Ledger) Add(tx Transaction, now time.Time) Ledger {
	if SameWeek(l.CurrentWeek.WeekStart, now) {
		txs := append(append([]Transaction(nil), l.CurrentWeek.Transactions...), tx)
		return Ledger{
			CurrentWeek:   RebuildBucket(l.CurrentWeek.WeekStart, txs, now),
			PreviousWeeks: l.PreviousWeeks,
		}
	}
	archived := append(append([]WeekBucket(nil), l.PreviousWeeks...), l.CurrentWeek)
	return Ledger{
		CurrentWeek:   RebuildBucket(WeekStart(now), []Transaction{tx}, now),
		PreviousWeeks: archived,
	}
}

// Remove filters the transaction with the given id out of the bucket whose
// week contains targetWeek, rebuilds that bucket's totals, and leaves every
// other bucket untouched. An unknown id, or a target week with no bucket,
// is a no-op. Buckets are never dropped, even when they end up empty.
func (l Ledger) Remove(id string, targetWeek, now time.Time) Ledger {
	target := WeekStart(targetWeek)

	if l.CurrentWeek.WeekStart.Equal(target) {
		return Ledger{
			CurrentWeek:   removeFromBucket(l.CurrentWeek, id, now),
			PreviousWeeks: l.PreviousWeeks,
		}
	}

	for i, b := range l.PreviousWeeks {
		if !b.WeekStart.Equal(target) {
			continue
		}
		previous := append([]WeekBucket(nil), l.PreviousWeeks...)
		previous[i] = removeFromBucket(b, id, now)
		return Ledger{CurrentWeek: l.CurrentWeek, PreviousWeeks: previous}
	}

	return l
}

func removeFromBucket(b WeekBucket, id string, now time.Time) WeekBucket {
	if !b.Contains(id) {
		return b
	}
	kept := make([]Transaction, 0, len(b.Transactions)-1)
	for _, tx := range b.Transactions {
		if tx.ID != id {
			kept = append(kept, tx)
		}
	}
	return RebuildBucket(b.WeekStart, kept, now)
}
