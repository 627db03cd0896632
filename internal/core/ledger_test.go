package core

import (
	"testing"
	"time"
)

func tx(id, name string, cents int64, at time.Time) Transaction {
	return Transaction{ID: id, Name: name, Amount: Money{Cents: cents}, Timestamp: at}
}

func TestDailyTotal(t *testing.T) {
	today := date(2025, time.July, 9, 12, 0)
	txs := []Transaction{
		tx("a", "Coffee", 450, date(2025, time.July, 9, 8, 0)),
		tx("b", "Lunch", 1200, date(2025, time.July, 9, 13, 0)),
		tx("c", "Cinema", 1500, date(2025, time.July, 8, 20, 0)),
	}

	if got := DailyTotal(nil, today); got.Cents != 0 {
		t.Fatalf("empty input: got %d, want 0", got.Cents)
	}
	if got := DailyTotal(txs, today); got.Cents != 1650 {
		t.Fatalf("got %d, want 1650", got.Cents)
	}
}

func TestWeeklyTotal(t *testing.T) {
	ws := date(2025, time.July, 7, 0, 0)
	txs := []Transaction{
		tx("a", "On the start instant", 100, ws),
		tx("b", "Midweek", 200, date(2025, time.July, 9, 12, 0)),
		tx("c", "Last millisecond", 300, time.Date(2025, time.July, 13, 23, 59, 59, 999_000_000, time.UTC)),
		tx("d", "Next week", 400, date(2025, time.July, 14, 0, 0)),
		tx("e", "Week before", 500, date(2025, time.July, 6, 12, 0)),
	}

	if got := WeeklyTotal(txs, ws); got.Cents != 600 {
		t.Fatalf("got %d, want 600 (inclusive bounds)", got.Cents)
	}
	// A non-normalized reference date selects the same week.
	if got := WeeklyTotal(txs, date(2025, time.July, 10, 3, 0)); got.Cents != 600 {
		t.Fatalf("non-normalized reference: got %d, want 600", got.Cents)
	}
}

func TestRebuildBucketDailyTotalAgainstNow(t *testing.T) {
	ws := date(2025, time.July, 7, 0, 0)
	txs := []Transaction{
		tx("a", "Coffee", 450, date(2025, time.July, 9, 8, 0)),
		tx("b", "Lunch", 1200, date(2025, time.July, 10, 13, 0)),
	}

	sameDay := RebuildBucket(ws, txs, date(2025, time.July, 9, 18, 0))
	if sameDay.DailyTotal.Cents != 450 {
		t.Fatalf("daily total = %d, want 450", sameDay.DailyTotal.Cents)
	}
	if sameDay.WeeklyTotal.Cents != 1650 {
		t.Fatalf("weekly total = %d, want 1650", sameDay.WeeklyTotal.Cents)
	}

	// Rebuilt after the week has passed, the daily figure decays to zero
	// while the weekly figure is unchanged.
	later := RebuildBucket(ws, txs, date(2025, time.August, 1, 9, 0))
	if later.DailyTotal.Cents != 0 {
		t.Fatalf("historical daily total = %d, want 0", later.DailyTotal.Cents)
	}
	if later.WeeklyTotal.Cents != 1650 {
		t.Fatalf("historical weekly total = %d, want 1650", later.WeeklyTotal.Cents)
	}
}

func TestAddSameWeek(t *testing.T) {
	// Starting from an empty ledger on a Wednesday.
	wed := date(2025, time.July, 9, 10, 0)
	ledger := NewLedger(wed)

	ledger = ledger.Add(tx("t1", "Coffee", 450, wed), wed)
	if n := len(ledger.CurrentWeek.Transactions); n != 1 {
		t.Fatalf("transactions = %d, want 1", n)
	}
	if ledger.CurrentWeek.WeeklyTotal.Cents != 450 || ledger.CurrentWeek.DailyTotal.Cents != 450 {
		t.Fatalf("totals = %v/%v, want 4.50/4.50",
			ledger.CurrentWeek.DailyTotal, ledger.CurrentWeek.WeeklyTotal)
	}

	later := date(2025, time.July, 9, 13, 0)
	ledger = ledger.Add(tx("t2", "Lunch", 1200, later), later)
	if n := len(ledger.CurrentWeek.Transactions); n != 2 {
		t.Fatalf("transactions = %d, want 2", n)
	}
	if ledger.CurrentWeek.Transactions[0].Name != "Coffee" || ledger.CurrentWeek.Transactions[1].Name != "Lunch" {
		t.Fatal("insertion order not preserved")
	}
	if ledger.CurrentWeek.WeeklyTotal.Cents != 1650 {
		t.Fatalf("weekly total = %d, want 1650", ledger.CurrentWeek.WeeklyTotal.Cents)
	}
	if len(ledger.PreviousWeeks) != 0 {
		t.Fatal("same-week add must not touch previous weeks")
	}
}

func TestAddRotatesStaleCurrentWeek(t *testing.T) {
	// Current bucket is a Monday three weeks in the past.
	old := date(2025, time.June, 16, 9, 0)
	ledger := NewLedger(old)
	ledger = ledger.Add(tx("t1", "Groceries", 3000, old), old)

	today := date(2025, time.July, 9, 10, 0)
	ledger = ledger.Add(tx("t2", "Coffee", 450, today), today)

	if n := len(ledger.PreviousWeeks); n != 1 {
		t.Fatalf("previous weeks = %d, want 1", n)
	}
	archived := ledger.PreviousWeeks[0]
	if !archived.WeekStart.Equal(date(2025, time.June, 16, 0, 0)) {
		t.Fatalf("archived week start = %v", archived.WeekStart)
	}
	if archived.WeeklyTotal.Cents != 3000 {
		t.Fatalf("archived weekly total = %d, want 3000", archived.WeeklyTotal.Cents)
	}
	if !ledger.CurrentWeek.WeekStart.Equal(WeekStart(today)) {
		t.Fatalf("current week start = %v, want %v", ledger.CurrentWeek.WeekStart, WeekStart(today))
	}
	if n := len(ledger.CurrentWeek.Transactions); n != 1 {
		t.Fatalf("fresh current week holds %d transactions, want 1", n)
	}
	if ledger.CurrentWeek.Transactions[0].ID != "t2" {
		t.Fatal("fresh current week must hold only the new transaction")
	}
}

func TestRotationAppendsAfterExistingHistory(t *testing.T) {
	w1 := date(2025, time.June, 2, 9, 0)
	w2 := date(2025, time.June, 16, 9, 0)
	w3 := date(2025, time.July, 9, 9, 0)

	ledger := NewLedger(w1)
	ledger = ledger.Add(tx("a", "First", 100, w1), w1)
	ledger = ledger.Add(tx("b", "Second", 200, w2), w2)
	ledger = ledger.Add(tx("c", "Third", 300, w3), w3)

	if n := len(ledger.PreviousWeeks); n != 2 {
		t.Fatalf("previous weeks = %d, want 2", n)
	}
	if !ledger.PreviousWeeks[0].WeekStart.Equal(WeekStart(w1)) {
		t.Fatal("oldest archived week must stay first")
	}
	if !ledger.PreviousWeeks[1].WeekStart.Equal(WeekStart(w2)) {
		t.Fatal("newest archived week must be appended last")
	}
}

func TestRemoveTargetsOnlyMatchingBucket(t *testing.T) {
	w1 := date(2025, time.June, 16, 9, 0)
	w2 := date(2025, time.July, 9, 9, 0)

	ledger := NewLedger(w1)
	ledger = ledger.Add(tx("a", "Groceries", 3000, w1), w1)
	ledger = ledger.Add(tx("b", "Petrol", 2000, w1.Add(time.Hour)), w1.Add(time.Hour))
	ledger = ledger.Add(tx("c", "Coffee", 450, w2), w2)

	// Remove from the archived week; any date inside it targets its bucket.
	now := date(2025, time.July, 9, 12, 0)
	ledger = ledger.Remove("a", date(2025, time.June, 19, 0, 0), now)

	archived := ledger.PreviousWeeks[0]
	if n := len(archived.Transactions); n != 1 {
		t.Fatalf("archived transactions = %d, want 1", n)
	}
	if archived.Transactions[0].ID != "b" {
		t.Fatal("wrong transaction removed")
	}
	if archived.WeeklyTotal.Cents != 2000 {
		t.Fatalf("archived weekly total = %d, want 2000", archived.WeeklyTotal.Cents)
	}
	// Current week untouched.
	if n := len(ledger.CurrentWeek.Transactions); n != 1 || ledger.CurrentWeek.WeeklyTotal.Cents != 450 {
		t.Fatalf("current week changed: %d transactions, total %d", n, ledger.CurrentWeek.WeeklyTotal.Cents)
	}
}

func TestRemoveUnknownIDIsNoOp(t *testing.T) {
	w := date(2025, time.July, 9, 9, 0)
	ledger := NewLedger(w)
	ledger = ledger.Add(tx("a", "Coffee", 450, w), w)

	after := ledger.Remove("missing", w, w)
	if len(after.CurrentWeek.Transactions) != 1 || after.CurrentWeek.WeeklyTotal.Cents != 450 {
		t.Fatal("removing an unknown id must change nothing")
	}

	// A target week with no bucket at all is also a no-op.
	after = ledger.Remove("a", date(2020, time.March, 2, 0, 0), w)
	if len(after.CurrentWeek.Transactions) != 1 {
		t.Fatal("removing against an unmatched week must change nothing")
	}
}

func TestRemoveLastTransactionKeepsBucket(t *testing.T) {
	w := date(2025, time.July, 9, 9, 0)
	ledger := NewLedger(w)
	ledger = ledger.Add(tx("a", "Coffee", 450, w), w)
	ledger = ledger.Add(tx("b", "Next week", 100, date(2025, time.July, 16, 9, 0)), date(2025, time.July, 16, 9, 0))

	now := date(2025, time.July, 16, 10, 0)
	ledger = ledger.Remove("a", w, now)

	if n := len(ledger.PreviousWeeks); n != 1 {
		t.Fatalf("previous weeks = %d, want 1 (buckets are never dropped)", n)
	}
	empty := ledger.PreviousWeeks[0]
	if len(empty.Transactions) != 0 || empty.WeeklyTotal.Cents != 0 {
		t.Fatalf("emptied bucket: %d transactions, total %d", len(empty.Transactions), empty.WeeklyTotal.Cents)
	}
}

func TestMutationsDoNotAliasInputSlices(t *testing.T) {
	w := date(2025, time.July, 9, 9, 0)
	ledger := NewLedger(w)
	ledger = ledger.Add(tx("a", "Coffee", 450, w), w)

	snapshot := ledger
	_ = ledger.Add(tx("b", "Lunch", 1200, w.Add(time.Hour)), w.Add(time.Hour))

	if n := len(snapshot.CurrentWeek.Transactions); n != 1 {
		t.Fatalf("earlier snapshot mutated: %d transactions", n)
	}
}
