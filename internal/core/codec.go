package core

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Serialized ledger schema. Amounts travel as integer cents and instants as
// RFC 3339 strings with sub-second precision. Decoding is strict: unknown
// fields, missing timestamps, and malformed values are errors rather than
// silently-wrong state.

type (
	transactionDTO struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		AmountCents int64  `json:"amount_cents"`
		Timestamp   string `json:"timestamp"`
	}

	weekBucketDTO struct {
		WeekStart        string           `json:"week_start"`
		Transactions     []transactionDTO `json:"transactions"`
		DailyTotalCents  int64            `json:"daily_total_cents"`
		WeeklyTotalCents int64            `json:"weekly_total_cents"`
	}

	ledgerDTO struct {
		CurrentWeek   weekBucketDTO   `json:"current_week"`
		PreviousWeeks []weekBucketDTO `json:"previous_weeks"`
	}
)

// EncodeLedger serializes the ledger to its persisted JSON form.
func EncodeLedger(l Ledger) (string, error) {
	dto := ledgerDTO{
		CurrentWeek:   bucketToDTO(l.CurrentWeek),
		PreviousWeeks: make([]weekBucketDTO, 0, len(l.PreviousWeeks)),
	}
	for _, b := range l.PreviousWeeks {
		dto.PreviousWeeks = append(dto.PreviousWeeks, bucketToDTO(b))
	}
	data, err := json.Marshal(dto)
	if err != nil {
		return "", fmt.Errorf("marshal ledger: %w", err)
	}
	return string(data), nil
}

// DecodeLedger parses a persisted ledger blob. Malformed input yields an
// error; callers decide whether to fall back to a fresh ledger.
func DecodeLedger(blob string) (Ledger, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(blob)))
	dec.DisallowUnknownFields()

	var dto ledgerDTO
	if err := dec.Decode(&dto); err != nil {
		return Ledger{}, fmt.Errorf("unmarshal ledger: %w", err)
	}

	current, err := bucketFromDTO(dto.CurrentWeek)
	if err != nil {
		return Ledger{}, fmt.Errorf("current week: %w", err)
	}
	previous := make([]WeekBucket, 0, len(dto.PreviousWeeks))
	for i, b := range dto.PreviousWeeks {
		bucket, err := bucketFromDTO(b)
		if err != nil {
			return Ledger{}, fmt.Errorf("previous week %d: %w", i, err)
		}
		previous = append(previous, bucket)
	}
	if len(previous) == 0 {
		previous = nil
	}
	return Ledger{CurrentWeek: current, PreviousWeeks: previous}, nil
}

func bucketToDTO(b WeekBucket) weekBucketDTO {
	dto := weekBucketDTO{
		WeekStart:        b.WeekStart.Format(time.RFC3339Nano),
		Transactions:     make([]transactionDTO, 0, len(b.Transactions)),
		DailyTotalCents:  b.DailyTotal.Cents,
		WeeklyTotalCents: b.WeeklyTotal.Cents,
	}
	for _, tx := range b.Transactions {
		dto.Transactions = append(dto.Transactions, transactionDTO{
			ID:          tx.ID,
			Name:        tx.Name,
			AmountCents: tx.Amount.Cents,
			Timestamp:   tx.Timestamp.Format(time.RFC3339Nano),
		})
	}
	return dto
}

func bucketFromDTO(dto weekBucketDTO) (WeekBucket, error) {
	ws, err := parseInstant(dto.WeekStart, "week_start")
	if err != nil {
		return WeekBucket{}, err
	}
	txs := make([]Transaction, 0, len(dto.Transactions))
	for i, t := range dto.Transactions {
		ts, err := parseInstant(t.Timestamp, "timestamp")
		if err != nil {
			return WeekBucket{}, fmt.Errorf("transaction %d: %w", i, err)
		}
		if t.ID == "" {
			return WeekBucket{}, fmt.Errorf("transaction %d: missing id", i)
		}
		txs = append(txs, Transaction{
			ID:        t.ID,
			Name:      t.Name,
			Amount:    Money{Cents: t.AmountCents},
			Timestamp: ts,
		})
	}
	if len(txs) == 0 {
		txs = nil
	}
	return WeekBucket{
		WeekStart:    ws,
		Transactions: txs,
		DailyTotal:   Money{Cents: dto.DailyTotalCents},
		WeeklyTotal:  Money{Cents: dto.WeeklyTotalCents},
	}, nil
}

func parseInstant(s, field string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("missing %s", field)
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse %s: %w", field, err)
	}
	return t, nil
}
