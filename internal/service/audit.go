package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/dtroode/aigate/internal/logger"
	"github.com/dtroode/aigate/internal/model"
)

const persistTimeout = 10 * time.Second

// Audit persists transaction records and uploaded inputs to the object store.
// Writes are scheduled off the response path; failures are logged and dropped
// by design, never retried and never surfaced to the caller.
type Audit struct {
	store  model.ObjectStore
	logger *logger.Logger
	wg     sync.WaitGroup

	// now is swappable for tests that pin the key date.
	now func() time.Time
}

// NewAudit creates the audit service.
func NewAudit(store model.ObjectStore, logger *logger.Logger) *Audit {
	return &Audit{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// TransactionKey derives the deterministic storage key for a request id at
// the given time. Retried writes of the same transaction land on one key.
func TransactionKey(requestID string, at time.Time) string {
	return fmt.Sprintf("logs/%s/%s.json", at.UTC().Format("20060102"), requestID)
}

// InputKey derives the storage key for an uploaded input file.
func InputKey(filename string, at time.Time) string {
	return fmt.Sprintf("inputs/%s_%s", at.UTC().Format("20060102_150405"), filename)
}

// RecordTransaction schedules a durable write of the request/response pair.
// It returns immediately; the write runs detached with its own deadline.
func (a *Audit) RecordTransaction(requestID, endpoint string, request, response any) {
	now := a.now().UTC()
	record := model.TransactionRecord{
		RequestID: requestID,
		Endpoint:  endpoint,
		Request:   request,
		Response:  response,
		Timestamp: now,
	}

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.persistTransaction(record)
	}()
}

// StoreInput schedules a durable write of an uploaded input file under a
// timestamp-prefixed key with the caller-declared content type.
func (a *Audit) StoreInput(filename string, data []byte, contentType string) {
	key := InputKey(filename, a.now())

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()

		if err := a.store.Save(ctx, key, data, contentType); err != nil {
			a.logger.Error("Audit service: failed to store input file", "key", key, "error", err.Error())
			return
		}
		a.logger.Debug("Audit service: stored input file", "key", key)
	}()
}

// Wait blocks until all scheduled writes have finished. Called on shutdown
// and from tests; callers of Record/Store never wait.
func (a *Audit) Wait() {
	a.wg.Wait()
}

func (a *Audit) persistTransaction(record model.TransactionRecord) {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		a.logger.Error("Audit service: failed to marshal transaction record",
			"request_id", record.RequestID,
			"error", err.Error())
		return
	}

	key := TransactionKey(record.RequestID, record.Timestamp)
	if err := a.store.Save(ctx, key, data, "application/json"); err != nil {
		a.logger.Error("Audit service: failed to persist transaction record",
			"request_id", record.RequestID,
			"key", key,
			"error", err.Error())
		return
	}

	a.logger.Debug("Audit service: persisted transaction record", "key", key)
}
