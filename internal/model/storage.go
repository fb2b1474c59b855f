package model

import (
	"context"
	"time"
)

// ObjectStore is the durable blob-store facade. Save is write-once-per-key in
// intent; rewriting the same key must leave the last write in place.
type ObjectStore interface {
	Save(ctx context.Context, key string, data []byte, contentType string) error
	Available() bool
}

// TransactionRecord captures one request/response pair for durable logging.
// Created once per inbound call, never mutated.
type TransactionRecord struct {
	RequestID string    `json:"request_id"`
	Endpoint  string    `json:"endpoint"`
	Request   any       `json:"request"`
	Response  any       `json:"response"`
	Timestamp time.Time `json:"timestamp"`
}
