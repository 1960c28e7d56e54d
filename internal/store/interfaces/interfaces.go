package interfaces

import "funneld/internal/models"

// SubscriberStoreInterface is the append-only lead store. The intake
// endpoint is the sole writer; rows are never mutated or removed.
type SubscriberStoreInterface interface {
	Append(rec *models.SubscriptionRecord) error
	RowCount() int64
	Restore() error
	Path() string
}

type CompressorInterface interface {
	Compress(val []byte) ([]byte, error)
	Decompress(val []byte) ([]byte, error)
	Close()
}

type SchedulerInterface interface {
	Init()
	Stop()
	Restore() error
	Persist() error
}
