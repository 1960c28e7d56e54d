package store

import (
	"encoding/csv"
	"fmt"
	"funneld/internal/models"
	"funneld/internal/providers"
	"funneld/internal/store/interfaces"
	"funneld/internal/structures"
	"io"
	"os"
	"sync"

	"go.uber.org/atomic"
)

// CSVStore is the append-only delimited lead store. The file is opened
// per append; the schema header is written iff the file is empty at that
// moment, so it appears exactly once, as the first row. Appends are
// serialized by an in-process mutex; there is no read-modify-write,
// no transaction, and a failed email send never removes a row.
type CSVStore struct {
	path   string
	mu     sync.Mutex
	rows   atomic.Int64
	logger providers.Logger
}

func NewCSVStore(conf *structures.Config, logger providers.Logger) interfaces.SubscriberStoreInterface {
	return &CSVStore{
		path:   conf.Store.FilePath,
		logger: logger,
	}
}

func (s *CSVStore) Path() string {
	return s.path
}

// RowCount returns the number of data rows, header excluded.
func (s *CSVStore) RowCount() int64 {
	return s.rows.Load()
}

func (s *CSVStore) Append(rec *models.SubscriptionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return fmt.Errorf("stat store: %w", err)
	}

	writer := csv.NewWriter(file)
	if info.Size() == 0 {
		if err := writer.Write(models.StoreHeader); err != nil {
			return fmt.Errorf("write store header: %w", err)
		}
	}
	if err := writer.Write(rec.Row()); err != nil {
		return fmt.Errorf("write store record: %w", err)
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush store: %w", err)
	}
	if err := file.Sync(); err != nil {
		return fmt.Errorf("sync store: %w", err)
	}

	s.rows.Inc()
	return nil
}

// Restore rescans the store so the row counter survives restarts. A
// missing file is not an error, the store is created on first write.
func (s *CSVStore) Restore() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.rows.Store(0)
			return nil
		}
		return fmt.Errorf("open store: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	var count int64
	header := true
	for {
		_, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("scan store: %w", err)
		}
		if header {
			header = false
			continue
		}
		count++
	}

	s.rows.Store(count)
	if s.logger != nil {
		s.logger.Infof(providers.TypeApp, "Store restored: %d subscriber(s) in %s", count, s.path)
	}
	return nil
}
