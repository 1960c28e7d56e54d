package store

import (
	"funneld/internal/providers"
	"funneld/internal/store/interfaces"
	"os"
)

// BackupManager snapshots the CSV store into a compressed sidecar file.
// Backups are additive; the live store itself is never rewritten.
type BackupManager struct {
	store      interfaces.SubscriberStoreInterface
	compressor interfaces.CompressorInterface
	logger     providers.Logger
}

func NewBackupManager(store interfaces.SubscriberStoreInterface, compressor interfaces.CompressorInterface, logger providers.Logger) *BackupManager {
	return &BackupManager{
		store:      store,
		compressor: compressor,
		logger:     logger,
	}
}

func (b *BackupManager) SaveToFile(fileName string) error {
	raw, err := os.ReadFile(b.store.Path())
	if err != nil {
		if os.IsNotExist(err) {
			// nothing accepted yet, nothing to back up
			return nil
		}
		return err
	}

	data, err := b.compressor.Compress(raw)
	if err != nil {
		return err
	}

	tmpFile := fileName + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	_, err = file.Write(data)
	if err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, fileName)
}

func (b *BackupManager) Close() {
	b.compressor.Close()
}
