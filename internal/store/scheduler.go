package store

import (
	"funneld/internal/providers"
	"funneld/internal/store/interfaces"
	"funneld/internal/structures"
	"sync"
	"time"

	"github.com/roylee0704/gron"
)

type Scheduler struct {
	config *structures.Config
	logger providers.Logger
	store  interfaces.SubscriberStoreInterface
	backup *BackupManager
	cron   *gron.Cron
	opsMu  sync.Mutex
}

func (s *Scheduler) backupPath() string {
	return s.store.Path() + ".zst"
}

func (s *Scheduler) Init() {
	s.cron = gron.New()
	interval := time.Duration(s.config.Store.BackupInterval) * time.Second

	s.cron.AddFunc(gron.Every(interval), func() {
		s.opsMu.Lock()
		defer s.opsMu.Unlock()

		err := s.backup.SaveToFile(s.backupPath())
		if err != nil {
			s.logger.Errorf(providers.TypeApp, "Error while backing up store: %s", err)
			return
		}
		s.logger.Infof(providers.TypeApp, "Store backed up to %s", s.backupPath())
	})

	s.cron.Start()
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// Restore rescans the store at boot so row counts survive restarts.
func (s *Scheduler) Restore() error {
	return s.store.Restore()
}

// Persist takes a final backup during graceful shutdown.
func (s *Scheduler) Persist() error {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	s.logger.Infof(providers.TypeApp, "Backing up store before shutdown...")
	err := s.backup.SaveToFile(s.backupPath())
	if err != nil {
		s.logger.Errorf(providers.TypeApp, "Error while backing up store: %s", err)
		return err
	}
	return nil
}

func NewScheduler(config *structures.Config, logger providers.Logger, store interfaces.SubscriberStoreInterface, backup *BackupManager) interfaces.SchedulerInterface {
	return &Scheduler{
		config: config,
		logger: logger,
		store:  store,
		backup: backup,
	}
}
