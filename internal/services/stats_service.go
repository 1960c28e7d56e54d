package services

import (
	"fmt"
	"funneld/internal/models"
	"funneld/internal/structures"
	"math/rand"
	"time"
)

const secondsPerDay = 24 * 60 * 60

type StatsServiceInterface interface {
	Snapshot() *models.StatsSnapshot
}

// StatsService fabricates the page's urgency figures. The countdown is
// real (time to the next calendar day in the configured zone); the
// download and remaining-copies counters are an explicitly simulated
// engagement display, not an inventory.
type StatsService struct {
	conf    *structures.Config
	loc     *time.Location
	clock   Clock
	randInt func(n int) int
}

func NewStatsService(conf *structures.Config, clock Clock) (StatsServiceInterface, error) {
	loc, err := time.LoadLocation(conf.Stats.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid stats timezone %q: %w", conf.Stats.Timezone, err)
	}
	return &StatsService{
		conf:    conf,
		loc:     loc,
		clock:   clock,
		randInt: rand.Intn,
	}, nil
}

func (ss *StatsService) Snapshot() *models.StatsSnapshot {
	now := ss.clock.Now().In(ss.loc)

	deadline := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, ss.loc).AddDate(0, 0, 1)
	left := int(deadline.Sub(now).Seconds())
	if left <= 0 {
		// clock skew or boundary hit: re-arm for a fresh 24h window
		left = secondsPerDay
	}

	hours := left / 3600
	minutes := (left % 3600) / 60
	seconds := left % 60

	// Grows through the day and resets in character at midnight, which
	// passes for a daily reset without any persistence.
	secondsOfDay := now.Hour()*3600 + now.Minute()*60 + now.Second()
	downloads := ss.conf.Stats.BaselineDownloads + secondsOfDay/100

	remaining := ss.conf.Stats.CopiesPool - downloads
	if remaining < ss.conf.Stats.CopiesFloor {
		// restock: the pool never visibly runs out
		span := ss.conf.Stats.RestockMax - ss.conf.Stats.CopiesFloor + 1
		remaining = ss.conf.Stats.CopiesFloor + ss.randInt(span)
	}

	if downloads > ss.conf.Stats.DownloadCap {
		downloads = ss.conf.Stats.DownloadCap
	}

	return &models.StatsSnapshot{
		Success: true,
		Countdown: models.Countdown{
			Hours:        max(0, hours),
			Minutes:      max(0, minutes),
			Seconds:      max(0, seconds),
			TotalSeconds: max(0, left),
		},
		Stats: models.EngagementStats{
			DownloadCount:   downloads,
			RemainingCopies: max(remaining, ss.conf.Stats.CopiesFloor),
			SocialProof: models.SocialProof{
				MonthlyDownloads: ss.conf.Stats.MonthlyDownloads,
				Rating:           ss.conf.Stats.Rating,
			},
		},
		Timestamp: now.Unix(),
		Timezone:  ss.conf.Stats.Timezone,
	}
}
