package models

type Countdown struct {
	Hours        int `json:"hours"`
	Minutes      int `json:"minutes"`
	Seconds      int `json:"seconds"`
	TotalSeconds int `json:"totalSeconds"`
}

// SocialProof holds fixed engagement constants shown on the page.
// These are fabricated display figures, not measurements.
type SocialProof struct {
	MonthlyDownloads int    `json:"monthlyDownloads"`
	Rating           string `json:"rating"`
}

type EngagementStats struct {
	DownloadCount   int         `json:"downloadCount"`
	RemainingCopies int         `json:"remainingCopies"`
	SocialProof     SocialProof `json:"socialProof"`
}

// StatsSnapshot is recomputed from wall-clock time on every request.
// It has no identity beyond the instant of computation.
type StatsSnapshot struct {
	Success   bool            `json:"success"`
	Countdown Countdown       `json:"countdown"`
	Stats     EngagementStats `json:"stats"`
	Timestamp int64           `json:"timestamp"`
	Timezone  string          `json:"timezone"`
}
