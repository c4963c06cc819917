package models

import "time"

// ResourceLimit describes one fixed-window quota check.
type ResourceLimit struct {
	// ResourceName is the limited entity, e.g. a skill user id.
	ResourceName string
	// LimiterGroupName namespaces the counter key.
	LimiterGroupName string
	Window           time.Duration
	// MaxQuota <= 0 disables the limit.
	MaxQuota int
}

type ResourceLimitDecision struct {
	Allowed    bool
	RetryAfter time.Duration
}
