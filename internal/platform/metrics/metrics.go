package metrics

import (
	"sync/atomic"
	"time"
)

type Collector struct {
	totalRequests     uint64
	errorRequests     uint64
	rateLimited       uint64
	totalDurationMs   uint64
	submissionsOK     uint64
	submissionsFailed uint64
	validationRejects uint64
}

func New() *Collector {
	return &Collector{}
}

func (c *Collector) Record(status int, duration time.Duration) {
	atomic.AddUint64(&c.totalRequests, 1)
	if status >= 500 {
		atomic.AddUint64(&c.errorRequests, 1)
	}
	if status == 429 {
		atomic.AddUint64(&c.rateLimited, 1)
	}
	atomic.AddUint64(&c.totalDurationMs, uint64(duration.Milliseconds()))
}

// Submission outcomes of the registration form.
const (
	SubmissionSucceeded = "succeeded"
	SubmissionFailed    = "failed"
	SubmissionRejected  = "rejected"
)

func (c *Collector) RecordSubmission(outcome string) {
	if c == nil {
		return
	}
	switch outcome {
	case SubmissionSucceeded:
		atomic.AddUint64(&c.submissionsOK, 1)
	case SubmissionFailed:
		atomic.AddUint64(&c.submissionsFailed, 1)
	case SubmissionRejected:
		atomic.AddUint64(&c.validationRejects, 1)
	}
}

func (c *Collector) Snapshot() map[string]any {
	total := atomic.LoadUint64(&c.totalRequests)
	totalMs := atomic.LoadUint64(&c.totalDurationMs)
	avg := float64(0)
	if total > 0 {
		avg = float64(totalMs) / float64(total)
	}
	return map[string]any{
		"requestsTotal":        total,
		"errorsTotal":          atomic.LoadUint64(&c.errorRequests),
		"rateLimitedTotal":     atomic.LoadUint64(&c.rateLimited),
		"avgDurationMs":        avg,
		"totalDurationMs":      totalMs,
		"submissionsSucceeded": atomic.LoadUint64(&c.submissionsOK),
		"submissionsFailed":    atomic.LoadUint64(&c.submissionsFailed),
		"submissionsRejected":  atomic.LoadUint64(&c.validationRejects),
	}
}
