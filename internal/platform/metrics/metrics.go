package metrics

import (
	"sync"
	"sync/atomic"
	"time"
)

type Collector struct {
	totalRequests   uint64
	errorRequests   uint64
	rateLimited     uint64
	totalDurationMs uint64
	emailsSent      uint64
	emailsFailed    uint64
	uploads         uint64

	mu        sync.Mutex
	documents map[string]uint64
}

func New() *Collector {
	return &Collector{documents: map[string]uint64{}}
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

func (c *Collector) RecordDocument(format string) {
	c.mu.Lock()
	c.documents[format]++
	c.mu.Unlock()
}

func (c *Collector) RecordEmail(succeeded bool) {
	if succeeded {
		atomic.AddUint64(&c.emailsSent, 1)
		return
	}
	atomic.AddUint64(&c.emailsFailed, 1)
}

func (c *Collector) RecordUpload() {
	atomic.AddUint64(&c.uploads, 1)
}

func (c *Collector) Snapshot() map[string]any {
	total := atomic.LoadUint64(&c.totalRequests)
	errs := atomic.LoadUint64(&c.errorRequests)
	limited := atomic.LoadUint64(&c.rateLimited)
	totalMs := atomic.LoadUint64(&c.totalDurationMs)
	avg := float64(0)
	if total > 0 {
		avg = float64(totalMs) / float64(total)
	}

	c.mu.Lock()
	docs := make(map[string]uint64, len(c.documents))
	for k, v := range c.documents {
		docs[k] = v
	}
	c.mu.Unlock()

	return map[string]any{
		"requestsTotal":     total,
		"errorsTotal":       errs,
		"rateLimitedTotal":  limited,
		"avgDurationMs":     avg,
		"totalDurationMs":   totalMs,
		"uploadsTotal":      atomic.LoadUint64(&c.uploads),
		"documentsRendered": docs,
		"emailsSent":        atomic.LoadUint64(&c.emailsSent),
		"emailsFailed":      atomic.LoadUint64(&c.emailsFailed),
	}
}
