package rivet

import (
	"context"
	"sync"
	"time"
)

type HealthStatus string

const (
	HealthStatusUp   HealthStatus = "up"
	HealthStatusDown HealthStatus = "down"
)

type HealthReport struct {
	Key     string
	Status  HealthStatus
	Error   error
	Latency time.Duration
}

// HealthChecker is implemented by values that can report liveness. Only
// already-held values are checked: registered instances and constructed
// singletons. Health checks never trigger construction.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Live returns an error if any held HealthChecker reports down.
func (c *Container) Live(ctx context.Context) error {
	for _, r := range c.Health(ctx) {
		if r.Status == HealthStatusDown {
			return newError(ErrCodeResolutionFailed, "health check failed", r.Error).WithKey(r.Key)
		}
	}
	return nil
}

// Health runs all held HealthCheckers concurrently and returns their
// reports.
func (c *Container) Health(ctx context.Context) []HealthReport {
	var (
		reports []HealthReport
		mu      sync.Mutex
		wg      sync.WaitGroup
	)

	for _, key := range c.internal.Keys() {
		d, err := c.internal.Lookup(key)
		if err != nil {
			continue
		}

		value, ok := d.Held()
		if !ok {
			continue
		}

		checker, ok := value.(HealthChecker)
		if !ok {
			continue
		}

		wg.Add(1)
		go func(k string, hc HealthChecker) {
			defer wg.Done()

			start := time.Now()
			err := hc.HealthCheck(ctx)

			report := HealthReport{
				Key:     k,
				Status:  HealthStatusUp,
				Latency: time.Since(start),
			}
			if err != nil {
				report.Status = HealthStatusDown
				report.Error = err
			}

			mu.Lock()
			reports = append(reports, report)
			mu.Unlock()
		}(key, checker)
	}

	wg.Wait()
	return reports
}
