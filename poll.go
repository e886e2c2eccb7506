package vrmodels

import (
	"log/slog"
	"time"
)

// poll turns a non-blocking driver call into a blocking one. It calls op
// until op succeeds or fails with anything other than ErrorLoading, sleeping
// interval between attempts. There is no attempt limit and no deadline;
// callers that need either poll the Async variants themselves.
//
// op must not return a value that needs releasing together with
// ErrorLoading.
func poll[T any](interval time.Duration, log *slog.Logger, resource string, op func() (T, error)) (T, error) {
	for attempt := 1; ; attempt++ {
		v, err := op()
		if !IsLoading(err) {
			if attempt > 1 {
				log.Debug("vrmodels: poll finished", "resource", resource, "attempts", attempt, "err", err)
			}
			return v, err
		}
		time.Sleep(interval)
	}
}
