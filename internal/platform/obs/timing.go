package obs

import (
	"context"
	"log"
	"time"
)

// Time logs the duration of op when the returned func is deferred.
// Pass the address of the caller's named error to log failures.
func Time(ctx context.Context, op string) func(errp *error) {
	start := time.Now()

	reqID := RequestID(ctx)

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			log.Printf("req_id=%s op=%s dur=%dms err=%v", reqID, op, dur.Milliseconds(), *errp)
			return
		}
		log.Printf("req_id=%s op=%s dur=%dms", reqID, op, dur.Milliseconds())
	}
}
