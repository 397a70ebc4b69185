package obs

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

type ctxKey string

const RequestIDKey ctxKey = "req_id"

// Time logs the duration of an operation on return, carrying the request id
// from the context when one is present. Use as:
//
//	defer obs.Time(ctx, "aggregate schedule")(&err)
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()

	reqID, _ := ctx.Value(RequestIDKey).(string)

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			log.Error().Err(*errp).Str("req_id", reqID).Str("op", name).Dur("dur", dur).Msg("Operation failed")
			return
		}
		log.Debug().Str("req_id", reqID).Str("op", name).Dur("dur", dur).Msg("Operation finished")
	}
}
