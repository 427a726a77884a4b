package utils

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const requestIDKey ctxKey = "rqID"

// WithRequestID tags ctx with a fresh id so every log line of one run can be
// correlated.
func WithRequestID(ctx context.Context) context.Context {
	return context.WithValue(ctx, requestIDKey, uuid.NewString())
}

func GetRequestIDFromCtx(ctx context.Context) string {
	rqID, _ := ctx.Value(requestIDKey).(string)
	return rqID
}
