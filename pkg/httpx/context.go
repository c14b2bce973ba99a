package httpx

import "context"

type ctxKey string

const (
	// CtxKeySubject is the identity-provider subject of the caller.
	CtxKeySubject ctxKey = "subject"
	// CtxKeyEmail is the verified email claim of the caller.
	CtxKeyEmail ctxKey = "email"
)

// SubjectFromContext returns the authenticated subject, or "" when the
// request did not pass through AuthnMiddleware.
func SubjectFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeySubject).(string); ok {
		return v
	}
	return ""
}

// EmailFromContext returns the authenticated email claim, or "".
func EmailFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyEmail).(string); ok {
		return v
	}
	return ""
}
