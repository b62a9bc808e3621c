package auth

import "context"

type ctxKey string

const userIDCtxKey ctxKey = "userID"

func ContextWithUserID(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, userIDCtxKey, userID)
}

// UserIDFromContext returns the logged-in user set by the auth
// middleware. Handlers treat a missing value as unauthorized.
func UserIDFromContext(ctx context.Context) (int, bool) {
	userID, ok := ctx.Value(userIDCtxKey).(int)
	return userID, ok
}
