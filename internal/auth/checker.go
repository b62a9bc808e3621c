package auth

import "context"

var _ Checker = (*LoginChecker)(nil)
var _ Checker = (*LoginTestChecker)(nil)

type Checker interface {
	// IsLogged resolves the session token to a user id
	IsLogged(ctx context.Context, token string) (userID int, logged bool, err error)
}
