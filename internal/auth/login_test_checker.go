package auth

import "context"

// LoginTestChecker is a Checker for unit tests, mapping tokens
// straight to user ids.
type LoginTestChecker struct {
	LoggedSessions map[string]int
}

func NewLoginTestChecker() *LoginTestChecker {
	return &LoginTestChecker{
		LoggedSessions: map[string]int{},
	}
}

func (c *LoginTestChecker) IsLogged(_ context.Context, token string) (int, bool, error) {
	userID, ok := c.LoggedSessions[token]
	if !ok {
		return 0, false, nil
	}
	return userID, true, nil
}
