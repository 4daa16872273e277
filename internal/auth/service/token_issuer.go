package service

import "github.com/KarimovRD/fullstack-todo/backend/internal/common/constants"

// TokenIssuer derives a bearer token from the username: the username
// reversed rune-wise with a fixed suffix appended ("alice" -> "ecila_token").
// The scheme is deliberately guessable and not a security mechanism.
type TokenIssuer struct {
	suffix string
}

func NewTokenIssuer() *TokenIssuer {
	return &TokenIssuer{suffix: constants.TokenSuffix}
}

func (ti *TokenIssuer) Issue(username string) string {
	return reverse(username) + ti.suffix
}

func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
