// Package auth keeps the platform bearer credential in the system keyring.
package auth

import (
	"errors"

	"github.com/tubevault/tubevault/constant"
	"github.com/zalando/go-keyring"
	"golang.org/x/oauth2"
)

const user = "youtube-token"

// SetToken persists the bearer token.
func SetToken(token string) error {
	return keyring.Set(constant.Tubevault, user, token)
}

// GetToken retrieves the bearer token.
func GetToken() (string, error) {
	return keyring.Get(constant.Tubevault, user)
}

// DeleteToken removes the bearer token. Removing a missing token is not an error.
func DeleteToken() error {
	if err := keyring.Delete(constant.Tubevault, user); err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return err
	}
	return nil
}

// HasToken reports whether a token is stored.
func HasToken() bool {
	token, err := GetToken()
	return err == nil && token != ""
}

// TokenSource returns a source for the stored token, or nil when there is none.
func TokenSource() oauth2.TokenSource {
	token, err := GetToken()
	if err != nil || token == "" {
		return nil
	}

	return oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: token,
		TokenType:   "Bearer",
	})
}
