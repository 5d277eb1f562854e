package siteforge

import (
	"context"
	"fmt"
	"net/http"
	"net/mail"
	"regexp"
)

const (
	authSignIn  = "/auth/sign-in"
	authSession = "/auth/session"
	authSignOut = "/auth/sign-out"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func validEmail(email string) bool {
	if email == "" {
		return false
	}
	// mail.ParseAddress implements RFC 5322, which allows shapes like
	// example@value. the regexp is a fail safe on top of it.
	if _, err := mail.ParseAddress(email); err != nil {
		return false
	}
	return emailRegex.MatchString(email)
}

// SignIn authenticates against the SiteForge API and stores the
// returned session token for subsequent calls. The token is treated as
// an opaque credential and never inspected client-side.
func (c *Client) SignIn(ctx context.Context, email, password string) error {
	if !validEmail(email) {
		return ErrInvalidEmail
	}

	var result SignInResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(&SignInRequest{Email: email, Password: password}).
		SetSuccessResult(&result).
		SetErrorResult(&APIError{}).
		Post(authSignIn)

	if err := checkStatus(resp, err, http.StatusOK, "auth sign in"); err != nil {
		return err
	}

	if result.SessionToken == "" {
		return fmt.Errorf("auth sign in: server returned no session token")
	}

	c.setSession(result.SessionToken, result.TeamID)
	c.log.Info("signed in", "team", result.TeamID)
	return nil
}

// Authenticate verifies the current session and returns the account
// bound to it.
func (c *Client) Authenticate(ctx context.Context) (*Account, error) {
	r, err := c.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	var account Account
	resp, err := r.
		SetSuccessResult(&account).
		SetErrorResult(&APIError{}).
		Get(authSession)

	if err := checkStatus(resp, err, http.StatusOK, "auth session"); err != nil {
		return nil, err
	}

	return &account, nil
}

// SignOut invalidates the session on the server and clears the local
// token. Any operation after SignOut fails with ErrNoSession.
func (c *Client) SignOut(ctx context.Context) error {
	r, err := c.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := r.
		SetErrorResult(&APIError{}).
		Post(authSignOut)

	if err := checkStatus(resp, err, http.StatusOK, "auth sign out"); err != nil {
		return err
	}

	c.clearSession()
	c.log.Info("signed out")
	return nil
}
