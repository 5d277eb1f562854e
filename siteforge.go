// Package siteforge is a Go client for the SiteForge hosting API: an
// object-storage-backed website hosting service with session-based
// authentication, file uploads, deletes and directory listings.
package siteforge

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/imroc/req/v3"
)

const (
	HeaderSessionToken  = "X-Session-Token"
	HeaderClientVersion = "X-Siteforge-Version"
	HeaderRequestID     = "X-Request-Id"
)

// Client is the main entry point for the SiteForge API. All file
// operations require an active session established with SignIn.
type Client struct {
	http *req.Client
	log  *slog.Logger

	mu      sync.Mutex
	session string
	teamID  string

	Files *FilesAPI
}

// New creates a new SiteForge client.
func New(cfg *Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	httpClient := req.C().
		SetBaseURL(cfg.BaseURL).
		SetUserAgent(userAgent).
		SetCommonHeader(HeaderClientVersion, Version).
		SetJsonMarshal(jsonMarshal).
		SetJsonUnmarshal(jsonUnmarshal)

	httpClient.OnBeforeRequest(func(_ *req.Client, r *req.Request) error {
		r.SetHeader(HeaderRequestID, uuid.NewString())
		logger.Debug("http request", "method", r.Method, "url", r.RawURL)
		return nil
	})

	httpClient.OnAfterResponse(func(_ *req.Client, resp *req.Response) error {
		if resp.Err != nil || resp.Response == nil {
			return nil
		}
		logger.Debug("http response",
			"method", resp.Request.Method,
			"url", resp.Request.RawURL,
			"status", resp.StatusCode,
			"duration", resp.TotalTime())
		return nil
	})

	c := &Client{
		http: httpClient,
		log:  logger,
	}
	c.Files = newFilesAPI(c)

	return c, nil
}

// Close releases idle connections held by the transport.
func (c *Client) Close() {
	c.http.GetClient().CloseIdleConnections()
}

func (c *Client) setSession(token, teamID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session = token
	c.teamID = teamID
}

func (c *Client) clearSession() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session = ""
	c.teamID = ""
}

// sessionView returns the current session credentials, failing fast
// with ErrNoSession when none is active.
func (c *Client) sessionView() (token, teamID string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == "" {
		return "", "", ErrNoSession
	}
	return c.session, c.teamID, nil
}

// authedRequest builds a request carrying the session credentials.
func (c *Client) authedRequest(ctx context.Context) (*req.Request, error) {
	token, teamID, err := c.sessionView()
	if err != nil {
		return nil, err
	}

	r := c.http.R().
		SetContext(ctx).
		SetHeader(HeaderSessionToken, token)
	if teamID != "" {
		r.SetQueryParam("teamId", teamID)
	}

	return r, nil
}
