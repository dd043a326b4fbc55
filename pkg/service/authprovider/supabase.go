package authprovider

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/riskboard/pkg/domain/interfaces"
	"github.com/secmon-lab/riskboard/pkg/domain/model"
	"github.com/secmon-lab/riskboard/pkg/utils/safe"
)

// Supabase talks to the GoTrue auth API of a Supabase project
type Supabase struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

var _ interfaces.AuthProvider = &Supabase{}

type SupabaseOption func(*Supabase)

// WithHTTPClient replaces the default client, mainly for tests
func WithHTTPClient(c *http.Client) SupabaseOption {
	return func(s *Supabase) {
		s.httpClient = c
	}
}

func NewSupabase(baseURL, apiKey string, opts ...SupabaseOption) (*Supabase, error) {
	if baseURL == "" {
		return nil, goerr.New("supabase URL is required")
	}
	if apiKey == "" {
		return nil, goerr.New("supabase API key is required")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, goerr.Wrap(err, "invalid supabase URL", goerr.V("url", baseURL))
	}

	s := &Supabase{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

type gotrueCredentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type gotrueUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// gotrueSession covers both shapes of the signup response: a bare user when
// email confirmation is pending, or a session when it is disabled.
type gotrueSession struct {
	AccessToken string      `json:"access_token"`
	User        *gotrueUser `json:"user"`

	ID    string `json:"id"`
	Email string `json:"email"`
}

type gotrueError struct {
	Code    int    `json:"code"`
	Message string `json:"msg"`
	Error   string `json:"error"`
	Desc    string `json:"error_description"`
}

func (s *Supabase) SignUp(ctx context.Context, email, password string) (*model.Identity, error) {
	var resp gotrueSession
	if err := s.post(ctx, "/auth/v1/signup", gotrueCredentials{Email: email, Password: password}, &resp); err != nil {
		return nil, goerr.Wrap(err, "failed to sign up", goerr.V("email", email))
	}

	switch {
	case resp.User != nil && resp.User.ID != "":
		return &model.Identity{ID: resp.User.ID, Email: resp.User.Email}, nil
	case resp.ID != "":
		return &model.Identity{ID: resp.ID, Email: resp.Email}, nil
	default:
		return nil, nil
	}
}

func (s *Supabase) SignIn(ctx context.Context, email, password string) (*model.Session, error) {
	var resp gotrueSession
	if err := s.post(ctx, "/auth/v1/token?grant_type=password", gotrueCredentials{Email: email, Password: password}, &resp); err != nil {
		return nil, goerr.Wrap(err, "failed to sign in", goerr.V("email", email))
	}

	session := &model.Session{AccessToken: resp.AccessToken}
	if resp.User != nil && resp.User.ID != "" {
		session.Identity = &model.Identity{ID: resp.User.ID, Email: resp.User.Email}
	}
	return session, nil
}

func (s *Supabase) post(ctx context.Context, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return goerr.Wrap(err, "failed to marshal request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return goerr.Wrap(err, "failed to create request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return goerr.Wrap(err, "failed to call auth API", goerr.V("path", path))
	}
	defer safe.Close(ctx, resp.Body)

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return goerr.Wrap(err, "failed to read response body")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr gotrueError
		_ = json.Unmarshal(data, &apiErr)
		return goerr.New("auth API returned error",
			goerr.V("status", resp.StatusCode),
			goerr.V("message", apiErr.Message),
			goerr.V("error", apiErr.Error),
			goerr.V("description", apiErr.Desc),
		)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return goerr.Wrap(err, "failed to parse response", goerr.V("path", path))
	}
	return nil
}
