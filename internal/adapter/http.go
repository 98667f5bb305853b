package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-feed/internal/config"
	"github.com/MKhiriev/go-feed/internal/logger"
	"github.com/MKhiriev/go-feed/internal/utils"
	"github.com/MKhiriev/go-feed/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from cfg.ServerAddress and
// configures the underlying HTTP client with the resolved base URL and
// request timeout.
//
// Returns an error if cfg.ServerAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(cfg config.ClientConfig, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Signup implements [ServerAdapter]. It POSTs the credentials to
// POST /auth/signup.
func (h *httpServerAdapter) Signup(ctx context.Context, creds models.Credentials) (models.SignupResponse, error) {
	var created models.SignupResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		SetResult(&created).
		Post("/auth/signup")
	if err != nil {
		return models.SignupResponse{}, fmt.Errorf("signup request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SignupResponse{}, err
	}

	return created, nil
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /auth/login. The token is taken from the Authorization response header
// and falls back to the body when the header is absent.
func (h *httpServerAdapter) Login(ctx context.Context, creds models.Credentials) (models.LoginResponse, error) {
	var login models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		SetResult(&login).
		Post("/auth/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	token := login.Token
	if header := resp.Header().Get("Authorization"); header != "" {
		token, err = utils.ParseBearerToken(header)
		if err != nil {
			return models.LoginResponse{}, fmt.Errorf("login parse bearer token: %w", err)
		}
	}
	if token == "" {
		return models.LoginResponse{}, fmt.Errorf("login: server returned no token")
	}

	login.Token = token
	h.SetToken(token)
	h.logger.Debug().Time("expires_at", login.ExpiresAt).Msg("logged in")

	return login, nil
}

// Me implements [ServerAdapter]. It GETs /auth/me.
func (h *httpServerAdapter) Me(ctx context.Context) (models.Identity, error) {
	var identity models.Identity

	resp, err := h.authedRequest(ctx).
		SetResult(&identity).
		Get("/auth/me")
	if err != nil {
		return models.Identity{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Identity{}, err
	}

	return identity, nil
}

// CreatePost implements [ServerAdapter]. It POSTs req to /posts.
func (h *httpServerAdapter) CreatePost(ctx context.Context, req models.CreatePostRequest) (models.PostResponse, error) {
	var post models.PostResponse

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&post).
		Post("/posts")
	if err != nil {
		return models.PostResponse{}, fmt.Errorf("create post request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PostResponse{}, err
	}

	return post, nil
}

// Timeline implements [ServerAdapter]. It GETs /timeline with the limit and
// cursor query parameters of req; zero values are omitted.
func (h *httpServerAdapter) Timeline(ctx context.Context, req models.TimelineRequest) (models.TimelineResponse, error) {
	return h.page(ctx, "/timeline", req)
}

// UserPosts implements [ServerAdapter]. It GETs /users/{userID}/posts.
func (h *httpServerAdapter) UserPosts(ctx context.Context, userID int64, req models.TimelineRequest) (models.TimelineResponse, error) {
	return h.page(ctx, "/users/"+strconv.FormatInt(userID, 10)+"/posts", req)
}

// Health implements [ServerAdapter]. It GETs /health without a token.
func (h *httpServerAdapter) Health(ctx context.Context) (models.HealthResponse, error) {
	var health models.HealthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&health).
		Get("/health")
	if err != nil {
		return models.HealthResponse{}, fmt.Errorf("health request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HealthResponse{}, err
	}

	return health, nil
}

func (h *httpServerAdapter) page(ctx context.Context, path string, req models.TimelineRequest) (models.TimelineResponse, error) {
	var page models.TimelineResponse

	r := h.authedRequest(ctx).SetResult(&page)
	if req.Limit > 0 {
		r.SetQueryParam("limit", strconv.Itoa(req.Limit))
	}
	if req.Cursor != "" {
		r.SetQueryParam("cursor", req.Cursor)
	}

	resp, err := r.Get(path)
	if err != nil {
		return models.TimelineResponse{}, fmt.Errorf("timeline request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TimelineResponse{}, err
	}

	return page, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
