package gateway

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

const (
	PathRefresh = "/auth/token/refresh/"

	defaultErrorMessage = "API request failed"
	defaultTimeout      = 15 * time.Second
	headerRequestID     = "X-Request-ID"
)

// ErrSessionExpired dikembalikan kalau refresh gagal. Session sudah dibersihkan.
var ErrSessionExpired = fiber.NewError(fiber.StatusUnauthorized, "Session expired. Please login again.")

var errNoRefreshToken = errors.New("no refresh token available")

// json codec sama dengan encoding/json (map key terurut)
var codec = sonic.ConfigStd

// TokenStore adalah bagian session yang dibutuhkan gateway.
type TokenStore interface {
	AccessToken(ctx context.Context) (string, error)
	RefreshToken(ctx context.Context) (string, error)
	SetAccessToken(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// Request menggantikan "options" bebas: hanya field ini yang dikenali.
type Request struct {
	Method  string
	Path    string
	Body    any
	Headers map[string]string
}

type Gateway struct {
	baseURL string
	client  *http.Client
	tokens  TokenStore
	logger  kitlog.Logger

	refreshGroup singleflight.Group
}

type Option func(*Gateway)

func WithHTTPClient(c *http.Client) Option {
	return func(g *Gateway) {
		if c != nil {
			g.client = c
		}
	}
}

func WithLogger(l kitlog.Logger) Option {
	return func(g *Gateway) {
		if l != nil {
			g.logger = l
		}
	}
}

func New(baseURL string, tokens TokenStore, opts ...Option) *Gateway {
	g := &Gateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: defaultTimeout},
		tokens:  tokens,
		logger:  kitlog.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.logger = kitlog.With(g.logger, "component", "gateway")
	return g
}

/* ==========================
   Authenticated call
========================== */

// Call mengirim request dengan bearer token. Pada 401 dilakukan tepat satu
// refresh; kalau berhasil request diulang sekali dan hasilnya dikembalikan apa adanya.
func (g *Gateway) Call(ctx context.Context, req Request, out any) error {
	body, err := encodeBody(req.Body)
	if err != nil {
		return err
	}

	token, err := g.tokens.AccessToken(ctx)
	if err != nil {
		return fmt.Errorf("gagal membaca access token: %w", err)
	}

	resp, err := g.do(ctx, req, body, token)
	if err != nil {
		return err
	}

	if resp.status == http.StatusUnauthorized {
		level.Info(g.logger).Log("msg", "unauthorized, refreshing token", "method", req.Method, "path", req.Path)

		newToken, rerr := g.refresh(ctx)
		if rerr != nil && ctx.Err() != nil {
			// caller sendiri yang batal; session tidak disentuh
			return rerr
		}
		if rerr != nil {
			level.Warn(g.logger).Log("msg", "refresh failed, session cleared", "err", rerr)
			return ErrSessionExpired
		}
		if resp, err = g.do(ctx, req, body, newToken); err != nil {
			return err
		}
	}

	return handleResponse(resp, out)
}

/* ==========================
   Unauthenticated call (login / register / refresh)
========================== */

func (g *Gateway) Post(ctx context.Context, path string, payload any, out any) error {
	body, err := encodeBody(payload)
	if err != nil {
		return err
	}
	resp, err := g.do(ctx, Request{Method: http.MethodPost, Path: path}, body, "")
	if err != nil {
		return err
	}
	return handleResponse(resp, out)
}

/* ==========================
   Refresh
========================== */

func (g *Gateway) refresh(ctx context.Context) (string, error) {
	// request paralel yang sama-sama kena 401 cukup satu refresh. Refresh jalan
	// di context sendiri, jadi caller yang batal tidak ikut menggagalkan caller lain.
	ch := g.refreshGroup.DoChan("refresh", func() (any, error) {
		rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), g.refreshTimeout())
		defer cancel()
		return g.doRefresh(rctx)
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	}
}

func (g *Gateway) doRefresh(ctx context.Context) (string, error) {
	refresh, err := g.tokens.RefreshToken(ctx)
	if err == nil && refresh == "" {
		err = errNoRefreshToken
	}
	if err != nil {
		g.logout(ctx)
		return "", err
	}

	var out struct {
		Access string `json:"access"`
	}
	if err := g.Post(ctx, PathRefresh, map[string]string{"refresh": refresh}, &out); err != nil {
		g.logout(ctx)
		return "", err
	}
	if out.Access == "" {
		g.logout(ctx)
		return "", errors.New("refresh response has no access token")
	}

	if err := g.tokens.SetAccessToken(ctx, out.Access); err != nil {
		level.Error(g.logger).Log("msg", "persist refreshed token failed", "err", err)
	}
	return out.Access, nil
}

func (g *Gateway) refreshTimeout() time.Duration {
	if g.client.Timeout > 0 {
		return g.client.Timeout
	}
	return defaultTimeout
}

func (g *Gateway) logout(ctx context.Context) {
	if err := g.tokens.Clear(ctx); err != nil {
		level.Error(g.logger).Log("msg", "clear session failed", "err", err)
	}
}

/* ==========================
   Transport
========================== */

type response struct {
	status int
	body   []byte
}

func (g *Gateway) do(ctx context.Context, req Request, body []byte, token string) (*response, error) {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, method, g.baseURL+req.Path, reader)
	if err != nil {
		return nil, fmt.Errorf("gagal membuat request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}
	if token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}
	reqID := uuid.NewString()
	httpReq.Header.Set(headerRequestID, reqID)

	start := time.Now()
	resp, err := g.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("gagal mengirim request %s %s: %w", method, req.Path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("gagal membaca response %s %s: %w", method, req.Path, err)
	}

	level.Debug(g.logger).Log("req_id", reqID, "method", method, "path", req.Path,
		"status", resp.StatusCode, "dur", time.Since(start))

	return &response{status: resp.StatusCode, body: raw}, nil
}

func encodeBody(payload any) ([]byte, error) {
	if payload == nil {
		return nil, nil
	}
	b, err := codec.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("gagal encode body: %w", err)
	}
	return b, nil
}

// handleResponse: 2xx → decode ke out (body kosong boleh),
// selain itu → *fiber.Error dengan pesan server kalau ada.
func handleResponse(resp *response, out any) error {
	if resp.status >= 200 && resp.status < 300 {
		if out == nil || len(bytes.TrimSpace(resp.body)) == 0 {
			return nil
		}
		if err := codec.Unmarshal(resp.body, out); err != nil {
			return fmt.Errorf("response tidak valid: %w", err)
		}
		return nil
	}
	return fiber.NewError(resp.status, errorMessage(resp.body))
}

func errorMessage(body []byte) string {
	var payload map[string]any
	if err := codec.Unmarshal(body, &payload); err != nil {
		return defaultErrorMessage
	}
	for _, key := range []string{"error", "message"} {
		if s, ok := payload[key].(string); ok && s != "" {
			return s
		}
	}
	return defaultErrorMessage
}
