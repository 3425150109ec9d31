// Package webapi is a typed client for the RaceResult web API. Api handles
// the session, authentication and transport; EventApi groups the per-event
// endpoints. Every operation is a single request/response round trip against
// the vendor's REST surface.
package webapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"go-raceresult/pkg/logging"
	"go-raceresult/pkg/rrtypes"
)

const (
	DefaultServer    = "events.raceresult.com"
	DefaultTimeout   = 30 * time.Second
	DefaultUserAgent = "go-raceresult/0.1.0"

	noSession = "0"
)

// Error is a non-200 answer from the API, with the vendor's error message
// unwrapped from the response payload.
type Error struct {
	Message    string
	StatusCode int
}

func (e *Error) Error() string {
	return fmt.Sprintf("raceresult api: %s (status %d)", e.Message, e.StatusCode)
}

// Config controls the transport. The zero value of every field is safe:
// empty Server/Timeout/UserAgent fall back to the defaults, and PlainHTTP
// false means HTTPS.
type Config struct {
	Server    string
	PlainHTTP bool
	Timeout   time.Duration
	UserAgent string
}

func DefaultConfig() Config {
	return Config{
		Server:    DefaultServer,
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
	}
}

type Api struct {
	cfg    Config
	client *resty.Client
	logger *logging.ZapLogger

	mu        sync.Mutex // guards sessionID and loginData
	sessionID string
	loginData url.Values // retained for one re-login retry on 401
}

func New(cfg Config, logger *logging.ZapLogger) *Api {
	if cfg.Server == "" {
		cfg.Server = DefaultServer
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Api{
		cfg:       cfg,
		client:    resty.New().SetTimeout(cfg.Timeout),
		logger:    logger,
		sessionID: noSession,
	}
}

// SessionID returns the current session token.
func (a *Api) SessionID() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.sessionID
}

// IsLoggedIn reports whether a session token is held.
func (a *Api) IsLoggedIn() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.sessionID != noSession && a.sessionID != ""
}

// Event returns the endpoint groups of one event.
func (a *Api) Event(eventID string) *EventApi {
	return newEventApi(a, eventID)
}

func (a *Api) baseURL() string {
	scheme := "https"
	if a.cfg.PlainHTTP {
		scheme = "http"
	}
	return scheme + "://" + a.cfg.Server
}

// buildURL assembles <base>[/_<eventID>]/api/<cmd>?<params>.
func (a *Api) buildURL(eventID, cmd string, params Params) string {
	var b strings.Builder
	b.WriteString(a.baseURL())
	if eventID != "" {
		b.WriteString("/_")
		b.WriteString(eventID)
	}
	b.WriteString("/api/")
	b.WriteString(cmd)
	if query := params.values().Encode(); query != "" {
		b.WriteString("?")
		b.WriteString(query)
	}
	return b.String()
}

// Get performs a GET round trip and returns the raw response body.
func (a *Api) Get(ctx context.Context, eventID, cmd string, params Params) ([]byte, error) {
	return a.execute(ctx, func() (*resty.Response, error) {
		return a.request(ctx).Get(a.buildURL(eventID, cmd, params))
	})
}

// GetJSON performs a GET round trip and decodes the JSON response into out.
func (a *Api) GetJSON(ctx context.Context, eventID, cmd string, params Params, out any) error {
	body, err := a.Get(ctx, eventID, cmd, params)
	if err != nil {
		return err
	}
	return decodeBody(body, out)
}

// Post performs a POST round trip. A []byte or string body is sent verbatim
// with the given content type; any other non-nil body is serialized as JSON.
func (a *Api) Post(ctx context.Context, eventID, cmd string, params Params, body any, contentType string) ([]byte, error) {
	return a.execute(ctx, func() (*resty.Response, error) {
		req := a.request(ctx)
		switch data := body.(type) {
		case nil:
		case []byte:
			req.SetHeader("Content-Type", contentType).SetBody(data)
		case string:
			req.SetHeader("Content-Type", contentType).SetBody(data)
		default:
			encoded, err := json.Marshal(body)
			if err != nil {
				return nil, fmt.Errorf("encoding request body: %w", err)
			}
			req.SetHeader("Content-Type", "application/json").SetBody(encoded)
		}
		return req.Post(a.buildURL(eventID, cmd, params))
	})
}

// PostJSON performs a POST round trip with a JSON body and decodes the JSON
// response into out; pass nil to discard the response.
func (a *Api) PostJSON(ctx context.Context, eventID, cmd string, params Params, body, out any) error {
	raw, err := a.Post(ctx, eventID, cmd, params, body, "application/json")
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return decodeBody(raw, out)
}

func (a *Api) request(ctx context.Context) *resty.Request {
	return a.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+a.SessionID()).
		SetHeader("User-Agent", a.cfg.UserAgent)
}

// execute runs one round trip, retrying once after a re-login when the
// session expired and credentials are retained.
func (a *Api) execute(ctx context.Context, do func() (*resty.Response, error)) ([]byte, error) {
	token := a.SessionID()
	resp, err := do()
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	if resp.StatusCode() == 401 {
		renewed, err := a.renewSession(ctx, token)
		if err != nil {
			return nil, err
		}
		if renewed {
			resp, err = do()
			if err != nil {
				return nil, fmt.Errorf("request failed: %w", err)
			}
		}
	}
	return a.handleResponse(ctx, resp)
}

// renewSession re-logins with the retained credentials and reports whether a
// retry makes sense. Concurrent callers holding the same stale token share a
// single re-login; a caller arriving after the token already changed just
// retries with the fresh one.
func (a *Api) renewSession(ctx context.Context, staleToken string) (bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if len(a.loginData) == 0 {
		return false, nil
	}
	if a.sessionID != staleToken {
		return true, nil
	}
	a.logger.DebugCtx(ctx, "Session rejected, logging in again")
	token, err := a.requestSession(ctx, a.loginData)
	if err != nil {
		return false, err
	}
	a.sessionID = token
	return true, nil
}

func (a *Api) handleResponse(ctx context.Context, resp *resty.Response) ([]byte, error) {
	a.logger.DebugCtx(ctx, "Response received",
		zap.String("url", resp.Request.URL),
		zap.Int("status", resp.StatusCode()),
	)
	if resp.StatusCode() == 200 {
		return resp.Body(), nil
	}
	return nil, &Error{
		Message:    errorMessage(resp.Body()),
		StatusCode: resp.StatusCode(),
	}
}

// errorMessage unwraps the vendor's {"Error": "..."} payload; any other body
// passes through verbatim.
func errorMessage(body []byte) string {
	var payload struct {
		Error string `json:"Error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	return string(body)
}

func decodeBody(body []byte, out any) error {
	if len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// Params are query parameters. Nil values are skipped; booleans, slices and
// decimals serialize the way the vendor expects them.
type Params map[string]any

func (p Params) values() url.Values {
	values := url.Values{}
	for key, value := range p {
		if value == nil {
			continue
		}
		values.Set(key, paramString(value))
	}
	return values
}

func paramString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case []string:
		return strings.Join(v, ",")
	case []int:
		parts := make([]string, len(v))
		for i, n := range v {
			parts[i] = strconv.Itoa(n)
		}
		return strings.Join(parts, ",")
	case rrtypes.Decimal:
		return strconv.FormatFloat(v.Float64(), 'f', -1, 64)
	case rrtypes.Date:
		return v.String()
	case rrtypes.DateTime:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
