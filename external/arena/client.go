package arena

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/waterpolo-pbp/internal/platform/logging"
	"github.com/riskibarqy/waterpolo-pbp/internal/platform/metrics"
	"github.com/riskibarqy/waterpolo-pbp/internal/platform/resilience"
	"github.com/riskibarqy/waterpolo-pbp/internal/usecase"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/sync/singleflight"
)

const (
	defaultBaseURL = "https://arena.total-waterpolo.com"
	// GameURLPrefix is the public match page of a provider game id.
	GameURLPrefix = "https://total-waterpolo.com/tw_match/"
	maxBodyBytes  = 8 << 20
)

var errArenaTransient = crerr.New("arena transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Token          string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	Metrics        *metrics.Recorder
	CircuitBreaker resilience.CircuitBreakerConfig
	// Backoff returns the wait before retry attempt n (0-based).
	Backoff func(attempt int) time.Duration
}

// Client talks to the arena JSON API behind total-waterpolo.com.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	maxRetries int
	backoff    func(attempt int) time.Duration
	logger     *logging.Logger
	metrics    *metrics.Recorder
	breaker    *resilience.CircuitBreaker
	validate   *validator.Validate
	flight     singleflight.Group
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 20 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	backoff := cfg.Backoff
	if backoff == nil {
		backoff = func(attempt int) time.Duration { return time.Duration(attempt+1) * time.Second }
	}

	c := &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		token:      strings.TrimSpace(cfg.Token),
		maxRetries: max(cfg.MaxRetries, 0),
		backoff:    backoff,
		logger:     logger,
		metrics:    cfg.Metrics,
		breaker:    resilience.NewCircuitBreaker(cfg.CircuitBreaker),
		validate:   validator.New(),
	}
	if c.breaker != nil {
		c.breaker.OnStateChange(func(from, to resilience.CircuitState) {
			c.metrics.CircuitOpen("arena", to == resilience.CircuitStateOpen)
			c.logger.Warn("arena circuit breaker state changed", "from", from, "to", to)
		})
	}
	return c
}

func (c *Client) FetchCompetition(ctx context.Context, competitionID int64) (competitionResponse, error) {
	var out competitionResponse
	if competitionID <= 0 {
		return out, fmt.Errorf("competition id must be greater than zero")
	}
	if err := c.doJSON(ctx, "competitions", "/api/Competitions/"+strconv.FormatInt(competitionID, 10), &out); err != nil {
		return out, fmt.Errorf("fetch competition id=%d: %w", competitionID, err)
	}
	return out, nil
}

func (c *Client) FetchMatch(ctx context.Context, matchID int64) (matchResponse, error) {
	var out matchResponse
	if matchID <= 0 {
		return out, fmt.Errorf("match id must be greater than zero")
	}
	if err := c.doJSON(ctx, "matches", "/api/Matches/"+strconv.FormatInt(matchID, 10), &out); err != nil {
		return out, fmt.Errorf("fetch match id=%d: %w", matchID, err)
	}
	return out, nil
}

func (c *Client) FetchEvents(ctx context.Context, matchID int64) ([]eventItem, error) {
	if matchID <= 0 {
		return nil, fmt.Errorf("match id must be greater than zero")
	}
	var out []eventItem
	if err := c.doJSON(ctx, "events", "/api/Events/"+strconv.FormatInt(matchID, 10), &out); err != nil {
		return nil, fmt.Errorf("fetch events match_id=%d: %w", matchID, err)
	}
	return out, nil
}

// doJSON fetches path once per concurrent caller set, decodes it into target
// and validates the decoded payload.
func (c *Client) doJSON(ctx context.Context, endpoint, path string, target any) error {
	fullURL := c.baseURL + path

	out, err, _ := c.flight.Do(path, func() (any, error) {
		var raw []byte
		run := func() error {
			var reqErr error
			raw, reqErr = c.executeRequest(ctx, endpoint, fullURL)
			return reqErr
		}

		if c.breaker == nil {
			err := run()
			return raw, err
		}
		err := c.breaker.Do(run, isArenaCircuitFailure)
		if stderrors.Is(err, resilience.ErrCircuitOpen) {
			c.logger.WarnContext(ctx, "arena circuit breaker rejected request", "state", c.breaker.State(), "path", path)
			return nil, fmt.Errorf("%w: arena provider is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
		return raw, err
	})
	if err != nil {
		return err
	}

	raw, ok := out.([]byte)
	if !ok {
		return fmt.Errorf("unexpected response payload type %T", out)
	}
	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode provider payload: %w", err)
	}
	if err := c.validatePayload(ctx, target); err != nil {
		return fmt.Errorf("invalid provider payload: %w", err)
	}
	return nil
}

func (c *Client) validatePayload(ctx context.Context, target any) error {
	switch v := target.(type) {
	case *[]eventItem:
		for i := range *v {
			if err := c.validate.StructCtx(ctx, (*v)[i]); err != nil {
				return fmt.Errorf("event %d: %w", i, err)
			}
		}
		return nil
	default:
		return c.validate.StructCtx(ctx, target)
	}
}

func (c *Client) executeRequest(ctx context.Context, endpoint, fullURL string) ([]byte, error) {
	started := time.Now()
	defer func() { c.metrics.ObserveProvider(endpoint, time.Since(started)) }()

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("Referer", "https://total-waterpolo.com/")
		req.Header.Set("Origin", "https://total-waterpolo.com")
		if c.token != "" {
			req.Header.Set("Authorization", c.token)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = fmt.Errorf("%w: send request: %s", errArenaTransient, sanitizeSensitiveText(err.Error(), c.token))
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
			_ = resp.Body.Close()
			switch {
			case readErr != nil:
				lastErr = fmt.Errorf("%w: read response body: %v", errArenaTransient, readErr)
			case resp.StatusCode >= 200 && resp.StatusCode < 300:
				return raw, nil
			case isRetryableStatus(resp.StatusCode):
				lastErr = fmt.Errorf("%w: provider status=%d body=%s", errArenaTransient, resp.StatusCode, abbreviateBody(raw))
			default:
				return nil, fmt.Errorf("provider status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
			}
		}

		if attempt == c.maxRetries {
			break
		}
		timer := time.NewTimer(c.backoff(attempt))
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("provider request failed")
	}
	c.logger.WarnContext(ctx, "arena request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

func sanitizeSensitiveText(value, token string) string {
	value = strings.TrimSpace(value)
	if token != "" {
		value = strings.ReplaceAll(value, token, "REDACTED")
	}
	return value
}

func isArenaCircuitFailure(err error) bool {
	return err != nil && stderrors.Is(err, errArenaTransient)
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
