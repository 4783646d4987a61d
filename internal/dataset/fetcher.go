package dataset

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"lerobotviz/internal/logging"
)

const (
	defaultTimeout     = 10 * time.Second
	defaultMaxAttempts = 2
	defaultBackoffStep = 300 * time.Millisecond
	maxDescriptorBytes = 8 << 20
)

// AttemptLimit is the hard ceiling on attempts per resolution.
const AttemptLimit = 2

var errDescriptorTooLarge = fmt.Errorf("descriptor exceeds %d MiB", maxDescriptorBytes>>20)

// FetcherConfig captures the settings injected into a Fetcher.
type FetcherConfig struct {
	BaseURL     string
	Token       string
	Timeout     time.Duration
	MaxAttempts int
	BackoffStep time.Duration
}

// Fetcher retrieves dataset descriptors from the artifact host.
type Fetcher struct {
	cfg        FetcherConfig
	httpClient *http.Client
	logger     *slog.Logger
	sleeper    func(time.Duration)
}

// Option customizes the fetcher.
type Option func(*Fetcher)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(f *Fetcher) {
		if client != nil {
			f.httpClient = client
		}
	}
}

// WithLogger sets the logger used for attempt and retry events.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Fetcher) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// WithSleeper overrides how backoff waits are performed (useful for tests).
func WithSleeper(sleeper func(time.Duration)) Option {
	return func(f *Fetcher) {
		f.sleeper = sleeper
	}
}

// NewFetcher constructs a Fetcher. Zero values in cfg fall back to a 10s
// timeout, two attempts and a 300ms backoff step. MaxAttempts above the
// ceiling is clamped.
func NewFetcher(cfg FetcherConfig, opts ...Option) *Fetcher {
	f := &Fetcher{
		cfg: FetcherConfig{
			BaseURL:     NewURLBuilder(cfg.BaseURL).BaseURL,
			Token:       strings.TrimSpace(cfg.Token),
			Timeout:     cfg.Timeout,
			MaxAttempts: cfg.MaxAttempts,
			BackoffStep: cfg.BackoffStep,
		},
		httpClient: &http.Client{},
		logger:     logging.NewNop(),
	}
	if f.cfg.Timeout <= 0 {
		f.cfg.Timeout = defaultTimeout
	}
	if f.cfg.MaxAttempts <= 0 {
		f.cfg.MaxAttempts = defaultMaxAttempts
	}
	f.cfg.MaxAttempts = min(f.cfg.MaxAttempts, AttemptLimit)
	if f.cfg.BackoffStep <= 0 {
		f.cfg.BackoffStep = defaultBackoffStep
	}
	for _, opt := range opts {
		opt(f)
	}
	f.logger = logging.NewComponentLogger(f.logger, "dataset-fetcher")
	return f
}

// BaseURL returns the artifact host base URL.
func (f *Fetcher) BaseURL() string {
	return f.cfg.BaseURL
}

// DescriptorURL returns the location of a dataset's meta/info.json.
func (f *Fetcher) DescriptorURL(repoID, prefix string) string {
	return URLBuilder{BaseURL: f.cfg.BaseURL}.ArtifactURL(repoID, "", descriptorPath, prefix)
}

type statusError struct {
	StatusCode int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("http %d", e.StatusCode)
}

// FetchDescriptor downloads and decodes the descriptor for repoID. The whole
// attempt sequence, backoff waits included, shares one deadline.
func (f *Fetcher) FetchDescriptor(ctx context.Context, repoID, prefix string) (desc *Descriptor, err error) {
	defer func() {
		if r := recover(); r != nil {
			desc = nil
			err = incompatibleDataset(repoID)
		}
	}()
	if ctx == nil {
		ctx = context.Background()
	}
	endpoint := f.DescriptorURL(repoID, prefix)

	ctx, cancel := context.WithTimeout(ctx, f.cfg.Timeout)
	defer cancel()

	body, err := f.getWithRetry(ctx, repoID, endpoint)
	if err != nil {
		return nil, err
	}
	return decodeDescriptor(repoID, endpoint, body)
}

func (f *Fetcher) getWithRetry(ctx context.Context, repoID, endpoint string) ([]byte, error) {
	logger := logging.WithContext(ctx, f.logger).With(
		logging.String(logging.FieldRepoID, repoID),
		logging.String(logging.FieldURL, endpoint),
	)
	attempts := f.cfg.MaxAttempts
	var lastErr error

	for attempt := 1; attempt <= attempts; attempt++ {
		logger.Debug("fetching dataset descriptor", logging.Int(logging.FieldAttempt, attempt))
		body, err := f.getOnce(ctx, endpoint)
		if err == nil {
			return body, nil
		}
		lastErr = err

		if !f.shouldRetry(ctx, err, attempt, attempts) {
			break
		}
		delay := f.backoffDelay(attempt)
		logging.WarnWithContext(logger, "descriptor fetch failed; retrying", "descriptor_retry",
			logging.Int(logging.FieldAttempt, attempt),
			logging.Duration("delay", delay),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "transient network fault"),
			logging.String(logging.FieldImpact, "descriptor resolution delayed"),
		)
		if err := f.sleep(ctx, delay); err != nil {
			lastErr = err
			break
		}
	}

	classified := f.classify(ctx, repoID, endpoint, lastErr)
	logging.ErrorWithContext(logger, "descriptor fetch failed", "descriptor_fetch_failed",
		logging.String("kind", KindOf(classified).String()),
		logging.Error(classified),
	)
	return nil, classified
}

func (f *Fetcher) getOnce(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if f.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+f.cfg.Token)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		return nil, &statusError{StatusCode: resp.StatusCode}
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDescriptorBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if len(body) > maxDescriptorBytes {
		return nil, errDescriptorTooLarge
	}
	return body, nil
}

func (f *Fetcher) shouldRetry(ctx context.Context, err error, attempt, maxAttempts int) bool {
	if attempt >= maxAttempts || err == nil {
		return false
	}
	if ctx.Err() != nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if errors.Is(err, errDescriptorTooLarge) {
		return false
	}
	var statusErr *statusError
	return !errors.As(err, &statusErr)
}

// backoffDelay grows linearly: attempt 1 -> step, attempt 2 -> 2*step.
func (f *Fetcher) backoffDelay(attempt int) time.Duration {
	if attempt <= 0 {
		attempt = 1
	}
	return f.cfg.BackoffStep * time.Duration(attempt)
}

func (f *Fetcher) sleep(ctx context.Context, delay time.Duration) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if delay <= 0 {
		return nil
	}
	if f.sleeper != nil {
		f.sleeper(delay)
		return ctx.Err()
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (f *Fetcher) classify(ctx context.Context, repoID, endpoint string, err error) error {
	if err == nil {
		err = errors.New("unknown fetch failure")
	}
	if errors.Is(err, errDescriptorTooLarge) {
		return &Error{Kind: KindMalformedDescriptor, RepoID: repoID, URL: endpoint, Err: err}
	}
	var statusErr *statusError
	if errors.As(err, &statusErr) {
		kind := KindFetchFailed
		if statusErr.StatusCode == http.StatusUnauthorized || statusErr.StatusCode == http.StatusForbidden {
			kind = KindAccessDenied
		}
		return &Error{Kind: kind, RepoID: repoID, URL: endpoint, StatusCode: statusErr.StatusCode, Err: err}
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) || ctx.Err() != nil {
		cause := ctx.Err()
		if cause == nil {
			cause = err
		}
		return &Error{Kind: KindTimeout, RepoID: repoID, URL: endpoint, Err: cause}
	}
	return &Error{Kind: KindNetwork, RepoID: repoID, URL: endpoint, Err: err}
}
