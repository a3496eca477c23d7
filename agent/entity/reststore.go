package entity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultCustomerKeyPrefix = "clinic:customer:"
	maxResponseSizeBytes     = 2 << 20
)

// RESTStoreOption customizes RESTStore.
type RESTStoreOption func(*RESTStore)

func WithKeyPrefix(prefix string) RESTStoreOption {
	return func(s *RESTStore) {
		trimmed := strings.TrimSpace(prefix)
		if trimmed != "" {
			s.keyPrefix = trimmed
		}
	}
}

func WithHTTPClient(client *http.Client) RESTStoreOption {
	return func(s *RESTStore) {
		if client != nil {
			s.httpClient = client
		}
	}
}

// RESTStore reads customer profiles from a Redis-compatible REST endpoint
// (Upstash-style). Profiles are stored as JSON under <prefix><customer_id>.
type RESTStore struct {
	baseURL    string
	token      string
	httpClient *http.Client
	keyPrefix  string
}

type restResponse struct {
	Result json.RawMessage `json:"result"`
	Error  string          `json:"error"`
}

type RESTStoreConfig struct {
	URL     string        `envconfig:"URL" split_words:"true" required:"true"`
	Token   string        `envconfig:"TOKEN" split_words:"true" required:"true"`
	Timeout time.Duration `envconfig:"TIMEOUT" split_words:"true" default:"10s"`
}

func NewRESTStore(cfg RESTStoreConfig, opts ...RESTStoreOption) (*RESTStore, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.URL), "/")
	if baseURL == "" {
		return nil, errors.New("customer store url is required")
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid customer store url: %w", err)
	}

	token := strings.TrimSpace(cfg.Token)
	if token == "" {
		return nil, errors.New("customer store token is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	store := &RESTStore{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		keyPrefix: defaultCustomerKeyPrefix,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(store)
		}
	}

	return store, nil
}

func (s *RESTStore) Lookup(ctx context.Context, customerID string) (*Customer, error) {
	key, err := s.storeKey(customerID)
	if err != nil {
		return nil, err
	}

	resp, err := s.exec(ctx, []any{"GET", key})
	if err != nil {
		return nil, err
	}

	result := bytes.TrimSpace(resp.Result)
	if len(result) == 0 || bytes.Equal(result, []byte("null")) {
		return nil, fmt.Errorf("%w: %s", ErrCustomerNotFound, customerID)
	}

	var encoded string
	if err := json.Unmarshal(result, &encoded); err != nil {
		return nil, fmt.Errorf("decode customer payload: %w", err)
	}

	var customer Customer
	if err := json.Unmarshal([]byte(encoded), &customer); err != nil {
		return nil, fmt.Errorf("unmarshal customer: %w", err)
	}
	if customer.ScheduledAppointments == nil {
		customer.ScheduledAppointments = map[string]any{}
	}

	return &customer, nil
}

func (s *RESTStore) storeKey(customerID string) (string, error) {
	if strings.TrimSpace(customerID) == "" {
		return "", ErrEmptyCustomerID
	}
	return s.keyPrefix + customerID, nil
}

func (s *RESTStore) exec(ctx context.Context, command []any) (*restResponse, error) {
	body, err := json.Marshal(command)
	if err != nil {
		return nil, fmt.Errorf("marshal store command: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build store request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute store request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSizeBytes))
	if err != nil {
		return nil, fmt.Errorf("read store response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("customer store http status=%d body=%s", resp.StatusCode, string(raw))
	}

	var parsed restResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("decode store response: %w", err)
	}
	if parsed.Error != "" {
		return nil, errors.New(parsed.Error)
	}
	return &parsed, nil
}
