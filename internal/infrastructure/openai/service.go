package openai

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/deepgram/quickchat/internal/config"
	"github.com/deepgram/quickchat/pkg/logger"
	"github.com/sashabaranov/go-openai"
)

type Service struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

type options struct {
	transport http.RoundTripper
}

type Option func(*options)

// WithTransport replaces the underlying transport, mostly useful in tests
func WithTransport(rt http.RoundTripper) Option {
	return func(o *options) {
		o.transport = rt
	}
}

// NewService builds a go-openai client that sends every request to cfg.URL exactly.
func NewService(cfg config.OpenAIConfig, opts ...Option) (*Service, error) {
	logger.Info(logger.SERVICE, "Initialising OpenAI service")

	if cfg.Token == "" {
		return nil, config.ErrMissingOpenAIToken
	}

	endpoint, err := url.Parse(cfg.URL)
	if err != nil {
		logger.Error(logger.SERVICE, "OpenAI service not configured - OPENAI_URL is not a URL: %v", err)
		return nil, fmt.Errorf("invalid OpenAI URL %q: %w", cfg.URL, err)
	}
	if endpoint.Scheme == "" || endpoint.Host == "" {
		logger.Error(logger.SERVICE, "OpenAI service not configured - OPENAI_URL needs a scheme and host")
		return nil, fmt.Errorf("invalid OpenAI URL %q: scheme and host are required", cfg.URL)
	}

	o := options{transport: http.DefaultTransport}
	for _, opt := range opts {
		opt(&o)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = config.DefaultOpenAITimeout
	}
	model := cfg.Model
	if model == "" {
		model = config.DefaultOpenAIModel
	}

	clientConfig := openai.DefaultConfig(cfg.Token)
	clientConfig.HTTPClient = &http.Client{
		Timeout:   timeout,
		Transport: &endpointTransport{endpoint: endpoint, base: o.transport},
	}

	logger.Debug(logger.SERVICE, "OpenAI service targets %s with model %s", endpoint.Redacted(), model)

	return &Service{
		client:  openai.NewClientWithConfig(clientConfig),
		model:   model,
		timeout: timeout,
	}, nil
}

func (s *Service) GetClient() *openai.Client {
	return s.client
}

func (s *Service) Model() string {
	return s.model
}

func (s *Service) Timeout() time.Duration {
	return s.timeout
}

// endpointTransport pins outgoing requests to a fixed URL. go-openai appends its own
// path to a base URL, but the configured endpoint is a full URL and must be hit as is.
type endpointTransport struct {
	endpoint *url.URL
	base     http.RoundTripper
}

func (t *endpointTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	pinned := req.Clone(req.Context())
	target := *t.endpoint
	pinned.URL = &target
	pinned.Host = target.Host
	return t.base.RoundTrip(pinned)
}
