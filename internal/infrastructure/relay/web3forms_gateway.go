package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"prowash_quote/internal/domain/entities"
	"prowash_quote/internal/usecase/interfaces"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultEndpoint = "https://api.web3forms.com/submit"
	defaultTimeout  = 30 * time.Second
	maxResponseBody = 1 << 20
)

var ErrMissingRelayAccessKey = errors.New("missing relay access key")

// Config configures the form-relay gateway.
type Config struct {
	Endpoint  string
	AccessKey string
	Subject   string
	FromName  string
	Timeout   time.Duration
	Mock      bool
}

// Web3FormsGateway posts leads to a Web3Forms compatible relay, which turns
// them into an e-mail notification.
type Web3FormsGateway struct {
	endpoint   string
	accessKey  string
	subject    string
	fromName   string
	httpClient *http.Client
	logger     *zap.Logger
	mockMode   bool
}

var _ interfaces.IRelayGateway = (*Web3FormsGateway)(nil)

type submitRequest struct {
	AccessKey string `json:"access_key"`
	Subject   string `json:"subject,omitempty"`
	FromName  string `json:"from_name,omitempty"`
	entities.LeadSubmission
}

type submitResponse struct {
	Success *bool  `json:"success"`
	Message string `json:"message"`
}

func NewWeb3FormsGateway(cfg Config, logger *zap.Logger) (*Web3FormsGateway, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if strings.TrimSpace(cfg.AccessKey) == "" {
		logger.Error("[relay][gateway] missing RELAY_ACCESS_KEY")
		return nil, ErrMissingRelayAccessKey
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	g := &Web3FormsGateway{
		endpoint:   cfg.Endpoint,
		accessKey:  cfg.AccessKey,
		subject:    cfg.Subject,
		fromName:   cfg.FromName,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
		mockMode:   cfg.Mock,
	}
	if g.mockMode {
		logger.Info("[relay][gateway] mock mode enabled")
	} else {
		logger.Info("[relay][gateway] relay client initialized", zap.String("endpoint", g.endpoint))
	}
	return g, nil
}

func (g *Web3FormsGateway) Submit(ctx context.Context, lead entities.LeadSubmission) (entities.RelayReceipt, error) {
	body, err := json.Marshal(submitRequest{
		AccessKey:      g.accessKey,
		Subject:        g.subject,
		FromName:       g.fromName,
		LeadSubmission: lead,
	})
	if err != nil {
		return entities.RelayReceipt{}, fmt.Errorf("marshal request: %w", err)
	}

	if g.mockMode {
		g.logger.Info("[relay][gateway] mock submit success", zap.Int("payload_len", len(body)))
		return entities.RelayReceipt{Message: "mock submission accepted"}, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(body))
	if err != nil {
		return entities.RelayReceipt{}, &entities.TransportError{Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	g.logger.Debug("[relay][gateway] submit start", zap.Int("payload_len", len(body)))
	resp, err := g.httpClient.Do(req)
	if err != nil {
		return entities.RelayReceipt{}, &entities.TransportError{Err: fmt.Errorf("do request: %w", err)}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return entities.RelayReceipt{}, &entities.TransportError{Err: fmt.Errorf("read response: %w", err)}
	}

	var out submitResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		g.logger.Warn("[relay][gateway] unexpected response shape",
			zap.Int("status", resp.StatusCode),
			zap.Int("body_len", len(raw)))
		return entities.RelayReceipt{}, &entities.RelayRejectedError{StatusCode: resp.StatusCode, Message: "unexpected response"}
	}
	if out.Success == nil || !*out.Success {
		return entities.RelayReceipt{}, &entities.RelayRejectedError{StatusCode: resp.StatusCode, Message: out.Message}
	}

	g.logger.Debug("[relay][gateway] submit success", zap.Int("status", resp.StatusCode))
	return entities.RelayReceipt{Message: out.Message}, nil
}
