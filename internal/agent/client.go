package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Fixed agent identifiers, one per studio. Overridable through env in case
// the gateway roster changes.
const (
	DefaultContentAgentID  = "69a17462cd4048c3ee3ca47d"
	DefaultCrisisAgentID   = "69a1747cf03a54d775b55b1e"
	DefaultStrategyAgentID = "69a17462cd4048c3ee3ca47f"
)

// Result is the gateway's answer to one invocation. Result is untyped at
// this boundary; callers read fields through Field and apply their own
// fallbacks.
type Result struct {
	Success bool
	Error   string
	Result  map[string]interface{}
}

// Field returns the named result field as a string, or "" when it is absent
// or not a string.
func (r *Result) Field(key string) string {
	if r == nil || r.Result == nil {
		return ""
	}
	if s, ok := r.Result[key].(string); ok {
		return s
	}
	return ""
}

// Invoker is the agent gateway call boundary.
type Invoker interface {
	Invoke(ctx context.Context, prompt, agentID string) (*Result, error)
}

// Config configures the gateway client. Timeout is explicit: 0 disables the
// request deadline and the client waits as long as the gateway does.
type Config struct {
	GatewayURL string
	Timeout    time.Duration
}

// Client invokes agents over the external gateway. Fire-and-forget, single
// request/response, no streaming, no automatic retries.
type Client struct {
	client  *http.Client
	baseURL string
	log     *logrus.Logger
}

func NewClient(cfg Config, log *logrus.Logger) *Client {
	baseURL := strings.TrimRight(cfg.GatewayURL, "/")
	if baseURL == "" {
		baseURL = "http://localhost:8090"
	}
	return &Client{
		client:  &http.Client{Timeout: cfg.Timeout},
		baseURL: baseURL,
		log:     log,
	}
}

type invokeRequest struct {
	Message string `json:"message"`
	AgentID string `json:"agent_id"`
}

type invokeResponse struct {
	Success  bool   `json:"success"`
	Error    string `json:"error"`
	Response struct {
		Result map[string]interface{} `json:"result"`
	} `json:"response"`
}

// Invoke sends one prompt to the identified agent. A returned error means the
// transport failed; a Result with Success=false carries the gateway's own
// error string verbatim.
func (c *Client) Invoke(ctx context.Context, prompt, agentID string) (*Result, error) {
	payload, err := json.Marshal(invokeRequest{Message: prompt, AgentID: agentID})
	if err != nil {
		return nil, fmt.Errorf("agent: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/invoke", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("agent: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("agent: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("agent: unexpected status %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}

	var envelope invokeResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("agent: decode response: %w", err)
	}

	if c.log != nil {
		c.log.WithFields(logrus.Fields{
			"agent":   agentID,
			"success": envelope.Success,
		}).Debug("agent invocation completed")
	}

	return &Result{
		Success: envelope.Success,
		Error:   envelope.Error,
		Result:  envelope.Response.Result,
	}, nil
}
