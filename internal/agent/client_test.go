package agent

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestInvokeSuccess(t *testing.T) {
	var gotPath string
	var gotReq invokeRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"response":{"result":{"post_text":"Vote for progress.","hashtags":"#Progress"}}}`))
	}))
	defer server.Close()

	client := NewClient(Config{GatewayURL: server.URL}, nil)
	res, err := client.Invoke(context.Background(), "Generate campaign content", DefaultContentAgentID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/invoke" {
		t.Errorf("expected POST /invoke, got %s", gotPath)
	}
	if gotReq.Message != "Generate campaign content" {
		t.Errorf("unexpected prompt: %q", gotReq.Message)
	}
	if gotReq.AgentID != DefaultContentAgentID {
		t.Errorf("unexpected agent id: %q", gotReq.AgentID)
	}
	if !res.Success {
		t.Error("expected success")
	}
	if got := res.Field("post_text"); got != "Vote for progress." {
		t.Errorf("unexpected post_text: %q", got)
	}
	if got := res.Field("missing"); got != "" {
		t.Errorf("absent field should be empty, got %q", got)
	}
}

func TestInvokeGatewayFailureCarriesError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"error":"agent is overloaded"}`))
	}))
	defer server.Close()

	client := NewClient(Config{GatewayURL: server.URL}, nil)
	res, err := client.Invoke(context.Background(), "prompt", DefaultCrisisAgentID)
	if err != nil {
		t.Fatalf("gateway-level failure must not be a transport error: %v", err)
	}
	if res.Success {
		t.Error("expected success=false")
	}
	if res.Error != "agent is overloaded" {
		t.Errorf("gateway error must pass through verbatim, got %q", res.Error)
	}
}

func TestInvokeNon2xxIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(Config{GatewayURL: server.URL}, nil)
	if _, err := client.Invoke(context.Background(), "prompt", DefaultStrategyAgentID); err == nil {
		t.Fatal("expected error on 502 response")
	}
}

func TestInvokeMalformedBodyIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewClient(Config{GatewayURL: server.URL}, nil)
	if _, err := client.Invoke(context.Background(), "prompt", DefaultContentAgentID); err == nil {
		t.Fatal("expected error on undecodable body")
	}
}

func TestInvokeTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client := NewClient(Config{GatewayURL: server.URL, Timeout: 20 * time.Millisecond}, nil)
	if _, err := client.Invoke(context.Background(), "prompt", DefaultContentAgentID); err == nil {
		t.Fatal("expected timeout error")
	}
}

func TestNewClientDefaultsBaseURL(t *testing.T) {
	client := NewClient(Config{}, nil)
	if client.baseURL != "http://localhost:8090" {
		t.Errorf("unexpected default base URL: %q", client.baseURL)
	}
}
