package langfuse

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// ingestionCapture records the first ingestion request a test server sees.
type ingestionCapture struct {
	auth string
	body map[string]any
}

func newIngestionServer(t *testing.T) (*httptest.Server, chan ingestionCapture) {
	t.Helper()
	received := make(chan ingestionCapture, 1)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var cap ingestionCapture
		if user, pass, ok := r.BasicAuth(); ok {
			cap.auth = user + ":" + pass
		}

		raw, _ := io.ReadAll(r.Body)
		json.Unmarshal(raw, &cap.body)

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"successes":[],"errors":[]}`))

		select {
		case received <- cap:
		default:
		}
	}))
	t.Cleanup(server.Close)

	return server, received
}

// waitForIngestion blocks until the async sender delivers, or fails the test.
func waitForIngestion(t *testing.T, received chan ingestionCapture) ingestionCapture {
	t.Helper()
	select {
	case cap := <-received:
		return cap
	case <-time.After(3 * time.Second):
		t.Fatal("ingestion request never arrived")
		return ingestionCapture{}
	}
}

func TestNewClient_Disabled(t *testing.T) {
	tests := []struct {
		name   string
		config Config
	}{
		{
			name:   "empty base URL",
			config: Config{BaseURL: "", PublicKey: "pk", SecretKey: "sk"},
		},
		{
			name:   "empty public key",
			config: Config{BaseURL: "http://localhost", PublicKey: "", SecretKey: "sk"},
		},
		{
			name:   "empty secret key",
			config: Config{BaseURL: "http://localhost", PublicKey: "pk", SecretKey: ""},
		},
		{
			name:   "all empty",
			config: Config{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClient(tt.config)
			if c.IsEnabled() {
				t.Error("expected client to be disabled")
			}
		})
	}
}

func TestNewClient_Enabled(t *testing.T) {
	c := NewClient(Config{
		BaseURL:     "http://localhost:3000",
		PublicKey:   "pk-test",
		SecretKey:   "sk-test",
		Environment: "test",
	})

	if !c.IsEnabled() {
		t.Error("expected client to be enabled")
	}
}

func TestCreateTrace_DisabledClient(t *testing.T) {
	c := NewClient(Config{}) // disabled

	traceID, err := c.CreateTrace(context.Background(), TraceInput{
		UserID: "user-123",
		Name:   "test-trace",
		Input:  map[string]any{"key": "value"},
		Output: map[string]any{"result": "ok"},
	})

	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	if traceID != "" {
		t.Errorf("expected empty trace ID, got %s", traceID)
	}
}

func TestCreateScore_DisabledClient(t *testing.T) {
	c := NewClient(Config{}) // disabled

	err := c.CreateScore(context.Background(), ScoreInput{
		TraceID: "trace-123",
		Name:    "insight_feedback",
		Value:   4.0,
		Comment: "Great!",
	})

	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
}

func TestCreateTrace_EnabledClient(t *testing.T) {
	server, received := newIngestionServer(t)

	c := NewClient(Config{
		BaseURL:     server.URL,
		PublicKey:   "pk-test",
		SecretKey:   "sk-test",
		Environment: "testing",
	})

	traceID, err := c.CreateTrace(context.Background(), TraceInput{
		UserID: "user-123",
		Name:   "risk-insights",
		Input:  map[string]any{"window_days": 7},
		Output: map[string]any{"bucket": "medium"},
		Tags:   []string{"pillpal"},
	})

	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	if traceID == "" {
		t.Error("expected non-empty trace ID")
	}

	// Delivery is fire-and-forget; wait for the async send to land.
	cap := waitForIngestion(t, received)

	if cap.auth != "pk-test:sk-test" {
		t.Errorf("expected auth pk-test:sk-test, got %s", cap.auth)
	}

	batch, ok := cap.body["batch"].([]any)
	if !ok || len(batch) != 1 {
		t.Fatal("expected batch with 1 event")
	}

	event := batch[0].(map[string]any)
	if event["type"] != "trace-create" {
		t.Errorf("expected type trace-create, got %v", event["type"])
	}

	body := event["body"].(map[string]any)
	if body["name"] != "risk-insights" {
		t.Errorf("expected name risk-insights, got %v", body["name"])
	}
	if body["userId"] != "user-123" {
		t.Errorf("expected userId user-123, got %v", body["userId"])
	}
	if body["id"] != traceID {
		t.Errorf("expected trace body id %s, got %v", traceID, body["id"])
	}

	// Check environment is in metadata
	metadata := body["metadata"].(map[string]any)
	if metadata["environment"] != "testing" {
		t.Errorf("expected environment testing, got %v", metadata["environment"])
	}
}

func TestCreateTrace_ExplicitID(t *testing.T) {
	server, _ := newIngestionServer(t)

	c := NewClient(Config{
		BaseURL:   server.URL,
		PublicKey: "pk-test",
		SecretKey: "sk-test",
	})

	traceID, err := c.CreateTrace(context.Background(), TraceInput{
		ID:   "trace-fixed",
		Name: "risk-insights",
	})
	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	if traceID != "trace-fixed" {
		t.Errorf("expected trace-fixed, got %s", traceID)
	}
}

func TestCreateScore_EnabledClient(t *testing.T) {
	server, received := newIngestionServer(t)

	c := NewClient(Config{
		BaseURL:   server.URL,
		PublicKey: "pk-test",
		SecretKey: "sk-test",
	})

	err := c.CreateScore(context.Background(), ScoreInput{
		TraceID: "trace-abc123",
		Name:    "insight_feedback",
		Value:   4.5,
		Comment: "Very helpful insights!",
	})

	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}

	cap := waitForIngestion(t, received)

	batch := cap.body["batch"].([]any)
	event := batch[0].(map[string]any)

	if event["type"] != "score-create" {
		t.Errorf("expected type score-create, got %v", event["type"])
	}

	body := event["body"].(map[string]any)
	if body["traceId"] != "trace-abc123" {
		t.Errorf("expected traceId trace-abc123, got %v", body["traceId"])
	}
	if body["name"] != "insight_feedback" {
		t.Errorf("expected name insight_feedback, got %v", body["name"])
	}
	if body["value"] != 4.5 {
		t.Errorf("expected value 4.5, got %v", body["value"])
	}
	if body["comment"] != "Very helpful insights!" {
		t.Errorf("expected comment, got %v", body["comment"])
	}
}
