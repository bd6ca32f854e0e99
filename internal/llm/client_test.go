package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Complete(t *testing.T) {
	t.Run("sends bearer token and chat payload", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "POST", r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

			var req servingRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			require.Len(t, req.Messages, 1)
			assert.Equal(t, "user", req.Messages[0].Role)
			assert.Equal(t, "write me an excuse", req.Messages[0].Content)
			assert.Equal(t, 1000, req.MaxTokens)
			assert.InDelta(t, 0.7, req.Temperature, 0.001)

			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]any{
				"choices": []map[string]any{
					{"message": map[string]any{"role": "assistant", "content": "Hello!"}},
				},
			})
		}))
		defer server.Close()

		client := New(Config{EndpointURL: server.URL, Token: "test-token"})
		reply, err := client.Complete(context.Background(), "write me an excuse")
		require.NoError(t, err)
		assert.Equal(t, "Hello!", reply)
	})

	t.Run("missing token fails before any call", func(t *testing.T) {
		calls := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
		}))
		defer server.Close()

		client := New(Config{EndpointURL: server.URL})
		_, err := client.Complete(context.Background(), "prompt")
		assert.ErrorIs(t, err, ErrMissingToken)
		assert.Equal(t, 0, calls)
	})

	t.Run("non-2xx response is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "model overloaded", http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := New(Config{EndpointURL: server.URL, Token: "t"})
		_, err := client.Complete(context.Background(), "prompt")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 503")
	})

	t.Run("connection failure is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		client := New(Config{EndpointURL: server.URL, Token: "t"})
		_, err := client.Complete(context.Background(), "prompt")
		assert.Error(t, err)
	})

	t.Run("invalid JSON response is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		}))
		defer server.Close()

		client := New(Config{EndpointURL: server.URL, Token: "t"})
		_, err := client.Complete(context.Background(), "prompt")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode response")
	})
}

func TestDecodeReply(t *testing.T) {
	t.Run("chat choices shape", func(t *testing.T) {
		reply, err := decodeReply([]byte(`{"choices":[{"message":{"role":"assistant","content":"chat text"}}]}`))
		require.NoError(t, err)
		assert.Equal(t, "chat text", reply)
	})

	t.Run("predictions shape", func(t *testing.T) {
		reply, err := decodeReply([]byte(`{"predictions":["predicted text","second"]}`))
		require.NoError(t, err)
		assert.Equal(t, "predicted text", reply)
	})

	t.Run("bare content shape", func(t *testing.T) {
		reply, err := decodeReply([]byte(`{"content":"bare text"}`))
		require.NoError(t, err)
		assert.Equal(t, "bare text", reply)
	})

	t.Run("choices take precedence over content", func(t *testing.T) {
		reply, err := decodeReply([]byte(`{"choices":[{"message":{"content":"from choices"}}],"content":"from content"}`))
		require.NoError(t, err)
		assert.Equal(t, "from choices", reply)
	})

	t.Run("unknown shape is stringified", func(t *testing.T) {
		raw := `{"output":{"text":"something"}}`
		reply, err := decodeReply([]byte(raw))
		require.NoError(t, err)
		assert.Equal(t, raw, reply)
	})

	t.Run("empty choices fall through to stringify", func(t *testing.T) {
		raw := `{"choices":[]}`
		reply, err := decodeReply([]byte(raw))
		require.NoError(t, err)
		assert.Equal(t, raw, reply)
	})

	t.Run("non-object document is an error", func(t *testing.T) {
		_, err := decodeReply([]byte(`["a","b"]`))
		assert.Error(t, err)
	})
}
