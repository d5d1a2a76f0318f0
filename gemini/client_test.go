package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func candidateResponse(text string) Response {
	return Response{
		Candidates: []Candidate{
			{Content: Content{Parts: []Part{{Text: text}}}},
		},
	}
}

func testClient(url string) *Client {
	return NewClient("test-key", url, "test-model", 5*time.Second, zap.NewNop())
}

func TestGenerateJSON_Success(t *testing.T) {
	var gotPath string
	var gotBody Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(candidateResponse(`{"ok":true}`))
	}))
	defer server.Close()

	client := testClient(server.URL)
	schema := &Schema{Type: TypeObject}
	out, err := client.GenerateJSON(context.Background(), []Part{{Text: "hello"}}, schema)
	assert.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(out))

	assert.Equal(t, "/models/test-model:generateContent", gotPath)
	assert.Equal(t, "application/json", gotBody.GenerationConfig.ResponseMIMEType)
	assert.NotNil(t, gotBody.GenerationConfig.ResponseSchema)
	assert.Equal(t, "hello", gotBody.Contents[0].Parts[0].Text)
}

func TestGenerateJSON_ConcatenatesParts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := Response{
			Candidates: []Candidate{
				{Content: Content{Parts: []Part{{Text: `{"a":`}, {Text: `1}`}}}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	out, err := testClient(server.URL).GenerateJSON(context.Background(), []Part{{Text: "x"}}, nil)
	assert.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, string(out))
}

func TestGenerateJSON_RetriesOnServerError(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(candidateResponse(`{}`))
	}))
	defer server.Close()

	out, err := testClient(server.URL).GenerateJSON(context.Background(), []Part{{Text: "x"}}, nil)
	assert.NoError(t, err)
	assert.Equal(t, 2, attempts)
	assert.JSONEq(t, `{}`, string(out))
}

func TestGenerateJSON_NoRetryOnBadRequest(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"code": 400, "message": "bad schema", "status": "INVALID_ARGUMENT"},
		})
	}))
	defer server.Close()

	_, err := testClient(server.URL).GenerateJSON(context.Background(), []Part{{Text: "x"}}, nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "bad schema")
	assert.Equal(t, 1, attempts)
}

func TestGenerateJSON_EmptyCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(Response{})
	}))
	defer server.Close()

	_, err := testClient(server.URL).GenerateJSON(context.Background(), []Part{{Text: "x"}}, nil)
	assert.Error(t, err)
}

func TestGenerateJSON_MissingAPIKey(t *testing.T) {
	client := NewClient("", "", "", 0, zap.NewNop())
	_, err := client.GenerateJSON(context.Background(), []Part{{Text: "x"}}, nil)
	assert.Error(t, err)
}
