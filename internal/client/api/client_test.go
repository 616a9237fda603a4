package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kramer-Mwangala/Felixportfolio/pkg/api"
)

func TestNewClient(t *testing.T) {
	baseURL := "http://localhost:5000/api"
	client := NewClient(baseURL)

	assert.NotNil(t, client)
	assert.Equal(t, baseURL, client.baseURL)
	assert.NotNil(t, client.httpClient)
	assert.Equal(t, 30*time.Second, client.httpClient.Timeout)
}

func TestClient_AuthorizationHeader(t *testing.T) {
	tests := []struct {
		name       string
		token      string
		wantHeader string
	}{
		{
			name:       "no token attaches no header",
			token:      "",
			wantHeader: "",
		},
		{
			name:       "token attaches bearer header",
			token:      "secret-token",
			wantHeader: "Bearer secret-token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotHeader string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotHeader = r.Header.Get("Authorization")
				_, _ = w.Write([]byte(`{}`))
			}))
			defer server.Close()

			client := NewClient(server.URL)
			err := client.doJSON(context.Background(), http.MethodGet, "/profile", tt.token, nil, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.wantHeader, gotHeader)
		})
	}
}

func TestClient_ContentType(t *testing.T) {
	t.Run("json body sets application/json", func(t *testing.T) {
		var contentType string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			contentType = r.Header.Get("Content-Type")
			_, _ = w.Write([]byte(`{}`))
		}))
		defer server.Close()

		client := NewClient(server.URL)
		err := client.doJSON(context.Background(), http.MethodPost, "/skills", "t", map[string]string{"name": "Go"}, nil)
		require.NoError(t, err)
		assert.Equal(t, "application/json", contentType)
	})

	t.Run("multipart body keeps the writer's boundary", func(t *testing.T) {
		var contentType string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			contentType = r.Header.Get("Content-Type")
			_, _ = w.Write([]byte(`{}`))
		}))
		defer server.Close()

		title := "New Work"
		body, ct, err := encodeProjectForm(api.ProjectForm{Title: &title})
		require.NoError(t, err)

		client := NewClient(server.URL)
		err = client.doMultipart(context.Background(), http.MethodPost, "/projects", "t", body, ct, nil)
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(contentType, "multipart/form-data; boundary="), contentType)
		assert.NotContains(t, contentType, "application/json")
	})
}

func TestClient_ErrorClassification(t *testing.T) {
	tests := []struct {
		responseBody any
		name         string
		wantMessage  string
		wantErrors   []string
		statusCode   int
	}{
		{
			name:         "message and field errors preserved",
			statusCode:   http.StatusBadRequest,
			responseBody: api.ErrorResponse{Message: "validation failed", Errors: []string{"name is required"}},
			wantMessage:  "validation failed",
			wantErrors:   []string{"name is required"},
		},
		{
			name:         "unauthorized",
			statusCode:   http.StatusUnauthorized,
			responseBody: api.ErrorResponse{Message: "invalid credentials"},
			wantMessage:  "invalid credentials",
		},
		{
			name:         "non-json body falls back to default message",
			statusCode:   http.StatusInternalServerError,
			responseBody: "Internal Server Error",
			wantMessage:  api.DefaultErrorMessage,
		},
		{
			name:         "json body without message falls back to default",
			statusCode:   http.StatusNotFound,
			responseBody: map[string]string{"detail": "gone"},
			wantMessage:  api.DefaultErrorMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				if s, ok := tt.responseBody.(string); ok {
					_, _ = w.Write([]byte(s))
					return
				}
				_ = json.NewEncoder(w).Encode(tt.responseBody)
			}))
			defer server.Close()

			client := NewClient(server.URL)
			err := client.doJSON(context.Background(), http.MethodGet, "/profile", "", nil, nil)
			require.Error(t, err)

			var apiErr *api.Error
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.statusCode, apiErr.StatusCode)
			assert.Equal(t, tt.wantMessage, apiErr.Message)
			assert.Equal(t, tt.wantErrors, apiErr.Errors)
		})
	}
}

func TestClient_NetworkErrorIsNotAPIError(t *testing.T) {
	// Point at a server that is already closed
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL)
	err := client.doJSON(context.Background(), http.MethodGet, "/profile", "", nil, nil)
	require.Error(t, err)

	var apiErr *api.Error
	assert.False(t, errors.As(err, &apiErr), "transport failures must stay plain errors")
}

func TestClient_MalformedJSONResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"profile":`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	var resp api.ProfileResponse
	err := client.doJSON(context.Background(), http.MethodGet, "/profile", "", nil, &resp)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode response")
}

func TestClient_ContractCheck(t *testing.T) {
	t.Run("unknown fields are ignored", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"profile":{"_id":"p1","name":"Felix","title":"Designer","futureField":42}}`))
		}))
		defer server.Close()

		client := NewClient(server.URL)
		resp, err := client.GetProfile(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Felix", resp.Profile.Name)
	})

	t.Run("missing identifier fails fast", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"profile":{"name":"Felix"}}`))
		}))
		defer server.Close()

		client := NewClient(server.URL)
		_, err := client.GetProfile(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "contract check")
	})
}
