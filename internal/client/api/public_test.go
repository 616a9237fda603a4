package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kramer-Mwangala/Felixportfolio/pkg/api"
)

func TestClient_GetProjects_QueryString(t *testing.T) {
	tests := []struct {
		wantQuery map[string]string
		name      string
		query     api.ProjectsQuery
		absent    []string
	}{
		{
			name:      "single category filter",
			query:     api.ProjectsQuery{Category: "branding"},
			wantQuery: map[string]string{"category": "branding"},
			absent:    []string{"featured", "page", "limit"},
		},
		{
			name:      "no filters sends no query",
			query:     api.ProjectsQuery{},
			wantQuery: map[string]string{},
			absent:    []string{"category", "featured", "page", "limit"},
		},
		{
			name:      "featured with paging",
			query:     api.ProjectsQuery{Featured: "true", Page: 2, Limit: 4},
			wantQuery: map[string]string{"featured": "true", "page": "2", "limit": "4"},
			absent:    []string{"category"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotURL string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotURL = r.URL.String()
				assert.Equal(t, "/projects", r.URL.Path)

				params := r.URL.Query()
				for key, want := range tt.wantQuery {
					assert.Equal(t, want, params.Get(key), "query param %s", key)
				}
				for _, key := range tt.absent {
					assert.False(t, params.Has(key), "query param %s must be absent", key)
				}
				assert.Len(t, params, len(tt.wantQuery))

				_ = json.NewEncoder(w).Encode(api.ProjectsResponse{
					Projects: []api.Project{{ID: uuid.NewString(), Title: "Brand Refresh", Slug: "brand-refresh"}},
				})
			}))
			defer server.Close()

			client := NewClient(server.URL)
			resp, err := client.GetProjects(context.Background(), tt.query)
			require.NoError(t, err, "url was %s", gotURL)
			require.Len(t, resp.Projects, 1)
			assert.Equal(t, "brand-refresh", resp.Projects[0].Slug)
		})
	}
}

func TestClient_GetProject(t *testing.T) {
	t.Run("found by slug", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/projects/brand-refresh", r.URL.Path)
			_ = json.NewEncoder(w).Encode(api.ProjectResponse{
				Project: api.Project{ID: uuid.NewString(), Title: "Brand Refresh", Slug: "brand-refresh"},
			})
		}))
		defer server.Close()

		client := NewClient(server.URL)
		resp, err := client.GetProject(context.Background(), "brand-refresh")
		require.NoError(t, err)
		assert.Equal(t, "Brand Refresh", resp.Project.Title)
	})

	t.Run("not found", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(api.ErrorResponse{Message: "project not found"})
		}))
		defer server.Close()

		client := NewClient(server.URL)
		_, err := client.GetProject(context.Background(), "nope")
		require.Error(t, err)
		assert.True(t, api.IsNotFound(err))
	})
}

func TestClient_GetSkills_Grouping(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/skills", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"skills": [
				{"_id":"s1","name":"Illustrator","category":"design","proficiency":90},
				{"_id":"s2","name":"Figma","category":"design","proficiency":85}
			],
			"groupedSkills": {
				"design": [
					{"_id":"s1","name":"Illustrator","category":"design","proficiency":90},
					{"_id":"s2","name":"Figma","category":"design","proficiency":85}
				]
			}
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	resp, err := client.GetSkills(context.Background())
	require.NoError(t, err)
	assert.Len(t, resp.Skills, 2)
	require.Contains(t, resp.GroupedSkills, "design")
	assert.Len(t, resp.GroupedSkills["design"], 2)
}

func TestClient_GetSkills_ProficiencyOutOfRange(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"skills":[{"_id":"s1","name":"Figma","proficiency":250}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.GetSkills(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "contract check")
}

func TestClient_GetExperience_Partitions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"work": [{"_id":"e1","type":"work","title":"Designer","organization":"Studio","startDate":"2020-01-01","isCurrent":true}],
			"education": [{"_id":"e2","type":"education","title":"BA Design","organization":"University","startDate":"2015-09-01","endDate":"2019-06-30","isCurrent":false}]
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	resp, err := client.GetExperience(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Work, 1)
	require.Len(t, resp.Education, 1)
	assert.True(t, resp.Work[0].IsCurrent)
	assert.Equal(t, "2019-06-30", resp.Education[0].EndDate)
}

func TestClient_GetTestimonials_FeaturedFilter(t *testing.T) {
	tests := []struct {
		name         string
		wantQuery    string
		featuredOnly bool
	}{
		{name: "all", featuredOnly: false, wantQuery: ""},
		{name: "featured only", featuredOnly: true, wantQuery: "featured=true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.wantQuery, r.URL.RawQuery)
				_ = json.NewEncoder(w).Encode(api.TestimonialsResponse{
					Testimonials: []api.Testimonial{{ID: uuid.NewString(), ClientName: "Acme", Rating: 5}},
				})
			}))
			defer server.Close()

			client := NewClient(server.URL)
			resp, err := client.GetTestimonials(context.Background(), tt.featuredOnly)
			require.NoError(t, err)
			assert.Len(t, resp.Testimonials, 1)
		})
	}
}

func TestClient_SendMessage(t *testing.T) {
	t.Run("acknowledged", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/messages", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.Empty(t, r.Header.Get("Authorization"))

			var req api.MessageRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "Jamie", req.Name)

			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(api.AckResponse{Message: "Message sent successfully"})
		}))
		defer server.Close()

		client := NewClient(server.URL)
		ack, err := client.SendMessage(context.Background(), api.MessageRequest{
			Name:    "Jamie",
			Email:   "jamie@example.com",
			Message: "Love the work",
		})
		require.NoError(t, err)
		assert.Equal(t, "Message sent successfully", ack.Message)
	})

	t.Run("backend validation passes through", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(api.ErrorResponse{
				Message: "validation failed",
				Errors:  []string{"name is required"},
			})
		}))
		defer server.Close()

		client := NewClient(server.URL)
		_, err := client.SendMessage(context.Background(), api.MessageRequest{
			Email:   "jamie@example.com",
			Message: "Love the work",
		})
		require.Error(t, err)

		var apiErr *api.Error
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
		assert.Contains(t, apiErr.Errors, "name is required")
	})
}
