package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kramer-Mwangala/Felixportfolio/pkg/api"
)

const testToken = "test-bearer-token"

func TestClient_Login(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		adminID := uuid.NewString()
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/auth/login", r.URL.Path)
			assert.Empty(t, r.Header.Get("Authorization"))

			var req api.LoginRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "felix@example.com", req.Email)
			assert.Equal(t, "hunter2", req.Password)

			_ = json.NewEncoder(w).Encode(api.LoginResponse{
				Token: "issued-token",
				Admin: api.Admin{ID: adminID, Username: "felix", Email: "felix@example.com", Role: "admin"},
			})
		}))
		defer server.Close()

		client := NewClient(server.URL)
		resp, err := client.Login(context.Background(), "felix@example.com", "hunter2")
		require.NoError(t, err)
		assert.Equal(t, "issued-token", resp.Token)
		assert.Equal(t, "felix", resp.Admin.Username)
	})

	t.Run("wrong credentials are a 401, not a transport error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(api.ErrorResponse{Message: "invalid credentials"})
		}))
		defer server.Close()

		client := NewClient(server.URL)
		_, err := client.Login(context.Background(), "felix@example.com", "wrong")
		require.Error(t, err)
		assert.True(t, api.IsUnauthorized(err))

		var apiErr *api.Error
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "invalid credentials", apiErr.Message)
	})

	t.Run("missing token in response fails the contract", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"admin":{"id":"a1"}}`))
		}))
		defer server.Close()

		client := NewClient(server.URL)
		_, err := client.Login(context.Background(), "felix@example.com", "hunter2")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "contract check")
	})
}

func TestClient_GetMe(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/me", r.URL.Path)
		assert.Equal(t, "Bearer "+testToken, r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(api.MeResponse{Admin: api.Admin{ID: "a1", Username: "felix"}})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	resp, err := client.GetMe(context.Background(), testToken)
	require.NoError(t, err)
	assert.Equal(t, "felix", resp.Admin.Username)
}

func TestClient_CreateSkill(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/skills", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer "+testToken, r.Header.Get("Authorization"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Figma", body["name"])
		assert.Equal(t, float64(85), body["proficiency"])
		// Unset optional fields must be omitted, not sent as zero values
		assert.NotContains(t, body, "color")
		assert.NotContains(t, body, "isVisible")

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(api.SkillResponse{
			Skill: api.Skill{ID: uuid.NewString(), Name: "Figma", Proficiency: 85},
		})
	}))
	defer server.Close()

	name := "Figma"
	proficiency := 85
	client := NewClient(server.URL)
	resp, err := client.CreateSkill(context.Background(), testToken, api.SkillInput{
		Name:        &name,
		Proficiency: &proficiency,
	})
	require.NoError(t, err)
	assert.Equal(t, "Figma", resp.Skill.Name)
}

func TestClient_CreateProject_Multipart(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/projects", r.URL.Path)
		assert.Equal(t, "Bearer "+testToken, r.Header.Get("Authorization"))
		assert.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data"))

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Brand Refresh", r.FormValue("title"))
		assert.Equal(t, "branding", r.FormValue("category"))
		assert.Equal(t, "Acme", r.FormValue("client[name]"))
		assert.Equal(t, "Illustrator,Figma", r.FormValue("tools"))
		assert.Equal(t, "true", r.FormValue("featured"))

		files := r.MultipartForm.File["images"]
		require.Len(t, files, 2)
		assert.Equal(t, "cover.png", files[0].Filename)
		assert.Equal(t, "detail.png", files[1].Filename)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(api.ProjectResponse{
			Project: api.Project{ID: uuid.NewString(), Title: "Brand Refresh", Slug: "brand-refresh"},
		})
	}))
	defer server.Close()

	title := "Brand Refresh"
	category := "branding"
	clientName := "Acme"
	featured := true

	client := NewClient(server.URL)
	resp, err := client.CreateProject(context.Background(), testToken, api.ProjectForm{
		Title:      &title,
		Category:   &category,
		ClientName: &clientName,
		Featured:   &featured,
		Tools:      []string{"Illustrator", "Figma"},
		Images: []api.FileUpload{
			{Name: "cover.png", Reader: strings.NewReader("png-bytes-1")},
			{Name: "detail.png", Reader: strings.NewReader("png-bytes-2")},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "brand-refresh", resp.Project.Slug)
}

func TestClient_UpdateProfile_Multipart(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/profile", r.URL.Path)

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Nairobi", r.FormValue("location[city]"))
		assert.Equal(t, "Kenya", r.FormValue("location[country]"))
		assert.Equal(t, "https://github.com/felix", r.FormValue("socialLinks[github]"))
		assert.Equal(t, "true", r.FormValue("availability[isAvailable]"))
		// Unset fields are omitted so the backend merge keeps them
		_, hasName := r.MultipartForm.Value["name"]
		assert.False(t, hasName)

		files := r.MultipartForm.File["avatar"]
		require.Len(t, files, 1)
		assert.Equal(t, "me.jpg", files[0].Filename)

		_ = json.NewEncoder(w).Encode(api.ProfileResponse{
			Profile: api.Profile{ID: "p1", Name: "Felix", Title: "Designer"},
		})
	}))
	defer server.Close()

	city := "Nairobi"
	country := "Kenya"
	github := "https://github.com/felix"
	available := true

	client := NewClient(server.URL)
	resp, err := client.UpdateProfile(context.Background(), testToken, api.ProfileForm{
		City:        &city,
		Country:     &country,
		GitHub:      &github,
		IsAvailable: &available,
		Avatar:      &api.FileUpload{Name: "me.jpg", Reader: strings.NewReader("jpg-bytes")},
	})
	require.NoError(t, err)
	assert.Equal(t, "Felix", resp.Profile.Name)
}

func TestClient_GetMessages_Filters(t *testing.T) {
	tests := []struct {
		isRead    *bool
		name      string
		wantQuery map[string]string
		page      int
	}{
		{
			name:      "no filters",
			wantQuery: map[string]string{},
		},
		{
			name:      "unread only with page",
			isRead:    boolPtr(false),
			page:      3,
			wantQuery: map[string]string{"isRead": "false", "page": "3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				params := r.URL.Query()
				assert.Len(t, params, len(tt.wantQuery))
				for key, want := range tt.wantQuery {
					assert.Equal(t, want, params.Get(key))
				}
				_ = json.NewEncoder(w).Encode(api.MessagesResponse{
					Messages:    []api.Message{{ID: uuid.NewString(), Name: "Jamie", Email: "jamie@example.com"}},
					UnreadCount: 1,
				})
			}))
			defer server.Close()

			client := NewClient(server.URL)
			resp, err := client.GetMessages(context.Background(), testToken, api.MessagesQuery{
				Page:   tt.page,
				IsRead: tt.isRead,
			})
			require.NoError(t, err)
			assert.Equal(t, 1, resp.UnreadCount)
		})
	}
}

func TestClient_MarkMessageRead(t *testing.T) {
	id := uuid.NewString()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/messages/"+id+"/read", r.URL.Path)
		_ = json.NewEncoder(w).Encode(api.MessageResponse{
			Message: api.Message{ID: id, Name: "Jamie", Email: "jamie@example.com", IsRead: true},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	resp, err := client.MarkMessageRead(context.Background(), testToken, id)
	require.NoError(t, err)
	assert.True(t, resp.Message.IsRead)
}

func TestClient_DeleteProject(t *testing.T) {
	id := uuid.NewString()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/projects/"+id, r.URL.Path)
		assert.Equal(t, "Bearer "+testToken, r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(api.AckResponse{Message: "Project deleted"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	ack, err := client.DeleteProject(context.Background(), testToken, id)
	require.NoError(t, err)
	assert.Equal(t, "Project deleted", ack.Message)
}

func TestClient_AdminCall_Expired(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(api.ErrorResponse{Message: "token expired"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.AdminGetProjects(context.Background(), "stale-token")
	require.Error(t, err)
	assert.True(t, api.IsUnauthorized(err))
}

func boolPtr(b bool) *bool { return &b }
