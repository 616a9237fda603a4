package api

import (
	"io"
	"mime"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kramer-Mwangala/Felixportfolio/pkg/api"
)

// parseForm decodes an encoded multipart body back into values and
// file parts so the tests can assert on exactly what was written.
func parseForm(t *testing.T, body io.Reader, contentType string) *multipart.Form {
	t.Helper()

	mediaType, params, err := mime.ParseMediaType(contentType)
	require.NoError(t, err)
	require.Equal(t, "multipart/form-data", mediaType)

	form, err := multipart.NewReader(body, params["boundary"]).ReadForm(1 << 20)
	require.NoError(t, err)
	return form
}

func TestEncodeProjectForm(t *testing.T) {
	title := "Poster Series"
	clientName := "Studio North"
	published := false

	body, contentType, err := encodeProjectForm(api.ProjectForm{
		Title:       &title,
		ClientName:  &clientName,
		IsPublished: &published,
		Tools:       []string{"Photoshop", "InDesign"},
	})
	require.NoError(t, err)

	form := parseForm(t, body, contentType)
	defer func() { _ = form.RemoveAll() }()

	assert.Equal(t, []string{"Poster Series"}, form.Value["title"])
	assert.Equal(t, []string{"Studio North"}, form.Value["client[name]"])
	assert.Equal(t, []string{"Photoshop,InDesign"}, form.Value["tools"])

	// false is a real value and must survive, unlike a nil pointer
	assert.Equal(t, []string{"false"}, form.Value["isPublished"])

	// nil fields stay out of the form entirely
	assert.NotContains(t, form.Value, "description")
	assert.NotContains(t, form.Value, "category")
	assert.NotContains(t, form.Value, "tags")
	assert.NotContains(t, form.Value, "featured")
	assert.Empty(t, form.File["images"])
}

func TestEncodeProjectForm_EmptyListClearsField(t *testing.T) {
	body, contentType, err := encodeProjectForm(api.ProjectForm{
		Tags: []string{},
	})
	require.NoError(t, err)

	form := parseForm(t, body, contentType)
	defer func() { _ = form.RemoveAll() }()

	// An empty non-nil slice sends an empty string so the backend
	// clears the list, while a nil slice leaves it untouched.
	assert.Equal(t, []string{""}, form.Value["tags"])
	assert.NotContains(t, form.Value, "tools")
}

func TestEncodeProjectForm_Images(t *testing.T) {
	body, contentType, err := encodeProjectForm(api.ProjectForm{
		Images: []api.FileUpload{
			{Name: "one.png", Reader: strings.NewReader("first")},
			{Name: "two.png", Reader: strings.NewReader("second")},
		},
	})
	require.NoError(t, err)

	form := parseForm(t, body, contentType)
	defer func() { _ = form.RemoveAll() }()

	files := form.File["images"]
	require.Len(t, files, 2)
	assert.Equal(t, "one.png", files[0].Filename)
	assert.Equal(t, "two.png", files[1].Filename)

	f, err := files[1].Open()
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	content, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "second", string(content))
}

func TestEncodeProfileForm(t *testing.T) {
	city := "Nairobi"
	linkedin := "https://linkedin.com/in/felix"
	available := true
	status := "Open to freelance"

	body, contentType, err := encodeProfileForm(api.ProfileForm{
		City:        &city,
		LinkedIn:    &linkedin,
		IsAvailable: &available,
		Status:      &status,
		Resume:      &api.FileUpload{Name: "resume.pdf", Reader: strings.NewReader("pdf")},
	})
	require.NoError(t, err)

	form := parseForm(t, body, contentType)
	defer func() { _ = form.RemoveAll() }()

	assert.Equal(t, []string{"Nairobi"}, form.Value["location[city]"])
	assert.Equal(t, []string{"https://linkedin.com/in/felix"}, form.Value["socialLinks[linkedin]"])
	assert.Equal(t, []string{"true"}, form.Value["availability[isAvailable]"])
	assert.Equal(t, []string{"Open to freelance"}, form.Value["availability[status]"])

	assert.NotContains(t, form.Value, "name")
	assert.NotContains(t, form.Value, "location[country]")
	assert.Empty(t, form.File["avatar"])

	files := form.File["resume"]
	require.Len(t, files, 1)
	assert.Equal(t, "resume.pdf", files[0].Filename)
}
