package api

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/Kramer-Mwangala/Felixportfolio/pkg/api"
)

// The backend consumes multipart forms with bracket-notation keys for
// nested objects (client[name], location[city], socialLinks[github])
// and comma-joined strings for list fields. All of that flattening
// happens here, in one place, from the typed form structs.

func encodeProjectForm(form api.ProjectForm) (io.Reader, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	fields := map[string]*string{
		"title":            form.Title,
		"description":      form.Description,
		"shortDescription": form.ShortDescription,
		"category":         form.Category,
		"projectUrl":       form.ProjectURL,
		"completedAt":      form.CompletedAt,
		"client[name]":     form.ClientName,
		"client[website]":  form.ClientWebsite,
	}
	if err := writeStringFields(w, fields); err != nil {
		return nil, "", err
	}

	if form.Tools != nil {
		if err := w.WriteField("tools", strings.Join(form.Tools, ",")); err != nil {
			return nil, "", fmt.Errorf("failed to write tools field: %w", err)
		}
	}
	if form.Tags != nil {
		if err := w.WriteField("tags", strings.Join(form.Tags, ",")); err != nil {
			return nil, "", fmt.Errorf("failed to write tags field: %w", err)
		}
	}

	bools := map[string]*bool{
		"featured":    form.Featured,
		"isPublished": form.IsPublished,
	}
	if err := writeBoolFields(w, bools); err != nil {
		return nil, "", err
	}

	for _, img := range form.Images {
		if err := writeFilePart(w, "images", img); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finalize multipart body: %w", err)
	}
	return buf, w.FormDataContentType(), nil
}

func encodeProfileForm(form api.ProfileForm) (io.Reader, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	fields := map[string]*string{
		"name":                   form.Name,
		"title":                  form.Title,
		"tagline":                form.Tagline,
		"bio":                    form.Bio,
		"shortBio":               form.ShortBio,
		"email":                  form.Email,
		"phone":                  form.Phone,
		"resumeUrl":              form.ResumeURL,
		"location[city]":         form.City,
		"location[country]":      form.Country,
		"socialLinks[linkedin]":  form.LinkedIn,
		"socialLinks[twitter]":   form.Twitter,
		"socialLinks[instagram]": form.Instagram,
		"socialLinks[behance]":   form.Behance,
		"socialLinks[dribbble]":  form.Dribbble,
		"socialLinks[github]":    form.GitHub,
		"socialLinks[website]":   form.Website,
		"availability[status]":   form.Status,
	}
	if err := writeStringFields(w, fields); err != nil {
		return nil, "", err
	}

	if err := writeBoolFields(w, map[string]*bool{
		"availability[isAvailable]": form.IsAvailable,
	}); err != nil {
		return nil, "", err
	}

	if form.Avatar != nil {
		if err := writeFilePart(w, "avatar", *form.Avatar); err != nil {
			return nil, "", err
		}
	}
	if form.Resume != nil {
		if err := writeFilePart(w, "resume", *form.Resume); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finalize multipart body: %w", err)
	}
	return buf, w.FormDataContentType(), nil
}

// writeStringFields writes every non-nil field. A nil pointer means
// "not supplied": nothing is written and the backend keeps the stored
// value.
func writeStringFields(w *multipart.Writer, fields map[string]*string) error {
	for key, value := range fields {
		if value == nil {
			continue
		}
		if err := w.WriteField(key, *value); err != nil {
			return fmt.Errorf("failed to write field %s: %w", key, err)
		}
	}
	return nil
}

func writeBoolFields(w *multipart.Writer, fields map[string]*bool) error {
	for key, value := range fields {
		if value == nil {
			continue
		}
		if err := w.WriteField(key, strconv.FormatBool(*value)); err != nil {
			return fmt.Errorf("failed to write field %s: %w", key, err)
		}
	}
	return nil
}

func writeFilePart(w *multipart.Writer, fieldName string, file api.FileUpload) error {
	part, err := w.CreateFormFile(fieldName, file.Name)
	if err != nil {
		return fmt.Errorf("failed to create file part %s: %w", fieldName, err)
	}
	if _, err := io.Copy(part, file.Reader); err != nil {
		return fmt.Errorf("failed to copy file %s: %w", file.Name, err)
	}
	return nil
}
