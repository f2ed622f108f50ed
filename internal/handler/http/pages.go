// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-call-recorder/internal/logger"
	"github.com/MKhiriev/go-call-recorder/internal/utils"
	"github.com/MKhiriev/go-call-recorder/models"
)

//go:embed templates/*.html
var templateFS embed.FS

const layoutTemplate = "layout.html"

type pageTemplates struct {
	record  *template.Template
	call    *template.Template
	apology *template.Template
}

var templateFuncs = template.FuncMap{
	"deref": func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	},
}

func parsePage(name string) (*template.Template, error) {
	tmpl, err := template.New(layoutTemplate).
		Funcs(templateFuncs).
		ParseFS(templateFS, "templates/"+layoutTemplate, "templates/"+name)
	if err != nil {
		return nil, fmt.Errorf("error parsing page template %s: %w", name, err)
	}
	return tmpl, nil
}

// mustParseTemplates parses the embedded pages; they are part of the binary,
// so a failure is a programming error.
func mustParseTemplates() *pageTemplates {
	return &pageTemplates{
		record:  template.Must(parsePage("record.html")),
		call:    template.Must(parsePage("call.html")),
		apology: template.Must(parsePage("apology.html")),
	}
}

// recordPageData is the view model of the recorder page.
type recordPageData struct {
	User      models.User
	TeamColor string
	Action    string

	// Audio is the previously recorded data URL carried through a failed
	// submission; empty renders the recorder instead of the form.
	Audio    string
	AudioURL template.URL

	Form models.RecordingFormData
}

type callPageData struct {
	Call       models.Call
	AudioURL   template.URL
	RecordPath string
}

type apologyPageData struct {
	RetryURL string
}

func newRecordPageData(user models.User, audio *string, form models.RecordingFormData) recordPageData {
	data := recordPageData{
		User:      user,
		TeamColor: user.Team.Color(),
		Action:    recordPath,
		Form:      form,
	}
	if audio != nil {
		data.Audio = *audio
		data.AudioURL = audioURL(*audio)
	}
	return data
}

// audioURL marks a stored payload as safe for a src attribute. Only audio
// data URLs qualify; anything else is dropped.
func audioURL(payload string) template.URL {
	if !strings.HasPrefix(payload, "data:audio/") {
		return ""
	}
	return template.URL(payload)
}

// renderPage executes tmpl into a buffer so that a failing template never
// leaves a half-written page behind; on failure the apology is sent instead.
func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request, tmpl *template.Template, data any, status int) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, layoutTemplate, data); err != nil {
		logger.FromRequest(r).Err(err).Str("template", tmpl.Name()).Msg("error rendering page")
		h.renderApology(w, r)
		return
	}

	w.Header().Set("Content-Type", utils.ContentTypeHTML+"; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// renderApology sends the static apology page with status 500.
func (h *Handler) renderApology(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.templates.apology.ExecuteTemplate(&buf, layoutTemplate, apologyPageData{RetryURL: r.URL.Path}); err != nil {
		logger.FromRequest(r).Err(err).Msg("error rendering apology page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", utils.ContentTypeHTML+"; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = buf.WriteTo(w)
}
