// handlers.go
package main

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// multipartOverhead is the slack allowed on top of the file size for form
// boundaries and headers.
const multipartOverhead = 1 << 20

// Handlers holds dependencies for HTTP handlers. Nothing here changes after
// construction, so every upload is processed in isolation.
type Handlers struct {
	cfg *Config
}

type uploadPage struct {
	Error       string
	MaxFileSize int64
}

// NewRouter creates the chi router serving the upload form, the report page
// and the JSON API.
func NewRouter(cfg *Config) http.Handler {
	h := &Handlers{cfg: cfg}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/", h.uploadHandler)
	r.Post("/tally", h.tallyHandler)
	r.Get("/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		r.Post("/tally", h.apiTallyHandler)
		r.Post("/validate", h.validateFileHandler)
	})
	return r
}

func (h *Handlers) uploadHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-cache")
	h.renderUpload(w, http.StatusOK, "")
}

func (h *Handlers) tallyHandler(w http.ResponseWriter, r *http.Request) {
	report, err := h.process(w, r)
	if err != nil {
		h.renderUpload(w, statusFor(err), userMessage(err))
		return
	}
	h.renderTemplate(w, "results.html", report)
}

// process runs one upload end to end: read the multipart file, load the
// table, calculate and assemble the report.
func (h *Handlers) process(w http.ResponseWriter, r *http.Request) (Report, error) {
	id := uuid.NewString()
	maxSize := h.cfg.Upload.MaxFileSize

	r.Body = http.MaxBytesReader(w, r.Body, maxSize+multipartOverhead)
	if err := r.ParseMultipartForm(maxSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			log.Printf("upload %s: rejected, body exceeds %d bytes", id, maxSize)
			return Report{}, errFileTooLarge
		}
		return Report{}, errNoFile
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		return Report{}, errNoFile
	}
	defer file.Close()

	if header.Size > maxSize {
		log.Printf("upload %s: rejected %q, %d bytes", id, header.Filename, header.Size)
		return Report{}, errFileTooLarge
	}

	table, err := LoadTable(file, header.Filename)
	if err != nil {
		log.Printf("upload %s: %q: %v", id, header.Filename, err)
		return Report{}, err
	}
	calc, err := Calculate(table)
	if err != nil {
		log.Printf("upload %s: %q: %v", id, header.Filename, err)
		return Report{}, err
	}

	log.Printf("upload %s: %q, %d rows, %d labels", id, header.Filename, len(table.Rows), calc.Counts.Len())
	return Report{
		ID:         id,
		FileName:   header.Filename,
		FileSize:   header.Size,
		UploadTime: time.Now(),
		Rows:       len(table.Rows),
		Columns:    table.Width(),
		Preview:    table.Head(h.cfg.PreviewRows),
		Nets:       calc.Nets,
		Counts:     calc.Counts.Entries(),
	}, nil
}

func (h *Handlers) renderUpload(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := pageTemplates.ExecuteTemplate(w, "upload.html", uploadPage{
		Error:       msg,
		MaxFileSize: h.cfg.Upload.MaxFileSize,
	}); err != nil {
		log.Printf("Template error: %v", err)
	}
}

func (h *Handlers) renderTemplate(w http.ResponseWriter, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplates.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("Template error: %v", err)
		http.Error(w, "Failed to render results", http.StatusInternalServerError)
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errFileTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, errNoFile):
		return http.StatusBadRequest
	}
	switch errorKind(err) {
	case "structural":
		return http.StatusUnprocessableEntity
	case "load":
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func userMessage(err error) string {
	switch {
	case errors.Is(err, errFileTooLarge):
		return "The file is too large."
	case errors.Is(err, errNoFile):
		return "Please choose a spreadsheet file to upload."
	}
	switch errorKind(err) {
	case "structural":
		return fmt.Sprintf("Cannot calculate: %v", err)
	default:
		return fmt.Sprintf("An error occurred while processing the file: %v", err)
	}
}
