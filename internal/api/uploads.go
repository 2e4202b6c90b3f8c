package api

import (
	"bytes"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/aditpras/folio/internal/cdn"
	"github.com/aditpras/folio/internal/media"
)

var allowedImageExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true,
	".gif": true, ".webp": true, ".svg": true,
}

// UploadHandler accepts image uploads and serves stored files. When a CDN
// client is configured, uploads are forwarded there; otherwise they land
// in the local uploads directory and its asset index.
type UploadHandler struct {
	store    *media.Store
	index    media.AssetIndex
	cdn      *cdn.Client // nil when the CDN is not configured
	folder   string
	maxBytes int64
}

// NewUploadHandler creates an upload handler. cdnClient may be nil.
func NewUploadHandler(store *media.Store, index media.AssetIndex, cdnClient *cdn.Client, folder string, maxBytes int64) *UploadHandler {
	if maxBytes <= 0 {
		maxBytes = 5 << 20
	}
	return &UploadHandler{store: store, index: index, cdn: cdnClient, folder: folder, maxBytes: maxBytes}
}

// ServeFile handles GET /uploads/{filename}.
func (h *UploadHandler) ServeFile(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")
	data, err := h.store.Read(filename)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", http.DetectContentType(data))
	_, _ = w.Write(data)
}

// Upload handles POST /api/uploads (multipart/form-data, field "file").
// Files must be images no larger than the configured cap.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)

	if err := r.ParseMultipartForm(h.maxBytes); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("file too large or invalid multipart"))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("missing 'file' field in multipart form"))
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedImageExtensions[ext] {
		writeJSON(w, http.StatusBadRequest, errorBody("unsupported file type: "+ext))
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("failed to read file"))
		return
	}
	if int64(len(data)) > h.maxBytes {
		writeJSON(w, http.StatusBadRequest, errorBody("file too large"))
		return
	}
	// SVG is XML and escapes the content sniffer; everything else must
	// sniff as an image.
	if ext != ".svg" && !strings.HasPrefix(http.DetectContentType(data), "image/") {
		writeJSON(w, http.StatusBadRequest, errorBody("file is not an image"))
		return
	}

	if h.cdn != nil {
		res, err := h.cdn.Upload(r.Context(), bytes.NewReader(data), header.Filename, h.folder)
		if err != nil {
			writeError(w, "cdn upload", err)
			return
		}
		writeJSON(w, http.StatusCreated, CDNUploadResponse{
			PublicID:  res.PublicID,
			URL:       res.URL,
			SecureURL: res.SecureURL,
			ThumbnailURL: h.cdn.DeliveryURL(res.PublicID, &cdn.Transform{
				Width: 400, Height: 400, Crop: "fill", Quality: "auto",
			}),
		})
		return
	}

	name := uuid.NewString() + ext
	written, err := h.store.Save(name, bytes.NewReader(data))
	if err != nil {
		writeError(w, "save upload", err)
		return
	}
	if asset, statErr := h.store.Stat(name); statErr == nil && asset != nil {
		_ = h.index.UpsertAsset(*asset)
	}
	writeJSON(w, http.StatusCreated, UploadResponse{
		Filename: name,
		Size:     written,
		URL:      "/uploads/" + name,
	})
}
