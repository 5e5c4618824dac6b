package server

import (
	"net/http"
	"path/filepath"

	"SpotiQ/logger"
	"SpotiQ/storage"

	"github.com/google/uuid"
)

// maxUploadSize caps cover/avatar uploads at 10 MB.
const maxUploadSize = 10 << 20

// UploadCoverHandler stores an image in object storage and returns its
// public URL, which clients then use as the image field of a user or
// playlist.
func (h *APIHandler) UploadCoverHandler(w http.ResponseWriter, r *http.Request) {
	if storage.GetMinioClient() == nil {
		respondError(w, http.StatusServiceUnavailable, "Uploads are not available")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid multipart body")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Missing file field")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType != "image/jpeg" && contentType != "image/png" && contentType != "image/webp" {
		respondError(w, http.StatusBadRequest, "Unsupported image type")
		return
	}

	objectName := uuid.New().String() + filepath.Ext(header.Filename)
	url, err := storage.UploadImage(r.Context(), objectName, file, header.Size, contentType)
	if err != nil {
		logger.Error("Failed to upload cover image", logger.ErrorField(err))
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"url": url})
}
