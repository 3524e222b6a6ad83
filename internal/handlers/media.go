// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"pressfolio/internal/models"
)

// uploadURLTTL is how long a presigned media upload URL stays valid.
const uploadURLTTL = 15 * time.Minute

// imageExtensions are the media file types accepted for cover, thumbnail,
// and Open Graph images.
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".svg":  true,
}

type uploadURLRequest struct {
	Filename string `json:"filename"`
}

type uploadURLResponse struct {
	Key       string `json:"key"`
	UploadURL string `json:"upload_url"`
	PublicURL string `json:"public_url"`
	ExpiresIn int    `json:"expires_in_seconds"`
}

// MediaUploadURL issues a presigned PUT URL so the admin frontend uploads
// image bytes straight to the bucket. The server never handles the file
// itself; the returned key is what content records store.
func (a *Admin) MediaUploadURL(w http.ResponseWriter, r *http.Request) {
	if a.storageClient == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorBody{Error: "media storage is not configured"})
		return
	}

	var req uploadURLRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	ext := strings.ToLower(path.Ext(req.Filename))
	if !imageExtensions[ext] {
		writeError(w, &models.ValidationError{Field: "filename", Message: "file type is not an accepted image format"})
		return
	}

	key := "media/" + uuid.New().String() + ext
	uploadURL, err := a.storageClient.PresignedUploadURL(r.Context(), key, uploadURLTTL)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, uploadURLResponse{
		Key:       key,
		UploadURL: uploadURL,
		PublicURL: a.storageClient.URL(key),
		ExpiresIn: int(uploadURLTTL.Seconds()),
	})
}

// DeleteMedia removes a media object. Content records referencing the key
// keep it; their image simply stops resolving.
func (a *Admin) DeleteMedia(w http.ResponseWriter, r *http.Request) {
	if a.storageClient == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorBody{Error: "media storage is not configured"})
		return
	}

	key := chi.URLParam(r, "*")
	if key == "" || !strings.HasPrefix(key, "media/") {
		writeError(w, &models.ValidationError{Field: "key", Message: "invalid media key"})
		return
	}

	if err := a.storageClient.Delete(r.Context(), key); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
