package handlers

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/ukydev/fleet-compliance/internal/db"
	"github.com/ukydev/fleet-compliance/internal/models"
)

const maxUploadSize = 32 << 20 // 32 MB

// AttachmentHandler handles file uploads linked to other records
type AttachmentHandler struct {
	attachments db.AttachmentCollection
	uploadDir   string
}

// NewAttachmentHandler creates a new attachment handler. Files are stored
// under the UPLOAD_DIR environment variable, defaulting to ./uploads.
func NewAttachmentHandler(attachments db.AttachmentCollection) (*AttachmentHandler, error) {
	dir := os.Getenv("UPLOAD_DIR")
	if dir == "" {
		dir = "./uploads"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}

	return &AttachmentHandler{attachments: attachments, uploadDir: dir}, nil
}

// UploadResponse is returned after a successful upload
type UploadResponse struct {
	ID       string `json:"id"`
	FileURL  string `json:"file_url"`
	FileName string `json:"file_name"`
}

// Upload handles a multipart attachment upload. The stored name embeds the
// entity reference and a random UUID so uploads can never collide or
// overwrite each other.
func (h *AttachmentHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		http.Error(w, "Invalid multipart form", http.StatusBadRequest)
		return
	}

	entityType := models.AttachmentEntity(r.FormValue("entity_type"))
	if !models.IsValidAttachmentEntity(entityType) {
		http.Error(w, "Invalid entity type", http.StatusBadRequest)
		return
	}
	entityID := r.FormValue("entity_id")
	if entityID == "" {
		http.Error(w, "entity_id is required", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	safeName := fmt.Sprintf("%s_%s_%s%s", entityType, entityID, uuid.NewString(), filepath.Ext(header.Filename))
	savePath := filepath.Join(h.uploadDir, safeName)

	out, err := os.Create(savePath)
	if err != nil {
		log.WithError(err).Error("Failed to create upload file")
		http.Error(w, "Failed to store file", http.StatusInternalServerError)
		return
	}
	defer out.Close()

	if _, err := io.Copy(out, file); err != nil {
		log.WithError(err).Error("Failed to write upload file")
		http.Error(w, "Failed to store file", http.StatusInternalServerError)
		return
	}

	attachment, err := h.attachments.InsertAttachment(r.Context(), models.Attachment{
		EntityType:  entityType,
		EntityID:    entityID,
		FileName:    header.Filename,
		FilePath:    safeName,
		Description: r.FormValue("description"),
	})
	if err != nil {
		log.WithError(err).Error("Failed to insert attachment metadata")
		http.Error(w, "Failed to store attachment", http.StatusInternalServerError)
		return
	}

	log.WithFields(log.Fields{
		"entity_type": entityType,
		"entity_id":   entityID,
		"file_name":   header.Filename,
	}).Info("Attachment uploaded")

	writeJSON(w, http.StatusCreated, UploadResponse{
		ID:       attachment.ID.Hex(),
		FileURL:  "/uploads/" + safeName,
		FileName: attachment.FileName,
	})
}

// ListByEntity returns the attachments linked to one record
func (h *AttachmentHandler) ListByEntity(w http.ResponseWriter, r *http.Request) {
	entityType := models.AttachmentEntity(r.URL.Query().Get("entity_type"))
	if !models.IsValidAttachmentEntity(entityType) {
		http.Error(w, "Invalid entity type", http.StatusBadRequest)
		return
	}
	entityID := r.URL.Query().Get("entity_id")
	if entityID == "" {
		http.Error(w, "entity_id is required", http.StatusBadRequest)
		return
	}

	attachments, err := h.attachments.FindAttachmentsByEntity(r.Context(), entityType, entityID)
	if err != nil {
		log.WithError(err).Error("Failed to list attachments")
		http.Error(w, "Failed to list attachments", http.StatusInternalServerError)
		return
	}
	if attachments == nil {
		attachments = []models.Attachment{}
	}

	writeJSON(w, http.StatusOK, attachments)
}
