package services

import (
	"context"
	"fmt"
	"mime"
	"mime/multipart"
	"path/filepath"
	"time"

	"worknest_backend/internal/logger"
	"worknest_backend/internal/models"
	"worknest_backend/internal/storage"
	"worknest_backend/pkg/apperrors"

	"github.com/google/uuid"
)

// UploadConfig bounds what the artifact store accepts.
type UploadConfig struct {
	MaxSize      int64
	AllowedTypes []string
}

// UploadService validates incoming files and hands them to the artifact
// store, returning the opaque {id, url} pair the rest of the system
// works with.
type UploadService struct {
	storage storage.Storage
	config  UploadConfig
}

func NewUploadService(st storage.Storage, config UploadConfig) *UploadService {
	return &UploadService{
		storage: st,
		config:  config,
	}
}

// Upload stores one file under the given folder. The content type is
// checked against the allowed set before anything is written.
func (s *UploadService) Upload(ctx context.Context, file *multipart.FileHeader, folder string) (models.FileRef, error) {
	if file.Size > s.config.MaxSize {
		return models.FileRef{}, apperrors.ErrFileTooLarge
	}

	mimeType := s.detectMimeType(file)
	if !s.isAllowedType(mimeType) {
		return models.FileRef{}, apperrors.ErrInvalidFileType
	}

	src, err := file.Open()
	if err != nil {
		return models.FileRef{}, apperrors.ErrUpload(err, "Failed to read uploaded file")
	}
	defer src.Close()

	path := fmt.Sprintf("%s/%d_%s%s", folder, time.Now().UnixNano(), uuid.NewString()[:8], filepath.Ext(file.Filename))

	if err := s.storage.Save(ctx, path, src, mimeType); err != nil {
		return models.FileRef{}, apperrors.ErrUpload(err, "Failed to store uploaded file")
	}

	url, err := s.storage.GetURL(ctx, path)
	if err != nil {
		return models.FileRef{}, apperrors.ErrUpload(err, "Failed to resolve file URL")
	}

	return models.FileRef{PublicID: path, URL: url}, nil
}

// Delete removes a stored artifact. Best-effort: an absent file is fine
// and other failures are logged, never propagated.
func (s *UploadService) Delete(ctx context.Context, publicID string) {
	if publicID == "" {
		return
	}
	if err := s.storage.Delete(ctx, publicID); err != nil {
		logger.CtxWarn(ctx, "failed to delete stored artifact", "public_id", publicID, "error", err.Error())
	}
}

// URL resolves the retrieval URL for a stored artifact path.
func (s *UploadService) URL(ctx context.Context, publicID string) string {
	if publicID == "" {
		return ""
	}
	url, err := s.storage.GetURL(ctx, publicID)
	if err != nil {
		return ""
	}
	return url
}

func (s *UploadService) detectMimeType(file *multipart.FileHeader) string {
	mimeType := file.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = mime.TypeByExtension(filepath.Ext(file.Filename))
	}
	return mimeType
}

func (s *UploadService) isAllowedType(mimeType string) bool {
	for _, allowed := range s.config.AllowedTypes {
		if mimeType == allowed {
			return true
		}
	}
	return false
}
