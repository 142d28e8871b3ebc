package handlers

import (
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"worknest_backend/internal/storage"
	"worknest_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// FileHandler streams stored artifacts back to clients. It backs the
// URLs local storage hands out; S3-backed deployments serve directly
// from the bucket endpoint.
type FileHandler struct {
	*BaseHandler
	storage storage.Storage
}

func NewFileHandler(base *BaseHandler, st storage.Storage) *FileHandler {
	return &FileHandler{
		BaseHandler: base,
		storage:     st,
	}
}

func (h *FileHandler) RegisterRoutes(r *gin.Engine) {
	files := r.Group("/files")
	{
		files.GET("/*filepath", h.ServeFile)
		files.HEAD("/*filepath", h.CheckFileExists)
	}
}

func (h *FileHandler) ServeFile(c *gin.Context) {
	path, ok := cleanFilePath(c)
	if !ok {
		return
	}

	reader, err := h.storage.Get(c.Request.Context(), path)
	if err != nil {
		apperrors.HandleError(c, apperrors.ErrNotFound(err, "File not found"))
		return
	}
	defer reader.Close()

	if contentType := mime.TypeByExtension(filepath.Ext(path)); contentType != "" {
		c.Header("Content-Type", contentType)
	}
	if size, err := h.storage.GetSize(c.Request.Context(), path); err == nil {
		c.Header("Content-Length", strconv.FormatInt(size, 10))
	}

	if c.Query("download") == "true" {
		c.Header("Content-Disposition", `attachment; filename="`+filepath.Base(path)+`"`)
	} else {
		c.Header("Content-Disposition", "inline")
	}

	if _, err := io.Copy(c.Writer, reader); err != nil {
		c.Error(err)
	}
}

func (h *FileHandler) CheckFileExists(c *gin.Context) {
	path, ok := cleanFilePath(c)
	if !ok {
		return
	}

	exists, err := h.storage.Exists(c.Request.Context(), path)
	if err != nil || !exists {
		c.Status(http.StatusNotFound)
		return
	}
	c.Status(http.StatusOK)
}

// cleanFilePath normalizes the wildcard path and rejects traversal
// attempts before it reaches the storage layer.
func cleanFilePath(c *gin.Context) (string, bool) {
	raw := strings.TrimPrefix(c.Param("filepath"), "/")
	cleaned := filepath.ToSlash(filepath.Clean(raw))
	if cleaned == "." || strings.HasPrefix(cleaned, "..") || strings.Contains(cleaned, "/../") {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid file path"))
		return "", false
	}
	return cleaned, true
}
