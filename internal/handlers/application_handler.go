package handlers

import (
	"net/http"

	"worknest_backend/internal/middleware"
	"worknest_backend/internal/models"
	"worknest_backend/internal/services"
	"worknest_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	*BaseHandler
	applicationService services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, applicationService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
	}
}

func (h *ApplicationHandler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	applications := rg.Group("/applications")
	applications.Use(authMW)
	{
		applications.POST("", middleware.RequireRoles(models.RoleJobSeeker), h.Submit)
		applications.GET("/mine", middleware.RequireRoles(models.RoleJobSeeker), h.ListMine)
		applications.DELETE("/:id", middleware.RequireRoles(models.RoleJobSeeker), h.Delete)

		applications.GET("/received", middleware.RequireRoles(models.RoleEmployer), h.ListReceived)
		applications.PUT("/:id/status", middleware.RequireRoles(models.RoleEmployer), h.UpdateStatus)
	}
}

// Submit accepts a multipart form: the textual application fields plus
// the resume and cover_letter file parts.
func (h *ApplicationHandler) Submit(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.SubmitApplicationRequest
	if !h.BindAndValidate_Form(c, &req) {
		return
	}

	resume, _ := c.FormFile("resume")
	coverLetter, _ := c.FormFile("cover_letter")

	application, err := h.applicationService.Submit(c.Request.Context(), userID, &req, resume, coverLetter)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, application)
}

func (h *ApplicationHandler) ListMine(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	applications, err := h.applicationService.ListForApplicant(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"applications": applications, "count": len(applications)})
}

func (h *ApplicationHandler) ListReceived(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	applications, err := h.applicationService.ListForEmployer(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"applications": applications, "count": len(applications)})
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.applicationService.UpdateStatus(userID, c.Param("id"), &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Application status updated"})
}

func (h *ApplicationHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.applicationService.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Application withdrawn"})
}
