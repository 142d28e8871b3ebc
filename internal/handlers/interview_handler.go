package handlers

import (
	"net/http"
	"time"

	"worknest_backend/internal/middleware"
	"worknest_backend/internal/models"
	"worknest_backend/internal/services"
	"worknest_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type InterviewHandler struct {
	*BaseHandler
	interviewService services.InterviewService
}

func NewInterviewHandler(base *BaseHandler, interviewService services.InterviewService) *InterviewHandler {
	return &InterviewHandler{
		BaseHandler:      base,
		interviewService: interviewService,
	}
}

func (h *InterviewHandler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	interviews := rg.Group("/interviews")
	interviews.Use(authMW)
	{
		interviews.POST("/schedule", middleware.RequireRoles(models.RoleEmployer), h.Schedule)
		interviews.PUT("/status", middleware.RequireRoles(models.RoleEmployer), h.UpdateStatus)
		interviews.GET("/employer", middleware.RequireRoles(models.RoleEmployer), h.ListForEmployer)
		interviews.GET("/mine", middleware.RequireRoles(models.RoleJobSeeker), h.ListMine)

		// Both sides of an interview hit this to get the room ID; the
		// service enforces the admission window.
		interviews.GET("/:applicationId/room", h.GetRoom)
	}
}

func (h *InterviewHandler) Schedule(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ScheduleInterviewRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	interview, err := h.interviewService.Schedule(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, interview)
}

func (h *InterviewHandler) UpdateStatus(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateInterviewStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.interviewService.UpdateStatus(userID, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Interview status updated"})
}

func (h *InterviewHandler) ListForEmployer(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	interviews, err := h.interviewService.ListForEmployer(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"interviews": interviews, "count": len(interviews)})
}

func (h *InterviewHandler) ListMine(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	interviews, err := h.interviewService.ListForApplicant(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"interviews": interviews, "count": len(interviews)})
}

func (h *InterviewHandler) GetRoom(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	room, err := h.interviewService.GetRoom(userID, c.Param("applicationId"), time.Now())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, room)
}
