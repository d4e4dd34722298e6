package handlers

import (
	"net/http"

	"mentorhub_backend/internal/services"
	"mentorhub_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type MenteeHandler struct {
	*BaseHandler
	menteeService services.MenteeService
}

func NewMenteeHandler(base *BaseHandler, menteeService services.MenteeService) *MenteeHandler {
	return &MenteeHandler{
		BaseHandler:   base,
		menteeService: menteeService,
	}
}

func (h *MenteeHandler) RegisterRoutes(r *gin.RouterGroup) {
	mentees := r.Group("/mentees")
	{
		mentees.GET("", h.List)
		mentees.GET("/:id", h.Get)
		mentees.POST("", h.Register)
		mentees.POST("/login", h.Login)
		mentees.PUT("/:id", h.Update)
		mentees.DELETE("/:id", h.Delete)
	}
}

func (h *MenteeHandler) List(c *gin.Context) {
	activeOnly := c.Query("active") == "true"

	mentees, err := h.menteeService.List(h.GetDB(c), activeOnly)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(mentees),
		"data":    mentees,
	})
}

func (h *MenteeHandler) Get(c *gin.Context) {
	mentee, err := h.menteeService.GetByID(h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    mentee,
	})
}

func (h *MenteeHandler) Register(c *gin.Context) {
	var req dto.RegisterMenteeRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	mentee, err := h.menteeService.Register(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    mentee,
		"message": "Mentee registered successfully!",
	})
}

func (h *MenteeHandler) Update(c *gin.Context) {
	var req dto.UpdateMenteeRequest
	if !h.BindAndValidateStrictJSON(c, &req) {
		return
	}

	mentee, err := h.menteeService.Update(h.GetDB(c), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    mentee,
		"message": "Mentee updated successfully!",
	})
}

func (h *MenteeHandler) Delete(c *gin.Context) {
	if err := h.menteeService.Delete(h.GetDB(c), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Mentee deleted successfully",
	})
}

func (h *MenteeHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	session, token, err := h.menteeService.Login(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    session,
		"token":   token,
	})
}
