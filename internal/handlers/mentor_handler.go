package handlers

import (
	"net/http"

	"mentorhub_backend/internal/search"
	"mentorhub_backend/internal/services"
	"mentorhub_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type MentorHandler struct {
	*BaseHandler
	mentorService services.MentorService
}

func NewMentorHandler(base *BaseHandler, mentorService services.MentorService) *MentorHandler {
	return &MentorHandler{
		BaseHandler:   base,
		mentorService: mentorService,
	}
}

func (h *MentorHandler) RegisterRoutes(r *gin.RouterGroup) {
	mentors := r.Group("/mentors")
	{
		mentors.GET("", h.List)
		mentors.GET("/search", h.Search)
		mentors.GET("/filter", h.Filter)
		mentors.GET("/:id", h.Get)
		mentors.POST("", h.Register)
		mentors.POST("/login", h.Login)
		mentors.PUT("/:id", h.Update)
		mentors.DELETE("/:id", h.Delete)
	}
}

// List returns all mentors, newest first. ?active=true narrows to active
// profiles only.
func (h *MentorHandler) List(c *gin.Context) {
	activeOnly := c.Query("active") == "true"

	mentors, err := h.mentorService.List(h.GetDB(c), activeOnly)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(mentors),
		"data":    mentors,
	})
}

// Search filters mentors server-side by ?technology= and ?name= substrings.
func (h *MentorHandler) Search(c *gin.Context) {
	technology := c.Query("technology")
	name := c.Query("name")

	mentors, err := h.mentorService.Search(h.GetDB(c), technology, name)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(mentors),
		"data":    mentors,
	})
}

// Filter applies the directory filter (?category=&q=) over the full listing.
func (h *MentorHandler) Filter(c *gin.Context) {
	query := search.Query{
		Category: search.Category(c.Query("category")),
		Text:     c.Query("q"),
	}

	mentors, err := h.mentorService.FilterDirectory(h.GetDB(c), query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(mentors),
		"data":    mentors,
	})
}

func (h *MentorHandler) Get(c *gin.Context) {
	mentor, err := h.mentorService.GetByID(h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    mentor,
	})
}

func (h *MentorHandler) Register(c *gin.Context) {
	var req dto.RegisterMentorRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	mentor, err := h.mentorService.Register(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    mentor,
		"message": "Mentor registered successfully!",
	})
}

func (h *MentorHandler) Update(c *gin.Context) {
	var req dto.UpdateMentorRequest
	if !h.BindAndValidateStrictJSON(c, &req) {
		return
	}

	mentor, err := h.mentorService.Update(h.GetDB(c), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    mentor,
		"message": "Mentor updated successfully!",
	})
}

func (h *MentorHandler) Delete(c *gin.Context) {
	if err := h.mentorService.Delete(h.GetDB(c), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Mentor deleted successfully",
	})
}

func (h *MentorHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	session, token, err := h.mentorService.Login(h.GetDB(c), &req)
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
