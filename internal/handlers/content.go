package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"portfolio/api/internal/models"
	"portfolio/api/internal/repository"
)

func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_id"})
		return 0, false
	}
	return id, true
}

func listContent[T any](c *gin.Context, log zerolog.Logger, store repository.ContentStore[T]) {
	items, err := store.List(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("list content failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_server_error"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func updateContent[T any](c *gin.Context, log zerolog.Logger, store repository.ContentStore[T], mutate func(*T)) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	item, err := store.Update(c.Request.Context(), id, mutate)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
			return
		}
		log.Error().Err(err).Int64("id", id).Msg("update content failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_server_error"})
		return
	}
	c.JSON(http.StatusOK, item)
}

func deleteContent[T any](c *gin.Context, log zerolog.Logger, store repository.ContentStore[T]) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	removed, err := store.Delete(c.Request.Context(), id)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("delete content failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_server_error"})
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
		return
	}
	c.Status(http.StatusNoContent)
}

func createdOrError[T any](c *gin.Context, log zerolog.Logger, item T, err error) {
	if err != nil {
		log.Error().Err(err).Msg("create content failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_server_error"})
		return
	}
	c.JSON(http.StatusCreated, item)
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

// --- Projects ---

type createProjectRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Highlights  []string `json:"highlights"`
	Order       *int     `json:"order"`
}

type updateProjectRequest struct {
	Title       *string   `json:"title" binding:"omitempty,min=1"`
	Description *string   `json:"description" binding:"omitempty,min=1"`
	Highlights  *[]string `json:"highlights"`
	Order       *int      `json:"order"`
}

func (h HandlerSet) ListProjects(c *gin.Context) {
	listContent(c, h.log, h.stores.Projects)
}

func (h HandlerSet) CreateProject(c *gin.Context) {
	var req createProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.stores.Projects.Create(c.Request.Context(), models.Project{
		ItemMeta:    models.ItemMeta{Order: intOrZero(req.Order)},
		Title:       req.Title,
		Description: req.Description,
		Highlights:  req.Highlights,
	})
	createdOrError(c, h.log, item, err)
}

func (h HandlerSet) UpdateProject(c *gin.Context) {
	var req updateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updateContent(c, h.log, h.stores.Projects, func(p *models.Project) {
		if req.Title != nil {
			p.Title = *req.Title
		}
		if req.Description != nil {
			p.Description = *req.Description
		}
		if req.Highlights != nil {
			p.Highlights = *req.Highlights
		}
		if req.Order != nil {
			p.Order = *req.Order
		}
	})
}

func (h HandlerSet) DeleteProject(c *gin.Context) {
	deleteContent(c, h.log, h.stores.Projects)
}

// --- Achievements ---

type createAchievementRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Order       *int   `json:"order"`
}

type updateAchievementRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=1"`
	Description *string `json:"description" binding:"omitempty,min=1"`
	Date        *string `json:"date" binding:"omitempty,min=1"`
	Order       *int    `json:"order"`
}

func (h HandlerSet) ListAchievements(c *gin.Context) {
	listContent(c, h.log, h.stores.Achievements)
}

func (h HandlerSet) CreateAchievement(c *gin.Context) {
	var req createAchievementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.stores.Achievements.Create(c.Request.Context(), models.Achievement{
		ItemMeta:    models.ItemMeta{Order: intOrZero(req.Order)},
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
	})
	createdOrError(c, h.log, item, err)
}

func (h HandlerSet) UpdateAchievement(c *gin.Context) {
	var req updateAchievementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updateContent(c, h.log, h.stores.Achievements, func(a *models.Achievement) {
		if req.Title != nil {
			a.Title = *req.Title
		}
		if req.Description != nil {
			a.Description = *req.Description
		}
		if req.Date != nil {
			a.Date = *req.Date
		}
		if req.Order != nil {
			a.Order = *req.Order
		}
	})
}

func (h HandlerSet) DeleteAchievement(c *gin.Context) {
	deleteContent(c, h.log, h.stores.Achievements)
}

// --- Skills ---

type createSkillRequest struct {
	Name     string `json:"name" binding:"required"`
	Level    *int   `json:"level" binding:"required,gte=0,lte=100"`
	Category string `json:"category" binding:"required"`
	Order    *int   `json:"order"`
}

type updateSkillRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1"`
	Level    *int    `json:"level" binding:"omitempty,gte=0,lte=100"`
	Category *string `json:"category" binding:"omitempty,min=1"`
	Order    *int    `json:"order"`
}

func (h HandlerSet) ListSkills(c *gin.Context) {
	listContent(c, h.log, h.stores.Skills)
}

func (h HandlerSet) CreateSkill(c *gin.Context) {
	var req createSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.stores.Skills.Create(c.Request.Context(), models.Skill{
		ItemMeta: models.ItemMeta{Order: intOrZero(req.Order)},
		Name:     req.Name,
		Level:    *req.Level,
		Category: req.Category,
	})
	createdOrError(c, h.log, item, err)
}

func (h HandlerSet) UpdateSkill(c *gin.Context) {
	var req updateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updateContent(c, h.log, h.stores.Skills, func(s *models.Skill) {
		if req.Name != nil {
			s.Name = *req.Name
		}
		if req.Level != nil {
			s.Level = *req.Level
		}
		if req.Category != nil {
			s.Category = *req.Category
		}
		if req.Order != nil {
			s.Order = *req.Order
		}
	})
}

func (h HandlerSet) DeleteSkill(c *gin.Context) {
	deleteContent(c, h.log, h.stores.Skills)
}
