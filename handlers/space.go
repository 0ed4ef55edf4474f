package handlers

import (
	"errors"
	"net/http"
	"strconv"

	spaceRepo "venuehive/database/repository/space"
	"venuehive/middleware"
	"venuehive/models"
	"venuehive/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SpaceHandler exposes listing CRUD and browse endpoints.
type SpaceHandler struct {
	Repo   spaceRepo.SpaceRepository
	Logger *zap.Logger
}

func NewSpaceHandler(repo spaceRepo.SpaceRepository, logger *zap.Logger) *SpaceHandler {
	return &SpaceHandler{Repo: repo, Logger: logger}
}

// ListSpacesHandler returns published spaces matching the browse filters.
func (h *SpaceHandler) ListSpacesHandler(c *gin.Context) {
	filter := spaceRepo.SpaceFilter{
		PricingMode: models.PricingMode(c.Query("pricing_mode")),
		Amenity:     c.Query("amenity"),
		City:        c.Query("city"),
	}
	if raw := c.Query("min_capacity"); raw != "" {
		capacity, err := strconv.Atoi(raw)
		if err != nil || capacity < 1 {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", "min_capacity must be a positive integer")
			return
		}
		filter.MinCapacity = capacity
	}

	spaces, err := h.Repo.List(filter)
	if err != nil {
		h.Logger.Error("failed to list spaces", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to list spaces", "please try again")
		return
	}
	if spaces == nil {
		spaces = []models.Space{}
	}
	c.JSON(http.StatusOK, gin.H{"spaces": spaces})
}

// GetSpaceHandler returns a single space with its formatted location.
func (h *SpaceHandler) GetSpaceHandler(c *gin.Context) {
	space, err := h.Repo.GetByID(c.Param("id"))
	if err != nil {
		h.respondSpaceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"space":    space,
		"location": space.Location.Format(),
	})
}

// CreateSpaceHandler publishes a new listing owned by the caller.
func (h *SpaceHandler) CreateSpaceHandler(c *gin.Context) {
	var space models.Space
	if err := c.ShouldBindJSON(&space); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	actor := middleware.ActorFromContext(c)
	space.ID = uuid.New().String()
	space.HostID = actor.ID

	if err := space.Validate(); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid listing", err.Error())
		return
	}
	if err := h.Repo.Create(&space); err != nil {
		h.Logger.Error("failed to create space", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to create space", "please try again")
		return
	}
	c.JSON(http.StatusCreated, space)
}

// UpdateSpaceHandler replaces a listing's mutable fields, host-scoped.
func (h *SpaceHandler) UpdateSpaceHandler(c *gin.Context) {
	var space models.Space
	if err := c.ShouldBindJSON(&space); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	actor := middleware.ActorFromContext(c)
	space.ID = c.Param("id")
	space.HostID = actor.ID

	if err := space.Validate(); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid listing", err.Error())
		return
	}

	existing, err := h.Repo.GetByID(space.ID)
	if err != nil {
		h.respondSpaceError(c, err)
		return
	}
	if existing.HostID != actor.ID {
		utils.JSONError(c, http.StatusForbidden, "not authorized", "only the host may update this space")
		return
	}
	space.CreatedAt = existing.CreatedAt

	if err := h.Repo.Update(&space); err != nil {
		h.respondSpaceError(c, err)
		return
	}
	c.JSON(http.StatusOK, space)
}

// DeleteSpaceHandler removes a listing owned by the caller.
func (h *SpaceHandler) DeleteSpaceHandler(c *gin.Context) {
	actor := middleware.ActorFromContext(c)
	if err := h.Repo.DeleteForHost(c.Param("id"), actor.ID); err != nil {
		h.respondSpaceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// ListMySpacesHandler returns the caller's own listings.
func (h *SpaceHandler) ListMySpacesHandler(c *gin.Context) {
	actor := middleware.ActorFromContext(c)
	spaces, err := h.Repo.ListByHost(actor.ID)
	if err != nil {
		h.Logger.Error("failed to list host spaces", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to list spaces", "please try again")
		return
	}
	if spaces == nil {
		spaces = []models.Space{}
	}
	c.JSON(http.StatusOK, gin.H{"spaces": spaces})
}

func (h *SpaceHandler) respondSpaceError(c *gin.Context, err error) {
	if errors.Is(err, spaceRepo.ErrNotFound) {
		utils.JSONError(c, http.StatusNotFound, "space not found", "")
		return
	}
	h.Logger.Error("space operation failed", zap.Error(err))
	utils.JSONError(c, http.StatusInternalServerError, "operation failed", "please try again")
}
