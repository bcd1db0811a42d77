package http

import (
	"encoding/json"
	"net/http"

	"commune/internal/entity"
	"commune/internal/usecase"
	"commune/pkg/logger"

	"github.com/gin-gonic/gin"
)

type SaveHandler struct {
	saveUseCase usecase.SaveUseCase
	logger      *logger.Logger
}

func NewSaveHandler(saveUseCase usecase.SaveUseCase, logger *logger.Logger) *SaveHandler {
	return &SaveHandler{
		saveUseCase: saveUseCase,
		logger:      logger,
	}
}

type SaveRequest struct {
	User      string          `json:"user" binding:"required"`
	PostID    string          `json:"postId" binding:"required"`
	MediaType string          `json:"mediaType"`
	MediaData json.RawMessage `json:"media"`
}

// Save godoc
// @Summary      Bookmark a post
// @Description  Saves a post for the caller. Repeat saves return the existing save id.
// @Tags         saves
// @Accept       json
// @Produce      json
// @Param        save body SaveRequest true "Save request"
// @Success      200  {object}  map[string]interface{}
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /saves [post]
func (h *SaveHandler) Save(c *gin.Context) {
	var req SaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	save, already, err := h.saveUseCase.Save(req.User, req.PostID, entity.MediaType(req.MediaType), req.MediaData)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	if already {
		c.JSON(http.StatusOK, gin.H{"id": save.ID, "already": true})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": save.ID})
}

// ListSaves godoc
// @Summary      List the caller's saved items
// @Tags         saves
// @Produce      json
// @Param        user query string true "User identity"
// @Success      200  {array}  entity.Save
// @Failure      400  {object}  map[string]string
// @Router       /saves [get]
func (h *SaveHandler) ListSaves(c *gin.Context) {
	user := c.Query("user")
	if user == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing ?user="})
		return
	}

	saves, err := h.saveUseCase.ListSaves(user)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, saves)
}

// Unsave godoc
// @Summary      Remove a saved item
// @Description  Idempotent; removing an absent save succeeds.
// @Tags         saves
// @Produce      json
// @Param        id path string true "Save ID"
// @Success      200  {object}  map[string]bool
// @Router       /saves/{id} [delete]
func (h *SaveHandler) Unsave(c *gin.Context) {
	if err := h.saveUseCase.Unsave(c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
