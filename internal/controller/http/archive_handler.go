package http

import (
	"net/http"

	"commune/internal/usecase"
	"commune/pkg/logger"

	"github.com/gin-gonic/gin"
)

type ArchiveHandler struct {
	archiveUseCase usecase.ArchiveUseCase
	logger         *logger.Logger
}

func NewArchiveHandler(archiveUseCase usecase.ArchiveUseCase, logger *logger.Logger) *ArchiveHandler {
	return &ArchiveHandler{
		archiveUseCase: archiveUseCase,
		logger:         logger,
	}
}

// ListArchive godoc
// @Summary      A user's permanent share history
// @Tags         archive
// @Produce      json
// @Param        user query string true "User identity"
// @Success      200  {array}  entity.ArchiveEntry
// @Failure      400  {object}  map[string]string
// @Router       /archive [get]
func (h *ArchiveHandler) ListArchive(c *gin.Context) {
	user := c.Query("user")
	if user == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing ?user="})
		return
	}

	entries, err := h.archiveUseCase.ListArchive(user)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// Overlap godoc
// @Summary      Taste overlap between two users
// @Tags         archive
// @Produce      json
// @Param        u1 query string true "First user"
// @Param        u2 query string true "Second user"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /archive/overlap [get]
func (h *ArchiveHandler) Overlap(c *gin.Context) {
	u1, u2 := c.Query("u1"), c.Query("u2")
	if u1 == "" || u2 == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing ?u1=&u2="})
		return
	}

	count, items, err := h.archiveUseCase.Overlap(u1, u2)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"overlap": count, "items": items})
}

// Cleanup godoc
// @Summary      Trigger the retention sweep
// @Description  Archives expired posts and purges them from the feed. Safe to call repeatedly.
// @Tags         archive
// @Produce      json
// @Success      200  {object}  entity.SweepSummary
// @Router       /admin/cleanup [post]
func (h *ArchiveHandler) Cleanup(c *gin.Context) {
	summary, err := h.archiveUseCase.Sweep()
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
