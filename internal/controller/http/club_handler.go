package http

import (
	"net/http"

	"commune/internal/usecase"
	"commune/pkg/logger"

	"github.com/gin-gonic/gin"
)

type ClubHandler struct {
	pickUseCase usecase.PickUseCase
	logger      *logger.Logger
}

func NewClubHandler(pickUseCase usecase.PickUseCase, logger *logger.Logger) *ClubHandler {
	return &ClubHandler{
		pickUseCase: pickUseCase,
		logger:      logger,
	}
}

// ListPicks godoc
// @Summary      This week's club picks
// @Description  Empty before the first synthesis of the week.
// @Tags         club
// @Produce      json
// @Success      200  {array}  entity.ClubPick
// @Router       /club/picks [get]
func (h *ClubHandler) ListPicks(c *gin.Context) {
	picks, err := h.pickUseCase.ListCurrent()
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, picks)
}

// GeneratePicks godoc
// @Summary      Trigger pick synthesis
// @Description  Generates this week's picks from archive popularity. Safe to call repeatedly; a week is synthesized at most once.
// @Tags         club
// @Produce      json
// @Success      200  {object}  entity.SynthesisSummary
// @Router       /admin/picks [post]
func (h *ClubHandler) GeneratePicks(c *gin.Context) {
	summary, err := h.pickUseCase.Synthesize()
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
