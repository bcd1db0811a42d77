package http

import (
	"net/http"

	"commune/internal/usecase"
	"commune/pkg/logger"

	"github.com/gin-gonic/gin"
)

type MemberHandler struct {
	memberUseCase usecase.MemberUseCase
	logger        *logger.Logger
}

func NewMemberHandler(memberUseCase usecase.MemberUseCase, logger *logger.Logger) *MemberHandler {
	return &MemberHandler{
		memberUseCase: memberUseCase,
		logger:        logger,
	}
}

// ListMembers godoc
// @Summary      The club roster
// @Tags         members
// @Produce      json
// @Success      200  {array}  entity.Member
// @Router       /members [get]
func (h *MemberHandler) ListMembers(c *gin.Context) {
	members, err := h.memberUseCase.ListMembers()
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, members)
}
