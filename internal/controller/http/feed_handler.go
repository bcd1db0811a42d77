package http

import (
	"encoding/json"
	"net/http"

	"commune/internal/usecase"
	"commune/pkg/logger"

	"github.com/gin-gonic/gin"
)

type FeedHandler struct {
	feedUseCase usecase.FeedUseCase
	logger      *logger.Logger
}

func NewFeedHandler(feedUseCase usecase.FeedUseCase, logger *logger.Logger) *FeedHandler {
	return &FeedHandler{
		feedUseCase: feedUseCase,
		logger:      logger,
	}
}

// ListPosts godoc
// @Summary      List visible posts
// @Description  Returns all posts inside the visibility window, newest first, with their live reactions.
// @Tags         posts
// @Produce      json
// @Success      200  {array}  entity.Post
// @Failure      503  {object}  map[string]string
// @Router       /posts [get]
func (h *FeedHandler) ListPosts(c *gin.Context) {
	posts, err := h.feedUseCase.ListPosts()
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

type CreatePostRequest struct {
	Author   string          `json:"author" binding:"required"`
	Text     string          `json:"text" binding:"required"`
	Media    json.RawMessage `json:"media" binding:"required"`
	MediaKey string          `json:"mediaKey"`
}

// CreatePost godoc
// @Summary      Publish a post
// @Description  Creates a post attached to a media item. Rejected with 429 once the author hits the rolling daily limit.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        post body CreatePostRequest true "Post to publish"
// @Success      201  {object}  entity.Post
// @Failure      400  {object}  map[string]string
// @Failure      429  {object}  map[string]string
// @Router       /posts [post]
func (h *FeedHandler) CreatePost(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.feedUseCase.CreatePost(req.Author, req.Text, req.Media, req.MediaKey)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

type ReactionRequest struct {
	User  string `json:"user" binding:"required"`
	Emoji string `json:"emoji" binding:"required"`
}

// React godoc
// @Summary      Add or replace a reaction
// @Description  Sets the caller's reaction on a post. A prior reaction by the same user is superseded atomically.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        id path string true "Post ID"
// @Param        reaction body ReactionRequest true "Reaction"
// @Success      201  {object}  entity.Reaction
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id}/reactions [post]
func (h *FeedHandler) React(c *gin.Context) {
	postID := c.Param("id")

	var req ReactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reaction, err := h.feedUseCase.React(postID, req.User, req.Emoji)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, reaction)
}

// RemoveReaction godoc
// @Summary      Remove a reaction
// @Description  Deletes a single reaction by id. Removing an already-gone reaction succeeds.
// @Tags         posts
// @Produce      json
// @Param        id path string true "Reaction ID"
// @Success      200  {object}  map[string]bool
// @Router       /reactions/{id} [delete]
func (h *FeedHandler) RemoveReaction(c *gin.Context) {
	if err := h.feedUseCase.RemoveReaction(c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// DeletePost godoc
// @Summary      Delete a post
// @Description  Deletes a post and its reactions. Idempotent.
// @Tags         posts
// @Produce      json
// @Param        id path string true "Post ID"
// @Success      200  {object}  map[string]bool
// @Router       /posts/{id} [delete]
func (h *FeedHandler) DeletePost(c *gin.Context) {
	if err := h.feedUseCase.DeletePost(c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// DailyCount godoc
// @Summary      Posts used in the current quota window
// @Tags         posts
// @Produce      json
// @Param        user query string true "User identity"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /posts/count [get]
func (h *FeedHandler) DailyCount(c *gin.Context) {
	user := c.Query("user")
	if user == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing ?user="})
		return
	}

	count, limit, err := h.feedUseCase.DailyCount(user)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count, "limit": limit})
}
