package http

import (
	"net/http"

	"commune/internal/catalog"
	"commune/pkg/logger"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	spotify *catalog.SpotifyClient
	books   *catalog.BooksClient
	places  *catalog.PlacesClient
	logger  *logger.Logger
}

func NewCatalogHandler(
	spotify *catalog.SpotifyClient,
	books *catalog.BooksClient,
	places *catalog.PlacesClient,
	logger *logger.Logger,
) *CatalogHandler {
	return &CatalogHandler{
		spotify: spotify,
		books:   books,
		places:  places,
		logger:  logger,
	}
}

// SpotifySearch godoc
// @Summary      Search the Spotify track catalog
// @Tags         catalog
// @Produce      json
// @Param        q query string true "Search query"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /catalog/spotify/search [get]
func (h *CatalogHandler) SpotifySearch(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing ?q="})
		return
	}
	if !h.spotify.Configured() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Spotify not configured"})
		return
	}

	body, err := h.spotify.Search(c.Request.Context(), q)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

// BookSearch godoc
// @Summary      Look a book up by ISBN
// @Tags         catalog
// @Produce      json
// @Param        isbn query string true "ISBN"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /catalog/books/search [get]
func (h *CatalogHandler) BookSearch(c *gin.Context) {
	isbn := c.Query("isbn")
	if isbn == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing ?isbn="})
		return
	}
	if !h.books.Configured() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Book catalog not configured"})
		return
	}

	body, err := h.books.SearchByISBN(c.Request.Context(), isbn)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

// PlacesSearch godoc
// @Summary      Text-search places
// @Tags         catalog
// @Produce      json
// @Param        q query string true "Search query"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /catalog/places/search [get]
func (h *CatalogHandler) PlacesSearch(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing ?q="})
		return
	}
	if !h.places.Configured() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Places not configured"})
		return
	}

	body, err := h.places.Search(c.Request.Context(), q)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

// PlacesAutocomplete godoc
// @Summary      Autocomplete a place query
// @Tags         catalog
// @Produce      json
// @Param        q query string true "Partial query"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /catalog/places/autocomplete [get]
func (h *CatalogHandler) PlacesAutocomplete(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing ?q="})
		return
	}
	if !h.places.Configured() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Places not configured"})
		return
	}

	body, err := h.places.Autocomplete(c.Request.Context(), q)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}
