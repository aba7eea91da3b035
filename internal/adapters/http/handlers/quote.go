package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotevault/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotevault/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quotevault/internal/app"
)

// QuoteHandler handles quote-related HTTP endpoints.
type QuoteHandler struct {
	service *app.QuoteService
}

// NewQuoteHandler creates a new quote handler.
func NewQuoteHandler(service *app.QuoteService) *QuoteHandler {
	return &QuoteHandler{service: service}
}

// GetRandomQuote handles GET /quotes/random.
// Always answers 200: a live quote, a cached one, or a seed quote.
//
// @Summary Get a random quote
// @Tags quotes
// @Produce json
// @Success 200 {object} dto.Quote
// @Router /api/v1/quotes/random [get]
func (h *QuoteHandler) GetRandomQuote(c *gin.Context) {
	c.JSON(http.StatusOK, dto.FromQuote(h.service.Random(c.Request.Context())))
}

// GetQuotesByCategory handles GET /quotes/category/:category.
// The answer is never empty.
//
// @Summary List quotes for a category
// @Tags quotes
// @Produce json
// @Param category path string true "Category label"
// @Success 200 {array} dto.Quote
// @Router /api/v1/quotes/category/{category} [get]
func (h *QuoteHandler) GetQuotesByCategory(c *gin.Context) {
	quotes := h.service.ByCategory(c.Request.Context(), c.Param("category"))
	c.JSON(http.StatusOK, dto.FromQuotes(quotes))
}

// ListCategories handles GET /categories.
//
// @Summary List known categories
// @Tags quotes
// @Produce json
// @Success 200 {array} string
// @Router /api/v1/categories [get]
func (h *QuoteHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Categories(c.Request.Context()))
}

// AddQuote handles POST /quotes. Requires RequireAuth upstream.
//
// @Summary Submit a quote
// @Tags quotes
// @Accept json
// @Produce json
// @Param body body dto.AddQuoteRequest true "Quote"
// @Success 201 {object} dto.Quote
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/quotes [post]
func (h *QuoteHandler) AddQuote(c *gin.Context) {
	id, ok := middleware.IdentityFromGin(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}

	var req dto.AddQuoteRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleError(c, err)
		return
	}

	q, err := h.service.AddQuote(c.Request.Context(), id, req.Content, req.Author, req.Categories)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromQuote(q))
}

// abortUnauthenticated guards handlers mounted without RequireAuth.
func abortUnauthenticated(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		dto.NewErrorResponse(dto.ErrorCodeUnauthorized, "authentication required").WithTraceID(dto.GetTraceID(c)))
}
