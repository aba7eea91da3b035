package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotevault/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotevault/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quotevault/internal/app"
)

// AccountHandler handles registration, login and favorites.
type AccountHandler struct {
	service *app.AccountService
}

// NewAccountHandler creates a new account handler.
func NewAccountHandler(service *app.AccountService) *AccountHandler {
	return &AccountHandler{service: service}
}

// Register handles POST /auth/register.
//
// @Summary Register an account
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.RegisterRequest true "Account"
// @Success 201 {object} dto.AuthResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/v1/auth/register [post]
func (h *AccountHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleError(c, err)
		return
	}

	session, err := h.service.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.AuthResponse{
		Message: dto.MessageRegistered,
		Token:   session.Token,
		User:    dto.FromUser(session.User),
	})
}

// Login handles POST /auth/login.
//
// @Summary Log in
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.AuthResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/v1/auth/login [post]
func (h *AccountHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleError(c, err)
		return
	}

	session, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		Message: dto.MessageLoggedIn,
		Token:   session.Token,
		User:    dto.FromUser(session.User),
	})
}

// ListFavorites handles GET /favorites.
func (h *AccountHandler) ListFavorites(c *gin.Context) {
	id, ok := middleware.IdentityFromGin(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}

	favorites, err := h.service.Favorites(c.Request.Context(), id.UserID)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromQuotes(favorites))
}

// AddFavorite handles POST /favorites.
func (h *AccountHandler) AddFavorite(c *gin.Context) {
	id, ok := middleware.IdentityFromGin(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}

	var req dto.AddFavoriteRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleError(c, err)
		return
	}

	favorites, err := h.service.AddFavorite(c.Request.Context(), id.UserID, req.Quote.ToDomain())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FavoritesResponse{
		Message:   dto.MessageFavoriteAdded,
		Favorites: dto.FromQuotes(favorites),
	})
}

// RemoveFavorite handles DELETE /favorites. Removing a quote that is not a
// favorite still answers 200 with the unchanged list.
func (h *AccountHandler) RemoveFavorite(c *gin.Context) {
	id, ok := middleware.IdentityFromGin(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}

	var req dto.RemoveFavoriteRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleError(c, err)
		return
	}

	favorites, err := h.service.RemoveFavorite(c.Request.Context(), id.UserID, req.Content, req.Author)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FavoritesResponse{
		Message:   dto.MessageFavoriteRemoved,
		Favorites: dto.FromQuotes(favorites),
	})
}
