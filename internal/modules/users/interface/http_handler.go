package transport

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"mesaYaApi/internal/modules/users/application/usecase"
	"mesaYaApi/internal/modules/users/domain"
	"mesaYaApi/internal/shared/auth"
	"mesaYaApi/internal/shared/httputil"
)

// Handler exposes account registration and profile lookup.
type Handler struct {
	registrar *usecase.Registrar
	mapper    *httputil.ErrorMapper
}

func NewHandler(registrar *usecase.Registrar) *Handler {
	mapper := httputil.NewErrorMapper().
		WithMapping(domain.ErrUserValidation, http.StatusBadRequest, "invalid registration payload").
		WithMapping(domain.ErrEmailTaken, http.StatusConflict, "email already registered").
		WithMapping(domain.ErrUserNotFound, http.StatusNotFound, "user not found")
	return &Handler{registrar: registrar, mapper: mapper}
}

// Register mounts the auth routes: registration is public, profile requires a
// token.
func (h *Handler) Register(public *echo.Group, authed *echo.Group) {
	public.POST("/auth/register", h.register)
	authed.GET("/auth/me", h.me)
}

func (h *Handler) fail(c echo.Context, err error) error {
	info := h.mapper.Map(err)
	if info.Status >= http.StatusInternalServerError {
		slog.Error("user request failed", slog.String("path", c.Path()), slog.Any("error", err))
	}
	return echo.NewHTTPError(info.Status, info.Message)
}

func (h *Handler) register(c echo.Context) error {
	var cmd domain.RegisterUserCommand
	if err := c.Bind(&cmd); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed payload")
	}
	created, err := h.registrar.Register(c.Request().Context(), cmd)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *Handler) me(c echo.Context) error {
	claims := auth.ClaimsFromEcho(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}
	profile, err := h.registrar.GetProfile(c.Request().Context(), claims.RegisteredClaims.Subject)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, profile)
}
