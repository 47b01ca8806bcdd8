package transport

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"mesaYaApi/internal/modules/restaurants/application/port"
	"mesaYaApi/internal/modules/restaurants/application/usecase"
	"mesaYaApi/internal/modules/restaurants/domain"
	users "mesaYaApi/internal/modules/users/domain"
	"mesaYaApi/internal/shared/auth"
	"mesaYaApi/internal/shared/httputil"
)

// Handler exposes restaurant discovery and the gated AI insights endpoint.
type Handler struct {
	catalog  *usecase.Catalog
	insights *usecase.Insights
	mapper   *httputil.ErrorMapper
}

func NewHandler(catalog *usecase.Catalog, insights *usecase.Insights) *Handler {
	mapper := httputil.NewErrorMapper().
		WithMapping(domain.ErrRestaurantNotFound, http.StatusNotFound, "restaurant not found").
		WithMapping(port.ErrInsightsNotFound, http.StatusNotFound, "insights not available").
		WithMapping(port.ErrInsightsForbidden, http.StatusForbidden, "insights access denied")
	return &Handler{catalog: catalog, insights: insights, mapper: mapper}
}

// Register mounts the discovery routes. Browsing is public; insights require
// authentication and ownership.
func (h *Handler) Register(public *echo.Group, authed *echo.Group) {
	public.GET("/restaurants", h.list)
	public.GET("/restaurants/:id", h.get)
	public.GET("/restaurants/:id/menu", h.menu)
	authed.GET("/restaurants/:id/ai-insights", h.aiInsights)
}

func (h *Handler) fail(c echo.Context, err error) error {
	info := h.mapper.Map(err)
	if info.Status >= http.StatusInternalServerError {
		slog.Error("restaurant request failed", slog.String("path", c.Path()), slog.Any("error", err))
	}
	return echo.NewHTTPError(info.Status, info.Message)
}

func (h *Handler) list(c echo.Context) error {
	restaurants, err := h.catalog.ListRestaurants(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, restaurants)
}

func (h *Handler) get(c echo.Context) error {
	restaurant, err := h.catalog.GetRestaurant(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, restaurant)
}

func (h *Handler) menu(c echo.Context) error {
	items, err := h.catalog.GetMenu(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) aiInsights(c echo.Context) error {
	claims := auth.ClaimsFromEcho(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}
	restaurantID := c.Param("id")
	viewer := usecase.Viewer{
		UserID: claims.RegisteredClaims.Subject,
		Role:   users.RoleFromClaims(claims.Roles),
	}
	if viewer.Role == users.RoleRestaurant {
		owned, err := h.catalog.Repo.GetByOwner(c.Request().Context(), viewer.UserID)
		if err == nil {
			viewer.RestaurantID = owned.ID
		}
	}
	payload, err := h.insights.Fetch(c.Request().Context(), viewer, restaurantID)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, payload)
}
