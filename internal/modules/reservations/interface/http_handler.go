package transport

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"mesaYaApi/internal/modules/reservations/application/usecase"
	"mesaYaApi/internal/modules/reservations/domain"
	restaurantsport "mesaYaApi/internal/modules/restaurants/application/port"
	restaurants "mesaYaApi/internal/modules/restaurants/domain"
	users "mesaYaApi/internal/modules/users/domain"
	"mesaYaApi/internal/shared/auth"
	"mesaYaApi/internal/shared/httputil"
)

// Handler exposes the reservation lifecycle over REST.
type Handler struct {
	workflow    *usecase.ReservationWorkflow
	restaurants restaurantsport.RestaurantRepository
	mapper      *httputil.ErrorMapper
}

func NewHandler(workflow *usecase.ReservationWorkflow, restaurantRepo restaurantsport.RestaurantRepository) *Handler {
	mapper := httputil.NewErrorMapper().
		WithMapping(domain.ErrValidation, http.StatusBadRequest, "invalid reservation input").
		WithMapping(restaurants.ErrRestaurantInactive, http.StatusBadRequest, "restaurant is not accepting reservations").
		WithMapping(domain.ErrForbidden, http.StatusForbidden, "operation not allowed").
		WithMapping(domain.ErrNotFound, http.StatusNotFound, "reservation not found").
		WithMapping(restaurants.ErrRestaurantNotFound, http.StatusNotFound, "restaurant not found").
		WithMapping(domain.ErrInvalidTransition, http.StatusConflict, "invalid status transition").
		WithMapping(domain.ErrSlotUnavailable, http.StatusConflict, "slot is no longer available").
		WithMapping(domain.ErrBackend, http.StatusBadGateway, "storage unavailable")
	return &Handler{workflow: workflow, restaurants: restaurantRepo, mapper: mapper}
}

// Register mounts the reservation routes on an authenticated group.
func (h *Handler) Register(g *echo.Group) {
	g.POST("/reservations", h.create)
	g.GET("/reservations", h.listAll)
	g.GET("/reservations/me", h.listMine)
	g.GET("/reservations/availability", h.availability)
	g.GET("/reservations/restaurant/:restaurantId", h.listForRestaurant)
	g.GET("/reservations/restaurant/:restaurantId/pending-count", h.pendingCount)
	g.POST("/reservations/:id/cancel", h.cancel)
	g.POST("/reservations/:id/reschedule", h.reschedule)
	g.POST("/reservations/:id/confirm", h.confirm)
	g.POST("/reservations/:id/complete", h.complete)
}

// actor resolves the authenticated principal, including the owned restaurant
// for RESTAURANT accounts.
func (h *Handler) actor(c echo.Context) (usecase.Actor, error) {
	claims := auth.ClaimsFromEcho(c)
	if claims == nil {
		return usecase.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}
	actor := usecase.Actor{
		UserID: claims.RegisteredClaims.Subject,
		Role:   users.RoleFromClaims(claims.Roles),
	}
	if actor.Role == users.RoleRestaurant && h.restaurants != nil {
		owned, err := h.restaurants.GetByOwner(c.Request().Context(), actor.UserID)
		if err != nil {
			if !errors.Is(err, restaurants.ErrRestaurantNotFound) {
				return usecase.Actor{}, h.fail(c, err)
			}
		} else {
			actor.RestaurantID = owned.ID
		}
	}
	return actor, nil
}

func (h *Handler) fail(c echo.Context, err error) error {
	info := h.mapper.Map(err)
	if info.Status >= http.StatusInternalServerError {
		slog.Error("reservation request failed", slog.String("path", c.Path()), slog.Any("error", err))
	}
	return echo.NewHTTPError(info.Status, info.Message)
}

func (h *Handler) create(c echo.Context) error {
	actor, err := h.actor(c)
	if err != nil {
		return err
	}
	var cmd domain.CreateReservationCommand
	if err := c.Bind(&cmd); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed payload")
	}
	created, err := h.workflow.Create(c.Request().Context(), actor, cmd)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *Handler) listMine(c echo.Context) error {
	actor, err := h.actor(c)
	if err != nil {
		return err
	}
	list, err := h.workflow.ListForUser(c.Request().Context(), actor)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *Handler) listAll(c echo.Context) error {
	actor, err := h.actor(c)
	if err != nil {
		return err
	}
	list, err := h.workflow.ListAll(c.Request().Context(), actor)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *Handler) listForRestaurant(c echo.Context) error {
	actor, err := h.actor(c)
	if err != nil {
		return err
	}
	list, err := h.workflow.ListForRestaurant(c.Request().Context(), actor, c.Param("restaurantId"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *Handler) pendingCount(c echo.Context) error {
	actor, err := h.actor(c)
	if err != nil {
		return err
	}
	restaurantID := strings.TrimSpace(c.Param("restaurantId"))
	if restaurantID == "-" {
		restaurantID = ""
	}
	count, err := h.workflow.PendingCount(c.Request().Context(), actor, restaurantID)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]int{"pending": count})
}

// availability reports the slot verdict. A check that cannot be completed in
// time degrades to an unverified-but-permissive answer so the booking flow is
// never blocked by a slow read.
func (h *Handler) availability(c echo.Context) error {
	if _, err := h.actor(c); err != nil {
		return err
	}
	slot := domain.Slot{
		RestaurantID: strings.TrimSpace(c.QueryParam("restaurantId")),
		Date:         strings.TrimSpace(c.QueryParam("date")),
		Time:         strings.TrimSpace(c.QueryParam("time")),
	}
	excludeID := strings.TrimSpace(c.QueryParam("excludeId"))

	verdict, err := h.workflow.CheckAvailability(c.Request().Context(), slot, excludeID)
	if err != nil {
		if errors.Is(err, usecase.ErrAvailabilityUnverified) {
			return c.JSON(http.StatusOK, domain.Availability{
				Available: true,
				Message:   "availability could not be verified, proceed with caution",
			})
		}
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, verdict)
}

func (h *Handler) cancel(c echo.Context) error {
	actor, err := h.actor(c)
	if err != nil {
		return err
	}
	var body struct {
		Reason string `json:"reason"`
	}
	if c.Request().ContentLength > 0 {
		if err := c.Bind(&body); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "malformed payload")
		}
	}
	cmd := domain.CancelReservationCommand{ReservationID: c.Param("id"), Reason: body.Reason}
	cancelled, err := h.workflow.Cancel(c.Request().Context(), actor, cmd)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, cancelled)
}

func (h *Handler) reschedule(c echo.Context) error {
	actor, err := h.actor(c)
	if err != nil {
		return err
	}
	var cmd domain.RescheduleReservationCommand
	if err := c.Bind(&cmd); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed payload")
	}
	cmd.ReservationID = c.Param("id")
	result, err := h.workflow.Reschedule(c.Request().Context(), actor, cmd)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *Handler) confirm(c echo.Context) error {
	return h.transition(c, domain.ReservationStatusConfirmed)
}

func (h *Handler) complete(c echo.Context) error {
	return h.transition(c, domain.ReservationStatusCompleted)
}

func (h *Handler) transition(c echo.Context, next domain.ReservationStatus) error {
	actor, err := h.actor(c)
	if err != nil {
		return err
	}
	cmd := domain.TransitionCommand{ReservationID: c.Param("id"), NextStatus: next}
	updated, err := h.workflow.Transition(c.Request().Context(), actor, cmd)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}
