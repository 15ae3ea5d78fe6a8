package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"

	"github.com/conectarapak-prog/ConecTaTec/internal/checkout"
	"github.com/conectarapak-prog/ConecTaTec/internal/domain"
	"github.com/conectarapak-prog/ConecTaTec/internal/handler/dto"
	"github.com/conectarapak-prog/ConecTaTec/internal/middleware"
)

const dateLayout = "2006-01-02"

type CatalogSvc interface {
	GetByID(ctx context.Context, id string) (*domain.Space, error)
	List(ctx context.Context) ([]*domain.Space, error)
}

type CheckoutSvc interface {
	Start(ctx context.Context, spaceID string) (checkout.Snapshot, error)
	Get(ctx context.Context, id string) (checkout.Snapshot, error)
	UpdateDetails(ctx context.Context, id string, draft domain.ReservationDraft) (checkout.Snapshot, error)
	ContinueToPayment(ctx context.Context, id string) (checkout.Snapshot, error)
	BackToDetails(ctx context.Context, id string) (checkout.Snapshot, error)
	SubmitPayment(ctx context.Context, id string, actor *domain.Actor, inst domain.PaymentInstrument) (checkout.Snapshot, error)
	Finish(ctx context.Context, id string) error
	Cancel(ctx context.Context, id string) error
}

type BookingSvc interface {
	ListByActor(ctx context.Context, actorID string) ([]*domain.Booking, error)
}

type Handler struct {
	catalogService  CatalogSvc
	checkoutService CheckoutSvc
	bookingService  BookingSvc
}

func NewHandler(catalogService CatalogSvc, checkoutService CheckoutSvc, bookingService BookingSvc) *Handler {
	return &Handler{
		catalogService:  catalogService,
		checkoutService: checkoutService,
		bookingService:  bookingService,
	}
}

// Spaces

func (h *Handler) ListSpaces(c *ginext.Context) {
	spaces, err := h.catalogService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.SpaceResponse, 0, len(spaces))
	for _, s := range spaces {
		resp = append(resp, dto.ToSpaceResponse(s))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetSpace(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid space id"})
		return
	}

	space, err := h.catalogService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSpaceResponse(space))
}

// Checkout

func (h *Handler) StartCheckout(c *ginext.Context) {
	var req dto.StartCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	snap, err := h.checkoutService.Start(c.Request.Context(), req.SpaceID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToSessionResponse(snap))
}

func (h *Handler) GetCheckout(c *ginext.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	snap, err := h.checkoutService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSessionResponse(snap))
}

func (h *Handler) UpdateDetails(c *ginext.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req dto.UpdateDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	draft := domain.ReservationDraft{
		StartTime:     req.StartTime,
		DurationHours: req.DurationHours,
		GuestCount:    req.GuestCount,
		Notes:         req.Notes,
	}
	if req.EventDate != "" {
		eventDate, err := time.Parse(dateLayout, req.EventDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "invalid event_date format, expected YYYY-MM-DD",
			})
			return
		}
		draft.EventDate = eventDate
	}

	snap, err := h.checkoutService.UpdateDetails(c.Request.Context(), id, draft)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSessionResponse(snap))
}

func (h *Handler) ContinueToPayment(c *ginext.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	snap, err := h.checkoutService.ContinueToPayment(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSessionResponse(snap))
}

func (h *Handler) BackToDetails(c *ginext.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	snap, err := h.checkoutService.BackToDetails(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSessionResponse(snap))
}

// Pay returns 200 with the resulting session state for declines and booking
// failures: those surface as an inline payment_error and the client retries
// from the payment step. Transport-level errors are reserved for unknown
// sessions, duplicate submits and the like.
func (h *Handler) Pay(c *ginext.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req dto.PayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	inst := domain.PaymentInstrument{
		HolderName: req.CardName,
		CardNumber: req.CardNumber,
		Expiry:     req.Expiry,
		CVC:        req.CVC,
	}

	snap, err := h.checkoutService.SubmitPayment(c.Request.Context(), id, middleware.ActorFromContext(c), inst)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSessionResponse(snap))
}

func (h *Handler) FinishCheckout(c *ginext.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	if err := h.checkoutService.Finish(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "done"})
}

func (h *Handler) CancelCheckout(c *ginext.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	if err := h.checkoutService.Cancel(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "cancelled"})
}

// Bookings

func (h *Handler) GetMyBookings(c *ginext.Context) {
	actor := middleware.ActorFromContext(c)
	if actor == nil {
		h.handleError(c, domain.ErrNotAuthenticated)
		return
	}

	bookings, err := h.bookingService.ListByActor(c.Request.Context(), actor.ID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) sessionID(c *ginext.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid session id"})
		return "", false
	}
	return id, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrSpaceNotFound),
		errors.Is(err, domain.ErrSessionNotFound),
		errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrSubmitInFlight),
		errors.Is(err, domain.ErrInvalidTransition):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrNotAuthenticated):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
