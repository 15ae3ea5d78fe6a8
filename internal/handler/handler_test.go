package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"

	"github.com/conectarapak-prog/ConecTaTec/internal/checkout"
	"github.com/conectarapak-prog/ConecTaTec/internal/domain"
	"github.com/conectarapak-prog/ConecTaTec/internal/handler/dto"
	hmocks "github.com/conectarapak-prog/ConecTaTec/internal/handler/mocks"
	"github.com/conectarapak-prog/ConecTaTec/internal/middleware"
)

func setupRouter(t *testing.T, actor *domain.Actor) (*hmocks.MockCatalogSvc, *hmocks.MockCheckoutSvc, *hmocks.MockBookingSvc, http.Handler) {
	t.Helper()
	catalogSvc := hmocks.NewMockCatalogSvc(t)
	checkoutSvc := hmocks.NewMockCheckoutSvc(t)
	bookingSvc := hmocks.NewMockBookingSvc(t)

	h := NewHandler(catalogSvc, checkoutSvc, bookingSvc)

	r := ginext.New("test")
	if actor != nil {
		r.Use(func(c *ginext.Context) {
			middleware.SetActor(c, actor)
			c.Next()
		})
	}

	api := r.Group("/api")
	{
		api.GET("/spaces", h.ListSpaces)
		api.GET("/spaces/:id", h.GetSpace)
		api.POST("/checkout", h.StartCheckout)
		api.GET("/checkout/:id", h.GetCheckout)
		api.PUT("/checkout/:id/details", h.UpdateDetails)
		api.POST("/checkout/:id/continue", h.ContinueToPayment)
		api.POST("/checkout/:id/back", h.BackToDetails)
		api.POST("/checkout/:id/pay", h.Pay)
		api.POST("/checkout/:id/done", h.FinishCheckout)
		api.DELETE("/checkout/:id", h.CancelCheckout)
		api.GET("/me/bookings", h.GetMyBookings)
	}

	return catalogSvc, checkoutSvc, bookingSvc, r
}

func sampleSpace() domain.Space {
	return domain.Space{
		ID:         uuid.New().String(),
		Name:       "Gran Salón Tarapacá",
		Type:       "salon",
		Capacity:   250,
		HourlyRate: 20000,
		Rating:     4.8,
		CreatedAt:  time.Now(),
	}
}

func sampleDraft() domain.ReservationDraft {
	return domain.ReservationDraft{
		EventDate:     time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC),
		StartTime:     "18:00",
		DurationHours: 5,
		GuestCount:    50,
	}
}

// --- Spaces ---

func TestHandler_ListSpaces_Success(t *testing.T) {
	catalogSvc, _, _, r := setupRouter(t, nil)

	space := sampleSpace()
	catalogSvc.EXPECT().List(mock.Anything).Return([]*domain.Space{&space}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/spaces", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.SpaceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Gran Salón Tarapacá", resp[0].Name)
	assert.Equal(t, int64(20000), resp[0].HourlyRate)
}

func TestHandler_GetSpace_InvalidID(t *testing.T) {
	_, _, _, r := setupRouter(t, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/spaces/not-a-uuid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetSpace_NotFound(t *testing.T) {
	catalogSvc, _, _, r := setupRouter(t, nil)

	id := uuid.New().String()
	catalogSvc.EXPECT().GetByID(mock.Anything, id).Return(nil, domain.ErrSpaceNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/spaces/"+id, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Checkout ---

func TestHandler_StartCheckout_Success(t *testing.T) {
	_, checkoutSvc, _, r := setupRouter(t, nil)

	space := sampleSpace()
	snap := checkout.Snapshot{
		ID:    uuid.New().String(),
		Space: space,
		State: checkout.CollectingDetails{},
	}
	checkoutSvc.EXPECT().Start(mock.Anything, space.ID).Return(snap, nil)

	body, _ := json.Marshal(dto.StartCheckoutRequest{SpaceID: space.ID})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/checkout", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, snap.ID, resp.ID)
	assert.Equal(t, "collecting_details", resp.Phase)
	assert.Nil(t, resp.Quote)
}

func TestHandler_StartCheckout_BadSpaceID(t *testing.T) {
	_, _, _, r := setupRouter(t, nil)

	body := []byte(`{"space_id":"not-a-uuid"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/checkout", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdateDetails_Success(t *testing.T) {
	_, checkoutSvc, _, r := setupRouter(t, nil)

	id := uuid.New().String()
	draft := sampleDraft()
	quote := domain.PriceQuote{Subtotal: 100000, ServiceFee: 10000, Total: 110000}
	snap := checkout.Snapshot{
		ID:    id,
		Space: sampleSpace(),
		Draft: draft,
		State: checkout.CollectingDetails{},
		Quote: &quote,
	}
	checkoutSvc.EXPECT().UpdateDetails(mock.Anything, id, draft).Return(snap, nil)

	body, _ := json.Marshal(dto.UpdateDetailsRequest{
		EventDate:     "2026-10-17",
		StartTime:     "18:00",
		DurationHours: 5,
		GuestCount:    50,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/checkout/"+id+"/details", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Quote)
	assert.Equal(t, int64(110000), resp.Quote.Total)
	assert.Equal(t, "2026-10-17", resp.Draft.EventDate)
}

func TestHandler_UpdateDetails_InvalidDate(t *testing.T) {
	_, _, _, r := setupRouter(t, nil)

	id := uuid.New().String()
	body := []byte(`{"event_date":"17/10/2026"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/checkout/"+id+"/details", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdateDetails_ValidationRejected(t *testing.T) {
	_, checkoutSvc, _, r := setupRouter(t, nil)

	id := uuid.New().String()
	checkoutSvc.EXPECT().UpdateDetails(mock.Anything, id, mock.Anything).
		Return(checkout.Snapshot{}, domain.ErrValidation)

	body := []byte(`{"duration_hours":9}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/checkout/"+id+"/details", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetCheckout_NotFound(t *testing.T) {
	_, checkoutSvc, _, r := setupRouter(t, nil)

	id := uuid.New().String()
	checkoutSvc.EXPECT().Get(mock.Anything, id).Return(checkout.Snapshot{}, domain.ErrSessionNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/checkout/"+id, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_Continue_GuardRejected(t *testing.T) {
	_, checkoutSvc, _, r := setupRouter(t, nil)

	id := uuid.New().String()
	checkoutSvc.EXPECT().ContinueToPayment(mock.Anything, id).
		Return(checkout.Snapshot{}, domain.ErrValidation)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/checkout/"+id+"/continue", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Pay ---

func payBody(t *testing.T) []byte {
	t.Helper()
	body, err := json.Marshal(dto.PayRequest{
		CardName:   "Ana Rojas",
		CardNumber: "4111 1111 1111 1111",
		Expiry:     "12/27",
		CVC:        "123",
	})
	require.NoError(t, err)
	return body
}

func TestHandler_Pay_Confirmed(t *testing.T) {
	actor := &domain.Actor{ID: uuid.New().String(), Email: "ana@example.cl"}
	_, checkoutSvc, _, r := setupRouter(t, actor)

	id := uuid.New().String()
	draft := sampleDraft()
	snap := checkout.Snapshot{
		ID:    id,
		Space: sampleSpace(),
		Draft: draft,
		State: checkout.Confirmed{Summary: domain.BookingSummary{
			SpaceName:  "Gran Salón Tarapacá",
			EventDate:  draft.EventDate,
			StartTime:  "18:00",
			TotalPrice: 110000,
		}},
	}
	checkoutSvc.EXPECT().
		SubmitPayment(mock.Anything, id, actor, domain.PaymentInstrument{
			HolderName: "Ana Rojas",
			CardNumber: "4111 1111 1111 1111",
			Expiry:     "12/27",
			CVC:        "123",
		}).
		Return(snap, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/checkout/"+id+"/pay", bytes.NewReader(payBody(t)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "confirmed", resp.Phase)
	require.NotNil(t, resp.Summary)
	assert.Equal(t, int64(110000), resp.Summary.TotalPrice)
	assert.Equal(t, "2026-10-17", resp.Summary.EventDate)
}

// A decline is not a transport error: the endpoint answers 200 and the
// session payload carries the inline message for the payment form.
func TestHandler_Pay_DeclinedInline(t *testing.T) {
	actor := &domain.Actor{ID: uuid.New().String(), Email: "ana@example.cl"}
	_, checkoutSvc, _, r := setupRouter(t, actor)

	id := uuid.New().String()
	quote := domain.PriceQuote{Subtotal: 100000, ServiceFee: 10000, Total: 110000}
	snap := checkout.Snapshot{
		ID:    id,
		Space: sampleSpace(),
		Draft: sampleDraft(),
		State: checkout.AwaitingPayment{Quote: quote, ErrMsg: "Pago rechazado por el banco emisor."},
		Quote: &quote,
	}
	checkoutSvc.EXPECT().
		SubmitPayment(mock.Anything, id, actor, mock.Anything).
		Return(snap, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/checkout/"+id+"/pay", bytes.NewReader(payBody(t)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "awaiting_payment", resp.Phase)
	assert.Equal(t, "Pago rechazado por el banco emisor.", resp.PaymentError)
	require.NotNil(t, resp.Quote)
	assert.Equal(t, int64(110000), resp.Quote.Total)
}

func TestHandler_Pay_DuplicateSubmit(t *testing.T) {
	actor := &domain.Actor{ID: uuid.New().String()}
	_, checkoutSvc, _, r := setupRouter(t, actor)

	id := uuid.New().String()
	checkoutSvc.EXPECT().
		SubmitPayment(mock.Anything, id, actor, mock.Anything).
		Return(checkout.Snapshot{}, domain.ErrSubmitInFlight)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/checkout/"+id+"/pay", bytes.NewReader(payBody(t)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_Pay_MissingCardFields(t *testing.T) {
	_, _, _, r := setupRouter(t, nil)

	id := uuid.New().String()
	body := []byte(`{"card_name":"Ana Rojas"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/checkout/"+id+"/pay", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Done / Cancel ---

func TestHandler_Done_Success(t *testing.T) {
	_, checkoutSvc, _, r := setupRouter(t, nil)

	id := uuid.New().String()
	checkoutSvc.EXPECT().Finish(mock.Anything, id).Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/checkout/"+id+"/done", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_Done_BeforeConfirmed(t *testing.T) {
	_, checkoutSvc, _, r := setupRouter(t, nil)

	id := uuid.New().String()
	checkoutSvc.EXPECT().Finish(mock.Anything, id).Return(domain.ErrInvalidTransition)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/checkout/"+id+"/done", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_Cancel_Success(t *testing.T) {
	_, checkoutSvc, _, r := setupRouter(t, nil)

	id := uuid.New().String()
	checkoutSvc.EXPECT().Cancel(mock.Anything, id).Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/checkout/"+id, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

// --- My bookings ---

func TestHandler_GetMyBookings_Success(t *testing.T) {
	actor := &domain.Actor{ID: uuid.New().String(), Email: "ana@example.cl"}
	_, _, bookingSvc, r := setupRouter(t, actor)

	booking := &domain.Booking{
		ID:         uuid.New().String(),
		ActorID:    actor.ID,
		SpaceName:  "Terraza Vista Mar",
		EventDate:  time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC),
		StartTime:  "19:00",
		TotalPrice: 198000,
		Status:     domain.BookingStatusConfirmed,
		CreatedAt:  time.Now(),
	}
	bookingSvc.EXPECT().ListByActor(mock.Anything, actor.ID).Return([]*domain.Booking{booking}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/me/bookings", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Terraza Vista Mar", resp[0].SpaceName)
	assert.Equal(t, "confirmed", resp[0].Status)
}

func TestHandler_GetMyBookings_Unauthorized(t *testing.T) {
	_, _, _, r := setupRouter(t, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/me/bookings", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
