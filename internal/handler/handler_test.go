package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/unnita1235/PropertyRentalApplication/internal/domain"
	"github.com/unnita1235/PropertyRentalApplication/internal/handler/dto"
	hmocks "github.com/unnita1235/PropertyRentalApplication/internal/handler/mocks"
	"github.com/unnita1235/PropertyRentalApplication/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type testMocks struct {
	userSvc     *hmocks.MockUserSvc
	propertySvc *hmocks.MockPropertySvc
	bookingSvc  *hmocks.MockBookingSvc
	paymentSvc  *hmocks.MockPaymentSvc
}

// setupRouter wires the handler into a test router with the given
// caller injected in place of the token middleware.
func setupRouter(t *testing.T, identity domain.Identity) (testMocks, http.Handler) {
	t.Helper()
	m := testMocks{
		userSvc:     hmocks.NewMockUserSvc(t),
		propertySvc: hmocks.NewMockPropertySvc(t),
		bookingSvc:  hmocks.NewMockBookingSvc(t),
		paymentSvc:  hmocks.NewMockPaymentSvc(t),
	}

	h := NewHandler(m.userSvc, m.propertySvc, m.bookingSvc, m.paymentSvc)

	withIdentity := func(c *ginext.Context) {
		middleware.SetIdentity(c, identity)
		c.Next()
	}

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/auth/register", h.Register)
		api.POST("/auth/login", h.Login)
		api.GET("/auth/me", withIdentity, h.Me)

		api.GET("/properties", h.ListProperties)
		api.GET("/properties/:id", h.GetProperty)
		api.POST("/properties", withIdentity, middleware.RequireRole(domain.RoleOwner), h.CreateProperty)
		api.PUT("/properties/:id", withIdentity, h.UpdateProperty)
		api.DELETE("/properties/:id", withIdentity, h.DeleteProperty)
		api.GET("/properties/owner/my-properties", withIdentity, h.ListMyProperties)

		api.POST("/bookings", withIdentity, middleware.RequireRole(domain.RoleCustomer), h.CreateBooking)
		api.GET("/bookings/my-bookings", withIdentity, h.ListMyBookings)
		api.GET("/bookings/:id", withIdentity, h.GetBooking)
		api.PATCH("/bookings/:id/approve", withIdentity, h.ApproveBooking)
		api.PATCH("/bookings/:id/reject", withIdentity, h.RejectBooking)

		api.POST("/payments", withIdentity, h.RecordPayment)
		api.GET("/payments/my-payments", withIdentity, h.ListMyPayments)
		api.GET("/payments/:id", withIdentity, h.GetPayment)
	}

	return m, r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

var (
	customer = domain.Identity{UserID: 3, Email: "carol@example.com", Role: domain.RoleCustomer}
	owner    = domain.Identity{UserID: 2, Email: "bob@example.com", Role: domain.RoleOwner}
)

// --- Auth ---

func TestHandler_Register_Success(t *testing.T) {
	m, r := setupRouter(t, domain.Identity{})

	user := &domain.User{ID: 1, Email: "carol@example.com", Role: domain.RoleCustomer, FullName: "Carol"}
	m.userSvc.EXPECT().Register(mock.Anything, mock.Anything).Return(user, nil)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", dto.RegisterRequest{
		Email:    "carol@example.com",
		Password: "secret123",
		Role:     "Customer",
		FullName: "Carol",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.RegisterResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.UserID)
}

func TestHandler_Register_BadBody(t *testing.T) {
	_, r := setupRouter(t, domain.Identity{})

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", map[string]string{"email": "not-an-email"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Register_EmailTaken(t *testing.T) {
	m, r := setupRouter(t, domain.Identity{})

	m.userSvc.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domain.ErrEmailTaken)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", dto.RegisterRequest{
		Email:    "carol@example.com",
		Password: "secret123",
		Role:     "Customer",
		FullName: "Carol",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_Login_Success(t *testing.T) {
	m, r := setupRouter(t, domain.Identity{})

	user := &domain.User{ID: 3, Email: "carol@example.com", Role: domain.RoleCustomer}
	m.userSvc.EXPECT().Login(mock.Anything, "carol@example.com", "secret123").Return("signed-token", user, nil)

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", dto.LoginRequest{
		Email:    "carol@example.com",
		Password: "secret123",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "signed-token", resp.Token)
	assert.Equal(t, int64(3), resp.User.ID)
}

func TestHandler_Login_InvalidCredentials(t *testing.T) {
	m, r := setupRouter(t, domain.Identity{})

	m.userSvc.EXPECT().Login(mock.Anything, "carol@example.com", "wrong").Return("", nil, domain.ErrInvalidCredentials)

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", dto.LoginRequest{
		Email:    "carol@example.com",
		Password: "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_Me(t *testing.T) {
	m, r := setupRouter(t, customer)

	m.userSvc.EXPECT().GetByID(mock.Anything, int64(3)).Return(&domain.User{ID: 3, Email: "carol@example.com"}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/auth/me", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "carol@example.com", resp.Email)
}

// --- Properties ---

func TestHandler_CreateProperty_Success(t *testing.T) {
	m, r := setupRouter(t, owner)

	property := &domain.Property{ID: 7, OwnerID: 2, Title: "Seaside Flat"}
	m.propertySvc.EXPECT().Create(mock.Anything, int64(2), mock.Anything).Return(property, nil)

	w := doJSON(t, r, http.MethodPost, "/api/properties", dto.CreatePropertyRequest{
		Title:         "Seaside Flat",
		Location:      "Brighton",
		PricePerNight: 150,
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.CreatePropertyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(7), resp.PropertyID)
}

func TestHandler_CreateProperty_CustomerForbidden(t *testing.T) {
	_, r := setupRouter(t, customer)

	w := doJSON(t, r, http.MethodPost, "/api/properties", dto.CreatePropertyRequest{
		Title:         "Seaside Flat",
		Location:      "Brighton",
		PricePerNight: 150,
	})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_GetProperty_NotFound(t *testing.T) {
	m, r := setupRouter(t, domain.Identity{})

	m.propertySvc.EXPECT().GetByID(mock.Anything, int64(99)).Return(nil, domain.ErrPropertyNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/properties/99", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetProperty_InvalidID(t *testing.T) {
	_, r := setupRouter(t, domain.Identity{})

	w := doJSON(t, r, http.MethodGet, "/api/properties/abc", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListProperties(t *testing.T) {
	m, r := setupRouter(t, domain.Identity{})

	properties := []*domain.PropertyInfo{
		{Property: domain.Property{ID: 1, Title: "Seaside Flat"}, OwnerName: "Bob"},
		{Property: domain.Property{ID: 2, Title: "Villa"}, OwnerName: "Bob"},
	}
	m.propertySvc.EXPECT().ListAvailable(mock.Anything).Return(properties, nil)

	w := doJSON(t, r, http.MethodGet, "/api/properties", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.PropertyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "Seaside Flat", resp[0].Title)
	assert.Equal(t, "Bob", resp[0].OwnerName)
}

func TestHandler_UpdateProperty_Forbidden(t *testing.T) {
	m, r := setupRouter(t, owner)

	m.propertySvc.EXPECT().Update(mock.Anything, owner, int64(7), mock.Anything).Return(domain.ErrForbidden)

	w := doJSON(t, r, http.MethodPut, "/api/properties/7", dto.UpdatePropertyRequest{})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_DeleteProperty_Success(t *testing.T) {
	m, r := setupRouter(t, owner)

	m.propertySvc.EXPECT().Delete(mock.Anything, owner, int64(7)).Return(nil)

	w := doJSON(t, r, http.MethodDelete, "/api/properties/7", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Bookings ---

func TestHandler_CreateBooking_Success(t *testing.T) {
	m, r := setupRouter(t, customer)

	booking := &domain.Booking{
		ID:         10,
		PropertyID: 7,
		CustomerID: 3,
		StartDate:  time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		TotalPrice: 450,
		Status:     domain.BookingStatusPending,
	}
	m.bookingSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(booking, nil)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", dto.CreateBookingRequest{
		PropertyID: 7,
		StartDate:  "2026-01-12",
		EndDate:    "2026-01-15",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.CreateBookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(10), resp.BookingID)
	assert.Equal(t, 450.0, resp.TotalPrice)
	assert.Equal(t, 3, resp.Nights)
}

func TestHandler_CreateBooking_InvalidDate(t *testing.T) {
	_, r := setupRouter(t, customer)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", dto.CreateBookingRequest{
		PropertyID: 7,
		StartDate:  "12/01/2026",
		EndDate:    "2026-01-15",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateBooking_DatesTaken(t *testing.T) {
	m, r := setupRouter(t, customer)

	m.bookingSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrDatesUnavailable)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", dto.CreateBookingRequest{
		PropertyID: 7,
		StartDate:  "2026-01-12",
		EndDate:    "2026-01-15",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CreateBooking_OwnerForbidden(t *testing.T) {
	_, r := setupRouter(t, owner)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", dto.CreateBookingRequest{
		PropertyID: 7,
		StartDate:  "2026-01-12",
		EndDate:    "2026-01-15",
	})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_ApproveBooking_Success(t *testing.T) {
	m, r := setupRouter(t, owner)

	m.bookingSvc.EXPECT().Approve(mock.Anything, owner, int64(10)).Return(nil)

	w := doJSON(t, r, http.MethodPatch, "/api/bookings/10/approve", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_RejectBooking_NotPending(t *testing.T) {
	m, r := setupRouter(t, owner)

	m.bookingSvc.EXPECT().Reject(mock.Anything, owner, int64(10)).Return(domain.ErrBookingNotPending)

	w := doJSON(t, r, http.MethodPatch, "/api/bookings/10/reject", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetBooking_Forbidden(t *testing.T) {
	m, r := setupRouter(t, customer)

	m.bookingSvc.EXPECT().GetByID(mock.Anything, customer, int64(10)).Return(nil, domain.ErrForbidden)

	w := doJSON(t, r, http.MethodGet, "/api/bookings/10", nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_ListMyBookings(t *testing.T) {
	m, r := setupRouter(t, customer)

	bookings := []*domain.BookingInfo{
		{Booking: domain.Booking{ID: 10, Status: domain.BookingStatusPending}, PropertyTitle: "Seaside Flat"},
	}
	m.bookingSvc.EXPECT().ListForUser(mock.Anything, customer).Return(bookings, nil)

	w := doJSON(t, r, http.MethodGet, "/api/bookings/my-bookings", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Seaside Flat", resp[0].PropertyTitle)
}

// --- Payments ---

func TestHandler_RecordPayment_Success(t *testing.T) {
	m, r := setupRouter(t, customer)

	payment := &domain.Payment{ID: 5, BookingID: 10, Amount: 450, Method: "Credit Card", Status: "Completed"}
	m.paymentSvc.EXPECT().Record(mock.Anything, mock.Anything).Return(payment, nil)

	w := doJSON(t, r, http.MethodPost, "/api/payments", dto.RecordPaymentRequest{BookingID: 10})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.RecordPaymentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(5), resp.PaymentID)
	assert.Equal(t, 450.0, resp.Amount)
}

func TestHandler_RecordPayment_AlreadyPaid(t *testing.T) {
	m, r := setupRouter(t, customer)

	m.paymentSvc.EXPECT().Record(mock.Anything, mock.Anything).Return(nil, domain.ErrPaymentExists)

	w := doJSON(t, r, http.MethodPost, "/api/payments", dto.RecordPaymentRequest{BookingID: 10})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_RecordPayment_NotApproved(t *testing.T) {
	m, r := setupRouter(t, customer)

	m.paymentSvc.EXPECT().Record(mock.Anything, mock.Anything).Return(nil, domain.ErrBookingNotApproved)

	w := doJSON(t, r, http.MethodPost, "/api/payments", dto.RecordPaymentRequest{BookingID: 10})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetPayment_NotFound(t *testing.T) {
	m, r := setupRouter(t, customer)

	m.paymentSvc.EXPECT().GetByID(mock.Anything, customer, int64(5)).Return(nil, domain.ErrPaymentNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/payments/5", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ListMyPayments(t *testing.T) {
	m, r := setupRouter(t, customer)

	payments := []*domain.PaymentInfo{
		{Payment: domain.Payment{ID: 5, Amount: 450}, PropertyTitle: "Seaside Flat"},
	}
	m.paymentSvc.EXPECT().ListForUser(mock.Anything, customer).Return(payments, nil)

	w := doJSON(t, r, http.MethodGet, "/api/payments/my-payments", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.PaymentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, 450.0, resp[0].Amount)
}
