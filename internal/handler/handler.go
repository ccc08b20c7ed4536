package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/unnita1235/PropertyRentalApplication/internal/domain"
	"github.com/unnita1235/PropertyRentalApplication/internal/handler/dto"
	"github.com/unnita1235/PropertyRentalApplication/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type UserSvc interface {
	Register(ctx context.Context, input domain.RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type PropertySvc interface {
	Create(ctx context.Context, ownerID int64, input domain.CreatePropertyInput) (*domain.Property, error)
	GetByID(ctx context.Context, id int64) (*domain.PropertyInfo, error)
	ListAvailable(ctx context.Context) ([]*domain.PropertyInfo, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Property, error)
	Update(ctx context.Context, caller domain.Identity, id int64, input domain.UpdatePropertyInput) error
	Delete(ctx context.Context, caller domain.Identity, id int64) error
}

type BookingSvc interface {
	Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error)
	GetByID(ctx context.Context, caller domain.Identity, id int64) (*domain.BookingInfo, error)
	ListForUser(ctx context.Context, caller domain.Identity) ([]*domain.BookingInfo, error)
	Approve(ctx context.Context, caller domain.Identity, id int64) error
	Reject(ctx context.Context, caller domain.Identity, id int64) error
}

type PaymentSvc interface {
	Record(ctx context.Context, input domain.RecordPaymentInput) (*domain.Payment, error)
	GetByID(ctx context.Context, caller domain.Identity, id int64) (*domain.PaymentInfo, error)
	ListForUser(ctx context.Context, caller domain.Identity) ([]*domain.PaymentInfo, error)
}

type Handler struct {
	userService     UserSvc
	propertyService PropertySvc
	bookingService  BookingSvc
	paymentService  PaymentSvc
}

func NewHandler(userService UserSvc, propertyService PropertySvc, bookingService BookingSvc, paymentService PaymentSvc) *Handler {
	return &Handler{
		userService:     userService,
		propertyService: propertyService,
		bookingService:  bookingService,
		paymentService:  paymentService,
	}
}

// Auth

func (h *Handler) Register(c *ginext.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.RegisterInput{
		Email:          req.Email,
		Password:       req.Password,
		Role:           domain.Role(req.Role),
		FullName:       req.FullName,
		Phone:          req.Phone,
		TelegramChatID: req.TelegramChatID,
	}

	user, err := h.userService.Register(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.RegisterResponse{
		Message: "User registered successfully",
		UserID:  user.ID,
	})
}

func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	token, user, err := h.userService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Message: "Login successful",
		Token:   token,
		User:    dto.ToUserResponse(user),
	})
}

func (h *Handler) Me(c *ginext.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "access token required"})
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), identity.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// Properties

func (h *Handler) CreateProperty(c *ginext.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "access token required"})
		return
	}

	var req dto.CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreatePropertyInput{
		Title:         req.Title,
		Description:   req.Description,
		Location:      req.Location,
		PricePerNight: req.PricePerNight,
		Bedrooms:      req.Bedrooms,
		Bathrooms:     req.Bathrooms,
		MaxGuests:     req.MaxGuests,
		Amenities:     req.Amenities,
		ImageURL:      req.ImageURL,
	}

	property, err := h.propertyService.Create(c.Request.Context(), identity.UserID, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CreatePropertyResponse{
		Message:    "Property created successfully",
		PropertyID: property.ID,
	})
}

func (h *Handler) GetProperty(c *ginext.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	property, err := h.propertyService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPropertyInfoResponse(property))
}

func (h *Handler) ListProperties(c *ginext.Context) {
	properties, err := h.propertyService.ListAvailable(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.PropertyResponse, 0, len(properties))
	for _, p := range properties {
		resp = append(resp, dto.ToPropertyInfoResponse(p))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ListMyProperties(c *ginext.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "access token required"})
		return
	}

	properties, err := h.propertyService.ListByOwner(c.Request.Context(), identity.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.PropertyResponse, 0, len(properties))
	for _, p := range properties {
		resp = append(resp, dto.ToPropertyResponse(p))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateProperty(c *ginext.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "access token required"})
		return
	}

	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.UpdatePropertyInput{
		Title:         req.Title,
		Description:   req.Description,
		Location:      req.Location,
		PricePerNight: req.PricePerNight,
		Bedrooms:      req.Bedrooms,
		Bathrooms:     req.Bathrooms,
		MaxGuests:     req.MaxGuests,
		Amenities:     req.Amenities,
		ImageURL:      req.ImageURL,
		IsAvailable:   req.IsAvailable,
	}

	if err := h.propertyService.Update(c.Request.Context(), identity, id, input); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"message": "Property updated successfully"})
}

func (h *Handler) DeleteProperty(c *ginext.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "access token required"})
		return
	}

	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.propertyService.Delete(c.Request.Context(), identity, id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"message": "Property deleted successfully"})
}

// Bookings

func (h *Handler) CreateBooking(c *ginext.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "access token required"})
		return
	}

	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	start, err := time.Parse(domain.DateLayout, req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid start_date, expected YYYY-MM-DD"})
		return
	}
	end, err := time.Parse(domain.DateLayout, req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid end_date, expected YYYY-MM-DD"})
		return
	}

	booking, err := h.bookingService.Create(c.Request.Context(), domain.CreateBookingInput{
		PropertyID: req.PropertyID,
		CustomerID: identity.UserID,
		StartDate:  start,
		EndDate:    end,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CreateBookingResponse{
		Message:    "Booking request created successfully",
		BookingID:  booking.ID,
		TotalPrice: booking.TotalPrice,
		Nights:     domain.Nights(booking.StartDate, booking.EndDate),
	})
}

func (h *Handler) GetBooking(c *ginext.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "access token required"})
		return
	}

	id, ok := parseID(c)
	if !ok {
		return
	}

	booking, err := h.bookingService.GetByID(c.Request.Context(), identity, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingInfoResponse(booking))
}

func (h *Handler) ListMyBookings(c *ginext.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "access token required"})
		return
	}

	bookings, err := h.bookingService.ListForUser(c.Request.Context(), identity)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingInfoResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ApproveBooking(c *ginext.Context) {
	h.transitionBooking(c, h.bookingService.Approve, "Booking approved successfully")
}

func (h *Handler) RejectBooking(c *ginext.Context) {
	h.transitionBooking(c, h.bookingService.Reject, "Booking rejected successfully")
}

func (h *Handler) transitionBooking(c *ginext.Context, transition func(context.Context, domain.Identity, int64) error, message string) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "access token required"})
		return
	}

	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := transition(c.Request.Context(), identity, id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"message": message})
}

// Payments

func (h *Handler) RecordPayment(c *ginext.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "access token required"})
		return
	}

	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	payment, err := h.paymentService.Record(c.Request.Context(), domain.RecordPaymentInput{
		BookingID:     req.BookingID,
		CustomerID:    identity.UserID,
		Method:        req.PaymentMethod,
		TransactionID: req.TransactionID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.RecordPaymentResponse{
		Message:   "Payment recorded successfully. Booking is now completed.",
		PaymentID: payment.ID,
		Amount:    payment.Amount,
	})
}

func (h *Handler) GetPayment(c *ginext.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "access token required"})
		return
	}

	id, ok := parseID(c)
	if !ok {
		return
	}

	payment, err := h.paymentService.GetByID(c.Request.Context(), identity, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentInfoResponse(payment))
}

func (h *Handler) ListMyPayments(c *ginext.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "access token required"})
		return
	}

	payments, err := h.paymentService.ListForUser(c.Request.Context(), identity)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		resp = append(resp, dto.ToPaymentInfoResponse(p))
	}

	c.JSON(http.StatusOK, resp)
}

func parseID(c *ginext.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid id"})
		return 0, false
	}
	return id, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrPropertyNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrPaymentNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrDatesUnavailable),
		errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrPaymentExists):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrPropertyUnavailable),
		errors.Is(err, domain.ErrBookingNotPending),
		errors.Is(err, domain.ErrBookingNotApproved):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
