package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/TimeslotBooker/internal/auth"
	"github.com/stpnv0/TimeslotBooker/internal/domain"
	"github.com/stpnv0/TimeslotBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type TimeslotSvc interface {
	CreateTimeslot(ctx context.Context, actor domain.Actor, input domain.CreateTimeslotInput) (*domain.Timeslot, error)
	UpdateTimeslot(ctx context.Context, actor domain.Actor, id string, input domain.UpdateTimeslotInput) (*domain.Timeslot, error)
	GetTimeslot(ctx context.Context, actor domain.Actor, id string) (*domain.TimeslotDetails, error)
	ListFutureTimeslots(ctx context.Context, actor domain.Actor) ([]domain.TimeslotListItem, error)
}

type BookingSvc interface {
	AttemptBook(ctx context.Context, actor domain.Actor, timeslotID, message string) (*domain.Booking, error)
	ListUserBookings(ctx context.Context, actor domain.Actor) ([]domain.UserBooking, error)
}

type CancellationSvc interface {
	CancelBooking(ctx context.Context, actor domain.Actor, bookingID string) (domain.CancelOutcome, error)
	CancelTimeslot(ctx context.Context, actor domain.Actor, timeslotID string) (domain.TimeslotCancellation, error)
}

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type Handler struct {
	timeslotService     TimeslotSvc
	bookingService      BookingSvc
	cancellationService CancellationSvc
	userService         UserSvc
}

func NewHandler(
	timeslotService TimeslotSvc,
	bookingService BookingSvc,
	cancellationService CancellationSvc,
	userService UserSvc,
) *Handler {
	return &Handler{
		timeslotService:     timeslotService,
		bookingService:      bookingService,
		cancellationService: cancellationService,
		userService:         userService,
	}
}

// Timeslots

func (h *Handler) CreateTimeslot(c *ginext.Context) {
	var req dto.CreateTimeslotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	startAt, endAt, ok := parseBounds(c, req.StartAt, req.EndAt)
	if !ok {
		return
	}

	input := domain.CreateTimeslotInput{
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		StartAt:     startAt,
		EndAt:       endAt,
		Capacity:    req.Capacity,
		Hidden:      req.Hidden,
	}

	ts, err := h.timeslotService.CreateTimeslot(c.Request.Context(), actorOf(c), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTimeslotResponse(ts))
}

func (h *Handler) UpdateTimeslot(c *ginext.Context) {
	id, ok := pathID(c, "invalid timeslot id")
	if !ok {
		return
	}

	var req dto.UpdateTimeslotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	startAt, endAt, ok := parseBounds(c, req.StartAt, req.EndAt)
	if !ok {
		return
	}

	input := domain.UpdateTimeslotInput{
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		StartAt:     startAt,
		EndAt:       endAt,
		Capacity:    req.Capacity,
		Status:      domain.TimeslotStatus(req.Status),
	}

	ts, err := h.timeslotService.UpdateTimeslot(c.Request.Context(), actorOf(c), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTimeslotResponse(ts))
}

func (h *Handler) GetTimeslot(c *ginext.Context) {
	id, ok := pathID(c, "invalid timeslot id")
	if !ok {
		return
	}

	details, err := h.timeslotService.GetTimeslot(c.Request.Context(), actorOf(c), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTimeslotDetailsResponse(details))
}

func (h *Handler) ListTimeslots(c *ginext.Context) {
	items, err := h.timeslotService.ListFutureTimeslots(c.Request.Context(), actorOf(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.TimeslotListItemResponse, 0, len(items))
	for i := range items {
		resp = append(resp, dto.ToTimeslotListItemResponse(&items[i]))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) CancelTimeslot(c *ginext.Context) {
	id, ok := pathID(c, "invalid timeslot id")
	if !ok {
		return
	}

	res, err := h.cancellationService.CancelTimeslot(c.Request.Context(), actorOf(c), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TimeslotCancelResponse{
		Status:            string(res.Outcome),
		CancelledBookings: res.CancelledBookings,
	})
}

// Bookings

func (h *Handler) BookTimeslot(c *ginext.Context) {
	timeslotID, ok := pathID(c, "invalid timeslot id")
	if !ok {
		return
	}

	// the body is optional
	var req dto.BookRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
	}

	booking, err := h.bookingService.AttemptBook(c.Request.Context(), actorOf(c), timeslotID, req.Message)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	id, ok := pathID(c, "invalid booking id")
	if !ok {
		return
	}

	outcome, err := h.cancellationService.CancelBooking(c.Request.Context(), actorOf(c), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CancelResponse{Status: string(outcome)})
}

func (h *Handler) ListMyBookings(c *ginext.Context) {
	bookings, err := h.bookingService.ListUserBookings(c.Request.Context(), actorOf(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserBookingResponse, 0, len(bookings))
	for i := range bookings {
		resp = append(resp, dto.ToUserBookingResponse(&bookings[i]))
	}

	c.JSON(http.StatusOK, resp)
}

// Users

func (h *Handler) CreateUser(c *ginext.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateUserInput{
		ID:       req.ID,
		Username: req.Username,
	}

	user, err := h.userService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

func actorOf(c *ginext.Context) domain.Actor {
	return auth.ActorFromContext(c.Request.Context())
}

func pathID(c *ginext.Context, msg string) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msg})
		return "", false
	}
	return id, true
}

func parseBounds(c *ginext.Context, start, end string) (time.Time, time.Time, bool) {
	startAt, err := time.Parse(time.RFC3339, start)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid start_at format, expected RFC3339",
		})
		return time.Time{}, time.Time{}, false
	}

	endAt, err := time.Parse(time.RFC3339, end)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid end_at format, expected RFC3339",
		})
		return time.Time{}, time.Time{}, false
	}

	return startAt, endAt, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrTimeslotFull),
		errors.Is(err, domain.ErrDuplicateBooking),
		errors.Is(err, domain.ErrTimeslotNotOpen),
		errors.Is(err, domain.ErrTimeslotExpired),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrUsernameTaken):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
