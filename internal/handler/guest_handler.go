package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"casamento/registry/internal/model"
	"casamento/registry/internal/service"
	"casamento/registry/pkg/response"
)

type GuestHandler struct {
	guestService       service.GuestService
	reservationService service.ReservationService
	rsvpService        service.RsvpService
}

func NewGuestHandler(
	guestService service.GuestService,
	reservationService service.ReservationService,
	rsvpService service.RsvpService,
) *GuestHandler {
	return &GuestHandler{
		guestService:       guestService,
		reservationService: reservationService,
		rsvpService:        rsvpService,
	}
}

type SubmitRsvpRequest struct {
	Status           string  `json:"status" binding:"required"`
	AdditionalGuests *string `json:"additional_guests"`
}

func (h *GuestHandler) PublicList(c *gin.Context) {
	guestID, err := getUserIDFromContext(c)
	if err != nil {
		response.Unauthorized(c, "invalid user context")
		return
	}

	list, err := h.guestService.PublicList(c.Request.Context(), guestID, c.Param("shareable_link"))
	if err != nil {
		if errors.Is(err, service.ErrListNotFound) {
			response.NotFound(c, err.Error())
		} else {
			response.InternalError(c, "fetch list failed")
		}
		return
	}

	response.Success(c, list)
}

func (h *GuestHandler) Reserve(c *gin.Context) {
	guestID, err := getUserIDFromContext(c)
	if err != nil {
		response.Unauthorized(c, "invalid user context")
		return
	}
	itemID, err := uuid.Parse(c.Param("item_id"))
	if err != nil {
		response.BadRequest(c, "invalid item id")
		return
	}

	reservation, err := h.reservationService.Reserve(c.Request.Context(), guestID, itemID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrItemNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, service.ErrGiftNotAvailable):
			response.Conflict(c, err.Error())
		default:
			response.InternalError(c, "reserve failed")
		}
		return
	}

	response.Created(c, reservation)
}

func (h *GuestHandler) CancelReservation(c *gin.Context) {
	guestID, err := getUserIDFromContext(c)
	if err != nil {
		response.Unauthorized(c, "invalid user context")
		return
	}
	reservationID, err := uuid.Parse(c.Param("reservation_id"))
	if err != nil {
		response.BadRequest(c, "invalid reservation id")
		return
	}

	if err := h.reservationService.Cancel(c.Request.Context(), guestID, reservationID); err != nil {
		switch {
		case errors.Is(err, service.ErrReservationNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, service.ErrNotYourReservation):
			response.Forbidden(c, err.Error())
		default:
			response.InternalError(c, "cancel reservation failed")
		}
		return
	}

	response.Success(c, gin.H{"message": "reservation cancelled"})
}

func (h *GuestHandler) SubmitRsvp(c *gin.Context) {
	guestID, err := getUserIDFromContext(c)
	if err != nil {
		response.Unauthorized(c, "invalid user context")
		return
	}
	listID, err := uuid.Parse(c.Param("list_id"))
	if err != nil {
		response.BadRequest(c, "invalid list id")
		return
	}

	var req SubmitRsvpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	rsvp, err := h.rsvpService.Submit(
		c.Request.Context(),
		guestID, listID,
		model.RsvpStatus(req.Status),
		req.AdditionalGuests,
	)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRsvpStatus):
			response.BadRequest(c, err.Error())
		case errors.Is(err, service.ErrListNotFound):
			response.NotFound(c, err.Error())
		default:
			response.InternalError(c, "submit rsvp failed")
		}
		return
	}

	response.Created(c, rsvp)
}

func (h *GuestHandler) MyDetails(c *gin.Context) {
	guestID, err := getUserIDFromContext(c)
	if err != nil {
		response.Unauthorized(c, "invalid user context")
		return
	}

	details, err := h.guestService.MyDetails(c.Request.Context(), guestID)
	if err != nil {
		response.InternalError(c, "fetch guest details failed")
		return
	}

	response.Success(c, details)
}
