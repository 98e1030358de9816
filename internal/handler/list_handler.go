package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"casamento/registry/internal/model"
	"casamento/registry/internal/service"
	"casamento/registry/pkg/response"
)

type ListHandler struct {
	listService     service.ListService
	trackingService service.TrackingService
}

func NewListHandler(listService service.ListService, trackingService service.TrackingService) *ListHandler {
	return &ListHandler{listService: listService, trackingService: trackingService}
}

type CreateListRequest struct {
	Title        string  `json:"title" binding:"required"`
	Message      *string `json:"message"`
	EventDate    *string `json:"event_date"` // YYYY-MM-DD
	DeliveryInfo *string `json:"delivery_info"`
}

type UpdateListRequest struct {
	Title        *string `json:"title"`
	Message      *string `json:"message"`
	EventDate    *string `json:"event_date"` // YYYY-MM-DD
	DeliveryInfo *string `json:"delivery_info"`
}

type CreateItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

type UpdateItemRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

func parseEventDate(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := time.Parse(time.DateOnly, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (h *ListHandler) mapListError(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, service.ErrListNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrItemNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrInvalidGiftStatus):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrLinkCollision):
		response.Conflict(c, err.Error())
	default:
		response.InternalError(c, action+" failed")
	}
}

func (h *ListHandler) CreateList(c *gin.Context) {
	ownerID, err := getUserIDFromContext(c)
	if err != nil {
		response.Unauthorized(c, "invalid user context")
		return
	}

	var req CreateListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}
	eventDate, err := parseEventDate(req.EventDate)
	if err != nil {
		response.BadRequest(c, "invalid event_date, expected YYYY-MM-DD")
		return
	}

	list, err := h.listService.CreateList(c.Request.Context(), ownerID, service.CreateListInput{
		Title:        req.Title,
		Message:      req.Message,
		EventDate:    eventDate,
		DeliveryInfo: req.DeliveryInfo,
	})
	if err != nil {
		h.mapListError(c, err, "create list")
		return
	}

	response.Created(c, list)
}

func (h *ListHandler) MyLists(c *gin.Context) {
	ownerID, err := getUserIDFromContext(c)
	if err != nil {
		response.Unauthorized(c, "invalid user context")
		return
	}

	lists, err := h.listService.MyLists(c.Request.Context(), ownerID)
	if err != nil {
		response.InternalError(c, "list lists failed")
		return
	}

	response.Success(c, gin.H{"lists": lists})
}

func (h *ListHandler) UpdateList(c *gin.Context) {
	ownerID, err := getUserIDFromContext(c)
	if err != nil {
		response.Unauthorized(c, "invalid user context")
		return
	}
	listID, err := uuid.Parse(c.Param("list_id"))
	if err != nil {
		response.BadRequest(c, "invalid list id")
		return
	}

	var req UpdateListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}
	eventDate, err := parseEventDate(req.EventDate)
	if err != nil {
		response.BadRequest(c, "invalid event_date, expected YYYY-MM-DD")
		return
	}

	list, err := h.listService.UpdateList(c.Request.Context(), ownerID, listID, service.UpdateListInput{
		Title:        req.Title,
		Message:      req.Message,
		EventDate:    eventDate,
		DeliveryInfo: req.DeliveryInfo,
	})
	if err != nil {
		h.mapListError(c, err, "update list")
		return
	}

	response.Success(c, list)
}

func (h *ListHandler) GenerateLink(c *gin.Context) {
	ownerID, err := getUserIDFromContext(c)
	if err != nil {
		response.Unauthorized(c, "invalid user context")
		return
	}
	listID, err := uuid.Parse(c.Param("list_id"))
	if err != nil {
		response.BadRequest(c, "invalid list id")
		return
	}

	list, err := h.listService.RotateLink(c.Request.Context(), ownerID, listID)
	if err != nil {
		h.mapListError(c, err, "rotate link")
		return
	}

	response.Success(c, list)
}

func (h *ListHandler) DeleteList(c *gin.Context) {
	ownerID, err := getUserIDFromContext(c)
	if err != nil {
		response.Unauthorized(c, "invalid user context")
		return
	}
	listID, err := uuid.Parse(c.Param("list_id"))
	if err != nil {
		response.BadRequest(c, "invalid list id")
		return
	}

	if err := h.listService.DeleteList(c.Request.Context(), ownerID, listID); err != nil {
		h.mapListError(c, err, "delete list")
		return
	}

	response.Success(c, gin.H{"message": "list deleted"})
}

func (h *ListHandler) CreateItem(c *gin.Context) {
	ownerID, err := getUserIDFromContext(c)
	if err != nil {
		response.Unauthorized(c, "invalid user context")
		return
	}
	listID, err := uuid.Parse(c.Param("list_id"))
	if err != nil {
		response.BadRequest(c, "invalid list id")
		return
	}

	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	item, err := h.listService.AddItem(c.Request.Context(), ownerID, listID, req.Name, req.Description)
	if err != nil {
		h.mapListError(c, err, "create item")
		return
	}

	response.Created(c, item)
}

func (h *ListHandler) UpdateItem(c *gin.Context) {
	ownerID, err := getUserIDFromContext(c)
	if err != nil {
		response.Unauthorized(c, "invalid user context")
		return
	}
	listID, err := uuid.Parse(c.Param("list_id"))
	if err != nil {
		response.BadRequest(c, "invalid list id")
		return
	}
	itemID, err := uuid.Parse(c.Param("item_id"))
	if err != nil {
		response.BadRequest(c, "invalid item id")
		return
	}

	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}
	in := service.UpdateItemInput{
		Name:        req.Name,
		Description: req.Description,
	}
	if req.Status != nil {
		status := model.GiftStatus(*req.Status)
		in.Status = &status
	}

	item, err := h.listService.UpdateItem(c.Request.Context(), ownerID, listID, itemID, in)
	if err != nil {
		h.mapListError(c, err, "update item")
		return
	}

	response.Success(c, item)
}

func (h *ListHandler) DeleteItem(c *gin.Context) {
	ownerID, err := getUserIDFromContext(c)
	if err != nil {
		response.Unauthorized(c, "invalid user context")
		return
	}
	listID, err := uuid.Parse(c.Param("list_id"))
	if err != nil {
		response.BadRequest(c, "invalid list id")
		return
	}
	itemID, err := uuid.Parse(c.Param("item_id"))
	if err != nil {
		response.BadRequest(c, "invalid item id")
		return
	}

	if err := h.listService.DeleteItem(c.Request.Context(), ownerID, listID, itemID); err != nil {
		h.mapListError(c, err, "delete item")
		return
	}

	response.Success(c, gin.H{"message": "item deleted"})
}

func (h *ListHandler) Tracking(c *gin.Context) {
	ownerID, err := getUserIDFromContext(c)
	if err != nil {
		response.Unauthorized(c, "invalid user context")
		return
	}
	listID, err := uuid.Parse(c.Param("list_id"))
	if err != nil {
		response.BadRequest(c, "invalid list id")
		return
	}

	report, err := h.trackingService.BuildReport(c.Request.Context(), ownerID, listID)
	if err != nil {
		h.mapListError(c, err, "build tracking report")
		return
	}

	response.Success(c, report)
}
