package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/leoAraujo20/lu-estilo-api/internal/server/models"
)

type orderItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
}

type orderRequest struct {
	ClientID string             `json:"client_id" binding:"required"`
	Status   string             `json:"status"`
	Items    []orderItemRequest `json:"items" binding:"required,min=1,dive"`
}

type orderUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

type orderItemResponse struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type orderResponse struct {
	ID        string              `json:"id"`
	ClientID  string              `json:"client_id"`
	Status    string              `json:"status"`
	OrderDate time.Time           `json:"order_date"`
	Items     []orderItemResponse `json:"items"`
}

func newOrderResponse(order *models.Order) orderResponse {
	items := make([]orderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, orderItemResponse{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	return orderResponse{
		ID:        order.ID,
		ClientID:  order.ClientID,
		Status:    string(order.Status),
		OrderDate: order.OrderDate,
		Items:     items,
	}
}

func (s *Server) handleCreateOrder(c *gin.Context) {
	var req orderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err.Error())
		return
	}

	// Referenced IDs that are not UUIDs cannot match any row.
	if _, err := uuid.Parse(req.ClientID); err != nil {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"detail": "client not found"})
		return
	}

	order := &models.Order{ClientID: req.ClientID}
	for _, item := range req.Items {
		if _, err := uuid.Parse(item.ProductID); err != nil {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"detail": "product not found"})
			return
		}
		order.Items = append(order.Items, models.OrderItem{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	if req.Status != "" {
		status, err := models.ParseOrderStatus(req.Status)
		if err != nil {
			abortBadRequest(c, err.Error())
			return
		}
		order.Status = status
	}

	created, err := s.orders.Create(c.Request.Context(), order)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newOrderResponse(created))
}

func (s *Server) handleGetOrder(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	order, err := s.orders.Get(c.Request.Context(), id)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newOrderResponse(order))
}

func (s *Server) handleListOrders(c *gin.Context) {
	limit, offset, ok := paginationParams(c)
	if !ok {
		return
	}

	filter := models.OrderFilter{Limit: limit, Offset: offset}

	if v := c.Query("status"); v != "" {
		status, err := models.ParseOrderStatus(v)
		if err != nil {
			abortBadRequest(c, err.Error())
			return
		}
		filter.Status = status
	}
	if v := c.Query("client_id"); v != "" {
		if _, err := uuid.Parse(v); err != nil {
			abortBadRequest(c, "invalid client_id")
			return
		}
		filter.ClientID = v
	}

	orderList, err := s.orders.List(c.Request.Context(), filter)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	responses := make([]orderResponse, 0, len(orderList))
	for _, order := range orderList {
		responses = append(responses, newOrderResponse(order))
	}

	c.JSON(http.StatusOK, gin.H{"orders": responses})
}

// handleUpdateOrder changes the order status only. Items are immutable once
// the order is placed.
func (s *Server) handleUpdateOrder(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req orderUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err.Error())
		return
	}

	status, err := models.ParseOrderStatus(req.Status)
	if err != nil {
		abortBadRequest(c, err.Error())
		return
	}

	order, err := s.orders.UpdateStatus(c.Request.Context(), id, status)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newOrderResponse(order))
}

func (s *Server) handleDeleteOrder(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := s.orders.Delete(c.Request.Context(), id); err != nil {
		s.abortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
