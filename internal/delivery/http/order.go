package http

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"order-store/internal/models"
	"order-store/internal/service"
)

const (
	defaultListLimit = 100
	maxListLimit     = 1000
)

// CreateOrder
// @Summary CreateOrder
// @Description Stores a new order. Delivery, payment and items may be embedded and are stored in the same transaction. order_uid and date_created are generated when omitted.
// @ID create-order
// @Accept json
// @Produce json
// @Param order body models.Order true "order aggregate"
// @Success 201 {object} createOrderResponse
// @Failure 400 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/orders [post]
func (h *Handler) CreateOrder(c *gin.Context) {
	var in models.Order
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, fmt.Errorf("%w: %v", service.ErrDecode, err))
		return
	}

	uid, err := h.svc.CreateOrder(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, createOrderResponse{OrderUID: uid})
}

// ListOrders
// @Summary ListOrders
// @Description Returns the most recent orders, newest first
// @ID list-orders
// @Produce json
// @Param limit query int false "max orders to return" minimum(1) maximum(1000) default(100)
// @Success 200 {object} getAllOrdersResponse
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/orders [get]
func (h *Handler) ListOrders(c *gin.Context) {
	limit := defaultListLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxListLimit {
			newErrorResponse(c, http.StatusBadRequest, fmt.Sprintf("limit must be between 1 and %d", maxListLimit))
			return
		}
		limit = n
	}

	orders, err := h.svc.ListOrders(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}
	c.JSON(http.StatusOK, getAllOrdersResponse{
		Data: orders,
	})
}

// GetOrderById
// @Summary GetOrderById
// @Description Returns the order with its delivery, payment and items
// @ID get-order-by-id
// @Produce json
// @Param uid path string true "order's uid" format(uuid)
// @Success 200 {object} models.Order
// @Failure 400,404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/orders/{uid} [get]
func (h *Handler) GetOrderById(c *gin.Context) {
	uid, ok := uidParam(c)
	if !ok {
		return
	}

	order, err := h.svc.GetOrder(c.Request.Context(), uid)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// DeleteOrder
// @Summary DeleteOrder
// @Description Deletes the order together with everything attached to it
// @ID delete-order
// @Param uid path string true "order's uid" format(uuid)
// @Success 204
// @Failure 400,404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/orders/{uid} [delete]
func (h *Handler) DeleteOrder(c *gin.Context) {
	uid, ok := uidParam(c)
	if !ok {
		return
	}

	if err := h.svc.DeleteOrder(c.Request.Context(), uid); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AttachDelivery
// @Summary AttachDelivery
// @Description Attaches the delivery record of an order. An order has at most one.
// @ID attach-delivery
// @Accept json
// @Produce json
// @Param uid path string true "order's uid" format(uuid)
// @Param delivery body models.Delivery true "delivery"
// @Success 201 {object} attachDeliveryResponse
// @Failure 400,404,409 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/orders/{uid}/delivery [post]
func (h *Handler) AttachDelivery(c *gin.Context) {
	uid, ok := uidParam(c)
	if !ok {
		return
	}
	var in models.Delivery
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, fmt.Errorf("%w: %v", service.ErrDecode, err))
		return
	}

	id, err := h.svc.AttachDelivery(c.Request.Context(), uid, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, attachDeliveryResponse{DeliveryID: id})
}

// AttachPayment
// @Summary AttachPayment
// @Description Attaches the payment record of an order. An order has at most one. payment_dt defaults to now.
// @ID attach-payment
// @Accept json
// @Produce json
// @Param uid path string true "order's uid" format(uuid)
// @Param payment body models.Payment true "payment"
// @Success 201 {object} attachPaymentResponse
// @Failure 400,404,409 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/orders/{uid}/payment [post]
func (h *Handler) AttachPayment(c *gin.Context) {
	uid, ok := uidParam(c)
	if !ok {
		return
	}
	var in models.Payment
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, fmt.Errorf("%w: %v", service.ErrDecode, err))
		return
	}

	id, err := h.svc.AttachPayment(c.Request.Context(), uid, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, attachPaymentResponse{PaymentID: id})
}

// AddItem
// @Summary AddItem
// @Description Adds one item to an order
// @ID add-item
// @Accept json
// @Produce json
// @Param uid path string true "order's uid" format(uuid)
// @Param item body models.Item true "item"
// @Success 201 {object} addItemResponse
// @Failure 400,404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/orders/{uid}/items [post]
func (h *Handler) AddItem(c *gin.Context) {
	uid, ok := uidParam(c)
	if !ok {
		return
	}
	var in models.Item
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, fmt.Errorf("%w: %v", service.ErrDecode, err))
		return
	}

	id, err := h.svc.AddItem(c.Request.Context(), uid, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, addItemResponse{ItemID: id})
}

func uidParam(c *gin.Context) (string, bool) {
	uid := strings.TrimSpace(c.Param("uid"))
	if uid == "" {
		newErrorResponse(c, http.StatusBadRequest, "missing uid")
		return "", false
	}
	return uid, true
}
