package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "order-store/docs"
	"order-store/internal/models"
	"order-store/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Handler struct {
	svc service.Order
}

func NewHandler(s service.Order) *Handler {
	return &Handler{svc: s}
}

type getAllOrdersResponse struct {
	Data []models.Order `json:"data"`
}

type createOrderResponse struct {
	OrderUID string `json:"order_uid"`
}

type attachDeliveryResponse struct {
	DeliveryID int64 `json:"delivery_id"`
}

type attachPaymentResponse struct {
	PaymentID int64 `json:"payment_id"`
}

type addItemResponse struct {
	ItemID int64 `json:"item_id"`
}

func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.Default()

	api := router.Group("/api")
	{
		orders := api.Group("/orders")
		{
			orders.POST("", h.CreateOrder)
			orders.GET("", h.ListOrders)
			orders.GET("/:uid", h.GetOrderById)
			orders.DELETE("/:uid", h.DeleteOrder)
			orders.POST("/:uid/delivery", h.AttachDelivery)
			orders.POST("/:uid/payment", h.AttachPayment)
			orders.POST("/:uid/items", h.AddItem)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"message": "not found"})
			return
		}
		c.Status(http.StatusNotFound)
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}
