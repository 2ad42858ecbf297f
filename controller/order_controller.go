// api/controller/order_controller.go
package controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	food_errors "github.com/EivorRrz/restro/api/errors"
	"github.com/EivorRrz/restro/api/model"
	"github.com/EivorRrz/restro/api/service"
	"github.com/EivorRrz/restro/api/util"
	helper_util "github.com/EivorRrz/restro/api/util/helper"
)

type OrderController struct {
	orderService service.IOrderService
}

func NewOrderController(orderService service.IOrderService) *OrderController {
	return &OrderController{orderService: orderService}
}

func (oc *OrderController) RegisterRoutes(r *gin.RouterGroup, mw RouteMiddleware) {
	orders := r.Group("/orders")
	{
		orders.POST("", mw.Authenticated(oc.PlaceOrder)...)
		orders.GET("/mine", mw.Authenticated(oc.ListMyOrders)...)
		orders.GET("/:id", mw.Authenticated(oc.GetOrder)...)
		orders.POST("/:id/cancel", mw.Authenticated(oc.CancelOrder)...)
		orders.GET("", mw.AdminOnly(oc.ListOrders)...)
		orders.PUT("/:id/status", mw.AdminOnly(oc.UpdateOrderStatus)...)
	}
}

func (oc *OrderController) PlaceOrder(c *gin.Context) {
	var req model.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid order data", err)
		return
	}

	order, err := oc.orderService.PlaceOrder(c.Request.Context(), util.GetUserIDFromContext(c), req)
	if err != nil {
		respondWithServiceError(c, err, "Failed to place order")
		return
	}
	util.RespondWithData(c, http.StatusCreated, "Order placed successfully", order)
}

func (oc *OrderController) GetOrder(c *gin.Context) {
	order, err := oc.orderService.GetOrder(c.Request.Context(), c.Param("id"), util.GetUserFromContext(c))
	if err != nil {
		respondWithServiceError(c, err, "Failed to retrieve order")
		return
	}
	util.RespondWithData(c, http.StatusOK, "", order)
}

func (oc *OrderController) ListMyOrders(c *gin.Context) {
	limit, offset, ok := paginationParams(c)
	if !ok {
		return
	}
	orders, err := oc.orderService.ListUserOrders(c.Request.Context(), util.GetUserIDFromContext(c), limit, offset)
	if err != nil {
		respondWithServiceError(c, err, "Failed to list orders")
		return
	}
	util.RespondWithData(c, http.StatusOK, "", orders)
}

func (oc *OrderController) ListOrders(c *gin.Context) {
	limit, offset, ok := paginationParams(c)
	if !ok {
		return
	}
	orders, err := oc.orderService.ListOrders(c.Request.Context(), limit, offset)
	if err != nil {
		respondWithServiceError(c, err, "Failed to list orders")
		return
	}
	util.RespondWithData(c, http.StatusOK, "", orders)
}

func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	var req model.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Please provide a status", err)
		return
	}
	order, err := oc.orderService.UpdateOrderStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		respondWithServiceError(c, err, "Failed to update order status")
		return
	}
	util.RespondWithData(c, http.StatusOK, "Order status updated", order)
}

func (oc *OrderController) CancelOrder(c *gin.Context) {
	order, err := oc.orderService.CancelOrder(c.Request.Context(), c.Param("id"), util.GetUserFromContext(c))
	if err != nil {
		respondWithServiceError(c, err, "Failed to cancel order")
		return
	}
	util.RespondWithData(c, http.StatusOK, "Order cancelled", order)
}

func paginationParams(c *gin.Context) (int, int, bool) {
	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		respondWithServiceError(c, fmt.Errorf("%w: %v", food_errors.ErrInvalidPagination, err), "Invalid pagination parameters")
		return 0, 0, false
	}
	return limit, offset, true
}
