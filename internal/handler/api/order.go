package api

import (
	"errors"
	"net/http"
	"strings"

	reqdto "order-service/internal/handler/dto/request"
	resdto "order-service/internal/handler/dto/response"
	"order-service/internal/handler/httperr"
	"order-service/internal/pkg/chaos"
	"order-service/internal/usecase/commands"
	"order-service/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderCommands commands.OrderCommands
	orderQueries  queries.OrderQueries
}

func NewOrderHandler(orderCommands commands.OrderCommands, orderQueries queries.OrderQueries) *OrderHandler {
	return &OrderHandler{
		orderCommands: orderCommands,
		orderQueries:  orderQueries,
	}
}

// @Summary Create order
// @Description Create a new order for an existing store
// @Tags orders
// @Accept json
// @Produce json
// @Param request body reqdto.CreateOrderRequest true "Order request"
// @Success 201 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Router /orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req reqdto.CreateOrderRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "no valid order supplied")
		return
	}

	orderRM, err := h.orderCommands.CreateOrder(c.Request.Context(), req.ToCommand())
	if err != nil {
		// Every handled failure on this endpoint maps to a 400 with a
		// human-readable message; nothing internal leaks into the body.
		switch {
		case errors.Is(err, commands.ErrCreateOrdersDisabled):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "new order creation is currently disabled via feature flag")
		case errors.Is(err, commands.ErrQuantityOverLimit):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "order quantity is over the limit")
		case errors.Is(err, commands.ErrStoreNotFound):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "store is not found")
		case errors.Is(err, commands.ErrFlagsUnavailable):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "feature flags unavailable")
		case errors.Is(err, commands.ErrMissingConfiguration):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "required configuration is missing")
		case errors.Is(err, chaos.ErrInjected):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "injected random error")
		default:
			httperr.AbortWithError(c, http.StatusBadRequest, err, "failed to create order")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromOrderRM(orderRM))
}

// @Summary Get order
// @Description Get order by ID
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errors.New("missing id"), "no id in the path parameters")
		return
	}

	orderRM, err := h.orderQueries.GetOrder(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrOrderNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "order id "+id+" is not found")
		case errors.Is(err, commands.ErrFlagsUnavailable):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "feature flags unavailable")
		case errors.Is(err, chaos.ErrInjected):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "injected random error")
		default:
			httperr.AbortWithError(c, http.StatusBadRequest, err, "failed to get order")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrderRM(orderRM))
}

// @Summary List orders
// @Description List all orders, possibly truncated by an operational flag
// @Tags orders
// @Produce json
// @Success 200 {array} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Router /orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	ordersRM, err := h.orderQueries.ListOrders(c.Request.Context())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrFlagsUnavailable):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "feature flags unavailable")
		case errors.Is(err, chaos.ErrInjected):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "injected random error")
		default:
			httperr.AbortWithError(c, http.StatusBadRequest, err, "failed to list orders")
		}
		return
	}

	response := make([]*resdto.OrderResponse, len(ordersRM))
	for i := range ordersRM {
		response[i] = resdto.FromOrderRM(&ordersRM[i])
	}

	c.JSON(http.StatusOK, response)
}
