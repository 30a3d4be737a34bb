// internal/handlers/tables/tables_handler.go
package tables

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"thelook-service/internal/domain/catalog"
	"thelook-service/internal/domain/sales"
	xerrors "thelook-service/internal/pkg/errors"
	"thelook-service/internal/pkg/response"
	"thelook-service/internal/repository/postgres"
)

const (
	defaultPageSize = 100
	maxPageSize     = 1000
)

// Reader is the browse surface over the generated tables.
type Reader interface {
	ListCustomers(ctx context.Context, limit, offset int) ([]catalog.Customer, error)
	ListProducts(ctx context.Context, limit, offset int) ([]catalog.Product, error)
	ListOrders(ctx context.Context, f postgres.OrderFilter, limit, offset int) ([]sales.Order, error)
	GetOrder(ctx context.Context, id int64) (*sales.Order, error)
	Counts(ctx context.Context) (map[string]int64, error)
}

type TablesHandler struct {
	reader Reader
}

func NewTablesHandler(reader Reader) *TablesHandler {
	return &TablesHandler{reader: reader}
}

func (h *TablesHandler) ListCustomers(c *gin.Context) {
	limit, offset, err := pagination(c)
	if err != nil {
		response.ValidationError(c, "invalid pagination", err)
		return
	}

	customers, err := h.reader.ListCustomers(c.Request.Context(), limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to list customers", err)
		return
	}
	response.Success(c, http.StatusOK, "customers retrieved", customers)
}

func (h *TablesHandler) ListProducts(c *gin.Context) {
	limit, offset, err := pagination(c)
	if err != nil {
		response.ValidationError(c, "invalid pagination", err)
		return
	}

	products, err := h.reader.ListProducts(c.Request.Context(), limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to list products", err)
		return
	}
	response.Success(c, http.StatusOK, "products retrieved", products)
}

func (h *TablesHandler) ListOrders(c *gin.Context) {
	limit, offset, err := pagination(c)
	if err != nil {
		response.ValidationError(c, "invalid pagination", err)
		return
	}

	filter := postgres.OrderFilter{
		Status:  sales.Status(c.Query("status")),
		Channel: sales.Channel(c.Query("channel")),
	}

	orders, err := h.reader.ListOrders(c.Request.Context(), filter, limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to list orders", err)
		return
	}
	response.Success(c, http.StatusOK, "orders retrieved", orders)
}

func (h *TablesHandler) GetOrder(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ValidationError(c, "invalid order ID", err)
		return
	}

	order, err := h.reader.GetOrder(c.Request.Context(), id)
	if errors.Is(err, xerrors.ErrNotFound) {
		response.NotFound(c, "order not found")
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to load order", err)
		return
	}
	response.Success(c, http.StatusOK, "order retrieved", order)
}

func (h *TablesHandler) GetCounts(c *gin.Context) {
	counts, err := h.reader.Counts(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to count tables", err)
		return
	}
	response.Success(c, http.StatusOK, "table counts retrieved", counts)
}

func pagination(c *gin.Context) (limit, offset int, err error) {
	limit = defaultPageSize
	if raw := c.Query("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil {
			return 0, 0, err
		}
		if limit <= 0 || limit > maxPageSize {
			limit = defaultPageSize
		}
	}
	if raw := c.Query("offset"); raw != "" {
		offset, err = strconv.Atoi(raw)
		if err != nil {
			return 0, 0, err
		}
		if offset < 0 {
			offset = 0
		}
	}
	return limit, offset, nil
}
