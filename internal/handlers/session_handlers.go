package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KayisiMuhendisi/Adisyon/internal/services"
	"github.com/KayisiMuhendisi/Adisyon/pkg/utils"
)

// SessionHandler holds the session service.
type SessionHandler struct {
	sessionService services.SessionService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(ss services.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: ss}
}

// GetTables returns the table grid with per-table occupancy.
func (h *SessionHandler) GetTables(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tables": h.sessionService.ListTables()})
}

// OpenTable selects the named table as the active one.
func (h *SessionHandler) OpenTable(c *gin.Context) {
	name := c.Param("name")
	if utils.IsEmpty(name) {
		utils.RespondValidationFailed(c, "table name must not be empty")
		return
	}

	table, err := h.sessionService.OpenTable(name)
	if err != nil {
		utils.LogError(err, "OpenTable: Error from sessionService.OpenTable for table "+name)
		if errors.Is(err, services.ErrTableNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Table not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to open table.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, table)
}

// GetCurrentTable returns the active table with grouped lines and total.
func (h *SessionHandler) GetCurrentTable(c *gin.Context) {
	table, err := h.sessionService.CurrentTable()
	if err != nil {
		if errors.Is(err, services.ErrNoActiveTable) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "No table is currently selected.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch current table.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, table)
}

// AddOrder places one unit of a product on the active table. The stock
// ledger gates the order; an out-of-stock product is rejected without
// touching the table.
func (h *SessionHandler) AddOrder(c *gin.Context) {
	var req services.AddOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "AddOrder: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	table, err := h.sessionService.AddProductToCurrentTable(req)
	if err != nil {
		utils.LogError(err, "AddOrder: Error from sessionService.AddProductToCurrentTable")
		switch {
		case errors.Is(err, services.ErrNoActiveTable):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "No table is currently selected.", err.Error()))
		case errors.Is(err, services.ErrOutOfStock):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Product is out of stock.", err.Error()))
		case errors.Is(err, services.ErrProductNotFound):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Product not found.", err.Error()))
		case errors.Is(err, services.ErrValidation):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid order data.", err.Error()))
		default:
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to add order.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, table)
}

// RemoveOrder drops the first order line matching the product name. Stock
// is not restored.
func (h *SessionHandler) RemoveOrder(c *gin.Context) {
	product := c.Param("product")
	if utils.IsEmpty(product) {
		utils.RespondValidationFailed(c, "product name must not be empty")
		return
	}

	table, err := h.sessionService.RemoveItemFromCurrentTable(product)
	if err != nil {
		utils.LogError(err, "RemoveOrder: Error from sessionService.RemoveItemFromCurrentTable for product "+product)
		if errors.Is(err, services.ErrNoActiveTable) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "No table is currently selected.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to remove order.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, table)
}

// ApplyDiscount rewrites the active table's line prices by the given
// factor. Calling it twice compounds.
func (h *SessionHandler) ApplyDiscount(c *gin.Context) {
	var req services.ApplyDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "ApplyDiscount: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	table, err := h.sessionService.ApplyDiscountToCurrentTable(req.Factor)
	if err != nil {
		utils.LogError(err, "ApplyDiscount: Error from sessionService.ApplyDiscountToCurrentTable")
		if errors.Is(err, services.ErrNoActiveTable) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "No table is currently selected.", err.Error()))
		} else if errors.Is(err, services.ErrValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid discount factor.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to apply discount.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, table)
}

// CloseTable settles the active table into the daily cash or card total.
func (h *SessionHandler) CloseTable(c *gin.Context) {
	var req services.CloseTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CloseTable: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	settlement, err := h.sessionService.CloseTable(req.PaymentMethod)
	if err != nil {
		utils.LogError(err, "CloseTable: Error from sessionService.CloseTable")
		if errors.Is(err, services.ErrNoActiveTable) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "No table is currently selected.", err.Error()))
		} else if errors.Is(err, services.ErrInvalidPaymentMethod) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Payment method must be cash or card.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to close table.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, settlement)
}
