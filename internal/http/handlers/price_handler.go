// Price HTTP handlers.
//
// This file exposes the REST endpoints of the price ledger:
//   - GET  /prices/{location}/{sku}  (tag-partitioned history)
//   - POST /prices                   (report an observed price)
//
// Handlers in this file are transport-thin: they validate input, delegate to
// application services, and translate domain/service errors into HTTP results.
// A duplicate observation is not an error: reporting the same price twice is
// an idempotent success.
package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/skuwatch/go-price-backend/internal/services"
)

// RecordPriceRequest is the JSON payload for reporting an observed price.
//
// All fields are required and must be non-empty. Price accepts either a JSON
// number or a numeric string and is handled as an exact decimal end-to-end.
// Tag must be one of: regular, sale, limit, multi.
type RecordPriceRequest struct {
	Name     string           `json:"name"     binding:"required" example:"Milk 2%"`
	Brand    string           `json:"brand"    binding:"required" example:"Acme"`
	SKU      string           `json:"sku"      binding:"required" example:"068700011016"`
	Location string           `json:"location" binding:"required" example:"Superstore Main St"`
	Price    *decimal.Decimal `json:"price"    binding:"required" swaggertype:"number" example:"4.99"`
	Unit     string           `json:"unit"     binding:"required" example:"2L"`
	Tag      string           `json:"tag"      binding:"required" example:"regular"`
}

// RecordPriceResponse reports the outcome of a price submission.
type RecordPriceResponse struct {
	// Status is "recorded" for a new observation and "duplicate" when an
	// identical observation already existed (both are successes).
	Status string `json:"status" example:"recorded"`
}

// RecordPrice godoc
// @ID          recordPrice
// @Summary     Report an observed price
// @Description Records a price observation for a product at a store location. The product is created or refreshed by SKU; the location must already exist. Resubmitting an identical observation is a no-op success.
// @Tags        Prices
// @Accept      json
// @Produce     json
// @Security    ApiKeyAuth
//
// @Param       body  body  handlers.RecordPriceRequest  true  "Price observation"
//
// @Success     200  {object} handlers.RecordPriceResponse
// @Failure     400  {object} handlers.ErrorResponse "Missing or malformed fields"
// @Failure     401  {object} handlers.ErrorResponse "Missing or invalid API key"
// @Failure     404  {object} handlers.ErrorResponse "Unknown location"
// @Failure     500  {object} handlers.ErrorResponse "Internal server error"
// @Router      /prices [post]
func (h *Handlers) RecordPrice(c *gin.Context) {
	var req RecordPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, bindingMessage(err))
		return
	}

	created, err := h.prices.Record(c.Request.Context(), services.RecordInput{
		Name:     req.Name,
		Brand:    req.Brand,
		SKU:      req.SKU,
		Location: req.Location,
		Price:    *req.Price,
		Unit:     req.Unit,
		Tag:      req.Tag,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrLocationNotFound):
			fail(c, http.StatusNotFound, ErrCodeNotFound, "location not found")
		case errors.Is(err, services.ErrInvalidTag), errors.Is(err, services.ErrInvalidPrice):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		default:
			fail(c, http.StatusInternalServerError, ErrCodeRecordFailed, "could not record price")
		}
		return
	}

	status := "recorded"
	if !created {
		status = "duplicate"
	}
	ok(c, http.StatusOK, RecordPriceResponse{Status: status})
}

// GetPriceHistory godoc
// @ID          getPriceHistory
// @Summary     Price history for a product at a location
// @Description Returns all observations for (location, sku) ordered most recent first, partitioned by tag: regular+sale together, limit and multi separately.
// @Tags        Prices
// @Produce     json
// @Security    ApiKeyAuth
//
// @Param       location  path  string  true  "Store location name"  example(Superstore Main St)
// @Param       sku       path  string  true  "Product SKU"          example(068700011016)
//
// @Success     200  {object} services.PriceHistory
// @Failure     401  {object} handlers.ErrorResponse "Missing or invalid API key"
// @Failure     404  {object} handlers.ErrorResponse "Unknown product or location"
// @Failure     500  {object} handlers.ErrorResponse "Internal server error"
// @Router      /prices/{location}/{sku} [get]
func (h *Handlers) GetPriceHistory(c *gin.Context) {
	location := c.Param("location")
	sku := c.Param("sku")

	hist, err := h.prices.History(c.Request.Context(), location, sku)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProductNotFound):
			fail(c, http.StatusNotFound, ErrCodeNotFound, "product not found")
		case errors.Is(err, services.ErrLocationNotFound):
			fail(c, http.StatusNotFound, ErrCodeNotFound, "location not found")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeHistoryFailed, "could not load price history")
		}
		return
	}

	ok(c, http.StatusOK, hist)
}

// bindingMessage flattens a gin binding error into a caller-friendly message
// naming the offending fields where the validator reports them.
func bindingMessage(err error) string {
	msg := err.Error()
	// validator errors read like: "Key: 'RecordPriceRequest.SKU' Error:Field validation for 'SKU' failed on the 'required' tag"
	if i := strings.Index(msg, "Key:"); i >= 0 {
		var fields []string
		for _, part := range strings.Split(msg[i:], "\n") {
			if j := strings.Index(part, "for '"); j >= 0 {
				rest := part[j+len("for '"):]
				if k := strings.Index(rest, "'"); k > 0 {
					fields = append(fields, strings.ToLower(rest[:k]))
				}
			}
		}
		if len(fields) > 0 {
			return "missing or invalid fields: " + strings.Join(fields, ", ")
		}
	}
	return "invalid request payload"
}
