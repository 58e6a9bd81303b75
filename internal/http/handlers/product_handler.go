// Product HTTP handlers.
//
// This file exposes the catalog upsert endpoint:
//   - PUT /products  (insert or refresh a product by SKU)
//
// Upserting the same SKU repeatedly is an idempotent success: the stable id
// is preserved while name, brand, and link take the latest reported values.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// UpsertProductRequest is the JSON payload for cataloging a product.
// Name, brand, and sku are required; link is optional.
type UpsertProductRequest struct {
	Name  string `json:"name"  binding:"required" example:"Milk 2%"`
	Brand string `json:"brand" binding:"required" example:"Acme"`
	SKU   string `json:"sku"   binding:"required" example:"068700011016"`
	Link  string `json:"link"  example:"https://store.example/milk-2"`
}

// UpsertProduct godoc
// @ID          upsertProduct
// @Summary     Add or update a product
// @Description Creates the product on first sight of the SKU, or refreshes name, brand, and link on an existing row. The product id never changes.
// @Tags        Products
// @Accept      json
// @Produce     json
// @Security    ApiKeyAuth
//
// @Param       body  body  handlers.UpsertProductRequest  true  "Product payload"
//
// @Success     200  {object} domain.Product
// @Failure     400  {object} handlers.ErrorResponse "Missing or malformed fields"
// @Failure     401  {object} handlers.ErrorResponse "Missing or invalid API key"
// @Failure     500  {object} handlers.ErrorResponse "Internal server error"
// @Router      /products [put]
func (h *Handlers) UpsertProduct(c *gin.Context) {
	var req UpsertProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, bindingMessage(err))
		return
	}

	p, err := h.catalog.ResolveProduct(c.Request.Context(), req.Name, req.Brand, req.SKU, req.Link)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeUpsertFailed, "could not upsert product")
		return
	}

	ok(c, http.StatusOK, p)
}
