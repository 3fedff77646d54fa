package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/leoAraujo20/lu-estilo-api/internal/server/models"
	"github.com/leoAraujo20/lu-estilo-api/internal/server/services"
)

const dateLayout = "2006-01-02"

type productRequest struct {
	Barcode        string  `json:"barcode" binding:"required"`
	Description    string  `json:"description" binding:"required"`
	PriceCents     int64   `json:"price_cents" binding:"required,gt=0"`
	Section        string  `json:"section" binding:"required"`
	Inventory      int     `json:"inventory" binding:"gte=0"`
	ExpirationDate *string `json:"expiration_date"`
}

type productUpdateRequest struct {
	Barcode        *string `json:"barcode"`
	Description    *string `json:"description"`
	PriceCents     *int64  `json:"price_cents" binding:"omitempty,gt=0"`
	Section        *string `json:"section"`
	Inventory      *int    `json:"inventory" binding:"omitempty,gte=0"`
	ExpirationDate *string `json:"expiration_date"`
}

type productResponse struct {
	ID             string  `json:"id"`
	Barcode        string  `json:"barcode"`
	Description    string  `json:"description"`
	PriceCents     int64   `json:"price_cents"`
	Section        string  `json:"section"`
	Inventory      int     `json:"inventory"`
	ExpirationDate *string `json:"expiration_date"`
}

func newProductResponse(product *models.Product) productResponse {
	resp := productResponse{
		ID:          product.ID,
		Barcode:     product.Barcode,
		Description: product.Description,
		PriceCents:  product.PriceCents,
		Section:     string(product.Section),
		Inventory:   product.Inventory,
	}
	if product.ExpirationDate != nil {
		d := product.ExpirationDate.Format(dateLayout)
		resp.ExpirationDate = &d
	}
	return resp
}

func parseDate(value string) (*time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *Server) handleCreateProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err.Error())
		return
	}

	section, err := models.ParseProductSection(req.Section)
	if err != nil {
		abortBadRequest(c, err.Error())
		return
	}

	product := &models.Product{
		Barcode:     req.Barcode,
		Description: req.Description,
		PriceCents:  req.PriceCents,
		Section:     section,
		Inventory:   req.Inventory,
	}
	if req.ExpirationDate != nil {
		product.ExpirationDate, err = parseDate(*req.ExpirationDate)
		if err != nil {
			abortBadRequest(c, "invalid expiration_date, want YYYY-MM-DD")
			return
		}
	}

	created, err := s.products.Create(c.Request.Context(), product)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newProductResponse(created))
}

func (s *Server) handleGetProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	product, err := s.products.Get(c.Request.Context(), id)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newProductResponse(product))
}

func (s *Server) handleListProducts(c *gin.Context) {
	limit, offset, ok := paginationParams(c)
	if !ok {
		return
	}

	filter := models.ProductFilter{Limit: limit, Offset: offset}

	if v := c.Query("section"); v != "" {
		section, err := models.ParseProductSection(v)
		if err != nil {
			abortBadRequest(c, err.Error())
			return
		}
		filter.Section = section
	}
	if v := c.Query("price_cents"); v != "" {
		maxPrice, err := strconv.ParseInt(v, 10, 64)
		if err != nil || maxPrice < 0 {
			abortBadRequest(c, "invalid price_cents")
			return
		}
		filter.MaxPriceCents = maxPrice
	}
	if v := c.Query("inventory"); v != "" {
		minInventory, err := strconv.Atoi(v)
		if err != nil || minInventory < 0 {
			abortBadRequest(c, "invalid inventory")
			return
		}
		filter.MinInventory = minInventory
	}

	productList, err := s.products.List(c.Request.Context(), filter)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	responses := make([]productResponse, 0, len(productList))
	for _, product := range productList {
		responses = append(responses, newProductResponse(product))
	}

	c.JSON(http.StatusOK, gin.H{"products": responses})
}

func (s *Server) handleUpdateProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req productUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err.Error())
		return
	}

	update := services.ProductUpdate{
		Barcode:     req.Barcode,
		Description: req.Description,
		PriceCents:  req.PriceCents,
		Inventory:   req.Inventory,
	}
	if req.Section != nil {
		section, err := models.ParseProductSection(*req.Section)
		if err != nil {
			abortBadRequest(c, err.Error())
			return
		}
		update.Section = &section
	}
	if req.ExpirationDate != nil {
		date, err := parseDate(*req.ExpirationDate)
		if err != nil {
			abortBadRequest(c, "invalid expiration_date, want YYYY-MM-DD")
			return
		}
		update.ExpirationDate = &date
	}

	product, err := s.products.Update(c.Request.Context(), id, update)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newProductResponse(product))
}

func (s *Server) handleDeleteProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := s.products.Delete(c.Request.Context(), id); err != nil {
		s.abortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
