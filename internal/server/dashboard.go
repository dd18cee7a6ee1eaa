package server

import (
	"net/http"

	productdomain "github.com/Antonio-99/catalogo/internal/product/domain"
	quotedomain "github.com/Antonio-99/catalogo/internal/quote/domain"
	"github.com/gin-gonic/gin"
)

type dashboardResponse struct {
	Products       int            `json:"products"`
	ActiveProducts int            `json:"active_products"`
	Categories     int            `json:"categories"`
	Quotes         int            `json:"quotes"`
	QuotesByStatus map[string]int `json:"quotes_by_status"`
	Customers      int            `json:"customers"`
	LowStock       int            `json:"low_stock"`
}

func (s *Server) GetDashboard(c *gin.Context) {
	ctx := c.Request.Context()

	categories, err := s.categorySvc.List(ctx)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	products, err := s.productSvc.List(ctx, productdomain.ListRequest{})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	quotes, err := s.quoteSvc.List(ctx, "")
	if err != nil {
		AbortWithError(c, err)
		return
	}
	customers, err := s.customerSvc.List(ctx, "")
	if err != nil {
		AbortWithError(c, err)
		return
	}
	lowStock, err := s.inventorySvc.LowStock(ctx)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	resp := dashboardResponse{
		Products:   len(products),
		Categories: len(categories),
		Quotes:     len(quotes),
		QuotesByStatus: map[string]int{
			quotedomain.StatusQuoted:    0,
			quotedomain.StatusSold:      0,
			quotedomain.StatusDelivered: 0,
		},
		Customers: len(customers),
		LowStock:  len(lowStock),
	}
	for _, p := range products {
		if p.Active {
			resp.ActiveProducts++
		}
	}
	for _, q := range quotes {
		resp.QuotesByStatus[q.Status]++
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
