package server

import (
	"net/http"
	"strings"

	inventorydomain "github.com/Antonio-99/catalogo/internal/inventory/domain"
	"github.com/gin-gonic/gin"
)

func (s *Server) ListInventory(c *gin.Context) {
	resp, err := s.inventorySvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListLowStock(c *gin.Context) {
	resp, err := s.inventorySvc.LowStock(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateInventory(c *gin.Context) {
	var req inventorydomain.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	req.ID = strings.TrimSpace(c.Param("id"))

	resp, err := s.inventorySvc.Update(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func isInventoryValidationError(err error) bool {
	switch err {
	case inventorydomain.ErrInvalidID,
		inventorydomain.ErrInvalidStock,
		inventorydomain.ErrInvalidMinStock:
		return true
	default:
		return false
	}
}
