package server

import (
	"net/http"
	"time"

	exportdomain "github.com/Antonio-99/catalogo/internal/export/domain"
	"github.com/gin-gonic/gin"
)

func (s *Server) ExportCatalog(c *gin.Context) {
	doc, err := s.exportSvc.Export(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+exportdomain.Filename(time.Now().UTC())+`"`)
	c.JSON(http.StatusOK, doc)
}

func (s *Server) ImportCatalog(c *gin.Context) {
	var doc exportdomain.Document
	if err := c.ShouldBindJSON(&doc); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	if err := s.exportSvc.Import(c.Request.Context(), doc); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"imported": true}})
}

func (s *Server) ResetCatalog(c *gin.Context) {
	if err := s.exportSvc.Reset(c.Request.Context()); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"reset": true}})
}
