package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/todolists/todolists/internal/archive"
	"github.com/todolists/todolists/internal/todo"
	"github.com/todolists/todolists/internal/todo/service"
	"github.com/todolists/todolists/pkg/logger"
)

// Archiver snapshots a list; nil disables the archive endpoint.
type Archiver interface {
	Archive(ctx context.Context, l todo.List) (*archive.Receipt, error)
}

type itemRequest struct {
	Name string `json:"name" binding:"required"`
	List string `json:"list"`
}

type router struct {
	svc      *service.Router
	archiver Archiver
}

// RegisterListRoutes mounts the list API under /api.
func RegisterListRoutes(r *gin.Engine, svc *service.Router, arch Archiver) {
	h := &router{svc: svc, archiver: arch}

	api := r.Group("/api")
	api.GET("/lists", h.getDefault)
	api.GET("/lists/:name", h.getList)
	api.POST("/lists/:name/items", h.addToList)
	api.DELETE("/lists/:name/items/:id", h.removeFromList)
	api.POST("/lists/:name/archive", h.archive)
	api.POST("/items", h.addItem)
}

func (h *router) getDefault(c *gin.Context) {
	l, err := h.svc.Items.DefaultList(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, l)
}

func (h *router) getList(c *gin.Context) {
	l, err := h.svc.Load(c.Request.Context(), c.Param("name"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, l)
}

func (h *router) addToList(c *gin.Context) {
	var req itemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	l, err := h.svc.Add(c.Request.Context(), c.Param("name"), req.Name)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, l)
}

// addItem takes the list name from the body, as a form post would; an empty
// list name means the default list.
func (h *router) addItem(c *gin.Context) {
	var req itemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	l, err := h.svc.Add(c.Request.Context(), req.List, req.Name)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, l)
}

func (h *router) removeFromList(c *gin.Context) {
	l, err := h.svc.Remove(c.Request.Context(), c.Param("name"), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, l)
}

func (h *router) archive(c *gin.Context) {
	if h.archiver == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "archiving not configured"})
		return
	}
	l, err := h.svc.Load(c.Request.Context(), c.Param("name"))
	if err != nil {
		writeError(c, err)
		return
	}
	rec, err := h.archiver.Archive(c.Request.Context(), l)
	if err != nil {
		logger.Errorf("archive list %q: %v", l.Name, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "archive failed"})
		return
	}
	c.JSON(http.StatusCreated, rec)
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, todo.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, todo.ErrStoreUnavailable):
		logger.Errorf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "store unavailable"})
	case errors.Is(err, todo.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		logger.Errorf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
