package handler

import (
	"errors"
	"net/http"

	"backend/internal/service"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// CreateRequest builds a fresh model from a validated creation payload
type CreateRequest[T any] interface {
	Model() T
}

// UpdateRequest turns a sparse payload into a column-to-value map; absent
// fields never appear in the map
type UpdateRequest interface {
	Changes() map[string]any
}

// ResourceHandler serves the five-operation CRUD contract for one
// collection. Every resource kind shares this handler; only the model, the
// request types and the route middleware differ per kind.
type ResourceHandler[T any, C CreateRequest[T], U UpdateRequest] struct {
	name string // used in error messages, e.g. "Client not found"
	svc  *service.ResourceService[T]
}

func NewResourceHandler[T any, C CreateRequest[T], U UpdateRequest](name string, svc *service.ResourceService[T]) *ResourceHandler[T, C, U] {
	return &ResourceHandler[T, C, U]{name: name, svc: svc}
}

// RegisterRoutes binds the CRUD endpoints under the given group, applying
// the supplied auth middleware to every route
func (h *ResourceHandler[T, C, U]) RegisterRoutes(rg *gin.RouterGroup, middlewares ...gin.HandlerFunc) {
	rg.Use(middlewares...)
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/:id", h.Get)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

func (h *ResourceHandler[T, C, U]) List(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to fetch "+h.name+" list"))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, items))
}

func (h *ResourceHandler[T, C, U]) Create(c *gin.Context) {
	var req C
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	item := req.Model()
	if err := h.svc.Create(c.Request.Context(), &item); err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to create "+h.name))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, item))
}

func (h *ResourceHandler[T, C, U]) Get(c *gin.Context) {
	item, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, item))
}

func (h *ResourceHandler[T, C, U]) Update(c *gin.Context) {
	var req U
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	item, err := h.svc.Update(c.Request.Context(), c.Param("id"), req.Changes())
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, item))
}

func (h *ResourceHandler[T, C, U]) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Deleted(h.name))
}

func (h *ResourceHandler[T, C, U]) renderError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrNotFound) {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, h.name+" not found"))
		return
	}
	c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
}
