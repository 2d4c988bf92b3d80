package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/cityworks/facilitybooking/internal/domain"
	"github.com/cityworks/facilitybooking/internal/service/facility"
	"github.com/gin-gonic/gin"
)

type FacilityHandler struct {
	service facility.FacilityUseCase
}

func NewFacilityHandler(service facility.FacilityUseCase) *FacilityHandler {
	return &FacilityHandler{service: service}
}

// Register wires the facility routes; guard protects the admin mutations.
func (h *FacilityHandler) Register(router *gin.RouterGroup, guard gin.HandlerFunc) {
	router.GET("", h.list)
	router.GET("/:id", h.get)
	router.POST("", guard, h.create)
	router.PUT("/:id", guard, h.update)
	router.DELETE("/:id", guard, h.delete)
}

func (h *FacilityHandler) list(c *gin.Context) {
	facilities, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := make([]facilityResponse, 0, len(facilities))
	for i := range facilities {
		out = append(out, *toFacilityResponse(&facilities[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *FacilityHandler) get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	f, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "facility not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toFacilityResponse(f))
}

func (h *FacilityHandler) create(c *gin.Context) {
	var req facility.FacilityInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	f, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.Header("Location", fmt.Sprintf("/api/facilities/%d", f.ID))
	c.JSON(http.StatusCreated, toFacilityResponse(f))
}

func (h *FacilityHandler) update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req facility.FacilityInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	f, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "facility not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toFacilityResponse(f))
}

func (h *FacilityHandler) delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "facility not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
