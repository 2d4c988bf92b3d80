package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/cityworks/facilitybooking/internal/domain"
	"github.com/cityworks/facilitybooking/internal/service/inspection"
	"github.com/gin-gonic/gin"
)

type InspectionHandler struct {
	service inspection.InspectionUseCase
}

func NewInspectionHandler(service inspection.InspectionUseCase) *InspectionHandler {
	return &InspectionHandler{service: service}
}

func (h *InspectionHandler) Register(router *gin.RouterGroup, guard gin.HandlerFunc) {
	router.GET("", h.list)
	router.GET("/booking/:bookingId", h.listByBooking)
	router.GET("/:id", h.get)
	router.POST("", guard, h.create)
	router.PUT("/:id", guard, h.update)
	router.DELETE("/:id", guard, h.delete)
}

func (h *InspectionHandler) list(c *gin.Context) {
	inspections, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toInspectionResponses(inspections))
}

func (h *InspectionHandler) listByBooking(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Param("bookingId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	inspections, err := h.service.ListByBooking(c.Request.Context(), bookingID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toInspectionResponses(inspections))
}

func (h *InspectionHandler) get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	in, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "inspection not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toInspectionResponse(in))
}

// create stores the post-event inspection and, as a side effect, marks the
// referenced booking Completed.
func (h *InspectionHandler) create(c *gin.Context) {
	var req inspection.InspectionInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	in, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.Header("Location", fmt.Sprintf("/api/inspections/%d", in.ID))
	c.JSON(http.StatusCreated, toInspectionResponse(in))
}

func (h *InspectionHandler) update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req inspection.InspectionInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	in, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "inspection not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toInspectionResponse(in))
}

func (h *InspectionHandler) delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "inspection not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
