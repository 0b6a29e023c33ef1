package catalog

import (
	"net/http"
	"strconv"

	"github.com/GeoTsinganos/booking-system-api/internal/api"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service CatalogService
}

func NewHandler(service CatalogService) *Handler {
	return &Handler{service: service}
}

// @Summary      Create a service
// @Description  Admin-only: add a bookable offering to the catalog.
// @Tags         admin,services
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateServiceRequest true "Service payload"
// @Success      201 {object} Service
// @Failure      400 {object} api.ErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /admin/services [post]
func (h *Handler) CreateService(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	service, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, service)
}

// @Summary      List services
// @Tags         services
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} Service
// @Failure      401 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /services [get]
func (h *Handler) ListServices(c *gin.Context) {
	services, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, services)
}

// @Summary      Get a service
// @Tags         services
// @Produce      json
// @Security     BearerAuth
// @Param        serviceID path int true "Service ID"
// @Success      200 {object} Service
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /services/{serviceID} [get]
func (h *Handler) GetService(c *gin.Context) {
	serviceID, err := strconv.Atoi(c.Param("serviceID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid service ID"})
		return
	}

	service, err := h.service.GetByID(c.Request.Context(), serviceID)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, service)
}

// @Summary      Update a service
// @Description  Admin-only: edit a catalog entry.
// @Tags         admin,services
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        serviceID path int true "Service ID"
// @Param        request body UpdateServiceRequest true "Service payload"
// @Success      200 {object} Service
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /admin/services/{serviceID} [put]
func (h *Handler) UpdateService(c *gin.Context) {
	serviceID, err := strconv.Atoi(c.Param("serviceID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid service ID"})
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	service, err := h.service.Update(c.Request.Context(), serviceID, req)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, service)
}

// @Summary      Deactivate a service
// @Description  Admin-only: hide a service from the catalog.
// @Tags         admin,services
// @Produce      json
// @Security     BearerAuth
// @Param        serviceID path int true "Service ID"
// @Success      200 {object} api.MessageResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /admin/services/{serviceID} [delete]
func (h *Handler) DeactivateService(c *gin.Context) {
	serviceID, err := strconv.Atoi(c.Param("serviceID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid service ID"})
		return
	}

	if err := h.service.Deactivate(c.Request.Context(), serviceID); err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Service deactivated"})
}
