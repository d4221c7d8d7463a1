package admin

import (
	"errors"
	"strconv"

	"github.com/joymarket/joymarket/internal/http/response"
	"github.com/joymarket/joymarket/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateCourierRequest courier onboarding request
type CreateCourierRequest struct {
	FullName     string `json:"full_name" binding:"required"`
	Email        string `json:"email" binding:"required"`
	Password     string `json:"password" binding:"required"`
	Phone        string `json:"phone"`
	VehicleType  string `json:"vehicle_type" binding:"required"`
	VehiclePlate string `json:"vehicle_plate" binding:"required"`
}

// UpdateCourierRequest courier update request, absent fields untouched
type UpdateCourierRequest struct {
	FullName     *string `json:"full_name"`
	Phone        *string `json:"phone"`
	VehicleType  *string `json:"vehicle_type"`
	VehiclePlate *string `json:"vehicle_plate"`
	Status       *string `json:"status"`
}

// ListCouriers paginated courier roster
func (h *Handler) ListCouriers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	couriers, total, err := h.CourierService.List(page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "error.courier_fetch_failed", err)
		return
	}

	pagination := response.BuildPagination(page, pageSize, total)
	response.SuccessWithPage(c, couriers, pagination)
}

// GetCourier courier detail
func (h *Handler) GetCourier(c *gin.Context) {
	courierID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	courier, err := h.CourierService.GetByID(courierID)
	if err != nil {
		if errors.Is(err, service.ErrCourierNotFound) {
			respondError(c, response.CodeNotFound, "error.courier_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.courier_fetch_failed", err)
		return
	}
	response.Success(c, courier)
}

// CreateCourier onboards a courier account
func (h *Handler) CreateCourier(c *gin.Context) {
	var req CreateCourierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	courier, err := h.CourierService.Create(service.CreateCourierInput{
		FullName:     req.FullName,
		Email:        req.Email,
		Password:     req.Password,
		Phone:        req.Phone,
		VehicleType:  req.VehicleType,
		VehiclePlate: req.VehiclePlate,
	})
	if err != nil {
		h.respondCourierError(c, err, "error.courier_create_failed")
		return
	}
	response.Success(c, courier)
}

// UpdateCourier edits a courier profile
func (h *Handler) UpdateCourier(c *gin.Context) {
	courierID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req UpdateCourierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	courier, err := h.CourierService.Update(courierID, service.UpdateCourierInput{
		FullName:     req.FullName,
		Phone:        req.Phone,
		VehicleType:  req.VehicleType,
		VehiclePlate: req.VehiclePlate,
		Status:       req.Status,
	})
	if err != nil {
		h.respondCourierError(c, err, "error.courier_update_failed")
		return
	}
	response.Success(c, courier)
}

// DeleteCourier removes a courier without undelivered work
func (h *Handler) DeleteCourier(c *gin.Context) {
	courierID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.CourierService.Delete(courierID); err != nil {
		switch {
		case errors.Is(err, service.ErrCourierNotFound):
			respondError(c, response.CodeNotFound, "error.courier_not_found", nil)
		case errors.Is(err, service.ErrCourierHasActiveWork):
			respondError(c, response.CodeBadRequest, "error.courier_has_active_work", nil)
		default:
			respondError(c, response.CodeInternal, "error.courier_delete_failed", err)
		}
		return
	}
	response.Success(c, gin.H{"deleted": true})
}

func (h *Handler) respondCourierError(c *gin.Context, err error, fallbackKey string) {
	switch {
	case errors.Is(err, service.ErrCourierNotFound):
		respondError(c, response.CodeNotFound, "error.courier_not_found", nil)
	case errors.Is(err, service.ErrInvalidFullName):
		respondError(c, response.CodeBadRequest, "error.invalid_full_name", nil)
	case errors.Is(err, service.ErrInvalidEmail):
		respondError(c, response.CodeBadRequest, "error.invalid_email", nil)
	case errors.Is(err, service.ErrEmailTaken):
		respondError(c, response.CodeBadRequest, "error.email_taken", nil)
	case errors.Is(err, service.ErrInvalidPhone):
		respondError(c, response.CodeBadRequest, "error.invalid_phone", nil)
	case errors.Is(err, service.ErrVehicleTypeInvalid):
		respondError(c, response.CodeBadRequest, "error.vehicle_type_invalid", nil)
	case errors.Is(err, service.ErrVehiclePlateInvalid):
		respondError(c, response.CodeBadRequest, "error.vehicle_plate_invalid", nil)
	case errors.Is(err, service.ErrInvalidUserStatus):
		respondError(c, response.CodeBadRequest, "error.invalid_user_status", nil)
	case errors.Is(err, service.ErrWeakPassword):
		respondError(c, response.CodeBadRequest, "error.weak_password", nil)
	default:
		respondError(c, response.CodeInternal, fallbackKey, err)
	}
}
