package handlers

import (
	"errors"
	"net/http"

	"doctorsportal/models"
	"doctorsportal/services/doctor"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
)

type DoctorHandler struct {
	DoctorService doctor.DoctorService
}

func NewDoctorHandler(ds doctor.DoctorService) *DoctorHandler {
	return &DoctorHandler{DoctorService: ds}
}

func (h *DoctorHandler) ListDoctorsHandler(c *gin.Context) {
	doctors, err := h.DoctorService.List(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch doctors", err.Error())
		return
	}
	c.JSON(http.StatusOK, doctors)
}

func (h *DoctorHandler) AddDoctorHandler(c *gin.Context) {
	var d models.Doctor
	if err := c.ShouldBindJSON(&d); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid doctor", err.Error())
		return
	}
	result, err := h.DoctorService.Add(c.Request.Context(), d)
	if err != nil {
		if errors.Is(err, doctor.ErrDoctorExists) {
			utils.JSONError(c, http.StatusConflict, "Doctor already exists", d.Email)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to add doctor", err.Error())
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *DoctorHandler) DeleteDoctorHandler(c *gin.Context) {
	email := c.Param("email")
	result, err := h.DoctorService.DeleteByEmail(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, doctor.ErrDoctorNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Doctor not found", email)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete doctor", err.Error())
		return
	}
	c.JSON(http.StatusOK, result)
}
