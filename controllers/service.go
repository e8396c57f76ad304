// controllers/service.go
package controllers

import (
	"net/http"
	"time"

	"carwash-backend/models"
	"carwash-backend/store"
	"carwash-backend/utils"

	"github.com/gin-gonic/gin"
)

type ServiceController struct {
	base
}

func NewServiceController(m *store.Manager) *ServiceController {
	return &ServiceController{base: base{Manager: m}}
}

// CreateServiceInput defines the expected JSON structure for recording a wash.
// The timestamp is stamped server-side and cannot be supplied.
type CreateServiceInput struct {
	ServiceType     string  `json:"serviceType" binding:"required"`
	WaxAddOn        bool    `json:"waxAddOn"`
	CarSize         string  `json:"carSize" binding:"omitempty,oneof=small medium large"`
	StaffID         string  `json:"staffId"`
	StaffName       string  `json:"staffName"`
	StaffNameEn     string  `json:"staffNameEn"`
	Price           float64 `json:"price" binding:"required,min=0"`
	Commission      float64 `json:"commission" binding:"min=0"`
	PaymentMethod   string  `json:"paymentMethod" binding:"required,oneof=cash machine none"`
	HasCoupon       bool    `json:"hasCoupon"`
	IsPaid          *bool   `json:"isPaid"`
	CustomerContact string  `json:"customerContact"`
}

// Create records a completed wash. Service records are immutable; there is
// no update or delete counterpart.
func (sc *ServiceController) Create(c *gin.Context) {
	st, ok := sc.storeFor(c)
	if !ok {
		return
	}

	var input CreateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.CustomerContact != "" && !utils.ValidatePhone(input.CustomerContact) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer contact number")
		return
	}

	isPaid := true
	if input.IsPaid != nil {
		isPaid = *input.IsPaid
	}

	st.AddService(models.ServiceRecord{
		ServiceType:     input.ServiceType,
		WaxAddOn:        input.WaxAddOn,
		CarSize:         input.CarSize,
		StaffID:         input.StaffID,
		StaffName:       input.StaffName,
		StaffNameEn:     input.StaffNameEn,
		Price:           input.Price,
		Commission:      input.Commission,
		PaymentMethod:   input.PaymentMethod,
		HasCoupon:       input.HasCoupon,
		IsPaid:          isPaid,
		CustomerContact: input.CustomerContact,
	})

	lang := sc.language(c, st)
	c.JSON(http.StatusCreated, gin.H{
		"services":     st.Services(),
		"notification": notification(st, lang),
	})
}

// List returns the selected day's services: today by default, or the
// calendar day given as ?date=YYYY-MM-DD (served from the history cache).
func (sc *ServiceController) List(c *gin.Context) {
	st, ok := sc.storeFor(c)
	if !ok {
		return
	}

	if dateStr := c.Query("date"); dateStr != "" {
		date, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
			return
		}
		st.LoadAllServices()
		c.JSON(http.StatusOK, st.LoadServicesForDate(date))
		return
	}

	c.JSON(http.StatusOK, st.Services())
}

// ListAll returns the full service history, newest first.
func (sc *ServiceController) ListAll(c *gin.Context) {
	st, ok := sc.storeFor(c)
	if !ok {
		return
	}
	st.LoadAllServices()
	c.JSON(http.StatusOK, st.AllServices())
}
