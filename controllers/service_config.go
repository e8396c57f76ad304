// controllers/service_config.go
package controllers

import (
	"net/http"

	"carwash-backend/models"
	"carwash-backend/store"
	"carwash-backend/utils"

	"github.com/gin-gonic/gin"
)

type ServiceConfigController struct {
	base
}

func NewServiceConfigController(m *store.Manager) *ServiceConfigController {
	return &ServiceConfigController{base: base{Manager: m}}
}

type ServiceConfigInput struct {
	Name       string  `json:"name" binding:"required"`
	NameAr     string  `json:"nameAr"`
	NameEn     string  `json:"nameEn"`
	Price      float64 `json:"price" binding:"required,min=0"`
	Commission float64 `json:"commission" binding:"min=0"`
}

// List returns the user's service-type catalog. First-time users are seeded
// with the built-in defaults during session initialization, so this is never
// empty for a healthy session.
func (scc *ServiceConfigController) List(c *gin.Context) {
	st, ok := scc.storeFor(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, st.ServiceConfigs())
}

func (scc *ServiceConfigController) Create(c *gin.Context) {
	st, ok := scc.storeFor(c)
	if !ok {
		return
	}

	var input ServiceConfigInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	st.AddServiceConfig(models.ServiceConfig{
		Name:       input.Name,
		NameAr:     input.NameAr,
		NameEn:     input.NameEn,
		Price:      input.Price,
		Commission: input.Commission,
	})

	lang := scc.language(c, st)
	c.JSON(http.StatusCreated, gin.H{
		"serviceConfigs": st.ServiceConfigs(),
		"notification":   notification(st, lang),
	})
}

func (scc *ServiceConfigController) Update(c *gin.Context) {
	st, ok := scc.storeFor(c)
	if !ok {
		return
	}

	var input ServiceConfigInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	st.UpdateServiceConfig(c.Param("id"), models.ServiceConfig{
		Name:       input.Name,
		NameAr:     input.NameAr,
		NameEn:     input.NameEn,
		Price:      input.Price,
		Commission: input.Commission,
	})

	lang := scc.language(c, st)
	c.JSON(http.StatusOK, gin.H{
		"serviceConfigs": st.ServiceConfigs(),
		"notification":   notification(st, lang),
	})
}

func (scc *ServiceConfigController) Delete(c *gin.Context) {
	st, ok := scc.storeFor(c)
	if !ok {
		return
	}

	st.RemoveServiceConfig(c.Param("id"))

	lang := scc.language(c, st)
	c.JSON(http.StatusOK, gin.H{
		"serviceConfigs": st.ServiceConfigs(),
		"notification":   notification(st, lang),
	})
}
