// controllers/product_type.go
package controllers

import (
	"net/http"

	"carwash-backend/models"
	"carwash-backend/store"
	"carwash-backend/utils"

	"github.com/gin-gonic/gin"
)

type ProductTypeController struct {
	base
}

func NewProductTypeController(m *store.Manager) *ProductTypeController {
	return &ProductTypeController{base: base{Manager: m}}
}

type ProductTypeInput struct {
	NameEn string `json:"name_en" binding:"required"`
	NameAr string `json:"name_ar"`
}

func (pc *ProductTypeController) List(c *gin.Context) {
	st, ok := pc.storeFor(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, st.ProductTypes())
}

func (pc *ProductTypeController) Create(c *gin.Context) {
	st, ok := pc.storeFor(c)
	if !ok {
		return
	}

	var input ProductTypeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	st.AddProductType(models.ProductType{NameEn: input.NameEn, NameAr: input.NameAr})

	lang := pc.language(c, st)
	c.JSON(http.StatusCreated, gin.H{
		"productTypes": st.ProductTypes(),
		"notification": notification(st, lang),
	})
}

func (pc *ProductTypeController) Update(c *gin.Context) {
	st, ok := pc.storeFor(c)
	if !ok {
		return
	}

	var input ProductTypeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	st.UpdateProductType(c.Param("id"), models.ProductType{NameEn: input.NameEn, NameAr: input.NameAr})

	lang := pc.language(c, st)
	c.JSON(http.StatusOK, gin.H{
		"productTypes": st.ProductTypes(),
		"notification": notification(st, lang),
	})
}

// Delete removes a product type. Inventory items keep their dangling
// reference; the link is soft.
func (pc *ProductTypeController) Delete(c *gin.Context) {
	st, ok := pc.storeFor(c)
	if !ok {
		return
	}

	st.RemoveProductType(c.Param("id"))

	lang := pc.language(c, st)
	c.JSON(http.StatusOK, gin.H{
		"productTypes": st.ProductTypes(),
		"notification": notification(st, lang),
	})
}
