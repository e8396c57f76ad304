// controllers/staff.go
package controllers

import (
	"net/http"

	"carwash-backend/store"
	"carwash-backend/utils"

	"github.com/gin-gonic/gin"
)

type StaffController struct {
	base
}

func NewStaffController(m *store.Manager) *StaffController {
	return &StaffController{base: base{Manager: m}}
}

type StaffInput struct {
	Name   string `json:"name" binding:"required"`
	NameEn string `json:"nameEn"`
}

func (sc *StaffController) List(c *gin.Context) {
	st, ok := sc.storeFor(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, st.Staff())
}

func (sc *StaffController) Create(c *gin.Context) {
	st, ok := sc.storeFor(c)
	if !ok {
		return
	}

	var input StaffInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	st.AddStaff(input.Name, input.NameEn)

	lang := sc.language(c, st)
	c.JSON(http.StatusCreated, gin.H{
		"staff":        st.Staff(),
		"notification": notification(st, lang),
	})
}

// Delete removes a staff member. Past service records keep the staff name
// they were written with; nothing cascades.
func (sc *StaffController) Delete(c *gin.Context) {
	st, ok := sc.storeFor(c)
	if !ok {
		return
	}

	st.RemoveStaff(c.Param("id"))

	lang := sc.language(c, st)
	c.JSON(http.StatusOK, gin.H{
		"staff":        st.Staff(),
		"notification": notification(st, lang),
	})
}
