// controllers/expense.go
package controllers

import (
	"net/http"

	"carwash-backend/store"
	"carwash-backend/utils"

	"github.com/gin-gonic/gin"
)

type ExpenseController struct {
	base
}

func NewExpenseController(m *store.Manager) *ExpenseController {
	return &ExpenseController{base: base{Manager: m}}
}

// ExpenseInput carries no date: expenses are stamped server-side when
// created and the date is not editable.
type ExpenseInput struct {
	Description string  `json:"description" binding:"required"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
}

func (ec *ExpenseController) List(c *gin.Context) {
	st, ok := ec.storeFor(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, st.Expenses())
}

func (ec *ExpenseController) Create(c *gin.Context) {
	st, ok := ec.storeFor(c)
	if !ok {
		return
	}

	var input ExpenseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	st.AddExpense(input.Description, input.Amount)

	lang := ec.language(c, st)
	c.JSON(http.StatusCreated, gin.H{
		"expenses":     st.Expenses(),
		"notification": notification(st, lang),
	})
}

func (ec *ExpenseController) Delete(c *gin.Context) {
	st, ok := ec.storeFor(c)
	if !ok {
		return
	}

	st.RemoveExpense(c.Param("id"))

	lang := ec.language(c, st)
	c.JSON(http.StatusOK, gin.H{
		"expenses":     st.Expenses(),
		"notification": notification(st, lang),
	})
}
