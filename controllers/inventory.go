// controllers/inventory.go
package controllers

import (
	"net/http"
	"strconv"
	"time"

	"carwash-backend/models"
	"carwash-backend/store"
	"carwash-backend/utils"

	"github.com/gin-gonic/gin"
)

type InventoryController struct {
	base
}

func NewInventoryController(m *store.Manager) *InventoryController {
	return &InventoryController{base: base{Manager: m}}
}

type InventoryItemInput struct {
	Name          string  `json:"name" binding:"required"`
	ProductTypeID string  `json:"productTypeId"`
	Quantity      int     `json:"quantity" binding:"min=0"`
	Price         float64 `json:"price" binding:"min=0"`
	PurchaseDate  string  `json:"purchaseDate"` // YYYY-MM-DD, optional
	LifespanDays  *int    `json:"lifespanDays" binding:"omitempty,min=1"`
}

// inventoryItemView is an item plus its derived lifespan indicator.
type inventoryItemView struct {
	models.InventoryItem
	RemainingLifespan *float64 `json:"remainingLifespan"`
	LifespanBand      *string  `json:"lifespanBand"`
}

func itemViews(items []models.InventoryItem, now time.Time) []inventoryItemView {
	views := make([]inventoryItemView, 0, len(items))
	for _, item := range items {
		view := inventoryItemView{InventoryItem: item}
		if remaining := item.RemainingLifespan(now); remaining != nil {
			band := models.LifespanBand(*remaining)
			view.RemainingLifespan = remaining
			view.LifespanBand = &band
		}
		views = append(views, view)
	}
	return views
}

func (input InventoryItemInput) toModel() (models.InventoryItem, string, bool) {
	item := models.InventoryItem{
		Name:         input.Name,
		Quantity:     input.Quantity,
		Price:        input.Price,
		LifespanDays: input.LifespanDays,
	}

	if input.ProductTypeID != "" {
		id, err := strconv.ParseInt(input.ProductTypeID, 10, 64)
		if err != nil {
			return item, "Invalid product type id", false
		}
		item.ProductTypeID = &id
	}

	if input.PurchaseDate != "" {
		date, err := time.ParseInLocation("2006-01-02", input.PurchaseDate, time.Local)
		if err != nil {
			return item, "Invalid purchase date, expected YYYY-MM-DD", false
		}
		item.PurchaseDate = &date
	}

	return item, "", true
}

func (ic *InventoryController) List(c *gin.Context) {
	st, ok := ic.storeFor(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, itemViews(st.InventoryItems(), time.Now()))
}

func (ic *InventoryController) Create(c *gin.Context) {
	st, ok := ic.storeFor(c)
	if !ok {
		return
	}

	var input InventoryItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	item, msg, valid := input.toModel()
	if !valid {
		utils.RespondWithError(c, http.StatusBadRequest, msg)
		return
	}
	// New items default to purchased-today when no date was given.
	if item.PurchaseDate == nil {
		today := utils.BeginningOfDay(time.Now())
		item.PurchaseDate = &today
	}

	st.AddInventoryItem(item)

	lang := ic.language(c, st)
	c.JSON(http.StatusCreated, gin.H{
		"inventoryItems": itemViews(st.InventoryItems(), time.Now()),
		"notification":   notification(st, lang),
	})
}

func (ic *InventoryController) Update(c *gin.Context) {
	st, ok := ic.storeFor(c)
	if !ok {
		return
	}

	var input InventoryItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	item, msg, valid := input.toModel()
	if !valid {
		utils.RespondWithError(c, http.StatusBadRequest, msg)
		return
	}

	st.UpdateInventoryItem(c.Param("id"), item)

	lang := ic.language(c, st)
	c.JSON(http.StatusOK, gin.H{
		"inventoryItems": itemViews(st.InventoryItems(), time.Now()),
		"notification":   notification(st, lang),
	})
}

func (ic *InventoryController) Delete(c *gin.Context) {
	st, ok := ic.storeFor(c)
	if !ok {
		return
	}

	st.RemoveInventoryItem(c.Param("id"))

	lang := ic.language(c, st)
	c.JSON(http.StatusOK, gin.H{
		"inventoryItems": itemViews(st.InventoryItems(), time.Now()),
		"notification":   notification(st, lang),
	})
}
