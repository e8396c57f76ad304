// controllers/report.go
package controllers

import (
	"fmt"
	"net/http"
	"time"

	"carwash-backend/models"
	"carwash-backend/report"
	"carwash-backend/store"
	"carwash-backend/utils"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	base
}

func NewReportController(m *store.Manager) *ReportController {
	return &ReportController{base: base{Manager: m}}
}

// selectedDay parses ?date= (default: today) and returns the day's service
// set plus the prior day's, both served from the history cache.
func (rc *ReportController) selectedDay(c *gin.Context) (*store.Store, time.Time, []models.ServiceRecord, []models.ServiceRecord, bool) {
	st, ok := rc.storeFor(c)
	if !ok {
		return nil, time.Time{}, nil, nil, false
	}

	date := time.Now()
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
			return nil, time.Time{}, nil, nil, false
		}
		date = parsed
	}

	st.LoadAllServices()
	daily := st.LoadServicesForDate(date)

	var previous []models.ServiceRecord
	yesterday := date.AddDate(0, 0, -1)
	for _, rec := range st.AllServices() {
		if utils.SameDay(rec.Timestamp, yesterday) {
			previous = append(previous, rec)
		}
	}

	return st, date, daily, previous, true
}

// Daily returns the day's report: totals, per-staff commissions, payment
// breakdown and the day-over-day sales delta.
func (rc *ReportController) Daily(c *gin.Context) {
	st, date, daily, previous, ok := rc.selectedDay(c)
	if !ok {
		return
	}

	lang := rc.language(c, st)

	totals := report.DailyTotals(daily)
	previousTotals := report.DailyTotals(previous)

	c.JSON(http.StatusOK, gin.H{
		"date":           date.Format("2006-01-02"),
		"totals":         totals,
		"salesDelta":     report.SalesDelta(totals.Revenue, previousTotals.Revenue),
		"staffBreakdown": report.StaffBreakdown(daily, lang),
		"payments":       report.Payments(daily),
		"services":       daily,
	})
}

// Export renders the day's service table as a downloadable file:
// CSV (UTF-8 with BOM) by default, or XLSX with ?format=xlsx.
func (rc *ReportController) Export(c *gin.Context) {
	st, date, daily, _, ok := rc.selectedDay(c)
	if !ok {
		return
	}

	lang := rc.language(c, st)

	format := c.DefaultQuery("format", "csv")
	switch format {
	case "csv":
		data, err := report.CSV(daily, lang)
		if err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to build CSV")
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.CSVFilename(date)))
		c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
	case "xlsx", "excel":
		data, err := report.XLSX(daily, lang)
		if err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to build XLSX")
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.XLSXFilename(date)))
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
	default:
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid format (use csv or xlsx)")
	}
}
