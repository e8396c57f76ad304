package report

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"testing"
	"time"

	"carwash-backend/i18n"
	"carwash-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDay() []models.ServiceRecord {
	at := time.Date(2025, 6, 15, 10, 0, 0, 0, time.Local)
	return []models.ServiceRecord{
		{
			ServiceType: "exterior-wash", CarSize: "small",
			StaffName: "أحمد", StaffNameEn: "Ahmed",
			Price: 30, Commission: 5,
			PaymentMethod: models.PaymentCash, IsPaid: true,
			Timestamp: at,
		},
		{
			ServiceType: "full-wash", CarSize: "large",
			StaffName: "أحمد", StaffNameEn: "Ahmed",
			Price: 70, Commission: 10,
			PaymentMethod: models.PaymentMachine, IsPaid: true, HasCoupon: true,
			Timestamp: at.Add(time.Hour),
		},
		{
			ServiceType: "polish", CarSize: "medium",
			StaffName: "سعيد", StaffNameEn: "Saeed",
			Price: 150, Commission: 20,
			PaymentMethod: models.PaymentNone, IsPaid: false,
			Timestamp: at.Add(2 * time.Hour),
		},
	}
}

func TestDailyTotals(t *testing.T) {
	totals := DailyTotals(sampleDay())
	assert.Equal(t, 250.0, totals.Revenue)
	assert.Equal(t, 35.0, totals.Commission)

	assert.Equal(t, Totals{}, DailyTotals(nil))
}

func TestSalesDelta(t *testing.T) {
	assert.Equal(t, 100.0, SalesDelta(50, 0))
	assert.Equal(t, 0.0, SalesDelta(0, 0))
	assert.Equal(t, -50.0, SalesDelta(100, 200))
	assert.Equal(t, 25.0, SalesDelta(125, 100))
	assert.Equal(t, -100.0, SalesDelta(0, 80))
}

func TestStaffBreakdown(t *testing.T) {
	breakdown := StaffBreakdown(sampleDay(), i18n.English)
	require.Len(t, breakdown, 2)

	// Sorted by display name.
	assert.Equal(t, "Ahmed", breakdown[0].Name)
	assert.Equal(t, 15.0, breakdown[0].Amount)
	assert.Equal(t, "Saeed", breakdown[1].Name)
	assert.Equal(t, 20.0, breakdown[1].Amount)

	arabic := StaffBreakdown(sampleDay(), i18n.Arabic)
	require.Len(t, arabic, 2)
	assert.Equal(t, "أحمد", arabic[0].Name)
}

func TestPayments(t *testing.T) {
	p := Payments(sampleDay())
	assert.Equal(t, 30.0, p.Cash)
	assert.Equal(t, 70.0, p.Machine)
	assert.Equal(t, 1, p.Coupons)
	assert.Equal(t, 150.0, p.NotPaid)
}

func TestCSVStartsWithBOM(t *testing.T) {
	data, err := CSV(sampleDay(), i18n.Arabic)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}))
}

func TestCSVRowsMatchTotals(t *testing.T) {
	services := sampleDay()
	data, err := CSV(services, i18n.English)
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF}))).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, len(services)+1)

	assert.Equal(t, "Time", rows[0][0])
	assert.Equal(t, "Service Type", rows[0][1])
	assert.Len(t, rows[0], 9)

	var revenue float64
	for _, row := range rows[1:] {
		price, err := strconv.ParseFloat(row[4], 64)
		require.NoError(t, err)
		revenue += price
	}
	assert.Equal(t, DailyTotals(services).Revenue, revenue)

	// Localized payment labels, not raw method keys.
	assert.Equal(t, "Cash", rows[1][6])
	assert.Equal(t, "Not Paid", rows[3][6])
	assert.Equal(t, "Yes", rows[2][7])
	assert.Equal(t, "No", rows[1][7])
}

func TestExportFilenames(t *testing.T) {
	date := time.Date(2025, 6, 15, 14, 30, 0, 0, time.Local)
	assert.Equal(t, "report-2025-06-15.csv", CSVFilename(date))
	assert.Equal(t, "report-2025-06-15.xlsx", XLSXFilename(date))
}

func TestXLSXProducesWorkbook(t *testing.T) {
	data, err := XLSX(sampleDay(), i18n.English)
	require.NoError(t, err)
	// XLSX is a zip container.
	assert.True(t, bytes.HasPrefix(data, []byte{'P', 'K'}))
}
