package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"carwash-backend/i18n"
	"carwash-backend/models"

	"github.com/xuri/excelize/v2"
)

// utf8BOM keeps spreadsheet tools that sniff for the marker from garbling
// the Arabic column values.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func headerRow(lang i18n.Language) []string {
	return []string{
		i18n.T(lang, i18n.KeyHeaderTime),
		i18n.T(lang, i18n.KeyHeaderServiceType),
		i18n.T(lang, i18n.KeyHeaderStaff),
		i18n.T(lang, i18n.KeyHeaderCarSize),
		i18n.T(lang, i18n.KeyHeaderPrice),
		i18n.T(lang, i18n.KeyHeaderCommission),
		i18n.T(lang, i18n.KeyHeaderPayment),
		i18n.T(lang, i18n.KeyHeaderCoupon),
		i18n.T(lang, i18n.KeyHeaderPaid),
	}
}

func serviceRow(s models.ServiceRecord, lang i18n.Language) []string {
	yesNo := func(v bool) string {
		if v {
			return i18n.T(lang, i18n.KeyYes)
		}
		return i18n.T(lang, i18n.KeyNo)
	}
	return []string{
		s.Timestamp.Format("2006-01-02 15:04"),
		i18n.T(lang, i18n.Key(s.ServiceType)),
		i18n.DisplayName(lang, s.StaffName, s.StaffNameEn),
		i18n.T(lang, i18n.Key("car-size-"+s.CarSize)),
		strconv.FormatFloat(s.Price, 'f', 2, 64),
		strconv.FormatFloat(s.Commission, 'f', 2, 64),
		i18n.T(lang, i18n.Key("payment-"+s.PaymentMethod)),
		yesNo(s.HasCoupon),
		yesNo(s.IsPaid),
	}
}

// CSVFilename follows the report-<ISO date>.csv pattern.
func CSVFilename(date time.Time) string {
	return fmt.Sprintf("report-%s.csv", date.Format("2006-01-02"))
}

func XLSXFilename(date time.Time) string {
	return fmt.Sprintf("report-%s.xlsx", date.Format("2006-01-02"))
}

// CSV renders the service table as UTF-8 CSV with a leading byte-order mark:
// a localized header row plus one row per service.
func CSV(services []models.ServiceRecord, lang i18n.Language) ([]byte, error) {
	buf := new(bytes.Buffer)
	buf.Write(utf8BOM)

	w := csv.NewWriter(buf)
	if err := w.Write(headerRow(lang)); err != nil {
		return nil, err
	}
	for _, s := range services {
		if err := w.Write(serviceRow(s, lang)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// XLSX renders the same table as a spreadsheet.
func XLSX(services []models.ServiceRecord, lang i18n.Language) ([]byte, error) {
	f := excelize.NewFile()
	sheet := "Report"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	for c, v := range headerRow(lang) {
		cell, _ := excelize.CoordinatesToCellName(c+1, 1)
		_ = f.SetCellValue(sheet, cell, v)
	}
	for r, s := range services {
		for c, v := range serviceRow(s, lang) {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
