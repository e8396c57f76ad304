// Package report derives the daily figures from a service set. Everything
// here is a pure function over in-memory records; no storage access.
package report

import (
	"sort"

	"carwash-backend/i18n"
	"carwash-backend/models"
)

type Totals struct {
	Revenue    float64 `json:"revenue"`
	Commission float64 `json:"commission"`
}

type StaffCommission struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

type PaymentBreakdown struct {
	Cash    float64 `json:"cash"`
	Machine float64 `json:"machine"`
	Coupons int     `json:"coupons"`
	NotPaid float64 `json:"notPaid"`
}

// DailyTotals sums price and commission over the service set.
func DailyTotals(services []models.ServiceRecord) Totals {
	var t Totals
	for _, s := range services {
		t.Revenue += s.Price
		t.Commission += s.Commission
	}
	return t
}

// StaffBreakdown groups commissions by the language-appropriate staff display
// name. Output is sorted by name so responses are stable.
func StaffBreakdown(services []models.ServiceRecord, lang i18n.Language) []StaffCommission {
	byName := make(map[string]float64)
	for _, s := range services {
		name := i18n.DisplayName(lang, s.StaffName, s.StaffNameEn)
		byName[name] += s.Commission
	}

	out := make([]StaffCommission, 0, len(byName))
	for name, amount := range byName {
		out = append(out, StaffCommission{Name: name, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// SalesDelta is the day-over-day percentage change. A zero previous total
// maps to 100 when today sold anything and 0 otherwise; not a true
// percentage, but it keeps the figure defined.
func SalesDelta(today, yesterday float64) float64 {
	if yesterday == 0 {
		if today > 0 {
			return 100
		}
		return 0
	}
	return ((today - yesterday) / yesterday) * 100
}

// Payments splits the day's takings by payment method, counts coupon usage
// and totals what is still outstanding.
func Payments(services []models.ServiceRecord) PaymentBreakdown {
	var p PaymentBreakdown
	for _, s := range services {
		switch s.PaymentMethod {
		case models.PaymentCash:
			p.Cash += s.Price
		case models.PaymentMachine:
			p.Machine += s.Price
		}
		if s.HasCoupon {
			p.Coupons++
		}
		if !s.IsPaid {
			p.NotPaid += s.Price
		}
	}
	return p
}
