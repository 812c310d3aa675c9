package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// SlipDetails holds the figures entered for one salary slip. All amounts are
// in the employer's currency; derived values are computed, never stored.
type SlipDetails struct {
	Name            string  `json:"name"`
	Month           string  `json:"month"`
	Salary          float64 `json:"salary"`
	Bonus           float64 `json:"bonus"`
	Other           float64 `json:"other"`
	ESI             float64 `json:"esi"`
	AdvanceTillDate float64 `json:"advance_till_date"`
	AdvanceDeducted float64 `json:"advance_deducted"`
	Misc            float64 `json:"misc"`
}

// Total is the gross amount: salary plus bonus plus other earnings.
func (d SlipDetails) Total() float64 {
	return d.Salary + d.Bonus + d.Other
}

// NetAdvance is the advance still outstanding after this month's deduction.
func (d SlipDetails) NetAdvance() float64 {
	return d.AdvanceTillDate - d.AdvanceDeducted
}

// Payable is the net amount paid out: gross minus ESI, the advance deducted
// this month, and miscellaneous deductions.
func (d SlipDetails) Payable() float64 {
	return d.Total() - (d.ESI + d.AdvanceDeducted + d.Misc)
}

// Filename returns the delivery name for the generated document,
// "salaryslip_<Name>_<Month>.docx" with spaces replaced by underscores.
func (d SlipDetails) Filename() string {
	name := strings.ReplaceAll(d.Name, " ", "_")
	month := strings.ReplaceAll(d.Month, " ", "_")
	return fmt.Sprintf("salaryslip_%s_%s.docx", name, month)
}

// Placeholders maps template token keys to their rendered values. Amounts are
// formatted without trailing zeros so whole figures stay whole.
func (d SlipDetails) Placeholders(now time.Time) map[string]string {
	amount := func(v float64) string {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	return map[string]string{
		"Name":            d.Name,
		"Month":           d.Month,
		"Salary":          amount(d.Salary),
		"Bonus":           amount(d.Bonus),
		"Other":           amount(d.Other),
		"Total":           amount(d.Total()),
		"ESI":             amount(d.ESI),
		"AdvanceTillDate": amount(d.AdvanceTillDate),
		"AdvanceDeducted": amount(d.AdvanceDeducted),
		"NetAdvance":      amount(d.NetAdvance()),
		"Misc":            amount(d.Misc),
		"Payable":         amount(d.Payable()),
		"Date":            now.Format("02/01/2006"),
	}
}
