package models_test

import (
	"testing"
	"time"

	"github.com/Houeta/stampcam/internal/models"
	"github.com/stretchr/testify/assert"
)

func testSlip() models.SlipDetails {
	return models.SlipDetails{
		Name:            "John Doe",
		Month:           "August 2026",
		Salary:          30000,
		Bonus:           2000,
		Other:           500,
		ESI:             300,
		AdvanceTillDate: 5000,
		AdvanceDeducted: 1000,
		Misc:            200,
	}
}

func TestSlipDetails_Derived(t *testing.T) {
	slip := testSlip()

	assert.InDelta(t, 32500, slip.Total(), 1e-9)
	assert.InDelta(t, 4000, slip.NetAdvance(), 1e-9)
	assert.InDelta(t, 31000, slip.Payable(), 1e-9)
}

func TestSlipDetails_Filename(t *testing.T) {
	slip := testSlip()

	assert.Equal(t, "salaryslip_John_Doe_August_2026.docx", slip.Filename())
}

func TestSlipDetails_Placeholders(t *testing.T) {
	slip := testSlip()
	now := time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)

	tokens := slip.Placeholders(now)

	assert.Equal(t, "John Doe", tokens["Name"])
	assert.Equal(t, "August 2026", tokens["Month"])
	assert.Equal(t, "32500", tokens["Total"])
	assert.Equal(t, "4000", tokens["NetAdvance"])
	assert.Equal(t, "31000", tokens["Payable"])
	assert.Equal(t, "31/08/2026", tokens["Date"])
}
