/*
dto.go - Data Transfer Objects for API responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the internal domain model from the external API contract.

NAMING CONVENTION:
  - *DTO: Response types returned to clients

VALIDATION:
  Validation is done in handlers, not in DTOs. DTOs are pure data
  carriers.

SEE ALSO:
  - handlers.go: Uses these types
*/
package api

import (
	"time"

	"github.com/warp/payroll-engine/payroll"
	"github.com/warp/payroll-engine/store"
)

// =============================================================================
// RESPONSE TYPES
// =============================================================================

// RunDTO represents a payroll run in API responses.
type RunDTO struct {
	ID          string    `json:"id"`
	StartedAt   time.Time `json:"startedAt"`
	CompletedAt time.Time `json:"completedAt"`
	ResultCount int       `json:"resultCount"`
}

// ResultDTO represents one payment result.
type ResultDTO struct {
	EmployeeID        string `json:"employeeId"`
	Pay               string `json:"pay"`
	Date              string `json:"date"`
	SettlementAccount string `json:"settlementAccount"`
	Currency          string `json:"currency"`
	BasePay           string `json:"basePay"`
	OvertimePay       string `json:"overtimePay"`
	Deduction         string `json:"deduction"`
}

// ErrorDTO wraps an error message.
type ErrorDTO struct {
	Error string `json:"error"`
}

// =============================================================================
// CONVERTERS
// =============================================================================

func toRunDTO(rec store.RunRecord) RunDTO {
	return RunDTO{
		ID:          rec.ID,
		StartedAt:   rec.StartedAt,
		CompletedAt: rec.CompletedAt,
		ResultCount: rec.ResultCount,
	}
}

func toResultDTO(r payroll.PaymentResult) ResultDTO {
	return ResultDTO{
		EmployeeID:        string(r.EmployeeID),
		Pay:               r.Pay.StringFixed(2),
		Date:              r.Date,
		SettlementAccount: r.SettlementAccount,
		Currency:          r.Currency,
		BasePay:           r.Breakdown.Base.StringFixed(2),
		OvertimePay:       r.Breakdown.Overtime.StringFixed(2),
		Deduction:         r.Breakdown.Deduction.StringFixed(2),
	}
}
