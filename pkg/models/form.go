package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// FieldValue is a form value normalised to text.
// JSON numbers and booleans are accepted because hidden totals on the
// ALIE page may be posted unquoted. Falsy JSON values decode to "".
type FieldValue string

// UnmarshalJSON accepts strings, numbers, booleans and null
func (v *FieldValue) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw interface{}
	if err := dec.Decode(&raw); err != nil {
		return err
	}

	switch x := raw.(type) {
	case nil:
		*v = ""
	case string:
		*v = FieldValue(x)
	case bool:
		if x {
			*v = "true"
		} else {
			*v = ""
		}
	case json.Number:
		if f, err := x.Float64(); err == nil && f == 0 {
			*v = ""
		} else {
			*v = FieldValue(x.String())
		}
	default:
		return fmt.Errorf("unsupported form value: %s", string(data))
	}
	return nil
}

// Represents the data structure coming from the ALIE form
type ALIEFormData struct {
	Email        FieldValue `json:"email" form:"email" binding:"required"`
	BusinessName FieldValue `json:"Business Name" form:"Business Name"`
	Names        FieldValue `json:"Name(s)" form:"Name(s)"`

	// Hidden totals calculated on the page
	TotalMonthlyIncome      FieldValue `json:"alie_total_monthly_income" form:"alie_total_monthly_income"`
	TotalMonthlyExpenditure FieldValue `json:"alie_total_monthly_expenditure" form:"alie_total_monthly_expenditure"`
	MonthlySurplusDeficit   FieldValue `json:"alie_monthly_surplus_deficit" form:"alie_monthly_surplus_deficit"`
	TotalAssets             FieldValue `json:"alie_total_assets" form:"alie_total_assets"`
	TotalLiabilities        FieldValue `json:"alie_total_liabilities" form:"alie_total_liabilities"`
	NetWorth                FieldValue `json:"alie_net_worth" form:"alie_net_worth"`
}

// SubmissionMeta carries request attributes HubSpot uses for attribution
type SubmissionMeta struct {
	HUTK    string // hubspotutk cookie
	PageURI string // Referer header
}
