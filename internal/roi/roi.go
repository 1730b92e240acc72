// Package roi estimates the return of an automation investment for the
// /roi calculator page.
package roi

import (
	"math"

	"github.com/go-playground/validator/v10"
)

// WorkingWeeks is the number of billable weeks assumed per year.
const WorkingWeeks = 48

// Input is the calculator form. Tags bind echo query parameters and drive
// validation.
type Input struct {
	TeamSize       int     `query:"team_size" form:"team_size" validate:"required,min=1,max=10000"`
	HoursPerWeek   float64 `query:"hours_per_week" form:"hours_per_week" validate:"required,gt=0,lte=80"`
	HourlyRate     float64 `query:"hourly_rate" form:"hourly_rate" validate:"required,gt=0,lte=10000"`
	EfficiencyGain float64 `query:"efficiency_gain" form:"efficiency_gain" validate:"required,gt=0,lte=100"`
	Investment     float64 `query:"investment" form:"investment" validate:"gte=0"`
}

// DefaultInput pre-fills the form.
var DefaultInput = Input{
	TeamSize:       10,
	HoursPerWeek:   10,
	HourlyRate:     75,
	EfficiencyGain: 30,
	Investment:     50000,
}

// Result is the estimate shown to the visitor.
type Result struct {
	HoursSaved    float64 // per year, whole team
	AnnualSavings float64
	NetReturn     float64 // first year, after investment
	ROIPercent    float64 // 0 when there is no investment
	PaybackMonths float64 // 0 when there is no investment or no savings
}

var validate = validator.New()

// Validate checks the input against its tags.
func (in Input) Validate() error {
	return validate.Struct(in)
}

// Estimate computes the yearly savings. It assumes valid input.
func Estimate(in Input) Result {
	hours := float64(in.TeamSize) * in.HoursPerWeek * (in.EfficiencyGain / 100) * WorkingWeeks
	savings := hours * in.HourlyRate

	r := Result{
		HoursSaved:    round2(hours),
		AnnualSavings: round2(savings),
		NetReturn:     round2(savings - in.Investment),
	}
	if in.Investment > 0 {
		r.ROIPercent = round2((savings - in.Investment) / in.Investment * 100)
		if savings > 0 {
			r.PaybackMonths = round2(in.Investment / (savings / 12))
		}
	}
	return r
}

// FieldErrors maps validation failures to the offending query field.
func FieldErrors(err error) map[string]string {
	out := map[string]string{}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		if err != nil {
			out[""] = err.Error()
		}
		return out
	}
	names := map[string]string{
		"TeamSize":       "team_size",
		"HoursPerWeek":   "hours_per_week",
		"HourlyRate":     "hourly_rate",
		"EfficiencyGain": "efficiency_gain",
		"Investment":     "investment",
	}
	for _, fe := range verrs {
		out[names[fe.Field()]] = "Please enter a valid value."
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
