package scholarship

import (
	"math"
	"strconv"

	"github.com/uyznfoundation/portal/core"
)

// Eligibility classifications
const (
	Eligible   = "ok"
	Borderline = "maybe"
	Ineligible = "no"
)

// User-facing classification messages.
const (
	msgIncomplete = "Please complete all fields to check eligibility."
	msgEligible   = "Great news—you’re likely eligible! Start your application or explore matching scholarships."
	msgBorderline = "You may be eligible depending on program specifics. Review requirements and proceed."
	msgIneligible = "Based on your answers, you may not qualify at this time. You can still browse open scholarships."
)

type (
	// EligibilityQuery carries the raw form field values. Parsing
	// failures degrade to the incomplete classification instead of
	// raising an error, so the form stays responsive.
	EligibilityQuery struct {
		Age      string `json:"age"`
		GPA      string `json:"gpa"`
		GPAScale string `json:"gpaScale"` // "4" (default), "5" or "100"
		Region   string `json:"region"`
		Income   string `json:"income"` // household income, GHS
	}

	EligibilityResult struct {
		Status  string `json:"status"` // ok | maybe | no
		Message string `json:"message"`
	}

	// Policy holds the fixed scoring thresholds. Not configurable per
	// scholarship.
	Policy struct {
		AgeMin        int
		AgeMax        int
		MinGPA4       float64
		IncomeCeiling int
	}
)

func DefaultPolicy() Policy {
	return Policy{AgeMin: 16, AgeMax: 35, MinGPA4: 2.8, IncomeCeiling: 72000}
}

func NewPolicy(conf core.EligibilityConfig) Policy {
	return Policy{
		AgeMin:        conf.AgeMin,
		AgeMax:        conf.AgeMax,
		MinGPA4:       conf.MinGPA4,
		IncomeCeiling: conf.IncomeCeiling,
	}
}

// NormalizeGPA converts a GPA expressed on a 4.0, 5.0 or 0–100 scale to
// the common 4.0 scale. Returns NaN for non-numeric input.
func NormalizeGPA(gpa, scale string) float64 {
	n, err := strconv.ParseFloat(core.CleanString(gpa), 64)
	if err != nil {
		return math.NaN()
	}
	switch core.CleanString(scale) {
	case "5":
		return (n / 5) * 4
	case "100":
		return (n / 100) * 4
	default:
		return n // "4"
	}
}

// Classify scores three independent predicates (age within bounds,
// normalized GPA at or above the minimum, household income at or below
// the ceiling). A full score is eligible, two out of three is
// borderline, anything less is ineligible. Any missing or unparsable
// field short-circuits to borderline with a completeness message; that
// is a data-completeness signal, not an eligibility judgment.
func (p Policy) Classify(q EligibilityQuery) EligibilityResult {
	age, ageErr := strconv.Atoi(core.CleanString(q.Age))
	gpa4 := NormalizeGPA(q.GPA, q.GPAScale)
	income, incomeErr := strconv.Atoi(core.CleanString(q.Income))
	region := core.CleanString(q.Region)

	if ageErr != nil || math.IsNaN(gpa4) || incomeErr != nil || region == "" {
		return EligibilityResult{Status: Borderline, Message: msgIncomplete}
	}

	var score int
	if age >= p.AgeMin && age <= p.AgeMax {
		score++
	}
	if gpa4 >= p.MinGPA4 {
		score++
	}
	if income <= p.IncomeCeiling {
		score++
	}

	switch score {
	case 3:
		return EligibilityResult{Status: Eligible, Message: msgEligible}
	case 2:
		return EligibilityResult{Status: Borderline, Message: msgBorderline}
	default:
		return EligibilityResult{Status: Ineligible, Message: msgIneligible}
	}
}
