package covid

// Risk labels assigned to a fatality rate.
const (
	RiskLow    = "Low"
	RiskMedium = "Medium"
	RiskHigh   = "High"
	RiskNone   = "None"
)

// Classify maps a fatality rate to a risk label. Both boundaries belong
// to Medium. A nil rate (a group with no cases) classifies as None.
func Classify(rate *float64) string {
	if rate == nil {
		return RiskNone
	}
	switch {
	case *rate < 2:
		return RiskLow
	case *rate <= 5:
		return RiskMedium
	default:
		return RiskHigh
	}
}
