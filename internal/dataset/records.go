package dataset

// Field names the merge attaches supplemental records under.
const (
	IncomeField    = "income"
	EducationField = "education"
)

// Income holds household income statistics for one village.
type Income struct {
	Households  float64 `json:"households"`
	TotalIncome float64 `json:"total_income"`
	Mean        float64 `json:"mean"`
	Median      float64 `json:"median"`
	Q1          float64 `json:"q1"`
	Q3          float64 `json:"q3"`
	Std         float64 `json:"std"`
	CV          float64 `json:"cv"`
}

// Education holds higher-education attainment for one village.
// Rate is nil when TotalPopulation is zero.
type Education struct {
	TotalPopulation float64  `json:"total_population"`
	HigherEducation float64  `json:"higher_education"`
	Rate            *float64 `json:"rate"`
}

// NewEducation computes the attainment rate from the two counts.
func NewEducation(total, higher float64) Education {
	e := Education{TotalPopulation: total, HigherEducation: higher}
	if total != 0 {
		rate := higher / total
		e.Rate = &rate
	}

	return e
}
