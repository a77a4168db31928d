package models

// SpenderRating buckets the smart score into a coarse label.
type SpenderRating string

const (
	RatingExcellent SpenderRating = "Excellent"
	RatingGood      SpenderRating = "Good"
	RatingModerate  SpenderRating = "Moderate"
	RatingPoor      SpenderRating = "Poor"
)

// SmartScore summarizes how closely spending matches an ideal category
// distribution. Score is bounded to [0, 10]. Recommendations are ordered
// most severe first.
type SmartScore struct {
	Score           float64       `json:"score" yaml:"score"`
	SpenderRating   SpenderRating `json:"spender_rating" yaml:"spender_rating"`
	Interpretation  string        `json:"interpretation" yaml:"interpretation"`
	Recommendations []string      `json:"recommendations" yaml:"recommendations"`
}
