package domain

// Course is a catalogue entry shown on the site.
type Course struct {
	ID         int64   `json:"id"`
	Title      string  `json:"title"`
	Instructor string  `json:"instructor"`
	Duration   string  `json:"duration"`
	Level      string  `json:"level"`
	Price      string  `json:"price"`
	Rating     float64 `json:"rating"`
	Students   int64   `json:"students"`
	Category   string  `json:"category"`
	Image      string  `json:"image"`
}
