package model

// SeriesPoint is one sample of a projection chart.
type SeriesPoint struct {
	Year  int     `json:"year"`
	Value float64 `json:"value"`
}

// Selection is the chart point highlighted under the pointer.
type Selection struct {
	Year  int     `json:"year"`
	Value float64 `json:"value"`
}
