package utils

type Metric struct {
	FeedFetch     chan float64
	DatabaseWrite chan float64
}

func NewMetric() *Metric {
	return &Metric{
		FeedFetch:     make(chan float64),
		DatabaseWrite: make(chan float64),
	}
}
