package service

import (
	"math"
	"math/rand"
)

// MetricsProvider supplies the outreach metrics that no upstream system
// feeds us yet. Pluggable so tests can pin the values.
type MetricsProvider interface {
	ResponseRate() float64
}

// RandomMetricsProvider simulates a plausible response rate between 22% and
// 35%, rounded to two decimals.
// TODO: replace with real campaign metrics once the SMS provider webhook
// is wired in.
type RandomMetricsProvider struct{}

func (RandomMetricsProvider) ResponseRate() float64 {
	rate := 0.22 + rand.Float64()*(0.35-0.22)
	return math.Round(rate*100) / 100
}

var _ MetricsProvider = RandomMetricsProvider{}
