package utils

import "time"

// Stats collects per-generation figures for a run
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	PeakPopulation       int
	TotalGenerations     int
	StartTime            time.Time
	Populations          []int // indexed by generation
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records the population seen at a generation and how long it took to produce
func (s *Stats) Update(generation int, population int, duration time.Duration) {
	s.TotalGenerations = generation
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}
	s.Populations = append(s.Populations, population)
	s.PeakPopulation = max(s.PeakPopulation, population)

	// Simple moving average for population
	if len(s.Populations) == 1 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}
