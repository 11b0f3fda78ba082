package main

import (
	"math"
	"sync"

	"github.com/pthm-cable/widdershins/game"
	"github.com/pthm-cable/widdershins/systems"
)

// FitnessEvaluator runs headless sessions and computes fitness.
type FitnessEvaluator struct {
	params   *ParamVector
	maxTicks int
	seeds    []int64
	hardcore bool

	// Best run tracking
	mu          sync.Mutex
	bestFitness float64
	bestRun     game.HeadlessResult
	lastMean    seedMean // aggregates from the most recent Evaluate call
}

// seedMean holds per-evaluation averages across seeds.
type seedMean struct {
	Score    float64
	Laps     float64
	Seconds  float64
	Survived int
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, maxTicks int, seeds []int64, hardcore bool) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:      params,
		maxTicks:    maxTicks,
		seeds:       seeds,
		hardcore:    hardcore,
		bestFitness: math.Inf(1),
	}
}

// BestRun returns the single best seed run seen so far.
func (fe *FitnessEvaluator) BestRun() game.HeadlessResult {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.bestRun
}

// LastMean returns the aggregates from the most recent evaluation.
func (fe *FitnessEvaluator) LastMean() seedMean {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastMean
}

// Evaluate computes fitness for a parameter vector (lower = better).
// Fitness is the negated mean score across seeds, so higher scores give
// lower fitness.
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	pilot := fe.params.ToParams(x)

	// Run all seeds in parallel
	results := make([]game.HeadlessResult, len(fe.seeds))
	var wg sync.WaitGroup

	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			results[idx] = fe.runSession(pilot, s)
		}(i, seed)
	}
	wg.Wait()

	// Aggregate results
	var mean seedMean
	bestSeedScore := math.Inf(-1)
	var bestSeedRun game.HeadlessResult

	for _, r := range results {
		mean.Score += float64(r.Score)
		mean.Laps += float64(r.Laps)
		mean.Seconds += float64(r.Ticks) / 60.0
		if r.Survived {
			mean.Survived++
		}
		if float64(r.Score) > bestSeedScore {
			bestSeedScore = float64(r.Score)
			bestSeedRun = r
		}
	}

	n := float64(len(fe.seeds))
	mean.Score /= n
	mean.Laps /= n
	mean.Seconds /= n

	fitness := -mean.Score

	fe.mu.Lock()
	if fitness < fe.bestFitness {
		fe.bestFitness = fitness
		fe.bestRun = bestSeedRun
	}
	fe.lastMean = mean
	fe.mu.Unlock()

	return fitness
}

// runSession executes one headless session with the given pilot.
func (fe *FitnessEvaluator) runSession(pilot systems.AutopilotParams, seed int64) game.HeadlessResult {
	g := game.NewGame(game.Options{
		Seed:     seed,
		Hardcore: fe.hardcore,
	})
	return g.RunHeadless(fe.maxTicks, pilot)
}
