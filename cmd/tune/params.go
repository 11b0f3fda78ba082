// Package main provides CMA-ES search over the autopilot steering
// weights, looking for a pilot that survives and scores well.
package main

import (
	"github.com/pthm-cable/widdershins/systems"
)

// ParamSpec defines a single optimizable parameter.
type ParamSpec struct {
	Name    string  // Human-readable name
	Min     float64 // Lower bound
	Max     float64 // Upper bound
	Default float64 // Default value
}

// ParamVector holds the set of all optimizable parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the standard set of optimizable parameters.
// Order must match systems.AutopilotParams.Vector.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			{Name: "wall_range", Min: 4.0, Max: 30.0, Default: 12.0},
			{Name: "wall_gain", Min: 0.2, Max: 5.0, Default: 1.5},
			{Name: "body_range", Min: 1.0, Max: 12.0, Default: 4.0},
			{Name: "body_gain", Min: 0.2, Max: 6.0, Default: 2.0},
			{Name: "align_gain", Min: 0.0, Max: 3.0, Default: 0.8},
		},
	}
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// DefaultVector returns the default parameter values as a slice.
func (pv *ParamVector) DefaultVector() []float64 {
	v := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		v[i] = spec.Default
	}
	return v
}

// Normalize converts raw parameter values to [0,1] range.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	normalized := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		normalized[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return normalized
}

// Denormalize converts [0,1] values back to raw parameter values.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	raw := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		raw[i] = spec.Min + normalized[i]*(spec.Max-spec.Min)
	}
	return raw
}

// Clamp ensures all values are within bounds.
func (pv *ParamVector) Clamp(v []float64) []float64 {
	clamped := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		val := v[i]
		if val < spec.Min {
			val = spec.Min
		}
		if val > spec.Max {
			val = spec.Max
		}
		clamped[i] = val
	}
	return clamped
}

// ToParams turns a raw value slice into autopilot params, clamped to
// bounds.
func (pv *ParamVector) ToParams(values []float64) systems.AutopilotParams {
	return systems.AutopilotParamsFromVector(pv.Clamp(values))
}
