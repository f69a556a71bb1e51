// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from gonum/plot:
// Copyright ©2017 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This is an implementation of the Talbot, Lin and Hanrahan algorithm
// described in doi:10.1109/TVCG.2010.130 with reference to the R
// implementation in the labeling package, ©2014 Justin Talbot (Licensed
// MIT+file LICENSE|Unlimited).

package objects

import (
	"math"
)

const (
	// dlamchP is base * eps for IEEE doubles.
	dlamchP = 2.0 / (1 << 53)

	// wantTicks is the number of ticks asked of the labelling.
	wantTicks = 5
)

type containment int

const (
	// free indicates no restriction on label containment.
	free containment = iota

	// containData specifies that all the data range lies
	// within the interval [label_min, label_max].
	containData

	// withinData specifies that all labels lie within the
	// interval [dMin, dMax].
	withinData
)

var niceQ = []float64{1, 5, 2, 2.5, 4, 3}

var tickWeights = weights{simplicity: 0.25, coverage: 0.2, density: 0.5, legibility: 0.05}

// talbotLinHanrahan returns an optimal set of approximately want label values
// for the data range [dMin, dMax], and the step between values.
func talbotLinHanrahan(dMin, dMax float64, want int, cont containment) (values []float64, step float64) {
	const eps = dlamchP * 100

	if dMin > dMax {
		dMin, dMax = dMax, dMin
	}
	if r := dMax - dMin; r < eps {
		return evenTicks(dMin, dMax, want)
	}

	type selection struct {
		n         int
		lMin      float64
		lMax      float64
		lStep     float64
		score     float64
		magnitude int
	}
	best := selection{score: -2}
	w := &tickWeights

outer:
	for skip := 1; ; skip++ {
		for _, q := range niceQ {
			sm := maxSimplicity(q, skip)
			if w.score(sm, 1, 1, 1) < best.score {
				break outer
			}

			for have := 2; ; have++ {
				dm := maxDensity(have, want)
				if w.score(sm, 1, dm, 1) < best.score {
					break
				}

				delta := (dMax - dMin) / float64(have+1) / float64(skip) / q

				const maxExp = 309
				for mag := int(math.Ceil(math.Log10(delta))); mag < maxExp; mag++ {
					step := float64(skip) * q * math.Pow10(mag)

					cm := maxCoverage(dMin, dMax, step*float64(have-1))
					if w.score(sm, cm, dm, 1) < best.score {
						break
					}

					fracStep := step / float64(skip)
					kStep := step * float64(have-1)

					minStart := (math.Floor(dMax/step) - float64(have-1)) * float64(skip)
					maxStart := math.Ceil(dMax/step) * float64(skip)
					for start := minStart; start <= maxStart && start != start-1; start++ {
						lMin := start * fracStep
						lMax := lMin + kStep

						switch cont {
						case containData:
							if dMin < lMin || lMax < dMax {
								continue
							}
						case withinData:
							if lMin < dMin || dMax < lMax {
								continue
							}
						}

						score := w.score(
							simplicity(q, skip, lMin, lMax, step),
							coverage(dMin, dMax, lMin, lMax),
							density(have, want, dMin, dMax, lMin, lMax),
							1,
						)
						if score > best.score {
							best = selection{
								n:         have,
								lMin:      lMin,
								lMax:      lMax,
								lStep:     float64(skip) * q,
								score:     score,
								magnitude: mag,
							}
						}
					}
				}
			}
		}
	}

	if best.score == -2 {
		return evenTicks(dMin, dMax, want)
	}

	l := make([]float64, best.n)
	step = best.lStep * math.Pow10(best.magnitude)
	for i := range l {
		l[i] = cleanTick(best.lMin+float64(i)*step, step)
	}
	return l, step
}

func evenTicks(dMin, dMax float64, want int) ([]float64, float64) {
	l := make([]float64, want)
	step := (dMax - dMin) / float64(want-1)
	for i := range l {
		l[i] = dMin + float64(i)*step
	}
	return l, step
}

// cleanTick rounds away the floating point noise of v
// relative to the tick step.
func cleanTick(v, step float64) float64 {
	if math.Abs(v) < step*1e-10 {
		return 0
	}
	mag := math.Pow10(int(math.Floor(math.Log10(step))) - 10)
	return math.Round(v/mag) * mag
}

func simplicity(q float64, skip int, lMin, lMax, lStep float64) float64 {
	const eps = dlamchP * 100

	for i, v := range niceQ {
		if v == q {
			m := math.Mod(lMin, lStep)
			v = 0
			if (m < eps || lStep-m < eps) && lMin <= 0 && 0 <= lMax {
				v = 1
			}
			return 1 - float64(i)/(float64(len(niceQ))-1) - float64(skip) + v
		}
	}
	panic("labelling: invalid q for Q")
}

func maxSimplicity(q float64, skip int) float64 {
	for i, v := range niceQ {
		if v == q {
			return 1 - float64(i)/(float64(len(niceQ))-1) - float64(skip) + 1
		}
	}
	panic("labelling: invalid q for Q")
}

// coverage is based on the average squared distance between the
// extreme labels and the extreme data points.
func coverage(dMin, dMax, lMin, lMax float64) float64 {
	r := 0.1 * (dMax - dMin)
	max := dMax - lMax
	min := dMin - lMin
	return 1 - 0.5*(max*max+min*min)/(r*r)
}

func maxCoverage(dMin, dMax, span float64) float64 {
	r := dMax - dMin
	if span <= r {
		return 1
	}
	h := 0.5 * (span - r)
	r *= 0.1
	return 1 - (h*h)/(r*r)
}

func density(have, want int, dMin, dMax, lMin, lMax float64) float64 {
	rho := float64(have-1) / (lMax - lMin)
	rhot := float64(want-1) / (math.Max(lMax, dMax) - math.Min(dMin, lMin))
	if d := rho / rhot; d >= 1 {
		return 2 - d
	}
	return 2 - rhot/rho
}

func maxDensity(have, want int) float64 {
	if have < want {
		return 1
	}
	return 2 - float64(have-1)/float64(want-1)
}

type weights struct {
	simplicity, coverage, density, legibility float64
}

func (w *weights) score(s, c, d, l float64) float64 {
	return w.simplicity*s + w.coverage*c + w.density*d + w.legibility*l
}

// logTicks returns the decades within [lo, hi] of a log axis,
// which must be positive.
func logTicks(lo, hi float64) []float64 {
	var ticks []float64
	for e := math.Ceil(math.Log10(lo) - 1e-9); e <= math.Floor(math.Log10(hi)+1e-9); e++ {
		ticks = append(ticks, math.Pow10(int(e)))
	}
	return ticks
}

// minorTicks returns n-1 evenly spaced values between each
// pair of consecutive major ticks.
func minorTicks(major []float64, n int) []float64 {
	var minor []float64
	for i := 1; i < len(major); i++ {
		d := (major[i] - major[i-1]) / float64(n)
		for j := 1; j < n; j++ {
			minor = append(minor, major[i-1]+float64(j)*d)
		}
	}
	return minor
}
