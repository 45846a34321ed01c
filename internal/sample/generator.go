// Package sample simulates datasets from the causal graph.
//
// A Generator owns its random source: seeded generators are deterministic
// end to end, and concurrent callers get isolation by constructing one
// Generator each rather than sharing process-wide RNG state.
package sample

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/kmills/causalpath/internal/dataset"
	"github.com/kmills/causalpath/internal/model"
)

// Generator draws datasets consistent with the causal graph under a fixed
// coefficient vector. Not safe for concurrent use; construct one per
// goroutine.
type Generator struct {
	coeffs  model.Coefficients
	uniform distuv.Uniform
	normal  distuv.Normal
}

// New creates a Generator seeded from OS entropy.
func New(coeffs model.Coefficients) (*Generator, error) {
	seed, err := entropySeed()
	if err != nil {
		return nil, err
	}
	return newGenerator(coeffs, rand.NewSource(seed))
}

// entropySeed draws a seed from crypto/rand. The x/exp/rand package-level
// generator is fixed-seeded, so it must not be used here: every process
// would start from the same stream.
func entropySeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read entropy: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// NewSeeded creates a deterministic Generator: the seed is applied before
// any sampling, so every draw of every Generate call is reproducible.
func NewSeeded(coeffs model.Coefficients, seed uint64) (*Generator, error) {
	return newGenerator(coeffs, rand.NewSource(seed))
}

func newGenerator(coeffs model.Coefficients, src rand.Source) (*Generator, error) {
	if err := coeffs.Validate(); err != nil {
		return nil, fmt.Errorf("invalid coefficients: %w", err)
	}
	return &Generator{
		coeffs:  coeffs,
		uniform: distuv.Uniform{Min: 0, Max: 1, Src: src},
		normal:  distuv.Normal{Mu: 0, Sigma: 1, Src: src},
	}, nil
}

// Generate draws a table of n independent rows with columns in canonical
// order (SM, OS, OP, FM, FR, OA, MH).
//
// Draw order is part of the contract: treatment uniforms first, then one
// standard-normal noise vector per mediator in canonical order, then the
// outcome noise vector, then the confounder uniforms. Reordering would
// silently change seeded output.
func (g *Generator) Generate(n int) (*dataset.Table, error) {
	if n <= 0 {
		return nil, fmt.Errorf("row count must be positive, got %d", n)
	}

	// Treatment: SM ~ Uniform[0,1).
	sm := g.drawUniform(n)

	// Mediators: activation * SM + standard-normal noise, each mediator
	// with its own independent noise vector.
	mediators := make([][]float64, model.NumMediators)
	for i, m := range g.coeffs.Mediators {
		noise := g.drawNormal(n)
		col := make([]float64, n)
		for row := 0; row < n; row++ {
			col[row] = sm[row]*m.Activation + noise[row]
		}
		mediators[i] = col
	}

	// Outcome equation before the confounder and direct terms.
	outcomeNoise := g.drawNormal(n)
	mh := make([]float64, n)
	for row := 0; row < n; row++ {
		v := g.coeffs.Intercept + outcomeNoise[row]
		for i, m := range g.coeffs.Mediators {
			v += mediators[i][row] * m.Effect
		}
		mh[row] = v
	}

	// Confounder: OA ~ Uniform[0,1), independent of everything above.
	oa := g.drawUniform(n)
	for row := 0; row < n; row++ {
		mh[row] += oa[row]*g.coeffs.Confounder + sm[row]*g.coeffs.Direct
	}

	data := map[string][]float64{
		model.NodeTreatment:  sm,
		model.NodeConfounder: oa,
		model.NodeOutcome:    mh,
	}
	for i, name := range model.MediatorNames {
		data[name] = mediators[i]
	}
	return dataset.New(model.ColumnOrder, data)
}

func (g *Generator) drawUniform(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = g.uniform.Rand()
	}
	return out
}

func (g *Generator) drawNormal(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = g.normal.Rand()
	}
	return out
}
