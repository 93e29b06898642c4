package lpc

import (
	"math"
	"sort"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func sortRoots(rs []Root) {
	sort.Slice(rs, func(i, j int) bool {
		if rs[i].Re != rs[j].Re {
			return rs[i].Re < rs[j].Re
		}
		return rs[i].Im < rs[j].Im
	})
}

func TestRoots_KnownPolynomials(t *testing.T) {
	tests := []struct {
		name string
		a    []float64
		want []Root
		tol  float64
	}{
		{
			// z^2 - z + 0.34 = (z - 0.5 - 0.3i)(z - 0.5 + 0.3i)
			name: "conjugate pair",
			a:    []float64{1, 1, -0.34},
			want: []Root{{Re: 0.5, Im: 0.3}},
			tol:  1e-12,
		},
		{
			// (z - 0.9)(z + 0.5)(z - 0.3)
			name: "three real roots",
			a:    []float64{1, 0.7, 0.33, -0.135},
			want: []Root{{Re: -0.5}, {Re: 0.3}, {Re: 0.9}},
			tol:  1e-8,
		},
		{
			// (z^2 - z + 0.34)(z + 0.6)
			name: "pair and real",
			a:    []float64{1, 0.4, 0.26, -0.204},
			want: []Root{{Re: -0.6}, {Re: 0.5, Im: 0.3}},
			tol:  1e-8,
		},
		{
			// (z^2 - z + 0.34)(z^2 + 0.8z + 0.2)
			name: "two pairs",
			a:    []float64{1, 0.2, 0.26, -0.072, -0.068},
			want: []Root{{Re: -0.4, Im: 0.2}, {Re: 0.5, Im: 0.3}},
			tol:  1e-6,
		},
		{
			// (z - 0.9)(z - 0.3)(z + 0.5)(z^2 - z + 0.34): the pair sits
			// between real roots, so it is never the last block standing
			// and must converge mid-matrix.
			name: "pair among reals",
			a:    []float64{1, 1.7, -0.71, -0.227, 0.2472, -0.0459},
			want: []Root{{Re: -0.5}, {Re: 0.3}, {Re: 0.5, Im: 0.3}, {Re: 0.9}},
			tol:  1e-8,
		},
		{
			name: "single real",
			a:    []float64{1, 0.6},
			want: []Root{{Re: 0.6}},
			tol:  0,
		},
		{
			name: "double root at origin",
			a:    []float64{1, 0, 0},
			want: []Root{{Re: 0}, {Re: 0}},
			tol:  0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Roots(Model{A: tt.a})
			sortRoots(got)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d roots %v, want %d", len(got), got, len(tt.want))
			}
			for i := range tt.want {
				if math.Abs(got[i].Re-tt.want[i].Re) > tt.tol ||
					math.Abs(got[i].Im-tt.want[i].Im) > tt.tol {
					t.Errorf("root %d = (%.12f, %.12f), want (%.12f, %.12f)",
						i, got[i].Re, got[i].Im, tt.want[i].Re, tt.want[i].Im)
				}
			}
		})
	}
}

// companionOf mirrors the matrix Roots builds, in dense form.
func companionOf(a []float64) *mat.Dense {
	p := len(a) - 1
	m := mat.NewDense(p, p, nil)
	for j := 0; j < p; j++ {
		m.Set(0, j, a[j+1])
	}
	for i := 1; i < p; i++ {
		m.Set(i, i-1, 1)
	}
	return m
}

func TestRoots_MatchesDenseEigensolver(t *testing.T) {
	polys := [][]float64{
		{1, 1, -0.34},
		{1, 0.7, 0.33, -0.135},
		{1, 0.4, 0.26, -0.204},
		{1, 0.2, 0.26, -0.072, -0.068},
		// (z - 0.9)(z - 0.5)(z + 0.3)(z + 0.7)(z - 0.1)
		{1, 0.5, 0.7, -0.23, -0.0789, 0.00945},
		// three conjugate pairs and a real root, degree 7
		polyFromFactors(
			[]float64{1, -1.6, 0.89},
			[]float64{1, 0.4, 0.53},
			[]float64{1, 1.2, 0.72},
			[]float64{1, -0.5},
		),
	}
	for _, a := range polys {
		var eig mat.Eigen
		if ok := eig.Factorize(companionOf(a), mat.EigenNone); !ok {
			t.Fatalf("eigendecomposition failed for %v", a)
		}
		want := make([]Root, 0, len(a)-1)
		for _, v := range eig.Values(nil) {
			if im := imag(v); im >= 0 {
				want = append(want, Root{Re: real(v), Im: im})
			}
		}
		got := Roots(Model{A: a})
		sortRoots(got)
		sortRoots(want)
		if len(got) != len(want) {
			t.Errorf("%v: got %d collapsed roots, eigensolver %d", a, len(got), len(want))
			continue
		}
		for i := range want {
			if math.Abs(got[i].Re-want[i].Re) > 1e-6 || math.Abs(got[i].Im-want[i].Im) > 1e-6 {
				t.Errorf("%v: root %d = (%.10f, %.10f), eigensolver (%.10f, %.10f)",
					a, i, got[i].Re, got[i].Im, want[i].Re, want[i].Im)
			}
		}
	}
}

// polyFromFactors multiplies monic factors, each given by its standard
// coefficients, into the solver's layout A[k] = -c_k for
// z^p + c_1 z^(p-1) + ... + c_p.
func polyFromFactors(factors ...[]float64) []float64 {
	c := []float64{1}
	for _, f := range factors {
		next := make([]float64, len(c)+len(f)-1)
		for i, ci := range c {
			for j, fj := range f {
				next[i+j] += ci * fj
			}
		}
		c = next
	}
	a := make([]float64, len(c))
	a[0] = 1
	for k := 1; k < len(c); k++ {
		a[k] = -c[k]
	}
	return a
}

func TestRoots_FormantOrderPolynomial(t *testing.T) {
	// Twelve poles shaped like a vowel spectrum at 8 kHz: five conjugate
	// pairs close to the unit circle plus two real poles for the
	// spectral tilt. Every pair must come back as a collapsed complex
	// root at its construction angle and radius.
	pairs := []struct{ freq, radius float64 }{
		{500, 0.98}, {1500, 0.97}, {2500, 0.96}, {3400, 0.95}, {3900, 0.90},
	}
	reals := []float64{0.7, -0.3}

	var factors [][]float64
	var want []Root
	for _, p := range pairs {
		th := 2 * math.Pi * p.freq / 8000
		factors = append(factors, []float64{1, -2 * p.radius * math.Cos(th), p.radius * p.radius})
		want = append(want, Root{Re: p.radius * math.Cos(th), Im: p.radius * math.Sin(th)})
	}
	for _, re := range reals {
		factors = append(factors, []float64{1, -re})
		want = append(want, Root{Re: re})
	}

	got := Roots(Model{A: polyFromFactors(factors...)})
	sortRoots(got)
	sortRoots(want)
	if len(got) != len(want) {
		t.Fatalf("got %d collapsed roots %v, want %d", len(got), got, len(want))
	}
	for i := range want {
		if math.Abs(got[i].Re-want[i].Re) > 1e-6 || math.Abs(got[i].Im-want[i].Im) > 1e-6 {
			t.Errorf("root %d = (%.9f, %.9f), want (%.9f, %.9f)",
				i, got[i].Re, got[i].Im, want[i].Re, want[i].Im)
		}
	}
}

func TestRoots_CountsMatchDegree(t *testing.T) {
	// Includes a polynomial with every root on the unit circle, the
	// slowest regime for shifted iteration; should a block ever exhaust
	// its sweep cap the diagonal is reported instead. The count must
	// hold either way.
	c1, c2 := 2*math.Cos(1), 2*math.Cos(2)
	polys := [][]float64{
		{1, 0.6},
		{1, 1, -0.34},
		{1, 0.4, 0.26, -0.204},
		{1, 0.2, 0.26, -0.072, -0.068},
		{1, c1 + c2, -(2 + c1*c2), c1 + c2, -1},
	}
	for _, a := range polys {
		roots := Roots(Model{A: a})
		count := 0
		for _, r := range roots {
			if r.Im < 0 {
				t.Errorf("%v: root with negative imaginary part %+v", a, r)
			}
			if r.Complex() {
				count += 2
			} else {
				count++
			}
		}
		if count != len(a)-1 {
			t.Errorf("%v: roots cover degree %d, want %d", a, count, len(a)-1)
		}
	}
}

func TestRoots_Degenerate(t *testing.T) {
	if got := Roots(Model{A: []float64{1}}); got != nil {
		t.Errorf("Roots of constant polynomial = %v, want nil", got)
	}
	if got := Roots(Model{}); got != nil {
		t.Errorf("Roots of empty model = %v, want nil", got)
	}
}

func TestRoot_Complex(t *testing.T) {
	if !(Root{Re: 0.5, Im: 0.3}).Complex() {
		t.Error("root with positive Im reported as real")
	}
	if (Root{Re: 0.5}).Complex() {
		t.Error("root with zero Im reported as complex")
	}
}
