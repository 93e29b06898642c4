package lpc

import "math"

// Root is one eigenvalue of the prediction polynomial's companion
// matrix. Conjugate pairs are collapsed on extraction: Im is zero for a
// real root and positive for the retained half of a complex pair.
type Root struct {
	Re, Im float64
}

// Complex reports whether the root is the retained half of a conjugate pair.
func (r Root) Complex() bool { return r.Im > 0 }

const (
	qrDeflateEps = 1e-10
	qrMaxIter    = 50
)

// Roots returns the poles of the fitted model: the eigenvalues of the
// companion matrix of z^p - A[1]z^(p-1) - ... - A[p], found by QR
// iteration on the Hessenberg form with implicit double shifts, so a
// conjugate pair converges as fast as a real eigenvalue and without
// complex arithmetic. Before every sweep the whole sub-diagonal is
// scanned and the matrix splits at any negligible entry; a split-off
// 1x1 block deflates a real eigenvalue, a split-off trailing 2x2 block
// is solved directly (negative discriminant holds a conjugate pair and
// deflates as one collapsed Root). The solver always terminates: each
// deflation is capped at qrMaxIter sweeps, after which the stuck
// block's diagonal is reported as real eigenvalues.
func Roots(m Model) []Root {
	p := len(m.A) - 1
	if p < 1 {
		return nil
	}

	// The companion matrix is already upper Hessenberg: coefficients
	// across the first row, ones on the sub-diagonal.
	h := make([][]float64, p)
	cells := make([]float64, p*p)
	for i := range h {
		h[i] = cells[i*p : (i+1)*p]
	}
	for j := 0; j < p; j++ {
		h[0][j] = m.A[j+1]
	}
	for i := 1; i < p; i++ {
		h[i][i-1] = 1
	}

	// Anchors the negligibility test on rows whose neighboring
	// diagonal entries both vanish.
	var hnorm float64
	for i := 0; i < p; i++ {
		for j := max(i-1, 0); j < p; j++ {
			hnorm += math.Abs(h[i][j])
		}
	}

	roots := make([]Root, 0, p)
	n := p - 1 // trailing index of the active block
	iter := 0
	for n >= 0 {
		l := splitPoint(h, n, hnorm)
		switch {
		case l == n:
			roots = append(roots, Root{Re: h[n][n]})
			n--
			iter = 0
		case l == n-1:
			a, b := h[n-1][n-1], h[n-1][n]
			c, d := h[n][n-1], h[n][n]
			tr := a + d
			disc := tr*tr - 4*(a*d-b*c)
			if disc < 0 {
				roots = append(roots, Root{Re: tr / 2, Im: math.Sqrt(-disc) / 2})
			} else {
				s := math.Sqrt(disc)
				roots = append(roots, Root{Re: (tr + s) / 2}, Root{Re: (tr - s) / 2})
			}
			n -= 2
			iter = 0
		default:
			if iter >= qrMaxIter {
				for i := n; i >= l; i-- {
					roots = append(roots, Root{Re: h[i][i]})
				}
				n = l - 1
				iter = 0
				continue
			}
			// The shifts are the two eigenvalues of the trailing 2x2
			// block, carried as their sum and product so the sweep
			// stays real. Every tenth sweep substitutes an ad-hoc
			// shift to break shift cycles.
			sum := h[n-1][n-1] + h[n][n]
			prod := h[n-1][n-1]*h[n][n] - h[n-1][n]*h[n][n-1]
			if iter > 0 && iter%10 == 0 {
				s := math.Abs(h[n][n-1]) + math.Abs(h[n-1][n-2])
				v := 0.75*s + h[n][n]
				sum = 2 * v
				prod = v*v + 0.4375*s*s
			}
			iter++
			francisSweep(h, l, n, sum, prod)
		}
	}
	return roots
}

// splitPoint scans the sub-diagonal of h[0..n][0..n] from the bottom
// and returns the top row of the lowest unreduced block: the row just
// below the first negligible sub-diagonal entry, or 0 when every entry
// couples. A negligible entry is zeroed so the block above deflates
// independently later.
func splitPoint(h [][]float64, n int, hnorm float64) int {
	for l := n; l > 0; l-- {
		s := math.Abs(h[l-1][l-1]) + math.Abs(h[l][l])
		if s == 0 {
			s = hnorm
		}
		if math.Abs(h[l][l-1]) <= qrDeflateEps*s {
			h[l][l-1] = 0
			return l
		}
	}
	return 0
}

// francisSweep chases one implicit double-shift bulge through the
// Hessenberg block h[l..n][l..n], which must be at least 3x3. The
// first Householder reflector comes from the leading column of
// (H - s1)(H - s2), expressed through the real shift sum and product;
// each following reflector pushes the bulge one row down until it
// drops off the bottom and the block is Hessenberg again.
func francisSweep(h [][]float64, l, n int, sum, prod float64) {
	x := h[l][l]*h[l][l] + h[l][l+1]*h[l+1][l] - sum*h[l][l] + prod
	y := h[l+1][l] * (h[l][l] + h[l+1][l+1] - sum)
	z := h[l+2][l+1] * h[l+1][l]

	for k := l; k < n; k++ {
		third := k < n-1 // the bulge loses its third row at the bottom
		if k > l {
			x, y, z = h[k][k-1], h[k+1][k-1], 0
			if third {
				z = h[k+2][k-1]
			}
		}
		scale := math.Abs(x) + math.Abs(y) + math.Abs(z)
		if scale == 0 {
			continue
		}
		x, y, z = x/scale, y/scale, z/scale
		nu := math.Sqrt(x*x + y*y + z*z)
		if x < 0 {
			nu = -nu
		}
		// Householder vector (w0,w1,w2): reflects the bulge column
		// onto the sub-diagonal.
		w0, w1, w2 := x+nu, y, z
		beta := 1 / (nu * w0)

		if k > l {
			h[k][k-1] = -nu * scale
			h[k+1][k-1] = 0
			if third {
				h[k+2][k-1] = 0
			}
		}
		for j := k; j <= n; j++ {
			d := w0*h[k][j] + w1*h[k+1][j]
			if third {
				d += w2 * h[k+2][j]
			}
			d *= beta
			h[k][j] -= d * w0
			h[k+1][j] -= d * w1
			if third {
				h[k+2][j] -= d * w2
			}
		}
		bot := min(k+3, n)
		for i := l; i <= bot; i++ {
			d := w0*h[i][k] + w1*h[i][k+1]
			if third {
				d += w2 * h[i][k+2]
			}
			d *= beta
			h[i][k] -= d * w0
			h[i][k+1] -= d * w1
			if third {
				h[i][k+2] -= d * w2
			}
		}
	}
}
