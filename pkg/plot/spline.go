package plot

// spline is a natural cubic spline through knots with strictly increasing x.
// Two knots degrade to linear interpolation, one knot to a constant.
type spline struct {
	xs, ys []float64
	y2     []float64 // second derivatives at the knots
}

func newSpline(xs, ys []float64) *spline {
	n := len(xs)
	s := &spline{xs: xs, ys: ys, y2: make([]float64, n)}
	if n < 3 {
		return s
	}

	// Tridiagonal solve with natural boundary conditions (zero second
	// derivative at both ends).
	u := make([]float64, n)
	for i := 1; i < n-1; i++ {
		sig := (xs[i] - xs[i-1]) / (xs[i+1] - xs[i-1])
		p := sig*s.y2[i-1] + 2
		s.y2[i] = (sig - 1) / p
		u[i] = (ys[i+1]-ys[i])/(xs[i+1]-xs[i]) - (ys[i]-ys[i-1])/(xs[i]-xs[i-1])
		u[i] = (6*u[i]/(xs[i+1]-xs[i-1]) - sig*u[i-1]) / p
	}
	for i := n - 2; i >= 0; i-- {
		s.y2[i] = s.y2[i]*s.y2[i+1] + u[i]
	}
	return s
}

func (s *spline) at(x float64) float64 {
	n := len(s.xs)
	if n == 1 {
		return s.ys[0]
	}

	lo, hi := 0, n-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if s.xs[mid] > x {
			hi = mid
		} else {
			lo = mid
		}
	}

	h := s.xs[hi] - s.xs[lo]
	a := (s.xs[hi] - x) / h
	b := (x - s.xs[lo]) / h
	return a*s.ys[lo] + b*s.ys[hi] + ((a*a*a-a)*s.y2[lo]+(b*b*b-b)*s.y2[hi])*h*h/6
}

// smooth evaluates a spline through (xs, ys) at count evenly spaced positions
// spanning [xs[0], xs[len-1]].
func smooth(xs, ys []float64, count int) ([]float64, []float64) {
	s := newSpline(xs, ys)
	span := xs[len(xs)-1] - xs[0]

	outX := make([]float64, count)
	outY := make([]float64, count)
	for i := 0; i < count; i++ {
		x := xs[0]
		if count > 1 {
			x += span * float64(i) / float64(count-1)
		}
		outX[i] = x
		outY[i] = s.at(x)
	}
	return outX, outY
}
