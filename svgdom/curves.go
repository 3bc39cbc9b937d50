package svgdom

import "math"

// extents of path segments, needed by the bounding box of <path> elements

type point struct{ x, y float64 }

// bezierAt evaluates the one dimensional Bezier curve with control
// values c (at most 4) at t, using de Casteljau's algorithm.
func bezierAt(c []float64, t float64) float64 {
	var buf [4]float64
	w := buf[:copy(buf[:], c)]
	for len(w) > 1 {
		for i := 0; i+1 < len(w); i++ {
			w[i] += (w[i+1] - w[i]) * t
		}
		w = w[:len(w)-1]
	}
	return w[0]
}

// stationary returns the parameters where the derivative of the one
// dimensional quadratic or cubic Bezier curve c vanishes.
// The derivative of a Bezier curve is the Bezier curve of the
// differences of its control values.
func stationary(c []float64) []float64 {
	switch len(c) {
	case 3:
		d0, d1 := c[1]-c[0], c[2]-c[1]
		return linearRoots(d1-d0, d0)
	case 4:
		d0, d1, d2 := c[1]-c[0], c[2]-c[1], c[3]-c[2]
		return quadraticRoots(d0-2*d1+d2, 2*(d1-d0), d0)
	}
	return nil
}

// linearRoots solves at + b = 0.
func linearRoots(a, b float64) []float64 {
	if a == 0 {
		return nil
	}
	return []float64{-b / a}
}

// quadraticRoots solves at^2 + bt + c = 0.
func quadraticRoots(a, b, c float64) []float64 {
	if a == 0 {
		return linearRoots(b, c)
	}
	d := b*b - 4*a*c
	switch {
	case d < 0:
		return nil
	case d == 0:
		return []float64{-b / (2 * a)}
	}
	sq := math.Sqrt(d)
	return []float64{(-b + sq) / (2 * a), (-b - sq) / (2 * a)}
}

// extent accumulates the box of a sequence of path segments.
type extent struct {
	min, max point
	started  bool
	current  point
}

func (e *extent) include(p point) {
	if !e.started {
		e.min, e.max, e.started = p, p, true
		return
	}
	e.min.x, e.min.y = math.Min(e.min.x, p.x), math.Min(e.min.y, p.y)
	e.max.x, e.max.y = math.Max(e.max.x, p.x), math.Max(e.max.y, p.y)
}

func (e *extent) moveTo(p point) {
	e.current = p
	e.include(p)
}

func (e *extent) lineTo(p point) {
	e.include(e.current)
	e.include(p)
	e.current = p
}

// curveTo adds the Bezier curve starting at the current point,
// with the given control points, the last one being the end point.
func (e *extent) curveTo(ctrl ...point) {
	var xs, ys [4]float64
	xs[0], ys[0] = e.current.x, e.current.y
	for i, p := range ctrl {
		xs[i+1], ys[i+1] = p.x, p.y
	}
	cx, cy := xs[:len(ctrl)+1], ys[:len(ctrl)+1]

	end := ctrl[len(ctrl)-1]
	e.include(e.current)
	e.include(end)
	// the curve is inside the hull of its control points: only the
	// interior extrema can stick out of the end points box
	for _, t := range append(stationary(cx), stationary(cy)...) {
		if 0 < t && t < 1 {
			e.include(point{bezierAt(cx, t), bezierAt(cy, t)})
		}
	}
	e.current = end
}

func (e *extent) quadTo(ctrl, end point) { e.curveTo(ctrl, end) }

func (e *extent) cubeTo(ctrl1, ctrl2, end point) { e.curveTo(ctrl1, ctrl2, end) }

func (e *extent) bounds() (Bounds, bool) {
	if !e.started {
		return Bounds{}, false
	}
	return Bounds{X: e.min.x, Y: e.min.y, W: e.max.x - e.min.x, H: e.max.y - e.min.y}, true
}

// vectorAngle returns the signed angle from u to v.
func vectorAngle(ux, uy, vx, vy float64) float64 {
	return math.Atan2(ux*vy-uy*vx, ux*vx+uy*vy)
}

// angleWithin reports whether theta lies on the arc starting at
// angle start and spanning the signed angle delta.
func angleWithin(theta, start, delta float64) bool {
	d := theta - start
	if delta < 0 {
		d, delta = -d, -delta
	}
	d = math.Mod(d, 2*math.Pi)
	if d < 0 {
		d += 2 * math.Pi
	}
	return d <= delta
}

// arcTo adds the elliptical arc from the current point to end.
// The center parameterization is recovered as described in the
// implementation notes of SVG 1.1 (F.6.5); the box then takes the
// end points and the axis extrema of the ellipse lying on the arc.
func (e *extent) arcTo(rx, ry, rotDeg float64, largeArc, sweep bool, end point) {
	start := e.current
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0 || ry == 0 || start == end {
		e.lineTo(end)
		return
	}
	sinPhi, cosPhi := math.Sincos(rotDeg * math.Pi / 180)

	// start point in the ellipse frame, relative to the chord middle
	hx, hy := (start.x-end.x)/2, (start.y-end.y)/2
	x1 := cosPhi*hx + sinPhi*hy
	y1 := -sinPhi*hx + cosPhi*hy

	// radii too small to join the end points are scaled up
	if l := x1*x1/(rx*rx) + y1*y1/(ry*ry); l > 1 {
		s := math.Sqrt(l)
		rx, ry = rx*s, ry*s
	}

	num := rx*rx*ry*ry - rx*rx*y1*y1 - ry*ry*x1*x1
	den := rx*rx*y1*y1 + ry*ry*x1*x1
	var coef float64
	if num > 0 && den > 0 {
		coef = math.Sqrt(num / den)
	}
	if largeArc == sweep {
		coef = -coef
	}
	cxp, cyp := coef*rx*y1/ry, -coef*ry*x1/rx
	cx := cosPhi*cxp - sinPhi*cyp + (start.x+end.x)/2
	cy := sinPhi*cxp + cosPhi*cyp + (start.y+end.y)/2

	ux, uy := (x1-cxp)/rx, (y1-cyp)/ry
	theta1 := vectorAngle(1, 0, ux, uy)
	delta := vectorAngle(ux, uy, (-x1-cxp)/rx, (-y1-cyp)/ry)
	if !sweep && delta > 0 {
		delta -= 2 * math.Pi
	} else if sweep && delta < 0 {
		delta += 2 * math.Pi
	}

	e.include(start)
	e.include(end)
	// x'(theta) and y'(theta) vanish at these angles, modulo pi
	for _, base := range [2]float64{
		math.Atan2(-ry*sinPhi, rx*cosPhi),
		math.Atan2(ry*cosPhi, rx*sinPhi),
	} {
		for _, theta := range [2]float64{base, base + math.Pi} {
			if !angleWithin(theta, theta1, delta) {
				continue
			}
			s, c := math.Sincos(theta)
			e.include(point{
				cx + rx*cosPhi*c - ry*sinPhi*s,
				cy + rx*sinPhi*c + ry*cosPhi*s,
			})
		}
	}
	e.current = end
}
