package libuv

import (
	"math"
)

// quantile estimates a single quantile of a stream of observations, using
// the P-Square algorithm (Jain & Chlamtac, 1985), in constant space.
//
// Not safe for concurrent use.
type quantile struct {
	p       float64
	heights [5]float64 // marker heights
	pos     [5]int     // actual marker positions
	want    [5]float64 // desired marker positions
	inc     [5]float64 // desired position increments
	first   [5]float64 // first five observations
	count   int
}

func newQuantile(p float64) *quantile {
	p = math.Min(math.Max(p, 0), 1)
	return &quantile{
		p:   p,
		inc: [5]float64{0, p / 2, p, (1 + p) / 2, 1},
	}
}

func (q *quantile) observe(x float64) {
	q.count++
	if q.count <= 5 {
		q.first[q.count-1] = x
		if q.count == 5 {
			q.seed()
		}
		return
	}

	var k int
	switch {
	case x < q.heights[0]:
		q.heights[0] = x
		k = 0
	case x >= q.heights[4]:
		q.heights[4] = x
		k = 3
	default:
		for k = 0; k < 4; k++ {
			if q.heights[k] <= x && x < q.heights[k+1] {
				break
			}
		}
	}

	for i := k + 1; i < 5; i++ {
		q.pos[i]++
	}
	for i := range q.want {
		q.want[i] += q.inc[i]
	}

	for i := 1; i < 4; i++ {
		d := q.want[i] - float64(q.pos[i])
		if (d >= 1 && q.pos[i+1]-q.pos[i] > 1) || (d <= -1 && q.pos[i-1]-q.pos[i] < -1) {
			s := 1
			if d < 0 {
				s = -1
			}
			if h := q.parabolic(i, s); q.heights[i-1] < h && h < q.heights[i+1] {
				q.heights[i] = h
			} else {
				q.heights[i] = q.linear(i, s)
			}
			q.pos[i] += s
		}
	}
}

func (q *quantile) seed() {
	sortSmall(q.first[:])
	for i := range q.heights {
		q.heights[i] = q.first[i]
		q.pos[i] = i
	}
	q.want = [5]float64{0, 2 * q.p, 4 * q.p, 2 + 2*q.p, 4}
}

func (q *quantile) parabolic(i, d int) float64 {
	df := float64(d)
	n0, n1, n2 := float64(q.pos[i-1]), float64(q.pos[i]), float64(q.pos[i+1])
	a := (n1 - n0 + df) * (q.heights[i+1] - q.heights[i]) / (n2 - n1)
	b := (n2 - n1 - df) * (q.heights[i] - q.heights[i-1]) / (n1 - n0)
	return q.heights[i] + df/(n2-n0)*(a+b)
}

func (q *quantile) linear(i, d int) float64 {
	return q.heights[i] + float64(d)*(q.heights[i+d]-q.heights[i])/float64(q.pos[i+d]-q.pos[i])
}

func (q *quantile) value() float64 {
	switch {
	case q.count == 0:
		return 0
	case q.count < 5:
		s := make([]float64, q.count)
		copy(s, q.first[:q.count])
		sortSmall(s)
		return s[int(float64(q.count-1)*q.p)]
	default:
		return q.heights[2]
	}
}

// insertion sort, for at most five values
func sortSmall(s []float64) {
	for i := 1; i < len(s); i++ {
		v := s[i]
		j := i - 1
		for j >= 0 && s[j] > v {
			s[j+1] = s[j]
			j--
		}
		s[j+1] = v
	}
}
