package libuv

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuantile_uniform(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for _, p := range latencyPercentiles {
		q := newQuantile(p)
		for range 20000 {
			q.observe(r.Float64() * 1000)
		}
		assert.InDelta(t, p*1000, q.value(), 20, `p=%v`, p)
	}
}

func TestQuantile_small(t *testing.T) {
	q := newQuantile(0.5)
	assert.Zero(t, q.value())

	q.observe(9)
	assert.Equal(t, 9.0, q.value())

	q.observe(1)
	q.observe(5)
	assert.Equal(t, 5.0, q.value())

	q.observe(7)
	q.observe(3)
	assert.Equal(t, 5.0, q.value())
}

func TestQuantile_clamped(t *testing.T) {
	assert.Equal(t, 0.0, newQuantile(-1).p)
	assert.Equal(t, 1.0, newQuantile(2).p)
}

func TestSortSmall(t *testing.T) {
	s := []float64{4, 2, 5, 1, 3}
	sortSmall(s)
	assert.Equal(t, []float64{1, 2, 3, 4, 5}, s)
}
