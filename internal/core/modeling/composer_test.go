package modeling

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesa-planner/internal/core/domain"
)

func TestCombineIdentity(t *testing.T) {
	for _, m := range []Method{MethodLogSum, MethodProduct} {
		got := Combine([]float64{1, 1, 1}, CapPolicy{SoftCap: 2, HardCap: 3, Method: m})
		assert.Equal(t, 1.0, got, "method %s", m)
	}
	assert.Equal(t, 1.0, Combine(nil, CapPolicy{SoftCap: 2, HardCap: 3}))
}

func TestCombineSoftCap(t *testing.T) {
	got := Combine([]float64{1.5, 1.5, 1.5}, CapPolicy{SoftCap: 2.0, HardCap: 3.0, Method: MethodLogSum})
	assert.InDelta(t, 2.6875, got, 1e-9)

	got = Combine([]float64{1.5, 1.5, 1.5}, CapPolicy{SoftCap: 2.0, HardCap: 3.0, Method: MethodProduct})
	assert.InDelta(t, 2.6875, got, 1e-12)
}

func TestCombineHardCap(t *testing.T) {
	// 2^4 = 16 -> 2 + 7 = 9 -> clamped to 3
	got := Combine([]float64{2, 2, 2, 2}, CapPolicy{SoftCap: 2, HardCap: 3})
	assert.Equal(t, 3.0, got)
}

func TestCombineFloorsNonPositive(t *testing.T) {
	got := Combine([]float64{0, -5, 1}, CapPolicy{SoftCap: 2, HardCap: 3})
	assert.InDelta(t, 0.0001, got, 1e-12)
	assert.False(t, math.IsNaN(got))

	got = Combine([]float64{math.NaN(), 1.2}, CapPolicy{SoftCap: 2, HardCap: 3})
	assert.InDelta(t, 1.2, got, 1e-12)
}

func TestCombineBounded(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 2000; i++ {
		n := r.Intn(12)
		ms := make([]float64, n)
		for j := range ms {
			ms[j] = r.Float64()*6 - 1
		}
		hard := r.Float64() * 5
		soft := r.Float64() * 5
		method := MethodLogSum
		if i%2 == 0 {
			method = MethodProduct
		}
		got := Combine(ms, CapPolicy{SoftCap: soft, HardCap: hard, Method: method})
		require.GreaterOrEqual(t, got, 0.0)
		require.LessOrEqual(t, got, hard)
	}
}

func TestCombinePreservesOrderingBelowHardCap(t *testing.T) {
	p := CapPolicy{SoftCap: 2, HardCap: 10}
	low := Combine([]float64{1.5, 1.5}, p)
	high := Combine([]float64{1.5, 1.8}, p)
	assert.Less(t, low, high)
}

func TestCapTable(t *testing.T) {
	table := DefaultCapTable()
	assert.Equal(t, CapPolicy{SoftCap: 1.8, HardCap: 2.5, Method: MethodLogSum}, table.Policy(domain.KPICTR))
	assert.True(t, math.IsInf(table.Policy("reach").HardCap, 1))

	product := table.WithMethod(MethodProduct)
	assert.Equal(t, MethodProduct, product.Policy(domain.KPICPM).Method)
	assert.Equal(t, MethodLogSum, table.Policy(domain.KPICPM).Method, "original table untouched")
}

func TestParseMethod(t *testing.T) {
	m, err := ParseMethod("")
	require.NoError(t, err)
	assert.Equal(t, MethodLogSum, m)

	m, err = ParseMethod("product")
	require.NoError(t, err)
	assert.Equal(t, MethodProduct, m)

	_, err = ParseMethod("geometric")
	assert.Error(t, err)
}
