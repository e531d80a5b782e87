package compare

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type pair struct {
	major string
	minor int
}

func TestChain(t *testing.T) {
	cmp := Chain(
		On(func(p pair) string { return p.major }),
		On(func(p pair) int { return p.minor }),
	)

	tests := []struct {
		name string
		a, b pair
		want int
	}{
		{"first key decides", pair{"a", 9}, pair{"b", 1}, -1},
		{"second key breaks ties", pair{"a", 1}, pair{"a", 2}, -1},
		{"all keys equal", pair{"a", 1}, pair{"a", 1}, 0},
		{"greater on first key", pair{"b", 0}, pair{"a", 9}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sign(cmp(tt.a, tt.b)))
		})
	}
}

func TestReverse(t *testing.T) {
	cmp := On(func(i int) int { return i })
	assert.Equal(t, -1, sign(Reverse(cmp)(2, 1)))
	assert.Equal(t, 1, sign(Reverse(cmp)(1, 2)))
	assert.Equal(t, 0, Reverse(cmp)(1, 1))
}

func TestOptional_AbsentOrdersFirst(t *testing.T) {
	cmp := Optional(On(func(i int) int { return i }))
	one, two := 1, 2

	assert.Equal(t, 0, cmp(nil, nil))
	assert.Equal(t, -1, sign(cmp(nil, &one)))
	assert.Equal(t, 1, sign(cmp(&one, nil)))
	assert.Equal(t, -1, sign(cmp(&one, &two)))
}

func TestOptionalTimes(t *testing.T) {
	early := time.Date(1974, time.May, 27, 0, 0, 0, 0, time.UTC)
	late := time.Date(2016, time.December, 9, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, -1, sign(OptionalTimes(nil, &early)))
	assert.Equal(t, -1, sign(OptionalTimes(&early, &late)))
	assert.Equal(t, 0, OptionalTimes(&early, &early))
}

func sign(c int) int {
	switch {
	case c < 0:
		return -1
	case c > 0:
		return 1
	default:
		return 0
	}
}
