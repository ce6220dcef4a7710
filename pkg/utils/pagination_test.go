package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetPaginationParams(t *testing.T) {
	p := GetPaginationParams(0, -5)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 0, p.Limit)

	p = GetPaginationParams(3, 20)
	assert.Equal(t, 40, p.CalculateOffset())
}

func TestCalculateMeta(t *testing.T) {
	m := CalculateMeta(45, 2, 20)
	assert.Equal(t, 2, m.Page)
	assert.Equal(t, 3, m.TotalPages)
	assert.Equal(t, int64(45), m.TotalCount)

	m = CalculateMeta(7, 1, 0)
	assert.Equal(t, 1, m.TotalPages)
	assert.Equal(t, 7, m.Limit)
}
