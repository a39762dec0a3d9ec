package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePrice(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"5", "5.00"},
		{"9.9", "9.90"},
		{"9.99", "9.99"},
		{"0.01", "0.01"},
		{" 12.50 ", "12.50"},
		{"1000", "1000.00"},
	}
	for _, tc := range cases {
		got, err := NormalizePrice(tc.in)
		assert.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestNormalizePriceRejectsMalformed(t *testing.T) {
	for _, in := range []string{"", "abc", "9.999", "-1", "1,50", "5.", ".50", "1e3"} {
		_, err := NormalizePrice(in)
		assert.ErrorIs(t, err, ErrInvalidPrice, in)
	}
}

func TestPriceToCents(t *testing.T) {
	cents, err := PriceToCents("9.99")
	assert.NoError(t, err)
	assert.Equal(t, int64(999), cents)

	cents, err = PriceToCents("5")
	assert.NoError(t, err)
	assert.Equal(t, int64(500), cents)

	cents, err = PriceToCents("0.5")
	assert.NoError(t, err)
	assert.Equal(t, int64(50), cents)
}

func TestCentsToPrice(t *testing.T) {
	assert.Equal(t, "9.99", CentsToPrice(999))
	assert.Equal(t, "5.00", CentsToPrice(500))
	assert.Equal(t, "0.05", CentsToPrice(5))
}
