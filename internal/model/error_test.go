package model

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainError_Is(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		code     string
	}{
		{"not found", NotFoundError("prices.txt", fs.ErrNotExist), ErrResourceNotFound, ErrCodeResourceNotFound},
		{"parse", ParseError("zoo.xml", "line %d", 3), ErrParse, ErrCodeParse},
		{"missing key", MissingKeyError("price table", FoodMeat), ErrMissingKey, ErrCodeMissingKey},
		{"io", IOError("animals.csv", errors.New("disk on fire")), ErrIO, ErrCodeIO},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("computing total: %w", tt.err)

			assert.ErrorIs(t, wrapped, tt.sentinel)
			assert.Equal(t, tt.code, ErrorCode(wrapped))

			for _, other := range []error{ErrResourceNotFound, ErrParse, ErrMissingKey, ErrIO} {
				if other != tt.sentinel {
					assert.NotErrorIs(t, wrapped, other)
				}
			}
		})
	}
}

func TestDomainError_Unwrap(t *testing.T) {
	err := NotFoundError("prices.txt", fs.ErrNotExist)

	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), "prices.txt")
}

func TestErrorCode_NonDomainError(t *testing.T) {
	assert.Empty(t, ErrorCode(errors.New("plain")))
	assert.Empty(t, ErrorCode(nil))
}

func TestPriceTable_Lookup(t *testing.T) {
	prices := PriceTable{FoodMeat: 12.56}

	price, err := prices.Lookup(FoodMeat)
	assert.NoError(t, err)
	assert.Equal(t, 12.56, price)

	_, err = prices.Lookup(FoodFruit)
	assert.ErrorIs(t, err, ErrMissingKey)
}

func TestParseDietKind(t *testing.T) {
	tests := []struct {
		in   string
		want DietKind
		ok   bool
	}{
		{"meat", DietMeat, true},
		{"Fruit", DietFruit, true},
		{" BOTH ", DietMixed, true},
		{"omnivore", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseDietKind(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
