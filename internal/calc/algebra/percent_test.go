package algebra_test

import (
	"errors"
	"math"
	"math/big"
	"testing"

	"calckit/internal/calc/algebra"
)

func TestPercentChange(t *testing.T) {
	up, err := algebra.PercentChange(50, 75)
	if err != nil {
		t.Fatalf("PercentChange: %v", err)
	}
	if up.Percent != 50 || up.Direction != algebra.Increase {
		t.Fatalf("wanted: 50%% increase\ngot: %+v", up)
	}

	down, _ := algebra.PercentChange(75, 50)
	if math.Abs(down.Percent-33.33) > 0.005 || down.Direction != algebra.Decrease {
		t.Fatalf("wanted: 33.33%% decrease\ngot: %+v", down)
	}

	same, _ := algebra.PercentChange(10, 10)
	if same.Direction != algebra.NoChange {
		t.Fatalf("wanted: no change\ngot: %+v", same)
	}

	if _, err := algebra.PercentChange(0, 10); !errors.Is(err, algebra.ErrZeroBase) {
		t.Fatalf("wanted: ErrZeroBase\ngot: %v", err)
	}
}

func TestPercentOf(t *testing.T) {
	if got := algebra.PercentOf(15, 200); got != 30 {
		t.Fatalf("wanted: 30\ngot: %f", got)
	}
	if got, _ := algebra.WhatPercent(30, 120); got != 25 {
		t.Fatalf("wanted: 25\ngot: %f", got)
	}
}

func TestGCDLCM(t *testing.T) {
	vals := []*big.Int{big.NewInt(12), big.NewInt(18), big.NewInt(-30)}
	gcd, lcm, err := algebra.GCDLCM(vals)
	if err != nil {
		t.Fatalf("GCDLCM: %v", err)
	}
	if gcd.Int64() != 6 || lcm.Int64() != 180 {
		t.Fatalf("wanted: 6, 180\ngot: %s, %s", gcd, lcm)
	}
	if _, _, err := algebra.GCDLCM(vals[:1]); !errors.Is(err, algebra.ErrNeedTwo) {
		t.Fatalf("wanted: ErrNeedTwo\ngot: %v", err)
	}
}

func TestFractions(t *testing.T) {
	x, err := algebra.ParseFraction("1 1/2")
	if err != nil {
		t.Fatalf("ParseFraction: %v", err)
	}
	y, _ := algebra.ParseFraction("3/4")
	sum, _ := algebra.FractionOp(x, "+", y)
	if got := algebra.MixedNumber(sum); got != "2 1/4" {
		t.Fatalf("wanted: 2 1/4\ngot: %s", got)
	}
	if _, err := algebra.FractionOp(x, "/", new(big.Rat)); !errors.Is(err, algebra.ErrZeroDenominator) {
		t.Fatalf("wanted: ErrZeroDenominator\ngot: %v", err)
	}
	neg, _ := algebra.ParseFraction("-3/4")
	if got := algebra.MixedNumber(neg); got != "-3/4" {
		t.Fatalf("wanted: -3/4\ngot: %s", got)
	}
}
