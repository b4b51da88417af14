package health_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"calckit/internal/calc/health"
)

func TestBMI(t *testing.T) {
	t.Run("should classify a normal reading", func(t *testing.T) {
		got, err := health.BMI(70, 175)
		if err != nil {
			t.Fatalf("wanted: nil\ngot: %v", err)
		}
		if math.Abs(got.BMI-22.857) > 1e-3 || got.Category != "Normal weight" {
			t.Fatalf("wanted: 22.857 normal\ngot: %+v", got)
		}
	})

	t.Run("should accept imperial units", func(t *testing.T) {
		got, err := health.BMIImperial(154, 69)
		if err != nil {
			t.Fatalf("wanted: nil\ngot: %v", err)
		}
		if math.Abs(got.BMI-22.74) > 0.01 {
			t.Fatalf("wanted: 22.74\ngot: %f", got.BMI)
		}
	})

	t.Run("should reject zero height", func(t *testing.T) {
		if _, err := health.BMI(70, 0); !errors.Is(err, health.ErrNonPositive) {
			t.Fatalf("wanted: ErrNonPositive\ngot: %v", err)
		}
	})
}

func TestTDEE(t *testing.T) {
	e, err := health.TDEE(health.Male, 30, 80, 180, health.Moderate)
	if err != nil {
		t.Fatalf("TDEE: %v", err)
	}
	if e.BMR != 1780 {
		t.Fatalf("wanted: BMR 1780\ngot: %f", e.BMR)
	}
	if math.Abs(e.TDEE-2759) > 1e-9 {
		t.Fatalf("wanted: TDEE 2759\ngot: %f", e.TDEE)
	}

	f, _ := health.BMR(health.Female, 30, 60, 165)
	if f != 1320.25 {
		t.Fatalf("wanted: 1320.25\ngot: %f", f)
	}

	if _, err := health.TDEE(health.Male, 30, 80, 180, "couch"); !errors.Is(err, health.ErrUnknownActivity) {
		t.Fatalf("wanted: ErrUnknownActivity\ngot: %v", err)
	}
}

func TestDueDate(t *testing.T) {
	lmp := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	on := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)

	p, err := health.DueDate(lmp, on, 28)
	if err != nil {
		t.Fatalf("wanted: nil\ngot: %v", err)
	}
	if want := time.Date(2026, 10, 8, 0, 0, 0, 0, time.UTC); !p.DueDate.Equal(want) {
		t.Fatalf("wanted: %s\ngot: %s", want, p.DueDate)
	}
	if p.Weeks != 10 || p.Days != 0 || p.Trimester != 1 {
		t.Fatalf("wanted: 10w0d, first trimester\ngot: %+v", p)
	}

	long, _ := health.DueDate(lmp, on, 32)
	if !long.DueDate.Equal(p.DueDate.AddDate(0, 0, 4)) {
		t.Fatalf("wanted: due date shifted by 4 days\ngot: %s", long.DueDate)
	}

	if _, err := health.DueDate(on, lmp, 28); !errors.Is(err, health.ErrFutureLMP) {
		t.Fatalf("wanted: ErrFutureLMP\ngot: %v", err)
	}
}

func TestBodyMetrics(t *testing.T) {
	iw, err := health.IdealWeight(health.Male, 182.88)
	if err != nil {
		t.Fatalf("IdealWeight: %v", err)
	}
	if math.Abs(iw.Devine-77.6) > 1e-6 {
		t.Fatalf("wanted: Devine 77.6\ngot: %f", iw.Devine)
	}

	bf, err := health.BodyFat(health.Male, 178, 38, 85, 0)
	if err != nil {
		t.Fatalf("BodyFat: %v", err)
	}
	if bf < 15 || bf > 20 {
		t.Fatalf("wanted: a plausible 15-20%%\ngot: %f", bf)
	}

	if _, err := health.ParseSex("x"); !errors.Is(err, health.ErrUnknownSex) {
		t.Fatalf("wanted: ErrUnknownSex\ngot: %v", err)
	}
}
