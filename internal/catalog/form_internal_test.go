package catalog

import (
	"errors"
	"math"
	"testing"

	"calckit/internal/domain"
)

func TestBlame(t *testing.T) {
	errFirst := errors.New("first")
	errSecond := errors.New("second")

	t.Run("should blame the first listed sentinel an error matches", func(t *testing.T) {
		for i := 0; i < 50; i++ {
			f := read(domain.Inputs{})
			f.Blame(errors.Join(errSecond, errFirst), []blame{{errFirst, "a"}, {errSecond, "b"}})
			var ve *domain.ValidationError
			if !errors.As(f.Err(), &ve) || ve.Field != "a" {
				t.Fatalf("wanted field: %q\ngot: %v", "a", f.Err())
			}
		}
	})

	t.Run("should blame the calculator when no sentinel matches", func(t *testing.T) {
		f := read(domain.Inputs{})
		if f.Blame(errors.New("other"), []blame{{errFirst, "a"}}) {
			t.Fatalf("wanted: false\ngot: true")
		}
		var ve *domain.ValidationError
		if !errors.As(f.Err(), &ve) || ve.Field != "" {
			t.Fatalf("wanted field: %q\ngot: %v", "", f.Err())
		}
	})

	t.Run("should pass a nil error", func(t *testing.T) {
		f := read(domain.Inputs{})
		if !f.Blame(nil, []blame{{errFirst, "a"}}) || f.Err() != nil {
			t.Fatalf("wanted: true with no error\ngot: %v", f.Err())
		}
	})
}

func TestFormatOverflow(t *testing.T) {
	inf := math.Inf(1)
	for _, s := range []string{num(inf), money(-inf), fixed(inf, 2), pct(inf), coord(inf - inf)} {
		if s != overflow {
			t.Fatalf("wanted: %q\ngot: %q", overflow, s)
		}
	}
}
