package waypath

import (
	"math"
	"testing"

	"path-tower-defense/internal/config"
)

type constField float64

func (c constField) Noise2D(x, y float64) float64 { return float64(c) }

type lineField struct{ slope float64 }

func (l lineField) Noise2D(x, y float64) float64 { return l.slope * x }

func TestGenerateLengthAndBounds(t *testing.T) {
	cfg := config.Default().Path
	const tol = 1e-9

	for _, seeds := range [][2]int64{{374, 4069}, {1, 2}, {-7, 99}, {123456, 654321}} {
		fx, fy := NewFields(cfg, seeds[0], seeds[1])
		p := Generate(cfg, fx, fy)
		if p.Len() != cfg.Length {
			t.Fatalf("seeds %v: Len() = %d, want %d", seeds, p.Len(), cfg.Length)
		}
		var maxX, maxY float64
		for i, pt := range p.Points() {
			if math.Abs(pt.X) > cfg.HalfWidth+tol {
				t.Fatalf("seeds %v: point %d X = %v outside ±%v", seeds, i, pt.X, cfg.HalfWidth)
			}
			if math.Abs(pt.Y) > cfg.HalfHeight+tol {
				t.Fatalf("seeds %v: point %d Y = %v outside ±%v", seeds, i, pt.Y, cfg.HalfHeight)
			}
			maxX = math.Max(maxX, math.Abs(pt.X))
			maxY = math.Max(maxY, math.Abs(pt.Y))
		}
		if math.Abs(maxX-cfg.HalfWidth) > 1e-6 || math.Abs(maxY-cfg.HalfHeight) > 1e-6 {
			t.Fatalf("seeds %v: extent = (%v, %v), want (%v, %v)", seeds, maxX, maxY, cfg.HalfWidth, cfg.HalfHeight)
		}
	}
}

func TestGenerateIsReproducible(t *testing.T) {
	cfg := config.Default().Path
	ax, ay := NewFields(cfg, 374, 4069)
	bx, by := NewFields(cfg, 374, 4069)
	a := Generate(cfg, ax, ay).Points()
	b := Generate(cfg, bx, by).Points()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("point %d differs: %v vs %v", i, a[i], b[i])
		}
	}

	cx, cy := NewFields(cfg, 375, 4070)
	c := Generate(cfg, cx, cy).Points()
	same := true
	for i := range a {
		if a[i] != c[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatalf("different seeds produced identical paths")
	}
}

func TestGenerateZeroMagnitudeAxis(t *testing.T) {
	cfg := config.Default().Path
	p := Generate(cfg, constField(0), lineField{slope: 3})
	if p.Len() != cfg.Length {
		t.Fatalf("Len() = %d, want %d", p.Len(), cfg.Length)
	}
	for i, pt := range p.Points() {
		if pt.X != 0 || math.IsNaN(pt.X) {
			t.Fatalf("point %d X = %v, want 0", i, pt.X)
		}
		if math.IsNaN(pt.Y) || math.Abs(pt.Y) > cfg.HalfHeight+1e-9 {
			t.Fatalf("point %d Y = %v out of range", i, pt.Y)
		}
	}
	last := p.At(p.Len() - 1)
	if math.Abs(last.Y-cfg.HalfHeight) > 1e-9 {
		t.Fatalf("last Y = %v, want %v (largest sample stretched to the edge)", last.Y, cfg.HalfHeight)
	}
}

func TestGenerateConstantFieldFillsEdge(t *testing.T) {
	cfg := config.Default().Path
	p := Generate(cfg, constField(-0.25), constField(0.5))
	for i, pt := range p.Points() {
		if math.Abs(pt.X+cfg.HalfWidth) > 1e-9 || math.Abs(pt.Y-cfg.HalfHeight) > 1e-9 {
			t.Fatalf("point %d = %v, want (%v, %v)", i, pt, -cfg.HalfWidth, cfg.HalfHeight)
		}
	}
}

func TestGenerateDegenerateLengths(t *testing.T) {
	cfg := config.Default().Path

	cfg.Length = 0
	if p := Generate(cfg, constField(1), constField(1)); p.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", p.Len())
	}
	if first := (Path{}).First(); first.X != 0 || first.Y != 0 {
		t.Fatalf("empty First() = %v, want origin", first)
	}

	cfg.Length = 1
	p := Generate(cfg, constField(0.3), constField(0))
	if p.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", p.Len())
	}
	if got := p.First(); math.Abs(got.X-cfg.HalfWidth) > 1e-9 || got.Y != 0 {
		t.Fatalf("First() = %v", got)
	}
}

func TestPointsReturnsCopy(t *testing.T) {
	cfg := config.Default().Path
	p := Generate(cfg, lineField{slope: 1}, lineField{slope: -1})
	pts := p.Points()
	pts[0].X = 12345
	if p.At(0).X == 12345 {
		t.Fatalf("mutating Points() changed the path")
	}
}
