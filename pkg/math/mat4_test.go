package math

import (
	"testing"
)

func TestIdentityTransform(t *testing.T) {
	m := Identity()
	p := Vec3{1, 2, 3}
	if got := m.TransformPoint(p); got != p {
		t.Errorf("Identity().TransformPoint(%v) = %v, want %v", p, got, p)
	}
}

func TestMulIdentity(t *testing.T) {
	m := RotateY(1.3)
	got := m.Mul(Identity())
	if got != m {
		t.Errorf("m * I = %v, want %v", got, m)
	}
}

func TestRotateYQuarterTurn(t *testing.T) {
	const halfPi = 1.5707963
	m := RotateY(halfPi)
	p := m.TransformPoint(Vec3{1, 0, 0})
	if absf(p.X) > 1e-5 || absf(p.Z+1) > 1e-5 {
		t.Errorf("RotateY(π/2) of +X = %v, want ~(0,0,-1)", p)
	}
}

func TestLookAtOrigin(t *testing.T) {
	view := LookAt(Vec3{0, 0, 5}, Vec3{}, Vec3{0, 1, 0})
	p := view.TransformPoint(Vec3{})
	// The origin should land on the -Z axis, 5 units away.
	if absf(p.X) > 1e-5 || absf(p.Y) > 1e-5 || absf(p.Z+5) > 1e-5 {
		t.Errorf("LookAt view of origin = %v, want (0,0,-5)", p)
	}
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
