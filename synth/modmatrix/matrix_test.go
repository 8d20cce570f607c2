package modmatrix

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-synth/synth/module"
)

const (
	srcLFO SourceID = iota
	srcEG
)

const (
	dstPitch DestinationID = iota
	dstAmp
)

type rig struct {
	m      *Matrix
	lfo    module.ModPort
	eg     module.ModPort
	target module.ModPort
}

func newRig(t *testing.T) *rig {
	t.Helper()
	r := &rig{m: New()}
	if err := r.m.AddSource(srcLFO, &r.lfo, module.OutNormal); err != nil {
		t.Fatal(err)
	}

	if err := r.m.AddSource(srcEG, &r.eg, module.OutNormal); err != nil {
		t.Fatal(err)
	}

	if err := r.m.AddDestination(dstPitch, &r.target, module.InPitchMod, DestinationOptions{}); err != nil {
		t.Fatal(err)
	}

	if err := r.m.AddDestination(dstAmp, &r.target, module.InMaxDownAmpMod, DestinationOptions{Default: 1}); err != nil {
		t.Fatal(err)
	}

	return r
}

func TestAdditivity(t *testing.T) {
	tests := []struct {
		name           string
		v1, v2, i1, i2 float64
		aggregate      float64
	}{
		{"unit", 0.5, -0.25, 1, 1, 1},
		{"scaled", 0.8, 0.3, 0.5, 0.25, 2},
		{"negative intensity", -1, 1, -0.5, 0.75, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRig(t)
			r.lfo[module.OutNormal] = tt.v1
			r.eg[module.OutNormal] = tt.v2
			_ = r.m.SetRoute(srcLFO, dstPitch, true, tt.i1)
			_ = r.m.SetRoute(srcEG, dstPitch, true, tt.i2)
			_ = r.m.SetAggregateIntensity(dstPitch, tt.aggregate)
			r.m.Run()

			want := tt.aggregate * (tt.i1*tt.v1 + tt.i2*tt.v2)
			if got := r.target[module.InPitchMod]; math.Abs(got-want) > 1e-12 {
				t.Fatalf("got %g want %g", got, want)
			}
		})
	}
}

func TestAdditivityIndependentOfRegistrationOrder(t *testing.T) {
	var a, b, target1, target2 module.ModPort
	a[0], b[0] = 0.3, 0.9

	m1 := New()
	_ = m1.AddSource(0, &a, 0)
	_ = m1.AddSource(1, &b, 0)
	_ = m1.AddDestination(0, &target1, 0, DestinationOptions{})

	m2 := New()
	_ = m2.AddDestination(0, &target2, 0, DestinationOptions{})
	_ = m2.AddSource(1, &b, 0)
	_ = m2.AddSource(0, &a, 0)

	for _, m := range []*Matrix{m1, m2} {
		_ = m.SetRoute(1, 0, true, 0.4)
		_ = m.SetRoute(0, 0, true, 0.7)
		m.Run()
	}

	if target1[0] != target2[0] {
		t.Fatalf("order dependent: %g vs %g", target1[0], target2[0])
	}
}

func TestSourceIntensity(t *testing.T) {
	r := newRig(t)
	r.lfo[module.OutNormal] = 1
	_ = r.m.SetSourceIntensity(srcLFO, 0.5)
	_ = r.m.SetRoute(srcLFO, dstPitch, true, 0.5)
	r.m.Run()
	if got := r.target[module.InPitchMod]; got != 0.25 {
		t.Fatalf("got %g want 0.25", got)
	}
}

func TestUndrivenDestinationKeepsDefault(t *testing.T) {
	r := newRig(t)
	if r.target[module.InMaxDownAmpMod] != 1 {
		t.Fatalf("default not written: %g", r.target[module.InMaxDownAmpMod])
	}

	r.lfo[module.OutNormal] = 0.9
	r.m.Run()
	if r.target[module.InMaxDownAmpMod] != 1 {
		t.Fatalf("undriven destination changed to %g", r.target[module.InMaxDownAmpMod])
	}

	_ = r.m.SetRoute(srcLFO, dstAmp, false, 1)
	r.m.Run()
	if r.target[module.InMaxDownAmpMod] != 1 {
		t.Fatal("disabled route drove destination")
	}
}

func TestHardwireIndependence(t *testing.T) {
	r := newRig(t)
	r.lfo[module.OutNormal] = 0.5
	_ = r.m.SetHardwire(srcLFO, dstPitch, 2)

	_ = r.m.SetRoute(srcLFO, dstPitch, false, 1)
	r.m.Run()
	if got := r.target[module.InPitchMod]; got != 1 {
		t.Fatalf("hardwire with route disabled=%g want 1", got)
	}

	_ = r.m.SetRoute(srcLFO, dstPitch, true, 1)
	r.m.Run()
	if got := r.target[module.InPitchMod]; got != 1.5 {
		t.Fatalf("hardwire with route enabled=%g want 1.5", got)
	}

	_ = r.m.SetAggregateIntensity(dstPitch, 0)
	r.m.Run()
	if got := r.target[module.InPitchMod]; got != 1 {
		t.Fatalf("aggregate scaled the hardwire: %g", got)
	}

	r.m.ClearRoutes()
	r.m.Run()
	if got := r.target[module.InPitchMod]; got != 1 {
		t.Fatalf("ClearRoutes removed hardwire: %g", got)
	}

	_ = r.m.ClearHardwire(srcLFO, dstPitch)
	r.target[module.InPitchMod] = -3
	r.m.Run()
	if got := r.target[module.InPitchMod]; got != -3 {
		t.Fatalf("cleared hardwire still drives: %g", got)
	}
}

func TestRunHighPriority(t *testing.T) {
	var src, dst module.ModPort
	m := New()
	_ = m.AddSource(0, &src, 0)
	_ = m.AddDestination(0, &dst, 0, DestinationOptions{HighPriority: true})
	_ = m.AddDestination(1, &dst, 1, DestinationOptions{})
	_ = m.SetRoute(0, 0, true, 1)
	_ = m.SetRoute(0, 1, true, 1)
	src[0] = 0.6

	m.RunHighPriority()
	if dst[0] != 0.6 || dst[1] != 0 {
		t.Fatalf("high priority run wrote %v", dst[:2])
	}

	m.Run()
	if dst[1] != 0.6 {
		t.Fatalf("normal run missed destination: %g", dst[1])
	}
}

func TestRestoreDefaults(t *testing.T) {
	r := newRig(t)
	r.target[module.InMaxDownAmpMod] = 0.1
	r.m.RestoreDefaults()
	if r.target[module.InMaxDownAmpMod] != 1 {
		t.Fatal("default not restored")
	}
}

func TestRoutes(t *testing.T) {
	r := newRig(t)
	_ = r.m.SetRoute(srcEG, dstAmp, true, 0.3)
	_ = r.m.SetHardwire(srcLFO, dstPitch, 1)
	routes := r.m.Routes(nil)
	if len(routes) != 1 {
		t.Fatalf("routes=%v", routes)
	}

	if routes[0] != (Route{Source: srcEG, Destination: dstAmp, Intensity: 0.3}) {
		t.Fatalf("route=%+v", routes[0])
	}

	if !r.m.RouteEnabled(srcEG, dstAmp) || r.m.RouteEnabled(srcLFO, dstPitch) {
		t.Fatal("RouteEnabled mismatch")
	}

	_ = r.m.EnableRoute(srcEG, dstAmp, false)
	if r.m.RouteEnabled(srcEG, dstAmp) {
		t.Fatal("EnableRoute(false) ignored")
	}
}

func TestErrors(t *testing.T) {
	m := New()
	var p module.ModPort
	if err := m.AddSource(MaxSources, &p, 0); !errors.Is(err, ErrInvalidSource) {
		t.Fatalf("err=%v", err)
	}

	if err := m.AddDestination(-1, &p, 0, DestinationOptions{}); !errors.Is(err, ErrInvalidDestination) {
		t.Fatalf("err=%v", err)
	}

	if err := m.AddSource(0, nil, 0); !errors.Is(err, ErrInvalidBinding) {
		t.Fatalf("err=%v", err)
	}

	if err := m.AddDestination(0, &p, module.NumModChannels, DestinationOptions{}); !errors.Is(err, ErrInvalidBinding) {
		t.Fatalf("err=%v", err)
	}

	if err := m.SetRoute(0, MaxDestinations, true, 1); !errors.Is(err, ErrInvalidDestination) {
		t.Fatalf("err=%v", err)
	}

	if err := m.SetHardwire(-2, 0, 1); !errors.Is(err, ErrInvalidSource) {
		t.Fatalf("err=%v", err)
	}
}
