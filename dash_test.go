package easel

import (
	"testing"
)

func TestSetDash(t *testing.T) {
	registerMock(t, "test-dash")

	tests := []struct {
		name    string
		lengths []float64
		want    []float64
	}{
		{
			name:    "simple dash-gap pattern",
			lengths: []float64{5, 3},
			want:    []float64{5, 3},
		},
		{
			name:    "single value",
			lengths: []float64{5},
			want:    []float64{5},
		},
		{
			name:    "complex pattern",
			lengths: []float64{10, 5, 2, 5},
			want:    []float64{10, 5, 2, 5},
		},
		{
			name:    "empty input clears",
			lengths: []float64{},
			want:    nil,
		},
		{
			name:    "nil input clears",
			lengths: nil,
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession()
			d, _ := New("test-dash", "", 50, 50, WithSession(s))

			d.SetDash(4, 2) // existing pattern must be replaced
			d.SetDash(tt.lengths...)

			if tt.want == nil {
				if d.dashPattern != nil {
					t.Errorf("dashPattern = %v, want nil", d.dashPattern)
				}
				return
			}
			if len(d.dashPattern) != len(tt.want) {
				t.Fatalf("dashPattern = %v, want %v", d.dashPattern, tt.want)
			}
			for i, v := range d.dashPattern {
				if v != tt.want[i] {
					t.Errorf("dashPattern[%d] = %v, want %v", i, v, tt.want[i])
				}
			}
		})
	}
}

func TestSetDashCopiesInput(t *testing.T) {
	registerMock(t, "test-dash-copy")
	s := NewSession()
	d, _ := New("test-dash-copy", "", 50, 50, WithSession(s))

	lengths := []float64{4, 2}
	d.SetDash(lengths...)
	lengths[0] = 99

	if d.dashPattern[0] != 4 {
		t.Errorf("dashPattern[0] = %v, want 4", d.dashPattern[0])
	}
}

func TestSetDashOffset(t *testing.T) {
	registerMock(t, "test-dash-offset")
	s := NewSession()
	d, _ := New("test-dash-offset", "", 50, 50, WithSession(s))

	d.SetDashOffset(2.5)
	if d.dashOffset != 2.5 {
		t.Errorf("dashOffset = %v, want 2.5", d.dashOffset)
	}

	// Replacing the pattern keeps the offset
	d.SetDash(5, 3)
	if d.dashOffset != 2.5 {
		t.Errorf("dashOffset after SetDash = %v, want 2.5", d.dashOffset)
	}
}

func TestClearDash(t *testing.T) {
	registerMock(t, "test-dash-clear")
	s := NewSession()
	d, _ := New("test-dash-clear", "", 50, 50, WithSession(s))

	d.SetDash(5, 3)
	d.SetDashOffset(2.5)
	d.ClearDash()

	if d.dashPattern != nil {
		t.Errorf("dashPattern = %v, want nil", d.dashPattern)
	}
	if d.dashOffset != 0 {
		t.Errorf("dashOffset = %v, want 0", d.dashOffset)
	}
}

func TestDashReachesStroke(t *testing.T) {
	m := registerMock(t, "test-dash-stroke")
	s := NewSession()
	d, _ := New("test-dash-stroke", "", 100, 100, WithSession(s))

	d.SetDash(4, 2)
	d.SetDashOffset(1)
	d.Scale(2, 2)
	d.DrawLine(0, 0, 10, 0)
	if err := d.Stroke(); err != nil {
		t.Fatalf("Stroke failed: %v", err)
	}

	got := m.lastStroke
	if len(got.DashPattern) != 2 || got.DashPattern[0] != 8 || got.DashPattern[1] != 4 {
		t.Errorf("DashPattern = %v, want [8 4]", got.DashPattern)
	}
	if got.DashOffset != 2 {
		t.Errorf("DashOffset = %v, want 2", got.DashOffset)
	}

	// The emitted stroke owns its pattern
	d.SetDash(9, 9)
	if m.lastStroke.DashPattern[0] != 8 {
		t.Errorf("emitted DashPattern[0] = %v, want 8", m.lastStroke.DashPattern[0])
	}
}
