package veecad

import "testing"

func TestInferSize(t *testing.T) {
	tests := []struct {
		name      string
		want      Size
		wantLabel string
	}{
		{"CAPR10_5", Size{DiameterMM: 10, PitchMM: 5, Label: "D=10mm, P=5mm"}, "D=10mm, P=5mm"},
		{"capr2.5_5", Size{DiameterMM: 2.5, PitchMM: 5, Label: "D=2.5mm, P=5mm"}, "D=2.5mm, P=5mm"},
		{"CAPR15_7.5", Size{DiameterMM: 15, PitchMM: 7.5, Label: "D=15mm, P=7.5mm"}, "D=15mm, P=7.5mm"},
		{"BOX10_5", Size{BodyLabel: "BOX10_5"}, ""},
		{"box_small", Size{BodyLabel: "BOX_SMALL"}, ""},
		{"CAPR10", Size{}, ""},
		{"DIP8", Size{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InferSize(tt.name)
			if got != tt.want {
				t.Errorf("InferSize(%q) = %+v, want %+v", tt.name, got, tt.want)
			}
			if got.String() != tt.wantLabel {
				t.Errorf("String() = %q, want %q", got.String(), tt.wantLabel)
			}
		})
	}
}

func TestSizeStringComposed(t *testing.T) {
	s := Size{PitchMM: 2.54}
	if s.String() != "P=2.54mm" {
		t.Errorf("unexpected label %q", s.String())
	}
	if (Size{}).IsZero() != true {
		t.Error("zero size should report IsZero")
	}
}

func TestExpandHome(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	if got := ExpandHome("~/lib"); got != "/home/tester/lib" {
		t.Errorf("unexpected expansion %q", got)
	}
	if got := ExpandHome("/abs/lib"); got != "/abs/lib" {
		t.Errorf("absolute path changed: %q", got)
	}
}
