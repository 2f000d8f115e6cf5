package numeric

import "testing"

func TestNearlyEqual(t *testing.T) {
	for _, tc := range []struct {
		name string
		a, b float64
		eps  float64
		want bool
	}{
		{name: "exact", a: 1, b: 1, eps: 1e-15, want: true},
		{name: "within absolute eps", a: 0, b: 1e-13, eps: 1e-12, want: true},
		{name: "within relative eps", a: 1e9, b: 1e9 + 1, eps: 1e-6, want: true},
		{name: "outside eps", a: 1, b: 1.1, eps: 1e-6, want: false},
		{name: "default eps", a: 1, b: 1 + 1e-13, eps: 0, want: true},
		{name: "both zero", a: 0, b: 0, eps: 1e-15, want: true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := NearlyEqual(tc.a, tc.b, tc.eps); got != tc.want {
				t.Fatalf("NearlyEqual(%v, %v, %v) = %v, want %v", tc.a, tc.b, tc.eps, got, tc.want)
			}
		})
	}
}
