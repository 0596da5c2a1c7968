package textnorm

import "testing"

func TestFold(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "case and extra whitespace",
			in:   "Uznanie  i Docenianie",
			want: "uznanie i docenianie",
		},
		{
			name: "polish diacritics",
			in:   "Wynagrodzenie i świadczenia",
			want: "wynagrodzenie i swiadczenia",
		},
		{
			name: "stroked l",
			in:   "Współpraca w zespole",
			want: "wspolpraca w zespole",
		},
		{
			name: "leading and trailing space",
			in:   "  Komunikacja ",
			want: "komunikacja",
		},
		{
			name: "empty",
			in:   "",
			want: "",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if got := Fold(tc.in); got != tc.want {
				t.Fatalf("Fold(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
