package names

import "testing"

func TestPerson(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{in: "FRANCESCO DI FULVIO", want: "Francesco Di Fulvio"},
		{in: "Dušan Mandić", want: "Dusan Mandic"},
		{in: "Sandro Šukno", want: "Sandro Sukno"},
		{in: "o’neill", want: "O'Neill"},
		{in: "mcdonald", want: "McDonald"},
		{in: "A. J. Smith Jr.", want: "A J Smith"},
		{in: "John Doe III", want: "John Doe"},
		{in: "Søren Ødegaard", want: "Soren Odegaard"},
		{in: "  Filip   Filipović ", want: "Filip Filipovic"},
		{in: "", want: ""},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.in, func(t *testing.T) {
			t.Parallel()
			if got := Person(tc.in); got != tc.want {
				t.Fatalf("Person(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestFullName(t *testing.T) {
	t.Parallel()

	if got := FullName("aleksandar", "IVOVIĆ"); got != "Aleksandar Ivovic" {
		t.Fatalf("unexpected full name %q", got)
	}
	if got := FullName("", "Vrlic"); got != "Vrlic" {
		t.Fatalf("unexpected surname-only full name %q", got)
	}
}

func TestSameTeam(t *testing.T) {
	t.Parallel()

	if !SameTeam("Ferencváros  Budapest", "FERENCVAROS budapest") {
		t.Fatalf("expected folded names to match")
	}
	if SameTeam("Pro Recco", "Brescia") {
		t.Fatalf("expected different teams not to match")
	}
}
