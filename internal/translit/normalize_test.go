package translit

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercase", "AS-DU-DI", "as-du-di"},
		{"uru determinative", "{URU}as-du-di", "as-du-di"},
		{"kur determinative", "{KUR}a-sa-ni-u₂", "a-sa-ni-u"},
		{"ki determinative suffix", "{iri}a-šar-mu-um{ki}", "{iri}a-šar-mu-um"},
		{"subscript digits", "aš₂-du-du", "aš-du-du"},
		{"dot separator", "KA.DINGIR", "ka-dingir"},
		{"parentheses", "ba-bi(-lu)", "ba-bi-lu"},
		{"eng to g", "ŋeš", "geš"},
		{"plain", "bar-sip", "bar-sip"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"{URU}as-du-di",
		"{KUR}a-sa-ni-u₂",
		"KA.DINGIR.RA{KI}",
		"ba-bi(-lu)",
		"ŋa₂-la",
		"a-b",
	}

	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

func TestNormalizeCaseInsensitive(t *testing.T) {
	pairs := [][2]string{
		{"a-b", "A-B"},
		{"as-du-di", "AS-DU-DI"},
		{"{URU}bar-sip", "{uru}BAR-SIP"},
	}

	for _, p := range pairs {
		if Normalize(p[0]) != Normalize(p[1]) {
			t.Errorf("Normalize(%q) != Normalize(%q)", p[0], p[1])
		}
	}
}

func TestNormalizeAll(t *testing.T) {
	got := NormalizeAll([]string{"A-B", "{URU}c.d"})
	want := []string{"a-b", "c-d"}
	if len(got) != len(want) {
		t.Fatalf("NormalizeAll returned %d items, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("NormalizeAll[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
