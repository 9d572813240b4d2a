package scoreid

import "testing"

func TestGenerate(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		composer string
		expected string
	}{
		{"empty", "", "", ""},
		{"title only", "Für Elise", "", "für elise"},
		{"legacy delimiter", "Sonata Op. 1", "Beethoven", "sonata op. 1-beethoven"},
		{"hyphen in title forces pipes", "Sonatina Op. 36 No. 1 - Movement 1", "Clementi", "sonatina op. 36 no. 1 - movement 1||clementi"},
		{"hyphen in composer forces pipes", "Danse Macabre", "Saint-Saëns", "danse macabre||saint-saëns"},
		{"composer periods stripped", "Invention No. 1", "J.S. Bach", "invention no. 1-js bach"},
		{"whitespace only composer", "Etude", "   ", "etude"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Generate(tt.title, tt.composer)
			if got != tt.expected {
				t.Errorf("Generate(%q, %q) = %q, want %q", tt.title, tt.composer, got, tt.expected)
			}
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name         string
		id           string
		wantTitle    string
		wantComposer string
	}{
		{"empty", "", "", ""},
		{"no delimiter", "für elise", "für elise", ""},
		{"legacy", "moonlight sonata-beethoven", "moonlight sonata", "beethoven"},
		{"pipes", "sonatina op. 36 no. 1 - movement 1||clementi", "sonatina op. 36 no. 1 - movement 1", "clementi"},
		{"pipes with hyphenated composer", "danse macabre||saint-saëns", "danse macabre", "saint-saëns"},
		{"legacy splits on last hyphen", "suite b-minor-bach", "suite b-minor", "bach"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, composer := Parse(tt.id)
			if title != tt.wantTitle || composer != tt.wantComposer {
				t.Errorf("Parse(%q) = (%q, %q), want (%q, %q)",
					tt.id, title, composer, tt.wantTitle, tt.wantComposer)
			}
		})
	}
}

// Ids produced by Generate must parse back to the normalized input pair.
func TestGenerateParseRoundTrip(t *testing.T) {
	pairs := []struct{ title, composer string }{
		{"Moonlight Sonata", "Beethoven"},
		{"Sonata Op. 27 No. 2", "L. van Beethoven"},
		{"Sonatina Op. 36 No. 1 - Movement 1", "Clementi"},
		{"Danse Macabre", "Saint-Saëns"},
		{"Für Elise", ""},
	}

	for _, p := range pairs {
		id := Generate(p.title, p.composer)
		title, composer := Parse(id)
		if regen := Generate(title, composer); regen != id {
			t.Errorf("round trip drifted for (%q, %q): %q -> (%q, %q) -> %q",
				p.title, p.composer, id, title, composer, regen)
		}
	}
}

func TestSameScore(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		expected bool
	}{
		{"identical", "für elise-beethoven", "für elise-beethoven", true},
		{"case and space", " Für Elise-Beethoven ", "für elise-beethoven", true},
		{"pipe vs legacy", "piece||composer", "piece-composer", true},
		{"reversed halves", "beethoven||sonata", "sonata||beethoven", true},
		{"reversed legacy pair", "beethoven - sonata", "sonata - beethoven", true},
		{"different works", "für elise-beethoven", "nocturne-chopin", false},
		{"same title different composer", "sonata-beethoven", "sonata-mozart", false},
		{"bare titles differ", "für elise", "fur elise", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SameScore(tt.a, tt.b); got != tt.expected {
				t.Errorf("SameScore(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.expected)
			}
		})
	}
}

func TestNormalizeExisting(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		expected string
	}{
		{"empty", "", ""},
		{"bare title passes through", "Für Elise", "für elise"},
		{"legacy stays legacy", "Moonlight Sonata-Beethoven", "moonlight sonata-beethoven"},
		{"pipe id regenerated", "Sonata - Mvt 1||Clementi", "sonata - mvt 1||clementi"},
		{"reversed short head", "bach-goldberg variations aria", "goldberg variations aria-bach"},
		{"no recognizable structure", "one-two-three-four words everywhere-more words here", "one-two-three-four words everywhere-more words here"},
		{"trailing hyphen passes through", "sonata-", "sonata-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeExisting(tt.id); got != tt.expected {
				t.Errorf("NormalizeExisting(%q) = %q, want %q", tt.id, got, tt.expected)
			}
		})
	}
}
