package venues

import "testing"

func TestGenerateSlug(t *testing.T) {
	cases := []struct {
		name, want string
	}{
		{"Dillon", "dillon"},
		{"Café Rósenberg", "cafe-rosenberg"},
		{"Þjóðleikhúsið", "thjodleikhusid"},
		{"Græni Hatturinn!", "graeni-hatturinn"},
		{"  -- Weird   Name --  ", "weird-name"},
		{"", ""},
	}
	for _, c := range cases {
		if got := GenerateSlug(c.name); got != c.want {
			t.Errorf("GenerateSlug(%q) = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestIsValidSlug(t *testing.T) {
	valid := []string{"dillon", "abc", "venue-123", "a1-b2-c3"}
	for _, s := range valid {
		if !IsValidSlug(s) {
			t.Errorf("IsValidSlug(%q) should be true", s)
		}
	}

	invalid := []string{"", "ab", "-dillon", "dillon-", "Dillon", "venue_1",
		"waaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaay-too-long"}
	for _, s := range invalid {
		if IsValidSlug(s) {
			t.Errorf("IsValidSlug(%q) should be false", s)
		}
	}
}
