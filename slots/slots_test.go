package slots

import "testing"

func TestParse(t *testing.T) {
	for _, valid := range []string{"day", "night", "full_day"} {
		if _, ok := Parse(valid); !ok {
			t.Errorf("Parse(%q) should succeed", valid)
		}
	}
	for _, invalid := range []string{"", "DAY", "fullday", "morning"} {
		if _, ok := Parse(invalid); ok {
			t.Errorf("Parse(%q) should fail", invalid)
		}
	}
}

func TestConflicts(t *testing.T) {
	cases := []struct {
		requested, existing Slot
		want                bool
	}{
		{Day, Day, true},
		{Night, Night, true},
		{FullDay, FullDay, true},
		{Day, Night, false},
		{Night, Day, false},
		{Day, FullDay, true},
		{Night, FullDay, true},
		{FullDay, Day, true},
		{FullDay, Night, true},
	}
	for _, c := range cases {
		if got := Conflicts(c.requested, c.existing); got != c.want {
			t.Errorf("Conflicts(%s, %s) = %v, want %v", c.requested, c.existing, got, c.want)
		}
	}
}
