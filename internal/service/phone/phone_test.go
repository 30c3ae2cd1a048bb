package phone

import (
	"errors"
	"fmt"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want Number
	}{
		{"09171234567", "9171234567"},
		{"639171234567", "9171234567"},
		{"9171234567", "9171234567"},
		{"+63 917 123 4567", "9171234567"},
		{"0917-123-4567", "9171234567"},
		{"(0917) 123.4567", "9171234567"},
	}
	for _, tt := range tests {
		got, err := Normalize(tt.in)
		if err != nil {
			t.Errorf("Normalize(%q) returned error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalize_SameSubscriber(t *testing.T) {
	forms := []string{"09451234567", "639451234567", "9451234567"}
	var first Number
	for i, f := range forms {
		n, err := Normalize(f)
		if err != nil {
			t.Fatalf("Normalize(%q): %v", f, err)
		}
		if i == 0 {
			first = n
		} else if n != first {
			t.Errorf("Normalize(%q) = %q, want %q", f, n, first)
		}
	}
}

func TestInvalidShapes(t *testing.T) {
	invalid := []string{
		"",
		"abc",
		"0917123456",    // 10 цифр, но начинается с 0
		"091712345678",  // 12 цифр с 09
		"08171234567",   // 11 цифр не с 09
		"63917123456",   // 11 цифр с 639
		"6391712345678", // 13 цифр
		"8171234567",    // 10 цифр не с 9
		"12345",
	}
	for _, in := range invalid {
		if Validate(in) {
			t.Errorf("Validate(%q) = true, want false", in)
		}
		if _, err := Normalize(in); !errors.Is(err, ErrInvalidPhone) {
			t.Errorf("Normalize(%q) error = %v, want ErrInvalidPhone", in, err)
		}
		if c, ok := Classify(in); ok {
			t.Errorf("Classify(%q) = %q, want absent", in, c)
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		in   string
		want Carrier
	}{
		{"09171234567", Globe},
		{"09070000000", Smart},
		{"639181234567", Smart},
		{"9221234567", Sun},
		{"09321234567", Sun},
		{"09971234567", Globe},
		{"09931234567", Smart},
		{"09741234567", Sun},
		// Префиксы вне таблиц уходят в Globe
		{"09111234567", Globe},
		{"09001234567", Globe},
	}
	for _, tt := range tests {
		got, ok := Classify(tt.in)
		if !ok {
			t.Errorf("Classify(%q) returned no carrier", tt.in)
			continue
		}
		if got != tt.want {
			t.Errorf("Classify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestClassify_TotalOverValidShapes(t *testing.T) {
	for prefix := 900; prefix <= 999; prefix++ {
		raw := fmt.Sprintf("0%d1234567", prefix)
		c, ok := Classify(raw)
		if !ok {
			t.Fatalf("Classify(%q) returned no carrier", raw)
		}
		if c != Smart && c != Globe && c != Sun {
			t.Fatalf("Classify(%q) = %q", raw, c)
		}
	}
}

func TestPrefixTablesDisjoint(t *testing.T) {
	for p := range smartPrefixes {
		if _, ok := globePrefixes[p]; ok {
			t.Errorf("prefix %s in smart and globe", p)
		}
		if _, ok := sunPrefixes[p]; ok {
			t.Errorf("prefix %s in smart and sun", p)
		}
	}
	for p := range globePrefixes {
		if _, ok := sunPrefixes[p]; ok {
			t.Errorf("prefix %s in globe and sun", p)
		}
	}
}

func TestKnownPrefix(t *testing.T) {
	if !KnownPrefix("09171234567") {
		t.Error("0917 should be known")
	}
	if KnownPrefix("09111234567") {
		t.Error("0911 should not be known")
	}
}

func TestResolve(t *testing.T) {
	n := Number("9171234567")
	tests := []struct {
		carrier   Carrier
		primary   string
		alternate string
	}{
		{Smart, "9171234567@sms.smart.com.ph", "9171234567@txt.smart.com.ph"},
		{Globe, "9171234567@sms.globe.com.ph", "9171234567@myglobe.sms.ph"},
		{Sun, "9171234567@sun.com.ph", ""},
	}
	for _, tt := range tests {
		r, err := Resolve(n, tt.carrier)
		if err != nil {
			t.Fatalf("Resolve(%s): %v", tt.carrier, err)
		}
		if r.Primary != tt.primary || r.Alternate != tt.alternate {
			t.Errorf("Resolve(%s) = %+v", tt.carrier, r)
		}
	}

	if got := len(Route{Primary: "x"}.Addresses()); got != 1 {
		t.Errorf("Addresses without alternate = %d, want 1", got)
	}
	if _, err := Resolve(n, Carrier("tm")); !errors.Is(err, ErrUnknownCarrier) {
		t.Errorf("Resolve(tm) error = %v, want ErrUnknownCarrier", err)
	}
}

func TestNumberFormats(t *testing.T) {
	n, _ := Normalize("09171234567")
	if n.Local() != "09171234567" {
		t.Errorf("Local() = %q", n.Local())
	}
	if n.E164() != "+639171234567" {
		t.Errorf("E164() = %q", n.E164())
	}
}
