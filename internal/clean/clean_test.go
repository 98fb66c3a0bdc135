package clean

import (
	"errors"
	"testing"
	"time"
)

func TestDate(t *testing.T) {
	got, err := Date("1/5/2024")
	if err != nil {
		t.Fatalf("Date returned error: %v", err)
	}
	want := time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestDateIgnoresExtraFields(t *testing.T) {
	got, err := Date("12/31/1999/extra")
	if err != nil {
		t.Fatalf("Date returned error: %v", err)
	}
	if got.Month() != time.December || got.Day() != 31 || got.Year() != 1999 {
		t.Fatalf("unexpected date %v", got)
	}
}

func TestDateInvalid(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"too few fields", "1/5"},
		{"empty", ""},
		{"non-numeric", "a/b/c"},
		{"wrong separator", "1-5-2024"},
		{"month out of range", "13/1/2024"},
		{"day out of range", "2/30/2024"},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Date(tt.input)
			var fe *FormatError
			if !errors.As(err, &fe) {
				t.Fatalf("expected FormatError for %q, got %v", tt.input, err)
			}
		})
	}
}

func TestHumanDate(t *testing.T) {
	d := time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC)
	if got := HumanDate(d); got != "January 05, 2024" {
		t.Fatalf("expected %q, got %q", "January 05, 2024", got)
	}
}

func TestPrice(t *testing.T) {
	cases := []struct {
		input string
		want  int
	}{
		{"12.99", 1299},
		{"$12.99", 1299},
		{"5", 500},
		{"0.10", 10},
		{"$0.99", 99},
		{"0", 0},
	}
	for _, tt := range cases {
		got, err := Price(tt.input)
		if err != nil {
			t.Fatalf("Price(%q) returned error: %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("Price(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestPriceInvalid(t *testing.T) {
	for _, input := range []string{"abc", "", "$", "$$5", "12.99.1", "12,99"} {
		_, err := Price(input)
		var fe *FormatError
		if !errors.As(err, &fe) {
			t.Errorf("expected FormatError for %q, got %v", input, err)
		}
	}
}

func TestPriceHumanPriceRoundTrip(t *testing.T) {
	for _, cents := range []int{0, 1, 5, 99, 100, 101, 1298, 1299, 99999, 123456789} {
		got, err := Price(HumanPrice(cents))
		if err != nil {
			t.Fatalf("round trip of %d cents failed: %v", cents, err)
		}
		if got != cents {
			t.Errorf("Price(HumanPrice(%d)) = %d", cents, got)
		}
	}
}

func TestHumanPrice(t *testing.T) {
	cases := []struct {
		cents int
		want  string
	}{
		{1299, "$12.99"},
		{300, "$3.00"},
		{5, "$0.05"},
		{0, "$0.00"},
	}
	for _, tt := range cases {
		if got := HumanPrice(tt.cents); got != tt.want {
			t.Errorf("HumanPrice(%d) = %q, want %q", tt.cents, got, tt.want)
		}
	}
}

func TestHumanPriceFloat(t *testing.T) {
	if got := HumanPriceFloat(300.0); got != "$3.00" {
		t.Fatalf("HumanPriceFloat(300.0) = %q", got)
	}
	if got := HumanPriceFloat(1234.5); got != "$12.35" {
		t.Fatalf("HumanPriceFloat(1234.5) = %q", got)
	}
}

func TestID(t *testing.T) {
	options := []int{1, 2, 3}

	got, err := ID("3", options)
	if err != nil {
		t.Fatalf("ID returned error: %v", err)
	}
	if got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}

	_, err = ID("9", options)
	var re *RangeError
	if !errors.As(err, &re) {
		t.Fatalf("expected RangeError, got %v", err)
	}
	if re.Error() != "id 9 not found, options are: 1, 2, 3" {
		t.Fatalf("unexpected RangeError message %q", re.Error())
	}

	_, err = ID("x", options)
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FormatError, got %v", err)
	}
}

func TestQuantity(t *testing.T) {
	got, err := Quantity("100")
	if err != nil || got != 100 {
		t.Fatalf("Quantity(%q) = %d, %v", "100", got, err)
	}

	// Negative counts are allowed on purpose.
	got, err = Quantity("-5")
	if err != nil || got != -5 {
		t.Fatalf("Quantity(%q) = %d, %v", "-5", got, err)
	}

	_, err = Quantity("ten")
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FormatError, got %v", err)
	}
}

func TestStamp(t *testing.T) {
	ts := time.Date(2024, time.January, 5, 13, 45, 9, 0, time.UTC)
	if got := Stamp(ts); got != "2024-01-05 13:45:09" {
		t.Fatalf("Stamp = %q", got)
	}
}
