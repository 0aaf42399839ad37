package weather

import (
	"strings"
	"testing"
)

func TestSuggestTemperatureBands(t *testing.T) {
	cases := []struct {
		name string
		temp float64
		want string
	}{
		{"very hot", 30, "Very hot!"},
		{"warm", 25, "Warm and pleasant."},
		{"mild", 18, "Mild."},
		{"chilly", 12, "Chilly."},
		{"cold", 7, "Cold."},
		{"freezing", 2, "Freezing!"},
		{"well below zero", -15, "Freezing!"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Suggest(tc.temp, "Clouds", 0)
			if !strings.HasPrefix(got, tc.want) {
				t.Errorf("Suggest(%v) = %q, want prefix %q", tc.temp, got, tc.want)
			}
		})
	}
}

func TestSuggestBandBoundaries(t *testing.T) {
	// Thresholds are strict: exactly 28 is warm, not very hot, and so on
	// down the scale.
	cases := []struct {
		temp float64
		want string
	}{
		{28, "Warm and pleasant."},
		{20, "Mild."},
		{15, "Chilly."},
		{10, "Cold."},
		{5, "Freezing!"},
	}
	for _, tc := range cases {
		got := Suggest(tc.temp, "Clouds", 0)
		if !strings.HasPrefix(got, tc.want) {
			t.Errorf("Suggest(%v) = %q, want prefix %q", tc.temp, got, tc.want)
		}
	}
}

func TestSuggestSkyClauses(t *testing.T) {
	t.Run("rain", func(t *testing.T) {
		got := Suggest(18, "Rain", 0)
		if !strings.Contains(got, "raincoat or an umbrella") {
			t.Errorf("no rain clause in %q", got)
		}
	})

	t.Run("drizzle counts as rain", func(t *testing.T) {
		got := Suggest(18, "Drizzle", 0)
		if !strings.Contains(got, "raincoat or an umbrella") {
			t.Errorf("no rain clause in %q", got)
		}
	})

	t.Run("snow", func(t *testing.T) {
		got := Suggest(-2, "Snow", 0)
		if !strings.Contains(got, "snow jacket") {
			t.Errorf("no snow clause in %q", got)
		}
	})

	t.Run("sun clause needs clear skies and warmth", func(t *testing.T) {
		if got := Suggest(22, "Clear", 0); !strings.Contains(got, "sunglasses") {
			t.Errorf("no sun clause in %q", got)
		}
		if got := Suggest(10, "Clear", 0); strings.Contains(got, "sunglasses") {
			t.Errorf("sun clause on a cold day: %q", got)
		}
		if got := Suggest(22, "Clouds", 0); strings.Contains(got, "sunglasses") {
			t.Errorf("sun clause under clouds: %q", got)
		}
	})

	t.Run("at most one sky clause", func(t *testing.T) {
		// Rain wins over clear when both substrings appear.
		got := Suggest(22, "Rain Clear", 0)
		if !strings.Contains(got, "raincoat") || strings.Contains(got, "sunglasses") {
			t.Errorf("expected rain clause only, got %q", got)
		}
	})
}

func TestSuggestWindClauses(t *testing.T) {
	t.Run("strong wind includes the speed", func(t *testing.T) {
		got := Suggest(18, "Clouds", 9.3)
		if !strings.Contains(got, "Windy (9.3 m/s)!") {
			t.Errorf("no strong wind clause in %q", got)
		}
	})

	t.Run("threshold is strict", func(t *testing.T) {
		if got := Suggest(18, "Clouds", 7.0); strings.Contains(got, "Windy") {
			t.Errorf("wind clause at exactly 7 m/s: %q", got)
		}
	})

	t.Run("light wind note for windy conditions when cool", func(t *testing.T) {
		if got := Suggest(10, "Wind", 3); !strings.Contains(got, "a little breezy") {
			t.Errorf("no breezy note in %q", got)
		}
		if got := Suggest(20, "Wind", 3); strings.Contains(got, "a little breezy") {
			t.Errorf("breezy note on a warm day: %q", got)
		}
	})

	t.Run("strong wind wins over the light note", func(t *testing.T) {
		got := Suggest(10, "Wind", 8)
		if !strings.Contains(got, "Windy (8.0 m/s)!") || strings.Contains(got, "a little breezy") {
			t.Errorf("expected strong wind clause only, got %q", got)
		}
	})
}

func TestSuggestClausesAreIndependent(t *testing.T) {
	// A snowy gale carries a band, a snow clause and a wind clause.
	got := Suggest(3, "Snow", 10)
	want := "Freezing! Dress in layers: a heavy coat, thermal underwear, scarf, beanie and gloves are a must." +
		" A snow jacket, waterproof boots and gloves would be good." +
		" Windy (10.0 m/s)! A windbreaker will help."
	if got != want {
		t.Errorf("Suggest(3, Snow, 10) =\n%q\nwant\n%q", got, want)
	}
}

func TestSuggestIsPure(t *testing.T) {
	first := Suggest(30, "Clear", 2)
	want := "Very hot! Light, bright-colored clothes: shorts, a t-shirt, sandals. Drink plenty of water and stay out of the sun." +
		" Sunny day, sunglasses are a good idea."
	if first != want {
		t.Errorf("Suggest(30, Clear, 2) =\n%q\nwant\n%q", first, want)
	}
	for i := 0; i < 5; i++ {
		if got := Suggest(30, "Clear", 2); got != first {
			t.Fatalf("same inputs gave a different string: %q", got)
		}
	}
}

func TestSuggestFor(t *testing.T) {
	snap := Snapshot{Temperature: 18, Condition: "Rain", WindSpeed: 4}
	if got, want := SuggestFor(snap), Suggest(18, "Rain", 4); got != want {
		t.Errorf("SuggestFor = %q, want %q", got, want)
	}
}
