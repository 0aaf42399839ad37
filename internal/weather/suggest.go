package weather

import (
	"fmt"
	"strings"

	"github.com/julianstephens/daybook/internal/constants"
)

// The suggestion is assembled from an ordered rule list: one temperature
// band picked by first match, then at most one precipitation/sun clause,
// then at most one wind clause. The two clause groups are independent of
// each other, so a snowy gale gets both a snow clause and a wind clause.

type band struct {
	above float64
	text  string
}

// temperatureBands are checked top to bottom; the first band whose
// threshold the temperature exceeds wins.
var temperatureBands = []band{
	{28, "Very hot! Light, bright-colored clothes: shorts, a t-shirt, sandals. Drink plenty of water and stay out of the sun."},
	{20, "Warm and pleasant. A t-shirt with light trousers or a skirt. A thin cardigan may help in the evening."},
	{15, "Mild. A long-sleeved shirt or a light sweater, with jeans or similar."},
	{10, "Chilly. A sweater or sweatshirt with a light jacket or coat."},
	{5, "Cold. A thick sweater, a coat, a scarf and a beanie are worth considering."},
}

const freezingBand = "Freezing! Dress in layers: a heavy coat, thermal underwear, scarf, beanie and gloves are a must."

type clauseRule struct {
	applies func(temp float64, condition string, wind float64) bool
	text    func(temp float64, condition string, wind float64) string
}

// skyRules: first match appended, later rules skipped. Rain before snow,
// and the sun clause only for clear skies above 15 degrees.
var skyRules = []clauseRule{
	{
		applies: func(_ float64, condition string, _ float64) bool {
			return strings.Contains(condition, "Rain") || strings.Contains(condition, "Drizzle")
		},
		text: func(_ float64, _ string, _ float64) string {
			return " Don't forget a raincoat or an umbrella."
		},
	},
	{
		applies: func(_ float64, condition string, _ float64) bool {
			return strings.Contains(condition, "Snow")
		},
		text: func(_ float64, _ string, _ float64) string {
			return " A snow jacket, waterproof boots and gloves would be good."
		},
	},
	{
		applies: func(temp float64, condition string, _ float64) bool {
			return strings.Contains(condition, "Clear") && temp > 15
		},
		text: func(_ float64, _ string, _ float64) string {
			return " Sunny day, sunglasses are a good idea."
		},
	},
}

// windRules: the strong-wind clause always wins over the light-wind note.
var windRules = []clauseRule{
	{
		applies: func(_ float64, _ string, wind float64) bool {
			return wind > constants.StrongWindThresholdMS
		},
		text: func(_ float64, _ string, wind float64) string {
			return fmt.Sprintf(" Windy (%.1f m/s)! A windbreaker will help.", wind)
		},
	},
	{
		applies: func(temp float64, condition string, _ float64) bool {
			return strings.Contains(condition, "Wind") && temp < 15
		},
		text: func(_ float64, _ string, _ float64) string {
			return " It may be a little breezy."
		},
	},
}

// Suggest derives the clothing advice for a temperature in °C, a coarse
// condition category (e.g. "Clear", "Rain") and a wind speed in m/s. It is
// a pure function: same inputs, same string.
func Suggest(temp float64, condition string, wind float64) string {
	var b strings.Builder

	base := freezingBand
	for _, band := range temperatureBands {
		if temp > band.above {
			base = band.text
			break
		}
	}
	b.WriteString(base)

	for _, rule := range skyRules {
		if rule.applies(temp, condition, wind) {
			b.WriteString(rule.text(temp, condition, wind))
			break
		}
	}

	for _, rule := range windRules {
		if rule.applies(temp, condition, wind) {
			b.WriteString(rule.text(temp, condition, wind))
			break
		}
	}

	return b.String()
}

// SuggestFor is the Snapshot convenience wrapper around Suggest.
func SuggestFor(snap Snapshot) string {
	return Suggest(snap.Temperature, snap.Condition, snap.WindSpeed)
}
