package simulation

import (
	"testing"
)

func BenchmarkRunCompoundYear(b *testing.B) {
	setup := PlayerSetup{Name: "Bench", Breweries: 10, PricePerBrewery: 100}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Run(setup.NewPlayer(discardLogger), 365, 100, "compound", WithLogger(discardLogger)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCompareStrategies(b *testing.B) {
	setup := PlayerSetup{Name: "Bench", Breweries: 10, PricePerBrewery: 100}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := CompareStrategies(setup, 365, 100, WithLogger(discardLogger)); err != nil {
			b.Fatal(err)
		}
	}
}
