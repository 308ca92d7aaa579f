// Package healthcare provides fixed-template query patterns for Medicare,
// population health and facility adequacy analysis.
//
// Templates are written for a columnar analytical store and use :name
// placeholders. All statistics are computed by the store; the templates
// only declare them.
package healthcare

import (
	"github.com/gnames/gnquery/pkg/provider"
)

// Domain is the domain name of all patterns in this package.
const Domain = "healthcare"

// Providers returns healthcare providers in registration order:
// medicare, population health, facility adequacy.
func Providers() []provider.Provider {
	return []provider.Provider{
		Medicare(),
		PopulationHealth(),
		FacilityAdequacy(),
	}
}
