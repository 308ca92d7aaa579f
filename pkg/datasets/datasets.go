// Package datasets provides templated-selection domains for generic public
// datasets: education, transportation, environment, economics and housing.
package datasets

import "github.com/gnames/gnquery/pkg/domain"

// Domain names.
const (
	Education      = "education"
	Transportation = "transportation"
	Environment    = "environment"
	Economics      = "economics"
	Housing        = "housing"
)

// All returns every built-in generic domain.
func All() []domain.Domain {
	return []domain.Domain{
		educationDomain(),
		transportationDomain(),
		environmentDomain(),
		economicsDomain(),
		housingDomain(),
	}
}
