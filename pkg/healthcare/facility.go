package healthcare

import (
	"github.com/gnames/gnquery/pkg/pattern"
	"github.com/gnames/gnquery/pkg/provider"
)

// FacilityAdequacy returns the provider of network adequacy patterns.
func FacilityAdequacy() provider.Provider {
	return provider.New("facility_adequacy", facilityAdequacyPatterns)
}

func facilityAdequacyPatterns() []pattern.Pattern {
	return []pattern.Pattern{
		{
			ID:   "provider_population_ratio",
			Name: "Provider to Population Ratio",
			Description: "Active providers of the selected types per 100,000 " +
				"residents for each county.",
			Category: pattern.FacilityAdequacy,
			Domain:   Domain,
			Template: `
SELECT
    p.state,
    p.county_name,
    p.provider_type,
    COUNT(DISTINCT p.npi) AS providers,
    c.population,
    ROUND(100000.0 * COUNT(DISTINCT p.npi) / NULLIF(c.population, 0), 1)
        AS providers_per_100k
FROM provider_directory p
JOIN county_population c
    ON c.state = p.state AND c.county_name = p.county_name
WHERE p.state IN (:geography_codes)
  AND p.provider_type IN (:provider_types)
  AND p.is_active
GROUP BY p.state, p.county_name, p.provider_type, c.population
ORDER BY providers_per_100k ASC`,
			Params: map[string]pattern.ParamSpec{
				"geography_codes": {Type: pattern.Array, Required: true},
				"provider_types":  {Type: pattern.Array, Required: true},
			},
			EstimatedMillis: 1100,
			Hints:           []pattern.Hint{pattern.OptimizeJoins, pattern.AddLimit},
		},
		{
			ID:   "facility_travel_distance",
			Name: "Facility Travel Distance",
			Description: "Residents living farther than a given distance from the " +
				"nearest facility of a type. Distances are precomputed per ZIP code.",
			Category: pattern.FacilityAdequacy,
			Domain:   Domain,
			Template: `
SELECT
    z.state,
    z.zip_code,
    z.population,
    MIN(d.distance_miles) AS nearest_facility_miles
FROM zip_population z
JOIN zip_facility_distance d ON d.zip_code = z.zip_code
WHERE z.state IN (:geography_codes)
  AND d.facility_type = :facility_type
GROUP BY z.state, z.zip_code, z.population
HAVING MIN(d.distance_miles) > :max_distance_miles
ORDER BY nearest_facility_miles DESC`,
			Params: map[string]pattern.ParamSpec{
				"geography_codes":    {Type: pattern.Array, Required: true},
				"facility_type":      {Type: pattern.String, Required: true},
				"max_distance_miles": {Type: pattern.Number, Required: true},
			},
			EstimatedMillis: 2400,
			Hints:           []pattern.Hint{pattern.AddLimit},
		},
		{
			ID:   "hospital_capacity_gap",
			Name: "Hospital Capacity Gap",
			Description: "Staffed hospital beds per 1,000 residents compared " +
				"with a target ratio.",
			Category: pattern.FacilityAdequacy,
			Domain:   Domain,
			Template: `
SELECT
    h.state,
    h.county_name,
    SUM(h.staffed_beds) AS staffed_beds,
    c.population,
    ROUND(1000.0 * SUM(h.staffed_beds) / NULLIF(c.population, 0), 2) AS beds_per_1000,
    GREATEST(0, ROUND(:target_beds_per_1000 * c.population / 1000.0
        - SUM(h.staffed_beds))) AS bed_shortfall
FROM hospitals h
JOIN county_population c
    ON c.state = h.state AND c.county_name = h.county_name
WHERE h.state IN (:geography_codes)
GROUP BY h.state, h.county_name, c.population
ORDER BY bed_shortfall DESC`,
			Params: map[string]pattern.ParamSpec{
				"geography_codes":      {Type: pattern.Array, Required: true},
				"target_beds_per_1000": {Type: pattern.Number, Required: true},
			},
			EstimatedMillis: 950,
			Hints:           []pattern.Hint{pattern.OptimizeJoins, pattern.AddLimit},
		},
	}
}
