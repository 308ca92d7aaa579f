package datasets

import "github.com/gnames/gnquery/pkg/domain"

func housingDomain() domain.Domain {
	return domain.Domain{
		Name: Housing,
		Dataset: domain.Dataset{
			Sources: []string{
				"FHFA House Price Index",
				"ACS Housing Characteristics",
				"HUD Point-in-Time Count",
			},
			GeographyLevels: []string{"state", "metro", "county"},
			Metrics: []string{
				"hpi", "median_home_value", "rent_burden_pct", "homeless_count",
			},
		},
		Patterns: []domain.Pattern{
			{
				ID:          "home_prices",
				Name:        "Home Prices",
				Description: "House price index and median value changes.",
				Intent:      "home_price_analysis",
				Template: `
SELECT
    state,
    quarter,
    hpi,
    median_home_value,
    ROUND(100.0 * (hpi - LAG(hpi, 4) OVER (PARTITION BY state ORDER BY year, quarter))
        / NULLIF(LAG(hpi, 4) OVER (PARTITION BY state ORDER BY year, quarter), 0), 2)
        AS yoy_change_pct
FROM house_price_index
WHERE state IN ({geography})
  AND year = {year}
ORDER BY state, quarter
`,
			},
			{
				ID:          "rent_burden",
				Name:        "Rent Burden",
				Description: "Renter households spending 30% or more of income on rent.",
				Intent:      "rent_burden_analysis",
				Template: `
SELECT
    state,
    median_gross_rent,
    renter_households,
    ROUND(100.0 * cost_burdened / NULLIF(renter_households, 0), 2) AS rent_burden_pct,
    ROUND(100.0 * severely_burdened / NULLIF(renter_households, 0), 2) AS severe_burden_pct
FROM renter_cost_burden
WHERE state IN ({geography})
  AND survey_year = {year}
ORDER BY rent_burden_pct DESC
`,
			},
			{
				ID:          "homelessness",
				Name:        "Homelessness",
				Description: "Point-in-time homeless counts by shelter status.",
				Intent:      "homelessness_analysis",
				Template: `
SELECT
    state,
    SUM(total_homeless) AS total_homeless,
    SUM(sheltered) AS sheltered,
    SUM(unsheltered) AS unsheltered,
    ROUND(10000.0 * SUM(total_homeless) / NULLIF(MAX(state_population), 0), 1)
        AS per_10k_residents
FROM pit_counts
WHERE state IN ({geography})
  AND count_year = {year}
GROUP BY state
ORDER BY per_10k_residents DESC
`,
			},
		},
		Rules: []domain.Rule{
			{
				Keywords:  []string{"homeless", "shelter", "unhoused"},
				PatternID: "homelessness",
			},
			{
				Keywords:  []string{"rent", "renter", "tenant"},
				PatternID: "rent_burden",
			},
			{
				Keywords:  []string{"price", "value", "afford", "appreciation"},
				PatternID: "home_prices",
			},
		},
	}
}
