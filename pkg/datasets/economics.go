package datasets

import "github.com/gnames/gnquery/pkg/domain"

func economicsDomain() domain.Domain {
	return domain.Domain{
		Name: Economics,
		Dataset: domain.Dataset{
			Sources: []string{
				"BLS Local Area Unemployment Statistics",
				"BEA Regional Economic Accounts",
				"ACS Income and Earnings",
			},
			GeographyLevels: []string{"state", "metro", "county"},
			Metrics: []string{
				"unemployment_rate", "median_household_income", "real_gdp",
			},
		},
		Patterns: []domain.Pattern{
			{
				ID:          "unemployment",
				Name:        "Unemployment",
				Description: "Labor force and unemployment rate by month.",
				Intent:      "labor_market_analysis",
				Template: `
SELECT
    state,
    month,
    labor_force,
    unemployed,
    ROUND(100.0 * unemployed / NULLIF(labor_force, 0), 1) AS unemployment_rate
FROM labor_force_statistics
WHERE state IN ({geography})
  AND year = {year}
ORDER BY state, month
`,
			},
			{
				ID:          "household_income",
				Name:        "Household Income",
				Description: "Median household income and poverty rate.",
				Intent:      "income_analysis",
				Template: `
SELECT
    state,
    median_household_income,
    per_capita_income,
    ROUND(100.0 * below_poverty / NULLIF(population, 0), 2) AS poverty_rate
FROM income_estimates
WHERE state IN ({geography})
  AND survey_year = {year}
ORDER BY median_household_income DESC
`,
			},
			{
				ID:          "gdp_growth",
				Name:        "GDP Growth",
				Description: "Real GDP and growth against the previous year.",
				Intent:      "gdp_analysis",
				Template: `
SELECT
    cur.state,
    cur.real_gdp,
    prev.real_gdp AS previous_real_gdp,
    ROUND(100.0 * (cur.real_gdp - prev.real_gdp) / NULLIF(prev.real_gdp, 0), 2)
        AS growth_pct
FROM regional_gdp cur
LEFT JOIN regional_gdp prev
    ON prev.state = cur.state AND prev.year = cur.year - 1
WHERE cur.state IN ({geography})
  AND cur.year = {year}
ORDER BY growth_pct DESC
`,
			},
		},
		Rules: []domain.Rule{
			{
				Keywords:  []string{"unemploy", "jobless", "labor", "jobs"},
				PatternID: "unemployment",
			},
			{
				Keywords:  []string{"income", "wage", "earning", "poverty"},
				PatternID: "household_income",
			},
			{
				Keywords:  []string{"gdp", "growth", "economic output"},
				PatternID: "gdp_growth",
			},
		},
	}
}
