package healthcare

import (
	"github.com/gnames/gnquery/pkg/pattern"
	"github.com/gnames/gnquery/pkg/provider"
)

// PopulationHealth returns the provider of chronic condition, risk and
// social determinants patterns.
func PopulationHealth() provider.Provider {
	return provider.New("population_health", populationHealthPatterns)
}

func populationHealthPatterns() []pattern.Pattern {
	return []pattern.Pattern{
		{
			ID:   "chronic_condition_prevalence",
			Name: "Chronic Condition Prevalence",
			Description: "Prevalence of selected chronic conditions among " +
				"beneficiaries per state.",
			Category: pattern.PopulationHealth,
			Domain:   Domain,
			Template: `
SELECT
    c.state,
    c.condition_name,
    COUNT(DISTINCT c.beneficiary_id) AS affected,
    t.beneficiaries,
    ROUND(100.0 * COUNT(DISTINCT c.beneficiary_id) / NULLIF(t.beneficiaries, 0), 2)
        AS prevalence_pct
FROM chronic_conditions c
JOIN (
    SELECT state, COUNT(*) AS beneficiaries
    FROM beneficiary_summary
    WHERE state IN (:geography_codes)
    GROUP BY state
) t ON t.state = c.state
WHERE c.state IN (:geography_codes)
  AND c.condition_name IN (:conditions)
GROUP BY c.state, c.condition_name, t.beneficiaries
ORDER BY prevalence_pct DESC`,
			Params: map[string]pattern.ParamSpec{
				"geography_codes": {Type: pattern.Array, Required: true},
				"conditions":      {Type: pattern.Array, Required: true},
			},
			EstimatedMillis: 1800,
			Hints:           []pattern.Hint{pattern.OptimizeJoins, pattern.AddLimit},
		},
		{
			ID:   "high_risk_population",
			Name: "High Risk Population",
			Description: "Beneficiaries with a hierarchical condition category " +
				"risk score above a threshold, with their share of total cost.",
			Category: pattern.PopulationHealth,
			Domain:   Domain,
			Template: `
SELECT
    state,
    COUNT(*) FILTER (WHERE risk_score >= :risk_threshold) AS high_risk,
    COUNT(*) AS beneficiaries,
    ROUND(AVG(risk_score), 3) AS avg_risk_score,
    ROUND(100.0 * SUM(total_cost) FILTER (WHERE risk_score >= :risk_threshold)
        / NULLIF(SUM(total_cost), 0), 2) AS high_risk_cost_share_pct
FROM beneficiary_summary
WHERE state IN (:geography_codes)
GROUP BY state
ORDER BY high_risk DESC`,
			Params: map[string]pattern.ParamSpec{
				"geography_codes": {Type: pattern.Array, Required: true},
				"risk_threshold":  {Type: pattern.Number, Required: true},
			},
			EstimatedMillis: 800,
			Hints:           []pattern.Hint{pattern.AddLimit},
		},
		{
			ID:   "social_determinants_profile",
			Name: "Social Determinants Profile",
			Description: "Poverty, insurance coverage, education and broadband " +
				"access indicators per county.",
			Category: pattern.Demographics,
			Domain:   Domain,
			Template: `
SELECT
    state,
    county_name,
    population,
    ROUND(100.0 * below_poverty / NULLIF(population, 0), 2) AS poverty_pct,
    ROUND(100.0 * uninsured / NULLIF(population, 0), 2) AS uninsured_pct,
    ROUND(100.0 * no_high_school / NULLIF(adults_25_plus, 0), 2) AS no_diploma_pct,
    ROUND(100.0 * no_broadband / NULLIF(households, 0), 2) AS no_broadband_pct
FROM county_social_indicators
WHERE state IN (:geography_codes)
ORDER BY poverty_pct DESC`,
			Params: map[string]pattern.ParamSpec{
				"geography_codes": {Type: pattern.Array, Required: true},
			},
			EstimatedMillis: 400,
			Hints:           []pattern.Hint{pattern.AddLimit},
		},
		{
			ID:   "preventive_care_gaps",
			Name: "Preventive Care Gaps",
			Description: "Share of eligible beneficiaries who did not receive " +
				"recommended preventive services in a measurement year.",
			Category: pattern.PopulationHealth,
			Domain:   Domain,
			Template: `
SELECT
    state,
    service_name,
    SUM(eligible) AS eligible,
    SUM(received) AS received,
    ROUND(100.0 * (SUM(eligible) - SUM(received)) / NULLIF(SUM(eligible), 0), 2)
        AS gap_pct
FROM preventive_services
WHERE state IN (:geography_codes)
  AND measure_year = :measure_year
GROUP BY state, service_name
ORDER BY gap_pct DESC`,
			Params: map[string]pattern.ParamSpec{
				"geography_codes": {Type: pattern.Array, Required: true},
				"measure_year":    {Type: pattern.Number, Required: true},
			},
			EstimatedMillis: 650,
			Hints:           []pattern.Hint{pattern.AddLimit},
		},
	}
}
