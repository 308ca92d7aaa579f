package healthcare

import (
	"github.com/gnames/gnquery/pkg/pattern"
	"github.com/gnames/gnquery/pkg/provider"
)

// Medicare returns the provider of Medicare eligibility and enrollment
// patterns.
func Medicare() provider.Provider {
	return provider.New("medicare", medicarePatterns)
}

func medicarePatterns() []pattern.Pattern {
	return []pattern.Pattern{
		{
			ID:   "medicare_basic_eligibility",
			Name: "Medicare Basic Eligibility",
			Description: "Counts people eligible for Medicare by age, disability " +
				"or end-stage renal disease for the selected geographies.",
			Category: pattern.Medicare,
			Domain:   Domain,
			Template: `
SELECT
    :geography_type AS geography_level,
    CASE :geography_type
        WHEN 'state' THEN state
        WHEN 'county' THEN county_name
        ELSE zip_code
    END AS geography,
    COUNT(*) AS total_population,
    COUNT(*) FILTER (WHERE age >= 65) AS age_eligible,
    COUNT(*) FILTER (WHERE age < 65 AND has_disability) AS disability_eligible,
    COUNT(*) FILTER (WHERE esrd_status) AS esrd_eligible,
    ROUND(100.0 * COUNT(*) FILTER (
        WHERE age >= 65 OR has_disability OR esrd_status
    ) / NULLIF(COUNT(*), 0), 2) AS eligibility_rate
FROM medicare_beneficiaries
WHERE (:geography_type = 'state' AND state IN (:geography_codes))
   OR (:geography_type = 'county' AND county_name IN (:geography_codes))
   OR (:geography_type = 'zip' AND zip_code IN (:geography_codes))
GROUP BY 1, 2
ORDER BY total_population DESC`,
			Params: map[string]pattern.ParamSpec{
				"geography_type":  {Type: pattern.String, Required: true},
				"geography_codes": {Type: pattern.Array, Required: true},
			},
			EstimatedMillis: 1200,
			Hints:           []pattern.Hint{pattern.AddLimit, pattern.ForceIndexScan},
		},
		{
			ID:   "medicare_advantage_penetration",
			Name: "Medicare Advantage Penetration",
			Description: "Share of Medicare enrollees in Medicare Advantage plans " +
				"per state for a given year.",
			Category: pattern.Medicare,
			Domain:   Domain,
			Template: `
SELECT
    e.state,
    SUM(e.total_enrollees) AS total_enrollees,
    SUM(e.ma_enrollees) AS ma_enrollees,
    ROUND(100.0 * SUM(e.ma_enrollees) / NULLIF(SUM(e.total_enrollees), 0), 2)
        AS ma_penetration_pct,
    COUNT(DISTINCT p.contract_id) AS active_contracts
FROM medicare_enrollment e
LEFT JOIN ma_contracts p
    ON p.state = e.state AND p.plan_year = e.enrollment_year
WHERE e.state IN (:geography_codes)
  AND e.enrollment_year = :year
GROUP BY e.state
ORDER BY ma_penetration_pct DESC`,
			Params: map[string]pattern.ParamSpec{
				"geography_codes": {Type: pattern.Array, Required: true},
				"year":            {Type: pattern.Number, Required: true},
			},
			EstimatedMillis: 900,
			Hints:           []pattern.Hint{pattern.OptimizeJoins, pattern.AddLimit},
		},
		{
			ID:   "medicare_dual_eligible",
			Name: "Dual Eligible Beneficiaries",
			Description: "Beneficiaries enrolled in both Medicare and Medicaid " +
				"with full and partial dual status breakdown.",
			Category: pattern.Medicare,
			Domain:   Domain,
			Template: `
SELECT
    b.state,
    COUNT(*) AS beneficiaries_total,
    COUNT(m.beneficiary_id) AS dual_eligible,
    COUNT(m.beneficiary_id) FILTER (WHERE m.dual_status = 'full') AS full_dual,
    COUNT(m.beneficiary_id) FILTER (WHERE m.dual_status = 'partial') AS partial_dual,
    ROUND(100.0 * COUNT(m.beneficiary_id) / NULLIF(COUNT(*), 0), 2) AS dual_rate
FROM medicare_beneficiaries b
LEFT JOIN medicaid_enrollment m ON m.beneficiary_id = b.beneficiary_id
WHERE b.state IN (:geography_codes)
GROUP BY b.state
ORDER BY dual_rate DESC`,
			Params: map[string]pattern.ParamSpec{
				"geography_codes": {Type: pattern.Array, Required: true},
			},
			EstimatedMillis: 1500,
			Hints: []pattern.Hint{
				pattern.OptimizeJoins, pattern.ForceIndexScan, pattern.AddLimit,
			},
		},
		{
			ID:   "medicare_enrollment_trends",
			Name: "Medicare Enrollment Trends",
			Description: "Year over year Medicare enrollment with growth rates " +
				"between two years.",
			Category: pattern.Medicare,
			Domain:   Domain,
			Template: `
WITH yearly AS (
    SELECT state, enrollment_year, SUM(total_enrollees) AS enrollees
    FROM medicare_enrollment
    WHERE state IN (:geography_codes)
      AND enrollment_year BETWEEN :start_year AND :end_year
    GROUP BY state, enrollment_year
)
SELECT
    state,
    enrollment_year,
    enrollees,
    enrollees - LAG(enrollees) OVER w AS change,
    ROUND(100.0 * (enrollees - LAG(enrollees) OVER w)
        / NULLIF(LAG(enrollees) OVER w, 0), 2) AS growth_pct
FROM yearly
WINDOW w AS (PARTITION BY state ORDER BY enrollment_year)
ORDER BY state, enrollment_year`,
			Params: map[string]pattern.ParamSpec{
				"geography_codes": {Type: pattern.Array, Required: true},
				"start_year":      {Type: pattern.Number, Required: true},
				"end_year":        {Type: pattern.Number, Required: true},
			},
			EstimatedMillis: 700,
			Hints:           []pattern.Hint{pattern.AddLimit},
		},
		{
			ID:   "medicare_age_distribution",
			Name: "Medicare Age Distribution",
			Description: "Distribution of residents by age band starting from a " +
				"minimal age, useful for projecting future eligibility.",
			Category: pattern.Demographics,
			Domain:   Domain,
			Template: `
SELECT
    state,
    CASE
        WHEN age < 65 THEN 'under_65'
        WHEN age < 75 THEN '65_74'
        WHEN age < 85 THEN '75_84'
        ELSE '85_plus'
    END AS age_band,
    COUNT(*) AS residents,
    ROUND(100.0 * COUNT(*) / SUM(COUNT(*)) OVER (PARTITION BY state), 2) AS share_pct
FROM census_population
WHERE state IN (:geography_codes)
  AND age >= :min_age
GROUP BY state, age_band
ORDER BY state, age_band`,
			Params: map[string]pattern.ParamSpec{
				"geography_codes": {Type: pattern.Array, Required: true},
				"min_age":         {Type: pattern.Number, Required: true},
			},
			EstimatedMillis: 600,
			Hints:           []pattern.Hint{pattern.AddLimit},
		},
	}
}
