package datasets

import "github.com/gnames/gnquery/pkg/domain"

func educationDomain() domain.Domain {
	return domain.Domain{
		Name: Education,
		Dataset: domain.Dataset{
			Sources: []string{
				"NCES Common Core of Data",
				"EDFacts Assessment Data",
				"Census Annual Survey of School System Finances",
			},
			GeographyLevels: []string{"state", "district", "school"},
			Metrics: []string{
				"enrollment", "proficiency_rate", "graduation_rate",
				"per_pupil_spending",
			},
		},
		Patterns: []domain.Pattern{
			{
				ID:          "education_enrollment",
				Name:        "School Enrollment",
				Description: "Public school enrollment by grade band.",
				Intent:      "enrollment_analysis",
				Template: `
SELECT
    state,
    school_year,
    SUM(enrollment) AS total_enrollment,
    SUM(enrollment) FILTER (WHERE grade_band = 'elementary') AS elementary,
    SUM(enrollment) FILTER (WHERE grade_band = 'middle') AS middle,
    SUM(enrollment) FILTER (WHERE grade_band = 'high') AS high
FROM school_enrollment
WHERE state IN ({geography})
  AND school_year = {year}
GROUP BY state, school_year
ORDER BY total_enrollment DESC
`,
			},
			{
				ID:          "education_performance",
				Name:        "Academic Performance",
				Description: "Assessment proficiency and graduation rates.",
				Intent:      "performance_analysis",
				Template: `
SELECT
    state,
    subject,
    ROUND(AVG(proficiency_rate), 2) AS avg_proficiency,
    ROUND(AVG(graduation_rate), 2) AS avg_graduation_rate
FROM assessment_results
WHERE state IN ({geography})
  AND school_year = {year}
GROUP BY state, subject
ORDER BY avg_proficiency DESC
`,
			},
			{
				ID:          "education_funding",
				Name:        "School Funding",
				Description: "Per pupil spending by revenue source.",
				Intent:      "funding_analysis",
				Template: `
SELECT
    state,
    ROUND(SUM(total_expenditure) / NULLIF(SUM(enrollment), 0), 0) AS per_pupil_spending,
    ROUND(100.0 * SUM(federal_revenue) / NULLIF(SUM(total_revenue), 0), 2) AS federal_share_pct,
    ROUND(100.0 * SUM(state_revenue) / NULLIF(SUM(total_revenue), 0), 2) AS state_share_pct,
    ROUND(100.0 * SUM(local_revenue) / NULLIF(SUM(total_revenue), 0), 2) AS local_share_pct
FROM district_finances
WHERE state IN ({geography})
  AND fiscal_year = {year}
GROUP BY state
ORDER BY per_pupil_spending DESC
`,
			},
		},
		Rules: []domain.Rule{
			{
				Keywords:  []string{"test", "score", "performance", "proficien", "graduat"},
				PatternID: "education_performance",
			},
			{
				Keywords:  []string{"fund", "spend", "budget", "per pupil", "revenue"},
				PatternID: "education_funding",
			},
			{
				Keywords:  []string{"enroll", "student"},
				PatternID: "education_enrollment",
			},
		},
	}
}
