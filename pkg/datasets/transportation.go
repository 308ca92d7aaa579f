package datasets

import "github.com/gnames/gnquery/pkg/domain"

func transportationDomain() domain.Domain {
	return domain.Domain{
		Name: Transportation,
		Dataset: domain.Dataset{
			Sources: []string{
				"National Transit Database",
				"FARS Fatality Analysis Reporting System",
				"ACS Commuting Characteristics",
			},
			GeographyLevels: []string{"state", "metro", "county"},
			Metrics: []string{
				"unlinked_passenger_trips", "fatalities", "mean_commute_minutes",
			},
		},
		Patterns: []domain.Pattern{
			{
				ID:          "transit_ridership",
				Name:        "Transit Ridership",
				Description: "Annual ridership and service by transit mode.",
				Intent:      "ridership_analysis",
				Template: `
SELECT
    state,
    mode,
    SUM(unlinked_passenger_trips) AS trips,
    SUM(vehicle_revenue_miles) AS revenue_miles,
    ROUND(SUM(unlinked_passenger_trips) / NULLIF(SUM(vehicle_revenue_miles), 0), 2)
        AS trips_per_mile
FROM transit_ridership
WHERE state IN ({geography})
  AND report_year = {year}
GROUP BY state, mode
ORDER BY trips DESC
`,
			},
			{
				ID:          "traffic_safety",
				Name:        "Traffic Safety",
				Description: "Fatal crashes and fatality rates per 100 million VMT.",
				Intent:      "safety_analysis",
				Template: `
SELECT
    c.state,
    COUNT(*) AS fatal_crashes,
    SUM(c.fatalities) AS fatalities,
    ROUND(100.0 * SUM(c.fatalities) / NULLIF(MAX(v.vmt_millions), 0), 2)
        AS fatalities_per_100m_vmt
FROM fatal_crashes c
JOIN state_vmt v ON v.state = c.state AND v.year = c.crash_year
WHERE c.state IN ({geography})
  AND c.crash_year = {year}
GROUP BY c.state
ORDER BY fatalities_per_100m_vmt DESC
`,
			},
			{
				ID:          "commute_patterns",
				Name:        "Commute Patterns",
				Description: "Commute mode shares and mean travel time.",
				Intent:      "commute_analysis",
				Template: `
SELECT
    state,
    ROUND(AVG(mean_commute_minutes), 1) AS mean_commute_minutes,
    ROUND(100.0 * SUM(drove_alone) / NULLIF(SUM(workers), 0), 2) AS drove_alone_pct,
    ROUND(100.0 * SUM(public_transit) / NULLIF(SUM(workers), 0), 2) AS transit_pct,
    ROUND(100.0 * SUM(worked_from_home) / NULLIF(SUM(workers), 0), 2) AS remote_pct
FROM commuting_characteristics
WHERE state IN ({geography})
  AND survey_year = {year}
GROUP BY state
ORDER BY mean_commute_minutes DESC
`,
			},
		},
		Rules: []domain.Rule{
			{
				Keywords:  []string{"crash", "accident", "fatal", "safety", "death"},
				PatternID: "traffic_safety",
			},
			{
				Keywords:  []string{"commute", "travel time", "work from home", "drive to work"},
				PatternID: "commute_patterns",
			},
			{
				Keywords:  []string{"transit", "ridership", "bus", "rail", "subway"},
				PatternID: "transit_ridership",
			},
		},
	}
}
