package datasets

import "github.com/gnames/gnquery/pkg/domain"

func environmentDomain() domain.Domain {
	return domain.Domain{
		Name:      Environment,
		DateRange: true,
		Dataset: domain.Dataset{
			Sources: []string{
				"EPA Air Quality System",
				"EPA Safe Drinking Water Information System",
				"EPA Greenhouse Gas Reporting Program",
			},
			GeographyLevels: []string{"state", "county", "monitoring_site"},
			Metrics: []string{
				"aqi", "pm25_mean", "violations", "co2e_metric_tons",
			},
		},
		Patterns: []domain.Pattern{
			{
				ID:          "air_quality",
				Name:        "Air Quality",
				Description: "Daily AQI statistics and unhealthy days.",
				Intent:      "air_quality_analysis",
				Template: `
SELECT
    state,
    county_name,
    ROUND(AVG(aqi), 1) AS mean_aqi,
    MAX(aqi) AS max_aqi,
    COUNT(*) FILTER (WHERE aqi > 100) AS unhealthy_days,
    ROUND(AVG(pm25_mean), 2) AS mean_pm25
FROM daily_air_quality
WHERE state IN ({geography})
  AND observation_date BETWEEN '{start_date}' AND '{end_date}'
GROUP BY state, county_name
ORDER BY unhealthy_days DESC
`,
			},
			{
				ID:          "water_quality",
				Name:        "Drinking Water Quality",
				Description: "Health-based violations of public water systems.",
				Intent:      "water_quality_analysis",
				Template: `
SELECT
    s.state,
    COUNT(DISTINCT s.system_id) AS water_systems,
    COUNT(v.violation_id) AS violations,
    SUM(s.population_served) FILTER (WHERE v.violation_id IS NOT NULL)
        AS population_affected
FROM water_systems s
LEFT JOIN water_violations v
    ON v.system_id = s.system_id
   AND v.begin_date BETWEEN '{start_date}' AND '{end_date}'
   AND v.is_health_based
WHERE s.state IN ({geography})
GROUP BY s.state
ORDER BY violations DESC
`,
			},
			{
				ID:          "emissions",
				Name:        "Greenhouse Gas Emissions",
				Description: "Reported facility emissions by industry sector.",
				Intent:      "emissions_analysis",
				Template: `
SELECT
    state,
    sector,
    COUNT(DISTINCT facility_id) AS facilities,
    ROUND(SUM(co2e_metric_tons), 0) AS co2e_metric_tons
FROM ghg_facility_emissions
WHERE state IN ({geography})
  AND reporting_year = {year}
GROUP BY state, sector
ORDER BY co2e_metric_tons DESC
`,
			},
		},
		Rules: []domain.Rule{
			{
				Keywords:  []string{"emission", "carbon", "co2", "greenhouse", "climate"},
				PatternID: "emissions",
			},
			{
				Keywords:  []string{"water", "drinking", "contaminat"},
				PatternID: "water_quality",
			},
			{
				Keywords:  []string{"air", "pm2.5", "ozone", "aqi", "smog", "pollution"},
				PatternID: "air_quality",
			},
		},
	}
}
