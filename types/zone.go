package types

// RiskLevel is the categorical label derived from a risk score.
type RiskLevel string

const (
	RiskLow      RiskLevel = "Low"
	RiskMedium   RiskLevel = "Medium"
	RiskHigh     RiskLevel = "High"
	RiskCritical RiskLevel = "Critical"
)

// Zone is a fixed conflict zone with a historical risk prior. Reference
// data only; never mutated at runtime.
type Zone struct {
	ID                   string             `json:"id"`
	Name                 string             `json:"name"`
	Lat                  float64            `json:"lat"`
	Lng                  float64            `json:"lng"`
	Radius               int                `json:"radius"` // meters
	RiskLevel            RiskLevel          `json:"risk_level"`
	RiskScore            float64            `json:"risk_score"` // static prior, 0-100
	ConflictType         string             `json:"conflict_type"`
	EthnicitiesInvolved  []string           `json:"ethnicities_involved"`
	RecentIncidents      int                `json:"recent_incidents"`
	LastIncidentDate     string             `json:"last_incident_date"`
	Description          string             `json:"description"`
	PredictionFactors    map[string]float64 `json:"prediction_factors"`
}

// RiskFactors are the live component stresses behind an assessment.
type RiskFactors struct {
	HerdConvergence float64 `json:"herd_convergence"`
	WaterStress     float64 `json:"water_stress"`
	NDVIStress      float64 `json:"ndvi_stress"`
	WeatherStress   float64 `json:"weather_stress"`
}

// AssessedZone is a Zone joined with its live risk assessment. Derived,
// never stored.
type AssessedZone struct {
	Zone
	RealTimeRisk  float64     `json:"real_time_risk"`
	RealTimeLevel RiskLevel   `json:"real_time_level"`
	NearbyHerds   int         `json:"nearby_herds"`
	Factors       RiskFactors `json:"factors"`
}
