package staticdata

import "go-bovine/types"

// ConflictZones is the static zone table: historical conflict areas in
// South Sudan with their base risk priors. The live assessment in the
// risk package adjusts these priors; the rows themselves never change.
var ConflictZones = []types.Zone{
	{
		ID: "CZ1", Name: "Pibor-Murle Corridor",
		Lat: 6.85, Lng: 33.05, Radius: 45000,
		RiskLevel: types.RiskCritical, RiskScore: 92,
		ConflictType:        "Cattle raiding",
		EthnicitiesInvolved: []string{"Murle", "Nuer", "Dinka"},
		RecentIncidents:     23, LastIncidentDate: "2024-12-15",
		Description: "Historically highest cattle raid frequency. Murle-Nuer-Dinka territorial overlap. Multiple herds converging due to water stress.",
		PredictionFactors: map[string]float64{
			"herd_convergence": 0.9, "water_scarcity": 0.85,
			"ndvi_decline": 0.8, "historical_violence": 0.95,
		},
	},
	{
		ID: "CZ2", Name: "Tonj-Warrap Border",
		Lat: 7.35, Lng: 28.85, Radius: 35000,
		RiskLevel: types.RiskHigh, RiskScore: 78,
		ConflictType:        "Grazing disputes",
		EthnicitiesInvolved: []string{"Dinka Agar", "Dinka Rek"},
		RecentIncidents:     12, LastIncidentDate: "2024-11-28",
		Description: "Intra-Dinka territorial disputes during dry season. Pressure increasing as NDVI drops below 0.4.",
		PredictionFactors: map[string]float64{
			"herd_convergence": 0.7, "water_scarcity": 0.6,
			"ndvi_decline": 0.75, "historical_violence": 0.7,
		},
	},
	{
		ID: "CZ3", Name: "Sobat River Junction",
		Lat: 8.45, Lng: 32.75, Radius: 30000,
		RiskLevel: types.RiskHigh, RiskScore: 75,
		ConflictType:        "Water access conflict",
		EthnicitiesInvolved: []string{"Nuer", "Shilluk"},
		RecentIncidents:     8, LastIncidentDate: "2024-10-20",
		Description: "Critical water point where multiple herds converge. Competition intensifies in dry season.",
		PredictionFactors: map[string]float64{
			"herd_convergence": 0.85, "water_scarcity": 0.9,
			"ndvi_decline": 0.65, "historical_violence": 0.6,
		},
	},
	{
		ID: "CZ4", Name: "Unity-Upper Nile Border",
		Lat: 9.35, Lng: 30.85, Radius: 40000,
		RiskLevel: types.RiskMedium, RiskScore: 58,
		ConflictType:        "Territorial encroachment",
		EthnicitiesInvolved: []string{"Nuer", "Dinka"},
		RecentIncidents:     5, LastIncidentDate: "2024-09-10",
		Description: "Border tension area. Nuer-Dinka historical conflict zone. Currently moderate due to available water.",
		PredictionFactors: map[string]float64{
			"herd_convergence": 0.5, "water_scarcity": 0.4,
			"ndvi_decline": 0.55, "historical_violence": 0.8,
		},
	},
	{
		ID: "CZ5", Name: "Aweil-Lol River Crossing",
		Lat: 8.85, Lng: 27.55, Radius: 28000,
		RiskLevel: types.RiskMedium, RiskScore: 52,
		ConflictType:        "Seasonal migration conflict",
		EthnicitiesInvolved: []string{"Dinka", "Baggara (cross-border)"},
		RecentIncidents:     4, LastIncidentDate: "2024-08-15",
		Description: "Cross-border tension with Sudan. Seasonal Baggara cattle entering from north.",
		PredictionFactors: map[string]float64{
			"herd_convergence": 0.6, "water_scarcity": 0.55,
			"ndvi_decline": 0.7, "historical_violence": 0.5,
		},
	},
	{
		ID: "CZ6", Name: "Rumbek-Lakes Convergence",
		Lat: 6.75, Lng: 29.75, Radius: 25000,
		RiskLevel: types.RiskLow, RiskScore: 35,
		ConflictType:        "Resource competition",
		EthnicitiesInvolved: []string{"Dinka Agar"},
		RecentIncidents:     2, LastIncidentDate: "2024-06-20",
		Description: "Generally stable area with good grazing. Minor disputes during peak dry season only.",
		PredictionFactors: map[string]float64{
			"herd_convergence": 0.3, "water_scarcity": 0.25,
			"ndvi_decline": 0.2, "historical_violence": 0.4,
		},
	},
	{
		ID: "CZ7", Name: "Malakal-White Nile",
		Lat: 9.55, Lng: 31.55, Radius: 32000,
		RiskLevel: types.RiskHigh, RiskScore: 72,
		ConflictType:        "Displacement-related",
		EthnicitiesInvolved: []string{"Shilluk", "Nuer", "Dinka"},
		RecentIncidents:     15, LastIncidentDate: "2024-12-01",
		Description: "IDP presence complicates cattle access. Three-way ethnic tension. Armed group activity reported.",
		PredictionFactors: map[string]float64{
			"herd_convergence": 0.65, "water_scarcity": 0.5,
			"ndvi_decline": 0.6, "historical_violence": 0.85,
		},
	},
	{
		ID: "CZ8", Name: "Terekeka-Mundari Lands",
		Lat: 5.55, Lng: 31.65, Radius: 22000,
		RiskLevel: types.RiskLow, RiskScore: 28,
		ConflictType:        "Minor disputes",
		EthnicitiesInvolved: []string{"Mundari", "Bari"},
		RecentIncidents:     1, LastIncidentDate: "2024-04-10",
		Description: "Relatively peaceful. Mundari cattle camps well-established. Good vegetation year-round.",
		PredictionFactors: map[string]float64{
			"herd_convergence": 0.2, "water_scarcity": 0.15,
			"ndvi_decline": 0.1, "historical_violence": 0.3,
		},
	},
}

// ZoneByID returns the zone with the given ID, or false if unknown.
func ZoneByID(id string) (types.Zone, bool) {
	for _, z := range ConflictZones {
		if z.ID == id {
			return z, true
		}
	}
	return types.Zone{}, false
}
