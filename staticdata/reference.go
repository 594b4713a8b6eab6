package staticdata

import "go-bovine/types"

// WaterSources are the named water points herds depend on.
var WaterSources = []types.WaterSource{
	{Name: "Sobat River", Lat: 8.0, Lng: 32.5, Type: "Perennial river", Reliability: 0.90},
	{Name: "White Nile — Unity", Lat: 9.2, Lng: 30.6, Type: "Perennial river", Reliability: 0.95},
	{Name: "Tonj River", Lat: 7.5, Lng: 29.2, Type: "Seasonal river", Reliability: 0.65},
	{Name: "Boma Plateau Streams", Lat: 6.5, Lng: 31.3, Type: "Seasonal", Reliability: 0.40},
	{Name: "Lol River", Lat: 9.0, Lng: 27.8, Type: "Seasonal river", Reliability: 0.70},
	{Name: "Jur River", Lat: 7.9, Lng: 28.0, Type: "Seasonal river", Reliability: 0.60},
	{Name: "Sudd Wetlands Edge", Lat: 6.8, Lng: 30.4, Type: "Permanent wetland", Reliability: 0.85},
}

// GrazingRegions are the monitored grazing regions. Lat/Lng is the
// centroid used for upstream weather and soil queries; NDVI is the
// historical baseline used when no live estimate exists.
var GrazingRegions = []types.GrazingRegion{
	{Name: "Equatoria", Lat: 5.5, Lng: 31.6, NDVI: 0.63, Water: "Adequate", Trend: "Stable", Pressure: "Low"},
	{Name: "Lakes State", Lat: 6.8, Lng: 29.7, NDVI: 0.57, Water: "Good", Trend: "Stable", Pressure: "Low"},
	{Name: "Bahr el Ghazal", Lat: 8.6, Lng: 27.8, NDVI: 0.48, Water: "Seasonal", Trend: "Declining", Pressure: "Medium"},
	{Name: "Jonglei", Lat: 7.2, Lng: 32.5, NDVI: 0.38, Water: "Stressed", Trend: "Declining", Pressure: "High"},
	{Name: "Unity State", Lat: 9.2, Lng: 29.9, NDVI: 0.43, Water: "Seasonal", Trend: "Mixed", Pressure: "Medium"},
	{Name: "Upper Nile", Lat: 9.5, Lng: 31.8, NDVI: 0.34, Water: "Limited", Trend: "Declining", Pressure: "High"},
}

// GrazingRegionByName returns the region row for a key, or false.
func GrazingRegionByName(name string) (types.GrazingRegion, bool) {
	for _, r := range GrazingRegions {
		if r.Name == name {
			return r, true
		}
	}
	return types.GrazingRegion{}, false
}

// MigrationCorridors are historical seasonal movement routes as
// lat/lng polylines.
var MigrationCorridors = [][][2]float64{
	{{7.0, 33.0}, {7.5, 32.8}, {8.0, 32.5}, {8.5, 32.2}, {9.0, 31.5}, {9.5, 31.0}},
	{{8.8, 27.4}, {8.6, 28.5}, {8.3, 29.1}, {8.5, 29.8}, {9.1, 29.8}},
	{{6.8, 29.6}, {7.0, 30.2}, {7.3, 30.8}, {7.4, 31.4}, {7.5, 32.0}},
	{{5.4, 31.8}, {6.2, 31.5}, {6.8, 31.2}, {7.5, 31.0}},
	{{7.2, 28.0}, {7.6, 28.5}, {8.0, 29.0}, {8.4, 29.5}},
}

// NDVIZones are static vegetation overlay regions for map display.
var NDVIZones = []types.NDVIZone{
	{Lat: 6.5, Lng: 31.5, Radius: 120000, NDVI: 0.65, Label: "High vegetation — Equatoria"},
	{Lat: 7.2, Lng: 29.8, Radius: 100000, NDVI: 0.58, Label: "Good pasture — Lakes/Bahr el Ghazal"},
	{Lat: 8.0, Lng: 32.0, Radius: 90000, NDVI: 0.42, Label: "Moderate — Jonglei north"},
	{Lat: 9.0, Lng: 30.5, Radius: 80000, NDVI: 0.38, Label: "Declining — Unity State"},
	{Lat: 9.5, Lng: 31.5, Radius: 70000, NDVI: 0.33, Label: "Dry — Upper Nile"},
	{Lat: 6.9, Lng: 33.2, Radius: 85000, NDVI: 0.30, Label: "Stressed — Pibor area"},
}

// HistoricalConflicts is the incident record used for backtesting.
var HistoricalConflicts = []types.HistoricalConflict{
	{Date: "2024-12-15", Location: "Pibor", Lat: 6.80, Lng: 33.10, Type: "Cattle raid", Casualties: 45, CattleStolen: 2500, Ethnicities: []string{"Murle", "Nuer"}},
	{Date: "2024-12-01", Location: "Malakal", Lat: 9.53, Lng: 31.65, Type: "Armed clash", Casualties: 12, CattleStolen: 800, Ethnicities: []string{"Shilluk", "Nuer"}},
	{Date: "2024-11-28", Location: "Tonj East", Lat: 7.30, Lng: 28.90, Type: "Grazing dispute", Casualties: 8, CattleStolen: 450, Ethnicities: []string{"Dinka Agar", "Dinka Rek"}},
	{Date: "2024-11-15", Location: "Pibor", Lat: 6.75, Lng: 33.00, Type: "Cattle raid", Casualties: 23, CattleStolen: 1800, Ethnicities: []string{"Murle", "Dinka"}},
	{Date: "2024-10-20", Location: "Sobat River", Lat: 8.50, Lng: 32.70, Type: "Water conflict", Casualties: 6, CattleStolen: 200, Ethnicities: []string{"Nuer", "Shilluk"}},
	{Date: "2024-09-10", Location: "Bentiu", Lat: 9.25, Lng: 29.80, Type: "Territorial", Casualties: 15, CattleStolen: 950, Ethnicities: []string{"Nuer", "Dinka"}},
	{Date: "2024-08-15", Location: "Aweil", Lat: 8.77, Lng: 27.40, Type: "Cross-border raid", Casualties: 10, CattleStolen: 600, Ethnicities: []string{"Dinka", "Baggara"}},
	{Date: "2024-07-22", Location: "Pibor", Lat: 6.90, Lng: 33.15, Type: "Cattle raid", Casualties: 67, CattleStolen: 3200, Ethnicities: []string{"Murle", "Nuer"}},
	{Date: "2024-06-20", Location: "Rumbek", Lat: 6.80, Lng: 29.70, Type: "Minor dispute", Casualties: 2, CattleStolen: 50, Ethnicities: []string{"Dinka Agar"}},
	{Date: "2024-05-05", Location: "Jonglei", Lat: 7.20, Lng: 32.50, Type: "Cattle raid", Casualties: 35, CattleStolen: 1500, Ethnicities: []string{"Nuer", "Dinka"}},
}

// CuratedNews is the fallback article set served when the news upstream
// is unreachable or no API key is configured. Based on real events.
var CuratedNews = []types.NewsItem{
	{
		Title: "UN Reports Rising Cattle Raids in Jonglei State", Source: "UN OCHA",
		URL: "https://reliefweb.int/country/ssd", PublishedAt: "2024-12-20T10:00:00Z",
		Summary:        "UNMISS peacekeepers deployed to Pibor County following reports of increased cattle raiding between Murle and Nuer communities. An estimated 2,500 cattle were stolen in recent incidents.",
		RelevanceScore: 0.95, Location: "Jonglei, Pibor",
		Keywords: []string{"cattle raid", "Murle", "Nuer", "Pibor", "UNMISS"},
		Status:   types.FreshStatic,
	},
	{
		Title: "Dry Season Triggers Early Cattle Migration in Lakes State", Source: "Radio Tamazuj",
		URL: "https://radiotamazuj.org", PublishedAt: "2024-12-18T08:30:00Z",
		Summary:        "Pastoralists in Lakes State report below-average rainfall forcing earlier than usual cattle movements. Local authorities warn of potential conflicts at water points.",
		RelevanceScore: 0.88, Location: "Lakes State, Rumbek",
		Keywords: []string{"dry season", "migration", "water", "Lakes State"},
		Status:   types.FreshStatic,
	},
	{
		Title: "Peace Committee Meeting in Warrap to Address Grazing Disputes", Source: "Eye Radio",
		URL: "https://eyeradio.org", PublishedAt: "2024-12-15T14:00:00Z",
		Summary:        "Traditional leaders from Dinka Agar and Dinka Rek communities meet in Tonj to establish grazing boundaries ahead of peak dry season.",
		RelevanceScore: 0.82, Location: "Warrap, Tonj",
		Keywords: []string{"peace committee", "Dinka", "grazing", "Tonj"},
		Status:   types.FreshStatic,
	},
	{
		Title: "Climate Change Disrupting Traditional Cattle Corridors", Source: "IGAD Climate Center",
		URL: "https://www.icpac.net", PublishedAt: "2024-12-12T09:00:00Z",
		Summary:        "New IGAD report finds traditional cattle migration routes in South Sudan increasingly unreliable due to shifting rainfall patterns and vegetation changes.",
		RelevanceScore: 0.78, Location: "South Sudan",
		Keywords: []string{"climate change", "migration corridors", "IGAD", "rainfall"},
		Status:   types.FreshStatic,
	},
	{
		Title: "Humanitarian Agencies Warn of Food Insecurity in Upper Nile", Source: "WFP",
		URL: "https://www.wfp.org/countries/south-sudan", PublishedAt: "2024-12-10T11:30:00Z",
		Summary:        "World Food Programme reports cattle deaths and reduced milk production in Upper Nile due to poor pasture conditions. 250,000 people facing crisis-level food insecurity.",
		RelevanceScore: 0.85, Location: "Upper Nile, Malakal",
		Keywords: []string{"food insecurity", "WFP", "cattle", "Upper Nile"},
		Status:   types.FreshStatic,
	},
	{
		Title: "Satellite Data Shows Vegetation Decline Across Jonglei", Source: "FEWS NET",
		URL: "https://fews.net/east-africa/south-sudan", PublishedAt: "2024-12-08T16:00:00Z",
		Summary:        "FEWS NET analysis of NDVI data indicates below-normal vegetation conditions across eastern South Sudan, with Jonglei and Eastern Equatoria most affected.",
		RelevanceScore: 0.92, Location: "Jonglei, Eastern Equatoria",
		Keywords: []string{"NDVI", "vegetation", "FEWS NET", "satellite"},
		Status:   types.FreshStatic,
	},
	{
		Title: "Youth Armed Groups Complicate Cattle Recovery Efforts", Source: "Sudan Tribune",
		URL: "https://sudantribune.com", PublishedAt: "2024-12-05T07:45:00Z",
		Summary:        "Local authorities report difficulties recovering stolen cattle due to involvement of armed youth groups. Community disarmament programs showing limited progress.",
		RelevanceScore: 0.80, Location: "Jonglei",
		Keywords: []string{"armed groups", "cattle theft", "disarmament", "youth"},
		Status:   types.FreshStatic,
	},
	{
		Title: "Cross-Border Cattle Movement from Sudan Increases Tensions", Source: "Ayin Network",
		URL: "https://3ayin.com", PublishedAt: "2024-12-02T13:00:00Z",
		Summary:        "Reports of Baggara herders crossing into Northern Bahr el Ghazal earlier than usual. Local Dinka communities express concern over grazing land competition.",
		RelevanceScore: 0.75, Location: "Northern Bahr el Ghazal, Aweil",
		Keywords: []string{"cross-border", "Baggara", "Dinka", "Sudan"},
		Status:   types.FreshStatic,
	},
}
