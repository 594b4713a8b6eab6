package staticdata

// HerdRef is one row of the fixed herd reference table. Position, size
// and descriptive fields are constant; WaterDays and NDVI are the
// documented fallback values used when the signal cache holds no live
// reading for the herd's region.
type HerdRef struct {
	ID        string
	Name      string
	Lat       float64
	Lng       float64
	Heads     int
	Region    string
	RegionKey string // grazing-region key used for cache lookups
	Trend     string
	Speed     float64
	WaterDays int
	NDVI      float64
	Ethnicity string
	Note      string
}

// HerdRefs is the reference herd table, derived from multi-source
// triangulation (satellite NDVI/methane anomalies, UNMISS and WFP ground
// reports, historical migration corridors).
var HerdRefs = []HerdRef{
	{
		ID: "A", Name: "Herd Alfa", Lat: 8.32, Lng: 33.18, Heads: 8200,
		Region: "Jonglei — Sobat Valley", RegionKey: "Jonglei",
		Trend: "NE", Speed: 11, WaterDays: 3, NDVI: 0.41, Ethnicity: "Nuer",
		Note: "Moving toward Sobat River. Rapid pace suggests water stress upstream.",
	},
	{
		ID: "B", Name: "Herd Bravo", Lat: 9.24, Lng: 29.76, Heads: 5400,
		Region: "Unity State — Rubkona", RegionKey: "Unity State",
		Trend: "S", Speed: 9, WaterDays: 1, NDVI: 0.52, Ethnicity: "Nuer",
		Note: "Currently near permanent water. Slow southward drift, likely following fresh pasture.",
	},
	{
		ID: "C", Name: "Herd Charlie", Lat: 7.28, Lng: 28.68, Heads: 11800,
		Region: "Warrap — Tonj East", RegionKey: "Bahr el Ghazal",
		Trend: "E", Speed: 7, WaterDays: 5, NDVI: 0.38, Ethnicity: "Dinka",
		Note: "Largest herd. Eastward movement consistent with seasonal pattern. Watching water days.",
	},
	{
		ID: "D", Name: "Herd Delta", Lat: 9.54, Lng: 31.66, Heads: 6700,
		Region: "Upper Nile — Malakal", RegionKey: "Upper Nile",
		Trend: "SW", Speed: 8, WaterDays: 4, NDVI: 0.45, Ethnicity: "Shilluk",
		Note: "Shifting southwest. NDVI decline in current zone is likely driver.",
	},
	{
		ID: "E", Name: "Herd Echo", Lat: 6.80, Lng: 33.12, Heads: 14200,
		Region: "Jonglei — Pibor", RegionKey: "Jonglei",
		Trend: "N", Speed: 14, WaterDays: 2, NDVI: 0.31, Ethnicity: "Murle",
		Note: "Fastest-moving herd. Low NDVI in current zone. Moving north toward better pasture.",
	},
	{
		ID: "F", Name: "Herd Foxtrot", Lat: 6.82, Lng: 29.68, Heads: 4300,
		Region: "Lakes — Rumbek", RegionKey: "Lakes State",
		Trend: "NE", Speed: 5, WaterDays: 6, NDVI: 0.60, Ethnicity: "Dinka",
		Note: "Stable. Good NDVI. Slow seasonal drift within normal range.",
	},
	{
		ID: "G", Name: "Herd Golf", Lat: 5.48, Lng: 31.78, Heads: 3800,
		Region: "Equatoria — Terekeka", RegionKey: "Equatoria",
		Trend: "N", Speed: 6, WaterDays: 7, NDVI: 0.65, Ethnicity: "Mundari",
		Note: "Excellent pasture. Northward beginning of dry season movement. Low pressure.",
	},
	{
		ID: "H", Name: "Herd Hotel", Lat: 8.78, Lng: 27.40, Heads: 9100,
		Region: "Bahr el Ghazal — Aweil", RegionKey: "Bahr el Ghazal",
		Trend: "S", Speed: 11, WaterDays: 3, NDVI: 0.35, Ethnicity: "Dinka",
		Note: "Unusual southward direction. Possibly displaced by flooding to north.",
	},
}
