package schema

// MunicipalityTable represents the 'municipality' table
type MunicipalityTable struct {
	Table                string
	ID                   string
	RegionCode           string
	ProvinceCode         string
	MunicipalityCode     string
	MunicipalitySigle    string
	MunicipalityName     string
	RegionName           string
	CadastralCode        string
	TerritorialUnitType  string
	CapitalsMunicipality string
	Latitude             string
	Longitude            string
	Altitude             string
}

// Municipality is the schema definition for the municipality reference table
var Municipality = MunicipalityTable{
	Table:                "municipality",
	ID:                   "id",
	RegionCode:           "region_code",
	ProvinceCode:         "province_code",
	MunicipalityCode:     "municipality_code",
	MunicipalitySigle:    "municipality_sigle",
	MunicipalityName:     "municipality_name",
	RegionName:           "region_name",
	CadastralCode:        "cadastral_code",
	TerritorialUnitType:  "territorial_unit_type",
	CapitalsMunicipality: "capitals_municipality",
	Latitude:             "latitude",
	Longitude:            "longitude",
	Altitude:             "altitude",
}

func (t MunicipalityTable) Columns() []string {
	return []string{
		t.ID, t.RegionCode, t.ProvinceCode, t.MunicipalityCode, t.MunicipalitySigle,
		t.MunicipalityName, t.RegionName, t.CadastralCode, t.TerritorialUnitType,
		t.CapitalsMunicipality, t.Latitude, t.Longitude, t.Altitude,
	}
}
