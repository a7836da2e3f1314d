// Copyright (c) 2026 Municipio. All rights reserved.

/*
Package municipality implements the Italian municipality reference-data domain.

It exposes two operations over a single flat table: list every stored
municipality, and create or update one record. Outcomes flow to the
transport layer as either.Either values carrying the domerr taxonomy.
*/
package municipality

// Municipality is the storage entity for one municipality record.
//
// The identifier is assigned once at creation and never changes. The table
// is flat reference data: no foreign keys, no relationships.
type Municipality struct {
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
	Latitude             float64
	Longitude            float64
	Altitude             float64
}

// RequestDto is the wire shape accepted by the create endpoint.
type RequestDto struct {
	RegionCode           string  `json:"regionCode"`
	ProvinceCode         string  `json:"provinceCode"`
	MunicipalityCode     string  `json:"municipalityCode"`
	MunicipalitySigle    string  `json:"municipalitySigle"`
	MunicipalityName     string  `json:"municipalityName"`
	RegionName           string  `json:"regionName"`
	CadastralCode        string  `json:"cadastralCode"`
	TerritorialUnitType  string  `json:"territorialUnitType"`
	CapitalsMunicipality string  `json:"capitalsMunicipality"`
	Latitude             float64 `json:"latitude"`
	Longitude            float64 `json:"longitude"`
	Altitude             float64 `json:"altitude"`
}

// ResponseDto is the wire shape returned by the list endpoint.
//
// The identifier is internal and deliberately not exposed.
type ResponseDto struct {
	RegionCode           string  `json:"regionCode"`
	ProvinceCode         string  `json:"provinceCode"`
	MunicipalityCode     string  `json:"municipalityCode"`
	MunicipalitySigle    string  `json:"municipalitySigle"`
	MunicipalityName     string  `json:"municipalityName"`
	RegionName           string  `json:"regionName"`
	CadastralCode        string  `json:"cadastralCode"`
	TerritorialUnitType  string  `json:"territorialUnitType"`
	CapitalsMunicipality string  `json:"capitalsMunicipality"`
	Latitude             float64 `json:"latitude"`
	Longitude            float64 `json:"longitude"`
	Altitude             float64 `json:"altitude"`
}

// SaveResponseDto is the fixed confirmation payload for a successful write.
type SaveResponseDto struct {
	Message string `json:"message"`
}

// # Converters
//
// Pure field mapping between wire DTOs and the storage entity.

// toEntity maps a request DTO onto a new entity. The identifier is left
// empty; the gateway assigns it at persist time.
func toEntity(dto RequestDto) *Municipality {
	return &Municipality{
		RegionCode:           dto.RegionCode,
		ProvinceCode:         dto.ProvinceCode,
		MunicipalityCode:     dto.MunicipalityCode,
		MunicipalitySigle:    dto.MunicipalitySigle,
		MunicipalityName:     dto.MunicipalityName,
		RegionName:           dto.RegionName,
		CadastralCode:        dto.CadastralCode,
		TerritorialUnitType:  dto.TerritorialUnitType,
		CapitalsMunicipality: dto.CapitalsMunicipality,
		Latitude:             dto.Latitude,
		Longitude:            dto.Longitude,
		Altitude:             dto.Altitude,
	}
}

// toResponseDto maps a stored entity to its output shape.
func toResponseDto(entity *Municipality) ResponseDto {
	return ResponseDto{
		RegionCode:           entity.RegionCode,
		ProvinceCode:         entity.ProvinceCode,
		MunicipalityCode:     entity.MunicipalityCode,
		MunicipalitySigle:    entity.MunicipalitySigle,
		MunicipalityName:     entity.MunicipalityName,
		RegionName:           entity.RegionName,
		CadastralCode:        entity.CadastralCode,
		TerritorialUnitType:  entity.TerritorialUnitType,
		CapitalsMunicipality: entity.CapitalsMunicipality,
		Latitude:             entity.Latitude,
		Longitude:            entity.Longitude,
		Altitude:             entity.Altitude,
	}
}
