package sensor

import "encoding/json"

// MetricFields is the fixed metric list requested from the sensor API.
var MetricFields = []string{
	"temperature",
	"humidity",
	"soil_moisture",
	"soil_ph",
	"illuminance",
	"co2",
	"wind_speed",
	"wind_direction",
	"rainfall",
	"pressure",
	"battery",
}

// snapshotsResponse is the body of GET /api/v1/snapshots.
type snapshotsResponse struct {
	Data []Snapshot `json:"data"`
}

// Snapshot is one telemetry record. Numeric values stay as json.Number so they
// render verbatim, without unit conversion or reformatting.
type Snapshot struct {
	Station       string      `json:"station"`
	RecordedAt    string      `json:"recorded_at"`
	Temperature   json.Number `json:"temperature"`
	Humidity      json.Number `json:"humidity"`
	SoilMoisture  json.Number `json:"soil_moisture"`
	SoilPH        json.Number `json:"soil_ph"`
	Illuminance   json.Number `json:"illuminance"`
	CO2           json.Number `json:"co2"`
	WindSpeed     json.Number `json:"wind_speed"`
	WindDirection string      `json:"wind_direction"`
	Rainfall      json.Number `json:"rainfall"`
	Pressure      json.Number `json:"pressure"`
	Battery       json.Number `json:"battery"`
}

// MetricRow is one label/value pair for display.
type MetricRow struct {
	Label string
	Value string
}

// Rows enumerates the snapshot's metrics in the fixed field order.
func (s Snapshot) Rows() []MetricRow {
	return []MetricRow{
		{Label: "溫度", Value: s.Temperature.String()},
		{Label: "濕度", Value: s.Humidity.String()},
		{Label: "土壤水分", Value: s.SoilMoisture.String()},
		{Label: "土壤酸鹼值", Value: s.SoilPH.String()},
		{Label: "光照", Value: s.Illuminance.String()},
		{Label: "二氧化碳", Value: s.CO2.String()},
		{Label: "風速", Value: s.WindSpeed.String()},
		{Label: "風向", Value: s.WindDirection},
		{Label: "雨量", Value: s.Rainfall.String()},
		{Label: "氣壓", Value: s.Pressure.String()},
		{Label: "電量", Value: s.Battery.String()},
	}
}
