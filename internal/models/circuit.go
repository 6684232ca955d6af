package models

// Circuit describes one track on the race calendar.
type Circuit struct {
	Name      string  `json:"name"`
	Country   string  `json:"country"`
	City      string  `json:"city"`
	Length    float64 `json:"length"`
	Turns     int     `json:"turns"`
	DRSZones  int     `json:"drs_zones"`
	LapRecord string  `json:"lap_record"`
	Surface   string  `json:"surface"`
	Direction string  `json:"direction"`
}
