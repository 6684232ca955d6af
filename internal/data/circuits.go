// Package data holds the static reference tables the prediction service
// scores against: the race calendar, team catalog, championship standings,
// driver/team/circuit profiles and the scoring rulesets. Everything here is
// populated at init and never mutated, so it is safe to read from concurrent
// request handlers without synchronization.
package data

import "github.com/f1racepredictor/race-api/internal/models"

// circuits is the 2025 calendar in running order.
var circuits = []models.Circuit{
	{Name: "Albert Park Grand Prix Circuit", Country: "Australia", City: "Melbourne", Length: 5.278, Turns: 14, DRSZones: 3, LapRecord: "1:20.235", Surface: "Asphalt", Direction: "Clockwise"},
	{Name: "Suzuka International Racing Course", Country: "Japan", City: "Suzuka", Length: 5.807, Turns: 18, DRSZones: 2, LapRecord: "1:30.983", Surface: "Asphalt", Direction: "Clockwise"},
	{Name: "Shanghai International Circuit", Country: "China", City: "Shanghai", Length: 5.451, Turns: 16, DRSZones: 2, LapRecord: "1:32.238", Surface: "Asphalt", Direction: "Clockwise"},
	{Name: "Bahrain International Circuit", Country: "Bahrain", City: "Sakhir", Length: 5.412, Turns: 15, DRSZones: 3, LapRecord: "1:31.447", Surface: "Asphalt", Direction: "Clockwise"},
	{Name: "Jeddah Corniche Circuit", Country: "Saudi Arabia", City: "Jeddah", Length: 6.174, Turns: 27, DRSZones: 3, LapRecord: "1:30.734", Surface: "Asphalt", Direction: "Anti-clockwise"},
	{Name: "Miami International Autodrome", Country: "United States", City: "Miami", Length: 5.41, Turns: 19, DRSZones: 3, LapRecord: "1:31.361", Surface: "Asphalt", Direction: "Anti-clockwise"},
	{Name: "Autodromo Enzo e Dino Ferrari", Country: "Italy", City: "Imola", Length: 4.909, Turns: 19, DRSZones: 2, LapRecord: "1:15.484", Surface: "Asphalt", Direction: "Anti-clockwise"},
	{Name: "Circuit de Monaco", Country: "Monaco", City: "Monte Carlo", Length: 3.337, Turns: 19, DRSZones: 1, LapRecord: "1:12.909", Surface: "Asphalt", Direction: "Clockwise"},
	{Name: "Circuit Gilles Villeneuve", Country: "Canada", City: "Montreal", Length: 4.361, Turns: 14, DRSZones: 3, LapRecord: "1:13.078", Surface: "Asphalt", Direction: "Clockwise"},
	{Name: "Circuit de Barcelona-Catalunya", Country: "Spain", City: "Barcelona", Length: 4.675, Turns: 16, DRSZones: 2, LapRecord: "1:16.330", Surface: "Asphalt", Direction: "Clockwise"},
	{Name: "Red Bull Ring", Country: "Austria", City: "Spielberg", Length: 4.318, Turns: 10, DRSZones: 3, LapRecord: "1:05.619", Surface: "Asphalt", Direction: "Clockwise"},
	{Name: "Silverstone Circuit", Country: "United Kingdom", City: "Silverstone", Length: 5.891, Turns: 18, DRSZones: 2, LapRecord: "1:27.097", Surface: "Asphalt", Direction: "Clockwise"},
	{Name: "Hungaroring", Country: "Hungary", City: "Budapest", Length: 4.381, Turns: 14, DRSZones: 2, LapRecord: "1:16.627", Surface: "Asphalt", Direction: "Clockwise"},
	{Name: "Circuit de Spa-Francorchamps", Country: "Belgium", City: "Spa", Length: 7.004, Turns: 19, DRSZones: 2, LapRecord: "1:46.286", Surface: "Asphalt", Direction: "Clockwise"},
	{Name: "Circuit Park Zandvoort", Country: "Netherlands", City: "Zandvoort", Length: 4.259, Turns: 14, DRSZones: 2, LapRecord: "1:11.097", Surface: "Asphalt", Direction: "Clockwise"},
	{Name: "Autodromo Nazionale di Monza", Country: "Italy", City: "Monza", Length: 5.793, Turns: 11, DRSZones: 3, LapRecord: "1:21.046", Surface: "Asphalt", Direction: "Clockwise"},
	{Name: "Baku City Circuit", Country: "Azerbaijan", City: "Baku", Length: 6.003, Turns: 20, DRSZones: 2, LapRecord: "1:43.009", Surface: "Asphalt", Direction: "Anti-clockwise"},
	{Name: "Marina Bay Street Circuit", Country: "Singapore", City: "Singapore", Length: 5.063, Turns: 23, DRSZones: 2, LapRecord: "1:35.867", Surface: "Asphalt", Direction: "Anti-clockwise"},
	{Name: "Circuit of the Americas", Country: "United States", City: "Austin", Length: 5.513, Turns: 20, DRSZones: 2, LapRecord: "1:36.169", Surface: "Asphalt", Direction: "Anti-clockwise"},
	{Name: "Autodromo Hermanos Rodriguez", Country: "Mexico", City: "Mexico City", Length: 4.304, Turns: 17, DRSZones: 3, LapRecord: "1:17.774", Surface: "Asphalt", Direction: "Clockwise"},
	{Name: "Autodromo Jose Carlos Pace", Country: "Brazil", City: "São Paulo", Length: 4.309, Turns: 15, DRSZones: 2, LapRecord: "1:10.540", Surface: "Asphalt", Direction: "Anti-clockwise"},
	{Name: "Las Vegas Strip Circuit", Country: "United States", City: "Las Vegas", Length: 6.201, Turns: 17, DRSZones: 2, LapRecord: "1:35.490", Surface: "Asphalt", Direction: "Anti-clockwise"},
	{Name: "Losail International Circuit", Country: "Qatar", City: "Lusail", Length: 5.419, Turns: 16, DRSZones: 2, LapRecord: "1:24.319", Surface: "Asphalt", Direction: "Clockwise"},
	{Name: "Yas Marina Circuit", Country: "United Arab Emirates", City: "Abu Dhabi", Length: 5.281, Turns: 16, DRSZones: 2, LapRecord: "1:26.103", Surface: "Asphalt", Direction: "Anti-clockwise"},
}

// Circuits returns the full calendar. Callers must treat the slice as
// read-only.
func Circuits() []models.Circuit {
	return circuits
}

// ambientTemperatures maps circuit name to the [min,max] air temperature
// band (°C) used when generating race conditions.
var ambientTemperatures = map[string][2]int{
	"Albert Park Grand Prix Circuit":     {18, 28},
	"Suzuka International Racing Course": {15, 25},
	"Shanghai International Circuit":     {12, 22},
	"Bahrain International Circuit":      {25, 35},
	"Jeddah Corniche Circuit":            {28, 38},
	"Miami International Autodrome":      {26, 35},
	"Autodromo Enzo e Dino Ferrari":      {16, 26},
	"Circuit de Monaco":                  {18, 28},
	"Circuit Gilles Villeneuve":          {12, 22},
	"Circuit de Barcelona-Catalunya":     {16, 26},
	"Red Bull Ring":                      {14, 24},
	"Silverstone Circuit":                {12, 22},
	"Hungaroring":                        {18, 30},
	"Circuit de Spa-Francorchamps":       {10, 20},
	"Circuit Park Zandvoort":             {12, 22},
	"Autodromo Nazionale di Monza":       {16, 26},
	"Baku City Circuit":                  {20, 30},
	"Marina Bay Street Circuit":          {26, 32},
	"Circuit of the Americas":            {18, 28},
	"Autodromo Hermanos Rodriguez":       {16, 24},
	"Autodromo Jose Carlos Pace":         {18, 28},
	"Las Vegas Strip Circuit":            {10, 25},
	"Losail International Circuit":       {22, 32},
	"Yas Marina Circuit":                 {24, 32},
}

// TemperatureRange returns the expected air temperature band for a circuit.
// Unknown circuits fall back to a temperate 20-30°C.
func TemperatureRange(circuit string) (min, max int) {
	if r, ok := ambientTemperatures[circuit]; ok {
		return r[0], r[1]
	}
	return 20, 30
}
