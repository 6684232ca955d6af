package data

import "github.com/f1racepredictor/race-api/internal/models"

// teams is the 2025 grid keyed by the constructor name used in prediction
// requests.
var teams = map[string]models.Team{
	"Red Bull Racing": {
		Drivers:        []string{"Max Verstappen", "Yuki Tsunoda"},
		Car:            "RB21",
		Principal:      "Christian Horner",
		Engine:         "Honda RBPT",
		Founded:        2005,
		Championships:  6,
		Base:           "Milton Keynes, UK",
		Color:          "#0600EF",
		SecondaryColor: "#DC143C",
		FullName:       "Oracle Red Bull Racing",
		ShortName:      "Red Bull",
	},
	"Ferrari": {
		Drivers:        []string{"Charles Leclerc", "Lewis Hamilton"},
		Car:            "SF-25",
		Principal:      "Frédéric Vasseur",
		Engine:         "Ferrari",
		Founded:        1929,
		Championships:  16,
		Base:           "Maranello, Italy",
		Color:          "#DC0000",
		SecondaryColor: "#FFF200",
		FullName:       "Scuderia Ferrari",
		ShortName:      "Ferrari",
	},
	"Mercedes": {
		Drivers:        []string{"George Russell", "Kimi Antonelli"},
		Car:            "W16",
		Principal:      "Toto Wolff",
		Engine:         "Mercedes",
		Founded:        1954,
		Championships:  8,
		Base:           "Brackley, UK",
		Color:          "#00D2BE",
		SecondaryColor: "#000000",
		FullName:       "Mercedes-AMG Petronas F1 Team",
		ShortName:      "Mercedes",
	},
	"McLaren": {
		Drivers:        []string{"Lando Norris", "Oscar Piastri"},
		Car:            "MCL39",
		Principal:      "Andrea Stella",
		Engine:         "Mercedes",
		Founded:        1963,
		Championships:  8,
		Base:           "Woking, UK",
		Color:          "#FF8700",
		SecondaryColor: "#000000",
		FullName:       "McLaren Formula 1 Team",
		ShortName:      "McLaren",
	},
	"Aston Martin": {
		Drivers:        []string{"Fernando Alonso", "Lance Stroll"},
		Car:            "AMR25",
		Principal:      "Mike Krack",
		Engine:         "Mercedes",
		Founded:        2021,
		Championships:  0,
		Base:           "Silverstone, UK",
		Color:          "#006F62",
		SecondaryColor: "#CEDC00",
		FullName:       "Aston Martin Aramco Formula One Team",
		ShortName:      "Aston Martin",
	},
	"Alpine": {
		Drivers:        []string{"Pierre Gasly", "Jack Doohan"},
		Car:            "A525",
		Principal:      "Oliver Oakes",
		Engine:         "Renault",
		Founded:        2021,
		Championships:  0,
		Base:           "Enstone, UK",
		Color:          "#0090FF",
		SecondaryColor: "#FF87BC",
		FullName:       "BWT Alpine F1 Team",
		ShortName:      "Alpine",
	},
	"Williams": {
		Drivers:        []string{"Alexander Albon", "Carlos Sainz Jr."},
		Car:            "FW47",
		Principal:      "James Vowles",
		Engine:         "Mercedes",
		Founded:        1977,
		Championships:  9,
		Base:           "Grove, UK",
		Color:          "#005AFF",
		SecondaryColor: "#FFFFFF",
		FullName:       "Atlassian Williams Racing",
		ShortName:      "Williams",
	},
	"RB": {
		Drivers:        []string{"Liam Lawson", "Isack Hadjar"},
		Car:            "VCARB 01",
		Principal:      "Laurent Mekies",
		Engine:         "Honda RBPT",
		Founded:        2020,
		Championships:  0,
		Base:           "Faenza, Italy",
		Color:          "#6692FF",
		SecondaryColor: "#C8102E",
		FullName:       "Visa Cash App RB Formula One Team",
		ShortName:      "RB",
	},
	"Haas": {
		Drivers:        []string{"Esteban Ocon", "Oliver Bearman"},
		Car:            "VF-25",
		Principal:      "Ayao Komatsu",
		Engine:         "Ferrari",
		Founded:        2016,
		Championships:  0,
		Base:           "Kannapolis, USA",
		Color:          "#FFFFFF",
		SecondaryColor: "#787878",
		FullName:       "MoneyGram Haas F1 Team",
		ShortName:      "Haas",
	},
	"Kick Sauber": {
		Drivers:        []string{"Nico Hülkenberg", "Gabriel Bortoleto"},
		Car:            "C45",
		Principal:      "Alessandro Alunni Bravi",
		Engine:         "Ferrari",
		Founded:        1993,
		Championships:  0,
		Base:           "Hinwil, Switzerland",
		Color:          "#52E252",
		SecondaryColor: "#000000",
		FullName:       "Stake F1 Team Kick Sauber",
		ShortName:      "Kick Sauber",
	},
}

// Teams returns the team catalog keyed by constructor name. Callers must
// treat the map as read-only.
func Teams() map[string]models.Team {
	return teams
}

// constructorStandings is the championship table after round 11 of 24.
var constructorStandings = []models.ConstructorStanding{
	{Position: 1, Team: "McLaren", Points: 417, Wins: 7, Poles: 5, Podiums: 22, Drivers: []string{"Lando Norris", "Oscar Piastri"}, Color: "#FF8700"},
	{Position: 2, Team: "Ferrari", Points: 210, Wins: 5, Poles: 12, Podiums: 19, Drivers: []string{"Charles Leclerc", "Lewis Hamilton"}, Color: "#DC0000"},
	{Position: 3, Team: "Mercedes", Points: 209, Wins: 3, Poles: 3, Podiums: 8, Drivers: []string{"George Russell", "Kimi Antonelli"}, Color: "#00D2BE"},
	{Position: 4, Team: "Red Bull Racing", Points: 162, Wins: 9, Poles: 8, Podiums: 15, Drivers: []string{"Max Verstappen", "Yuki Tsunoda"}, Color: "#0600EF"},
	{Position: 5, Team: "Williams", Points: 55, Wins: 0, Poles: 0, Podiums: 0, Drivers: []string{"Alexander Albon", "Carlos Sainz Jr."}, Color: "#005AFF"},
	{Position: 6, Team: "RB", Points: 36, Wins: 0, Poles: 0, Podiums: 0, Drivers: []string{"Liam Lawson", "Isack Hadjar"}, Color: "#6692FF"},
	{Position: 7, Team: "Haas", Points: 29, Wins: 0, Poles: 0, Podiums: 0, Drivers: []string{"Esteban Ocon", "Oliver Bearman"}, Color: "#FFFFFF"},
	{Position: 8, Team: "Aston Martin", Points: 28, Wins: 0, Poles: 0, Podiums: 1, Drivers: []string{"Fernando Alonso", "Lance Stroll"}, Color: "#006F62"},
	{Position: 9, Team: "Kick Sauber", Points: 26, Wins: 0, Poles: 0, Podiums: 0, Drivers: []string{"Nico Hülkenberg", "Gabriel Bortoleto"}, Color: "#52E252"},
	{Position: 10, Team: "Alpine", Points: 11, Wins: 0, Poles: 0, Podiums: 0, Drivers: []string{"Pierre Gasly", "Franco Colapinto"}, Color: "#0090FF"},
}

// ConstructorStandings returns the championship table sorted by position.
func ConstructorStandings() []models.ConstructorStanding {
	return constructorStandings
}
