package models

// Team holds the reference data for one constructor entry.
type Team struct {
	Drivers        []string `json:"drivers"`
	Car            string   `json:"car"`
	Principal      string   `json:"principal"`
	Engine         string   `json:"engine"`
	Founded        int      `json:"founded"`
	Championships  int      `json:"championships"`
	Base           string   `json:"base"`
	Color          string   `json:"color"`
	SecondaryColor string   `json:"secondaryColor"`
	FullName       string   `json:"fullName"`
	ShortName      string   `json:"shortName"`
}

// ConstructorStanding is one row of the constructors' championship table.
type ConstructorStanding struct {
	Position int      `json:"position"`
	Team     string   `json:"team"`
	Points   int      `json:"points"`
	Wins     int      `json:"wins"`
	Poles    int      `json:"poles"`
	Podiums  int      `json:"podiums"`
	Drivers  []string `json:"drivers"`
	Color    string   `json:"color"`
}
