package data

// DriverPerformance captures a driver's season-long attributes. Form is the
// average finishing position over recent rounds, so lower is better. QualiGap
// is the average gap to the team's reference lap in seconds.
type DriverPerformance struct {
	Experience int
	Form       float64
	QualiGap   float64
	WinFactor  float64
}

// ConstructorPerformance captures a team's competitiveness this season.
type ConstructorPerformance struct {
	Standing   int
	Efficiency float64
	PaceFactor float64
}

// DriverStrategyProfile describes how a driver approaches a race. The three
// boost fields are explicit rule entries: they replace what used to be
// name-keyed conditionals in the strategy code. A zero boost means "no rule"
// and is normalized to neutral (1.0) on lookup.
type DriverStrategyProfile struct {
	Aggression    float64
	RiskTolerance float64
	Adaptability  float64

	// WetBoost multiplies aggression in wet races.
	WetBoost float64
	// LowGridBoost multiplies aggression in dry races started outside the
	// top five.
	LowGridBoost float64
	// StrategyCallBoost multiplies aggression on circuits where strategy
	// importance exceeds 0.8.
	StrategyCallBoost float64
}

// TeamStrategyProfile describes a pit wall's philosophy. DryAggressionTrim
// and the signature entry are rule entries, normalized the same way as the
// driver boosts.
type TeamStrategyProfile struct {
	Aggression    float64
	RiskTolerance float64
	Innovation    float64

	// DryAggressionTrim multiplies aggression in dry races.
	DryAggressionTrim float64
	// SignatureStrategy, when set, is returned outright with
	// SignatureChance probability in dry races.
	SignatureStrategy string
	SignatureChance   float64
}

// CircuitStrategyProfile describes how much a circuit rewards strategy.
type CircuitStrategyProfile struct {
	OvertakingDifficulty float64
	TireWear             float64
	StrategyImportance   float64
}

var driverPerformance = map[string]DriverPerformance{
	// Championship contenders
	"Max Verstappen":  {Experience: 10, Form: 1.5, QualiGap: -0.4, WinFactor: 1.4},
	"Lewis Hamilton":  {Experience: 18, Form: 3.2, QualiGap: -0.1, WinFactor: 1.3},
	"Charles Leclerc": {Experience: 7, Form: 2.8, QualiGap: -0.2, WinFactor: 1.25},
	"Lando Norris":    {Experience: 6, Form: 2.1, QualiGap: -0.25, WinFactor: 1.2},

	// Regular podium contenders
	"George Russell":   {Experience: 4, Form: 4.1, QualiGap: 0.0, WinFactor: 1.15},
	"Fernando Alonso":  {Experience: 23, Form: 5.3, QualiGap: 0.1, WinFactor: 1.2},
	"Oscar Piastri":    {Experience: 2, Form: 3.4, QualiGap: -0.1, WinFactor: 1.1},
	"Carlos Sainz Jr.": {Experience: 10, Form: 4.8, QualiGap: 0.2, WinFactor: 1.1},

	// Midfield
	"Pierre Gasly":    {Experience: 7, Form: 7.2, QualiGap: 0.3, WinFactor: 1.0},
	"Alexander Albon": {Experience: 5, Form: 8.5, QualiGap: 0.25, WinFactor: 0.95},
	"Nico Hülkenberg": {Experience: 15, Form: 9.2, QualiGap: 0.15, WinFactor: 0.95},
	"Esteban Ocon":    {Experience: 8, Form: 8.7, QualiGap: 0.3, WinFactor: 0.9},

	// Lower midfield
	"Lance Stroll": {Experience: 8, Form: 11.8, QualiGap: 0.4, WinFactor: 0.85},
	"Yuki Tsunoda": {Experience: 4, Form: 10.1, QualiGap: 0.35, WinFactor: 0.9},

	// Rookies
	"Andrea Kimi Antonelli": {Experience: 1, Form: 12.5, QualiGap: 0.6, WinFactor: 0.8},
	"Oliver Bearman":        {Experience: 1, Form: 14.2, QualiGap: 0.7, WinFactor: 0.8},
	"Franco Colapinto":      {Experience: 1, Form: 15.1, QualiGap: 0.8, WinFactor: 0.75},
	"Gabriel Bortoleto":     {Experience: 1, Form: 16.3, QualiGap: 0.9, WinFactor: 0.7},
	"Isack Hadjar":          {Experience: 1, Form: 15.8, QualiGap: 0.85, WinFactor: 0.75},
	"Liam Lawson":           {Experience: 2, Form: 13.9, QualiGap: 0.55, WinFactor: 0.85},
}

// defaultDriverPerformance is used for drivers missing from the table, e.g.
// reserve drivers or free-text fantasy entries.
var defaultDriverPerformance = DriverPerformance{Experience: 3, Form: 15.0, QualiGap: 0.8, WinFactor: 0.7}

// DriverPerformanceFor returns the performance attributes for a driver,
// falling back to the default profile for unknown names.
func DriverPerformanceFor(driver string) DriverPerformance {
	if p, ok := driverPerformance[driver]; ok {
		return p
	}
	return defaultDriverPerformance
}

var constructorPerformance = map[string]ConstructorPerformance{
	"McLaren":         {Standing: 1, Efficiency: 0.98, PaceFactor: 1.0},
	"Ferrari":         {Standing: 2, Efficiency: 0.95, PaceFactor: 0.98},
	"Red Bull Racing": {Standing: 3, Efficiency: 0.93, PaceFactor: 0.96},
	"Mercedes":        {Standing: 4, Efficiency: 0.90, PaceFactor: 0.94},
	"Aston Martin":    {Standing: 5, Efficiency: 0.85, PaceFactor: 0.88},
	"Alpine":          {Standing: 6, Efficiency: 0.82, PaceFactor: 0.85},
	"Williams":        {Standing: 9, Efficiency: 0.78, PaceFactor: 0.82},
	"Haas":            {Standing: 7, Efficiency: 0.80, PaceFactor: 0.83},
	"RB":              {Standing: 8, Efficiency: 0.79, PaceFactor: 0.84},
	"Kick Sauber":     {Standing: 10, Efficiency: 0.75, PaceFactor: 0.80},
}

var defaultConstructorPerformance = ConstructorPerformance{Standing: 10, Efficiency: 0.75, PaceFactor: 0.80}

// ConstructorPerformanceFor returns the competitiveness attributes for a
// constructor, falling back to a backmarker profile for unknown names.
func ConstructorPerformanceFor(constructor string) ConstructorPerformance {
	if p, ok := constructorPerformance[constructor]; ok {
		return p
	}
	return defaultConstructorPerformance
}

var driverStrategyProfiles = map[string]DriverStrategyProfile{
	// Aggressive risk-takers
	"Max Verstappen":  {Aggression: 0.9, RiskTolerance: 0.85, Adaptability: 0.9, WetBoost: 1.2, LowGridBoost: 1.3},
	"Charles Leclerc": {Aggression: 0.85, RiskTolerance: 0.8, Adaptability: 0.8},
	"Lando Norris":    {Aggression: 0.75, RiskTolerance: 0.7, Adaptability: 0.85},
	"Pierre Gasly":    {Aggression: 0.8, RiskTolerance: 0.75, Adaptability: 0.8},

	// Strategic and calculated
	"Lewis Hamilton":  {Aggression: 0.7, RiskTolerance: 0.6, Adaptability: 0.95, WetBoost: 1.2, StrategyCallBoost: 1.1},
	"Fernando Alonso": {Aggression: 0.75, RiskTolerance: 0.8, Adaptability: 0.95, WetBoost: 1.2},
	"George Russell":  {Aggression: 0.6, RiskTolerance: 0.5, Adaptability: 0.8},
	"Oscar Piastri":   {Aggression: 0.65, RiskTolerance: 0.6, Adaptability: 0.8},

	// Conservative but opportunistic
	"Carlos Sainz Jr.": {Aggression: 0.7, RiskTolerance: 0.65, Adaptability: 0.75},
	"Alexander Albon":  {Aggression: 0.6, RiskTolerance: 0.55, Adaptability: 0.7},
	"Nico Hülkenberg":  {Aggression: 0.65, RiskTolerance: 0.6, Adaptability: 0.8},
	"Esteban Ocon":     {Aggression: 0.6, RiskTolerance: 0.55, Adaptability: 0.7},

	// Inexperienced but eager
	"Andrea Kimi Antonelli": {Aggression: 0.8, RiskTolerance: 0.9, Adaptability: 0.6},
	"Oliver Bearman":        {Aggression: 0.75, RiskTolerance: 0.8, Adaptability: 0.65},
	"Franco Colapinto":      {Aggression: 0.7, RiskTolerance: 0.75, Adaptability: 0.6},
	"Gabriel Bortoleto":     {Aggression: 0.7, RiskTolerance: 0.8, Adaptability: 0.6},
	"Isack Hadjar":          {Aggression: 0.75, RiskTolerance: 0.8, Adaptability: 0.6},
	"Liam Lawson":           {Aggression: 0.8, RiskTolerance: 0.75, Adaptability: 0.65},

	// Steady and consistent
	"Lance Stroll": {Aggression: 0.5, RiskTolerance: 0.4, Adaptability: 0.6},
	"Yuki Tsunoda": {Aggression: 0.7, RiskTolerance: 0.7, Adaptability: 0.65},
}

// DriverStrategyProfileFor returns a driver's strategy profile with unset
// rule multipliers normalized to neutral.
func DriverStrategyProfileFor(driver string) DriverStrategyProfile {
	p, ok := driverStrategyProfiles[driver]
	if !ok {
		p = DriverStrategyProfile{Aggression: 0.6, RiskTolerance: 0.6, Adaptability: 0.6}
	}
	if p.WetBoost == 0 {
		p.WetBoost = 1.0
	}
	if p.LowGridBoost == 0 {
		p.LowGridBoost = 1.0
	}
	if p.StrategyCallBoost == 0 {
		p.StrategyCallBoost = 1.0
	}
	return p
}

var teamStrategyProfiles = map[string]TeamStrategyProfile{
	"Red Bull Racing": {Aggression: 0.85, RiskTolerance: 0.8, Innovation: 0.9, DryAggressionTrim: 1.1},
	"Ferrari":         {Aggression: 0.8, RiskTolerance: 0.75, Innovation: 0.7, SignatureStrategy: "Hard → Hard (Ferrari master plan 🤔)", SignatureChance: 0.15},
	"McLaren":         {Aggression: 0.7, RiskTolerance: 0.65, Innovation: 0.85},
	"Mercedes":        {Aggression: 0.6, RiskTolerance: 0.5, Innovation: 0.8, DryAggressionTrim: 0.8},
	"Aston Martin":    {Aggression: 0.7, RiskTolerance: 0.6, Innovation: 0.8},
	"Alpine":          {Aggression: 0.75, RiskTolerance: 0.7, Innovation: 0.7},
	"Williams":        {Aggression: 0.6, RiskTolerance: 0.8, Innovation: 0.6},
	"Haas":            {Aggression: 0.65, RiskTolerance: 0.75, Innovation: 0.5},
	"RB":              {Aggression: 0.75, RiskTolerance: 0.7, Innovation: 0.75},
	"Kick Sauber":     {Aggression: 0.7, RiskTolerance: 0.8, Innovation: 0.6},
}

// TeamStrategyProfileFor returns a team's strategy profile with unset rule
// multipliers normalized to neutral.
func TeamStrategyProfileFor(constructor string) TeamStrategyProfile {
	p, ok := teamStrategyProfiles[constructor]
	if !ok {
		p = TeamStrategyProfile{Aggression: 0.6, RiskTolerance: 0.6, Innovation: 0.6}
	}
	if p.DryAggressionTrim == 0 {
		p.DryAggressionTrim = 1.0
	}
	return p
}

var circuitStrategyProfiles = map[string]CircuitStrategyProfile{
	"Circuit de Monaco":              {OvertakingDifficulty: 0.95, TireWear: 0.3, StrategyImportance: 0.9},
	"Hungaroring":                    {OvertakingDifficulty: 0.85, TireWear: 0.4, StrategyImportance: 0.85},
	"Marina Bay Street Circuit":      {OvertakingDifficulty: 0.8, TireWear: 0.5, StrategyImportance: 0.8},
	"Circuit de Spa-Francorchamps":   {OvertakingDifficulty: 0.3, TireWear: 0.8, StrategyImportance: 0.7},
	"Silverstone Circuit":            {OvertakingDifficulty: 0.4, TireWear: 0.75, StrategyImportance: 0.7},
	"Circuit de Barcelona-Catalunya": {OvertakingDifficulty: 0.7, TireWear: 0.6, StrategyImportance: 0.8},
	"Autodromo Nazionale di Monza":   {OvertakingDifficulty: 0.2, TireWear: 0.4, StrategyImportance: 0.5},
	"Baku City Circuit":              {OvertakingDifficulty: 0.3, TireWear: 0.5, StrategyImportance: 0.6},
	"Circuit Gilles Villeneuve":      {OvertakingDifficulty: 0.5, TireWear: 0.6, StrategyImportance: 0.6},
	"Circuit of the Americas":        {OvertakingDifficulty: 0.4, TireWear: 0.7, StrategyImportance: 0.65},
}

// CircuitStrategyProfileFor returns a circuit's strategy profile, falling
// back to a middle-of-the-road circuit for unknown names.
func CircuitStrategyProfileFor(circuit string) CircuitStrategyProfile {
	if p, ok := circuitStrategyProfiles[circuit]; ok {
		return p
	}
	return CircuitStrategyProfile{OvertakingDifficulty: 0.5, TireWear: 0.6, StrategyImportance: 0.6}
}
