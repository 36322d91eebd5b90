package schema

// Definition binds a quote type to its reference prefix, display label and
// field rules.
type Definition struct {
	Type   string
	Prefix string
	Label  string
	Fields []Field
}

// Quote type codes as they appear in the /api/quotes/{type} path.
const (
	TypeLimo       = "limo"
	TypeMotorcoach = "motorcoach"
	TypeAmbulance  = "ambulance"
	TypeTaxi       = "taxi"
	TypeRideshare  = "rideshare"
	TypeNEMT       = "nemt"
)

// coreFields are shared by every quote line: the insured business, a contact
// and a mailing address.
func coreFields() []Field {
	return []Field{
		{Name: "businessName", Kind: KindString, Required: true, MinLen: 2},
		{Name: "contactName", Kind: KindString, Required: true, MinLen: 2},
		{Name: "email", Kind: KindEmail, Required: true},
		{Name: "phone", Kind: KindString, Required: true, MinLen: 10},
		{Name: "streetAddress", Kind: KindString, Required: true, MinLen: 5},
		{Name: "city", Kind: KindString, Required: true, MinLen: 2},
		{Name: "state", Kind: KindState, Required: true, MinLen: 2},
		{Name: "zipCode", Kind: KindString, Required: true, MinLen: 5},
	}
}

// fleetFields are the repeated substructures and carrier-history fields
// common to every line.
func fleetFields() []Field {
	return []Field{
		{Name: "vehicles", Kind: KindVehicleList},
		{Name: "drivers", Kind: KindDriverList},
		{Name: "documents", Kind: KindStringList},
		{Name: "currentCarrier", Kind: KindString},
		{Name: "yearsInBusiness", Kind: KindString},
		{Name: "annualMileage", Kind: KindString},
		{Name: "priorClaims", Kind: KindString},
		{Name: "effectiveDate", Kind: KindString},
		{Name: "additionalComments", Kind: KindString},
	}
}

func withCore(extra ...Field) []Field {
	fields := coreFields()
	fields = append(fields, extra...)
	return append(fields, fleetFields()...)
}

var registry = map[string]*Definition{
	TypeLimo: {
		Type:   TypeLimo,
		Prefix: "LIMO",
		Label:  "Limousine Insurance",
		Fields: withCore(
			Field{Name: "serviceType", Kind: KindString, Required: true, MinLen: 2},
			Field{Name: "fleetSize", Kind: KindString},
			Field{Name: "operatingRadius", Kind: KindString},
			Field{Name: "airportWork", Kind: KindBool},
			Field{Name: "weddingWork", Kind: KindBool},
			Field{Name: "coverageTypes", Kind: KindStringList},
			Field{Name: "liabilityLimit", Kind: KindString},
		),
	},
	TypeMotorcoach: {
		Type:   TypeMotorcoach,
		Prefix: "BUS",
		Label:  "Motorcoach & Charter Bus Insurance",
		Fields: withCore(
			Field{Name: "operationType", Kind: KindString, Required: true, MinLen: 2},
			Field{Name: "seatingCapacity", Kind: KindString},
			Field{Name: "interstateOperations", Kind: KindBool},
			Field{Name: "dotNumber", Kind: KindString},
			Field{Name: "coverageTypes", Kind: KindStringList},
			Field{Name: "liabilityLimit", Kind: KindString},
		),
	},
	TypeAmbulance: {
		Type:   TypeAmbulance,
		Prefix: "AMB",
		Label:  "Ambulance & EMS Insurance",
		Fields: withCore(
			Field{Name: "serviceType", Kind: KindString, Required: true, MinLen: 2},
			Field{Name: "numberOfAmbulances", Kind: KindString},
			Field{Name: "emergencyResponse", Kind: KindBool},
			Field{Name: "interfacilityTransport", Kind: KindBool},
			Field{Name: "coverageTypes", Kind: KindStringList},
			Field{Name: "liabilityLimit", Kind: KindString},
		),
	},
	TypeTaxi: {
		Type:   TypeTaxi,
		Prefix: "TAXI",
		Label:  "Taxi Insurance",
		Fields: withCore(
			Field{Name: "serviceType", Kind: KindString, Required: true, MinLen: 2},
			Field{Name: "fleetSize", Kind: KindString},
			Field{Name: "dispatchSystem", Kind: KindString},
			Field{Name: "meteredService", Kind: KindBool},
			Field{Name: "coverageTypes", Kind: KindStringList},
		),
	},
	TypeRideshare: {
		Type:   TypeRideshare,
		Prefix: "TNC",
		Label:  "Rideshare & TNC Insurance",
		Fields: withCore(
			Field{Name: "platformType", Kind: KindString, Required: true, MinLen: 2},
			Field{Name: "activeDrivers", Kind: KindString},
			Field{Name: "periodOneCoverage", Kind: KindBool},
			Field{Name: "coverageTypes", Kind: KindStringList},
		),
	},
	TypeNEMT: {
		Type:   TypeNEMT,
		Prefix: "NEMT",
		Label:  "Non-Emergency Medical Transport Insurance",
		Fields: withCore(
			Field{Name: "serviceType", Kind: KindString, Required: true, MinLen: 2},
			Field{Name: "wheelchairEquipped", Kind: KindBool},
			Field{Name: "stretcherEquipped", Kind: KindBool},
			Field{Name: "medicaidContract", Kind: KindBool},
			Field{Name: "coverageTypes", Kind: KindStringList},
		),
	},
}

// Lookup resolves a quote type code to its definition.
func Lookup(code string) (*Definition, bool) {
	d, ok := registry[code]
	return d, ok
}

// Label returns the display label for a type code, falling back to the raw
// code for unknown types rather than failing.
func Label(code string) string {
	if d, ok := registry[code]; ok {
		return d.Label
	}
	return code
}

// Types lists the registered quote type codes.
func Types() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	return codes
}
