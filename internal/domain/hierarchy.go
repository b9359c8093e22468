package domain

// State is a top-level hierarchy entity (one per Brazilian state).
type State struct {
	ID   string
	Name string // "Tocantins"
	UF   string // "TO"
	Code string // "28", used in official codes like BR-28-0059
}

// Bank supplies display masks for branch/account numbers. It has no bearing
// on payload correctness; the payload carries only the PIX key.
type Bank struct {
	ID          string
	Code        string // "001", "341"
	Name        string // "Banco do Brasil"
	BranchMask  string // "0000-0"
	AccountMask string // "00000-0"
}

// Regional owns the financial identity: one CNPJ and one bank account per
// regional. Every payload generated under this regional settles into this
// account.
type Regional struct {
	ID          string
	StateID     string
	Name        string // "Regional Porto Nacional"
	CNPJ        string // digits only
	OwnerName   string // account holder name, goes into the payload as merchant name
	BankID      string
	BankBranch  string // digits only
	BankAccount string // digits only
	CityName    string // city name embedded in the payload, e.g. "Porto Nacional"
	Active      bool
}

// City groups congregations under a regional.
type City struct {
	ID         string
	RegionalID string
	Name       string
}

// Congregation owns the transaction-identifier base. It contributes identity
// information (name, locality) to the card but never bank or CNPJ data.
type Congregation struct {
	ID         string
	CityID     string
	RegionalID string
	Name       string // "Jardim Brasília"
	ShortCode  string // "JB"
	SuffixCode string // "0059"
	TxIDBase   string // "BR280059"
	ExtraCents int    // 0 when the cents-suffix convention is unused
	Active     bool
}

// Purpose is independent of the hierarchy; it supplies the card label and the
// transaction-id suffix fragment ("G01" for general collection, etc).
type Purpose struct {
	ID           string
	Name         string // "Coleta geral"
	DisplayLabel string // as printed on the card
	TxIDSuffix   string // "G01"
	Active       bool
}

// Snapshot is an immutable view of the hierarchy reference tables. It is
// built wholesale (never patched in place) so concurrent resolutions always
// observe a consistent hierarchy. All resolution goes through the lookup
// maps; the slices preserve load order for listing.
type Snapshot struct {
	States        []State
	Banks         []Bank
	Regionals     []Regional
	Cities        []City
	Congregations []Congregation
	Purposes      []Purpose

	stateByID        map[string]*State
	bankByID         map[string]*Bank
	regionalByID     map[string]*Regional
	cityByID         map[string]*City
	congregationByID map[string]*Congregation
	purposeByID      map[string]*Purpose
}

// NewSnapshot builds the lookup maps over the given reference tables. The
// slices are kept as-is; callers must not mutate them afterwards.
func NewSnapshot(states []State, banks []Bank, regionals []Regional, cities []City, congregations []Congregation, purposes []Purpose) *Snapshot {
	s := &Snapshot{
		States:        states,
		Banks:         banks,
		Regionals:     regionals,
		Cities:        cities,
		Congregations: congregations,
		Purposes:      purposes,

		stateByID:        make(map[string]*State, len(states)),
		bankByID:         make(map[string]*Bank, len(banks)),
		regionalByID:     make(map[string]*Regional, len(regionals)),
		cityByID:         make(map[string]*City, len(cities)),
		congregationByID: make(map[string]*Congregation, len(congregations)),
		purposeByID:      make(map[string]*Purpose, len(purposes)),
	}

	for i := range states {
		s.stateByID[states[i].ID] = &states[i]
	}
	for i := range banks {
		s.bankByID[banks[i].ID] = &banks[i]
	}
	for i := range regionals {
		s.regionalByID[regionals[i].ID] = &regionals[i]
	}
	for i := range cities {
		s.cityByID[cities[i].ID] = &cities[i]
	}
	for i := range congregations {
		s.congregationByID[congregations[i].ID] = &congregations[i]
	}
	for i := range purposes {
		s.purposeByID[purposes[i].ID] = &purposes[i]
	}

	return s
}

// CitiesOf returns the cities belonging to a regional, in load order.
func (s *Snapshot) CitiesOf(regionalID string) []City {
	var out []City
	for _, c := range s.Cities {
		if c.RegionalID == regionalID {
			out = append(out, c)
		}
	}
	return out
}

// CongregationsOf returns the congregations belonging to a city, in load order.
func (s *Snapshot) CongregationsOf(cityID string) []Congregation {
	var out []Congregation
	for _, c := range s.Congregations {
		if c.CityID == cityID {
			out = append(out, c)
		}
	}
	return out
}

// RegionalsOf returns the regionals belonging to a state, in load order.
func (s *Snapshot) RegionalsOf(stateID string) []Regional {
	var out []Regional
	for _, r := range s.Regionals {
		if r.StateID == stateID {
			out = append(out, r)
		}
	}
	return out
}
