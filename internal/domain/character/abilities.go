package character

// Ability is one of the six fixed ability scores
type Ability string

const (
	Strength     Ability = "strength"
	Dexterity    Ability = "dexterity"
	Constitution Ability = "constitution"
	Intelligence Ability = "intelligence"
	Wisdom       Ability = "wisdom"
	Charisma     Ability = "charisma"
)

// Abilities lists every ability in sheet order
var Abilities = []Ability{Strength, Dexterity, Constitution, Intelligence, Wisdom, Charisma}

// Short is the three-letter badge label, e.g. "str"
func (a Ability) Short() string {
	if len(a) < 3 {
		return string(a)
	}
	return string(a[:3])
}

func (a Ability) Valid() bool {
	switch a {
	case Strength, Dexterity, Constitution, Intelligence, Wisdom, Charisma:
		return true
	}
	return false
}

// Stats holds the six ability scores. Scores are unbounded.
type Stats struct {
	Strength     int `json:"strength"`
	Dexterity    int `json:"dexterity"`
	Constitution int `json:"constitution"`
	Intelligence int `json:"intelligence"`
	Wisdom       int `json:"wisdom"`
	Charisma     int `json:"charisma"`
}

func DefaultStats() Stats {
	return Stats{
		Strength:     DefaultScore,
		Dexterity:    DefaultScore,
		Constitution: DefaultScore,
		Intelligence: DefaultScore,
		Wisdom:       DefaultScore,
		Charisma:     DefaultScore,
	}
}

// Get returns the score for a, or 0 for an unknown ability
func (s Stats) Get(a Ability) int {
	if p := s.ref(a); p != nil {
		return *p
	}
	return 0
}

// Set stores score for a and reports whether a is known
func (s *Stats) Set(a Ability, score int) bool {
	p := s.ref(a)
	if p == nil {
		return false
	}
	*p = score
	return true
}

func (s *Stats) ref(a Ability) *int {
	switch a {
	case Strength:
		return &s.Strength
	case Dexterity:
		return &s.Dexterity
	case Constitution:
		return &s.Constitution
	case Intelligence:
		return &s.Intelligence
	case Wisdom:
		return &s.Wisdom
	case Charisma:
		return &s.Charisma
	}
	return nil
}
