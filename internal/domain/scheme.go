package domain

// Scheme is a welfare-program eligibility record loaded from the static
// catalog. Constraint fields are pointers so that an absent field means
// "no constraint" rather than a zero value.
type Scheme struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Link        string `json:"link,omitempty"`

	// States lists the states the scheme applies to. The single-element
	// sentinel ["All"] makes the scheme nationwide.
	States           []string `json:"state"`
	Gender           *string  `json:"gender,omitempty"`
	MinAge           *int     `json:"min_age,omitempty"`
	MaxAge           *int     `json:"max_age,omitempty"`
	IncomeLimit      *int     `json:"income_limit,omitempty"`
	MaritalStatus    *string  `json:"marital_status,omitempty"`
	EducationLevel   *string  `json:"education_level,omitempty"`
	PregnantRequired *bool    `json:"pregnant_required,omitempty"`
	Religion         *string  `json:"religion,omitempty"`
}

// AnyValue is the catalog sentinel that disables an equality constraint.
const AnyValue = "any"

// AllStates is the catalog sentinel that disables the state constraint.
const AllStates = "All"

// ApplicantProfile carries the attributes a user submits to the scheme
// explorer. It exists only for the duration of one filter request.
type ApplicantProfile struct {
	Age            int
	Income         int
	Gender         string
	State          string
	MaritalStatus  string
	EducationLevel string
	Religion       string
	Pregnant       bool
}
