package app

import (
	"strings"

	"github.com/Priyanshukr985/SHE-SAFE-EMERGENCY/internal/domain"
)

// predicate is one eligibility constraint. A predicate returns true either
// when the scheme does not carry the constraint or when the applicant
// satisfies it.
type predicate struct {
	name string
	pass func(p domain.ApplicantProfile, s domain.Scheme) bool
}

// predicates is the full constraint set, evaluated in a fixed order. All
// predicates are side-effect-free, so the order only matters for readability.
var predicates = []predicate{
	{
		name: "state",
		pass: func(p domain.ApplicantProfile, s domain.Scheme) bool {
			if len(s.States) == 1 && s.States[0] == domain.AllStates {
				return true
			}
			for _, state := range s.States {
				if state == p.State {
					return true
				}
			}
			return false
		},
	},
	{
		name: "gender",
		pass: func(p domain.ApplicantProfile, s domain.Scheme) bool {
			return s.Gender == nil || *s.Gender == p.Gender
		},
	},
	{
		name: "min_age",
		pass: func(p domain.ApplicantProfile, s domain.Scheme) bool {
			return s.MinAge == nil || p.Age >= *s.MinAge
		},
	},
	{
		name: "max_age",
		pass: func(p domain.ApplicantProfile, s domain.Scheme) bool {
			return s.MaxAge == nil || p.Age <= *s.MaxAge
		},
	},
	{
		name: "income_limit",
		pass: func(p domain.ApplicantProfile, s domain.Scheme) bool {
			return s.IncomeLimit == nil || p.Income <= *s.IncomeLimit
		},
	},
	{
		name: "marital_status",
		pass: func(p domain.ApplicantProfile, s domain.Scheme) bool {
			return s.MaritalStatus == nil || *s.MaritalStatus == domain.AnyValue || *s.MaritalStatus == p.MaritalStatus
		},
	},
	{
		name: "education_level",
		pass: func(p domain.ApplicantProfile, s domain.Scheme) bool {
			return s.EducationLevel == nil || *s.EducationLevel == domain.AnyValue || *s.EducationLevel == p.EducationLevel
		},
	},
	{
		name: "pregnant_required",
		pass: func(p domain.ApplicantProfile, s domain.Scheme) bool {
			return s.PregnantRequired == nil || !*s.PregnantRequired || p.Pregnant
		},
	},
	{
		name: "religion",
		pass: func(p domain.ApplicantProfile, s domain.Scheme) bool {
			return s.Religion == nil || *s.Religion == domain.AnyValue || strings.EqualFold(*s.Religion, p.Religion)
		},
	},
}

// Eligible reports whether the applicant satisfies every constraint the
// scheme carries.
func Eligible(p domain.ApplicantProfile, s domain.Scheme) bool {
	for _, pred := range predicates {
		if !pred.pass(p, s) {
			return false
		}
	}
	return true
}

// FilterSchemes returns the schemes the applicant is eligible for,
// preserving catalog order.
func FilterSchemes(p domain.ApplicantProfile, catalog []domain.Scheme) []domain.Scheme {
	eligible := make([]domain.Scheme, 0, len(catalog))
	for _, s := range catalog {
		if Eligible(p, s) {
			eligible = append(eligible, s)
		}
	}
	return eligible
}
