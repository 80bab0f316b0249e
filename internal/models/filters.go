package models

import (
	"strconv"
	"strings"
)

// AgeRange is an inclusive [Min, Max] constraint on Pet.Age.
type AgeRange struct {
	Min int
	Max int
}

// PetFilter is the store-level predicate built from pet listing query
// parameters. Zero values impose no constraint.
type PetFilter struct {
	Type     string    // exact match
	Breed    string    // case-insensitive substring
	Size     string    // exact match
	Location string    // case-insensitive substring
	Age      *AgeRange // inclusive range, nil = unconstrained
	// Search matches case-insensitively against name OR breed OR type.
	Search string
}

// LostPetFilter is the store-level predicate for lost pet report listings.
type LostPetFilter struct {
	Status   string // exact match: "lost" or "found"
	Type     string // exact match
	Location string // case-insensitive substring
	// Search matches case-insensitively against name OR breed OR location.
	Search string
}

// ParsePetFilter builds a PetFilter from raw query parameters. The age
// parameter has the form "min-max"; anything that does not split into
// exactly two integers is dropped silently rather than rejected, matching
// the permissive behaviour clients already rely on.
func ParsePetFilter(params map[string]string) PetFilter {
	return PetFilter{
		Type:     params["type"],
		Breed:    params["breed"],
		Size:     params["size"],
		Location: params["location"],
		Age:      parseAgeRange(params["age"]),
		Search:   params["search"],
	}
}

// ParseLostPetFilter builds a LostPetFilter from raw query parameters.
func ParseLostPetFilter(params map[string]string) LostPetFilter {
	return LostPetFilter{
		Status:   params["status"],
		Type:     params["type"],
		Location: params["location"],
		Search:   params["search"],
	}
}

func parseAgeRange(s string) *AgeRange {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return nil
	}
	min, err := strconv.Atoi(parts[0])
	if err != nil {
		return nil
	}
	max, err := strconv.Atoi(parts[1])
	if err != nil {
		return nil
	}
	return &AgeRange{Min: min, Max: max}
}
