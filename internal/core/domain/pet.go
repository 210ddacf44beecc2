package domain

import (
	"fmt"
	"strings"
)

// Display defaults substituted for absent optional fields.
const (
	DefaultBreed   = "Mixed"
	DefaultAge     = "Unknown"
	DefaultContact = "Contact shelter directly"

	// PlaceholderPhotoURL is shown when a listing carries no photo.
	PlaceholderPhotoURL = "https://images.unsplash.com/photo-1601758228041-f3b2795255f1?w=400"
)

// Pet is one adoptable animal, normalized from whichever source produced it.
//
// ID and Name are the only fields guaranteed non-empty. Every other field is
// optional; the empty string means the value is absent and is persisted as NULL.
type Pet struct {
	// ID is the stable identifier assigned by the source, or synthesized
	// locally for sample records.
	ID string `json:"id"`

	// Name is the animal's display name.
	Name string `json:"name"`

	// Type is the species, e.g. "Dog" or "Cat".
	Type string `json:"type,omitempty"`

	Breed       string `json:"breed,omitempty"`
	Age         string `json:"age,omitempty"`
	Contact     string `json:"contact,omitempty"`
	PhotoURL    string `json:"photo_url,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Gender      string `json:"gender,omitempty"`
	Size        string `json:"size,omitempty"`
	Description string `json:"description,omitempty"`
}

// WithDefaults returns a copy of p with the display defaults substituted for
// absent breed, age, contact and photo. Sources call it once when mapping.
func (p Pet) WithDefaults() Pet {
	if strings.TrimSpace(p.Breed) == "" {
		p.Breed = DefaultBreed
	}
	if strings.TrimSpace(p.Age) == "" {
		p.Age = DefaultAge
	}
	if strings.TrimSpace(p.Contact) == "" {
		p.Contact = DefaultContact
	}
	if strings.TrimSpace(p.PhotoURL) == "" {
		p.PhotoURL = PlaceholderPhotoURL
	}
	return p
}

// Validate checks that the required fields are present.
func (p Pet) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	return nil
}

// MatchesType reports whether the pet's type equals t, ignoring case.
func (p Pet) MatchesType(t string) bool {
	return strings.EqualFold(p.Type, t)
}

// String renders the pet as "Name (Breed, Age)".
func (p Pet) String() string {
	breed := p.Breed
	if breed == "" {
		breed = DefaultBreed
	}
	age := p.Age
	if age == "" {
		age = DefaultAge
	}
	return fmt.Sprintf("%s (%s, %s)", p.Name, breed, age)
}
