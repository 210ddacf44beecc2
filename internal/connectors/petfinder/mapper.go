package petfinder

import (
	"bytes"
	"encoding/json"
	"html"
	"strconv"
	"strings"

	"github.com/custodia-labs/pawprint/internal/core/domain"
	"github.com/custodia-labs/pawprint/internal/logger"
)

// Fallbacks for listing fields the service left empty.
const (
	unknownName = "Unknown"
	unknownType = "Pet"
)

// animalsResponse is the subset of GET /animals that pawprint reads.
type animalsResponse struct {
	Animals    []animal   `json:"animals"`
	Pagination pagination `json:"pagination"`
}

type animal struct {
	ID          flexString `json:"id"`
	Name        string     `json:"name"`
	Type        string     `json:"type"`
	Age         string     `json:"age"`
	Gender      string     `json:"gender"`
	Size        string     `json:"size"`
	Description string     `json:"description"`
	Breeds      struct {
		Primary string `json:"primary"`
	} `json:"breeds"`
	Photos []struct {
		Small  string `json:"small"`
		Medium string `json:"medium"`
		Large  string `json:"large"`
		Full   string `json:"full"`
	} `json:"photos"`
	Contact struct {
		Email string `json:"email"`
		Phone string `json:"phone"`
	} `json:"contact"`
}

type pagination struct {
	CurrentPage optionalInt `json:"current_page"`
	TotalPages  optionalInt `json:"total_pages"`
}

// flexString accepts a JSON string or number. Null decodes as empty.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

// optionalInt records an integer only when the field holds one, as a number
// or a numeric string. Anything else leaves it unset without failing decode.
type optionalInt struct {
	Value int
	Set   bool
}

func (o *optionalInt) UnmarshalJSON(data []byte) error {
	*o = optionalInt{}

	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		if v, err := strconv.Atoi(n.String()); err == nil {
			*o = optionalInt{Value: v, Set: true}
		}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if v, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			*o = optionalInt{Value: v, Set: true}
		}
	}
	return nil
}

func (o optionalInt) or(fallback int) int {
	if o.Set {
		return o.Value
	}
	return fallback
}

// toPage maps a listing payload. q is the normalized query that produced it.
func toPage(payload *animalsResponse, q domain.SearchQuery) domain.PetPage {
	pets := make([]domain.Pet, 0, len(payload.Animals))
	for i := range payload.Animals {
		pet, ok := mapAnimal(payload.Animals[i])
		if !ok {
			logger.Debug("skipping listing without id", "name", payload.Animals[i].Name)
			continue
		}
		pets = append(pets, pet)
	}

	return domain.PetPage{
		Items:      pets,
		Page:       payload.Pagination.CurrentPage.or(q.Page),
		TotalPages: payload.Pagination.TotalPages.or(1),
		PageSize:   q.PageSize,
		Count:      len(pets),
	}
}

// mapAnimal converts one listing into a Pet with display defaults applied.
// It reports false for listings without an ID.
func mapAnimal(a animal) (domain.Pet, bool) {
	id := strings.TrimSpace(string(a.ID))
	if id == "" {
		return domain.Pet{}, false
	}

	pet := domain.Pet{
		ID:          id,
		Name:        html.UnescapeString(strings.TrimSpace(a.Name)),
		Type:        a.Type,
		Breed:       a.Breeds.Primary,
		Age:         a.Age,
		Contact:     a.Contact.Email,
		PhotoURL:    firstPhoto(a),
		Phone:       a.Contact.Phone,
		Gender:      a.Gender,
		Size:        a.Size,
		Description: html.UnescapeString(strings.TrimSpace(a.Description)),
	}
	if pet.Name == "" {
		pet.Name = unknownName
	}
	if pet.Type == "" {
		pet.Type = unknownType
	}
	return pet.WithDefaults(), true
}

// firstPhoto prefers the first photo's medium URL, then its large URL.
func firstPhoto(a animal) string {
	if len(a.Photos) == 0 {
		return ""
	}
	if a.Photos[0].Medium != "" {
		return a.Photos[0].Medium
	}
	return a.Photos[0].Large
}
