package petfinder

import (
	"github.com/google/uuid"

	"github.com/custodia-labs/pawprint/internal/core/domain"
)

// sampleNamespace scopes the name-based UUIDs of the sample catalog, so the
// same sample pet keeps its ID across runs and can be favorited.
var sampleNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://pawprint.local/samples"))

func sampleID(name string) string {
	return uuid.NewSHA1(sampleNamespace, []byte(name)).String()
}

// sampleCatalog is served in offline mode and whenever a live search fails.
var sampleCatalog = withDefaults([]domain.Pet{
	{
		ID:          sampleID("buddy"),
		Name:        "Buddy",
		Type:        "Dog",
		Breed:       "Labrador Retriever",
		Age:         "Young",
		Gender:      "Male",
		Size:        "Medium",
		Contact:     "adopt@happytails.org",
		Phone:       "+1-212-555-0100",
		PhotoURL:    "https://picsum.photos/id/237/600/400",
		Description: "Friendly, loves fetch and walks.",
	},
	{
		ID:          sampleID("luna"),
		Name:        "Luna",
		Type:        "Cat",
		Breed:       "Domestic Shorthair",
		Age:         "Adult",
		Gender:      "Female",
		Size:        "Small",
		Contact:     "adopt@happytails.org",
		PhotoURL:    "https://picsum.photos/id/1062/600/400",
		Description: "Calm indoor cat; likes window sunbathing.",
	},
	{
		ID:          sampleID("max"),
		Name:        "Max",
		Type:        "Dog",
		Breed:       "Poodle Mix",
		Age:         "Baby",
		Gender:      "Male",
		Size:        "Small",
		Contact:     "hello@sunshinerescue.org",
		Phone:       "+1-305-555-0123",
		PhotoURL:    "https://picsum.photos/id/1025/600/400",
		Description: "Playful and smart.",
	},
})

// withDefaults applies the display defaults to every pet in place.
func withDefaults(pets []domain.Pet) []domain.Pet {
	for i := range pets {
		pets[i] = pets[i].WithDefaults()
	}
	return pets
}

// SampleCatalog returns a copy of the full sample catalog.
func SampleCatalog() []domain.Pet {
	return append([]domain.Pet(nil), sampleCatalog...)
}

// offlineSearch filters the sample catalog by type, ignoring case, and
// returns the matches as a single page. An empty type matches everything.
func offlineSearch(petType string) domain.PetPage {
	pets := make([]domain.Pet, 0, len(sampleCatalog))
	for _, p := range sampleCatalog {
		if petType == "" || p.MatchesType(petType) {
			pets = append(pets, p)
		}
	}
	return domain.SinglePage(pets)
}
