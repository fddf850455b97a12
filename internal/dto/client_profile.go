package dto

// ClientProfile describes the client and the meeting a restaurant is being chosen for.
type ClientProfile struct {
	ClientDesignation   string  `json:"clientDesignation" validate:"required"`
	MeetingPurpose      string  `json:"meetingPurpose" validate:"required"`
	OtherPurpose        *string `json:"otherPurpose,omitempty"`
	RelationshipStatus  string  `json:"relationshipStatus" validate:"required"`
	Location            string  `json:"location" validate:"required,min=2"`
	MeetingDuration     string  `json:"meetingDuration" validate:"required"`
	DietaryRestrictions *string `json:"dietaryRestrictions,omitempty"`
	AdditionalNotes     *string `json:"additionalNotes,omitempty"`
	CuisinePreferences  *string `json:"cuisinePreferences,omitempty"`
}

// DerivedSearchParams is the search query synthesized from a ClientProfile.
type DerivedSearchParams struct {
	Location   string   `json:"location"`
	Term       string   `json:"term"`
	Categories []string `json:"categories"`
	Price      *string  `json:"price"`
}
