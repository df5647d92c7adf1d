package domain

import "time"

// Industry is the fixed set of industries a pitch can target
type Industry string

const (
	IndustryEducation  Industry = "Education"
	IndustryHealth     Industry = "Health"
	IndustryFinance    Industry = "Finance"
	IndustryEcommerce  Industry = "E-commerce"
	IndustryTechnology Industry = "Technology"
	IndustryOther      Industry = "Other"
)

// DetailLevel controls how long the generated pitch should be
type DetailLevel string

const (
	DetailShort  DetailLevel = "short"
	DetailMedium DetailLevel = "medium"
	DetailLong   DetailLevel = "long"
)

// Pitch is the persisted unit of user input plus AI output. The document
// identifier is assigned by Firestore and held outside the stored fields.
type Pitch struct {
	ID             string      `json:"id" firestore:"-"`
	OwnerID        string      `json:"owner_id" firestore:"ownerId"`
	OwnerEmail     string      `json:"owner_email" firestore:"ownerEmail"`
	OwnerName      string      `json:"owner_name" firestore:"ownerName"`
	Idea           string      `json:"idea" firestore:"idea"`
	Description    string      `json:"description" firestore:"description"`
	Industry       Industry    `json:"industry" firestore:"industry"`
	DetailLevel    DetailLevel `json:"detail_level" firestore:"detailLevel"`
	CreatedAt      time.Time   `json:"created_at" firestore:"createdAt,serverTimestamp"`
	GeneratedPitch string      `json:"generated_pitch,omitempty" firestore:"generatedPitch,omitempty"`
	GeneratedAt    *time.Time  `json:"generated_at,omitempty" firestore:"generatedAt,omitempty"`
}

// HasGeneration reports whether the pitch already carries generated text.
func (p *Pitch) HasGeneration() bool {
	return p.GeneratedPitch != ""
}
