package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	BiodataDbName  = "biokeeper"
	BiodataColName = "biodata"

	StatusActive = "active"

	DobLayout = "2006-01-02"
)

// Biodata is a single marriage-biodata profile owned by one user. Id and
// UserID never change after creation; everything else is free text except the
// two enum fields.
type Biodata struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID uuid.UUID          `bson:"user_id" json:"user_id"`

	// Personal
	Name          string `bson:"name" json:"name" validate:"required"`
	Gender        string `bson:"gender" json:"gender" validate:"omitempty,oneof=Male Female Other"`
	Dob           string `bson:"dob" json:"dob" validate:"required,datetime=2006-01-02"`
	Height        string `bson:"height" json:"height"`
	Religion      string `bson:"religion" json:"religion"`
	Caste         string `bson:"caste" json:"caste"`
	MaritalStatus string `bson:"marital_status" json:"marital_status" validate:"omitempty,oneof='Never Married' 'Divorced' 'Widowed'"`

	// Professional
	Education  string `bson:"education" json:"education" validate:"required"`
	Occupation string `bson:"occupation" json:"occupation"`
	Income     string `bson:"income" json:"income"`

	// Family
	FatherName       string `bson:"father_name" json:"father_name"`
	FatherOccupation string `bson:"father_occupation" json:"father_occupation"`
	MotherName       string `bson:"mother_name" json:"mother_name"`
	Siblings         string `bson:"siblings" json:"siblings"`

	// Contact & narrative
	City        string `bson:"city" json:"city"`
	PhoneNumber string `bson:"phone_number" json:"phone_number"`
	About       string `bson:"about" json:"about"`

	// Author details are captured once at creation and intentionally not
	// refreshed when the owner later edits their profile.
	AuthorName  string `bson:"author_name" json:"author_name"`
	AuthorPhoto string `bson:"author_photo" json:"author_photo"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	Status    string    `bson:"status" json:"status"`

	// Derived for display, never persisted.
	Age int `bson:"-" json:"age,omitempty"`
}

// ValidateForCreate enforces the three mandatory fields plus field formats
// before any store call is made.
func (b *Biodata) ValidateForCreate() error {
	if strings.TrimSpace(b.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if strings.TrimSpace(b.Dob) == "" {
		return fmt.Errorf("%w: dob is required", ErrValidation)
	}
	if strings.TrimSpace(b.Education) == "" {
		return fmt.Errorf("%w: education is required", ErrValidation)
	}
	if err := Validate.Struct(b); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}

// AgeAt derives the displayed age from a date of birth. It reproduces the
// original dashboard formula: elapsed time since birth re-read as an epoch
// date, whole years only. Slightly imprecise near birthdays, kept for
// behavioral parity.
func AgeAt(dob string, now time.Time) (int, error) {
	birth, err := time.Parse(DobLayout, dob)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid dob %q", ErrValidation, dob)
	}
	elapsed := now.Sub(birth)
	return time.Unix(0, 0).UTC().Add(elapsed).Year() - 1970, nil
}

// BiodataPatch is a merge-style partial update: keys present are replaced,
// keys absent are left untouched. Keys use the stored (bson) field names.
type BiodataPatch map[string]interface{}

// mutableFields is the set of patchable keys. Identity, ownership, creation
// metadata and the denormalized author snapshot are immutable.
var mutableFields = map[string]bool{
	"name":              true,
	"gender":            true,
	"dob":               true,
	"height":            true,
	"religion":          true,
	"caste":             true,
	"marital_status":    true,
	"education":         true,
	"occupation":        true,
	"income":            true,
	"father_name":       true,
	"father_occupation": true,
	"mother_name":       true,
	"siblings":          true,
	"city":              true,
	"phone_number":      true,
	"about":             true,
}

// Sanitize drops immutable and unknown keys, returning the patch that will
// actually be merged. An empty result means there is nothing to update.
func (p BiodataPatch) Sanitize() BiodataPatch {
	out := make(BiodataPatch, len(p))
	for key, value := range p {
		if mutableFields[key] {
			out[key] = value
		}
	}
	return out
}
