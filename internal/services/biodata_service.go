package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/imadhurgupta/bio-keeper/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BiodataService is the record store gateway. Ownership is enforced here:
// every read, update and delete checks the caller against the record owner.
type BiodataService struct {
	biodataRepo models.BiodataRepo
}

func NewBiodataService(biodataRepo models.BiodataRepo) *BiodataService {
	return &BiodataService{
		biodataRepo: biodataRepo,
	}
}

// Create validates the mandatory fields before any store call, stamps the
// server-assigned metadata and returns the new record id.
func (bs *BiodataService) Create(ctx context.Context, ownerId uuid.UUID, authorName, authorPhoto string, bio *models.Biodata) (primitive.ObjectID, error) {
	if ownerId == uuid.Nil {
		return primitive.NilObjectID, fmt.Errorf("%w: invalid owner ID", models.ErrValidation)
	}
	if err := bio.ValidateForCreate(); err != nil {
		return primitive.NilObjectID, err
	}

	bio.ID = primitive.NilObjectID
	bio.UserID = ownerId
	bio.CreatedAt = time.Now()
	bio.Status = models.StatusActive
	if authorName == "" {
		// Email-auth identities have no display name; fall back to the
		// record's own name.
		authorName = bio.Name
	}
	bio.AuthorName = authorName
	bio.AuthorPhoto = authorPhoto

	return bs.biodataRepo.CreateBiodata(ctx, bio)
}

func (bs *BiodataService) ListByOwner(ctx context.Context, ownerId uuid.UUID) ([]*models.Biodata, error) {
	if ownerId == uuid.Nil {
		return nil, fmt.Errorf("%w: invalid owner ID", models.ErrValidation)
	}

	bios, err := bs.biodataRepo.ListBiodataByOwner(ctx, ownerId)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	for _, bio := range bios {
		decorateAge(bio, now)
	}
	return bios, nil
}

func (bs *BiodataService) GetByID(ctx context.Context, id primitive.ObjectID, callerId uuid.UUID) (*models.Biodata, error) {
	bio, err := bs.biodataRepo.GetBiodataByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if bio.UserID != callerId {
		return nil, fmt.Errorf("%w: record %s", models.ErrForbidden, id.Hex())
	}

	decorateAge(bio, time.Now())
	return bio, nil
}

// Update merges the sanitized patch into the record. Unspecified fields stay
// untouched; there is no optimistic-concurrency check, so concurrent writers
// are last-write-wins.
func (bs *BiodataService) Update(ctx context.Context, id primitive.ObjectID, callerId uuid.UUID, patch models.BiodataPatch) error {
	sanitized := patch.Sanitize()
	if len(sanitized) == 0 {
		return fmt.Errorf("%w: no updatable fields", models.ErrValidation)
	}

	bio, err := bs.biodataRepo.GetBiodataByID(ctx, id)
	if err != nil {
		return err
	}
	if bio.UserID != callerId {
		return fmt.Errorf("%w: record %s", models.ErrForbidden, id.Hex())
	}

	return bs.biodataRepo.UpdateBiodata(ctx, id, sanitized)
}

// Delete removes the record permanently. Callers are expected to have asked
// the user for confirmation first.
func (bs *BiodataService) Delete(ctx context.Context, id primitive.ObjectID, callerId uuid.UUID) error {
	bio, err := bs.biodataRepo.GetBiodataByID(ctx, id)
	if err != nil {
		return err
	}
	if bio.UserID != callerId {
		return fmt.Errorf("%w: record %s", models.ErrForbidden, id.Hex())
	}

	return bs.biodataRepo.DeleteBiodataByID(ctx, id)
}

// CountByOwner backs the profile activity stat.
func (bs *BiodataService) CountByOwner(ctx context.Context, ownerId uuid.UUID) (int, error) {
	bios, err := bs.ListByOwner(ctx, ownerId)
	if err != nil {
		return 0, err
	}
	return len(bios), nil
}

func decorateAge(bio *models.Biodata, now time.Time) {
	if age, err := models.AgeAt(bio.Dob, now); err == nil {
		bio.Age = age
	}
}
