package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/imadhurgupta/bio-keeper/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memBiodataRepo is an in-memory stand-in for the mongo-backed repo,
// reproducing its merge and not-found semantics.
type memBiodataRepo struct {
	records map[primitive.ObjectID]*models.Biodata
	calls   int
}

func newMemBiodataRepo() *memBiodataRepo {
	return &memBiodataRepo{records: make(map[primitive.ObjectID]*models.Biodata)}
}

func (m *memBiodataRepo) CreateBiodata(ctx context.Context, bio *models.Biodata) (primitive.ObjectID, error) {
	m.calls++
	if bio.ID.IsZero() {
		bio.ID = primitive.NewObjectID()
	}
	clone := *bio
	m.records[bio.ID] = &clone
	return bio.ID, nil
}

func (m *memBiodataRepo) GetBiodataByID(ctx context.Context, id primitive.ObjectID) (*models.Biodata, error) {
	m.calls++
	bio, ok := m.records[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", models.ErrNotFound, id.Hex())
	}
	clone := *bio
	return &clone, nil
}

func (m *memBiodataRepo) ListBiodataByOwner(ctx context.Context, ownerId uuid.UUID) ([]*models.Biodata, error) {
	m.calls++
	out := []*models.Biodata{}
	for _, bio := range m.records {
		if bio.UserID == ownerId {
			clone := *bio
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (m *memBiodataRepo) UpdateBiodata(ctx context.Context, id primitive.ObjectID, patch models.BiodataPatch) error {
	m.calls++
	bio, ok := m.records[id]
	if !ok {
		return fmt.Errorf("%w: %s", models.ErrNotFound, id.Hex())
	}
	for key, value := range patch {
		s, _ := value.(string)
		switch key {
		case "name":
			bio.Name = s
		case "gender":
			bio.Gender = s
		case "dob":
			bio.Dob = s
		case "height":
			bio.Height = s
		case "religion":
			bio.Religion = s
		case "caste":
			bio.Caste = s
		case "marital_status":
			bio.MaritalStatus = s
		case "education":
			bio.Education = s
		case "occupation":
			bio.Occupation = s
		case "income":
			bio.Income = s
		case "father_name":
			bio.FatherName = s
		case "father_occupation":
			bio.FatherOccupation = s
		case "mother_name":
			bio.MotherName = s
		case "siblings":
			bio.Siblings = s
		case "city":
			bio.City = s
		case "phone_number":
			bio.PhoneNumber = s
		case "about":
			bio.About = s
		}
	}
	return nil
}

func (m *memBiodataRepo) DeleteBiodataByID(ctx context.Context, id primitive.ObjectID) error {
	m.calls++
	if _, ok := m.records[id]; !ok {
		return fmt.Errorf("%w: %s", models.ErrNotFound, id.Hex())
	}
	delete(m.records, id)
	return nil
}

func validBiodata() *models.Biodata {
	return &models.Biodata{
		Name:          "Asha Rao",
		Gender:        "Female",
		Dob:           "1992-03-10",
		Height:        "5'4",
		Religion:      "Hindu",
		MaritalStatus: "Never Married",
		Education:     "B.Tech Computer Science",
		Occupation:    "Software Engineer",
		City:          "Pune",
	}
}

func TestCreateThenGetRoundTrip(t *testing.T) {
	repo := newMemBiodataRepo()
	svc := NewBiodataService(repo)
	owner := uuid.New()

	input := validBiodata()
	id, err := svc.Create(context.Background(), owner, "Asha R", "https://img/asha.png", input)
	require.NoError(t, err)
	require.False(t, id.IsZero())

	got, err := svc.GetByID(context.Background(), id, owner)
	require.NoError(t, err)

	assert.Equal(t, owner, got.UserID)
	assert.Equal(t, "Asha Rao", got.Name)
	assert.Equal(t, "B.Tech Computer Science", got.Education)
	assert.Equal(t, "Asha R", got.AuthorName)
	assert.Equal(t, "https://img/asha.png", got.AuthorPhoto)
	assert.Equal(t, models.StatusActive, got.Status)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestCreateAuthorNameFallsBackToRecordName(t *testing.T) {
	repo := newMemBiodataRepo()
	svc := NewBiodataService(repo)

	input := validBiodata()
	id, err := svc.Create(context.Background(), uuid.New(), "", "", input)
	require.NoError(t, err)

	assert.Equal(t, "Asha Rao", repo.records[id].AuthorName)
}

func TestCreateRejectsMissingNameBeforeStoreCall(t *testing.T) {
	repo := newMemBiodataRepo()
	svc := NewBiodataService(repo)

	input := validBiodata()
	input.Name = ""
	_, err := svc.Create(context.Background(), uuid.New(), "", "", input)

	require.ErrorIs(t, err, models.ErrValidation)
	assert.Zero(t, repo.calls, "store must not be called when validation fails")
}

func TestUpdateMergesSingleFieldLeavingOthers(t *testing.T) {
	repo := newMemBiodataRepo()
	svc := NewBiodataService(repo)
	owner := uuid.New()

	id, err := svc.Create(context.Background(), owner, "", "", validBiodata())
	require.NoError(t, err)

	err = svc.Update(context.Background(), id, owner, models.BiodataPatch{"city": "Mumbai"})
	require.NoError(t, err)

	got, err := svc.GetByID(context.Background(), id, owner)
	require.NoError(t, err)
	assert.Equal(t, "Mumbai", got.City)
	assert.Equal(t, "Asha Rao", got.Name)
	assert.Equal(t, "Software Engineer", got.Occupation)
}

func TestSequentialDisjointUpdatesBothPersist(t *testing.T) {
	repo := newMemBiodataRepo()
	svc := NewBiodataService(repo)
	owner := uuid.New()

	id, err := svc.Create(context.Background(), owner, "", "", validBiodata())
	require.NoError(t, err)

	require.NoError(t, svc.Update(context.Background(), id, owner, models.BiodataPatch{"income": "18 LPA"}))
	require.NoError(t, svc.Update(context.Background(), id, owner, models.BiodataPatch{"about": "Loves hiking"}))

	got, err := svc.GetByID(context.Background(), id, owner)
	require.NoError(t, err)
	assert.Equal(t, "18 LPA", got.Income)
	assert.Equal(t, "Loves hiking", got.About)
}

func TestUpdateWithOnlyImmutableFieldsRejected(t *testing.T) {
	repo := newMemBiodataRepo()
	svc := NewBiodataService(repo)
	owner := uuid.New()

	id, err := svc.Create(context.Background(), owner, "", "", validBiodata())
	require.NoError(t, err)

	err = svc.Update(context.Background(), id, owner, models.BiodataPatch{"user_id": uuid.New().String()})
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestDeleteThenGetIsNotFound(t *testing.T) {
	repo := newMemBiodataRepo()
	svc := NewBiodataService(repo)
	owner := uuid.New()

	id, err := svc.Create(context.Background(), owner, "", "", validBiodata())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), id, owner))

	_, err = svc.GetByID(context.Background(), id, owner)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestListByOwnerNeverReturnsForeignRecords(t *testing.T) {
	repo := newMemBiodataRepo()
	svc := NewBiodataService(repo)
	alice := uuid.New()
	bob := uuid.New()

	_, err := svc.Create(context.Background(), alice, "", "", validBiodata())
	require.NoError(t, err)

	other := validBiodata()
	other.Name = "Rahul Mehta"
	_, err = svc.Create(context.Background(), bob, "", "", other)
	require.NoError(t, err)

	bios, err := svc.ListByOwner(context.Background(), alice)
	require.NoError(t, err)
	require.Len(t, bios, 1)
	for _, bio := range bios {
		assert.Equal(t, alice, bio.UserID)
	}
}

func TestListByOwnerEmptyIsNotAnError(t *testing.T) {
	repo := newMemBiodataRepo()
	svc := NewBiodataService(repo)

	bios, err := svc.ListByOwner(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.NotNil(t, bios)
	assert.Empty(t, bios)
}

func TestOwnershipEnforcedOnReadUpdateDelete(t *testing.T) {
	repo := newMemBiodataRepo()
	svc := NewBiodataService(repo)
	owner := uuid.New()
	intruder := uuid.New()

	id, err := svc.Create(context.Background(), owner, "", "", validBiodata())
	require.NoError(t, err)

	_, err = svc.GetByID(context.Background(), id, intruder)
	assert.ErrorIs(t, err, models.ErrForbidden)

	err = svc.Update(context.Background(), id, intruder, models.BiodataPatch{"city": "Delhi"})
	assert.ErrorIs(t, err, models.ErrForbidden)

	err = svc.Delete(context.Background(), id, intruder)
	assert.ErrorIs(t, err, models.ErrForbidden)

	// Record untouched throughout.
	got, err := svc.GetByID(context.Background(), id, owner)
	require.NoError(t, err)
	assert.Equal(t, "Pune", got.City)
}

func TestListDecoratesAge(t *testing.T) {
	repo := newMemBiodataRepo()
	svc := NewBiodataService(repo)
	owner := uuid.New()

	input := validBiodata()
	input.Dob = time.Now().AddDate(-30, -2, 0).Format(models.DobLayout)
	_, err := svc.Create(context.Background(), owner, "", "", input)
	require.NoError(t, err)

	bios, err := svc.ListByOwner(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, bios, 1)
	assert.Equal(t, 30, bios[0].Age)
}

func TestUpdateMissingRecordIsNotFound(t *testing.T) {
	repo := newMemBiodataRepo()
	svc := NewBiodataService(repo)

	err := svc.Update(context.Background(), primitive.NewObjectID(), uuid.New(), models.BiodataPatch{"city": "Goa"})
	if !errors.Is(err, models.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
