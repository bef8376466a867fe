package models

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type BiodataRepo interface {
	CreateBiodata(ctx context.Context, bio *Biodata) (primitive.ObjectID, error)
	GetBiodataByID(ctx context.Context, id primitive.ObjectID) (*Biodata, error)
	ListBiodataByOwner(ctx context.Context, ownerId uuid.UUID) ([]*Biodata, error)
	UpdateBiodata(ctx context.Context, id primitive.ObjectID, patch BiodataPatch) error
	DeleteBiodataByID(ctx context.Context, id primitive.ObjectID) error
}

func (mdb *MongodbRepo) CreateBiodata(ctx context.Context, bio *Biodata) (primitive.ObjectID, error) {
	col, err := mdb.GetCollection(BiodataDbName, BiodataColName)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %v", ErrStore, err)
	}

	if bio.ID.IsZero() {
		bio.ID = primitive.NewObjectID()
	}

	res, err := col.InsertOne(ctx, bio)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: insert failed: %v", ErrStore, err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return bio.ID, nil
	}
	return id, nil
}

func (mdb *MongodbRepo) GetBiodataByID(ctx context.Context, id primitive.ObjectID) (*Biodata, error) {
	col, err := mdb.GetCollection(BiodataDbName, BiodataColName)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}

	var bio Biodata
	err = col.FindOne(ctx, bson.M{"_id": id}).Decode(&bio)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id.Hex())
		}
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}

	return &bio, nil
}

func (mdb *MongodbRepo) ListBiodataByOwner(ctx context.Context, ownerId uuid.UUID) ([]*Biodata, error) {
	col, err := mdb.GetCollection(BiodataDbName, BiodataColName)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}

	cursor, err := col.Find(ctx, bson.M{"user_id": ownerId})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}
	defer cursor.Close(ctx)

	// Empty slice, not nil, so callers can tell "no records" from "no result".
	bios := []*Biodata{}
	for cursor.Next(ctx) {
		var bio Biodata
		if err := cursor.Decode(&bio); err != nil {
			return nil, fmt.Errorf("%w: decode failed: %v", ErrStore, err)
		}
		bios = append(bios, &bio)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("%w: cursor error: %v", ErrStore, err)
	}

	return bios, nil
}

// UpdateBiodata merges the patch into the document with $set. Fields absent
// from the patch are left untouched; concurrent writers are last-write-wins.
func (mdb *MongodbRepo) UpdateBiodata(ctx context.Context, id primitive.ObjectID, patch BiodataPatch) error {
	col, err := mdb.GetCollection(BiodataDbName, BiodataColName)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStore, err)
	}

	res, err := col.UpdateByID(ctx, id, bson.M{"$set": bson.M(patch)})
	if err != nil {
		return fmt.Errorf("%w: update failed: %v", ErrStore, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id.Hex())
	}

	return nil
}

func (mdb *MongodbRepo) DeleteBiodataByID(ctx context.Context, id primitive.ObjectID) error {
	col, err := mdb.GetCollection(BiodataDbName, BiodataColName)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStore, err)
	}

	res, err := col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("%w: delete failed: %v", ErrStore, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id.Hex())
	}

	return nil
}
