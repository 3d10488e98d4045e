package repository

import (
	"context"
	"log"

	"github.com/baonguyen204/doc-summarizer-be/types"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type DocumentRepo interface {
	CreateRecord(ctx context.Context, record *types.IngestionRecord) error
	ListRecords(ctx context.Context, limit int64) ([]*types.IngestionRecord, error)
}

type documentRepo struct {
	collection *mongo.Collection
}

func NewDocumentRepo(db *mongo.Database) DocumentRepo {
	// check if collection does not exist, create one
	collectionNames, err := db.ListCollectionNames(context.Background(), bson.D{})
	if err != nil {
		panic(err)
	}
	collectionExists := false
	for _, name := range collectionNames {
		if name == "ingestions" {
			collectionExists = true
			break
		}
	}
	collection := db.Collection("ingestions")
	if !collectionExists {
		indexes := []mongo.IndexModel{
			{
				Keys: bson.D{
					{Key: "filename", Value: 1},
				},
			},
			{
				Keys: bson.D{
					{Key: "created_at", Value: -1},
				},
			},
		}

		_, err = collection.Indexes().CreateMany(context.Background(), indexes)
		if err != nil {
			log.Printf("Error creating indexes: %v", err)
			return nil
		}
	}

	return &documentRepo{
		collection: collection,
	}
}

func (r *documentRepo) CreateRecord(ctx context.Context, record *types.IngestionRecord) error {
	_, err := r.collection.InsertOne(ctx, record)
	return err
}

func (r *documentRepo) ListRecords(ctx context.Context, limit int64) ([]*types.IngestionRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}
	cursor, err := r.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []*types.IngestionRecord
	for cursor.Next(ctx) {
		var record types.IngestionRecord
		if err := cursor.Decode(&record); err != nil {
			return nil, err
		}
		records = append(records, &record)
	}
	return records, nil
}
