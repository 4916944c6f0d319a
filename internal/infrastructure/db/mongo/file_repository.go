package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/brvhprince/planner-api/internal/core/domain"
)

const collectionFiles = "files"

type FileRepository struct {
	col *mongo.Collection
}

func NewFileRepository(db *mongo.Database) *FileRepository {
	return &FileRepository{col: db.Collection(collectionFiles)}
}

func (r *FileRepository) Create(ctx context.Context, file *domain.FileDetails) (*domain.FileDetails, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, file); err != nil {
		return nil, domain.NewDatabaseError("saving your file", "files.insert", err)
	}
	return file, nil
}

func (r *FileRepository) FindByIDs(ctx context.Context, ids []string) ([]*domain.FileDetails, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{"file_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, domain.NewDatabaseError("fetching your files", "files.find", err)
	}
	defer cursor.Close(ctx)

	var files []*domain.FileDetails
	for cursor.Next(ctx) {
		var f domain.FileDetails
		if err := cursor.Decode(&f); err != nil {
			return nil, domain.NewDatabaseError("fetching your files", "files.decode", err)
		}
		files = append(files, &f)
	}
	if err := cursor.Err(); err != nil {
		return nil, domain.NewDatabaseError("fetching your files", "files.cursor", err)
	}
	return files, nil
}
