package repository

import (
	"context"
	"time"

	"coursecatalog/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoCourseRepo struct {
	DB *mongo.Client
}

func NewMongoCourseRepo(db *mongo.Client) *MongoCourseRepo {
	return &MongoCourseRepo{DB: db}
}

func (r *MongoCourseRepo) courses() *mongo.Collection {
	return r.DB.Database(databaseName).Collection("courses")
}

func (r *MongoCourseRepo) CreateCourse(course *models.Course) error {
	if course.ID == "" {
		course.ID = primitive.NewObjectID().Hex()
	}
	if course.CreatedAt.IsZero() {
		course.CreatedAt = time.Now().UTC()
	}

	_, err := r.courses().InsertOne(context.Background(), course)
	return err
}

func (r *MongoCourseRepo) GetAllCourses() ([]*models.Course, error) {
	ctx := context.Background()
	cur, err := r.courses().Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var courses []*models.Course
	if err := cur.All(ctx, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *MongoCourseRepo) GetCourseByID(id string) (*models.Course, error) {
	course := &models.Course{}
	err := r.courses().FindOne(context.Background(), bson.M{"_id": id}).Decode(course)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return course, nil
}

func (r *MongoCourseRepo) GetCoursesByIDs(ids []string) ([]*models.Course, error) {
	ctx := context.Background()
	cur, err := r.courses().Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var found []*models.Course
	if err := cur.All(ctx, &found); err != nil {
		return nil, err
	}

	// Preserve enrollment order; ids with no surviving course are skipped.
	byID := make(map[string]*models.Course, len(found))
	for _, c := range found {
		byID[c.ID] = c
	}
	courses := make([]*models.Course, 0, len(ids))
	for _, id := range ids {
		if c, ok := byID[id]; ok {
			courses = append(courses, c)
		}
	}
	return courses, nil
}

func (r *MongoCourseRepo) UpdateCourse(id string, course *models.Course) (*models.Course, error) {
	updated := &models.Course{}
	err := r.courses().FindOneAndUpdate(context.Background(),
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"title":       course.Title,
			"description": course.Description,
			"icon":        course.Icon,
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return updated, nil
}

func (r *MongoCourseRepo) DeleteCourse(id string) error {
	res, err := r.courses().DeleteOne(context.Background(), bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoCourseRepo) DeleteAllCourses() error {
	_, err := r.courses().DeleteMany(context.Background(), bson.M{})
	return err
}
