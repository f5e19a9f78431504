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

const databaseName = "coursecatalog"

type MongoUserRepo struct {
	DB *mongo.Client
}

func NewMongoUserRepo(db *mongo.Client) *MongoUserRepo {
	return &MongoUserRepo{DB: db}
}

func (r *MongoUserRepo) users() *mongo.Collection {
	return r.DB.Database(databaseName).Collection("users")
}

// EnsureIndexes creates the unique email index; called once at startup.
func (r *MongoUserRepo) EnsureIndexes() error {
	_, err := r.users().Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *MongoUserRepo) CreateUser(user *models.User) error {
	ctx := context.Background()
	if user.ID == "" {
		user.ID = primitive.NewObjectID().Hex()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	if user.EnrolledCourses == nil {
		user.EnrolledCourses = []string{}
	}

	_, err := r.users().InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateEmail
	}
	return err
}

func (r *MongoUserRepo) GetUserByEmail(email string) (*models.User, error) {
	return r.findOne(bson.M{"email": email})
}

func (r *MongoUserRepo) GetUserByID(id string) (*models.User, error) {
	return r.findOne(bson.M{"_id": id})
}

func (r *MongoUserRepo) findOne(filter bson.M) (*models.User, error) {
	user := &models.User{}
	err := r.users().FindOne(context.Background(), filter).Decode(user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

func (r *MongoUserRepo) GetAllUsers() ([]*models.User, error) {
	ctx := context.Background()
	cur, err := r.users().Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var users []*models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *MongoUserRepo) DeleteUser(id string) error {
	res, err := r.users().DeleteOne(context.Background(), bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoUserRepo) SetResetToken(id, token string) error {
	res, err := r.users().UpdateOne(context.Background(),
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"reset_token": token}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoUserRepo) ConsumeResetToken(id, token, newHash string) error {
	// Matching on the stored token makes consumption single-use: a second
	// reset with the same token matches nothing.
	res, err := r.users().UpdateOne(context.Background(),
		bson.M{"_id": id, "reset_token": token},
		bson.M{
			"$set":   bson.M{"password": newHash},
			"$unset": bson.M{"reset_token": ""},
		},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoUserRepo) EnrollCourse(userID, courseID string) error {
	// The filter excludes users already holding courseID, so two racing
	// enrolls cannot both append; the loser matches nothing.
	res, err := r.users().UpdateOne(context.Background(),
		bson.M{"_id": userID, "enrolled_courses": bson.M{"$ne": courseID}},
		bson.M{"$addToSet": bson.M{"enrolled_courses": courseID}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrAlreadyEnrolled
	}
	return nil
}

func (r *MongoUserRepo) DeleteAllUsers() error {
	_, err := r.users().DeleteMany(context.Background(), bson.M{})
	return err
}
