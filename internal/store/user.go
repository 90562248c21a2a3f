package store

import (
	"context"
	"errors"
	"time"

	"github.com/songwish/apiserver/types"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const usersCollection = "users"

// UserRepository handles persistence for user records.
type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(usersCollection)}
}

// Create inserts a new record and returns it with the generated identifier.
// No uniqueness check is made on email or phone: repeated registrations
// create distinct records.
func (r *UserRepository) Create(ctx context.Context, user types.User) (types.User, error) {
	user.ID = primitive.NilObjectID
	user.CreatedAt = time.Now()

	result, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		return types.User{}, err
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return types.User{}, errors.New("unexpected inserted id type")
	}
	user.ID = id
	return user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (types.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return types.User{}, ErrInvalidID
	}

	var user types.User
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return types.User{}, ErrNotFound
		}
		return types.User{}, err
	}
	return user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (types.User, error) {
	var user types.User
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return types.User{}, ErrNotFound
		}
		return types.User{}, err
	}
	return user, nil
}

// UpdatePreferences overwrites gender, genre and lyrics on the record with
// the given identifier. Last write wins; the returned bool reports whether
// a record was matched.
func (r *UserRepository) UpdatePreferences(ctx context.Context, id, gender, genre, lyrics string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, ErrInvalidID
	}

	update := bson.M{"$set": bson.M{
		"gender": gender,
		"genre":  genre,
		"lyrics": lyrics,
	}}
	result, err := r.coll.UpdateByID(ctx, oid, update)
	if err != nil {
		return false, err
	}
	return result.MatchedCount > 0, nil
}

// SetTTSURL records the archived audio location for the given identifier.
func (r *UserRepository) SetTTSURL(ctx context.Context, id, url string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, ErrInvalidID
	}

	result, err := r.coll.UpdateByID(ctx, oid, bson.M{"$set": bson.M{"ttsUrl": url}})
	if err != nil {
		return false, err
	}
	return result.MatchedCount > 0, nil
}

// EnsureIndexes creates the collection's secondary indexes. The email index
// is deliberately non-unique: duplicate registrations are allowed.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}},
	})
	return err
}
