package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/JpHds/client-admin-api/internal/core/domain"
)

// Collection names for the two principal stores. They are separate
// collections, not one collection with a discriminator, mirroring the
// separate account tables of the system this replaces.
const (
	AdminCollection      = "admins"
	SuperAdminCollection = "super_admins"
)

// PrincipalRepository persists one kind of principal (admins or
// super-admins) in its own collection.
type PrincipalRepository struct {
	coll *mongo.Collection
	role domain.Role
}

// NewAdminRepository returns the repository backed by the admins collection.
func NewAdminRepository(db *mongo.Database) *PrincipalRepository {
	return &PrincipalRepository{coll: db.Collection(AdminCollection), role: domain.RoleAdmin}
}

// NewSuperAdminRepository returns the repository backed by the super_admins collection.
func NewSuperAdminRepository(db *mongo.Database) *PrincipalRepository {
	return &PrincipalRepository{coll: db.Collection(SuperAdminCollection), role: domain.RoleSuperAdmin}
}

type mongoPrincipal struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Username     string             `bson:"username"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password_hash"`
	CreatedAt    int64              `bson:"created_at"`
	UpdatedAt    int64              `bson:"updated_at"`
}

// EnsureIndexes creates the unique username and email indexes. Called once
// at startup; duplicate-key violations on these indexes are what surface as
// ErrDuplicateIdentity.
func (r *PrincipalRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	if err != nil {
		return fmt.Errorf("ensure %s indexes: %w", r.coll.Name(), err)
	}
	return nil
}

func (r *PrincipalRepository) Insert(ctx context.Context, p *domain.Principal) (*domain.Principal, error) {
	doc := mongoPrincipal{
		Username:     p.Username,
		Email:        p.Email,
		PasswordHash: p.PasswordHash,
		CreatedAt:    p.CreatedAt.Unix(),
		UpdatedAt:    p.UpdatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateIdentity
		}
		return nil, fmt.Errorf("insert principal: %w", err)
	}

	out := *p
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		out.ID = oid.Hex()
	}
	out.Role = r.role
	return &out, nil
}

func (r *PrincipalRepository) FindByUsername(ctx context.Context, username string) (*domain.Principal, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *PrincipalRepository) FindByEmail(ctx context.Context, email string) (*domain.Principal, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *PrincipalRepository) FindByID(ctx context.Context, id string) (*domain.Principal, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrAdminNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *PrincipalRepository) findOne(ctx context.Context, filter bson.M) (*domain.Principal, error) {
	var mp mongoPrincipal
	if err := r.coll.FindOne(ctx, filter).Decode(&mp); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrAdminNotFound
		}
		return nil, fmt.Errorf("find principal: %w", err)
	}
	return r.toDomain(&mp), nil
}

func (r *PrincipalRepository) List(ctx context.Context) ([]*domain.Principal, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "username", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list principals: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Principal
	for cur.Next(ctx) {
		var mp mongoPrincipal
		if err := cur.Decode(&mp); err != nil {
			return nil, fmt.Errorf("decode principal: %w", err)
		}
		out = append(out, r.toDomain(&mp))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list principals: %w", err)
	}
	return out, nil
}

func (r *PrincipalRepository) Update(ctx context.Context, id string, username, email string) (*domain.Principal, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrAdminNotFound
	}

	update := bson.M{"$set": bson.M{
		"username":   username,
		"email":      email,
		"updated_at": time.Now().UTC().Unix(),
	}}

	var mp mongoPrincipal
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&mp); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrAdminNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateIdentity
		}
		return nil, fmt.Errorf("update principal: %w", err)
	}
	return r.toDomain(&mp), nil
}

func (r *PrincipalRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrAdminNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete principal: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrAdminNotFound
	}
	return nil
}

func (r *PrincipalRepository) toDomain(mp *mongoPrincipal) *domain.Principal {
	return &domain.Principal{
		ID:           mp.ID.Hex(),
		Username:     mp.Username,
		Email:        mp.Email,
		PasswordHash: mp.PasswordHash,
		Role:         r.role,
		CreatedAt:    unixToTime(mp.CreatedAt),
		UpdatedAt:    unixToTime(mp.UpdatedAt),
	}
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
