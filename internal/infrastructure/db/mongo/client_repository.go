package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/JpHds/client-admin-api/internal/core/domain"
)

const clientCollection = "clients"

// ClientRepository persists client roster records.
type ClientRepository struct {
	coll *mongo.Collection
}

func NewClientRepository(db *mongo.Database) *ClientRepository {
	return &ClientRepository{coll: db.Collection(clientCollection)}
}

type mongoClient struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Username  string             `bson:"username"`
	Email     string             `bson:"email"`
	Phone     string             `bson:"phone"`
	Status    string             `bson:"status"`
	CreatedAt int64              `bson:"created_at"`
	UpdatedAt int64              `bson:"updated_at"`
}

// EnsureIndexes creates the unique username and email indexes for clients.
func (r *ClientRepository) EnsureIndexes(ctx context.Context) error {
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
		return fmt.Errorf("ensure client indexes: %w", err)
	}
	return nil
}

func (r *ClientRepository) Insert(ctx context.Context, c *domain.Client) (*domain.Client, error) {
	doc := mongoClient{
		Username:  c.Username,
		Email:     c.Email,
		Phone:     c.Phone,
		Status:    string(c.Status),
		CreatedAt: c.CreatedAt.Unix(),
		UpdatedAt: c.UpdatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateIdentity
		}
		return nil, fmt.Errorf("insert client: %w", err)
	}

	out := *c
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		out.ID = oid.Hex()
	}
	return &out, nil
}

func (r *ClientRepository) FindByID(ctx context.Context, id string) (*domain.Client, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrClientNotFound
	}

	var mc mongoClient
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrClientNotFound
		}
		return nil, fmt.Errorf("find client: %w", err)
	}
	return toDomainClient(&mc), nil
}

func (r *ClientRepository) List(ctx context.Context) ([]*domain.Client, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "username", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Client
	for cur.Next(ctx) {
		var mc mongoClient
		if err := cur.Decode(&mc); err != nil {
			return nil, fmt.Errorf("decode client: %w", err)
		}
		out = append(out, toDomainClient(&mc))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return out, nil
}

func (r *ClientRepository) Update(ctx context.Context, c *domain.Client) (*domain.Client, error) {
	oid, err := primitive.ObjectIDFromHex(c.ID)
	if err != nil {
		return nil, domain.ErrClientNotFound
	}

	update := bson.M{"$set": bson.M{
		"username":   c.Username,
		"email":      c.Email,
		"phone":      c.Phone,
		"status":     string(c.Status),
		"updated_at": c.UpdatedAt.Unix(),
	}}

	var mc mongoClient
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&mc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrClientNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateIdentity
		}
		return nil, fmt.Errorf("update client: %w", err)
	}
	return toDomainClient(&mc), nil
}

func (r *ClientRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrClientNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrClientNotFound
	}
	return nil
}

func toDomainClient(mc *mongoClient) *domain.Client {
	return &domain.Client{
		ID:        mc.ID.Hex(),
		Username:  mc.Username,
		Email:     mc.Email,
		Phone:     mc.Phone,
		Status:    domain.ClientStatus(mc.Status),
		CreatedAt: unixToTime(mc.CreatedAt),
		UpdatedAt: unixToTime(mc.UpdatedAt),
	}
}
