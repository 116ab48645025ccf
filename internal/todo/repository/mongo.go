package repository

import (
	"context"
	"fmt"

	"github.com/todolists/todolists/internal/todo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// newID mirrors what the server would assign, as a hex string so embedded
// items and top-level documents share one id format.
func newID() string {
	return primitive.NewObjectID().Hex()
}

// MongoItemRepo stores default-list items as flat documents in one collection.
// Reads sort by _id; ObjectID hex ids grow with creation time.
type MongoItemRepo struct {
	col *mongo.Collection
}

func NewMongoItemRepo(col *mongo.Collection) *MongoItemRepo {
	return &MongoItemRepo{col: col}
}

func (m *MongoItemRepo) List(ctx context.Context) ([]todo.Item, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cur, err := m.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find items: %w", err)
	}
	defer cur.Close(ctx)
	out := []todo.Item{}
	for cur.Next(ctx) {
		var it todo.Item
		if err := cur.Decode(&it); err != nil {
			return nil, fmt.Errorf("decode item: %w", err)
		}
		out = append(out, it)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}
	return out, nil
}

func (m *MongoItemRepo) IsEmpty(ctx context.Context) (bool, error) {
	n, err := m.col.CountDocuments(ctx, bson.M{}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count items: %w", err)
	}
	return n == 0, nil
}

// seedID gives the i-th seed item a fixed ObjectID-shaped id with a zero
// timestamp, so seed items sort ahead of everything added later. Two
// concurrent seeders collide on the first _id and only one batch lands.
func seedID(i int) string {
	return fmt.Sprintf("%024x", i+1)
}

func (m *MongoItemRepo) SeedIfEmpty(ctx context.Context, items []todo.Item) (bool, error) {
	empty, err := m.IsEmpty(ctx)
	if err != nil || !empty {
		return false, err
	}
	docs := make([]interface{}, 0, len(items))
	for i, it := range items {
		it.ID = seedID(i)
		docs = append(docs, it)
	}
	if _, err := m.col.InsertMany(ctx, docs, options.InsertMany().SetOrdered(true)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return false, nil
		}
		return false, fmt.Errorf("seed items: %w", err)
	}
	return true, nil
}

func (m *MongoItemRepo) Insert(ctx context.Context, item todo.Item) (todo.Item, error) {
	if item.ID == "" {
		item.ID = newID()
	}
	if _, err := m.col.InsertOne(ctx, item); err != nil {
		return todo.Item{}, fmt.Errorf("insert item: %w", err)
	}
	return item, nil
}

func (m *MongoItemRepo) Delete(ctx context.Context, id string) error {
	if _, err := m.col.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

// MongoListRepo stores one document per custom list with the items embedded.
// EnsureIndexes must run once so that concurrent creations of the same name
// surface as ErrDuplicate instead of two documents.
type MongoListRepo struct {
	col *mongo.Collection
}

func NewMongoListRepo(col *mongo.Collection) *MongoListRepo {
	return &MongoListRepo{col: col}
}

// EnsureIndexes creates the unique index on the list name.
func (m *MongoListRepo) EnsureIndexes(ctx context.Context) error {
	idx := mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_list_name"),
	}
	if _, err := m.col.Indexes().CreateOne(ctx, idx); err != nil {
		return fmt.Errorf("create list name index: %w", err)
	}
	return nil
}

func (m *MongoListRepo) FindByName(ctx context.Context, name string) (*todo.List, error) {
	var l todo.List
	if err := m.col.FindOne(ctx, bson.M{"name": name}).Decode(&l); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("find list %q: %w", name, err)
	}
	return normalized(&l), nil
}

func (m *MongoListRepo) Insert(ctx context.Context, l todo.List) (*todo.List, error) {
	doc := l.Clone()
	if doc.ID == "" {
		doc.ID = newID()
	}
	for i := range doc.Items {
		if doc.Items[i].ID == "" {
			doc.Items[i].ID = newID()
		}
	}
	if _, err := m.col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("insert list %q: %w", l.Name, err)
	}
	return &doc, nil
}

func (m *MongoListRepo) PushItem(ctx context.Context, name string, item todo.Item) (*todo.List, error) {
	if item.ID == "" {
		item.ID = newID()
	}
	return m.update(ctx, name, bson.M{"$push": bson.M{"items": item}})
}

func (m *MongoListRepo) PullItem(ctx context.Context, name, itemID string) (*todo.List, error) {
	return m.update(ctx, name, bson.M{"$pull": bson.M{"items": bson.M{"_id": itemID}}})
}

func (m *MongoListRepo) update(ctx context.Context, name string, change bson.M) (*todo.List, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var l todo.List
	if err := m.col.FindOneAndUpdate(ctx, bson.M{"name": name}, change, opts).Decode(&l); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("update list %q: %w", name, err)
	}
	return normalized(&l), nil
}

func normalized(l *todo.List) *todo.List {
	if l.Items == nil {
		l.Items = []todo.Item{}
	}
	return l
}
