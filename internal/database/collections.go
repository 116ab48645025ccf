package database

import (
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/todolists/todolists/internal/config"
)

// Collections returns the flat default-list collection and the custom-list
// collection named in cfg.
func Collections(client *mongo.Client, cfg config.MongoDBConfig) (items, lists *mongo.Collection) {
	db := client.Database(cfg.Database)
	return db.Collection(cfg.ItemsCollection), db.Collection(cfg.ListsCollection)
}
