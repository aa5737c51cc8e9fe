// config/db.go
package config

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ConnectDB establishes connection to MongoDB
func ConnectDB() *mongo.Client {
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = os.Getenv("MONGODB_URI")
	}
	if mongoURI == "" {
		mongoURI = "mongodb://127.0.0.1:27017"
	}

	// Log connection URI (without password for security)
	log.Printf("Connecting to MongoDB at: %s", maskMongoURI(mongoURI))

	clientOptions := options.Client().ApplyURI(mongoURI)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Fatal("MongoDB connection error:", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Fatal("MongoDB ping error:", err)
	}

	log.Println("Connected to MongoDB")

	setupCollections(client)

	return client
}

// GetDatabase returns the application database
func GetDatabase(client *mongo.Client) *mongo.Database {
	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = "flowventory"
	}
	return client.Database(dbName)
}

// setupCollections ensures all collections and unique indexes exist. The
// unique indexes are what turns a duplicate sku/name/email into a
// duplicate-key error instead of a silent second document.
func setupCollections(client *mongo.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := GetDatabase(client)

	for _, collName := range []string{"users", "categories", "brands", "items", "logs"} {
		db.CreateCollection(ctx, collName)
	}

	uniqueIndexes := map[string]string{
		"users":      "email",
		"categories": "name",
		"brands":     "name",
		"items":      "sku",
	}
	for collName, field := range uniqueIndexes {
		coll := db.Collection(collName)
		indexModel := mongo.IndexModel{
			Keys:    bson.D{{Key: field, Value: 1}},
			Options: options.Index().SetUnique(true),
		}
		if _, err := coll.Indexes().CreateOne(ctx, indexModel); err != nil {
			log.Printf("Error creating %s index for %s: %v", field, collName, err)
		}
	}

	// Log listing always sorts newest-first
	logsColl := db.Collection("logs")
	timestampIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "timestamp", Value: -1}},
	}
	if _, err := logsColl.Indexes().CreateOne(ctx, timestampIndex); err != nil {
		log.Printf("Error creating timestamp index for logs: %v", err)
	}

	log.Println("Database collections and indexes setup complete")
}

// maskMongoURI masks the password in MongoDB URI for logging
func maskMongoURI(uri string) string {
	if idx := strings.Index(uri, "@"); idx > 0 {
		if colonIdx := strings.LastIndex(uri[:idx], ":"); colonIdx > 0 {
			return uri[:colonIdx+1] + "***" + uri[idx:]
		}
	}
	return uri
}
