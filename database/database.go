package database

import (
	"context"
	"fmt"
	"time"

	"travel-booking-webapp/config"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

var ctx = context.TODO()

var (
	UsersCollection        *mongo.Collection
	HotelsCollection       *mongo.Collection
	PackagesCollection     *mongo.Collection
	TravelCollection       *mongo.Collection
	BookingsCollection     *mongo.Collection
	PaymentsCollection     *mongo.Collection
	ChatSessionsCollection *mongo.Collection
)

// RedisClient is nil when REDIS_ADDR is not configured; Redis-backed helpers
// degrade to no-ops in that case.
var RedisClient *redis.Client

var client *mongo.Client

func DBInit(collectionName string) (*mongo.Collection, error) {
	if client == nil {
		clientOptions := options.Client().ApplyURI(config.C.Mongo.ConnString)
		connected, err := mongo.Connect(ctx, clientOptions)
		if err != nil {
			return nil, fmt.Errorf("cannot connect to the db: %v", err)
		}

		if err := connected.Ping(ctx, nil); err != nil {
			return nil, fmt.Errorf("db is not available: %v", err)
		}
		client = connected
	}

	return client.Database(config.C.Mongo.Database).Collection(collectionName), nil
}

// InitCollections connects to Mongo and populates every package-level
// collection handle.
func InitCollections() error {
	collections := map[string]**mongo.Collection{
		"users":        &UsersCollection,
		"hotels":       &HotelsCollection,
		"packages":     &PackagesCollection,
		"travel":       &TravelCollection,
		"bookings":     &BookingsCollection,
		"payments":     &PaymentsCollection,
		"chatSessions": &ChatSessionsCollection,
	}

	for name, target := range collections {
		coll, err := DBInit(name)
		if err != nil {
			return err
		}
		*target = coll
	}

	if err := ensureIndexes(); err != nil {
		return err
	}

	return nil
}

// ensureIndexes creates the text index backing hotel/package search.
func ensureIndexes() error {
	hotelIdx := mongo.IndexModel{
		Keys: bson.D{
			primitive.E{Key: "name", Value: "text"},
			primitive.E{Key: "city", Value: "text"},
			primitive.E{Key: "description", Value: "text"},
		},
	}
	if _, err := HotelsCollection.Indexes().CreateOne(ctx, hotelIdx); err != nil {
		return fmt.Errorf("cannot create hotel text index: %v", err)
	}

	packageIdx := mongo.IndexModel{
		Keys: bson.D{
			primitive.E{Key: "name", Value: "text"},
			primitive.E{Key: "destination", Value: "text"},
			primitive.E{Key: "description", Value: "text"},
		},
	}
	if _, err := PackagesCollection.Indexes().CreateOne(ctx, packageIdx); err != nil {
		return fmt.Errorf("cannot create package text index: %v", err)
	}

	return nil
}

// RedisInit connects the optional Redis client used for idempotency state
// and advisory room holds.
func RedisInit() error {
	if config.C.Redis.Addr == "" {
		zap.L().Info("redis not configured, idempotency falls back to in-memory store")
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     config.C.Redis.Addr,
		Password: config.C.Redis.Password,
		DB:       config.C.Redis.DB,
	})

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		return fmt.Errorf("redis is not available: %v", err)
	}

	RedisClient = rdb
	return nil
}

func InsertItem(item interface{}, collection *mongo.Collection) error {
	_, err := collection.InsertOne(ctx, item)
	if err != nil {
		return fmt.Errorf("server side problem occured while writing to database: %v", err)
	}
	return nil
}

func UpdateCollectionItem(itemId primitive.ObjectID, item interface{}, collection *mongo.Collection) error {
	_, err := collection.ReplaceOne(ctx,
		bson.D{primitive.E{Key: "_id", Value: itemId}},
		item)
	if err != nil {
		return fmt.Errorf("server side problem occured while updating database item: %v", err)
	}
	return nil
}
