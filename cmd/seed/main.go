// Command seed populates the lessons collection with the initial catalogue.
// It clears any existing lessons first, so it is safe to run repeatedly.
package main

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"afterschool/pkg/config"
	"afterschool/pkg/lesson"
	lessonmongo "afterschool/pkg/lesson/mongo"
	"afterschool/pkg/logger"
)

var lessons = []lesson.Lesson{
	{Subject: "Math", Location: "London", Price: 100, Spaces: 5, Icon: "fa-calculator"},
	{Subject: "Math", Location: "Oxford", Price: 100, Spaces: 5, Icon: "fa-calculator"},
	{Subject: "Math", Location: "York", Price: 80, Spaces: 5, Icon: "fa-calculator"},
	{Subject: "English", Location: "London", Price: 90, Spaces: 5, Icon: "fa-book"},
	{Subject: "English", Location: "York", Price: 85, Spaces: 5, Icon: "fa-book"},
	{Subject: "English", Location: "Bristol", Price: 95, Spaces: 5, Icon: "fa-book"},
	{Subject: "Music", Location: "Bristol", Price: 90, Spaces: 5, Icon: "fa-music"},
	{Subject: "Music", Location: "Manchester", Price: 85, Spaces: 5, Icon: "fa-music"},
	{Subject: "Science", Location: "London", Price: 110, Spaces: 5, Icon: "fa-flask"},
	{Subject: "Science", Location: "Oxford", Price: 120, Spaces: 5, Icon: "fa-flask"},
	{Subject: "Art", Location: "Manchester", Price: 75, Spaces: 5, Icon: "fa-palette"},
	{Subject: "Art", Location: "Bristol", Price: 80, Spaces: 5, Icon: "fa-palette"},
}

func main() {
	log := logger.NewDefault()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err == nil {
		err = client.Ping(ctx, readpref.Primary())
	}
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connect")
	}
	defer client.Disconnect(ctx)

	repo := lessonmongo.New(client.Database(cfg.Mongo.Database))
	n, err := repo.ReplaceAll(ctx, lessons)
	if err != nil {
		log.Fatal().Err(err).Msg("seed lessons")
	}
	log.Info().Int("inserted", n).Str("database", cfg.Mongo.Database).Msg("database seeded")
}
