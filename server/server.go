package server

import (
	"context"
	"log"
	"os"

	cache "MediFlow360/config/cache"
	db "MediFlow360/config/db"
	"MediFlow360/realtime"

	"github.com/gin-gonic/gin"
)

type Options struct {
	CacheEnabled     bool
	MongoEnabled     bool
	WebServerEnabled bool
	WebServerPort    string

	JobsEnabled bool
	JobsHandler func()

	MigrationEnabled bool
	MigrationHandler func()

	WebServerPreHandler func(r *gin.Engine)
}

func GetDefaultOptions() Options {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return Options{
		CacheEnabled:     true,
		MongoEnabled:     true,
		WebServerEnabled: true,
		WebServerPort:    port,
	}
}

/*
* Start brings up the backing services in order: mongo, redis, the
* event hub bridge, migrations, jobs, then the web server. Handlers
* run only when their switch is on.
 */
func Start(opts Options) {
	if opts.MongoEnabled {
		if err := db.Connect(); err != nil {
			log.Fatal("Error while connecting to mongo:", err)
		}
	}
	if opts.CacheEnabled {
		if err := cache.Connect(); err != nil {
			log.Fatal("Error while connecting to redis:", err)
		}
		go realtime.DefaultHub.Run(context.Background())
	}
	if opts.MigrationEnabled && opts.MigrationHandler != nil {
		opts.MigrationHandler()
	}
	if opts.JobsEnabled && opts.JobsHandler != nil {
		opts.JobsHandler()
	}
	if !opts.WebServerEnabled {
		return
	}

	r := gin.Default()
	if opts.WebServerPreHandler != nil {
		opts.WebServerPreHandler(r)
	}
	if err := r.Run(":" + opts.WebServerPort); err != nil {
		log.Fatal("Error while starting web server:", err)
	}
}
