package main

import (
	"errors"
	"flag"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/df07/go-whitted-raytracer/pkg/output"
	"github.com/df07/go-whitted-raytracer/web/server"
)

func main() {
	// A missing .env is fine; the environment may already be set
	_ = godotenv.Load()

	defaultPort := 8080
	if value, err := strconv.Atoi(os.Getenv("PORT")); err == nil {
		defaultPort = value
	}

	port := flag.Int("port", defaultPort, "Port to serve on")
	flag.Parse()

	var uploader server.Uploader
	s3Uploader, err := output.NewS3Uploader(output.S3ConfigFromEnv())
	switch {
	case errors.Is(err, output.ErrUploadDisabled):
		log.Printf("S3_BUCKET not set, uploads disabled")
	case err != nil:
		log.Printf("Error configuring S3 uploads: %v", err)
		os.Exit(1)
	default:
		uploader = s3Uploader
	}

	webServer := server.NewServer(*port, uploader)

	log.Printf("Whitted Raytracer Web Server")
	log.Printf("Visit http://localhost:%d to start rendering", *port)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
