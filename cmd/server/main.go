// Command server runs the positive-vibes HTTP service: the JSON API under
// /api/v1, the live dashboard stream and the server-rendered pages.
//
// Configuration comes from the environment, an optional .env file and an
// optional config.yaml (see internal/config).
package main

import (
	"context"
	"log"

	"github.com/heartmarshall/positive-vibes/internal/app"
)

func main() {
	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("server: %v", err)
	}
}
