// psyd is an HTTP service which replies with the song metadata of uploaded
// PsyFiles.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/mewkiz/psy/internal/server"
)

// flagOrigins contains an optional comma-separated list of origins allowed to
// make cross-origin requests.
var flagOrigins string

func init() {
	flag.StringVar(&flagOrigins, "origins", "", "An optional comma-separated list of allowed CORS origins.")
	flag.Usage = usage
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: psyd [OPTION]...")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "The listening port is read from $PORT (default 8080).")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Flags:")
	flag.PrintDefaults()
}

func main() {
	flag.Parse()

	var origins []string
	if flagOrigins != "" {
		origins = strings.Split(flagOrigins, ",")
	}
	router := server.NewRouter(server.NewHandler(), origins)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Printf("  POST /api/v1/parse  - Parse an uploaded PsyFile (form field \"file\")")
	log.Printf("  GET  /api/v1/health - Health check")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
