// scripts/gcal-auth/main.go
//
// Run this ONCE locally to connect a Google account for calendar sync.
//
// Usage:
//   go run scripts/gcal-auth/main.go [credentials.json] [cache-dir]
//
// It prints a browser URL, you log in with your Google account, paste the
// authorization code, and the token is saved into the planner's token cache.

package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"one48-planner/pkg/googleauth"
)

func main() {
	credsPath := "google-credentials.json"
	if len(os.Args) > 1 {
		credsPath = os.Args[1]
	}
	cacheDir := ".credentials"
	if len(os.Args) > 2 {
		cacheDir = os.Args[2]
	}

	data, err := os.ReadFile(credsPath)
	if err != nil {
		log.Fatalf("Failed to read credentials file %q: %v", credsPath, err)
	}

	provider, err := googleauth.NewProvider(data, cacheDir)
	if err != nil {
		log.Fatalf("Failed to parse credentials: %v\nMake sure %q is an OAuth Desktop App credentials file.", err, credsPath)
	}

	authURL := provider.AuthURL("state-token")
	fmt.Println("=================================================================")
	fmt.Println("STEP 1: Open this URL in a browser and sign in to Google:")
	fmt.Println()
	fmt.Println(authURL)
	fmt.Println()
	fmt.Println("=================================================================")
	fmt.Print("STEP 2: Paste the authorization code here and press Enter: ")

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		log.Fatalf("Failed to read authorization code: %v", err)
	}

	if err := provider.Exchange(context.Background(), code); err != nil {
		log.Fatalf("Failed to exchange authorization code: %v", err)
	}

	fmt.Println()
	fmt.Printf("Token saved into %s\n", cacheDir)
	fmt.Println("Restart the backend to enable calendar sync.")
}
