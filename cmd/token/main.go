// Command token prints an access token for the HTTP API signed with SECRET_AUTH_KEY
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/harshitrajsinha/onecall-weather-go/internal/auth"
	"github.com/harshitrajsinha/onecall-weather-go/internal/config"
)

func main() {
	client := flag.String("client", "magicmirror", "client name placed in the token")
	ttl := flag.Duration("ttl", auth.DefaultAccessTokenTTL, "token lifetime")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	token, err := auth.CreateAccessToken(*client, cfg.SecretAuthKey, *ttl)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(token)
}
