// Command token mints an operator bearer token for the registry API when
// auth.secret is configured.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"gestor-xarxa/internal/core/auth"
	"gestor-xarxa/internal/core/config"
)

func main() {
	subject := flag.String("sub", "operator", "token subject")
	ttl := flag.Duration("ttl", 0, "token lifetime (default: auth.token_ttl_min)")
	flag.Parse()

	_ = godotenv.Load()
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.Auth.Secret == "" {
		log.Fatal("auth.secret is empty; set it in the config or APP_AUTH_SECRET")
	}

	j := &auth.JWTer{
		Secret: []byte(cfg.Auth.Secret),
		Issuer: cfg.Auth.Issuer,
		TTL:    time.Duration(cfg.Auth.TokenTTL) * time.Minute,
	}
	if *ttl > 0 {
		j.TTL = *ttl
	}
	tok, err := j.Issue(*subject, auth.RoleAdmin)
	if err != nil {
		log.Fatalf("issue token: %v", err)
	}
	fmt.Println(tok)
}
