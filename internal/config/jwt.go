package config

import (
	"log"
	"os"
	"sync"
)

type JWTConfig struct {
	Secret string
}

var (
	jwtConfig *JWTConfig
	jwtOnce   sync.Once
)

func LoadJWTConfig() *JWTConfig {
	jwtOnce.Do(func() {
		secret := os.Getenv("JWT_SECRET")
		if secret == "" {
			secret = "DEV_ONLY_SECRET_CHANGE_THIS"
			log.Println("Warning: JWT_SECRET not set, using development secret")
		}
		jwtConfig = &JWTConfig{Secret: secret}
	})
	return jwtConfig
}
