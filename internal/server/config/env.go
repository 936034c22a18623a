package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names understood by parseEnv.
const (
	EnvHTTPAddr       = "HTTP_ADDR"
	EnvGRPCAddr       = "GRPC_ADDR"
	EnvDatabaseDSN    = "DATABASE_DSN"
	EnvJWTSecret      = "JWT_SECRET"
	EnvTokenTTL       = "TOKEN_TTL"
	EnvBcryptCost     = "BCRYPT_COST"
	EnvCORSOrigins    = "CORS_ORIGINS"
	EnvS3RootUser     = "S3_ROOT_USER"
	EnvS3RootPassword = "S3_ROOT_PASSWORD"
	EnvS3Bucket       = "S3_BUCKET"
	EnvS3Region       = "S3_REGION"
	EnvS3BaseEndpoint = "S3_BASE_ENDPOINT"
)

// parseEnv overlays config with values from the dotenv file at envFile (if it
// exists) and from the process environment. The process environment wins over
// the file. Unset variables leave the current value untouched; malformed
// numbers or durations panic, like every other config source.
func parseEnv(config *Config, envFile string) {
	values := map[string]string{}

	if envFile != "" {
		fileValues, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			values = fileValues
		case errors.Is(err, fs.ErrNotExist):
		default:
			panic(err)
		}
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := values[key]
		return v, ok
	}

	setString := func(key string, dst *string) {
		if v, ok := lookup(key); ok {
			*dst = v
		}
	}

	setString(EnvHTTPAddr, &config.EndpointAddrHTTP)
	setString(EnvGRPCAddr, &config.EndpointAddrGRPC)
	setString(EnvDatabaseDSN, &config.DatabaseDSN)
	setString(EnvJWTSecret, &config.SecretKey)
	setString(EnvS3RootUser, &config.S3RootUser)
	setString(EnvS3RootPassword, &config.S3RootPassword)
	setString(EnvS3Bucket, &config.S3Bucket)
	setString(EnvS3Region, &config.S3Region)
	setString(EnvS3BaseEndpoint, &config.S3BaseEndpoint)

	if v, ok := lookup(EnvTokenTTL); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		config.TokenValidityDuration = d
	}

	if v, ok := lookup(EnvBcryptCost); ok {
		cost, err := strconv.Atoi(v)
		if err != nil {
			panic(err)
		}
		config.BcryptCost = cost
	}

	if v, ok := lookup(EnvCORSOrigins); ok {
		config.AllowedOrigins = splitList(v)
	}
}

// splitList splits a comma separated list, dropping blanks.
func splitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
