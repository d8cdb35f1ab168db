package config

import "os"

// parseEnv overlays Config fields from environment variables. The variable
// names keep the contract of the original deployment (Cloud Run): PORT is a
// bare port number, DATABASE_URL a Postgres URL, JWT_SECRET the signing key.
func parseEnv(config *Config) {
	if port, ok := os.LookupEnv("PORT"); ok && port != "" {
		config.EndpointAddr = ":" + port
	}
	if dsn, ok := os.LookupEnv("DATABASE_URL"); ok && dsn != "" {
		config.DatabaseDSN = dsn
	}
	if secret, ok := os.LookupEnv("JWT_SECRET"); ok && secret != "" {
		config.SecretKey = secret
	}
}
