// Package config provides configuration management for the Furnishing Helper.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file. Defaults come from the `default` struct tags of each section.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, JWT secret, token lifetime)
//   - Database: driver and connection details (mysql, postgres, sqlite)
//   - Storage: S3/MinIO credentials, bucket and catalog document name
//   - Log: Logging level and format
//   - Cache: catalog snapshot TTL and optional Redis backend
//
// An optional config.yaml in the same directory supplies values below the
// .env file and environment variables. LoadConfig validates the result.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
