// Package config provides configuration management for DecoChanges.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file, with defaults declared as struct tags.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Server: HTTP server settings for serve mode (port, API key)
//   - Storage: S3/MinIO credentials and exports bucket
//   - Log: Logging level and format
//   - Compare: Export parsing policy (default quantity)
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Storage.Bucket)
package config
