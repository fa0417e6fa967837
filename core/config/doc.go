// Package config provides configuration management for the feature catalogue service.
//
// It uses Viper to read environment variables (optionally from a .env file loaded with
// godotenv). Defaults come from the `default` struct tags of each section.
//
// # Configuration Structure
//
//   - Server: HTTP port, API key, shutdown timeout
//   - Log: logging level and format
//   - Database: optional run history database (sqlite or mysql)
//   - Storage: optional S3/MinIO bucket for catalogue exports and report archives
//   - Loader: module loading concurrency and Init timeout
//   - Catalog: catalogue file overriding the embedded one
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
