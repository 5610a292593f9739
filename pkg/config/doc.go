// Package config loads typed settings from environment variables.
//
// Structs declare their keys with env tags from github.com/caarlos0/env/v11.
// A .env file in the working directory is read once through
// github.com/joho/godotenv before the first parse; it never overrides
// variables that are already set.
//
//	var cfg mergepatch.Config
//	config.MustLoad(&cfg)
//
// Results are cached per type and prefix, so repeated loads are cheap and
// consistent for the life of the process.
package config
