package config

import "github.com/joho/godotenv"

// loadEnvFiles loads KEY=VALUE files for local development if they exist.
// Variables already present in the environment win; missing files are ignored.
func loadEnvFiles(paths ...string) {
	for _, path := range paths {
		_ = godotenv.Load(path)
	}
}
