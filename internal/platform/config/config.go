package config

import "os"

// Demo captures configuration for the familytree demo binary.
type Demo struct {
	Locale string
	Format string
}

// FromEnv builds a Demo config from environment variables so main stays lean.
func FromEnv() Demo {
	locale := os.Getenv("FAMILYTREE_LOCALE")
	if locale == "" {
		locale = "en-US"
	}

	format := os.Getenv("FAMILYTREE_FORMAT")
	switch format {
	case "json", "proto":
	default:
		format = "json"
	}

	return Demo{
		Locale: locale,
		Format: format,
	}
}
