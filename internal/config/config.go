package config

import "os"

type Config struct {
	// StoreDriver selects the KV backend: file, bolt or memory.
	StoreDriver string
	StorePath   string
	OutletID    string
}

func Load() Config {
	return Config{
		StoreDriver: getenv("TABLESIDE_STORE_DRIVER", "file"),
		StorePath:   getenv("TABLESIDE_STORE_PATH", "tableside.json"),
		OutletID:    getenv("TABLESIDE_OUTLET_ID", "1"),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
