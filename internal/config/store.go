package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// DefaultPropertiesPath is where the store properties are looked up,
// relative to the working directory.
const DefaultPropertiesPath = "db.properties"

// EnvPrefix prefixes every environment override, e.g. ROSTER_URLDATABASE.
const EnvPrefix = "ROSTER_"

// Store holds the connection settings for the relational store.
//
// Keys in the properties file are matched case-insensitively, so the
// historical urlDataBase spelling works unchanged.
type Store struct {
	URL         string `koanf:"urldatabase" validate:"required"`
	User        string `koanf:"user"`
	Password    string `koanf:"password"`
	AutoMigrate bool   `koanf:"automigrate"`
}

// StoreSource yields the store settings on demand. The connection manager
// calls it once, the first time a connection is requested.
type StoreSource func() (*Store, error)

// StaticStore returns a source that always yields a copy of s.
func StaticStore(s Store) StoreSource {
	return func() (*Store, error) {
		st := s
		return &st, nil
	}
}

// PropertiesSource returns a source reading the properties file at path.
func PropertiesSource(path string) StoreSource {
	return func() (*Store, error) {
		return LoadStore(path)
	}
}

// propertiesProvider is a koanf.Provider over a KEY=value file.
type propertiesProvider struct {
	path string
}

func (p propertiesProvider) ReadBytes() ([]byte, error) {
	return nil, errors.New("properties provider does not support this method")
}

func (p propertiesProvider) Read() (map[string]interface{}, error) {
	values, err := godotenv.Read(p.path)
	if err != nil {
		return nil, err
	}

	out := make(map[string]interface{}, len(values))
	for k, v := range values {
		out[strings.ToLower(strings.TrimSpace(k))] = v
	}
	return out, nil
}

// LoadStore reads the properties file at path, applies ROSTER_ environment
// overrides and validates the result. A missing file is tolerated as long
// as the environment supplies the URL.
func LoadStore(path string) (*Store, error) {
	if path == "" {
		path = DefaultPropertiesPath
	}

	k := koanf.New(".")

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(propertiesProvider{path: path}, nil); err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load environment overrides: %w", err)
	}

	store := &Store{AutoMigrate: true}
	if err := k.Unmarshal("", store); err != nil {
		return nil, fmt.Errorf("failed to decode store config: %w", err)
	}
	store.URL = strings.TrimSpace(store.URL)

	if err := validator.New().Struct(store); err != nil {
		return nil, fmt.Errorf("invalid store config in %s: urlDataBase is required", path)
	}

	return store, nil
}
