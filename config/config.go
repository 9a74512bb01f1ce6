/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package config loads site credentials from a dotenv file and client options
// from YAML.
package config

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-openapi/strfmt"
	"github.com/joho/godotenv"
	wperrors "github.com/suparena/wpstore/errors"
)

// APIPath is appended to the site root to form the REST base URL.
const APIPath = "/wp-json/wp/v2"

// DefaultEnvFileName is looked up in the user's home directory.
const DefaultEnvFileName = ".wpstore.env"

var envKeys = []string{"AUTH_USER", "AUTH_PASS", "BASE_URL"}

// Config holds the credentials and REST base URL of one site.
type Config struct {
	AuthUser string
	AuthPass string
	BaseURL  string
}

// DefaultEnvFile returns ~/.wpstore.env.
func DefaultEnvFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultEnvFileName
	}
	return filepath.Join(home, DefaultEnvFileName)
}

// Load reads AUTH_USER, AUTH_PASS and BASE_URL from envFile, overridden by the
// process environment. An empty envFile means DefaultEnvFile; a missing file
// contributes nothing. BASE_URL is reduced to its scheme and host and the REST
// path is appended.
func Load(envFile string) (*Config, error) {
	if envFile == "" {
		envFile = DefaultEnvFile()
	}
	values, err := godotenv.Read(envFile)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read %s: %w", envFile, err)
		}
		values = map[string]string{}
	}
	for _, key := range envKeys {
		if v, ok := os.LookupEnv(key); ok {
			values[key] = v
		}
	}

	cfg := &Config{
		AuthUser: values["AUTH_USER"],
		AuthPass: values["AUTH_PASS"],
	}
	for _, key := range envKeys {
		if values[key] == "" {
			return nil, wperrors.NewValidationError(strings.ToLower(key), "no value found")
		}
	}

	cfg.BaseURL, err = NormalizeBaseURL(values["BASE_URL"])
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// NormalizeBaseURL validates a site URL and returns scheme://host/wp-json/wp/v2.
func NormalizeBaseURL(raw string) (string, error) {
	if !strfmt.Default.Validates("uri", raw) {
		return "", wperrors.NewValidationError("base_url", fmt.Sprintf("%q is not a URI", raw))
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", wperrors.NewValidationError("base_url", fmt.Sprintf("%q needs a scheme and a host", raw))
	}
	root := url.URL{Scheme: u.Scheme, Host: u.Host}
	return root.String() + APIPath, nil
}

// AuthHeader returns the Basic authorization header value.
func (c *Config) AuthHeader() string {
	token := base64.StdEncoding.EncodeToString([]byte(c.AuthUser + ":" + c.AuthPass))
	return "Basic " + token
}
