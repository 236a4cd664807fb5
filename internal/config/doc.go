// Package config defines the application configuration structure and
// loading logic. Settings come from environment variables (PHOTOAPI_
// prefix) and an optional config.yaml file, with environment variables
// taking precedence.
package config
