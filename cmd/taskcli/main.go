// Package main implements the taskcli client for the taskdeck API.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"taskdeck/pkg/client"
)

var apiURL string

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "taskcli",
	Short:         "taskdeck - manage your task list from the terminal",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	defaultURL := os.Getenv("TASKDECK_API")
	if defaultURL == "" {
		defaultURL = "http://localhost:8080/api"
	}
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", defaultURL, "base URL of the taskdeck API")
}

// newClient builds a client seeded with the persisted session token, if any.
func newClient() (*client.Client, error) {
	token, err := loadToken()
	if err != nil {
		return nil, err
	}

	opts := []client.Option{}
	if token != "" {
		opts = append(opts, client.WithToken(token))
	}
	return client.New(apiURL, opts...)
}

func tokenPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "taskdeck", "token"), nil
}

func loadToken() (string, error) {
	path, err := tokenPath()
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func saveToken(token string) error {
	path, err := tokenPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(token), 0o600)
}

func clearToken() error {
	path, err := tokenPath()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
