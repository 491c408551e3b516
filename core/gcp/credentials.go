package gcp

import (
	"context"
	"fmt"
	"os"

	"wedding-api/core/config"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// ClientOptions loads the service-account key once and returns the option
// shared by the Sheets and Cloud Storage clients.
func ClientOptions(ctx context.Context, cfg config.GoogleConfig) ([]option.ClientOption, error) {
	if cfg.CredentialsFile == "" {
		// Fall back to application default credentials (GCE, workload identity).
		return nil, nil
	}

	data, err := os.ReadFile(cfg.CredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("read google credentials: %w", err)
	}

	creds, err := google.CredentialsFromJSON(ctx, data,
		sheets.SpreadsheetsScope,
		"https://www.googleapis.com/auth/devstorage.full_control",
	)
	if err != nil {
		return nil, fmt.Errorf("parse google credentials: %w", err)
	}

	return []option.ClientOption{option.WithCredentials(creds)}, nil
}
