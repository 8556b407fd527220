package docstore

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	transactionsCollection = "transactions"
	goalsCollection        = "savings_goals"
)

// NewApp initializes the Firebase app backing both Firestore and ID token
// verification. credentialsFile may be empty, in which case application
// default credentials are used.
func NewApp(ctx context.Context, projectID, credentialsFile string) (*firebase.App, error) {
	conf := &firebase.Config{ProjectID: projectID}

	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	app, err := firebase.NewApp(ctx, conf, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}
	return app, nil
}

// mapError converts Firestore's gRPC errors into store errors.
func mapError(err error, operation string) error {
	if status.Code(err) == codes.NotFound {
		return ErrNotFound
	}
	return fmt.Errorf("%s: %w", operation, err)
}
