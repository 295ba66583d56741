// Package workers runs the background jobs the server starts next to its
// listener.
package workers

import "context"

// Worker is a background job. Run must not block the caller for longer than
// it takes to start the job; long work belongs in a goroutine.
type Worker interface {
	Run(ctx context.Context)
}

// SchemaEnsurer creates the tables the service needs.
type SchemaEnsurer interface {
	EnsureSchema(ctx context.Context) error
}
