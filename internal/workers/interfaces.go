// Package workers runs the background jobs of both binaries: the client's
// token refresher and the receiver's daily sheet rebuild.
package workers

import "context"

// Worker is a background job with an explicit lifecycle.
//
// Start launches the job and returns immediately; the job runs until ctx is
// cancelled or Stop is called. Stop blocks until the job has exited and is
// safe to call on a job that is not running.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
