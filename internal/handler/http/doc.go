// Package http is the HTTP transport of the spreadsheet webhook receiver.
//
// It exposes the webhook the client's sync bridge posts to, a manual
// reconcile trigger and a read-only view of the stored rows. Tracing, access
// logging and response compression are applied here before a request
// reaches the spreadsheet service.
package http
