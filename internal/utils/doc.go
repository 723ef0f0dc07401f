// Package utils provides general-purpose helpers shared by the client and
// the webhook receiver: a preconfigured resty HTTP client, bearer/JWT token
// inspection, JSON response helpers and id generation.
package utils
