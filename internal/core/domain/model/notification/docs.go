// Package notification models user-facing notifications. A notification is created
// from a closed set of event types, each with a title and message template, and is
// afterwards only marked read.
package notification
