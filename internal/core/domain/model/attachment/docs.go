// Package attachment holds proof-of-delivery records and the upload rules shared by
// every image the marketplace accepts.
package attachment
