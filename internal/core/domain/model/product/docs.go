// Package product is the minimal catalog that checkout reserves stock from.
package product
