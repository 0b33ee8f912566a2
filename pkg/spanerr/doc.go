// Package spanerr defines the typed error taxonomy raised by the span
// analyzer. Callers can branch on Kind rather than matching error text.
package spanerr
