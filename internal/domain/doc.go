// Package domain defines the sampling and storage models shared across the app.
// It contains plain types (wire/state) and contracts (interfaces) only.
package domain
