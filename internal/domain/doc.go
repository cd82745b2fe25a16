// Package domain defines core data models and interfaces shared across the app.
// It contains plain types, contracts (interfaces) and error kinds only.
package domain
