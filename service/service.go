// Package service defines the lifecycle contract for the game's outer subsystems
// and a hub that brings them up in dependency order
package service

// Service is a long-lived subsystem with an explicit lifecycle
// Terminal and audio implement it; the game session drives it through a Hub
type Service interface {
	// Name returns the unique identifier for this service
	Name() string

	// Dependencies returns names of services that must Init before this one
	Dependencies() []string

	// Init prepares resources; args are service-specific
	Init(args ...any) error

	// Start begins operation, called after every service is initialized
	Start() error

	// Stop releases resources; must be safe to call more than once
	Stop() error
}
