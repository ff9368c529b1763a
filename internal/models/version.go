package models

// VersionInfo describes the running service.
// swagger:model VersionInfo
type VersionInfo struct {
	// Version of the service
	// example: 0.1.0
	Version string `json:"version"`

	// Name of the service
	// example: divergent-flow-core
	Service string `json:"service"`

	// When the version info was generated, UTC
	// example: 2025-10-06T20:30:00.000Z
	Timestamp string `json:"timestamp"`
}
