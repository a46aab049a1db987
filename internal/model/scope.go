package model

// Scope carries the per-request identity. The persistent store keys every
// collection by user id.
type Scope struct {
	UserID string
}

// Environment names.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
