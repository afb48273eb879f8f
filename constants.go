package barte

const (
	// Production
	BaseURLProduction = "https://api.barte.com"

	// Sandbox
	BaseURLSandbox = "https://sandbox-api.barte.com"
)

// Environment selects which API host the client talks to.
type Environment string

const (
	EnvironmentProduction Environment = "production"
	EnvironmentSandbox    Environment = "sandbox"
)
