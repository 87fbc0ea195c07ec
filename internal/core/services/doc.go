// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Alongside the port implementations, this package hosts the building
// blocks of content generation: prompt builders, content generators,
// the generator registry and the schema validator.
package services
