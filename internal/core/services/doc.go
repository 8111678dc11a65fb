// Package services implements the core business logic behind the driving
// ports. Services are thin orchestrators: they validate input, delegate
// to driven ports, and assemble results.
package services
