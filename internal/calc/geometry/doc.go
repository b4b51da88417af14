// Package geometry implements the shape calculators. Every solver validates
// its dimensions first and returns an error for degenerate shapes.
package geometry
