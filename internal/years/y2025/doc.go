// Package y2025 holds the solutions of Advent of Code 2025.
package y2025
