// Package y2024 holds the solutions of Advent of Code 2024.
package y2024
