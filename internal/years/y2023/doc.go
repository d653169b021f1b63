// Package y2023 holds the solutions of Advent of Code 2023.
package y2023
