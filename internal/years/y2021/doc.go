// Package y2021 holds the solutions of Advent of Code 2021.
package y2021
