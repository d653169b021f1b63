// Package y2022 holds the solutions of Advent of Code 2022.
package y2022
