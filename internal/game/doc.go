// Package game defines the domain records shared across the pipeline:
// raw play-by-play rows as extracted from a game page, the per-game
// context (league and team identities), and the normalized play records
// produced by the normalization engine.
package game
