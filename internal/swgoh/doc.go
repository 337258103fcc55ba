// Package swgoh holds the domain model shared by the data pipeline and the
// stat engine: stat identifiers and their display metadata, mod and relic
// constants, the normalized game-data tables, and the player roster unit
// snapshot in both wire shapes the game API has used over time.
package swgoh
