// meta/meta.go
package meta

// GO_ROUTINES defines the number of goroutines a strategy may use to weigh moves.
const GO_ROUTINES = 4

// GAMES defines the number of games per matchup.
const GAMES = 10

// MAX_TURNS caps a game; a full default board needs far fewer.
const MAX_TURNS = 300

// MAX_WIDTH and MIN_WIDTH define the default board: the median row and the first and last rows.
const MAX_WIDTH = 11
const MIN_WIDTH = 6

const SEED = 1

const OUTPUT_DIR = "experiments"
