// meta/meta.go
package meta

// DefaultDepth is the search depth in plies.
const DefaultDepth = 4

// MaxTurns bounds a game; a hexagon of 61 cells ends long before with passes included.
const MaxTurns = 200

// MaxNameLength is the fixed width of the name field on the wire.
const MaxNameLength = 16

const DefaultName = "HexAgent"

const DefaultHost = "127.0.0.1"

const DefaultPort = "6001"
