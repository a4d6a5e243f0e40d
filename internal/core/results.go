package core

// PlayersResult holds the discovered player identifiers.
type PlayersResult struct {
	Players []string `json:"players"`
}

// Chunk is one unit of command output.
type Chunk string
