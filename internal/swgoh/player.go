package swgoh

// Player is a player profile as returned by the game's player endpoint,
// reduced to the fields roster calculations consume.
type Player struct {
	Name     string `json:"name,omitempty"`
	PlayerID string `json:"playerId,omitempty"`
	AllyCode int    `json:"allyCode,omitempty"`

	RosterUnits []*RosterUnit `json:"rosterUnit"`
}
