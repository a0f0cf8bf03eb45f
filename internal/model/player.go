package model

import "strings"

// PlayerID uniquely identifies a player within a game
type PlayerID string

// ParsePlayerIDs splits a comma separated list of player names
func ParsePlayerIDs(s string) []PlayerID {
	var ids []PlayerID
	for _, part := range strings.Split(s, ",") {
		if name := strings.TrimSpace(part); name != "" {
			ids = append(ids, PlayerID(name))
		}
	}
	return ids
}
