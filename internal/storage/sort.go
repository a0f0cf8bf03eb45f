package storage

import (
	"sort"

	"github.com/mcoot/upwords-go/internal/model"
)

// SortByRecent orders games by UpdatedAt descending, ties broken by ID
func SortByRecent(games []*model.Game) {
	sort.Slice(games, func(i, j int) bool {
		if !games[i].UpdatedAt.Equal(games[j].UpdatedAt) {
			return games[i].UpdatedAt.After(games[j].UpdatedAt)
		}
		return games[i].ID < games[j].ID
	})
}
