package services

import (
	"time"

	"github.com/dmitrijs2005/securevault/internal/client/models"
)

// ExpiringWindow is how far ahead Summarize looks for keys about to expire.
const ExpiringWindow = 30 * 24 * time.Hour

// Summary is the dashboard overview of a key collection.
type Summary struct {
	Total        int
	ByType       map[models.KeyType]int
	Expired      int
	ExpiringSoon int
}

func Summarize(keys []*models.SecurityKey, now time.Time) Summary {
	s := Summary{ByType: make(map[models.KeyType]int, len(models.KeyTypes))}
	for _, t := range models.KeyTypes {
		s.ByType[t] = 0
	}

	for _, k := range keys {
		s.Total++
		s.ByType[k.Type]++
		switch {
		case k.ExpiresAt == nil:
		case k.Expired(now):
			s.Expired++
		case k.ExpiresAt.Before(now.Add(ExpiringWindow)):
			s.ExpiringSoon++
		}
	}
	return s
}
