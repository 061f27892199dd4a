package stats

import (
	"context"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/nexusdraft/hots-draft-backend/internal/draft"
)

// Store reads player win-rate aggregates from the already-populated
// stats database. It never writes; the ingest pipeline that fills
// player_hero_stats lives elsewhere.
type Store struct {
	db *gorm.DB
}

func Open(dsn string) (*Store, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open stats db: %w", err)
	}
	return &Store{db: db}, nil
}

// heroLine is one aggregated row of a player's record on a hero.
type heroLine struct {
	Hero  string
	Games int
	Wins  int
}

// PlayerStats aggregates a player's per-hero record, scoped to one
// battleground when given, across all battlegrounds otherwise.
func (s *Store) PlayerStats(ctx context.Context, battletag, battleground string) (*draft.PlayerStats, error) {
	q := s.db.WithContext(ctx).
		Table("player_hero_stats").
		Select("hero, sum(games_played) as games, sum(games_won) as wins").
		Where("battletag = ?", battletag).
		Group("hero")
	if battleground != "" {
		q = q.Where("battleground = ?", battleground)
	}

	var lines []heroLine
	if err := q.Scan(&lines).Error; err != nil {
		return nil, fmt.Errorf("player stats for %s: %w", battletag, err)
	}
	return buildPlayerStats(battletag, lines), nil
}

// buildPlayerStats converts aggregated rows into the engine's shape,
// deriving per-hero and roster-average win rates.
func buildPlayerStats(battletag string, lines []heroLine) *draft.PlayerStats {
	ps := &draft.PlayerStats{
		Battletag: battletag,
		Heroes:    make(map[string]draft.HeroRecord, len(lines)),
	}
	totalGames, totalWins := 0, 0
	for _, l := range lines {
		if l.Games <= 0 {
			continue
		}
		ps.Heroes[l.Hero] = draft.HeroRecord{
			Games:   l.Games,
			Wins:    l.Wins,
			WinRate: float64(l.Wins) / float64(l.Games) * 100,
		}
		totalGames += l.Games
		totalWins += l.Wins
	}
	if totalGames > 0 {
		ps.Overall = float64(totalWins) / float64(totalGames) * 100
	}
	return ps
}
