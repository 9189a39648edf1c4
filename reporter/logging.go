package reporter

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"chickenfoot/game"
	"chickenfoot/player"
)

// LogReporter writes every event through zerolog. Opportunities are noisy,
// so they log at debug; everything else logs at info.
type LogReporter struct {
	logger zerolog.Logger
}

func NewLogReporter() *LogReporter {
	return &LogReporter{logger: zerolog.New(os.Stderr).With().Timestamp().Logger()}
}

// NewLogReporterWith uses the given logger instead of stderr.
func NewLogReporterWith(logger zerolog.Logger) *LogReporter {
	return &LogReporter{logger: logger}
}

func (l *LogReporter) PlayOrder(players []*player.Player) {
	l.logger.Info().Msgf("order of play determined: %v", players)
}

func (l *LogReporter) Draw(p *player.Player, tile *game.Tile) {
	l.logger.Info().Msgf("player %s drew tile %s", p, tile)
}

func (l *LogReporter) TurnStart(p *player.Player, state game.State) {
	l.logger.Info().Msgf("turn start: %s; game state: %s", p, state)
}

func (l *LogReporter) RootNotFound() {
	l.logger.Info().Msg("root not found, all players drawing")
}

func (l *LogReporter) RootFound(p *player.Player, tile *game.Tile) {
	l.logger.Info().Msgf("root tile %s played by %s", tile, p)
}

func (l *LogReporter) Opportunities(p *player.Player, tiles []*game.Tile) {
	l.logger.Debug().Msgf("opportunities for player %s: %v", p, tiles)
}

func (l *LogReporter) Play(p *player.Player, tile *game.Tile, parent *game.Node) {
	l.logger.Info().Msgf("player %s played %s under %s", p, tile, parent.Tile)
}

func (l *LogReporter) InitialHands(players []*player.Player) {
	hands := lo.Map(players, func(p *player.Player, _ int) string {
		return fmt.Sprintf("%s=%v", p, p.Hand)
	})
	l.logger.Info().Msgf("player hands: %v", hands)
}
