package arena

import "go.uber.org/zap"

// Summary is the score of engine A.
type Summary struct {
	Games          int
	Wins           int
	Losses         int
	Draws          int
	FirstMoverWins int
}

func (s Summary) WinningFraction() float64 {
	if s.Games == 0 {
		return 0
	}
	return (float64(s.Wins) + 0.5*float64(s.Draws)) / float64(s.Games)
}

func collectResults(
	logger *zap.SugaredLogger,
	gameResults <-chan gameResult,
) Summary {
	var s Summary
	for gameResult := range gameResults {
		s.Games++
		switch gameResult.result {
		case gameResultDraw:
			s.Draws++
		case gameResultEngineAWins:
			s.Wins++
		default:
			s.Losses++
		}
		if gameResult.result != gameResultDraw && len(gameResult.moves)%2 == 1 {
			s.FirstMoverWins++
		}
		logger.Debugw("finished game",
			"id", gameResult.gameInfo.id,
			"number", gameResult.gameInfo.gameNumber,
			"engineAFirst", gameResult.gameInfo.engineAFirst,
			"result", gameResultString(gameResult.result),
			"board", gameResult.board,
			"moves", len(gameResult.moves))
	}
	return s
}

func gameResultString(v int) string {
	switch v {
	case gameResultEngineAWins:
		return "1-0"
	case gameResultEngineBWins:
		return "0-1"
	case gameResultDraw:
		return "1/2-1/2"
	}
	return ""
}
