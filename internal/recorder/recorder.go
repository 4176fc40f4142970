package recorder

import "StockScout/internal/model"

// Recorder persists scoring runs for later comparison.
type Recorder interface {
	RecordScore(res *model.ScoreResult) error
	Close() error
}
