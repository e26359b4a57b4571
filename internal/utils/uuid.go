package utils

import "github.com/google/uuid"

// UUIDGenerator produces run identifiers embedded into report files so that
// separate saves can be correlated with log lines. V7 identifiers sort by
// creation time, which keeps a directory of reports listable in run order;
// the random fallback only matters on systems with a broken clock source.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a time-ordered run id.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
