package service

import (
	"encoding/json"
	"fmt"
	"time"

	"debt-planner/domain"

	"github.com/cespare/xxhash/v2"
)

// comparisonKey hashes the request together with the day it was made, since
// payoff dates are relative to "now".
func comparisonKey(input domain.PlanInput, now time.Time) (string, error) {
	payload, err := json.Marshal(input)
	if err != nil {
		return "", fmt.Errorf("encoding plan input: %w", err)
	}
	return fmt.Sprintf("%s:%s:%016x", comparisonCachePrefix, now.Format("2006-01-02"), xxhash.Sum64(payload)), nil
}
