package service

import (
	"fmt"
	"math"
)

type ScoreConverterService interface {
	ConvertToPercentage(correct, total int) (int, error)
}

type scoreConverterServiceImpl struct{}

func NewScoreConverterService() ScoreConverterService {
	return &scoreConverterServiceImpl{}
}

// ConvertToPercentage rounds correct/total to the nearest whole percent, halves
// rounding up. A quiz with nothing to score is 0%.
func (s *scoreConverterServiceImpl) ConvertToPercentage(correct, total int) (int, error) {
	if total == 0 {
		return 0, nil
	}
	if total < 0 || correct < 0 || correct > total {
		return 0, fmt.Errorf("score %d/%d is out of valid range", correct, total)
	}
	return int(math.Round(float64(correct) / float64(total) * 100)), nil
}
