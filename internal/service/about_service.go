package service

import (
	"math"

	"github.com/vbonduro/councilweb/internal/domain"
	"github.com/vbonduro/councilweb/internal/fallback"
)

// CompletionRate is completed/total as a whole percentage, rounded half up;
// zero when there is nothing to complete.
func CompletionRate(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

type PledgeProgress struct {
	domain.PledgeCategory
	Completed int
	Total     int
	Rate      int
}

type PledgeSummary struct {
	CouncilName string
	Categories  []PledgeProgress
	Completed   int
	Pending     int
	Total       int
	Rate        int
}

func Pledges() *PledgeSummary {
	sum := &PledgeSummary{CouncilName: fallback.CouncilName}
	for _, c := range fallback.PledgeCategories() {
		p := PledgeProgress{PledgeCategory: c, Total: len(c.Pledges)}
		for _, pl := range c.Pledges {
			if pl.Completed {
				p.Completed++
			}
		}
		p.Rate = CompletionRate(p.Completed, p.Total)
		sum.Categories = append(sum.Categories, p)
		sum.Completed += p.Completed
		sum.Total += p.Total
	}
	sum.Pending = sum.Total - sum.Completed
	sum.Rate = CompletionRate(sum.Completed, sum.Total)
	return sum
}

func Organization() domain.Roster {
	return fallback.Roster()
}

type KakaoChannel struct {
	Title  string
	URL    string
	Notice []string
}

func Kakao(channelURL string) KakaoChannel {
	if channelURL == "" {
		channelURL = fallback.DefaultKakaoURL
	}
	return KakaoChannel{
		Title:  fallback.KakaoChannelTitle,
		URL:    channelURL,
		Notice: fallback.KakaoNotice,
	}
}
