// Package fallback holds the built-in datasets shown when the backend has no
// answer, and the static content of the about pages.
//
// Every accessor returns a fresh copy; callers may filter or mutate the
// result freely.
package fallback

import (
	"slices"
	"time"

	"github.com/vbonduro/councilweb/internal/domain"
)

func FinanceReports() []domain.FinanceReport {
	created, _ := domain.ParseTimestamp("2025-06-30T10:00:00")
	return []domain.FinanceReport{{
		ID:          1,
		Title:       "2025년 미리보기 회계 보고서",
		Description: "2025년 미리보기 회계 내역 보고서입니다.",
		FileName:    "2025_1학기_회계보고서.pdf",
		FileURL:     "/finance/2025_1학기_회계보고서.pdf",
		FileSize:    2458624,
		Year:        2025,
		Month:       6,
		CreatedAt:   created,
	}}
}

// FinanceYears returns the year filter options: now's year and the five
// before it, newest first. Zero stands for "all years".
func FinanceYears(now time.Time) []int {
	years := []int{0}
	for y := now.Year(); y > now.Year()-6; y-- {
		years = append(years, y)
	}
	return years
}

var rentalItems = []domain.RentalItem{
	{ID: 1, Name: "공학용 계산기", Quantity: 8, Category: "학용품"},
	{ID: 2, Name: "우산", Quantity: 2, Category: "생활용품"},
	{ID: 3, Name: "헬멧", Quantity: 11, Category: "안전용품"},
	{ID: 4, Name: "배구공", Quantity: 15, Category: "체육용품"},
	{ID: 5, Name: "피구공(탱탱볼)", Quantity: 5, Category: "체육용품"},
	{ID: 6, Name: "농구공", Quantity: 2, Category: "체육용품"},
	{ID: 7, Name: "축구공", Quantity: 8, Category: "체육용품"},
	{ID: 8, Name: "탁구공", Quantity: 42, Category: "체육용품"},
	{ID: 9, Name: "조끼(빨)", Quantity: 1, Category: "체육용품"},
	{ID: 10, Name: "조끼(연)", Quantity: 10, Category: "체육용품"},
	{ID: 11, Name: "조끼(핑)", Quantity: 10, Category: "체육용품"},
	{ID: 12, Name: "조끼(주)", Quantity: 8, Category: "체육용품"},
	{ID: 13, Name: "조끼(흰)", Quantity: 1, Category: "체육용품"},
	{ID: 14, Name: "조끼(파)", Quantity: 13, Category: "체육용품"},
	{ID: 15, Name: "조끼(학교지킴이)", Quantity: 9, Category: "안전용품"},
	{ID: 16, Name: "조끼(안전)", Quantity: 13, Category: "안전용품"},
	{ID: 17, Name: "실험복(남, 100)", Quantity: 3, Category: "학용품"},
	{ID: 18, Name: "실험복(남, 105)", Quantity: 2, Category: "학용품"},
	{ID: 19, Name: "실험복(남, 110)", Quantity: 3, Category: "학용품"},
	{ID: 20, Name: "실험복(여, 55)", Quantity: 6, Category: "학용품"},
	{ID: 21, Name: "실험복(여, 66)", Quantity: 3, Category: "학용품"},
	{ID: 22, Name: "풋살공", Quantity: 2, Category: "안전용품"},
}

func RentalItems() []domain.RentalItem {
	return slices.Clone(rentalItems)
}

func RentalCategories() []string {
	return []string{"전체", "학용품", "생활용품", "안전용품", "체육용품"}
}

var RentalNotice = []string{
	"공과대학 학생회실에서 대여 가능합니다.",
	"신분증을 지참하여 주시기 바랍니다.",
	"파손 및 분실 시 변상 처리됩니다.",
	"사용 후 반드시 반납해 주세요.",
}

var matchingBoard = map[domain.MatchingType][]domain.MatchingPost{
	domain.MatchingStudy: {
		{ID: 1, Title: "알고리즘 스터디 모집", Category: "컴퓨터공학", Members: "3/5", Deadline: "2026-01-15", DDay: 5},
		{ID: 2, Title: "토익 스터디 함께하실 분", Category: "공통", Members: "2/4", Deadline: "2026-01-20", DDay: 10},
		{ID: 3, Title: "전공 수학 스터디", Category: "수학", Members: "4/6", Deadline: "2026-01-18", DDay: 8},
	},
	domain.MatchingProject: {
		{ID: 4, Title: "웹 개발 프로젝트 팀원 모집", Category: "프로젝트", Members: "2/4", Deadline: "2026-01-25", DDay: 15},
		{ID: 5, Title: "앱 개발 동아리 프로젝트", Category: "모바일", Members: "3/5", Deadline: "2026-02-01", DDay: 22},
	},
	domain.MatchingMentor: {
		{ID: 6, Title: "졸업생 선배 멘토링 프로그램", Category: "진로상담", Members: "5/10", Deadline: "2026-01-30", DDay: 20},
		{ID: 7, Title: "취업 준비 멘토링", Category: "취업", Members: "8/15", Deadline: "2026-02-05", DDay: 26},
	},
}

// MatchingPosts returns the built-in board for one tab, or nil for an
// unknown tab.
func MatchingPosts(t domain.MatchingType) []domain.MatchingPost {
	posts := slices.Clone(matchingBoard[t])
	for i := range posts {
		posts[i].Type = t
	}
	return posts
}

// MatchingPost looks a post up across all tabs.
func MatchingPost(id int64) (domain.MatchingPost, bool) {
	for _, t := range []domain.MatchingType{domain.MatchingStudy, domain.MatchingProject, domain.MatchingMentor} {
		for _, p := range MatchingPosts(t) {
			if p.ID == id {
				return p, true
			}
		}
	}
	return domain.MatchingPost{}, false
}

// MatchingDetail is the sample detail shown for every built-in post.
func MatchingDetail(id int64) domain.MatchingDetail {
	return domain.MatchingDetail{
		ID:       id,
		Title:    "[hy 한국야쿠르트] 이름있는 유산균 <바이오리브 서포터즈 마이크루> 모집",
		DDay:     17,
		Views:    3395,
		Comments: 1,
		Organizer: domain.Organizer{
			Name: "hy(한국야쿠르트)",
		},
		Details: domain.MatchingDetails{
			CompanyType:        "대기업",
			TargetAudience:     "대학생",
			ApplicationStart:   "2026.01.26",
			ApplicationEnd:     "2026.02.15",
			ActivityPeriod:     "26.3 ~ 26.6",
			RecruitCount:       "25명",
			ActivityArea:       "지역 제한없음",
			PreferredSkills:    "파워블로거/SNS, 사진/영상/디자인 툴, 콘텐츠 기획/제작 경험",
			Homepage:           "https://www.hy.co.kr/",
			Benefits:           "활동비, 사은품 지급",
			AdditionalBenefits: "제품 판매 수익금 수수료 지급",
		},
		Tags: map[string][]string{
			"interest": {"요리/식품", "콘텐츠"},
			"activity": {"서포터즈"},
		},
		BookmarkCount: 361,
	}
}
