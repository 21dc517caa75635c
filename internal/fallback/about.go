package fallback

import (
	"slices"

	"github.com/vbonduro/councilweb/internal/domain"
)

const CouncilName = "제58대 공과대학 학생회 '심(心)'"

func Roster() domain.Roster {
	depts := []domain.Department{
		{Name: "기획국", Head: "정호선", Vice: "백지영", Members: []string{"오송현", "윤다원", "이해인", "조인호"}},
		{Name: "대외협력국", Head: "유승희", Vice: "백지민", Members: []string{"김수아", "박시은", "백혜령", "홍주영"}},
		{Name: "문화예술국", Head: "송혜윤", Vice: "박종범", Members: []string{"김나영", "박요셉", "박윤진", "정수진", "천유민"}},
		{Name: "사무국", Head: "김덕현", Vice: "이승주", Members: []string{"김정아", "박효빈", "서준혁", "최민서"}},
		{Name: "운영지원국", Head: "허의영", Vice: "김수빈", Members: []string{"문보윤", "박지혜", "유나연", "장기욱"}},
		{Name: "취업학습국", Head: "허정무", Vice: "서배광", Members: []string{"김지후", "임예진", "장서연", "최주호"}},
		{Name: "학생복지국", Head: "정주원", Vice: "김고은", Members: []string{"김유민", "이다원", "전민우", "정다인"}},
		{Name: "홍보국", Head: "박하영", Vice: "박준혁", Members: []string{"김시연", "서준이", "오예린", "조영빈"}},
	}
	return domain.Roster{
		Leaders: []domain.Leader{
			{Role: "회장", Name: "탁형진"},
			{Role: "부회장", Name: "최용준"},
		},
		ChairTitle: "집행위원장",
		ChairName:  "김하민",
		Depts:      depts,
	}
}

var pledgeCategories = []domain.PledgeCategory{
	{
		ID: "welfare", Title: "학생복지", Color: "#004ca5",
		Pledges: []domain.Pledge{
			{Title: "시험기간 간식 나눔", Description: "중간·기말고사 기간 공과대학 학생회실에서 간식을 배부합니다.", Completed: true},
			{Title: "대여 물품 확대", Description: "체육용품과 실험복 등 대여 물품의 종류와 수량을 늘립니다.", Completed: true},
			{Title: "우산 무료 대여", Description: "우천 시 학생회실에서 우산을 무료로 대여합니다.", Completed: true},
			{Title: "휴게 공간 환경 개선", Description: "공과대학 휴게 공간의 비품과 조명을 교체합니다.", Completed: false},
		},
	},
	{
		ID: "academic", Title: "학습·취업", Color: "#2e9d5b",
		Pledges: []domain.Pledge{
			{Title: "학습 지원 프로그램 운영", Description: "월별 학습 지원 프로그램을 운영하고 안내합니다.", Completed: true},
			{Title: "졸업생 멘토링", Description: "졸업생 선배와 재학생을 잇는 멘토링을 진행합니다.", Completed: false},
			{Title: "취업 특강 개최", Description: "학기별로 현직자 초청 취업 특강을 개최합니다.", Completed: true},
		},
	},
	{
		ID: "communication", Title: "소통·투명성", Color: "#f29c1f",
		Pledges: []domain.Pledge{
			{Title: "회계 내역 공개", Description: "학기별 회계 보고서를 누구나 열람할 수 있도록 공개합니다.", Completed: true},
			{Title: "시설 점검 결과 공개", Description: "월별 시설 점검 결과를 사진과 함께 공개합니다.", Completed: true},
			{Title: "오픈채팅방 상시 운영", Description: "학생 의견을 받는 오픈채팅방을 상시 운영합니다.", Completed: true},
			{Title: "정기 간담회", Description: "학기마다 학과 대표와 정기 간담회를 엽니다.", Completed: false},
		},
	},
	{
		ID: "culture", Title: "문화·행사", Color: "#c8376b",
		Pledges: []domain.Pledge{
			{Title: "공대 체육대회", Description: "학과 대항 체육대회를 개최합니다.", Completed: true},
			{Title: "축제 부스 운영", Description: "대동제 기간 공과대학 부스를 운영합니다.", Completed: false},
		},
	},
}

func PledgeCategories() []domain.PledgeCategory {
	out := slices.Clone(pledgeCategories)
	for i := range out {
		out[i].Pledges = slices.Clone(out[i].Pledges)
	}
	return out
}

const (
	KakaoChannelTitle = "전북대학교 공과대학 학생회 오픈채팅방"
	DefaultKakaoURL   = "https://open.kakao.com/o/s1TJTDYh"
)

var KakaoNotice = []string{
	"카카오톡 앱이 설치되어 있어야 합니다.",
	"오픈채팅방은 누구나 자유롭게 참여할 수 있습니다.",
	"욕설, 비방 등 부적절한 내용은 제재될 수 있습니다.",
	"개인정보 보호를 위해 민감한 정보는 공개하지 말아주세요.",
}
