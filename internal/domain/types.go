package domain

type GalleryItem struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description,omitempty"`
	ImageURL        string    `json:"imageUrl"`
	Category        string    `json:"category,omitempty"`
	ViewCount       int64     `json:"viewCount"`
	AttachmentCount int       `json:"attachmentCount"`
	CreatedAt       Timestamp `json:"createdAt"`
}

type GalleryImage struct {
	ID      int64  `json:"id"`
	URL     string `json:"url"`
	Caption string `json:"caption,omitempty"`
}

// GalleryDetail is the single-post view; Images is empty for single-image posts.
type GalleryDetail struct {
	GalleryItem
	Images    []GalleryImage `json:"images,omitempty"`
	UpdatedAt Timestamp      `json:"updatedAt"`
}

// GalleryInput is the admin payload for creating or updating a gallery post.
type GalleryInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	ImageURL    string   `json:"imageUrl"`
	ImageURLs   []string `json:"imageUrls,omitempty"`
	Category    string   `json:"category,omitempty"`
}

type FinanceReport struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	FileName    string    `json:"fileName"`
	FileURL     string    `json:"fileUrl"`
	FileSize    int64     `json:"fileSize"`
	Year        int       `json:"year"`
	Month       int       `json:"month"`
	CreatedAt   Timestamp `json:"createdAt"`
	UpdatedAt   Timestamp `json:"updatedAt,omitempty"`
}

type RentalItem struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Quantity    int    `json:"quantity"`
	Category    string `json:"category"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
	Available   bool   `json:"available,omitempty"`
}

// MatchingType is one of the board tabs.
type MatchingType string

const (
	MatchingStudy   MatchingType = "study"
	MatchingProject MatchingType = "project"
	MatchingMentor  MatchingType = "mentor"
)

type MatchingPost struct {
	ID       int64        `json:"id"`
	Type     MatchingType `json:"type,omitempty"`
	Title    string       `json:"title"`
	Category string       `json:"category"`
	Members  string       `json:"members"`
	Deadline string       `json:"deadline"`
	DDay     int          `json:"dDay"`
}

type Organizer struct {
	Name        string `json:"name"`
	Logo        string `json:"logo,omitempty"`
	IsFollowing bool   `json:"isFollowing"`
}

type MatchingDetail struct {
	ID            int64               `json:"id"`
	Title         string              `json:"title"`
	DDay          int                 `json:"dDay"`
	Views         int64               `json:"views"`
	Comments      int                 `json:"comments"`
	Thumbnail     string              `json:"thumbnail,omitempty"`
	Organizer     Organizer           `json:"organizer"`
	Details       MatchingDetails     `json:"details"`
	Tags          map[string][]string `json:"tags,omitempty"`
	BookmarkCount int                 `json:"bookmarkCount"`
}

type MatchingDetails struct {
	CompanyType        string `json:"companyType,omitempty"`
	TargetAudience     string `json:"targetAudience,omitempty"`
	ApplicationStart   string `json:"applicationStart,omitempty"`
	ApplicationEnd     string `json:"applicationEnd,omitempty"`
	ActivityPeriod     string `json:"activityPeriod,omitempty"`
	RecruitCount       string `json:"recruitCount,omitempty"`
	ActivityArea       string `json:"activityArea,omitempty"`
	PreferredSkills    string `json:"preferredSkills,omitempty"`
	Homepage           string `json:"homepage,omitempty"`
	Benefits           string `json:"benefits,omitempty"`
	AdditionalBenefits string `json:"additionalBenefits,omitempty"`
}

// Resource is one image of a period-indexed media collection.
type Resource struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	ImageURL string `json:"imageUrl"`
	Year     int    `json:"year"`
	Month    int    `json:"month"`
}

type CalendarEvent struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Location  string    `json:"location,omitempty"`
	StartDate Timestamp `json:"startDate"`
	EndDate   Timestamp `json:"endDate,omitempty"`
}

type Leader struct {
	Role string
	Name string
}

type Department struct {
	Name    string
	Head    string
	Vice    string
	Members []string
}

type Roster struct {
	Leaders    []Leader
	ChairTitle string
	ChairName  string
	Depts      []Department
}

type Pledge struct {
	Title       string
	Description string
	Completed   bool
}

type PledgeCategory struct {
	ID      string
	Title   string
	Color   string
	Pledges []Pledge
}
