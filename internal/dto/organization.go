package dto

// OrganizationResponse represents the site data in the API response
// @Description Company, members, events and gallery
type OrganizationResponse struct {
	Company CompanyResponse  `json:"company"`
	Members []MemberResponse `json:"members"`
	Events  []EventResponse  `json:"events"`
	Gallery []string         `json:"gallery"`
}

type CompanyResponse struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Vision      string `json:"vision"`
}

type MemberResponse struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Image string `json:"image"`
}

type EventResponse struct {
	Index         int      `json:"index"`
	Name          string   `json:"name"`
	Date          string   `json:"date"`
	FormattedDate string   `json:"formatted_date"`
	Location      string   `json:"location"`
	Description   string   `json:"description"`
	Images        []string `json:"images,omitempty"`
}
