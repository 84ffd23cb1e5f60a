package domain

// Organization is the site data document (company, members, events, gallery).
type Organization struct {
	Company Company  `json:"company"`
	Members []Member `json:"members"`
	Events  []Event  `json:"events"`
	Gallery []string `json:"gallery"`
}

type Company struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Vision      string `json:"vision"`
}

type Member struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Image string `json:"image"`
}

type Event struct {
	Name        string   `json:"name"`
	Date        string   `json:"date"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Images      []string `json:"images,omitempty"`
}
