package models

// Static clinic content served by the portal itself: departments, doctors and
// the lab-test catalog shown on the browsing pages.

type Doctor struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	Image     string `json:"image,omitempty"`
}

type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type ClinicService struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	LongDescription string   `json:"long_description,omitempty"`
	Price           float64  `json:"price"`
	Features        []string `json:"features,omitempty"`
	Doctors         []Doctor `json:"doctors,omitempty"`
	FAQs            []FAQ    `json:"faqs,omitempty"`
}

type LabTestInfo struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Price          float64 `json:"price"`
	TurnaroundTime string  `json:"turnaround_time"`
	Requirements   string  `json:"requirements"`
}

type TestPackage struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Price          float64  `json:"price"`
	Tests          []string `json:"tests"`
	TurnaroundTime string   `json:"turnaround_time"`
	Requirements   string   `json:"requirements"`
}
