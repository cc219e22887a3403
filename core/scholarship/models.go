package scholarship

import "time"

// Catalog values offered by the directory filter form.
var (
	Levels  = []string{"SHS", "Undergraduate", "Postgraduate"}
	Fields  = []string{"Any", "STEM", "Arts", "Business", "Health", "Education"}
	Regions = []string{
		"National", "Greater Accra", "Ashanti", "Northern", "Central", "Eastern", "Western",
		"Volta", "Bono", "Upper East", "Upper West",
	}
	Types = []string{"Need-based", "Merit-based"}
)

type (
	FAQ struct {
		Question string `json:"question"`
		Answer   string `json:"answer"`
	}

	// Listing is a static scholarship record used only for read-side
	// filtering and display. Immutable for the lifetime of the process.
	Listing struct {
		ID          string    `json:"id"`
		Title       string    `json:"title"`
		Amount      int       `json:"amount"` // GHS
		Deadline    time.Time `json:"deadline"`
		Level       string    `json:"level"`
		Field       string    `json:"field"`
		Region      string    `json:"region"`
		Type        string    `json:"type"`
		Featured    bool      `json:"featured"`
		Tags        []string  `json:"tags"`
		Overview    string    `json:"overview"`
		Benefits    []string  `json:"benefits"`
		Eligibility []string  `json:"eligibility"`
		Documents   []string  `json:"documents"`
		Timeline    string    `json:"timeline"`
		FAQs        []FAQ     `json:"faqs"`
	}
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Listings is the scholarship directory dataset. Not affected by the
// user Directory or the Session.
var Listings = []Listing{
	{
		ID:       "flg-001",
		Title:    "UYZN Future Leaders Grant",
		Amount:   5000,
		Deadline: date(2025, time.August, 31),
		Level:    "Undergraduate",
		Field:    "Any",
		Region:   "National",
		Type:     "Need-based",
		Featured: true,
		Tags:     []string{"Leadership", "First-Gen", "Mentorship"},
		Overview: "Funding + mentorship for first-generation students with clear leadership potential and community service.",
		Benefits: []string{"GHS 5,000 tuition grant", "Mentor pairing", "Career workshops"},
		Eligibility: []string{
			"Ghanaian citizen, 16–30",
			"Undergraduate (new or continuing)",
			"Demonstrated financial need & leadership impact",
		},
		Documents: []string{"Results slip / Transcript", "National ID", "Reference letter"},
		Timeline:  "Opens July • Deadline Aug 31 • Results by Sep 20",
		FAQs: []FAQ{
			{"Can I reapply?", "Yes, if your circumstances change you may reapply next cycle."},
			{"Is it renewable?", "Renewal is possible based on GPA ≥ 3.0 and need review."},
		},
	},
	{
		ID:       "stem-203",
		Title:    "STEM Innovators Award",
		Amount:   8000,
		Deadline: date(2025, time.September, 15),
		Level:    "Undergraduate",
		Field:    "STEM",
		Region:   "National",
		Type:     "Merit-based",
		Featured: true,
		Tags:     []string{"Engineering", "Computer Science", "Research"},
		Overview: "Supporting exceptional science & technology students who build bold solutions to local problems.",
		Benefits: []string{"GHS 8,000 tuition support", "Lab mini-grants", "Internship pathways"},
		Eligibility: []string{
			"GPA ≥ 3.2 on 4.0 scale",
			"Enrolled in STEM field",
			"Portfolio or project summary",
		},
		Documents: []string{"Transcript", "Project brief (2 pages)", "1 referee contact"},
		Timeline:  "Opens Aug • Deadline Sept 15 • Interviews late Sept",
		FAQs: []FAQ{
			{"Group projects?", "Individual applicants are evaluated; group projects welcomed as evidence."},
		},
	},
	{
		ID:       "arts-110",
		Title:    "Arts & Culture Scholarship",
		Amount:   4500,
		Deadline: date(2025, time.October, 1),
		Level:    "Undergraduate",
		Field:    "Arts",
		Region:   "Ashanti",
		Type:     "Need-based",
		Tags:     []string{"Visual Arts", "Performing Arts", "Portfolio"},
		Overview: "For creative students advancing Ghanaian arts and culture—visual, performing, design.",
		Benefits: []string{"GHS 4,500 tuition support", "Showcase opportunities"},
		Eligibility: []string{
			"Portfolio (10–15 works)",
			"Statement of purpose",
			"Proof of admission",
		},
		Documents: []string{"Portfolio link", "Transcript", "ID"},
		Timeline:  "Opens Aug • Deadline Oct 1",
		FAQs: []FAQ{
			{"Can SHS arts students apply?", "Yes—if admitted to a tertiary program for the coming year."},
		},
	},
	{
		ID:       "rural-550",
		Title:    "Rural Access Scholarship",
		Amount:   3500,
		Deadline: date(2025, time.October, 20),
		Level:    "SHS",
		Field:    "Any",
		Region:   "Northern",
		Type:     "Need-based",
		Tags:     []string{"Rural", "Transport stipend"},
		Overview: "Support for promising SHS students from underserved rural districts covering fees and transport stipends.",
		Benefits: []string{"GHS 3,500 support", "Transport stipends", "Guidance counselling"},
		Eligibility: []string{
			"From designated rural district",
			"Household income threshold",
			"Headteacher reference",
		},
		Documents: []string{"Results slip", "Income affidavit", "Reference letter"},
		Timeline:  "Opens Sept • Deadline Oct 20",
		FAQs: []FAQ{
			{"Boarding students?", "Yes—boarding costs are considered in the need assessment."},
		},
	},
}
