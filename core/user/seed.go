package user

// sampleDirectory is the built-in demo dataset the Directory is seeded
// from whenever the persisted store is absent or unreadable.
var sampleDirectory = Directory{
	Applicants: []User{
		{
			ID:    1718000000001,
			Name:  "Ama Boateng",
			Email: "ama.boateng@example.com",
			Role:  RoleApplicant,
			Applicant: &ApplicantProfile{
				Program: "BSc Electrical Engineering",
				Region:  "Ashanti",
				GPA:     3.6,
				Status:  "Active",
			},
		},
		{
			ID:    1718000000002,
			Name:  "Kofi Mensah",
			Email: "kofi.mensah@example.com",
			Role:  RoleApplicant,
			Applicant: &ApplicantProfile{
				Program: "BSc Computer Science",
				Region:  "Greater Accra",
				GPA:     3.2,
				Status:  "Submitted",
			},
		},
	},
	Admins: []User{
		{
			ID:    1718000000003,
			Name:  "Akosua Osei",
			Email: "akosua.osei@uyznfoundation.org",
			Role:  RoleAdmin,
			Admin: &AdminProfile{
				Position:    "Programs Lead",
				Permissions: []string{"review", "shortlist", "publish"},
			},
		},
	},
	Partners: []User{
		{
			ID:    1718000000004,
			Name:  "Efua Nyarko",
			Email: "efua.nyarko@mtnfoundation.com",
			Role:  RolePartner,
			Partner: &PartnerProfile{
				FocusArea: "STEM",
				Access:    []string{"reports", "shortlists"},
			},
		},
	},
}

// SeedDirectory returns a deep copy of the built-in sample Directory.
func SeedDirectory() Directory {
	return sampleDirectory.Clone()
}
