// Package data holds the static clinic catalog shown on the browsing pages:
// departments, their doctors, and the laboratory test menu. This content is
// editorial, not backend state, so it ships with the portal.
package data

import "clinic-portal/models"

var Services = []models.ClinicService{
	{
		ID:              "cardiology",
		Name:            "Cardiology",
		Description:     "Expert heart care with state-of-the-art diagnostic and treatment facilities",
		LongDescription: "Our cardiology department provides comprehensive care for all types of heart conditions, from advanced diagnostics to treatment plans and preventive care.",
		Price:           2000,
		Features: []string{
			"Advanced cardiac imaging",
			"Heart disease treatment",
			"Preventive cardiology",
			"ECG and stress testing",
		},
		Doctors: []models.Doctor{
			{ID: "1", Name: "Dr. Sarah Johnson", Specialty: "Senior Cardiologist"},
			{ID: "2", Name: "Dr. Michael Chen", Specialty: "Interventional Cardiologist"},
		},
		FAQs: []models.FAQ{
			{
				Question: "What heart conditions do you treat?",
				Answer:   "We treat a wide range of cardiac conditions including coronary artery disease, heart rhythm disorders, heart failure, and hypertension.",
			},
			{
				Question: "How often should I get a heart check-up?",
				Answer:   "We recommend annual heart check-ups for adults over 40 or those with risk factors.",
			},
		},
	},
	{
		ID:              "doctor-home-visit",
		Name:            "Doctor Home Visit",
		Description:     "Qualified doctors at your doorstep for consultations and follow-ups",
		LongDescription: "Our home visit service brings experienced general physicians to your home for consultations, follow-ups and minor procedures.",
		Price:           2500,
		Features: []string{
			"Same-day availability",
			"Experienced general physicians",
			"Prescription and referral on the spot",
		},
		Doctors: []models.Doctor{
			{ID: "3", Name: "Dr. Emily Patel", Specialty: "General Physician"},
		},
		FAQs: []models.FAQ{
			{
				Question: "Which areas do you cover?",
				Answer:   "Home visits are available within the city limits; our team confirms coverage when you book.",
			},
		},
	},
	{
		ID:              "home-sample-collection",
		Name:            "Home Sample Collection",
		Description:     "Lab sample collection from the comfort of your home",
		LongDescription: "Trained phlebotomists collect samples at your home and deliver reports digitally, with the same turnaround as in-clinic tests.",
		Price:           1000,
		Features: []string{
			"Trained phlebotomists",
			"Digital report delivery",
			"Temperature-controlled transport",
		},
		Doctors: []models.Doctor{
			{ID: "4", Name: "Dr. James Wilson", Specialty: "Pathologist"},
		},
	},
}

var LabTests = []models.LabTestInfo{
	{ID: "cbc", Name: "Complete Blood Count (CBC)", Description: "Measures different components of blood including RBC, WBC, and platelets", Price: 500, TurnaroundTime: "Same Day", Requirements: "Fasting not required"},
	{ID: "blood-sugar-fasting", Name: "Blood Sugar (Fasting)", Description: "Measures blood glucose levels after 8-12 hours of fasting", Price: 200, TurnaroundTime: "Same Day", Requirements: "8-12 hours fasting required"},
	{ID: "lipid-profile", Name: "Lipid Profile", Description: "Measures cholesterol and triglycerides levels", Price: 800, TurnaroundTime: "Same Day", Requirements: "12 hours fasting required"},
	{ID: "thyroid-profile", Name: "Thyroid Profile (T3, T4, TSH)", Description: "Evaluates thyroid gland function", Price: 1200, TurnaroundTime: "Next Day", Requirements: "Fasting not required"},
	{ID: "liver-function", Name: "Liver Function Test (LFT)", Description: "Assesses liver health and function", Price: 1000, TurnaroundTime: "Same Day", Requirements: "8 hours fasting recommended"},
	{ID: "kidney-function", Name: "Kidney Function Test (RFT)", Description: "Evaluates kidney health and function", Price: 1000, TurnaroundTime: "Same Day", Requirements: "Fasting not required"},
	{ID: "hba1c", Name: "HbA1c", Description: "Measures average blood sugar over the past 3 months", Price: 800, TurnaroundTime: "Same Day", Requirements: "Fasting not required"},
	{ID: "urine-routine", Name: "Urine Routine", Description: "Screens for urinary tract and kidney conditions", Price: 300, TurnaroundTime: "Same Day", Requirements: "First morning sample preferred"},
}

var TestPackages = []models.TestPackage{
	{ID: "basic-health", Name: "Basic Health Checkup", Description: "Essential tests for a routine health overview", Price: 2500, Tests: []string{"CBC", "Blood Sugar (F)", "Lipid Profile", "Urine Routine"}, TurnaroundTime: "Same Day", Requirements: "8-12 hours fasting required"},
	{ID: "diabetes-screening", Name: "Diabetes Screening", Description: "Complete diabetes risk assessment", Price: 3000, Tests: []string{"Blood Sugar (F)", "Blood Sugar (PP)", "HbA1c", "Kidney Function"}, TurnaroundTime: "Same Day", Requirements: "8-12 hours fasting required"},
	{ID: "thyroid-complete", Name: "Complete Thyroid Profile", Description: "In-depth thyroid function evaluation", Price: 2800, Tests: []string{"T3", "T4", "TSH", "Anti-TPO"}, TurnaroundTime: "Next Day", Requirements: "Fasting not required"},
	{ID: "heart-health", Name: "Heart Health", Description: "Cardiac risk screening panel", Price: 4500, Tests: []string{"Lipid Profile", "ECG", "CRP", "Homocysteine"}, TurnaroundTime: "Next Day", Requirements: "12 hours fasting required"},
	{ID: "womens-health", Name: "Women's Health", Description: "Screening panel tailored for women", Price: 5000, Tests: []string{"CBC", "Thyroid Profile", "Vitamin D", "Iron Profile"}, TurnaroundTime: "Next Day", Requirements: "Fasting not required"},
	{ID: "liver-health", Name: "Liver Health", Description: "Comprehensive liver screening", Price: 3500, Tests: []string{"LFT", "HBsAg", "Anti HCV", "Prothrombin Time"}, TurnaroundTime: "Next Day", Requirements: "8 hours fasting recommended"},
	{ID: "kidney-health", Name: "Kidney Health", Description: "Comprehensive kidney screening", Price: 3000, Tests: []string{"RFT", "Urine Routine", "Uric Acid", "Electrolytes"}, TurnaroundTime: "Same Day", Requirements: "Fasting not required"},
	{ID: "executive-health", Name: "Executive Health Checkup", Description: "Extensive full-body assessment", Price: 8000, Tests: []string{"CBC", "Lipid Profile", "Liver Function", "Kidney Function", "Thyroid Profile", "Vitamin Profile"}, TurnaroundTime: "Next Day", Requirements: "8-12 hours fasting required"},
}

func ServiceByID(id string) (models.ClinicService, bool) {
	for _, s := range Services {
		if s.ID == id {
			return s, true
		}
	}
	return models.ClinicService{}, false
}

func PackageByID(id string) (models.TestPackage, bool) {
	for _, p := range TestPackages {
		if p.ID == id {
			return p, true
		}
	}
	return models.TestPackage{}, false
}

func Doctors() []models.Doctor {
	seen := make(map[string]bool)
	var doctors []models.Doctor
	for _, s := range Services {
		for _, d := range s.Doctors {
			if !seen[d.ID] {
				seen[d.ID] = true
				doctors = append(doctors, d)
			}
		}
	}
	return doctors
}
