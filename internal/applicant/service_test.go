package applicant

import "testing"

func TestApplicantStruct(t *testing.T) {
	sector := "Fashion"
	scale := "small"

	a := Applicant{
		ID:            "applicant-uuid-1",
		DisplayName:   "Batik Lestari",
		Sector:        &sector,
		BusinessScale: &scale,
	}

	if a.DisplayName != "Batik Lestari" {
		t.Errorf("DisplayName = %q, want %q", a.DisplayName, "Batik Lestari")
	}
	if *a.Sector != "Fashion" {
		t.Errorf("Sector = %q, want Fashion", *a.Sector)
	}
	if *a.BusinessScale != "small" {
		t.Errorf("BusinessScale = %q, want small", *a.BusinessScale)
	}
}

func TestApplicantOptionalFields(t *testing.T) {
	a := Applicant{ID: "a-1", DisplayName: "Warung Hijau"}

	if a.Sector != nil {
		t.Errorf("Sector = %v, want nil", a.Sector)
	}
	if a.BusinessScale != nil {
		t.Errorf("BusinessScale = %v, want nil", a.BusinessScale)
	}
}

func TestNewService(t *testing.T) {
	if svc := NewService(nil); svc == nil {
		t.Fatal("NewService returned nil")
	}
}
