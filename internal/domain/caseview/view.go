// Package caseview assembles the aggregated patient case view consumed by
// the support-tooling widget: one patient resolved from partial contact
// information, their recent tasks, and each task's doctor, latest intake
// form, latest appointment and categorized documents.
package caseview

import (
	"github.com/careops/caseview/internal/domain/document"
	"github.com/careops/caseview/pkg/normalize"
)

// Query carries the raw request parameters. Limit stays a string because the
// upstream contract is a string-encoded integer; parsing and clamping happen
// inside the service.
type Query struct {
	Email string
	Phone string
	Limit string
}

// Result is the discriminated success/failure envelope returned to the
// renderer. On success Data is set; on failure Error and Status are.
type Result struct {
	Success bool      `json:"success"`
	Data    *CaseData `json:"data,omitempty"`
	Error   string    `json:"error,omitempty"`
	Status  int       `json:"status,omitempty"`
}

type CaseData struct {
	Patient PatientView `json:"patient"`
	Tasks   []TaskView  `json:"tasks"`
	Links   LinksView   `json:"links"`
}

// PatientView is the normalized patient record. Name and contact fields are
// resolved across the historically duplicated columns; dob is canonical ISO
// or null and age is derived.
type PatientView struct {
	ID        int64   `json:"id"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	FullName  *string `json:"fullName"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
	City      *string `json:"city"`
	State     *string `json:"state"`
	Country   *string `json:"country"`
	ZipCode   *string `json:"zipCode"`
	DOB       *string `json:"dob"`
	Age       *int    `json:"age"`
}

// TaskView is the fully joined task. Sub-objects are always present; absent
// records degrade to all-null fields so renderers never branch on missing
// keys.
type TaskView struct {
	ID            int64                  `json:"id"`
	Status        *string                `json:"status"`
	DisplayStatus *string                `json:"displayStatus"`
	Type          *string                `json:"type"`
	Tag           *string                `json:"tag"`
	CreatedAt     *string                `json:"createdAt"`
	Completed     bool                   `json:"completed"`
	DeclineReason *string                `json:"declineReason"`
	CarePortal    *string                `json:"carePortalTask"`
	Doctor        DoctorView             `json:"doctor"`
	IntakeForm    IntakeFormView         `json:"intakeForm"`
	Appointment   AppointmentView        `json:"appointment"`
	Documents     DocumentBucketsView    `json:"documents"`
	Details       map[string]interface{} `json:"details,omitempty"`
}

// DoctorView degrades to all-null fields when the task has no resolvable
// doctor.
type DoctorView struct {
	ID            *int64  `json:"id"`
	FirstName     *string `json:"firstName"`
	LastName      *string `json:"lastName"`
	FullName      *string `json:"fullName"`
	Email         *string `json:"email"`
	Specialty     *string `json:"specialty"`
	LicenseNumber *string `json:"licenseNumber"`
}

// IntakeFormView carries the latest intake submission. Status is null only
// when no row exists at all.
type IntakeFormView struct {
	ID          *int64  `json:"id"`
	Status      *string `json:"status"`
	SubmittedAt *string `json:"submittedAt"`
	CompletedAt *string `json:"completedAt"`
	CreatedAt   *string `json:"createdAt"`
}

// AppointmentView carries the latest scheduled appointment.
type AppointmentView struct {
	ID        *int64  `json:"id"`
	Status    *string `json:"status"`
	StartTime *string `json:"startTime"`
	EndTime   *string `json:"endTime"`
	Location  *string `json:"location"`
}

// DocumentView is a sanitized document record.
type DocumentView struct {
	ID       int64   `json:"id"`
	Type     *string `json:"type"`
	SubType  *string `json:"subType"`
	Tag      *string `json:"tag"`
	URL      *string `json:"url"`
	FileType *string `json:"fileType"`
}

// DocumentBucketsView holds the fixed category partition of a task's
// documents. Buckets are always arrays, never null.
type DocumentBucketsView struct {
	Permit               []DocumentView `json:"permit"`
	Prescription         []DocumentView `json:"prescription"`
	CoverLetter          []DocumentView `json:"coverLetter"`
	Envelope             []DocumentView `json:"envelope"`
	PhysicianCertificate []DocumentView `json:"physicianCertificate"`
	Other                []DocumentView `json:"other"`
}

// LinksView is the links block. The patient-portal slots are reserved for a
// future capability and always render null.
type LinksView struct {
	PatientPortal     PatientPortalLinks `json:"patientPortal"`
	CarePortalPatient *string            `json:"carePortalPatient"`
}

type PatientPortalLinks struct {
	Login          *string `json:"login"`
	MedicalRecord  *string `json:"medicalRecord"`
	DriversLicense *string `json:"driversLicense"`
	Consent        *string `json:"consent"`
	Profile        *string `json:"profile"`
}

func documentViews(docs []*document.Document) []DocumentView {
	views := make([]DocumentView, 0, len(docs))
	for _, d := range docs {
		views = append(views, DocumentView{
			ID:       d.ID,
			Type:     d.Type,
			SubType:  d.SubType,
			Tag:      d.Tag,
			URL:      d.URL,
			FileType: d.FileType,
		})
	}
	return views
}

func documentBucketsView(b document.Buckets) DocumentBucketsView {
	return DocumentBucketsView{
		Permit:               documentViews(b.Permit),
		Prescription:         documentViews(b.Prescription),
		CoverLetter:          documentViews(b.CoverLetter),
		Envelope:             documentViews(b.Envelope),
		PhysicianCertificate: documentViews(b.PhysicianCertificate),
		Other:                documentViews(b.Other),
	}
}

func isoOrNil(v interface{}) *string {
	return normalize.ToISOString(v)
}
