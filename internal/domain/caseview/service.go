package caseview

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/careops/caseview/internal/domain/appointment"
	"github.com/careops/caseview/internal/domain/doctor"
	"github.com/careops/caseview/internal/domain/document"
	"github.com/careops/caseview/internal/domain/intake"
	"github.com/careops/caseview/internal/domain/patient"
	"github.com/careops/caseview/internal/domain/task"
	"github.com/careops/caseview/pkg/normalize"
)

const (
	minTaskLimit = 1
	maxTaskLimit = 25
)

// Config carries the service's operational settings. CarePortalBaseURL may
// be empty, in which case deep links render as null.
type Config struct {
	CarePortalBaseURL string
	DefaultTaskLimit  int
}

type Service struct {
	patients     patient.Repository
	tasks        task.Repository
	doctors      doctor.Repository
	intakes      intake.Repository
	appointments appointment.Repository
	documents    document.Repository

	carePortalBaseURL string
	defaultLimit      int
	logger            zerolog.Logger
	now               func() time.Time
}

func NewService(
	patients patient.Repository,
	tasks task.Repository,
	doctors doctor.Repository,
	intakes intake.Repository,
	appointments appointment.Repository,
	documents document.Repository,
	cfg Config,
	logger zerolog.Logger,
) *Service {
	defaultLimit := cfg.DefaultTaskLimit
	if defaultLimit < minTaskLimit || defaultLimit > maxTaskLimit {
		defaultLimit = 10
	}
	return &Service{
		patients:          patients,
		tasks:             tasks,
		doctors:           doctors,
		intakes:           intakes,
		appointments:      appointments,
		documents:         documents,
		carePortalBaseURL: cfg.CarePortalBaseURL,
		defaultLimit:      defaultLimit,
		logger:            logger,
		now:               time.Now,
	}
}

// FetchCaseView resolves the patient from the query's contact information
// and assembles the aggregated case view. It returns a structured failure
// for bad input (400) and not-found conditions (404); any other error is
// logged server-side and surfaced as a generic 500 failure.
func (s *Service) FetchCaseView(ctx context.Context, q Query) Result {
	email := strings.TrimSpace(q.Email)
	phone := strings.TrimSpace(q.Phone)
	if email == "" && phone == "" {
		return failure(http.StatusBadRequest, "email or phone is required")
	}

	limit := s.parseLimit(q.Limit)

	p, err := s.patients.FindByContact(ctx, email, phone)
	if err != nil {
		return s.systemFailure(err)
	}
	if p == nil {
		return failure(http.StatusNotFound, "patient not found")
	}

	tasks, err := s.tasks.ListByPatient(ctx, p.ID, limit)
	if err != nil {
		return s.systemFailure(err)
	}
	if len(tasks) == 0 {
		return failure(http.StatusNotFound, "no tasks found for patient")
	}

	taskIDs := make([]int64, 0, len(tasks))
	for _, t := range tasks {
		taskIDs = append(taskIDs, t.ID)
	}
	doctorIDs := collectDoctorIDs(tasks)

	// The four side-loads are independent once the task and doctor id sets
	// are known; a failure in any one aborts the whole aggregation rather
	// than producing a partial view.
	var (
		doctorMap      map[int64]*doctor.Doctor
		intakeMap      map[int64]*intake.IntakeForm
		appointmentMap map[int64]*appointment.Appointment
		docs           []*document.Document
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		doctorMap, err = s.doctors.MapByIDs(gctx, doctorIDs)
		if err != nil {
			return fmt.Errorf("load doctors: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		intakeMap, err = s.intakes.LatestByTask(gctx, taskIDs)
		if err != nil {
			return fmt.Errorf("load intake forms: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		appointmentMap, err = s.appointments.LatestByTask(gctx, taskIDs)
		if err != nil {
			return fmt.Errorf("load appointments: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		docs, err = s.documents.ListForCase(gctx, taskIDs, p.ID, doctorIDs)
		if err != nil {
			return fmt.Errorf("load documents: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return s.systemFailure(err)
	}

	bucketsByTask := bucketDocuments(taskIDs, docs)

	views := make([]TaskView, 0, len(tasks))
	for _, t := range tasks {
		views = append(views, s.buildTaskView(t, doctorMap, intakeMap, appointmentMap, bucketsByTask[t.ID]))
	}

	return Result{
		Success: true,
		Data: &CaseData{
			Patient: s.buildPatientView(p),
			Tasks:   views,
			Links:   s.buildLinks(p),
		},
	}
}

// parseLimit clamps the raw limit into [1, 25]. An absent value falls back
// to the configured default; a non-numeric value clamps to the lower bound.
func (s *Service) parseLimit(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return s.defaultLimit
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return minTaskLimit
	}
	if n < minTaskLimit {
		return minTaskLimit
	}
	if n > maxTaskLimit {
		return maxTaskLimit
	}
	return n
}

func collectDoctorIDs(tasks []*task.Task) []int64 {
	seen := make(map[int64]bool)
	var ids []int64
	for _, t := range tasks {
		id, ok := t.ParsedDoctorID()
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}

// bucketDocuments groups documents by task and classifies each group.
// Documents lacking a task id are assigned to the first task in the
// retrieved set; that fallback mirrors the historical behavior and is
// best-effort, not a guarantee.
func bucketDocuments(taskIDs []int64, docs []*document.Document) map[int64]document.Buckets {
	grouped := make(map[int64][]*document.Document)
	for _, d := range docs {
		tid := taskIDs[0]
		if d.TaskID != nil {
			tid = *d.TaskID
		}
		grouped[tid] = append(grouped[tid], d)
	}

	buckets := make(map[int64]document.Buckets, len(grouped))
	for tid, group := range grouped {
		buckets[tid] = document.Classify(group)
	}
	return buckets
}

func (s *Service) buildTaskView(
	t *task.Task,
	doctors map[int64]*doctor.Doctor,
	intakes map[int64]*intake.IntakeForm,
	appointments map[int64]*appointment.Appointment,
	buckets document.Buckets,
) TaskView {
	view := TaskView{
		ID:            t.ID,
		Status:        t.Status,
		DisplayStatus: displayStatus(t.Status),
		Type:          t.Type,
		Tag:           t.Tag,
		CreatedAt:     isoOrNil(t.CreatedAt),
		Completed:     t.Completed(),
		DeclineReason: t.DeclineReason(),
		CarePortal:    s.taskLink(t.ID),
		Documents:     documentBucketsView(buckets),
		Details:       t.Details,
	}

	if id, ok := t.ParsedDoctorID(); ok {
		if d, found := doctors[id]; found {
			view.Doctor = DoctorView{
				ID:            &d.ID,
				FirstName:     d.FirstName,
				LastName:      d.LastName,
				FullName:      d.FullName(),
				Email:         d.Email,
				Specialty:     d.Specialty,
				LicenseNumber: d.LicenseNumber,
			}
		}
	}

	if f, found := intakes[t.ID]; found {
		status := f.DerivedStatus()
		view.IntakeForm = IntakeFormView{
			ID:          &f.ID,
			Status:      &status,
			SubmittedAt: isoOrNil(f.SubmittedAt),
			CompletedAt: isoOrNil(f.CompletedAt),
			CreatedAt:   isoOrNil(f.CreatedAt),
		}
	}

	if a, found := appointments[t.ID]; found {
		view.Appointment = AppointmentView{
			ID:        &a.ID,
			Status:    a.Status,
			StartTime: isoOrNil(a.StartTime),
			EndTime:   isoOrNil(a.EndTime),
			Location:  a.Location,
		}
	}

	return view
}

func (s *Service) buildPatientView(p *patient.Patient) PatientView {
	return PatientView{
		ID:        p.ID,
		FirstName: p.PreferredFirstName(),
		LastName:  p.PreferredLastName(),
		FullName:  p.FullName(),
		Email:     p.Email,
		Phone:     p.PreferredPhone(),
		Address:   p.Address,
		City:      p.City,
		State:     p.State,
		Country:   p.Country,
		ZipCode:   p.ZipCode,
		DOB:       normalize.ToISOString(p.DOB),
		Age:       normalize.Age(p.DOB, s.now()),
	}
}

func (s *Service) buildLinks(p *patient.Patient) LinksView {
	return LinksView{
		PatientPortal:     PatientPortalLinks{},
		CarePortalPatient: s.patientLink(p.ID),
	}
}

func (s *Service) taskLink(taskID int64) *string {
	if s.carePortalBaseURL == "" {
		return nil
	}
	link := fmt.Sprintf("%s/tasks/%d", s.carePortalBaseURL, taskID)
	return &link
}

func (s *Service) patientLink(patientID int64) *string {
	if s.carePortalBaseURL == "" {
		return nil
	}
	link := fmt.Sprintf("%s/patients/%d", s.carePortalBaseURL, patientID)
	return &link
}

// displayStatus renders a free-text lifecycle status for humans:
// underscores and hyphens become spaces and each word is capitalized.
func displayStatus(status *string) *string {
	if status == nil {
		return nil
	}
	s := strings.TrimSpace(*status)
	if s == "" {
		return nil
	}
	s = strings.NewReplacer("_", " ", "-", " ").Replace(strings.ToLower(s))
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	display := strings.Join(words, " ")
	return &display
}

func failure(status int, message string) Result {
	return Result{Success: false, Error: message, Status: status}
}

// systemFailure logs the raw error and returns the generic envelope; detail
// never reaches the caller.
func (s *Service) systemFailure(err error) Result {
	s.logger.Error().Err(err).Msg("case view aggregation failed")
	return failure(http.StatusInternalServerError, "internal server error")
}
