package postgresql_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/cmlabs-hris/talenttrack-backend-go/internal/domain/absence"
	"github.com/cmlabs-hris/talenttrack-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

type absenceFixture struct {
	tenantID  int64
	managerID int64
	reportID  int64
	otherID   int64
	typeID    int64
}

func seedAbsence(t *testing.T, s *TestDatabaseSetup) absenceFixture {
	t.Helper()
	f := absenceFixture{tenantID: s.CreateTenant(t, "Acme")}
	f.managerID = s.CreateEmployee(t, f.tenantID, nil, "Marta", "Lopez")
	f.reportID = s.CreateEmployee(t, f.tenantID, &f.managerID, "Ana", "Perez")
	f.otherID = s.CreateEmployee(t, f.tenantID, nil, "Luis", "Diaz")

	types := postgresql.NewAbsenceTypeRepository(s.DB)
	created, err := types.Create(context.Background(), absence.AbsenceType{TenantID: f.tenantID, Name: "Medical"})
	require.NoError(t, err)
	f.typeID = created.ID
	return f
}

func newRequest(f absenceFixture, employeeID int64, createdAt time.Time) absence.AbsenceRequest {
	start := time.Date(2026, 1, 6, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 8, 0, 0, 0, 0, time.UTC)
	return absence.AbsenceRequest{
		TenantID:      f.tenantID,
		EmployeeID:    employeeID,
		AbsenceTypeID: f.typeID,
		StartDate:     start,
		EndDate:       &end,
		BusinessDays:  absence.BusinessDays(start, &end),
		Reason:        "medical",
		Status:        absence.StatusPending,
		CurrentStep:   1,
		CreatedAt:     createdAt,
	}
}

func TestAbsenceTypeRepository_UniqueNameCaseInsensitive(t *testing.T) {
	s := NewTestDatabase(t)
	f := seedAbsence(t, s)
	repo := postgresql.NewAbsenceTypeRepository(s.DB)

	_, err := repo.Create(context.Background(), absence.AbsenceType{TenantID: f.tenantID, Name: "MEDICAL"})
	assert.ErrorIs(t, err, absence.ErrTypeNameExists)

	otherTenant := s.CreateTenant(t, "Other")
	_, err = repo.Create(context.Background(), absence.AbsenceType{TenantID: otherTenant, Name: "Medical"})
	assert.NoError(t, err)
}

func TestAbsenceTypeRepository_DeleteInUse(t *testing.T) {
	s := NewTestDatabase(t)
	f := seedAbsence(t, s)
	ctx := context.Background()

	_, err := postgresql.NewAbsenceRequestRepository(s.DB).Create(ctx, newRequest(f, f.reportID, time.Now()))
	require.NoError(t, err)

	types := postgresql.NewAbsenceTypeRepository(s.DB)
	assert.ErrorIs(t, types.Delete(ctx, f.tenantID, f.typeID), absence.ErrTypeInUse)
	assert.ErrorIs(t, types.Delete(ctx, f.tenantID, 9999), absence.ErrTypeNotFound)
}

func TestAbsenceRequestRepository_ListFilters(t *testing.T) {
	s := NewTestDatabase(t)
	f := seedAbsence(t, s)
	ctx := context.Background()
	repo := postgresql.NewAbsenceRequestRepository(s.DB)

	base := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	first, err := repo.Create(ctx, newRequest(f, f.reportID, base))
	require.NoError(t, err)
	second, err := repo.Create(ctx, newRequest(f, f.reportID, base.Add(time.Hour)))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newRequest(f, f.otherID, base.Add(2*time.Hour)))
	require.NoError(t, err)

	assert.Equal(t, "Ana", first.Employee.FirstName)
	assert.Equal(t, "Medical", first.AbsenceTypeName)
	assert.Equal(t, 3, first.BusinessDays)

	pending := absence.StatusPending
	team, err := repo.List(ctx, absence.RequestFilter{TenantID: f.tenantID, ManagerID: &f.managerID, Status: &pending, OldestFirst: true})
	require.NoError(t, err)
	require.Len(t, team, 2)
	assert.Equal(t, first.ID, team[0].ID)
	assert.Equal(t, second.ID, team[1].ID)

	all, err := repo.List(ctx, absence.RequestFilter{TenantID: f.tenantID, Status: &pending})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, f.otherID, all[0].EmployeeID)

	_, err = repo.GetByID(ctx, absence.RequestFilter{TenantID: f.tenantID, ManagerID: &f.managerID}, all[0].ID)
	assert.ErrorIs(t, err, absence.ErrRequestNotFound)

	otherTenant := s.CreateTenant(t, "Other")
	_, err = repo.GetByID(ctx, absence.RequestFilter{TenantID: otherTenant}, first.ID)
	assert.ErrorIs(t, err, absence.ErrRequestNotFound)
}

func TestAbsenceRequestRepository_TransitionStatusCompareAndSet(t *testing.T) {
	s := NewTestDatabase(t)
	f := seedAbsence(t, s)
	ctx := context.Background()
	repo := postgresql.NewAbsenceRequestRepository(s.DB)

	req, err := repo.Create(ctx, newRequest(f, f.reportID, time.Now()))
	require.NoError(t, err)

	require.NoError(t, repo.TransitionStatus(ctx, req.ID, absence.StatusPending, absence.StatusApproved))
	assert.ErrorIs(t, repo.TransitionStatus(ctx, req.ID, absence.StatusPending, absence.StatusCancelled), absence.ErrStatusChanged)

	got, err := repo.GetByID(ctx, absence.RequestFilter{TenantID: f.tenantID}, req.ID)
	require.NoError(t, err)
	assert.Equal(t, absence.StatusApproved, got.Status)

	got.Reason = "edited"
	assert.ErrorIs(t, repo.UpdatePending(ctx, got), absence.ErrStatusChanged)
}

func TestAbsenceRequestRepository_ConcurrentLockedTransitions(t *testing.T) {
	s := NewTestDatabase(t)
	f := seedAbsence(t, s)
	ctx := context.Background()
	repo := postgresql.NewAbsenceRequestRepository(s.DB)
	tx := postgresql.NewTransactor(s.DB)

	req, err := repo.Create(ctx, newRequest(f, f.reportID, time.Now()))
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]error, 2)
	targets := []absence.Status{absence.StatusApproved, absence.StatusRejected}
	for i := range targets {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = tx.WithinTransaction(ctx, func(txCtx context.Context) error {
				locked, err := repo.GetByIDForUpdate(txCtx, absence.RequestFilter{TenantID: f.tenantID}, req.ID)
				if err != nil {
					return err
				}
				if !locked.IsPending() {
					return absence.ErrNotPending
				}
				return repo.TransitionStatus(txCtx, req.ID, absence.StatusPending, targets[i])
			})
		}(i)
	}
	wg.Wait()

	var succeeded, rejected int
	for _, err := range results {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, absence.ErrNotPending):
			rejected++
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, rejected)
}

func TestApprovalDecisionRepository_ListByApprover(t *testing.T) {
	s := NewTestDatabase(t)
	f := seedAbsence(t, s)
	ctx := context.Background()
	requests := postgresql.NewAbsenceRequestRepository(s.DB)
	decisions := postgresql.NewApprovalDecisionRepository(s.DB)

	req, err := requests.Create(ctx, newRequest(f, f.reportID, time.Now()))
	require.NoError(t, err)

	now := time.Now().UTC()
	_, err = decisions.Create(ctx, absence.ApprovalDecision{RequestID: req.ID, ApproverUserID: 10, Action: absence.ActionApprove, DecidedAt: now})
	require.NoError(t, err)

	mine, err := decisions.List(ctx, absence.DecisionFilter{TenantID: f.tenantID, ApproverUserID: ptr(int64(10))})
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "", mine[0].Comment)
	assert.Equal(t, "Ana", mine[0].Request.Employee.FirstName)

	others, err := decisions.List(ctx, absence.DecisionFilter{TenantID: f.tenantID, ApproverUserID: ptr(int64(11))})
	require.NoError(t, err)
	assert.Empty(t, others)
}
