package http

import (
	"context"
	"io"

	"github.com/cmlabs-hris/talenttrack-backend-go/internal/domain/absence"
	"github.com/cmlabs-hris/talenttrack-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/talenttrack-backend-go/internal/domain/notification"
	"github.com/cmlabs-hris/talenttrack-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/talenttrack-backend-go/internal/domain/vacation"
	"github.com/cmlabs-hris/talenttrack-backend-go/internal/pkg/sse"
	"github.com/stretchr/testify/mock"
)

// MockRequestService mocks absence.RequestService
type MockRequestService struct {
	mock.Mock
}

func (m *MockRequestService) Submit(ctx context.Context, sc user.Scope, req absence.SubmitRequest) (absence.AbsenceRequest, error) {
	args := m.Called(ctx, sc, req)
	return args.Get(0).(absence.AbsenceRequest), args.Error(1)
}

func (m *MockRequestService) ListOwn(ctx context.Context, sc user.Scope) ([]absence.AbsenceRequest, error) {
	args := m.Called(ctx, sc)
	return args.Get(0).([]absence.AbsenceRequest), args.Error(1)
}

func (m *MockRequestService) GetOwn(ctx context.Context, sc user.Scope, id int64) (absence.AbsenceRequest, error) {
	args := m.Called(ctx, sc, id)
	return args.Get(0).(absence.AbsenceRequest), args.Error(1)
}

func (m *MockRequestService) EditOwn(ctx context.Context, sc user.Scope, id int64, req absence.EditRequest) (absence.AbsenceRequest, error) {
	args := m.Called(ctx, sc, id, req)
	return args.Get(0).(absence.AbsenceRequest), args.Error(1)
}

func (m *MockRequestService) Cancel(ctx context.Context, sc user.Scope, id int64) error {
	return m.Called(ctx, sc, id).Error(0)
}

func (m *MockRequestService) AttachSupport(ctx context.Context, sc user.Scope, id int64, file io.Reader, filename string) (absence.AbsenceRequest, error) {
	args := m.Called(ctx, sc, id, file, filename)
	return args.Get(0).(absence.AbsenceRequest), args.Error(1)
}

func (m *MockRequestService) ListPendingForManager(ctx context.Context, sc user.Scope) ([]absence.AbsenceRequest, error) {
	args := m.Called(ctx, sc)
	return args.Get(0).([]absence.AbsenceRequest), args.Error(1)
}

func (m *MockRequestService) ListPendingForHR(ctx context.Context, sc user.Scope) ([]absence.AbsenceRequest, error) {
	args := m.Called(ctx, sc)
	return args.Get(0).([]absence.AbsenceRequest), args.Error(1)
}

func (m *MockRequestService) FetchDetail(ctx context.Context, sc user.Scope, id int64) (absence.AbsenceRequest, error) {
	args := m.Called(ctx, sc, id)
	return args.Get(0).(absence.AbsenceRequest), args.Error(1)
}

func (m *MockRequestService) ListAll(ctx context.Context, sc user.Scope) ([]absence.AbsenceRequest, error) {
	args := m.Called(ctx, sc)
	return args.Get(0).([]absence.AbsenceRequest), args.Error(1)
}

// MockWorkflowService mocks absence.WorkflowService
type MockWorkflowService struct {
	mock.Mock
}

func (m *MockWorkflowService) Decide(ctx context.Context, sc user.Scope, id int64, in absence.DecideInput) (absence.AbsenceRequest, error) {
	args := m.Called(ctx, sc, id, in)
	return args.Get(0).(absence.AbsenceRequest), args.Error(1)
}

func (m *MockWorkflowService) ListDecisions(ctx context.Context, sc user.Scope) ([]absence.ApprovalDecision, error) {
	args := m.Called(ctx, sc)
	return args.Get(0).([]absence.ApprovalDecision), args.Error(1)
}

// MockTypeService mocks absence.TypeService
type MockTypeService struct {
	mock.Mock
}

func (m *MockTypeService) List(ctx context.Context, sc user.Scope) ([]absence.AbsenceType, error) {
	args := m.Called(ctx, sc)
	return args.Get(0).([]absence.AbsenceType), args.Error(1)
}

func (m *MockTypeService) Get(ctx context.Context, sc user.Scope, id int64) (absence.AbsenceType, error) {
	args := m.Called(ctx, sc, id)
	return args.Get(0).(absence.AbsenceType), args.Error(1)
}

func (m *MockTypeService) Create(ctx context.Context, sc user.Scope, req absence.CreateTypeRequest) (absence.AbsenceType, error) {
	args := m.Called(ctx, sc, req)
	return args.Get(0).(absence.AbsenceType), args.Error(1)
}

func (m *MockTypeService) Update(ctx context.Context, sc user.Scope, id int64, req absence.UpdateTypeRequest) (absence.AbsenceType, error) {
	args := m.Called(ctx, sc, id, req)
	return args.Get(0).(absence.AbsenceType), args.Error(1)
}

func (m *MockTypeService) Delete(ctx context.Context, sc user.Scope, id int64) error {
	return m.Called(ctx, sc, id).Error(0)
}

// MockBalanceService mocks vacation.Service
type MockBalanceService struct {
	mock.Mock
}

func (m *MockBalanceService) Create(ctx context.Context, sc user.Scope, req vacation.CreateBalanceRequest) (vacation.Balance, error) {
	args := m.Called(ctx, sc, req)
	return args.Get(0).(vacation.Balance), args.Error(1)
}

func (m *MockBalanceService) List(ctx context.Context, sc user.Scope) ([]vacation.Balance, error) {
	args := m.Called(ctx, sc)
	return args.Get(0).([]vacation.Balance), args.Error(1)
}

func (m *MockBalanceService) ListForAudit(ctx context.Context, sc user.Scope) ([]vacation.Balance, error) {
	args := m.Called(ctx, sc)
	return args.Get(0).([]vacation.Balance), args.Error(1)
}

func (m *MockBalanceService) RenamePeriod(ctx context.Context, sc user.Scope, id int64, req vacation.RenamePeriodRequest) (vacation.Balance, error) {
	args := m.Called(ctx, sc, id, req)
	return args.Get(0).(vacation.Balance), args.Error(1)
}

func (m *MockBalanceService) Delete(ctx context.Context, sc user.Scope, id int64) error {
	return m.Called(ctx, sc, id).Error(0)
}

func (m *MockBalanceService) ListEmployees(ctx context.Context, sc user.Scope) ([]employee.Employee, error) {
	args := m.Called(ctx, sc)
	return args.Get(0).([]employee.Employee), args.Error(1)
}

// MockNotificationService mocks notification.Service
type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) Notify(ctx context.Context, req notification.NotifyRequest) (notification.Notification, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(notification.Notification), args.Error(1)
}

func (m *MockNotificationService) List(ctx context.Context, sc user.Scope, unreadOnly bool) (notification.ListResponse, error) {
	args := m.Called(ctx, sc, unreadOnly)
	return args.Get(0).(notification.ListResponse), args.Error(1)
}

func (m *MockNotificationService) MarkAsRead(ctx context.Context, sc user.Scope, id int64) (notification.Notification, error) {
	args := m.Called(ctx, sc, id)
	return args.Get(0).(notification.Notification), args.Error(1)
}

func (m *MockNotificationService) MarkAllAsRead(ctx context.Context, sc user.Scope) (int64, error) {
	args := m.Called(ctx, sc)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationService) Deliver(n notification.Notification) {
	m.Called(n)
}

func (m *MockNotificationService) Subscribe(sc user.Scope) (<-chan sse.Event, func(), error) {
	args := m.Called(sc)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(<-chan sse.Event), args.Get(1).(func()), args.Error(2)
}
