package absence

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/talenttrack-backend-go/internal/domain/absence"
	"github.com/cmlabs-hris/talenttrack-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/talenttrack-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/talenttrack-backend-go/internal/pkg/sse"
	notifsvc "github.com/cmlabs-hris/talenttrack-backend-go/internal/service/notification"
	"github.com/stretchr/testify/require"
)

const (
	tenantA int64 = 1
	tenantB int64 = 2
)

type fixture struct {
	store    *memStore
	files    *memFiles
	requests *RequestService
	workflow *WorkflowService
	types    *TypeService
	notifier *notifsvc.NotificationService

	manager   employee.Employee
	report    employee.Employee
	outsider  employee.Employee
	hrStaff   employee.Employee
	foreigner employee.Employee

	vacationType absence.AbsenceType
	foreignType  absence.AbsenceType
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := newMemStore()
	files := &memFiles{}

	f := &fixture{store: store, files: files}
	f.manager = store.addEmployee(employee.Employee{TenantID: tenantA, FirstName: "Marta", LastName: "Ruiz", Email: "marta@example.com"})
	managerID := f.manager.ID
	f.report = store.addEmployee(employee.Employee{TenantID: tenantA, ManagerID: &managerID, FirstName: "Ana", LastName: "Perez", Email: "ana@example.com"})
	f.outsider = store.addEmployee(employee.Employee{TenantID: tenantA, FirstName: "Luis", LastName: "Gomez", Email: "luis@example.com"})
	f.hrStaff = store.addEmployee(employee.Employee{TenantID: tenantA, FirstName: "Rosa", LastName: "Diaz", Email: "rosa@example.com"})
	f.foreigner = store.addEmployee(employee.Employee{TenantID: tenantB, FirstName: "Juan", LastName: "Soto", Email: "juan@example.com"})

	f.vacationType = store.addType(absence.AbsenceType{TenantID: tenantA, Name: "Vacaciones"})
	f.foreignType = store.addType(absence.AbsenceType{TenantID: tenantB, Name: "Vacaciones"})

	clock := &fakeClock{t: time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)}

	f.notifier = notifsvc.NewNotificationService(memNotifications{store}, sse.NewHub(8))
	f.requests = NewRequestService(store, memTypes{store}, memRequests{store}, files)
	f.requests.now = clock.Now
	f.workflow = NewWorkflowService(store, memRequests{store}, memDecisions{store}, f.notifier)
	f.workflow.now = clock.Now
	f.types = NewTypeService(memTypes{store})
	return f
}

func (f *fixture) employeeScope(e employee.Employee) user.Scope {
	return user.Scope{TenantID: e.TenantID, ActorID: 1000 + e.ID, Role: user.RoleEmployee, EmployeeID: e.ID}
}

func (f *fixture) managerScope() user.Scope {
	return user.Scope{TenantID: tenantA, ActorID: 1000 + f.manager.ID, Role: user.RoleManager, EmployeeID: f.manager.ID}
}

func (f *fixture) hrScope() user.Scope {
	return user.Scope{TenantID: tenantA, ActorID: 1000 + f.hrStaff.ID, Role: user.RoleHR, EmployeeID: f.hrStaff.ID}
}

func (f *fixture) auditorScope() user.Scope {
	return user.Scope{TenantID: tenantA, ActorID: 9000, Role: user.RoleAuditor, EmployeeID: f.hrStaff.ID}
}

func strPtr(s string) *string {
	return &s
}

// submit files a request for e and fails the test on error.
func (f *fixture) submit(t *testing.T, e employee.Employee, start, end string) absence.AbsenceRequest {
	t.Helper()
	req := absence.SubmitRequest{
		AbsenceTypeID: f.vacationType.ID,
		StartDate:     start,
		Reason:        "Viaje familiar",
	}
	if end != "" {
		req.EndDate = strPtr(end)
	}
	if e.TenantID == tenantB {
		req.AbsenceTypeID = f.foreignType.ID
	}
	created, err := f.requests.Submit(t.Context(), f.employeeScope(e), req)
	require.NoError(t, err)
	return created
}
