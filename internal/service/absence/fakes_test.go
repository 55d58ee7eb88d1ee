package absence

import (
	"context"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/cmlabs-hris/talenttrack-backend-go/internal/domain/absence"
	"github.com/cmlabs-hris/talenttrack-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/talenttrack-backend-go/internal/domain/notification"
	"github.com/cmlabs-hris/talenttrack-backend-go/internal/service/file"
)

// memStore is an in-memory stand-in for the relational store. Transactions
// are serialized and their writes are undone when fn fails.
type memStore struct {
	txMu sync.Mutex
	mu   sync.Mutex

	nextID        int64
	employees     map[int64]employee.Employee
	types         map[int64]absence.AbsenceType
	requests      map[int64]absence.AbsenceRequest
	decisions     []absence.ApprovalDecision
	notifications []notification.Notification

	failNotify error
}

type memSnapshot struct {
	nextID        int64
	types         map[int64]absence.AbsenceType
	requests      map[int64]absence.AbsenceRequest
	decisions     []absence.ApprovalDecision
	notifications []notification.Notification
}

type inTxKey struct{}

func newMemStore() *memStore {
	return &memStore{
		employees: make(map[int64]employee.Employee),
		types:     make(map[int64]absence.AbsenceType),
		requests:  make(map[int64]absence.AbsenceRequest),
	}
}

func (m *memStore) id() int64 {
	m.nextID++
	return m.nextID
}

func (m *memStore) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(inTxKey{}) != nil {
		return fn(ctx)
	}
	m.txMu.Lock()
	defer m.txMu.Unlock()

	snap := m.snapshot()
	if err := fn(context.WithValue(ctx, inTxKey{}, true)); err != nil {
		m.restore(snap)
		return err
	}
	return nil
}

func (m *memStore) snapshot() memSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := memSnapshot{
		nextID:        m.nextID,
		types:         make(map[int64]absence.AbsenceType, len(m.types)),
		requests:      make(map[int64]absence.AbsenceRequest, len(m.requests)),
		decisions:     append([]absence.ApprovalDecision(nil), m.decisions...),
		notifications: append([]notification.Notification(nil), m.notifications...),
	}
	for k, v := range m.types {
		s.types[k] = v
	}
	for k, v := range m.requests {
		s.requests[k] = v
	}
	return s
}

func (m *memStore) restore(s memSnapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID = s.nextID
	m.types = s.types
	m.requests = s.requests
	m.decisions = s.decisions
	m.notifications = s.notifications
}

func (m *memStore) addEmployee(e employee.Employee) employee.Employee {
	m.mu.Lock()
	defer m.mu.Unlock()
	e.ID = m.id()
	m.employees[e.ID] = e
	return e
}

func (m *memStore) addType(t absence.AbsenceType) absence.AbsenceType {
	m.mu.Lock()
	defer m.mu.Unlock()
	t.ID = m.id()
	m.types[t.ID] = t
	return t
}

func (m *memStore) request(id int64) absence.AbsenceRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.requests[id]
}

func (m *memStore) decisionCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.decisions)
}

func (m *memStore) notificationsFor(employeeID int64) []notification.Notification {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []notification.Notification
	for _, n := range m.notifications {
		if n.EmployeeID == employeeID {
			out = append(out, n)
		}
	}
	return out
}

// hydrate fills the joined read fields. Caller holds mu.
func (m *memStore) hydrate(r absence.AbsenceRequest) absence.AbsenceRequest {
	r.Employee = m.employees[r.EmployeeID]
	r.AbsenceTypeName = m.types[r.AbsenceTypeID].Name
	return r
}

func (m *memStore) matches(f absence.RequestFilter, r absence.AbsenceRequest) bool {
	if r.TenantID != f.TenantID {
		return false
	}
	if f.EmployeeID != nil && r.EmployeeID != *f.EmployeeID {
		return false
	}
	if f.ManagerID != nil {
		mgr := m.employees[r.EmployeeID].ManagerID
		if mgr == nil || *mgr != *f.ManagerID {
			return false
		}
	}
	if f.Status != nil && r.Status != *f.Status {
		return false
	}
	return true
}

// Types

type memTypes struct{ *memStore }

func (m memTypes) Create(ctx context.Context, t absence.AbsenceType) (absence.AbsenceType, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.types {
		if existing.TenantID == t.TenantID && strings.EqualFold(existing.Name, t.Name) {
			return absence.AbsenceType{}, absence.ErrTypeNameExists
		}
	}
	t.ID = m.id()
	m.types[t.ID] = t
	return t, nil
}

func (m memTypes) GetByID(ctx context.Context, tenantID, id int64) (absence.AbsenceType, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.types[id]
	if !ok || t.TenantID != tenantID {
		return absence.AbsenceType{}, absence.ErrTypeNotFound
	}
	return t, nil
}

func (m memTypes) List(ctx context.Context, tenantID int64) ([]absence.AbsenceType, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]absence.AbsenceType, 0)
	for _, t := range m.types {
		if t.TenantID == tenantID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m memTypes) Update(ctx context.Context, t absence.AbsenceType) (absence.AbsenceType, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	current, ok := m.types[t.ID]
	if !ok || current.TenantID != t.TenantID {
		return absence.AbsenceType{}, absence.ErrTypeNotFound
	}
	for _, existing := range m.types {
		if existing.ID != t.ID && existing.TenantID == t.TenantID && strings.EqualFold(existing.Name, t.Name) {
			return absence.AbsenceType{}, absence.ErrTypeNameExists
		}
	}
	m.types[t.ID] = t
	return t, nil
}

func (m memTypes) Delete(ctx context.Context, tenantID, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.types[id]
	if !ok || t.TenantID != tenantID {
		return absence.ErrTypeNotFound
	}
	for _, r := range m.requests {
		if r.AbsenceTypeID == id {
			return absence.ErrTypeInUse
		}
	}
	delete(m.types, id)
	return nil
}

// Requests

type memRequests struct{ *memStore }

func (m memRequests) Create(ctx context.Context, r absence.AbsenceRequest) (absence.AbsenceRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r.ID = m.id()
	m.requests[r.ID] = r
	return m.hydrate(r), nil
}

func (m memRequests) GetByID(ctx context.Context, f absence.RequestFilter, id int64) (absence.AbsenceRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.requests[id]
	if !ok || !m.matches(f, r) {
		return absence.AbsenceRequest{}, absence.ErrRequestNotFound
	}
	return m.hydrate(r), nil
}

func (m memRequests) GetByIDForUpdate(ctx context.Context, f absence.RequestFilter, id int64) (absence.AbsenceRequest, error) {
	return m.GetByID(ctx, f, id)
}

func (m memRequests) List(ctx context.Context, f absence.RequestFilter) ([]absence.AbsenceRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]absence.AbsenceRequest, 0)
	for _, r := range m.requests {
		if m.matches(f, r) {
			out = append(out, m.hydrate(r))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			if f.OldestFirst {
				return a.CreatedAt.Before(b.CreatedAt)
			}
			return a.CreatedAt.After(b.CreatedAt)
		}
		if f.OldestFirst {
			return a.ID < b.ID
		}
		return a.ID > b.ID
	})
	return out, nil
}

func (m memRequests) UpdatePending(ctx context.Context, r absence.AbsenceRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	current, ok := m.requests[r.ID]
	if !ok || current.Status != absence.StatusPending {
		return absence.ErrStatusChanged
	}
	current.AbsenceTypeID = r.AbsenceTypeID
	current.StartDate = r.StartDate
	current.EndDate = r.EndDate
	current.BusinessDays = r.BusinessDays
	current.Reason = r.Reason
	current.AttachmentURL = r.AttachmentURL
	m.requests[r.ID] = current
	return nil
}

func (m memRequests) TransitionStatus(ctx context.Context, id int64, from, to absence.Status) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	current, ok := m.requests[id]
	if !ok || current.Status != from {
		return absence.ErrStatusChanged
	}
	current.Status = to
	m.requests[id] = current
	return nil
}

// Decisions

type memDecisions struct{ *memStore }

func (m memDecisions) Create(ctx context.Context, d absence.ApprovalDecision) (absence.ApprovalDecision, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d.ID = m.id()
	m.decisions = append(m.decisions, d)
	return d, nil
}

func (m memDecisions) List(ctx context.Context, f absence.DecisionFilter) ([]absence.ApprovalDecision, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]absence.ApprovalDecision, 0)
	for _, d := range m.decisions {
		r := m.requests[d.RequestID]
		if r.TenantID != f.TenantID {
			continue
		}
		if f.ApproverUserID != nil && d.ApproverUserID != *f.ApproverUserID {
			continue
		}
		d.Request = m.hydrate(r)
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

// Notifications

type memNotifications struct{ *memStore }

func (m memNotifications) Create(ctx context.Context, n *notification.Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failNotify != nil {
		return m.failNotify
	}
	n.ID = m.id()
	m.notifications = append(m.notifications, *n)
	return nil
}

func (m memNotifications) ListByEmployee(ctx context.Context, tenantID, employeeID int64, unreadOnly bool) ([]notification.Notification, error) {
	return m.notificationsFor(employeeID), nil
}

func (m memNotifications) CountUnread(ctx context.Context, tenantID, employeeID int64) (int, error) {
	return len(m.notificationsFor(employeeID)), nil
}

func (m memNotifications) MarkAsRead(ctx context.Context, tenantID, employeeID, id int64, at time.Time) (notification.Notification, error) {
	return notification.Notification{}, notification.ErrNotificationNotFound
}

func (m memNotifications) MarkAllAsRead(ctx context.Context, tenantID, employeeID int64, at time.Time) (int64, error) {
	return 0, nil
}

// Files

type memFiles struct {
	mu       sync.Mutex
	uploaded []string
	deleted  []string
}

func (f *memFiles) UploadAbsenceAttachment(ctx context.Context, tenantID, employeeID int64, r io.Reader, filename string) (file.StoredFile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, err := io.ReadAll(r); err != nil {
		return file.StoredFile{}, err
	}
	p := "absences/" + filename
	f.uploaded = append(f.uploaded, p)
	return file.StoredFile{Path: p, URL: "/uploads/" + p}, nil
}

func (f *memFiles) DeleteFile(ctx context.Context, path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, path)
	return nil
}

// fakeClock advances one minute per call so creation order is deterministic.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(time.Minute)
	return c.t
}
