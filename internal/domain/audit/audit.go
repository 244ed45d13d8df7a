package audit

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	ActionCreate = "employee.create"
	ActionUpdate = "employee.update"
	ActionDelete = "employee.delete"
)

type Event struct {
	ID         string          `json:"id"`
	Action     string          `json:"action"`
	EmployeeID string          `json:"employeeId"`
	RequestID  string          `json:"requestId"`
	IP         string          `json:"ip"`
	CreatedAt  time.Time       `json:"createdAt"`
	Before     json.RawMessage `json:"before,omitempty"`
	After      json.RawMessage `json:"after,omitempty"`
}

// Recorder keeps the change history of EmpList records.
type Recorder interface {
	Record(ctx context.Context, evt Event) error
	List(ctx context.Context, limit int) ([]Event, error)
}

// NewEvent snapshots before and after as JSON. Either may be nil.
func NewEvent(action, employeeID, requestID, ip string, before, after any) (Event, error) {
	evt := Event{Action: action, EmployeeID: employeeID, RequestID: requestID, IP: ip}
	if before != nil {
		payload, err := json.Marshal(before)
		if err != nil {
			return Event{}, err
		}
		evt.Before = payload
	}
	if after != nil {
		payload, err := json.Marshal(after)
		if err != nil {
			return Event{}, err
		}
		evt.After = payload
	}
	return evt, nil
}

type Service struct {
	DB *pgxpool.Pool
}

func New(db *pgxpool.Pool) *Service {
	return &Service{DB: db}
}

func (s *Service) Record(ctx context.Context, evt Event) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO emp_list_audit (action, employee_id, request_id, ip, before_json, after_json)
    VALUES ($1,$2,$3,$4,$5,$6)
  `, evt.Action, evt.EmployeeID, evt.RequestID, evt.IP, []byte(evt.Before), []byte(evt.After))
	return err
}

func (s *Service) List(ctx context.Context, limit int) ([]Event, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id::text, action, employee_id, request_id, ip, created_at, before_json, after_json
    FROM emp_list_audit
    ORDER BY created_at DESC, id DESC
    LIMIT $1
  `, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Event{}
	for rows.Next() {
		var evt Event
		var before, after []byte
		if err := rows.Scan(&evt.ID, &evt.Action, &evt.EmployeeID, &evt.RequestID, &evt.IP, &evt.CreatedAt, &before, &after); err != nil {
			return nil, err
		}
		evt.Before = before
		evt.After = after
		out = append(out, evt)
	}
	return out, rows.Err()
}

// MemoryLog is the Recorder paired with the in-memory store.
type MemoryLog struct {
	mu     sync.Mutex
	events []Event
	now    func() time.Time
}

func NewMemoryLog() *MemoryLog {
	return &MemoryLog{now: time.Now}
}

func (m *MemoryLog) Record(_ context.Context, evt Event) error {
	evt.ID = uuid.NewString()
	evt.CreatedAt = m.now().UTC()
	m.mu.Lock()
	m.events = append(m.events, evt)
	m.mu.Unlock()
	return nil
}

// List returns the newest events first.
func (m *MemoryLog) List(_ context.Context, limit int) ([]Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []Event{}
	for i := len(m.events) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.events[i])
	}
	return out, nil
}
