package service

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/kvrvenkatca-ai/firm-timesheet/internal/model"
	"github.com/kvrvenkatca-ai/firm-timesheet/internal/repository"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	m.users[user.Email] = user
	return nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	if u, ok := m.users[email]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) CountByRole(_ context.Context, role string) (int64, error) {
	var n int64
	for _, u := range m.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

// ── Mock ClientRepository ──

type mockClientRepo struct {
	clients []*model.Client
}

func newMockClientRepo() *mockClientRepo {
	return &mockClientRepo{}
}

func (m *mockClientRepo) Create(_ context.Context, client *model.Client) error {
	for _, c := range m.clients {
		if c.ClientName == client.ClientName {
			return gorm.ErrDuplicatedKey
		}
	}
	if client.ID == "" {
		client.ID = fmt.Sprintf("client-%03d", len(m.clients)+1)
	}
	m.clients = append(m.clients, client)
	return nil
}

func (m *mockClientRepo) GetByName(_ context.Context, name string) (*model.Client, error) {
	for _, c := range m.clients {
		if c.ClientName == name {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockClientRepo) List(_ context.Context) ([]model.Client, error) {
	result := make([]model.Client, 0, len(m.clients))
	for _, c := range m.clients {
		result = append(result, *c)
	}
	return result, nil
}

// ── Mock SubmissionRepository ──

type mockSubmissionRepo struct {
	subs []*model.WeeklySubmission
}

func newMockSubmissionRepo() *mockSubmissionRepo {
	return &mockSubmissionRepo{}
}

func (m *mockSubmissionRepo) Create(_ context.Context, sub *model.WeeklySubmission) error {
	for _, s := range m.subs {
		if s.UserEmail == sub.UserEmail && s.WeekStart.Equal(sub.WeekStart) {
			return gorm.ErrDuplicatedKey
		}
	}
	if sub.ID == "" {
		sub.ID = fmt.Sprintf("sub-%03d", len(m.subs)+1)
	}
	now := time.Now()
	sub.CreatedAt = now
	sub.UpdatedAt = now
	m.subs = append(m.subs, sub)
	return nil
}

func (m *mockSubmissionRepo) GetByID(_ context.Context, id string) (*model.WeeklySubmission, error) {
	for _, s := range m.subs {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSubmissionRepo) GetByOwnerWeek(_ context.Context, email string, weekStart time.Time) (*model.WeeklySubmission, error) {
	for _, s := range m.subs {
		if s.UserEmail == email && s.WeekStart.Equal(weekStart) {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSubmissionRepo) UpdateStatus(_ context.Context, id string, status string) error {
	for _, s := range m.subs {
		if s.ID == id {
			s.Status = status
			s.UpdatedAt = time.Now()
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockSubmissionRepo) List(_ context.Context, status string) ([]model.WeeklySubmission, error) {
	var result []model.WeeklySubmission
	for _, s := range m.subs {
		if status != "" && s.Status != status {
			continue
		}
		result = append(result, *s)
	}
	return result, nil
}

func (m *mockSubmissionRepo) CountByStatus(_ context.Context, status string) (int64, error) {
	var n int64
	for _, s := range m.subs {
		if s.Status == status {
			n++
		}
	}
	return n, nil
}

// ── Mock TimesheetRepository ──

// mockTimesheetRepo 持有 mockSubmissionRepo 引用以模拟事务内的状态复查
type mockTimesheetRepo struct {
	entries []*model.TimesheetEntry
	subs    *mockSubmissionRepo
}

func newMockTimesheetRepo(subs *mockSubmissionRepo) *mockTimesheetRepo {
	return &mockTimesheetRepo{subs: subs}
}

func (m *mockTimesheetRepo) CreateDraftGated(ctx context.Context, entry *model.TimesheetEntry, weekStart time.Time) error {
	if _, err := m.subs.GetByOwnerWeek(ctx, entry.UserEmail, weekStart); err == nil {
		return repository.ErrWeekNotDraft
	}
	if entry.ID == "" {
		entry.ID = fmt.Sprintf("entry-%03d", len(m.entries)+1)
	}
	// 递增时间戳保证插入顺序可复现
	entry.CreatedAt = time.Unix(int64(len(m.entries)), 0)
	m.entries = append(m.entries, entry)
	return nil
}

func (m *mockTimesheetRepo) ListByOwnerWeek(_ context.Context, email string, weekStart, weekEnd time.Time) ([]model.TimesheetEntry, error) {
	var result []model.TimesheetEntry
	for _, e := range m.entries {
		if e.UserEmail != email {
			continue
		}
		if e.WorkDate.Before(weekStart) || e.WorkDate.After(weekEnd) {
			continue
		}
		result = append(result, *e)
	}
	return result, nil
}

func (m *mockTimesheetRepo) SumHoursByOwnerWeek(ctx context.Context, email string, weekStart, weekEnd time.Time) (float64, error) {
	entries, _ := m.ListByOwnerWeek(ctx, email, weekStart, weekEnd)
	var total float64
	for _, e := range entries {
		total += e.Hours
	}
	return total, nil
}

func (m *mockTimesheetRepo) ListAll(_ context.Context) ([]model.TimesheetEntry, error) {
	result := make([]model.TimesheetEntry, 0, len(m.entries))
	for _, e := range m.entries {
		result = append(result, *e)
	}
	return result, nil
}

// ── 聚合构造 ──

type testRepos struct {
	user       *mockUserRepo
	client     *mockClientRepo
	timesheet  *mockTimesheetRepo
	submission *mockSubmissionRepo
}

func newTestRepository() (*repository.Repository, *testRepos) {
	userRepo := newMockUserRepo()
	clientRepo := newMockClientRepo()
	subRepo := newMockSubmissionRepo()
	tsRepo := newMockTimesheetRepo(subRepo)

	repo := &repository.Repository{
		User:       userRepo,
		Client:     clientRepo,
		Timesheet:  tsRepo,
		Submission: subRepo,
	}
	return repo, &testRepos{
		user:       userRepo,
		client:     clientRepo,
		timesheet:  tsRepo,
		submission: subRepo,
	}
}
