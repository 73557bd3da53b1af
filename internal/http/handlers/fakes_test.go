package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"outreach/internal/domain"
)

var errStore = errors.New("store unavailable")

type fakeUsers struct {
	byEmail   map[string]*domain.User
	nextID    int64
	getErr    error
	createErr error
	listErr   error
	creates   int
}

func newFakeUsers() *fakeUsers { return &fakeUsers{byEmail: map[string]*domain.User{}} }

func (f *fakeUsers) Create(_ context.Context, u *domain.User) error {
	f.creates++
	if f.createErr != nil {
		return f.createErr
	}
	if _, ok := f.byEmail[u.Email]; ok {
		return domain.ErrConflict
	}
	f.nextID++
	u.ID = f.nextID
	cp := *u
	f.byEmail[u.Email] = &cp
	return nil
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.byEmail[email]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUsers) List(context.Context) ([]domain.User, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := []domain.User{}
	for _, u := range f.byEmail {
		out = append(out, *u)
	}
	return out, nil
}

type fakeCourses struct {
	items []domain.Course
	err   error
}

func (f *fakeCourses) Create(_ context.Context, c *domain.Course) error {
	if f.err != nil {
		return f.err
	}
	c.ID = int64(len(f.items) + 1)
	f.items = append(f.items, *c)
	return nil
}

func (f *fakeCourses) List(context.Context) ([]domain.Course, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]domain.Course{}, f.items...), nil
}

type fakePartnerships struct {
	items []domain.Partnership
	err   error
}

func (f *fakePartnerships) Create(_ context.Context, p *domain.Partnership) error {
	if f.err != nil {
		return f.err
	}
	p.ID = int64(len(f.items) + 1)
	f.items = append(f.items, *p)
	return nil
}

func (f *fakePartnerships) List(context.Context) ([]domain.Partnership, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]domain.Partnership{}, f.items...), nil
}

type fakeDonations struct {
	items []domain.Donation
	err   error
}

func (f *fakeDonations) Create(_ context.Context, d *domain.Donation) error {
	if f.err != nil {
		return f.err
	}
	d.ID = int64(len(f.items) + 1)
	f.items = append(f.items, *d)
	return nil
}

func (f *fakeDonations) List(context.Context) ([]domain.Donation, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]domain.Donation{}, f.items...), nil
}

type fakeLiveSessions struct {
	emails  []string
	regErr  error
	listErr error
}

func (f *fakeLiveSessions) Register(_ context.Context, email, _ string) (bool, error) {
	if f.regErr != nil {
		return false, f.regErr
	}
	for _, e := range f.emails {
		if e == email {
			return false, nil
		}
	}
	f.emails = append(f.emails, email)
	return true, nil
}

func (f *fakeLiveSessions) ListEmails(context.Context) ([]string, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]string(nil), f.emails...), nil
}

type fakeRelay struct {
	mu      sync.Mutex
	sent    []domain.Message
	err     error
	failFor map[string]bool
}

func (f *fakeRelay) Send(_ context.Context, msg domain.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, msg)
	if f.err != nil {
		return f.err
	}
	if len(msg.To) > 0 && f.failFor[msg.To[0]] {
		return errors.New("550 mailbox unavailable: secret-detail")
	}
	return nil
}

type testEnv struct {
	app          *App
	users        *fakeUsers
	courses      *fakeCourses
	partnerships *fakePartnerships
	donations    *fakeDonations
	live         *fakeLiveSessions
	relay        *fakeRelay
}

var fixedNow = time.Date(2025, 5, 6, 7, 8, 9, 10_000_000, time.UTC)

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		users:        newFakeUsers(),
		courses:      &fakeCourses{},
		partnerships: &fakePartnerships{},
		donations:    &fakeDonations{},
		live:         &fakeLiveSessions{},
		relay:        &fakeRelay{},
	}
	env.app = NewApp(Deps{
		Users:          env.users,
		Courses:        env.courses,
		Partnerships:   env.partnerships,
		Donations:      env.donations,
		LiveSessions:   env.live,
		Relay:          env.relay,
		AdminEmail:     "admin@example.com",
		UploadMaxBytes: 1 << 10,
		Logger:         zerolog.Nop(),
		Now:            func() time.Time { return fixedNow },
	})
	return env
}

func call(t *testing.T, h http.HandlerFunc, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h(rr, req)
	var payload map[string]any
	if strings.HasPrefix(strings.TrimSpace(rr.Body.String()), "{") {
		if err := json.Unmarshal(rr.Body.Bytes(), &payload); err != nil {
			t.Fatalf("decode response %q: %v", rr.Body.String(), err)
		}
	}
	return rr, payload
}
