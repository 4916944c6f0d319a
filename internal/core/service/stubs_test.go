package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/brvhprince/planner-api/internal/core/domain"
	"github.com/brvhprince/planner-api/internal/core/ports"
)

type stubUserRepo struct {
	byID    map[string]*domain.UserDetails
	byHash  map[string]*domain.UserDetails
	creds   map[string]*domain.Credentials
	emailOK []string
	phoneOK []string
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{
		byID:   make(map[string]*domain.UserDetails),
		byHash: make(map[string]*domain.UserDetails),
		creds:  make(map[string]*domain.Credentials),
	}
}

func (r *stubUserRepo) Create(_ context.Context, rec *ports.CreateUserRecord) (*domain.UserDetails, error) {
	details := &domain.UserDetails{
		UserID:     rec.UserID,
		FirstName:  rec.FirstName,
		OtherNames: rec.OtherNames,
		Email:      rec.Email,
		Phone:      rec.Phone,
		Status:     "active",
	}
	r.byID[rec.UserID] = details
	r.byHash[rec.Hash] = details
	r.creds[rec.UserID] = &domain.Credentials{UserID: rec.UserID, Password: rec.Password, Salt: rec.Salt}
	return details, nil
}

func (r *stubUserRepo) FindByHash(_ context.Context, hash string) (*domain.UserDetails, error) {
	return r.byHash[hash], nil
}

func (r *stubUserRepo) FindByID(_ context.Context, userID string, _ bool) (*domain.UserDetails, error) {
	return r.byID[userID], nil
}

func (r *stubUserRepo) Credentials(_ context.Context, q ports.CredentialsQuery) (*domain.Credentials, error) {
	if q.UserID != "" {
		return r.creds[q.UserID], nil
	}
	for id, u := range r.byID {
		if u.Email == q.Email {
			return r.creds[id], nil
		}
	}
	return nil, nil
}

func (r *stubUserRepo) VerifyEmail(_ context.Context, email string) error {
	r.emailOK = append(r.emailOK, email)
	return nil
}

func (r *stubUserRepo) VerifyPhone(_ context.Context, userID string) error {
	r.phoneOK = append(r.phoneOK, userID)
	return nil
}

type stubSessionRepo struct {
	sessions map[string]*domain.AppSession
}

func newStubSessionRepo() *stubSessionRepo {
	return &stubSessionRepo{sessions: make(map[string]*domain.AppSession)}
}

func (r *stubSessionRepo) Create(_ context.Context, s *domain.AppSession) (string, error) {
	r.sessions[s.SessionID] = s
	return s.SessionID, nil
}

func (r *stubSessionRepo) Find(_ context.Context, id string) (*domain.AppSession, error) {
	return r.sessions[id], nil
}

func (r *stubSessionRepo) Delete(_ context.Context, id string) error {
	delete(r.sessions, id)
	return nil
}

type stubProfileRepo struct {
	profiles map[string]*domain.ProfileDetails
	updates  []*domain.ProfileUpdate
}

func newStubProfileRepo() *stubProfileRepo {
	return &stubProfileRepo{profiles: make(map[string]*domain.ProfileDetails)}
}

func (r *stubProfileRepo) FindByUserID(_ context.Context, userID string) (*domain.ProfileDetails, error) {
	return r.profiles[userID], nil
}

func (r *stubProfileRepo) Update(_ context.Context, update *domain.ProfileUpdate) (*domain.ProfileDetails, error) {
	r.updates = append(r.updates, update)
	return r.profiles[update.UserID], nil
}

func (r *stubProfileRepo) SetTwoFaSecret(_ context.Context, userID, secret string) error {
	p, ok := r.profiles[userID]
	if !ok {
		p = &domain.ProfileDetails{UserID: userID}
		r.profiles[userID] = p
	}
	p.TwoFaSecret = secret
	return nil
}

type stubAccountRepo struct {
	byHash       map[string]*domain.AccountDetails
	created      []*domain.AccountDetails
	ops          []string
	clearedUsers []string
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{byHash: make(map[string]*domain.AccountDetails)}
}

func (r *stubAccountRepo) Create(_ context.Context, a *domain.AccountDetails, userID string) (*domain.AccountDetails, error) {
	r.byHash[a.Hash] = a
	r.created = append(r.created, a)
	r.ops = append(r.ops, "create")
	return a, nil
}

func (r *stubAccountRepo) FindByHash(_ context.Context, hash string) (*domain.AccountDetails, error) {
	return r.byHash[hash], nil
}

func (r *stubAccountRepo) FindByID(_ context.Context, userID, accountID string) (*domain.AccountDetails, error) {
	for _, a := range r.created {
		if a.AccountID == accountID {
			return a, nil
		}
	}
	return nil, nil
}

func (r *stubAccountRepo) ListByUser(_ context.Context, userID string) ([]*domain.AccountDetails, error) {
	return r.created, nil
}

func (r *stubAccountRepo) ClearPrimary(_ context.Context, userID string) error {
	r.clearedUsers = append(r.clearedUsers, userID)
	r.ops = append(r.ops, "clear_primary")
	for _, a := range r.created {
		a.Primary = false
	}
	return nil
}

type stubFileRepo struct {
	files []*domain.FileDetails
}

func (r *stubFileRepo) Create(_ context.Context, f *domain.FileDetails) (*domain.FileDetails, error) {
	r.files = append(r.files, f)
	return f, nil
}

func (r *stubFileRepo) FindByIDs(_ context.Context, ids []string) ([]*domain.FileDetails, error) {
	var out []*domain.FileDetails
	for _, f := range r.files {
		for _, id := range ids {
			if f.ID == id {
				out = append(out, f)
			}
		}
	}
	return out, nil
}

type stubGoalRepo struct {
	byHash  map[string]*domain.GoalDetails
	created []*domain.GoalDetails
}

func newStubGoalRepo() *stubGoalRepo {
	return &stubGoalRepo{byHash: make(map[string]*domain.GoalDetails)}
}

func (r *stubGoalRepo) Create(_ context.Context, g *domain.GoalDetails) (*domain.GoalDetails, error) {
	r.byHash[g.Hash] = g
	r.created = append(r.created, g)
	return g, nil
}

func (r *stubGoalRepo) FindByHash(_ context.Context, hash string) (*domain.GoalDetails, error) {
	return r.byHash[hash], nil
}

func (r *stubGoalRepo) ListByUser(_ context.Context, userID string) ([]*domain.GoalDetails, error) {
	return r.created, nil
}

type stubTransactionRepo struct {
	created []*domain.TransactionDetails
}

func (r *stubTransactionRepo) Create(_ context.Context, tx *domain.TransactionDetails) (*domain.TransactionDetails, error) {
	r.created = append(r.created, tx)
	return tx, nil
}

func (r *stubTransactionRepo) ListByAccount(_ context.Context, userID, accountID string) ([]*domain.TransactionDetails, error) {
	return r.created, nil
}

// stubRecorder captures audit records synchronously.
type stubRecorder struct {
	records []*domain.Activity
}

func (r *stubRecorder) Record(a *domain.Activity) {
	r.records = append(r.records, a)
}

func (r *stubRecorder) titles() []string {
	out := make([]string, 0, len(r.records))
	for _, a := range r.records {
		out = append(out, a.Title)
	}
	return out
}

type stubCodeStore struct {
	values map[string]string
}

func newStubCodeStore() *stubCodeStore {
	return &stubCodeStore{values: make(map[string]string)}
}

func (s *stubCodeStore) Put(_ context.Context, kind, code, value string, _ time.Duration) error {
	s.values[kind+":"+code] = value
	return nil
}

func (s *stubCodeStore) Get(_ context.Context, kind, code string) (string, error) {
	return s.values[kind+":"+code], nil
}

func (s *stubCodeStore) Delete(_ context.Context, kind, code string) error {
	delete(s.values, kind+":"+code)
	return nil
}

type stubMailer struct {
	sent []ports.Mail
	fail bool
}

func (m *stubMailer) Send(_ context.Context, mail ports.Mail) error {
	if m.fail {
		return errors.New("mail provider unavailable")
	}
	m.sent = append(m.sent, mail)
	return nil
}

type stubSMS struct {
	sent []string
}

func (s *stubSMS) Send(_ context.Context, to, message string) error {
	s.sent = append(s.sent, to+": "+message)
	return nil
}

// stubStore records uploads and returns deterministic paths. Setting disabled
// simulates the storage-off backend (empty path, no error).
type stubStore struct {
	disabled bool
	puts     []string
}

func (s *stubStore) Put(_ context.Context, category, name, _ string, _ int64, r io.Reader) (string, error) {
	_, _ = io.Copy(io.Discard, r)
	if s.disabled {
		return "", nil
	}
	path := "https://files.test/" + category + "/" + name
	s.puts = append(s.puts, path)
	return path, nil
}

func (s *stubStore) Delete(_ context.Context, paths ...string) error { return nil }

// stubTwoFa accepts a single fixed code per secret.
type stubTwoFa struct{}

func (stubTwoFa) Generate(account string) (*ports.TwoFaSecret, error) {
	return &ports.TwoFaSecret{
		Secret: "SECRET-" + account,
		URI:    "otpauth://totp/test:" + account,
		QR:     "data:image/png;base64,AAAA",
	}, nil
}

func (stubTwoFa) Verify(secret, code string) bool {
	return code == "123456" && strings.HasPrefix(secret, "SECRET")
}

// stubVerification is a no-op verification flow for auth tests.
type stubVerification struct {
	emailsSent []string
}

func (v *stubVerification) SendEmailCode(_ context.Context, _, email, _ string) error {
	v.emailsSent = append(v.emailsSent, email)
	return nil
}

func (v *stubVerification) VerifyEmail(context.Context, string) (*ports.Response, error) {
	return nil, nil
}

func (v *stubVerification) SendPhoneCode(context.Context, string, *domain.Source) (*ports.Response, error) {
	return nil, nil
}

func (v *stubVerification) VerifyPhone(context.Context, ports.VerifyInput) (*ports.Response, error) {
	return nil, nil
}

func asError(err error, target any) bool { return errors.As(err, target) }

func testSource() *domain.Source {
	source, err := domain.NewSource(domain.NewSourceParams{
		IP:       "192.0.2.10",
		Browser:  "test-agent",
		Platform: "web",
	})
	if err != nil {
		panic(err)
	}
	return source
}
