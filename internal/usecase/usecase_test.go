package usecase

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"sreca-account/internal/data/entity"
	"sreca-account/internal/data/repository"
	"sreca-account/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// In-memory fakes for the repository interfaces. They mirror the real
// SQL behaviour the services rely on: nil result for no rows, newest
// match first for OTP lookups.

type fakeUserRepo struct {
	users     map[uuid.UUID]*entity.User
	createErr error
	updateErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	u := *user
	f.users[user.ID] = &u
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if _, ok := f.users[user.ID]; !ok {
		return fmt.Errorf("user %s not found or already deleted", user.ID.String())
	}
	u := *user
	f.users[user.ID] = &u
	return nil
}

type fakeProfileRepo struct {
	profiles map[uuid.UUID]*entity.Profile // keyed by user id
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[uuid.UUID]*entity.Profile)}
}

func (f *fakeProfileRepo) Create(ctx context.Context, profile *entity.Profile) error {
	p := *profile
	f.profiles[profile.UserID] = &p
	return nil
}

func (f *fakeProfileRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	p, ok := f.profiles[userID]
	if !ok {
		return nil, nil
	}
	copied := *p
	return &copied, nil
}

func (f *fakeProfileRepo) Update(ctx context.Context, profile *entity.Profile) error {
	if _, ok := f.profiles[profile.UserID]; !ok {
		return fmt.Errorf("profile for user %s not found", profile.UserID.String())
	}
	p := *profile
	f.profiles[profile.UserID] = &p
	return nil
}

type fakeOTPRepo struct {
	rows []*entity.PasswordResetOTP
}

func newFakeOTPRepo() *fakeOTPRepo {
	return &fakeOTPRepo{}
}

func (f *fakeOTPRepo) Create(ctx context.Context, otp *entity.PasswordResetOTP) error {
	o := *otp
	f.rows = append(f.rows, &o)
	return nil
}

func (f *fakeOTPRepo) FindLatestUnverified(ctx context.Context, email, code string) (*entity.PasswordResetOTP, error) {
	return f.findLatest(email, code, false), nil
}

func (f *fakeOTPRepo) FindLatestVerified(ctx context.Context, email, code string) (*entity.PasswordResetOTP, error) {
	return f.findLatest(email, code, true), nil
}

func (f *fakeOTPRepo) findLatest(email, code string, verified bool) *entity.PasswordResetOTP {
	matches := make([]*entity.PasswordResetOTP, 0)
	for _, o := range f.rows {
		if o.Email == email && o.Code == code && o.IsVerified == verified {
			matches = append(matches, o)
		}
	}
	if len(matches) == 0 {
		return nil
	}
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].CreatedAt.After(matches[j].CreatedAt)
	})
	copied := *matches[0]
	return &copied
}

func (f *fakeOTPRepo) MarkVerified(ctx context.Context, otpID uuid.UUID) error {
	for _, o := range f.rows {
		if o.ID == otpID {
			o.IsVerified = true
			return nil
		}
	}
	return fmt.Errorf("OTP %s not found", otpID.String())
}

func (f *fakeOTPRepo) MarkAllVerified(ctx context.Context, userID uuid.UUID, email string) error {
	for _, o := range f.rows {
		if o.UserID == userID && o.Email == email {
			o.IsVerified = true
		}
	}
	return nil
}

type fakeSessionRepo struct {
	sessions  map[string]*entity.Session
	createErr error
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*entity.Session)}
}

func (f *fakeSessionRepo) Create(ctx context.Context, session *entity.Session) error {
	if f.createErr != nil {
		return f.createErr
	}
	s := *session
	f.sessions[session.Token.String()] = &s
	return nil
}

func (f *fakeSessionRepo) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	s, ok := f.sessions[token]
	if !ok || s.RevokedAt != nil || time.Now().After(s.ExpiresAt) {
		return nil, nil
	}
	copied := *s
	return &copied, nil
}

func (f *fakeSessionRepo) Revoke(ctx context.Context, token string) error {
	if s, ok := f.sessions[token]; ok && s.RevokedAt == nil {
		now := time.Now()
		s.RevokedAt = &now
	}
	return nil
}

// fakeMailer records every dispatch instead of talking to the provider.

type sentOTP struct {
	To   string
	Name string
	Code string
}

type fakeMailer struct {
	otps     []sentOTP
	welcomes []string
	sendErr  error
}

func (f *fakeMailer) SendOTP(ctx context.Context, to, name, code string) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.otps = append(f.otps, sentOTP{To: to, Name: name, Code: code})
	return nil
}

func (f *fakeMailer) SendWelcome(ctx context.Context, to, name string) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.welcomes = append(f.welcomes, to)
	return nil
}

type fakeStore struct {
	saved   []string
	path    string
	saveErr error
}

func (f *fakeStore) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	if f.saveErr != nil {
		return "", f.saveErr
	}
	f.saved = append(f.saved, filename)
	if f.path != "" {
		return f.path, nil
	}
	return "profile_images/stored.png", nil
}

// testEnv bundles the fakes behind a ready-to-use service set.
type testEnv struct {
	users    *fakeUserRepo
	profiles *fakeProfileRepo
	otps     *fakeOTPRepo
	sessions *fakeSessionRepo
	mail     *fakeMailer
	store    *fakeStore
	repo     *repository.Repository
	config   *utils.Config
}

func newTestEnv() *testEnv {
	env := &testEnv{
		users:    newFakeUserRepo(),
		profiles: newFakeProfileRepo(),
		otps:     newFakeOTPRepo(),
		sessions: newFakeSessionRepo(),
		mail:     &fakeMailer{},
		store:    &fakeStore{},
	}

	env.repo = &repository.Repository{
		User:    env.users,
		Profile: env.profiles,
		OTP:     env.otps,
		Session: env.sessions,
	}

	env.config = &utils.Config{
		OTP:     utils.OTPConfig{ExpiryMinutes: 15, Length: 6},
		Session: utils.SessionConfig{ExpiryHours: 24},
	}

	return env
}

func (e *testEnv) authService() AuthService {
	return NewAuthService(e.repo, e.mail, e.config, zap.NewNop())
}

func (e *testEnv) passwordService() PasswordService {
	return NewPasswordService(e.repo, e.mail, e.config, zap.NewNop())
}

func (e *testEnv) profileService() ProfileService {
	return NewProfileService(e.repo, e.store, zap.NewNop())
}

// seedUser registers an active user directly in the fake store.
func (e *testEnv) seedUser(name, email, password string) *entity.User {
	hash, _ := utils.HashPassword(password)
	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		IsActive:     true,
	}
	e.users.users[user.ID] = user
	return user
}
