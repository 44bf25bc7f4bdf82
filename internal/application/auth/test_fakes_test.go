package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/quickdeliver/backend/internal/domain"
)

/*
Fakes for ports
*/

type fakeUserRepo struct {
	mu sync.Mutex

	byID    map[string]domain.User
	byEmail map[string]domain.User

	// injected errors (if set, method returns error)
	getByIDErr    error
	getByEmailErr error
	createErr     error
	listErr       error
	setOTPErr     error
	clearOTPErr   error
	setRoleErr    error
	deleteErr     error
	updateErr     error

	// record calls
	setOTPCalls   []struct{ email, hash string }
	clearOTPCalls []struct{ email, hash string }
	setRoles      []struct{ id, role string }
	deletedIDs    []string
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    map[string]domain.User{},
		byEmail: map[string]domain.User{},
	}
}

func (f *fakeUserRepo) put(u domain.User) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byID[u.ID] = u
	f.byEmail[u.Email] = u
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.getByEmailErr != nil {
		return domain.User{}, f.getByEmailErr
	}
	u, ok := f.byEmail[email]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound()
	}
	return u, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.getByIDErr != nil {
		return domain.User{}, f.getByIDErr
	}
	u, ok := f.byID[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound()
	}
	return u, nil
}

func (f *fakeUserRepo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createErr != nil {
		return domain.User{}, f.createErr
	}
	if _, exists := f.byEmail[u.Email]; exists {
		return domain.User{}, domain.ErrEmailAlreadyExists()
	}
	f.byID[u.ID] = u
	f.byEmail[u.Email] = u
	return u, nil
}

func (f *fakeUserRepo) List(ctx context.Context) ([]domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]domain.User, 0, len(f.byID))
	for _, u := range f.byID {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) SetOTP(ctx context.Context, email, otpHash string, expiresAt time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.setOTPErr != nil {
		return f.setOTPErr
	}
	u, ok := f.byEmail[email]
	if !ok {
		return domain.ErrUserNotFound()
	}
	exp := expiresAt
	u.OTPHash = otpHash
	u.OTPExpiresAt = &exp
	f.byID[u.ID] = u
	f.byEmail[u.Email] = u
	f.setOTPCalls = append(f.setOTPCalls, struct{ email, hash string }{email, otpHash})
	return nil
}

func (f *fakeUserRepo) ClearOTPAndVerify(ctx context.Context, email, expectedHash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.clearOTPErr != nil {
		return f.clearOTPErr
	}
	u, ok := f.byEmail[email]
	if !ok {
		return domain.ErrUserNotFound()
	}
	if u.OTPHash == "" || u.OTPHash != expectedHash {
		return domain.ErrOTPNotPending()
	}
	u.OTPHash = ""
	u.OTPExpiresAt = nil
	u.Verified = true
	f.byID[u.ID] = u
	f.byEmail[u.Email] = u
	f.clearOTPCalls = append(f.clearOTPCalls, struct{ email, hash string }{email, expectedHash})
	return nil
}

func (f *fakeUserRepo) SetRole(ctx context.Context, userID string, role string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.setRoleErr != nil {
		return f.setRoleErr
	}
	u, ok := f.byID[userID]
	if !ok {
		return domain.ErrUserNotFound()
	}
	u.Role = role
	f.byID[userID] = u
	f.byEmail[u.Email] = u
	f.setRoles = append(f.setRoles, struct{ id, role string }{userID, role})
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.deleteErr != nil {
		return f.deleteErr
	}
	u, ok := f.byID[userID]
	if !ok {
		return domain.ErrUserNotFound()
	}
	delete(f.byID, userID)
	delete(f.byEmail, u.Email)
	f.deletedIDs = append(f.deletedIDs, userID)
	return nil
}

func (f *fakeUserRepo) UpdateProfile(ctx context.Context, userID, name, phone string) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.updateErr != nil {
		return domain.User{}, f.updateErr
	}
	u, ok := f.byID[userID]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound()
	}
	if name != "" {
		u.Name = name
	}
	if phone != "" {
		u.Phone = phone
	}
	f.byID[userID] = u
	f.byEmail[u.Email] = u
	return u, nil
}

func (f *fakeUserRepo) ClearAvatar(ctx context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	u, ok := f.byID[userID]
	if !ok {
		return domain.ErrUserNotFound()
	}
	u.Avatar = ""
	f.byID[userID] = u
	f.byEmail[u.Email] = u
	return nil
}

/*
fakeHasher produces reversible "hash:<pw>" hashes so tests can assert the
stored value without bcrypt cost.
*/

type fakeHasher struct {
	hashFn    func(pw string) (string, error)
	compareFn func(hash, pw string) error
}

func (f *fakeHasher) Hash(pw string) (string, error) {
	if f.hashFn != nil {
		return f.hashFn(pw)
	}
	return "hash:" + pw, nil
}

func (f *fakeHasher) Compare(hash, pw string) error {
	if f.compareFn != nil {
		return f.compareFn(hash, pw)
	}
	if hash != "hash:"+pw {
		return errors.New("mismatch")
	}
	return nil
}

type fakeOTPGen struct {
	mu    sync.Mutex
	codes []string
	next  string
	err   error
}

func (f *fakeOTPGen) Generate() (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return "", f.err
	}
	code := f.next
	if code == "" {
		code = fmt.Sprintf("%06d", 100000+len(f.codes))
	}
	f.codes = append(f.codes, code)
	return code, nil
}

type fakeSigner struct {
	signErr error
	signed  []TokenClaims
}

func (f *fakeSigner) SignAccessToken(c TokenClaims, ttl time.Duration) (string, error) {
	if f.signErr != nil {
		return "", f.signErr
	}
	f.signed = append(f.signed, c)
	return "token-for-" + c.UserID, nil
}

func (f *fakeSigner) VerifyAccessToken(token string) (TokenClaims, error) {
	return TokenClaims{}, errors.New("not used")
}

type sentMail struct {
	to, name, code string
	window         time.Duration
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
	err  error
}

func (f *fakeMailer) SendOTP(ctx context.Context, to, name, code string, window time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{to: to, name: name, code: code, window: window})
	return nil
}

/*
Service wiring for tests
*/

func newSvcForTest(t *testing.T) (*Service, *fakeUserRepo, *fakeHasher, *fakeOTPGen, *fakeSigner, *fakeMailer) {
	t.Helper()

	users := newFakeUserRepo()
	hasher := &fakeHasher{}
	gen := &fakeOTPGen{}
	signer := &fakeSigner{}
	mailer := &fakeMailer{}

	svc := NewService(users, hasher, gen, signer, mailer, Config{
		AccessTTL: time.Hour,
		OTPWindow: 10 * time.Minute,
	})
	return svc, users, hasher, gen, signer, mailer
}
