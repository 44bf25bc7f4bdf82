package http_handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAuthHandler_Register_InvalidJSON(t *testing.T) {
	env := newAuthTestEnv(t)

	req := jsonRequest(t, http.MethodPost, "/api/auth/register", "{bad json")
	rr := httptest.NewRecorder()

	env.handler.Register(rr, req)
	res := rr.Result()
	defer res.Body.Close()

	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.StatusCode)
	}
}

func TestAuthHandler_Register_ValidationFails(t *testing.T) {
	env := newAuthTestEnv(t)

	req := jsonRequest(t, http.MethodPost, "/api/auth/register", map[string]any{
		"name":     "Jane",
		"email":    "",
		"password": "supersecret",
	})
	rr := httptest.NewRecorder()

	env.handler.Register(rr, req)
	res := rr.Result()
	defer res.Body.Close()

	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.StatusCode)
	}
	if code := mustErrorCode(t, res.Body); code != "missing_field" {
		t.Fatalf("expected missing_field, got %q", code)
	}
}

func TestAuthHandler_Register_Returns201_NoPasswordInBody(t *testing.T) {
	env := newAuthTestEnv(t)

	req := jsonRequest(t, http.MethodPost, "/api/auth/register", map[string]any{
		"name":     "Jane",
		"email":    "  Jane@Example.COM ",
		"password": "supersecret",
	})
	rr := httptest.NewRecorder()

	env.handler.Register(rr, req)
	res := rr.Result()
	defer res.Body.Close()

	if res.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d; body=%s", res.StatusCode, rr.Body.String())
	}

	var out struct {
		User map[string]any `json:"user"`
	}
	mustReadJSON(t, res.Body, &out)

	if out.User["email"] != "jane@example.com" {
		t.Fatalf("expected normalized email, got %v", out.User["email"])
	}
	if out.User["verified"] != false {
		t.Fatalf("expected verified=false after register")
	}
	if _, leaked := out.User["password"]; leaked {
		t.Fatalf("password must not appear in response")
	}
	if _, leaked := out.User["password_hash"]; leaked {
		t.Fatalf("password hash must not appear in response")
	}
}

func TestAuthHandler_Register_DuplicateEmail_Returns409(t *testing.T) {
	env := newAuthTestEnv(t)

	body := map[string]any{
		"name":     "Jane",
		"email":    "jane@example.com",
		"password": "supersecret",
	}

	rr := httptest.NewRecorder()
	env.handler.Register(rr, jsonRequest(t, http.MethodPost, "/api/auth/register", body))
	if rr.Code != http.StatusCreated {
		t.Fatalf("setup register expected 201, got %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	env.handler.Register(rr, jsonRequest(t, http.MethodPost, "/api/auth/register", body))
	res := rr.Result()
	defer res.Body.Close()

	if res.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409, got %d", res.StatusCode)
	}
	if code := mustErrorCode(t, res.Body); code != "email_already_exists" {
		t.Fatalf("expected email_already_exists, got %q", code)
	}
}

func TestAuthHandler_SendOTP_UnknownEmail_Returns404(t *testing.T) {
	env := newAuthTestEnv(t)

	req := jsonRequest(t, http.MethodPost, "/api/auth/send-otp", map[string]any{
		"email": "nobody@example.com",
	})
	rr := httptest.NewRecorder()

	env.handler.SendOTP(rr, req)
	res := rr.Result()
	defer res.Body.Close()

	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", res.StatusCode)
	}
	if code := mustErrorCode(t, res.Body); code != "user_not_found" {
		t.Fatalf("expected user_not_found, got %q", code)
	}
}

// registerUser is a setup shortcut used by the flow tests below.
func registerUser(t *testing.T, env *authTestEnv, email string) {
	t.Helper()

	rr := httptest.NewRecorder()
	env.handler.Register(rr, jsonRequest(t, http.MethodPost, "/api/auth/register", map[string]any{
		"name":     "Flow User",
		"email":    email,
		"password": "supersecret",
	}))
	if rr.Code != http.StatusCreated {
		t.Fatalf("setup register expected 201, got %d; body=%s", rr.Code, rr.Body.String())
	}
}

func TestAuthHandler_OTPFlow_SendVerifyLogin(t *testing.T) {
	env := newAuthTestEnv(t)
	registerUser(t, env, "flow@example.com")

	// Login before verification is refused.
	rr := httptest.NewRecorder()
	env.handler.Login(rr, jsonRequest(t, http.MethodPost, "/api/auth/login", map[string]any{
		"email":    "flow@example.com",
		"password": "supersecret",
	}))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 before verification, got %d", rr.Code)
	}
	if code := mustErrorCode(t, rr.Result().Body); code != "account_not_verified" {
		t.Fatalf("expected account_not_verified, got %q", code)
	}

	// Issue the code.
	rr = httptest.NewRecorder()
	env.handler.SendOTP(rr, jsonRequest(t, http.MethodPost, "/api/auth/send-otp", map[string]any{
		"email": "flow@example.com",
	}))
	if rr.Code != http.StatusOK {
		t.Fatalf("send-otp expected 200, got %d; body=%s", rr.Code, rr.Body.String())
	}
	code := env.mailer.lastOTP(t)

	// A wrong code is a mismatch, not a success.
	rr = httptest.NewRecorder()
	env.handler.VerifyOTP(rr, jsonRequest(t, http.MethodPost, "/api/auth/verify", map[string]any{
		"email": "flow@example.com",
		"otp":   "000000",
	}))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("wrong otp expected 400, got %d", rr.Code)
	}
	if got := mustErrorCode(t, rr.Result().Body); got != "otp_mismatch" {
		t.Fatalf("expected otp_mismatch, got %q", got)
	}

	// The mailed code verifies and issues a token.
	rr = httptest.NewRecorder()
	env.handler.VerifyOTP(rr, jsonRequest(t, http.MethodPost, "/api/auth/verify", map[string]any{
		"email": "flow@example.com",
		"otp":   code,
	}))
	if rr.Code != http.StatusOK {
		t.Fatalf("verify expected 200, got %d; body=%s", rr.Code, rr.Body.String())
	}

	var out struct {
		User   map[string]any `json:"user"`
		Tokens struct {
			AccessToken string `json:"access_token"`
			TokenType   string `json:"token_type"`
			ExpiresIn   int64  `json:"expires_in"`
		} `json:"tokens"`
	}
	mustReadJSON(t, rr.Result().Body, &out)

	if out.User["verified"] != true {
		t.Fatalf("expected verified=true after OTP verify")
	}
	if out.Tokens.AccessToken == "" {
		t.Fatalf("expected a signed access token")
	}
	if out.Tokens.TokenType != "Bearer" {
		t.Fatalf("expected token_type Bearer, got %q", out.Tokens.TokenType)
	}
	if out.Tokens.ExpiresIn != 3600 {
		t.Fatalf("expected expires_in 3600, got %d", out.Tokens.ExpiresIn)
	}

	// The code is single use.
	rr = httptest.NewRecorder()
	env.handler.VerifyOTP(rr, jsonRequest(t, http.MethodPost, "/api/auth/verify", map[string]any{
		"email": "flow@example.com",
		"otp":   code,
	}))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("reused otp expected 400, got %d", rr.Code)
	}
	if got := mustErrorCode(t, rr.Result().Body); got != "otp_not_pending" {
		t.Fatalf("expected otp_not_pending, got %q", got)
	}

	// Password login now works.
	rr = httptest.NewRecorder()
	env.handler.Login(rr, jsonRequest(t, http.MethodPost, "/api/auth/login", map[string]any{
		"email":    " Flow@Example.com ",
		"password": "supersecret",
	}))
	if rr.Code != http.StatusOK {
		t.Fatalf("login expected 200, got %d; body=%s", rr.Code, rr.Body.String())
	}
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	env := newAuthTestEnv(t)
	registerUser(t, env, "pw@example.com")

	rr := httptest.NewRecorder()
	env.handler.Login(rr, jsonRequest(t, http.MethodPost, "/api/auth/login", map[string]any{
		"email":    "pw@example.com",
		"password": "not-the-password",
	}))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	if code := mustErrorCode(t, rr.Result().Body); code != "invalid_credentials" {
		t.Fatalf("expected invalid_credentials, got %q", code)
	}
}

func TestAuthHandler_Profile_RequiresClaims(t *testing.T) {
	env := newAuthTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	rr := httptest.NewRecorder()

	env.handler.Profile(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without claims, got %d", rr.Code)
	}
}

func TestAuthHandler_Profile_ReturnsStoredUser(t *testing.T) {
	env := newAuthTestEnv(t)
	registerUser(t, env, "profile@example.com")

	u, err := env.repo.GetByEmail(context.Background(), "profile@example.com")
	if err != nil {
		t.Fatalf("lookup registered user: %v", err)
	}

	req := withClaimsCtx(httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil), u.ID, u.Role)
	rr := httptest.NewRecorder()

	env.handler.Profile(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d; body=%s", rr.Code, rr.Body.String())
	}

	var out struct {
		User map[string]any `json:"user"`
	}
	mustReadJSON(t, rr.Result().Body, &out)
	if out.User["email"] != "profile@example.com" {
		t.Fatalf("expected stored email, got %v", out.User["email"])
	}
}

func TestAuthHandler_UpdateProfile_SetsNameAndPhone(t *testing.T) {
	env := newAuthTestEnv(t)
	registerUser(t, env, "edit@example.com")

	u, err := env.repo.GetByEmail(context.Background(), "edit@example.com")
	if err != nil {
		t.Fatalf("lookup registered user: %v", err)
	}

	req := withClaimsCtx(jsonRequest(t, http.MethodPut, "/api/users/profile", map[string]any{
		"name":  "Renamed",
		"phone": "0400000000",
	}), u.ID, u.Role)
	rr := httptest.NewRecorder()

	env.handler.UpdateProfile(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d; body=%s", rr.Code, rr.Body.String())
	}

	var out struct {
		User map[string]any `json:"user"`
	}
	mustReadJSON(t, rr.Result().Body, &out)
	if out.User["name"] != "Renamed" {
		t.Fatalf("expected renamed user, got %v", out.User["name"])
	}
	if out.User["phone"] != "0400000000" {
		t.Fatalf("expected phone set, got %v", out.User["phone"])
	}
}

func TestAuthHandler_UpdateProfile_EmptyBody_Rejected(t *testing.T) {
	env := newAuthTestEnv(t)
	registerUser(t, env, "noop@example.com")

	u, err := env.repo.GetByEmail(context.Background(), "noop@example.com")
	if err != nil {
		t.Fatalf("lookup registered user: %v", err)
	}

	req := withClaimsCtx(jsonRequest(t, http.MethodPut, "/api/users/profile", map[string]any{}), u.ID, u.Role)
	rr := httptest.NewRecorder()

	env.handler.UpdateProfile(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty update, got %d", rr.Code)
	}
}
