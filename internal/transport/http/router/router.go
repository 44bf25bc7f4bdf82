package router

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type HealthHandler interface {
	Healthz(w http.ResponseWriter, r *http.Request)
	Readyz(w http.ResponseWriter, r *http.Request)
}

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	SendOTP(w http.ResponseWriter, r *http.Request)
	VerifyOTP(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)

	Profile(w http.ResponseWriter, r *http.Request)
	UpdateProfile(w http.ResponseWriter, r *http.Request)
	ClearAvatar(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	ListUsers(w http.ResponseWriter, r *http.Request)
	SetUserRole(w http.ResponseWriter, r *http.Request)
	DeleteUser(w http.ResponseWriter, r *http.Request)
}

type DeliveryHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Stats(w http.ResponseWriter, r *http.Request)
}

type BookingHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Track(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type SupportHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
}

type Deps struct {
	Health   HealthHandler
	Auth     AuthHandler
	Admin    AdminHandler
	Delivery DeliveryHandler
	Booking  BookingHandler
	Support  SupportHandler

	RequestIDMW func(http.Handler) http.Handler
	AuthMW      func(http.Handler) http.Handler
	AdminMW     func(http.Handler) http.Handler
	// OTPLimitMW throttles the OTP issue/verify endpoints. Optional.
	OTPLimitMW func(http.Handler) http.Handler
}

func New(deps Deps) (http.Handler, error) {
	if deps.Health == nil {
		return nil, fmt.Errorf("nil Health handler")
	}
	if deps.Auth == nil {
		return nil, fmt.Errorf("nil Auth handler")
	}
	if deps.Admin == nil {
		return nil, fmt.Errorf("nil Admin handler")
	}
	if deps.Delivery == nil {
		return nil, fmt.Errorf("nil Delivery handler")
	}
	if deps.Booking == nil {
		return nil, fmt.Errorf("nil Booking handler")
	}
	if deps.Support == nil {
		return nil, fmt.Errorf("nil Support handler")
	}
	if deps.AuthMW == nil {
		return nil, fmt.Errorf("nil Auth middleware")
	}
	if deps.AdminMW == nil {
		return nil, fmt.Errorf("nil Admin middleware")
	}

	passthrough := func(next http.Handler) http.Handler { return next }
	if deps.OTPLimitMW == nil {
		deps.OTPLimitMW = passthrough
	}

	r := chi.NewRouter()
	if deps.RequestIDMW != nil {
		r.Use(deps.RequestIDMW)
	}

	r.Get("/healthz", deps.Health.Healthz)
	r.Get("/readyz", deps.Health.Readyz)

	r.Route("/api", func(r chi.Router) {
		// --- Auth ---
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", deps.Auth.Register)
			r.With(deps.OTPLimitMW).Post("/send-otp", deps.Auth.SendOTP)
			r.With(deps.OTPLimitMW).Post("/verify", deps.Auth.VerifyOTP)
			r.Post("/login", deps.Auth.Login)
			r.With(deps.AuthMW).Get("/profile", deps.Auth.Profile)
		})

		// --- Profile (authenticated) ---
		r.Route("/users", func(r chi.Router) {
			r.Use(deps.AuthMW)
			r.Put("/profile", deps.Auth.UpdateProfile)
			r.Delete("/profile/avatar", deps.Auth.ClearAvatar)
		})

		// --- Admin (privileged) ---
		r.Route("/admin", func(r chi.Router) {
			r.Use(deps.AuthMW)
			r.Use(deps.AdminMW)
			r.Get("/users", deps.Admin.ListUsers)
			r.Patch("/users/{id}/role", deps.Admin.SetUserRole)
			r.Delete("/users/{id}", deps.Admin.DeleteUser)
		})

		// --- Deliveries (admin panel) ---
		r.Route("/deliveries", func(r chi.Router) {
			r.Use(deps.AuthMW)
			r.Use(deps.AdminMW)
			r.Post("/", deps.Delivery.Create)
			r.Get("/", deps.Delivery.List)
			r.Get("/dashboard/stats", deps.Delivery.Stats)
			r.Put("/{id}/status", deps.Delivery.UpdateStatus)
			r.Patch("/{id}", deps.Delivery.Update)
			r.Delete("/{id}", deps.Delivery.Delete)
		})

		// --- Bookings ---
		r.Route("/bookings", func(r chi.Router) {
			r.Post("/", deps.Booking.Create)
			r.Get("/{trackingID}", deps.Booking.Track)
			r.With(deps.AuthMW, deps.AdminMW).Get("/", deps.Booking.List)
		})

		// --- Support ---
		r.Post("/support", deps.Support.Create)
	})

	return r, nil
}
