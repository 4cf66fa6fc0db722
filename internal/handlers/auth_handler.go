package handlers

import (
	"errors"
	"log"

	"todolist/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles the landing page, registration, login, and logout.
type AuthHandler struct {
	authService *services.AuthService
	validate    *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the public routes with the Fiber app.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/", h.HandleHome)
	router.Get("/register", h.HandleRegisterForm)
	router.Post("/register", h.HandleRegister)
	router.Get("/login", h.HandleLoginForm)
	router.Post("/login", h.HandleLogin)
}

// RegisterProtectedRoutes registers the routes that require a session.
func (h *AuthHandler) RegisterProtectedRoutes(router fiber.Router) {
	router.Get("/logout", h.HandleLogout)
}

// HandleHome shows the landing page, or sends logged-in visitors straight to
// their task list.
func (h *AuthHandler) HandleHome(c *fiber.Ctx) error {
	if _, err := h.authService.ResolveSession(c.Cookies(services.SessionCookieName)); err == nil {
		return c.Redirect("/tasks", fiber.StatusSeeOther)
	}
	return render(c, "home", fiber.Map{"Flash": popFlash(c)})
}

// HandleRegisterForm shows the registration form.
func (h *AuthHandler) HandleRegisterForm(c *fiber.Ctx) error {
	return render(c, "register", fiber.Map{"Flash": popFlash(c)})
}

// registerForm carries the registration input through validation.
type registerForm struct {
	Username string `validate:"required,max=80"`
	Password string `validate:"required,max=72"`
}

// HandleRegister creates a new user from the submitted form.
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	form := registerForm{
		Username: c.FormValue("username"),
		Password: c.FormValue("password"),
	}
	if err := h.validate.Struct(form); err != nil {
		setFlash(c, "Username and password are required.")
		return c.Redirect("/register", fiber.StatusSeeOther)
	}

	if _, err := h.authService.Register(form.Username, form.Password); err != nil {
		switch {
		case errors.Is(err, services.ErrDuplicateUsername):
			setFlash(c, "That username is already taken.")
		case errors.Is(err, services.ErrMissingField):
			setFlash(c, "Username and password are required.")
		case errors.Is(err, services.ErrInvalidInput):
			setFlash(c, "Username or password is too long.")
		default:
			log.Printf("Error registering user: %v", err)
			setFlash(c, "Registration failed, please try again.")
		}
		return c.Redirect("/register", fiber.StatusSeeOther)
	}

	setFlash(c, "Registration successful, you can now log in.")
	return c.Redirect("/login", fiber.StatusSeeOther)
}

// HandleLoginForm shows the login form.
func (h *AuthHandler) HandleLoginForm(c *fiber.Ctx) error {
	return render(c, "login", fiber.Map{"Flash": popFlash(c)})
}

// HandleLogin authenticates the submitted credentials and sets the session
// cookie on success.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	token, err := h.authService.Login(c.FormValue("username"), c.FormValue("password"))
	if err != nil {
		if !errors.Is(err, services.ErrInvalidCredentials) {
			log.Printf("Error during login: %v", err)
		}
		setFlash(c, "Invalid username or password.")
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	c.Cookie(&fiber.Cookie{
		Name:     services.SessionCookieName,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	setFlash(c, "Logged in.")
	return c.Redirect("/tasks", fiber.StatusSeeOther)
}

// HandleLogout invalidates the session and clears the cookie.
func (h *AuthHandler) HandleLogout(c *fiber.Ctx) error {
	h.authService.Logout(c.Cookies(services.SessionCookieName))
	c.ClearCookie(services.SessionCookieName)
	setFlash(c, "Logged out.")
	return c.Redirect("/", fiber.StatusSeeOther)
}
