package dashboard

import (
	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/patient-portal/internal/dashboard"
	"github.com/jwalitptl/patient-portal/internal/model"
	"github.com/jwalitptl/patient-portal/pkg/errors"
	"github.com/jwalitptl/patient-portal/pkg/httputil"
)

// SessionCookie marks the logged-in session. Logout clears only this; stored
// patient and appointment data is retained on purpose.
const SessionCookie = "portal_session"

// Dashboard sections shown exclusively of each other.
const (
	SectionOverview = "overview"
	SectionProfile  = "profile"
)

type Handler struct {
	service *dashboard.Service
}

func NewHandler(service *dashboard.Service) *Handler {
	return &Handler{service: service}
}

// GetDashboard renders the requested section. Unknown section names fall back
// to the overview, mirroring the default landing view.
func (h *Handler) GetDashboard(c *gin.Context) {
	section := c.DefaultQuery("section", SectionOverview)

	switch section {
	case SectionProfile:
		httputil.RespondWithSuccess(c, gin.H{
			"section": SectionProfile,
			"profile": h.service.Profile(c.Request.Context()),
		})
	default:
		overview, err := h.service.LoadOverview(c.Request.Context())
		if err != nil {
			httputil.RespondWithError(c, errors.Internal(err))
			return
		}
		httputil.RespondWithSuccess(c, gin.H{
			"section":  SectionOverview,
			"overview": overview,
		})
	}
}

func (h *Handler) BookAppointment(c *gin.Context) {
	var req model.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, errors.Validation(dashboard.NoticeFillAllFields, err))
		return
	}

	appointment, err := h.service.Book(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithNotice(c, appointment, dashboard.NoticeBooked)
}

func (h *Handler) CancelAppointment(c *gin.Context) {
	id := c.Param("id")
	confirmed := c.Query("confirm") == "true"

	if err := h.service.Cancel(c.Request.Context(), id, confirmed); err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithNotice(c, gin.H{"id": id}, dashboard.NoticeCancelled)
}

func (h *Handler) RescheduleAppointment(c *gin.Context) {
	id := c.Param("id")
	notice := h.service.Reschedule(c.Request.Context(), id)
	httputil.RespondWithNotice(c, gin.H{"id": id}, notice)
}

func (h *Handler) GetProfile(c *gin.Context) {
	httputil.RespondWithSuccess(c, h.service.Profile(c.Request.Context()))
}

// EditProfile returns the current record for pre-populating the edit form.
func (h *Handler) EditProfile(c *gin.Context) {
	form, err := h.service.EditForm(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, form)
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	var req model.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, errors.Validation(dashboard.NoticeFillAllFields, err))
		return
	}

	card, err := h.service.UpdateProfile(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithNotice(c, card, dashboard.NoticeProfileUpdated)
}

// Logout clears the session cookie and points the client at the login page.
// Stored patient and appointment data is not cleared.
func (h *Handler) Logout(c *gin.Context) {
	c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
	httputil.RespondWithSuccess(c, gin.H{"redirect": "/login"})
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/dashboard", h.GetDashboard)

	appointments := r.Group("/appointments")
	{
		appointments.POST("", h.BookAppointment)
		appointments.DELETE("/:id", h.CancelAppointment)
		appointments.POST("/:id/reschedule", h.RescheduleAppointment)
	}

	profile := r.Group("/profile")
	{
		profile.GET("", h.GetProfile)
		profile.GET("/edit", h.EditProfile)
		profile.PUT("", h.UpdateProfile)
	}

	r.POST("/logout", h.Logout)
}
