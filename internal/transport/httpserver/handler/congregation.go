package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	congregationdomain "church-app-go/internal/domain/congregation"
)

type memberResponse struct {
	ID                  string     `json:"id"`
	Firstname           string     `json:"firstname"`
	Lastname            string     `json:"lastname"`
	Email               string     `json:"email"`
	Phone               *string    `json:"phone"`
	Status              string     `json:"status"`
	MemberType          string     `json:"member_type"`
	Gender              string     `json:"gender"`
	BirthDate           *time.Time `json:"birth_date,omitempty"`
	AttendanceFrequency string     `json:"attendance_frequency"`
	JoinDate            time.Time  `json:"join_date"`
	ImageURL            string     `json:"image_url"`
	FamilyID            *string    `json:"family_id,omitempty"`
}

type memberPageResponse struct {
	Members []memberResponse `json:"members"`
	Total   int64            `json:"total"`
	Limit   int              `json:"limit"`
	Offset  int              `json:"offset"`
}

type eventResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	EventType string    `json:"event_type"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Location  string    `json:"location"`
}

type summaryResponse struct {
	Members          int64  `json:"members"`
	Events           int64  `json:"events"`
	Attendance       int64  `json:"attendance"`
	Donations        int64  `json:"donations"`
	Batches          int64  `json:"batches"`
	Groups           int64  `json:"groups"`
	GroupMembers     int64  `json:"groupMembers"`
	Families         int64  `json:"families"`
	Tasks            int64  `json:"tasks"`
	Guardians        int64  `json:"guardians"`
	ChildrenCheckIns int64  `json:"childrenCheckIns"`
	DonationTotal    string `json:"donationTotal"`
	AverageDonation  string `json:"averageDonation"`
}

func (h *Handlers) ListMembers(w http.ResponseWriter, r *http.Request) {
	organizationID := r.URL.Query().Get("organization_id")
	limit, err := parseIntParam(r.URL.Query().Get("limit"), 0)
	if err != nil {
		writeFailure(w, http.StatusBadRequest, "invalid limit")
		return
	}
	offset, err := parseIntParam(r.URL.Query().Get("offset"), 0)
	if err != nil {
		writeFailure(w, http.StatusBadRequest, "invalid offset")
		return
	}

	page, err := h.Congregation.ListMembers(r.Context(), organizationID, limit, offset)
	if err != nil {
		if errors.Is(err, congregationdomain.ErrOrganizationRequired) {
			writeFailure(w, http.StatusBadRequest, "organization_id is required")
			return
		}
		h.log.InternalError("congregation.members: list failed", err, "organization_id", organizationID)
		writeFailure(w, http.StatusInternalServerError, "internal error")
		return
	}

	members := make([]memberResponse, 0, len(page.Members))
	for _, member := range page.Members {
		members = append(members, toMemberResponse(member))
	}

	writeJSON(w, http.StatusOK, memberPageResponse{
		Members: members,
		Total:   page.Total,
		Limit:   page.Limit,
		Offset:  page.Offset,
	})
}

func (h *Handlers) ListEvents(w http.ResponseWriter, r *http.Request) {
	organizationID := r.URL.Query().Get("organization_id")

	from, err := parseDateParam(r.URL.Query().Get("from"))
	if err != nil {
		writeFailure(w, http.StatusBadRequest, "invalid from date")
		return
	}
	to, err := parseDateParam(r.URL.Query().Get("to"))
	if err != nil {
		writeFailure(w, http.StatusBadRequest, "invalid to date")
		return
	}

	events, err := h.Congregation.ListEvents(r.Context(), organizationID, from, to)
	if err != nil {
		switch {
		case errors.Is(err, congregationdomain.ErrOrganizationRequired):
			writeFailure(w, http.StatusBadRequest, "organization_id is required")
		case errors.Is(err, congregationdomain.ErrInvalidDateRange):
			writeFailure(w, http.StatusBadRequest, "to must not precede from")
		default:
			h.log.InternalError("congregation.events: list failed", err, "organization_id", organizationID)
			writeFailure(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	result := make([]eventResponse, 0, len(events))
	for _, event := range events {
		result = append(result, eventResponse{
			ID:        event.ID,
			Title:     event.Title,
			EventType: event.EventType,
			StartDate: event.StartDate,
			EndDate:   event.EndDate,
			Location:  event.Location,
		})
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *Handlers) DashboardSummary(w http.ResponseWriter, r *http.Request) {
	organizationID := r.URL.Query().Get("organization_id")

	summary, err := h.Congregation.Summary(r.Context(), organizationID)
	if err != nil {
		if errors.Is(err, congregationdomain.ErrOrganizationRequired) {
			writeFailure(w, http.StatusBadRequest, "organization_id is required")
			return
		}
		h.log.InternalError("congregation.summary: failed", err, "organization_id", organizationID)
		writeFailure(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, summaryResponse{
		Members:          summary.Members,
		Events:           summary.Events,
		Attendance:       summary.Attendance,
		Donations:        summary.Donations,
		Batches:          summary.Batches,
		Groups:           summary.Groups,
		GroupMembers:     summary.GroupMembers,
		Families:         summary.Families,
		Tasks:            summary.Tasks,
		Guardians:        summary.Guardians,
		ChildrenCheckIns: summary.ChildrenCheckIns,
		DonationTotal:    summary.DonationTotal.StringFixed(2),
		AverageDonation:  summary.AverageDonation.StringFixed(2),
	})
}

func (h *Handlers) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func toMemberResponse(member congregationdomain.Member) memberResponse {
	return memberResponse{
		ID:                  member.ID,
		Firstname:           member.Firstname,
		Lastname:            member.Lastname,
		Email:               member.Email,
		Phone:               member.Phone,
		Status:              member.Status,
		MemberType:          member.MemberType,
		Gender:              member.Gender,
		BirthDate:           member.BirthDate,
		AttendanceFrequency: member.AttendanceFrequency,
		JoinDate:            member.JoinDate,
		ImageURL:            member.ImageURL,
		FamilyID:            member.FamilyID,
	}
}

func parseIntParam(value string, fallback int) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < 0 {
		return 0, errors.New("invalid int")
	}
	return parsed, nil
}

func parseDateParam(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}
	return time.Parse("2006-01-02", value)
}
