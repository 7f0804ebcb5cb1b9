package handler

import (
	"errors"
	"net/http"

	demodatadomain "church-app-go/internal/domain/demodata"

	"github.com/go-playground/validator/v10"
)

type generateRequest struct {
	OrganizationID  string `json:"organizationId" validate:"required"`
	MemberCount     *int   `json:"memberCount" validate:"omitempty,gte=0"`
	WeeksToGenerate *int   `json:"weeksToGenerate" validate:"omitempty,gte=1"`
}

type generateResponse struct {
	Success bool                  `json:"success"`
	Stats   *demodatadomain.Stats `json:"stats"`
}

type purgeResponse struct {
	Success bool `json:"success"`
}

func (h *Handlers) GenerateDemoData(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeFailure(w, http.StatusBadRequest, "invalid json body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 && fieldErrs[0].Field() == "OrganizationID" {
			writeFailure(w, http.StatusBadRequest, "organizationId is required")
			return
		}
		writeFailure(w, http.StatusBadRequest, "invalid request")
		return
	}

	params := demodatadomain.Params{
		OrganizationID:  req.OrganizationID,
		MemberCount:     h.demoCfg.DefaultMemberCount,
		WeeksToGenerate: h.demoCfg.DefaultWeeks,
	}
	if req.MemberCount != nil {
		params.MemberCount = *req.MemberCount
	}
	if req.WeeksToGenerate != nil {
		params.WeeksToGenerate = *req.WeeksToGenerate
	}

	if params.MemberCount > h.demoCfg.MaxMemberCount {
		writeFailure(w, http.StatusBadRequest, "memberCount exceeds the configured maximum")
		return
	}
	if params.WeeksToGenerate > h.demoCfg.MaxWeeks {
		writeFailure(w, http.StatusBadRequest, "weeksToGenerate exceeds the configured maximum")
		return
	}

	stats, err := h.Demo.Generate(r.Context(), params)
	if err != nil {
		var stageErr *demodatadomain.StageError
		switch {
		case errors.Is(err, demodatadomain.ErrOrganizationRequired):
			writeFailure(w, http.StatusBadRequest, "organizationId is required")
		case errors.As(err, &stageErr):
			// The run may have left a partially populated dataset behind;
			// the stage name tells the caller where it stopped.
			h.log.InternalError("demodata.generate: stage failed", err,
				"organization_id", params.OrganizationID, "stage", stageErr.Stage)
			writeFailure(w, http.StatusBadRequest, stageErr.Error())
		default:
			h.log.InternalError("demodata.generate: failed", err,
				"organization_id", params.OrganizationID)
			writeFailure(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, generateResponse{Success: true, Stats: stats})
}

func (h *Handlers) PurgeDemoData(w http.ResponseWriter, r *http.Request) {
	organizationID := r.URL.Query().Get("organization_id")

	if err := h.Demo.Purge(r.Context(), organizationID); err != nil {
		if errors.Is(err, demodatadomain.ErrOrganizationRequired) {
			writeFailure(w, http.StatusBadRequest, "organization_id is required")
			return
		}
		h.log.InternalError("demodata.purge: failed", err, "organization_id", organizationID)
		writeFailure(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, purgeResponse{Success: true})
}
