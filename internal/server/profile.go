package server

import (
	"context"
	"fmt"
	"net/http"

	"profile_validator/internal/domain/entity"
	"profile_validator/pkg/httpx/reply"
	"profile_validator/pkg/httpx/req"
	"profile_validator/pkg/rest"
)

type profileService interface {
	CheckPassword(ctx context.Context, password string) entity.PasswordStrength
	Validate(ctx context.Context, field entity.Field, value string) (entity.Result, error)
	ValidateBioWithAI(ctx context.Context, bio string) entity.BioReport
	ValidateAll(ctx context.Context, p entity.Profile) entity.ProfileReport
	OracleStatus() entity.OracleStatus
}

type ProfileServer struct {
	profileService profileService
}

func NewProfileServer(profileService profileService) ProfileServer {
	return ProfileServer{
		profileService: profileService,
	}
}

func (s ProfileServer) getAPI(w http.ResponseWriter, r *http.Request) error {
	reply.JSON(r.Context(), w, http.StatusOK, rest.APIIndex{
		Message: "Employee Info Validator API is running!",
		Endpoints: map[string]string{
			"POST /check-password":  "Check password strength",
			"POST /validate-name":   "Validate full name",
			"POST /validate-email":  "Validate email address",
			"POST /validate-phone":  "Validate Cambodian phone number",
			"POST /validate-bio":    "Validate short bio (basic)",
			"POST /validate-bio-ai": "Validate short bio with AI grammar check",
			"POST /validate-skills": "Validate skills",
			"POST /validate-all":    "Validate all employee info at once",
			"GET /ai-status":        "Get AI provider status",
		},
	})

	return nil
}

func (s ProfileServer) postCheckPassword(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.PasswordRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	strength := s.profileService.CheckPassword(ctx, request.Password)

	reply.JSON(ctx, w, http.StatusOK, newRESTPasswordStrength(strength))

	return nil
}

func (s ProfileServer) postValidateName(w http.ResponseWriter, r *http.Request) error {
	var request rest.NameRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	return s.validate(w, r, entity.FieldName, request.Name)
}

func (s ProfileServer) postValidateEmail(w http.ResponseWriter, r *http.Request) error {
	var request rest.EmailRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	return s.validate(w, r, entity.FieldEmail, request.Email)
}

func (s ProfileServer) postValidatePhone(w http.ResponseWriter, r *http.Request) error {
	var request rest.PhoneRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	return s.validate(w, r, entity.FieldPhone, request.Phone)
}

func (s ProfileServer) postValidateBio(w http.ResponseWriter, r *http.Request) error {
	var request rest.BioRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	return s.validate(w, r, entity.FieldBio, request.Bio)
}

func (s ProfileServer) postValidateSkills(w http.ResponseWriter, r *http.Request) error {
	var request rest.SkillsRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	return s.validate(w, r, entity.FieldSkills, request.Skills)
}

func (s ProfileServer) postValidateBioAI(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.BioRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	report := s.profileService.ValidateBioWithAI(ctx, request.Bio)

	reply.JSON(ctx, w, http.StatusOK, newRESTBioAIResult(report))

	return nil
}

func (s ProfileServer) postValidateAll(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.ProfileRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	report := s.profileService.ValidateAll(ctx, entity.Profile(request))

	reply.JSON(ctx, w, http.StatusOK, newRESTProfileReport(report))

	return nil
}

func (s ProfileServer) getAIStatus(w http.ResponseWriter, r *http.Request) error {
	reply.JSON(r.Context(), w, http.StatusOK, newRESTAIStatus(s.profileService.OracleStatus()))

	return nil
}

func (s ProfileServer) validate(w http.ResponseWriter, r *http.Request, field entity.Field, value string) error {
	ctx := r.Context()

	result, err := s.profileService.Validate(ctx, field, value)
	if err != nil {
		return fmt.Errorf("profileService.Validate: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTFieldResult(field, result))

	return nil
}
