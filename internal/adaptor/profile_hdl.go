package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"sreca-account/internal/dto/request"
	"sreca-account/internal/usecase"
	"sreca-account/pkg/utils"

	"go.uber.org/zap"
)

const maxUploadSize = 10 << 20 // 10 MB

type ProfileHandler struct {
	service usecase.ProfileService
	log     *zap.Logger
}

func NewProfileHandler(service usecase.ProfileService, log *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		service: service,
		log:     log,
	}
}

// Get handles GET /api/profile/?user_id=<uuid>
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	userIDStr := strings.TrimSpace(r.URL.Query().Get("user_id"))
	if userIDStr == "" {
		utils.ResponseBadRequest(w, "User ID is required", nil)
		return
	}

	userID, err := utils.ParseUUID(userIDStr)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid user ID", nil)
		return
	}

	profile, err := h.service.GetProfile(r.Context(), userID, utils.RequestBaseURL(r))
	if err != nil {
		h.handleServiceError(w, err, "get profile")
		return
	}

	utils.ResponseSuccess(w, "Profile retrieved successfully", profile)
}

// Update handles POST /api/profile/update/ with either a JSON body or a
// multipart form carrying an optional profile_image file. The caller
// identity comes from the session middleware, never from the payload.
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	authUserID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required. Please login again.")
		return
	}

	var req request.ProfileUpdateRequest

	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			utils.ResponseBadRequest(w, "Invalid form data", nil)
			return
		}

		req = parseProfileForm(r)

		if file, header, err := r.FormFile("profile_image"); err == nil {
			defer file.Close()
			req.Image = file
			req.ImageName = header.Filename
		}
	} else {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.ResponseBadRequest(w, "Invalid JSON data", nil)
			return
		}
	}

	if req.UserID == "" {
		utils.ResponseBadRequest(w, "User ID is required", nil)
		return
	}

	profile, err := h.service.UpdateProfile(r.Context(), authUserID, &req, utils.RequestBaseURL(r))
	if err != nil {
		h.handleServiceError(w, err, "update profile")
		return
	}

	utils.ResponseSuccess(w, "Profile updated successfully", profile)
}

// parseProfileForm builds the update request from multipart form values,
// keeping the present-vs-absent distinction of the JSON path. Values are
// taken verbatim, exactly as a JSON body would carry them.
func parseProfileForm(r *http.Request) request.ProfileUpdateRequest {
	form := r.MultipartForm.Value

	get := func(key string) *string {
		vs, ok := form[key]
		if !ok || len(vs) == 0 {
			return nil
		}
		v := vs[0]
		return &v
	}

	var req request.ProfileUpdateRequest
	if v := get("user_id"); v != nil {
		req.UserID = *v
	}
	req.FullName = get("full_name")
	req.DateOfBirth = get("date_of_birth")
	req.Gender = get("gender")
	req.City = get("city")
	req.Area = get("area")
	req.StreetAddress = get("street_address")
	req.Phone = get("phone")
	req.AlternatePhone = get("alternate_phone")
	req.DeliveryInstructions = get("instructions")

	return req
}

func (h *ProfileHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not authorized"):
		h.log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, errMsg)

	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "Invalid user ID"),
		strings.Contains(errMsg, "required"):
		h.log.Warn(operation+" failed - validation", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
