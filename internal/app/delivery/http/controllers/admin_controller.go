package controllers

import (
	"context"
	"net/http"
	"strconv"

	"predictacare-service/internal/app/config"
	"predictacare-service/internal/app/contracts"
	"predictacare-service/internal/pkg/constvars"
	"predictacare-service/internal/pkg/dto/requests"
	"predictacare-service/internal/pkg/dto/responses"
	"predictacare-service/internal/pkg/exceptions"
	"predictacare-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AdminController struct {
	Log                *zap.Logger
	AdminUsecase       contracts.AdminUsecase
	DoctorUsecase      contracts.DoctorUsecase
	AppointmentUsecase contracts.AppointmentUsecase
	PredictionUsecase  contracts.PredictionUsecase
	InternalConfig     *config.InternalConfig
}

func NewAdminController(
	logger *zap.Logger,
	adminUsecase contracts.AdminUsecase,
	doctorUsecase contracts.DoctorUsecase,
	appointmentUsecase contracts.AppointmentUsecase,
	predictionUsecase contracts.PredictionUsecase,
	internalConfig *config.InternalConfig,
) *AdminController {
	return &AdminController{
		Log:                logger,
		AdminUsecase:       adminUsecase,
		DoctorUsecase:      doctorUsecase,
		AppointmentUsecase: appointmentUsecase,
		PredictionUsecase:  predictionUsecase,
		InternalConfig:     internalConfig,
	}
}

func (ctrl *AdminController) Login(w http.ResponseWriter, r *http.Request) {
	request := new(requests.AdminLogin)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	token, err := ctrl.AdminUsecase.Login(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UserLoggedInMessage, responses.AuthToken{Token: token})
}

// AddDoctor consumes a multipart form: the doctor fields plus an optional
// `image` part.
func (ctrl *AdminController) AddDoctor(w http.ResponseWriter, r *http.Request) {
	maxMemory := int64(ctrl.InternalConfig.App.RequestBodyLimitInMegabyte) << 20
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	fees, err := strconv.ParseFloat(r.FormValue("fees"), 64)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	request := &requests.AddDoctor{
		Name:       r.FormValue("name"),
		Email:      r.FormValue("email"),
		Password:   r.FormValue("password"),
		Speciality: r.FormValue("speciality"),
		Degree:     r.FormValue("degree"),
		Experience: r.FormValue("experience"),
		About:      r.FormValue("about"),
		Fees:       fees,
	}
	if addressJSON := r.FormValue("address"); addressJSON != "" {
		if err := json.Unmarshal([]byte(addressJSON), &request.Address); err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
			return
		}
	}

	image, err := readImagePart(r, "image", ctrl.InternalConfig.App.ProfileImageMaxUploadSizeMB)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	request.Image = image

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	_, err = ctrl.DoctorUsecase.AddDoctor(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.DoctorAddedMessage, nil)
}

func (ctrl *AdminController) AllDoctors(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.DoctorUsecase.ListAll(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DoctorsListedMessage, result)
}

func (ctrl *AdminController) ChangeAvailability(w http.ResponseWriter, r *http.Request) {
	request := new(requests.ChangeAvailability)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	err = ctrl.DoctorUsecase.ChangeAvailability(ctx, request.DocID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AvailabilityToggledMessage, nil)
}

func (ctrl *AdminController) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.AdminUsecase.Dashboard(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DashboardFetchedMessage, result)
}

func (ctrl *AdminController) AllPredictions(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.PredictionUsecase.ListAll(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PredictionsListedMessage, result)
}

func (ctrl *AdminController) AssignReview(w http.ResponseWriter, r *http.Request) {
	request := new(requests.AssignReview)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	err = ctrl.PredictionUsecase.AssignReview(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PredictionAssignedMessage, nil)
}

// SubmitReview lets an admin record a verdict directly, without the
// reviewer-match check a doctor submission goes through.
func (ctrl *AdminController) SubmitReview(w http.ResponseWriter, r *http.Request) {
	predictionID := chi.URLParam(r, "id")

	request := new(requests.SubmitReview)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	err = ctrl.PredictionUsecase.SubmitReview(ctx, "", predictionID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PredictionReviewedMessage, nil)
}

func (ctrl *AdminController) MarkUploaded(w http.ResponseWriter, r *http.Request) {
	predictionID := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	err := ctrl.PredictionUsecase.MarkUploaded(ctx, predictionID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PredictionUploadedMessage, nil)
}

func (ctrl *AdminController) MarkDeleted(w http.ResponseWriter, r *http.Request) {
	predictionID := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	err := ctrl.PredictionUsecase.MarkDeleted(ctx, predictionID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PredictionDeletedMessage, nil)
}

func (ctrl *AdminController) DeletePrediction(w http.ResponseWriter, r *http.Request) {
	predictionID := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	err := ctrl.PredictionUsecase.HardDelete(ctx, predictionID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PredictionDeletedMessage, nil)
}
