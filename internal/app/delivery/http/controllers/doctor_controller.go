package controllers

import (
	"context"
	"net/http"
	"predictacare-service/internal/app/contracts"
	"predictacare-service/internal/pkg/constvars"
	"predictacare-service/internal/pkg/dto/requests"
	"predictacare-service/internal/pkg/exceptions"
	"predictacare-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type DoctorController struct {
	Log               *zap.Logger
	DoctorUsecase     contracts.DoctorUsecase
	PredictionUsecase contracts.PredictionUsecase
}

func NewDoctorController(logger *zap.Logger, doctorUsecase contracts.DoctorUsecase, predictionUsecase contracts.PredictionUsecase) *DoctorController {
	return &DoctorController{
		Log:               logger,
		DoctorUsecase:     doctorUsecase,
		PredictionUsecase: predictionUsecase,
	}
}

func (ctrl *DoctorController) Login(w http.ResponseWriter, r *http.Request) {
	request := new(requests.LoginDoctor)
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

	result, err := ctrl.DoctorUsecase.Login(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UserLoggedInMessage, result)
}

// ListPublic serves the doctor directory used by the booking page. It is
// unauthenticated and strips credentials from the records.
func (ctrl *DoctorController) ListPublic(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.DoctorUsecase.ListPublic(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DoctorsListedMessage, result)
}

func (ctrl *DoctorController) GetProfile(w http.ResponseWriter, r *http.Request) {
	docID, _ := r.Context().Value(constvars.CONTEXT_ACTOR_ID_KEY).(string)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.DoctorUsecase.GetProfile(ctx, docID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ProfileFetchedMessage, result)
}

func (ctrl *DoctorController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	docID, _ := r.Context().Value(constvars.CONTEXT_ACTOR_ID_KEY).(string)

	request := new(requests.UpdateDoctorProfile)
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

	err = ctrl.DoctorUsecase.UpdateProfile(ctx, docID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ProfileUpdatedMessage, nil)
}

func (ctrl *DoctorController) ChangeAvailability(w http.ResponseWriter, r *http.Request) {
	docID, _ := r.Context().Value(constvars.CONTEXT_ACTOR_ID_KEY).(string)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	err := ctrl.DoctorUsecase.ChangeAvailability(ctx, docID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AvailabilityToggledMessage, nil)
}

func (ctrl *DoctorController) Dashboard(w http.ResponseWriter, r *http.Request) {
	docID, _ := r.Context().Value(constvars.CONTEXT_ACTOR_ID_KEY).(string)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.DoctorUsecase.Dashboard(ctx, docID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DashboardFetchedMessage, result)
}

func (ctrl *DoctorController) ListAssignedPredictions(w http.ResponseWriter, r *http.Request) {
	docID, _ := r.Context().Value(constvars.CONTEXT_ACTOR_ID_KEY).(string)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.PredictionUsecase.ListForDoctor(ctx, docID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PredictionsListedMessage, result)
}

func (ctrl *DoctorController) SubmitReview(w http.ResponseWriter, r *http.Request) {
	docID, _ := r.Context().Value(constvars.CONTEXT_ACTOR_ID_KEY).(string)
	predictionID := chi.URLParam(r, "id")

	request := new(requests.SubmitReview)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	err = ctrl.PredictionUsecase.SubmitReview(ctx, docID, predictionID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PredictionReviewedMessage, nil)
}
