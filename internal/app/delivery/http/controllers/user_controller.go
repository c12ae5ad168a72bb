package controllers

import (
	"context"
	"net/http"
	"predictacare-service/internal/app/config"
	"predictacare-service/internal/app/contracts"
	"predictacare-service/internal/pkg/constvars"
	"predictacare-service/internal/pkg/dto/requests"
	"predictacare-service/internal/pkg/exceptions"
	"predictacare-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const requestTimeout = 10 * time.Second

type UserController struct {
	Log               *zap.Logger
	UserUsecase       contracts.UserUsecase
	PredictionUsecase contracts.PredictionUsecase
	InternalConfig    *config.InternalConfig
}

func NewUserController(
	logger *zap.Logger,
	userUsecase contracts.UserUsecase,
	predictionUsecase contracts.PredictionUsecase,
	internalConfig *config.InternalConfig,
) *UserController {
	return &UserController{
		Log:               logger,
		UserUsecase:       userUsecase,
		PredictionUsecase: predictionUsecase,
		InternalConfig:    internalConfig,
	}
}

func (ctrl *UserController) Register(w http.ResponseWriter, r *http.Request) {
	request := new(requests.RegisterUser)
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

	result, err := ctrl.UserUsecase.Register(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.UserRegisteredMessage, result)
}

func (ctrl *UserController) Login(w http.ResponseWriter, r *http.Request) {
	request := new(requests.LoginUser)
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

	result, err := ctrl.UserUsecase.Login(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UserLoggedInMessage, result)
}

func (ctrl *UserController) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(constvars.CONTEXT_ACTOR_ID_KEY).(string)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.UserUsecase.GetProfile(ctx, userID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ProfileFetchedMessage, result)
}

// UpdateProfile consumes a multipart form: text fields plus an optional
// `image` part.
func (ctrl *UserController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(constvars.CONTEXT_ACTOR_ID_KEY).(string)

	maxMemory := int64(ctrl.InternalConfig.App.RequestBodyLimitInMegabyte) << 20
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	request := &requests.UpdateProfile{
		Name:   r.FormValue("name"),
		Phone:  r.FormValue("phone"),
		DOB:    r.FormValue("dob"),
		Gender: r.FormValue("gender"),
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

	err = ctrl.UserUsecase.UpdateProfile(ctx, userID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ProfileUpdatedMessage, nil)
}

func (ctrl *UserController) ListPredictions(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(constvars.CONTEXT_ACTOR_ID_KEY).(string)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.PredictionUsecase.ListForUser(ctx, userID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PredictionsListedMessage, result)
}
