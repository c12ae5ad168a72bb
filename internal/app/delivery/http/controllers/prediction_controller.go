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

type PredictionController struct {
	Log               *zap.Logger
	PredictionUsecase contracts.PredictionUsecase
}

func NewPredictionController(logger *zap.Logger, predictionUsecase contracts.PredictionUsecase) *PredictionController {
	return &PredictionController{
		Log:               logger,
		PredictionUsecase: predictionUsecase,
	}
}

// Predict forwards the feature payload to the model service untouched and
// returns the model's response body as-is.
func (ctrl *PredictionController) Predict(w http.ResponseWriter, r *http.Request) {
	disease := chi.URLParam(r, "disease")

	features := make(map[string]interface{})
	err := json.NewDecoder(r.Body).Decode(&features)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.PredictionUsecase.Relay(ctx, disease, features)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(constvars.StatusOK)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		ctrl.Log.Error("Failed to encode prediction response", zap.Error(err))
	}
}

func (ctrl *PredictionController) Save(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(constvars.CONTEXT_ACTOR_ID_KEY).(string)

	request := new(requests.SavePrediction)
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

	id, err := ctrl.PredictionUsecase.Save(ctx, userID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.PredictionSavedMessage, map[string]string{"id": id})
}
