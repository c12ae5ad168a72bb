package controllers

import (
	"context"
	"net/http"
	"predictacare-service/internal/app/contracts"
	"predictacare-service/internal/pkg/constvars"
	"predictacare-service/internal/pkg/dto/requests"
	"predictacare-service/internal/pkg/exceptions"
	"predictacare-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type PaymentController struct {
	Log            *zap.Logger
	PaymentUsecase contracts.PaymentUsecase
}

func NewPaymentController(logger *zap.Logger, paymentUsecase contracts.PaymentUsecase) *PaymentController {
	return &PaymentController{
		Log:            logger,
		PaymentUsecase: paymentUsecase,
	}
}

func (ctrl *PaymentController) CreateOrder(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(constvars.CONTEXT_ACTOR_ID_KEY).(string)

	request := new(requests.CreatePaymentOrder)
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

	result, err := ctrl.PaymentUsecase.CreateOrder(ctx, userID, request.AppointmentID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.PaymentOrderCreatedMessage, result)
}

func (ctrl *PaymentController) Verify(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(constvars.CONTEXT_ACTOR_ID_KEY).(string)

	request := new(requests.VerifyPayment)
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

	err = ctrl.PaymentUsecase.VerifyCheckout(ctx, userID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PaymentVerifiedMessage, nil)
}

// Webhook verifies the provider signature over the exact request bytes
// captured by the body buffer middleware, then hands the payload to the
// queue. The response only tells Razorpay whether to retry.
func (ctrl *PaymentController) Webhook(w http.ResponseWriter, r *http.Request) {
	rawBody, ok := r.Context().Value(constvars.CONTEXT_RAW_BODY).([]byte)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrReadBody(nil))
		return
	}
	signature := r.Header.Get(constvars.HeaderRazorpaySignature)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	err := ctrl.PaymentUsecase.HandleWebhook(ctx, rawBody, signature)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.WebhookProcessedMessage, nil)
}
