package models

import "time"

// PaymentInfo is attached to an appointment only after the checkout
// signature was verified or a webhook event confirmed the payment.
type PaymentInfo struct {
	OrderID   string    `json:"orderId" bson:"orderId"`
	PaymentID string    `json:"paymentId" bson:"paymentId"`
	Signature string    `json:"signature,omitempty" bson:"signature,omitempty"`
	Amount    int64     `json:"amount" bson:"amount"`
	Currency  string    `json:"currency" bson:"currency"`
	Status    string    `json:"status" bson:"status"`
	Source    string    `json:"source" bson:"source"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

type Appointment struct {
	ID          string         `json:"_id" bson:"_id,omitempty"`
	UserID      string         `json:"userId" bson:"userId"`
	DocID       string         `json:"docId" bson:"docId"`
	UserData    UserSnapshot   `json:"userData" bson:"userData"`
	DocData     DoctorSnapshot `json:"docData" bson:"docData"`
	Amount      float64        `json:"amount" bson:"amount"`
	SlotDate    string         `json:"slotDate" bson:"slotDate"`
	SlotTime    string         `json:"slotTime" bson:"slotTime"`
	Date        int64          `json:"date" bson:"date"`
	Payment     bool           `json:"payment" bson:"payment"`
	Cancelled   bool           `json:"cancelled" bson:"cancelled"`
	IsCompleted bool           `json:"isCompleted" bson:"isCompleted"`
	PaymentInfo *PaymentInfo   `json:"paymentInfo,omitempty" bson:"paymentInfo,omitempty"`
	TimeModel   `bson:",inline"`
}
