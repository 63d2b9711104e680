package service

import (
	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"campushub_backend/internals/features/finance/fees/model"
)

var SnapClient snap.Client

// InitMidtrans initialises the Midtrans Snap client with the server key.
func InitMidtrans(serverKey string) {
	SnapClient.New(serverKey, midtrans.Sandbox)
}

// GenerateSnapToken creates a Snap token for the outstanding amount of a
// fee. The order ID must already be stamped on the fee row.
func GenerateSnapToken(fee model.FeeModel, studentName, email string) (string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  *fee.FeeOrderID,
			GrossAmt: fee.Outstanding(),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: studentName,
			Email: email,
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", err
	}

	return resp.Token, nil
}
