package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"agencia_maker/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"go.uber.org/zap"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
var ErrMissingPixQRCode = errors.New("mercado pago response without pix qr_code")

const sandboxPayerEmail = "test_user_br@testuser.com"

// MercadoPagoGateway registers PIX charges with Mercado Pago. In mock mode it
// never leaves the process and delegates to the local BR Code builder.
type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
	local    *BRCodeGateway
	logger   *zap.Logger
}

var _ interfaces.IPixChargeGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string, mockMode bool, local *BRCodeGateway, logger *zap.Logger) (*MercadoPagoGateway, error) {
	if local == nil {
		local = NewBRCodeGateway("")
	}
	if mockMode {
		logger.Info("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, local: local, logger: logger}, nil
	}

	if accessToken == "" {
		logger.Error("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		logger.Error("[payment][gateway] failed creating sdk config", zap.Error(err))
		return nil, err
	}
	logger.Info("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg), local: local, logger: logger}, nil
}

func (g *MercadoPagoGateway) CreatePixCharge(ctx context.Context, req interfaces.PixChargeRequest) (interfaces.PixCharge, error) {
	if g != nil && g.mockMode {
		g.logger.Debug("[payment][gateway] mock pix charge", zap.String("job_id", req.JobID))
		return g.local.CreatePixCharge(ctx, req)
	}
	if g == nil || g.client == nil {
		return interfaces.PixCharge{}, ErrMercadoPagoGatewayNotConfigured
	}
	g.logger.Info("[payment][gateway] create pix start", zap.String("job_id", req.JobID), zap.Float64("amount", req.Amount))

	payerEmail := req.PayerEmail
	if payerEmail == "" {
		payerEmail = sandboxPayerEmail
	}
	reqMap := map[string]any{
		"transaction_amount": req.Amount,
		"description":        req.Description,
		"payment_method_id":  "pix",
		"external_reference": req.JobID,
		"payer":              map[string]any{"email": payerEmail},
	}
	b, err := json.Marshal(reqMap)
	if err != nil {
		return interfaces.PixCharge{}, err
	}
	var mpReq payment.Request
	if err := json.Unmarshal(b, &mpReq); err != nil {
		g.logger.Error("[payment][gateway] payload unmarshal failed", zap.Error(err))
		return interfaces.PixCharge{}, err
	}

	resp, err := g.client.Create(ctx, mpReq)
	if err != nil {
		g.logger.Error("[payment][gateway] sdk create failed", zap.String("job_id", req.JobID), zap.Error(err))
		return interfaces.PixCharge{}, err
	}

	code, err := pixQRCode(resp)
	if err != nil {
		g.logger.Error("[payment][gateway] response without qr code", zap.Any("provider_payment_id", resp.ID), zap.Error(err))
		return interfaces.PixCharge{}, err
	}
	g.logger.Info("[payment][gateway] create pix success",
		zap.Any("provider_payment_id", resp.ID), zap.String("provider_status", resp.Status))

	return interfaces.PixCharge{Code: code, ProviderChargeID: fmt.Sprintf("%d", resp.ID)}, nil
}

// pixQRCode extracts point_of_interaction.transaction_data.qr_code.
func pixQRCode(resp any) (string, error) {
	b, err := json.Marshal(resp)
	if err != nil {
		return "", err
	}
	var parsed struct {
		PointOfInteraction struct {
			TransactionData struct {
				QRCode string `json:"qr_code"`
			} `json:"transaction_data"`
		} `json:"point_of_interaction"`
	}
	if err := json.Unmarshal(b, &parsed); err != nil {
		return "", err
	}
	if parsed.PointOfInteraction.TransactionData.QRCode == "" {
		return "", ErrMissingPixQRCode
	}
	return parsed.PointOfInteraction.TransactionData.QRCode, nil
}
