package payments

import (
	"context"
	"strings"
	"testing"

	"agencia_maker/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCRC16CCITT_KnownVector(t *testing.T) {
	// CRC-16/CCITT-FALSE check value.
	assert.Equal(t, uint16(0x29B1), crc16CCITT([]byte("123456789")))
}

func TestBuildBRCode(t *testing.T) {
	code := BuildBRCode(DefaultPixKey, DefaultMerchantName, DefaultMerchantCity, "job1", 51.75)

	assert.True(t, strings.HasPrefix(code, "000201"))
	assert.Contains(t, code, "0014br.gov.bcb.pix")
	assert.Contains(t, code, "0136"+DefaultPixKey)
	assert.Contains(t, code, "540551.75")
	assert.Contains(t, code, "5913AGENCIA MAKER")
	assert.Contains(t, code, "6009RIO VERDE")
	assert.Contains(t, code, "62080504job1")

	body, crc := code[:len(code)-4], code[len(code)-4:]
	assert.True(t, strings.HasSuffix(body, "6304"))
	assert.Len(t, crc, 4)
	assert.Equal(t, crc, strings.ToUpper(crc))
	// Recomputing over the payload must reproduce the trailing checksum.
	assert.Equal(t, code, BuildBRCode(DefaultPixKey, DefaultMerchantName, DefaultMerchantCity, "job1", 51.75))
}

func TestBRCodeGateway_CreatePixCharge(t *testing.T) {
	g := NewBRCodeGateway("")

	charge, err := g.CreatePixCharge(context.Background(), interfaces.PixChargeRequest{JobID: "job-1", Amount: 45})
	require.NoError(t, err)
	assert.Contains(t, charge.Code, "0504job1")
	assert.Equal(t, "brcode-job1", charge.ProviderChargeID)

	_, err = g.CreatePixCharge(context.Background(), interfaces.PixChargeRequest{JobID: "job-1", Amount: 0})
	assert.Error(t, err)

	long, err := g.CreatePixCharge(context.Background(), interfaces.PixChargeRequest{JobID: strings.Repeat("a", 40), Amount: 1})
	require.NoError(t, err)
	assert.Equal(t, "brcode-"+strings.Repeat("a", 25), long.ProviderChargeID)
}

func TestMercadoPagoGateway_MockMode(t *testing.T) {
	g, err := NewMercadoPagoGateway("", true, nil, zap.NewNop())
	require.NoError(t, err)

	charge, err := g.CreatePixCharge(context.Background(), interfaces.PixChargeRequest{JobID: "job-2", Amount: 120})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(charge.Code, "000201"))
}

func TestMercadoPagoGateway_MissingToken(t *testing.T) {
	_, err := NewMercadoPagoGateway("", false, nil, zap.NewNop())
	assert.ErrorIs(t, err, ErrMissingMercadoPagoAccessToken)

	var g *MercadoPagoGateway
	_, err = g.CreatePixCharge(context.Background(), interfaces.PixChargeRequest{Amount: 1})
	assert.ErrorIs(t, err, ErrMercadoPagoGatewayNotConfigured)
}

func TestPixQRCode(t *testing.T) {
	resp := map[string]any{
		"id": 1,
		"point_of_interaction": map[string]any{
			"transaction_data": map[string]any{"qr_code": "000201abc"},
		},
	}
	code, err := pixQRCode(resp)
	require.NoError(t, err)
	assert.Equal(t, "000201abc", code)

	_, err = pixQRCode(map[string]any{"id": 2})
	assert.ErrorIs(t, err, ErrMissingPixQRCode)
}
