package payments

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"agencia_maker/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const (
	DefaultPixKey       = "123e4567-e89b-12d3-a456-426614174000"
	DefaultMerchantName = "AGENCIA MAKER"
	DefaultMerchantCity = "RIO VERDE"

	pixGUI = "br.gov.bcb.pix"
)

var nonAlnum = regexp.MustCompile(`[^A-Za-z0-9]`)

// BRCodeGateway builds static-key PIX "copia e cola" payloads locally,
// following the EMV merchant-presented QR layout used by the Brazilian
// Central Bank. No charge is registered anywhere.
type BRCodeGateway struct {
	pixKey       string
	merchantName string
	merchantCity string
}

var _ interfaces.IPixChargeGateway = (*BRCodeGateway)(nil)

func NewBRCodeGateway(pixKey string) *BRCodeGateway {
	if pixKey == "" {
		pixKey = DefaultPixKey
	}
	return &BRCodeGateway{pixKey: pixKey, merchantName: DefaultMerchantName, merchantCity: DefaultMerchantCity}
}

func (g *BRCodeGateway) CreatePixCharge(ctx context.Context, req interfaces.PixChargeRequest) (interfaces.PixCharge, error) {
	if err := ctx.Err(); err != nil {
		return interfaces.PixCharge{}, err
	}
	if req.Amount <= 0 {
		return interfaces.PixCharge{}, fmt.Errorf("invalid pix amount %.2f", req.Amount)
	}

	txid := nonAlnum.ReplaceAllString(req.JobID, "")
	if txid == "" {
		txid = strings.ReplaceAll(uuid.NewString(), "-", "")
	}
	if len(txid) > 25 {
		txid = txid[:25]
	}

	code := BuildBRCode(g.pixKey, g.merchantName, g.merchantCity, txid, req.Amount)
	return interfaces.PixCharge{Code: code, ProviderChargeID: "brcode-" + txid}, nil
}

// BuildBRCode assembles the payload and appends its CRC16 checksum.
func BuildBRCode(pixKey, merchantName, merchantCity, txid string, amount float64) string {
	merchantAccount := emv("00", pixGUI) + emv("01", pixKey)

	var b strings.Builder
	b.WriteString(emv("00", "01"))
	b.WriteString(emv("26", merchantAccount))
	b.WriteString(emv("52", "0000"))
	b.WriteString(emv("53", "986"))
	b.WriteString(emv("54", strconv.FormatFloat(amount, 'f', 2, 64)))
	b.WriteString(emv("58", "BR"))
	b.WriteString(emv("59", truncate(merchantName, 25)))
	b.WriteString(emv("60", truncate(merchantCity, 15)))
	b.WriteString(emv("62", emv("05", txid)))
	b.WriteString("6304")

	payload := b.String()
	return payload + fmt.Sprintf("%04X", crc16CCITT([]byte(payload)))
}

func emv(id, value string) string {
	return fmt.Sprintf("%s%02d%s", id, len(value), value)
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// crc16CCITT is CRC-16/CCITT-FALSE (poly 0x1021, init 0xFFFF).
func crc16CCITT(data []byte) uint16 {
	crc := uint16(0xFFFF)
	for _, c := range data {
		crc ^= uint16(c) << 8
		for i := 0; i < 8; i++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}
