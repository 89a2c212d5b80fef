package entities

import (
	"math"
	"testing"
	"time"
)

func TestServiceFeeFor(t *testing.T) {
	cases := []struct {
		name  string
		price float64
		rate  float64
		want  float64
	}{
		{name: "default rate", price: 45, rate: DefaultServiceFeeRate, want: 6.75},
		{name: "rounds to cents", price: 10.01, rate: DefaultServiceFeeRate, want: 1.5},
		{name: "zero price", price: 0, rate: DefaultServiceFeeRate, want: 0},
		{name: "rate capped at price", price: 10, rate: 2, want: 10},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ServiceFeeFor(tc.price, tc.rate)
			if math.Abs(got-tc.want) > 0.001 {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
			if got > tc.price {
				t.Fatalf("fee %v exceeds price %v", got, tc.price)
			}
		})
	}
}

func TestPrintJob_MakerEarnings(t *testing.T) {
	j := PrintJob{Price: 120, ServiceFee: 18}
	if j.MakerEarnings() != 102 {
		t.Fatalf("expected 102, got %v", j.MakerEarnings())
	}
	if j.IsPaid() {
		t.Fatalf("zero-value job must not be paid")
	}
}

func TestUser_Roles(t *testing.T) {
	u := User{Roles: []UserRole{UserRoleMaker, UserRoleProjetista}}
	if u.PrimaryRole() != UserRoleMaker {
		t.Fatalf("unexpected primary role %q", u.PrimaryRole())
	}
	if !u.HasRole(UserRoleProjetista) || u.HasRole(UserRoleScanner) {
		t.Fatalf("unexpected role membership")
	}
	if !u.IsProvider() {
		t.Fatalf("maker must be a provider")
	}

	client := User{Roles: []UserRole{UserRoleCliente}}
	if client.IsProvider() {
		t.Fatalf("client must not be a provider")
	}
	if (User{}).PrimaryRole() != UserRoleCliente {
		t.Fatalf("user without roles defaults to client")
	}

	if r, ok := ParseUserRole(" scanner 3d "); !ok || r != UserRoleScanner {
		t.Fatalf("expected scanner role, got %q %v", r, ok)
	}
	if _, ok := ParseUserRole("astronauta"); ok {
		t.Fatalf("unexpected role parsed")
	}
}

func TestConversation_Participants(t *testing.T) {
	c := Conversation{ID: "c", ParticipantIDs: [2]string{"a", "b"}}
	if !c.Includes("a") || c.Includes("z") {
		t.Fatalf("unexpected membership")
	}
	if c.OtherParticipant("a") != "b" || c.OtherParticipant("b") != "a" || c.OtherParticipant("z") != "" {
		t.Fatalf("unexpected other participant")
	}
	if !c.SamePair("b", "a") || c.SamePair("a", "z") {
		t.Fatalf("unexpected pair match")
	}
	if _, ok := c.LastMessage(); ok {
		t.Fatalf("expected no last message")
	}
	c.Messages = append(c.Messages, ChatMessage{ID: "m1"}, ChatMessage{ID: "m2"})
	if m, ok := c.LastMessage(); !ok || m.ID != "m2" {
		t.Fatalf("unexpected last message %+v", m)
	}
}

func TestPaymentSession_Transitions(t *testing.T) {
	now := time.Now().UTC()
	s := PaymentSession{ID: "s", Step: PaymentStepBreakdown}

	if s.Confirm(now) {
		t.Fatalf("breakdown must not jump to success")
	}
	if !s.AttachCharge("code", "", now) || s.Step != PaymentStepPix || s.PixCode != "code" {
		t.Fatalf("expected pix step, got %+v", s)
	}
	if s.AttachCharge("other", "", now) {
		t.Fatalf("charge must be generated once")
	}
	if !s.Confirm(now) || s.Step != PaymentStepSuccess || s.CompletedAt == nil {
		t.Fatalf("expected success step, got %+v", s)
	}
	if s.Confirm(now) || s.AttachCharge("x", "", now) {
		t.Fatalf("success is terminal")
	}
}

func TestNewPaymentBreakdown(t *testing.T) {
	b := NewPaymentBreakdown(PrintJob{Price: 45, ServiceFee: 6.75}, DefaultServiceFeeRate)
	if b.Total != 45 || b.ServiceFee != 6.75 || b.MakerValue != 38.25 {
		t.Fatalf("unexpected breakdown %+v", b)
	}

	derived := NewPaymentBreakdown(PrintJob{Price: 100}, DefaultServiceFeeRate)
	if derived.ServiceFee != 15 || derived.MakerValue != 85 {
		t.Fatalf("unexpected derived breakdown %+v", derived)
	}
}

func TestParseModelSource(t *testing.T) {
	if s, ok := ParseModelSource("Printables"); !ok || s != ModelSourcePrintables {
		t.Fatalf("expected Printables")
	}
	if _, ok := ParseModelSource("printables"); ok {
		t.Fatalf("sources are case-sensitive")
	}
}
