package payment_test

import (
	"context"
	"testing"

	"travel-booking-webapp/config"
	"travel-booking-webapp/payment"

	"github.com/stretchr/testify/assert"
)

func TestMockProcessorDeterministicRefs(t *testing.T) {
	proc := payment.NewMockProcessor()
	ctx := context.Background()

	first, err := proc.Charge(ctx, payment.ChargeRequest{Amount: 5000, Currency: "inr"})
	assert.NoError(t, err)
	assert.Equal(t, "pay_mock_000001", first.ProviderRef)
	assert.Equal(t, "completed", first.Status)

	second, err := proc.Charge(ctx, payment.ChargeRequest{Amount: 8750, Currency: "inr"})
	assert.NoError(t, err)
	assert.Equal(t, "pay_mock_000002", second.ProviderRef)
}

func TestMockProcessorRejectsNonPositiveAmount(t *testing.T) {
	proc := payment.NewMockProcessor()

	_, err := proc.Charge(context.Background(), payment.ChargeRequest{Amount: 0})
	assert.Error(t, err)
}

func TestMockProcessorRefund(t *testing.T) {
	proc := payment.NewMockProcessor()

	assert.Error(t, proc.Refund(context.Background(), ""))
	assert.NoError(t, proc.Refund(context.Background(), "pay_mock_000001"))
}

func TestFromConfigSelectsMockOutsideProduction(t *testing.T) {
	cfg := &config.Config{App: config.AppConfig{Env: "development"}}

	proc := payment.FromConfig(cfg)
	_, ok := proc.(*payment.MockProcessor)
	assert.True(t, ok)
}
