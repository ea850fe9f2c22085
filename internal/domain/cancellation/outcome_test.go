//go:build unit

package cancellation_test

import (
	"errors"
	"testing"

	"marketplace-api/internal/domain/cancellation"

	"github.com/stretchr/testify/assert"
)

func TestBatchOutcome(t *testing.T) {
	t.Run("empty batch did not succeed", func(t *testing.T) {
		assert.False(t, cancellation.BatchOutcome{}.AllSucceeded())
	})

	t.Run("all items succeeded", func(t *testing.T) {
		outcome := cancellation.BatchOutcome{Items: []cancellation.ItemResult{
			cancellation.Succeeded(cancellation.UnitReservation, 1),
			cancellation.Succeeded(cancellation.UnitPayment, 10),
		}}
		assert.True(t, outcome.AllSucceeded())
		assert.Empty(t, outcome.Failures())
		assert.Empty(t, outcome.FailureMessage())
	})

	t.Run("one failure breaks the batch", func(t *testing.T) {
		outcome := cancellation.BatchOutcome{Items: []cancellation.ItemResult{
			cancellation.Succeeded(cancellation.UnitReservation, 1),
			cancellation.Failed(cancellation.UnitReservation, 2, errors.New("réservation déjà annulée")),
		}}
		assert.False(t, outcome.AllSucceeded())
		assert.Len(t, outcome.Failures(), 1)
	})

	t.Run("failure messages are comma joined in order", func(t *testing.T) {
		outcome := cancellation.BatchOutcome{Items: []cancellation.ItemResult{
			cancellation.Failed(cancellation.UnitReservation, 1, errors.New("réservation déjà annulée")),
			cancellation.Succeeded(cancellation.UnitPayment, 10),
			cancellation.Failed(cancellation.UnitPayment, 11, errors.New("une demande d'annulation est déjà en cours")),
		}}
		assert.Equal(t,
			"réservation déjà annulée, une demande d'annulation est déjà en cours",
			outcome.FailureMessage())
	})

	t.Run("blank errors fall back to the generic message", func(t *testing.T) {
		assert.Equal(t, cancellation.GenericFailureMessage,
			cancellation.Failed(cancellation.UnitReservation, 1, nil).Message)
		assert.Equal(t, cancellation.GenericFailureMessage,
			cancellation.Failed(cancellation.UnitReservation, 1, errors.New("  ")).Message)
	})
}
