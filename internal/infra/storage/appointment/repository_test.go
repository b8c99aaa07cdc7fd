package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// Фоновая задача должна завершать и подтвержденные, и начатые
// бронирования с прошедшей датой окончания
func TestCompleteFinishedQuery(t *testing.T) {
	query, args, err := completeFinishedQuery()

	require.NoError(t, err)
	assert.Contains(t, query, "UPDATE appointments")
	assert.Contains(t, query, "status IN")
	assert.Contains(t, query, "end_at <= NOW()")
	assert.ElementsMatch(t, []interface{}{
		domain.StatusCompleted,
		domain.StatusConfirmed,
		domain.StatusInProgress,
	}, args)
}
