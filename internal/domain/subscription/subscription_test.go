package subscription

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	sub, err := New("  91255A540 ")
	require.NoError(t, err)

	assert.Equal(t, "91255A540", sub.PartNumber)
	assert.NotZero(t, sub.ID)
	assert.False(t, sub.AddedAt.IsZero())
	assert.Nil(t, sub.LastSyncedAt)
}

func TestNewEmpty(t *testing.T) {
	_, err := New("   ")
	assert.Error(t, err)
}

func TestRecordSync(t *testing.T) {
	sub, err := New("91255A540")
	require.NoError(t, err)

	at := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	sub.RecordSync("BHS-SS188-1/4x20-0.75-HEX", "Button Head Hex Drive Screw", at)

	assert.Equal(t, "BHS-SS188-1/4x20-0.75-HEX", sub.GeneratedName)
	assert.Equal(t, "Button Head Hex Drive Screw", sub.Description)
	require.NotNil(t, sub.LastSyncedAt)
	assert.Equal(t, at, *sub.LastSyncedAt)
}
