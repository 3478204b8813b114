package typecast_test

import (
	"testing"

	"github.com/VladPetriv/viber_bot/pkg/typecast"
	"github.com/stretchr/testify/assert"
)

func TestPointers(t *testing.T) {
	t.Parallel()

	assert.True(t, typecast.FromPtr(typecast.ToPtr(true)))
	assert.Equal(t, "hook", typecast.FromPtr(typecast.ToPtr("hook")))
	assert.False(t, typecast.FromPtr[bool](nil))
}
