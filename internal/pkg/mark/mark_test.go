package mark

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMark(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "🚨", Alert.String())
	assert.Equal(t, " ✅", Recovered.WithSpace())
	assert.Equal(t, "", Mark("").WithSpace())
}
