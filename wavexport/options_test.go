package wavexport

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestGatherOptions_Defaults verifies the documented defaults and last-writer-wins.
func TestGatherOptions_Defaults(t *testing.T) {
	o := gatherOptions()
	assert.Equal(t, DefaultSampleRate, o.sampleRate)
	assert.Equal(t, DefaultRepeat, o.repeat)

	o = gatherOptions(WithSampleRate(8000), nil, WithSampleRate(1000), WithRepeat(4))
	assert.Equal(t, 1000, o.sampleRate)
	assert.Equal(t, 4, o.repeat)
}
