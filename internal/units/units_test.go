package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlowConversions(t *testing.T) {
	assert.InDelta(t, 625.41, GpmFromM3s(0.0394571), 0.01)
	assert.InDelta(t, 0.0394571, M3sFromGpm(GpmFromM3s(0.0394571)), 1e-12)
	assert.InDelta(t, 9.864, LpsFromGpm(156.35), 0.001)
	assert.InDelta(t, 35.51, M3hrFromGpm(156.35), 0.01)
}

func TestHeadConversions(t *testing.T) {
	assert.InDelta(t, 10.504, HeadMFromKPa(103), 0.001)
	assert.InDelta(t, 60.74, FtFromM(18.5148), 0.01)
	assert.InDelta(t, 18.5148, MFromFt(FtFromM(18.5148)), 1e-12)
}

func TestArea(t *testing.T) {
	assert.InDelta(t, 49.42, AcresFromM2(200000), 0.01)
}
