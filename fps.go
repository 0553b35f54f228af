package curtain

import "fmt"

// fpsInterval is how often, in seconds, the frame-rate readout refreshes.
const fpsInterval = 0.5

// fpsMeter throttles the frame-rate readout so it stays legible.
type fpsMeter struct {
	elapsed float64
	text    string
}

// update accumulates dt and resamples fps and tps once per fpsInterval. The
// first call always samples.
func (m *fpsMeter) update(dt, fps, tps float64) {
	m.elapsed += dt
	if m.text != "" && m.elapsed < fpsInterval {
		return
	}
	m.elapsed = 0
	m.text = fmt.Sprintf("FPS: %.1f\nTPS: %.1f", fps, tps)
}
