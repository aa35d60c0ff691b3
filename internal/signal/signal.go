// Package signal maps connectivity-report bar levels to dBm ranges.
package signal

// The report form captures signal strength as 0..4 bars. Bars are
// spread linearly between -120 dBm and -50 dBm in five steps of 14;
// each bar displays the first 8 dBm of its band.
const (
	floorDbm  = -120
	stepDbm   = 14
	spreadDbm = 8
)

// DbmRange returns the dBm range displayed for a bar level. Levels
// outside 0..4 are clamped.
func DbmRange(level int) (min, max int) {
	if level < 0 {
		level = 0
	}
	if level > 4 {
		level = 4
	}
	min = floorDbm + level*stepDbm
	return min, min + spreadDbm
}
