package main

import "github.com/pixelreel/pixelreel"

// preset resolves one of the three named encode presets to a concrete
// Settings + Mode pair. The --mode, --block-size, --threads and --fps
// flags on the encode command override individual fields of whichever
// preset (or the default) is selected first; --resolution applies only
// when no preset is selected.
type preset struct {
	mode     pixelreel.Mode
	settings pixelreel.Settings
}

var presets = map[string]preset{
	"max-efficiency": {
		mode:     pixelreel.Color,
		settings: pixelreel.Settings{Block: 1, Width: 256, Height: 144, FPS: 10, Workers: 8},
	},
	"optimal": {
		mode:     pixelreel.Binary,
		settings: pixelreel.Settings{Block: 2, Width: 1280, Height: 720, FPS: 10, Workers: 8},
	},
	"paranoid": {
		mode:     pixelreel.Binary,
		settings: pixelreel.Settings{Block: 4, Width: 1280, Height: 720, FPS: 10, Workers: 8},
	},
}

// resolutions maps the named resolution flag to (width, height). An
// unrecognized name falls back to 360p, matching the original tool's
// behavior.
var resolutions = map[string][2]int{
	"144p": {256, 144},
	"240p": {426, 240},
	"360p": {640, 360},
	"480p": {854, 480},
	"720p": {1280, 720},
}

func resolutionOrDefault(name string) (int, int) {
	if wh, ok := resolutions[name]; ok {
		return wh[0], wh[1]
	}
	return resolutions["360p"][0], resolutions["360p"][1]
}
