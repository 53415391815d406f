package models

// Preset names a predefined combination of module shapes and colors.
type Preset string

const (
	PresetClassic Preset = "classic"
	PresetRounded Preset = "rounded"
	PresetDots    Preset = "dots"
	PresetBrand   Preset = "brand"
)

// Style is the presentation configuration of a rendered code. It is kept
// apart from the payload: changing the style never changes the encoded data.
type Style struct {
	// Preset is the last applied preset.
	Preset Preset `json:"preset" yaml:"preset"`
	// Size is the width and height of the rendered image in pixels.
	Size int `json:"size" yaml:"size"`
	// Margin is the quiet zone around the code in pixels.
	Margin int `json:"margin" yaml:"margin"`
	// ErrorCorrection is one of L, M, Q, H.
	ErrorCorrection string `json:"error_correction" yaml:"error_correction"`
	// Mode is the QR data mode, always "Byte" for text payloads.
	Mode string `json:"mode" yaml:"mode"`
	// Foreground is the module color in #rrggbb form.
	Foreground string `json:"foreground" yaml:"foreground"`
	// Background is the background color in #rrggbb form.
	Background string `json:"background" yaml:"background"`
	// Dots is the shape of data modules.
	Dots string `json:"dots" yaml:"dots"`
	// CornersSquare is the shape of the finder pattern frames.
	CornersSquare string `json:"corners_square" yaml:"corners_square"`
	// CornersDot is the shape of the finder pattern centers.
	CornersDot string `json:"corners_dot" yaml:"corners_dot"`
	// Logo is set only by the brand preset.
	Logo *Logo `json:"logo,omitempty" yaml:"logo,omitempty"`
}

// Logo describes an image placed in the middle of the code.
type Logo struct {
	// Image is a reference to the embedded image resource.
	Image string `json:"image" yaml:"image"`
	// HideBackgroundDots clears modules behind the image.
	HideBackgroundDots bool `json:"hide_background_dots" yaml:"hide_background_dots"`
	// ImageSize is the image size relative to the code (0..1).
	ImageSize float64 `json:"image_size" yaml:"image_size"`
	// Margin is the gap between the image and surrounding modules in pixels.
	Margin int `json:"margin" yaml:"margin"`
}
