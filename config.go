package circlebutton

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/tanema/gween/ease"
)

// ErrInvalidConfig is wrapped by every configuration validation error.
var ErrInvalidConfig = errors.New("invalid config")

// Defaults in density-independent (dp) and scale-independent (sp) units.
const (
	DefaultCollapseRadiusDP = 40
	DefaultExpandRadiusDP   = 120
	DefaultTextSizeSP       = 30
	DefaultDuration         = 200 * time.Millisecond
)

// Config holds the style parameters of a Button. Lengths are in pixels.
type Config struct {
	CollapseRadius float64
	ExpandRadius   float64
	Text           string
	TextSize       float64 // font size at full expansion
	TextColor      Color
	ButtonColor    Color
	Duration       time.Duration // both expand and collapse
	Padding        Insets
	CameraDistance float64
	Easing         ease.TweenFunc // nil means ease.InOutSine
}

// DefaultConfig returns the default style scaled to pixels. density converts
// dp to px and scaledDensity converts sp to px; values <= 0 mean 1.
func DefaultConfig(density, scaledDensity float64) Config {
	if density <= 0 {
		density = 1
	}
	if scaledDensity <= 0 {
		scaledDensity = density
	}
	return Config{
		CollapseRadius: DefaultCollapseRadiusDP * density,
		ExpandRadius:   DefaultExpandRadiusDP * density,
		TextSize:       DefaultTextSizeSP * scaledDensity,
		TextColor:      ColorGray,
		ButtonColor:    ColorRed,
		Duration:       DefaultDuration,
		CameraDistance: DefaultCameraDistance,
		Easing:         ease.InOutSine,
	}
}

// Validate reports the first configuration error, wrapping ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case !(c.CollapseRadius > 0):
		return fmt.Errorf("circlebutton: collapse radius %v must be positive: %w", c.CollapseRadius, ErrInvalidConfig)
	case !(c.ExpandRadius > 0):
		return fmt.Errorf("circlebutton: expand radius %v must be positive: %w", c.ExpandRadius, ErrInvalidConfig)
	case math.IsInf(c.CollapseRadius, 0) || math.IsInf(c.ExpandRadius, 0):
		return fmt.Errorf("circlebutton: radii %v, %v must be finite: %w", c.CollapseRadius, c.ExpandRadius, ErrInvalidConfig)
	case c.ExpandRadius < c.CollapseRadius:
		return fmt.Errorf("circlebutton: expand radius %v is smaller than collapse radius %v: %w",
			c.ExpandRadius, c.CollapseRadius, ErrInvalidConfig)
	case c.Duration <= 0:
		return fmt.Errorf("circlebutton: duration %v must be positive: %w", c.Duration, ErrInvalidConfig)
	case !(c.TextSize >= 0) || math.IsInf(c.TextSize, 1):
		return fmt.Errorf("circlebutton: text size %v must be finite and not negative: %w", c.TextSize, ErrInvalidConfig)
	case !(c.Padding.Left >= 0 && c.Padding.Top >= 0 && c.Padding.Right >= 0 && c.Padding.Bottom >= 0):
		return fmt.Errorf("circlebutton: padding %+v must not be negative: %w", c.Padding, ErrInvalidConfig)
	case !(c.CameraDistance > 0):
		return fmt.Errorf("circlebutton: camera distance %v must be positive: %w", c.CameraDistance, ErrInvalidConfig)
	}
	return nil
}

// configFile is the JSON form of Config. Absent fields keep their defaults.
// Lengths are dp, textSize is sp, colors are hex strings.
type configFile struct {
	CollapseRadius *float64 `json:"collapseRadius"`
	ExpandRadius   *float64 `json:"expandRadius"`
	Text           *string  `json:"text"`
	TextSize       *float64 `json:"textSize"`
	TextColor      *string  `json:"textColor"`
	ButtonColor    *string  `json:"buttonColor"`
	DurationMillis *int     `json:"durationMillis"`
	Padding        *struct {
		Left   float64 `json:"left"`
		Top    float64 `json:"top"`
		Right  float64 `json:"right"`
		Bottom float64 `json:"bottom"`
	} `json:"padding"`
	CameraDistance *float64 `json:"cameraDistance"`
	Easing         *string  `json:"easing"`
}

// LoadConfig parses a JSON config on top of DefaultConfig(density,
// scaledDensity) and validates the result.
func LoadConfig(data []byte, density, scaledDensity float64) (Config, error) {
	cfg := DefaultConfig(density, scaledDensity)
	if density <= 0 {
		density = 1
	}
	if scaledDensity <= 0 {
		scaledDensity = density
	}

	var f configFile
	if err := json.Unmarshal(data, &f); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if f.CollapseRadius != nil {
		cfg.CollapseRadius = *f.CollapseRadius * density
	}
	if f.ExpandRadius != nil {
		cfg.ExpandRadius = *f.ExpandRadius * density
	}
	if f.Text != nil {
		cfg.Text = *f.Text
	}
	if f.TextSize != nil {
		cfg.TextSize = *f.TextSize * scaledDensity
	}
	if f.TextColor != nil {
		c, err := ParseColor(*f.TextColor)
		if err != nil {
			return Config{}, fmt.Errorf("parse config: textColor: %w", err)
		}
		cfg.TextColor = c
	}
	if f.ButtonColor != nil {
		c, err := ParseColor(*f.ButtonColor)
		if err != nil {
			return Config{}, fmt.Errorf("parse config: buttonColor: %w", err)
		}
		cfg.ButtonColor = c
	}
	if f.DurationMillis != nil {
		cfg.Duration = time.Duration(*f.DurationMillis) * time.Millisecond
	}
	if p := f.Padding; p != nil {
		cfg.Padding = Insets{
			Left:   p.Left * density,
			Top:    p.Top * density,
			Right:  p.Right * density,
			Bottom: p.Bottom * density,
		}
	}
	if f.CameraDistance != nil {
		cfg.CameraDistance = *f.CameraDistance
	}
	if f.Easing != nil {
		fn, ok := EasingByName(*f.Easing)
		if !ok {
			return Config{}, fmt.Errorf("parse config: unknown easing %q", *f.Easing)
		}
		cfg.Easing = fn
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseColor parses "#rgb", "#rrggbb" or "#rrggbbaa".
func ParseColor(s string) (Color, error) {
	alpha := 1.0
	if len(s) == 9 && strings.HasPrefix(s, "#") {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
		}
		alpha = float64(a) / 255
		s = s[:7]
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return Color{R: c.R, G: c.G, B: c.B, A: alpha}, nil
}
