package pixelcam

import (
	"fmt"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Settings is the on-disk description of a pixel camera setup.
//
//	window:
//	  title: My Game
//	  width: 1280
//	  height: 720
//	projection:
//	  desired_width: 256
//	  desired_height: 224
//	texture:
//	  enabled: false
//	sprite_limit:
//	  count: 32
type Settings struct {
	Window      RunConfig        `yaml:"window"`
	Projection  ProjectionConfig `yaml:"projection"`
	Texture     TextureSettings  `yaml:"texture"`
	SpriteLimit SpriteLimit      `yaml:"sprite_limit"`
}

// TextureSettings configures an optional TextureCamera.
type TextureSettings struct {
	Enabled    bool        `yaml:"enabled"`
	Width      uint32      `yaml:"width"`
	Height     uint32      `yaml:"height"`
	FixedAxis  Axis        `yaml:"fixed_axis"`
	ClearColor *[4]float64 `yaml:"clear_color"`
}

// DefaultSettings returns the settings used for keys missing from a file.
func DefaultSettings() Settings {
	return Settings{
		Window:      DefaultRunConfig(),
		Projection:  ProjectionFromResolution(DefaultWidth, DefaultHeight, false),
		Texture:     TextureSettings{Width: DefaultWidth, Height: DefaultHeight},
		SpriteLimit: SpriteLimit{},
	}
}

// ParseSettings decodes YAML settings on top of DefaultSettings and
// validates the result.
func ParseSettings(data []byte) (Settings, error) {
	s := DefaultSettings()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("pixelcam: parse settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// LoadSettings reads and parses a YAML settings file.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("pixelcam: load settings %s: %w", path, err)
	}
	s, err := ParseSettings(data)
	if err != nil {
		return Settings{}, fmt.Errorf("%w (%s)", err, path)
	}
	return s, nil
}

// Validate reports the first setting that cannot produce a working camera.
func (s Settings) Validate() error {
	p := s.Projection
	for _, v := range []struct {
		name  string
		value float64
	}{{"zoom", p.Zoom}, {"near", p.Near}, {"far", p.Far}} {
		if math.IsNaN(v.value) || math.IsInf(v.value, 0) {
			return fmt.Errorf("pixelcam: settings: %s must be finite, got %v", v.name, v.value)
		}
	}
	if !p.AutoFit() && !(p.Zoom > 0) {
		return fmt.Errorf("pixelcam: settings: zoom must be positive without a desired resolution, got %v", p.Zoom)
	}
	if p.Far < p.Near {
		return fmt.Errorf("pixelcam: settings: far (%v) is less than near (%v)", p.Far, p.Near)
	}
	if s.Texture.Enabled {
		t := s.Texture
		switch t.FixedAxis {
		case AxisHorizontal:
			if t.Width == 0 {
				return fmt.Errorf("pixelcam: settings: texture fixed to horizontal axis needs a width")
			}
		case AxisVertical:
			if t.Height == 0 {
				return fmt.Errorf("pixelcam: settings: texture fixed to vertical axis needs a height")
			}
		default:
			if t.Width == 0 || t.Height == 0 {
				return fmt.Errorf("pixelcam: settings: texture needs width and height, got %dx%d", t.Width, t.Height)
			}
		}
	}
	if s.Window.Width < 0 || s.Window.Height < 0 {
		return fmt.Errorf("pixelcam: settings: negative window size %dx%d", s.Window.Width, s.Window.Height)
	}
	return nil
}

// NewCamera builds a Camera from the settings. Texture setups get a zoom 1
// camera that works in canvas pixels.
func (s Settings) NewCamera() *Camera {
	if s.Texture.Enabled {
		cam := NewCamera(ProjectionFromZoom(1))
		cam.Mode = ModeTexture
		return cam
	}
	return NewCamera(s.Projection)
}

// NewTextureCamera builds the TextureCamera described by the settings, or
// returns nil when texture mode is disabled.
func (s Settings) NewTextureCamera() *TextureCamera {
	if !s.Texture.Enabled {
		return nil
	}
	bg := ColorWhite
	if c := s.Texture.ClearColor; c != nil {
		bg = Color{R: c[0], G: c[1], B: c[2], A: c[3]}
	}
	return NewTextureCamera(UVec2{s.Texture.Width, s.Texture.Height}, s.Texture.FixedAxis, bg)
}

// UnmarshalYAML accepts "none", "horizontal" or "vertical" (also "x"/"y").
func (a *Axis) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		*a = AxisNone
	case "horizontal", "x", "width":
		*a = AxisHorizontal
	case "vertical", "y", "height":
		*a = AxisVertical
	default:
		return fmt.Errorf("pixelcam: line %d: unknown axis %q", value.Line, name)
	}
	return nil
}

// MarshalYAML writes the axis by name.
func (a Axis) MarshalYAML() (any, error) {
	return a.String(), nil
}

func (a Axis) String() string {
	switch a {
	case AxisHorizontal:
		return "horizontal"
	case AxisVertical:
		return "vertical"
	default:
		return "none"
	}
}
