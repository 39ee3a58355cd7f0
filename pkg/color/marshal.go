package color

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// rawColor is the wire shape shared by the JSON and YAML codecs. The
// alpha field is a pointer so the RGB form omits it and the RGBA form
// keeps it even at zero.
type rawColor struct {
	R uint8  `json:"r" yaml:"r"`
	G uint8  `json:"g" yaml:"g"`
	B uint8  `json:"b" yaml:"b"`
	A *uint8 `json:"a,omitempty" yaml:"a,omitempty"`
}

func (c Color) raw() rawColor {
	raw := rawColor{R: c.r, G: c.g, B: c.b}
	if c.form == formRGBA {
		a := c.a
		raw.A = &a
	}
	return raw
}

func (c *Color) setRaw(raw rawColor) {
	if raw.A != nil {
		*c = FromRGBA(raw.R, raw.G, raw.B, *raw.A)
		return
	}
	*c = FromRGB(raw.R, raw.G, raw.B)
}

// MarshalJSON encodes the active form as a flat record: the RGB form as
// {"r":..,"g":..,"b":..}, the RGBA form with an extra "a" key.
func (c Color) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.raw())
}

// UnmarshalJSON restores the form the record was encoded from.
func (c *Color) UnmarshalJSON(data []byte) error {
	var raw rawColor
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	c.setRaw(raw)
	return nil
}

// MarshalYAML encodes the same record shape as MarshalJSON.
func (c Color) MarshalYAML() (any, error) {
	return c.raw(), nil
}

// UnmarshalYAML restores the form the record was encoded from.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var raw rawColor
	if err := value.Decode(&raw); err != nil {
		return err
	}
	c.setRaw(raw)
	return nil
}
