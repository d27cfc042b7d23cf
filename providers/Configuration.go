package providers

import (
	"encoding/json"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"github.com/redexp/pedigree/i18n"
	"github.com/redexp/pedigree/narrative"
	. "github.com/redexp/pedigree/types"
	"gopkg.in/yaml.v3"
)

func ConfigurationChange(ctx *Ctx, config *ClientConfiguration) (err error) {
	if config.Locale != "" {
		err = i18n.SetLocale(config.Locale)
	}

	if err == nil && config.ShowFootnotes != nil {
		root.UpdateLock.Lock()
		controller.ToggleFootnotes(*config.ShowFootnotes)
		root.UpdateLock.Unlock()
	}

	trackContext(ctx)

	return
}

type ClientConfiguration struct {
	Locale        string `json:"locale" mapstructure:"locale"`
	ShowFootnotes *bool  `json:"show_footnotes" mapstructure:"show_footnotes"`
}

func GetClientConfiguration(src any) (res ClientConfiguration, err error) {
	err = mapstructure.Decode(src, &res)

	return
}

type ConfigurationHandlers struct {
	Change ConfigChangeFunc
}

func NewConfigurationHandlers() *ConfigurationHandlers {
	return &ConfigurationHandlers{
		Change: ConfigurationChange,
	}
}

func (req *ConfigurationHandlers) Handle(ctx *Ctx) (res any, validMethod bool, validParams bool, err error) {
	switch ctx.Method {
	case ConfigChangeMethod:
		validMethod = true

		var params ClientConfiguration
		if err = json.Unmarshal(ctx.Params, &params); err == nil {
			validParams = true
			err = req.Change(ctx, &params)
		}
	}

	return
}

const ConfigChangeMethod = "config/change"

type ConfigChangeFunc func(*Ctx, *ClientConfiguration) error

// Settings come from the optional --config file.
type Settings struct {
	Locale        string           `mapstructure:"locale" validate:"omitempty,oneof=en ar uk"`
	Width         int              `mapstructure:"width" validate:"gte=100,lte=8000"`
	Height        int              `mapstructure:"height" validate:"gte=100,lte=8000"`
	ShowFootnotes bool             `mapstructure:"showFootnotes"`
	APIKeyEnv     string           `mapstructure:"apiKeyEnv" validate:"required"`
	Narrative     narrative.Config `mapstructure:"narrative"`
}

func DefaultSettings() Settings {
	return Settings{
		Locale:        "en",
		Width:         650,
		Height:        650,
		ShowFootnotes: true,
		APIKeyEnv:     "OPENAI_API_KEY",
		Narrative:     narrative.DefaultConfig(),
	}
}

var settingsValidate = validator.New()

// LoadSettings reads a yaml file over the defaults. Empty path gives the defaults.
func LoadSettings(path string) (s Settings, err error) {
	s = DefaultSettings()

	if path != "" {
		var data []byte

		data, err = os.ReadFile(path)

		if err != nil {
			return
		}

		err = DecodeSettings(data, &s)

		if err != nil {
			return
		}
	}

	if s.Narrative.APIKey == "" {
		s.Narrative.APIKey = os.Getenv(s.APIKeyEnv)
	}

	err = settingsValidate.Struct(s)

	return
}

func DecodeSettings(data []byte, s *Settings) error {
	src := make(map[string]any)

	err := yaml.Unmarshal(data, &src)

	if err != nil {
		return err
	}

	return mapstructure.WeakDecode(src, s)
}
