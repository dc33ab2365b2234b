// Package catalog is the static lookup table of crop and livestock kinds
// with their localized labels.
package catalog

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"agriai/entities"
)

//go:embed translation/*.toml
var translationFS embed.FS

// Option is one selectable enum value with its display label.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type Catalog struct {
	bundle      *i18n.Bundle
	defaultLang string
}

// New loads the embedded translations. defaultLang is tried after any
// languages passed to the lookup methods; English is the last resort.
func New(defaultLang string) (*Catalog, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	err := fs.WalkDir(translationFS, "translation", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		data, err := translationFS.ReadFile(path)
		if err != nil {
			return err
		}
		_, err = bundle.ParseMessageFileBytes(data, path)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("load translations: %w", err)
	}
	return &Catalog{bundle: bundle, defaultLang: defaultLang}, nil
}

// Label localizes a message id. A message missing in the requested languages
// is looked up in English, then fallback is returned.
func (c *Catalog) Label(id, fallback string, langs ...string) string {
	tags := append(append([]string(nil), langs...), c.defaultLang)
	if msg, ok := c.localize(id, tags...); ok {
		return msg
	}
	if msg, ok := c.localize(id, language.English.String()); ok {
		return msg
	}
	return fallback
}

func (c *Catalog) localize(id string, langs ...string) (string, bool) {
	msg, err := i18n.NewLocalizer(c.bundle, langs...).Localize(&i18n.LocalizeConfig{MessageID: id})
	if err != nil || msg == "" {
		return "", false
	}
	return msg, true
}

func (c *Catalog) CropLabel(t entities.CropType, langs ...string) string {
	return c.Label("crop_"+string(t), string(t), langs...)
}

func (c *Catalog) LivestockLabel(t entities.LivestockType, langs ...string) string {
	return c.Label("livestock_"+string(t), string(t), langs...)
}

func (c *Catalog) CropTypes(langs ...string) []Option {
	out := make([]Option, 0, len(entities.CropTypes))
	for _, t := range entities.CropTypes {
		out = append(out, Option{Value: string(t), Label: c.CropLabel(t, langs...)})
	}
	return out
}

func (c *Catalog) LivestockTypes(langs ...string) []Option {
	out := make([]Option, 0, len(entities.LivestockTypes))
	for _, t := range entities.LivestockTypes {
		out = append(out, Option{Value: string(t), Label: c.LivestockLabel(t, langs...)})
	}
	return out
}
