package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslateKnownKey(t *testing.T) {
	assert.Equal(t, "Exterior Wash", T(English, KeyExteriorWash))
	assert.Equal(t, "غسيل خارجي", T(Arabic, KeyExteriorWash))
}

func TestTranslateFallsBackToEnglish(t *testing.T) {
	// Unknown language tag: English table wins over humanizing.
	assert.Equal(t, "Full Wash", T(Language("fr"), KeyFullWash))
}

func TestTranslateHumanizesUnknownKey(t *testing.T) {
	assert.Equal(t, "Some Missing Key", T(English, Key("some-missing-key")))
	assert.Equal(t, "Some Missing Key", T(Arabic, Key("some-missing-key")))
}

func TestHumanize(t *testing.T) {
	assert.Equal(t, "Wax Add On", Humanize(Key("wax-add-on")))
	assert.Equal(t, "Polish", Humanize(Key("polish")))
}

func TestSupported(t *testing.T) {
	assert.True(t, Supported(Arabic))
	assert.True(t, Supported(English))
	assert.False(t, Supported(Language("fr")))
}

func TestDetectLanguage(t *testing.T) {
	assert.Equal(t, English, DetectLanguage("en-US,en;q=0.9"))
	assert.Equal(t, Arabic, DetectLanguage("ar-SA,ar;q=0.8,en;q=0.5"))
	// Unknown tags fall through to the first supported one.
	assert.Equal(t, English, DetectLanguage("fr-FR,en;q=0.7"))
	// No header at all means the default.
	assert.Equal(t, Arabic, DetectLanguage(""))
	assert.Equal(t, Arabic, DetectLanguage("fr,de"))
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "أحمد", DisplayName(Arabic, "أحمد", "Ahmed"))
	assert.Equal(t, "Ahmed", DisplayName(English, "أحمد", "Ahmed"))
	// A missing side falls back to whichever name exists.
	assert.Equal(t, "Ahmed", DisplayName(Arabic, "", "Ahmed"))
	assert.Equal(t, "أحمد", DisplayName(English, "أحمد", ""))
}
