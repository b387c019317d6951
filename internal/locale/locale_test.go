package locale

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"max.ks1230/fx-converter/internal/clients/frankfurter"
	"max.ks1230/fx-converter/internal/model/converter"
)

func Test_For_ShouldFallBackToEnglish(t *testing.T) {
	assert.Equal(t, English, For("de").Name())
	assert.Equal(t, Russian, For("ru_RU").Name())
	assert.Equal(t, Russian, For(" RU ").Name())
}

func Test_EveryKeyIsTranslated(t *testing.T) {
	for k := range catalogs[English] {
		assert.NotEmpty(t, catalogs[Russian][k], "key %d", k)
	}
}

func Test_Error_ShouldMapValidationToPrompt(t *testing.T) {
	_, err := converter.ParseAmount("0")
	assert.Equal(t, "Введите сумму больше 0", For(Russian).Error(err))
	assert.Equal(t, "Enter an amount greater than 0", For(English).Error(err))
}

func Test_Error_ShouldMapBadStatus(t *testing.T) {
	err := errors.Wrap(&frankfurter.NetworkError{Op: "latest", Status: 500}, "fetch currencies")
	assert.Equal(t, "Ошибка: Сетевой ответ был неудовлетворительным", For(Russian).Error(err))
}

func Test_Error_ShouldShowOtherErrorsVerbatim(t *testing.T) {
	err := errors.Wrap(errors.New("dial tcp: timeout"), "fetch conversion")
	assert.Equal(t, "Error: dial tcp: timeout", For(English).Error(err))
	assert.Empty(t, For(English).Error(nil))
}
