package masker

import (
	"reflect"
	"time"

	"go.uber.org/zap"
)

var durationType = reflect.TypeOf(time.Duration(0))

// LogConfigs логгирует структуры конфигурации, в том числе вложенные и встроенные.
// Поля с тегом masked:"true" выводятся замаскированными, пустые секреты помечаются как "<unset>".
func LogConfigs(logger *zap.Logger, configs ...interface{}) error {
	for _, config := range configs {
		v := reflect.ValueOf(config)
		if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
			return ErrConfigNotPointer
		}
		v = v.Elem()

		logger.Info("Config", zap.Any(v.Type().Name(), maskStructFields(v, v.Type())))
	}
	return nil
}

// maskStructFields собирает поля структуры в мапу
func maskStructFields(v reflect.Value, t reflect.Type) map[string]interface{} {
	result := make(map[string]interface{})
	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		fieldType := t.Field(i)
		if !fieldType.IsExported() {
			continue
		}
		masked := fieldType.Tag.Get("masked") == "true"

		switch {
		case field.Kind() == reflect.Struct:
			result[fieldType.Name] = maskStructFields(field, field.Type())

		case field.Type() == durationType:
			result[fieldType.Name] = time.Duration(field.Int()).String()

		case field.Kind() == reflect.String && masked:
			result[fieldType.Name] = maskSensitiveData(field.String())

		case field.Kind() == reflect.String:
			result[fieldType.Name] = field.String()

		// Секрет не строкового типа целиком скрывается
		case masked:
			result[fieldType.Name] = "****"

		default:
			result[fieldType.Name] = field.Interface()
		}
	}
	return result
}

// maskSensitiveData оставляет первый и последний символы.
// Строка из 2 символов и короче заменяется на "****".
func maskSensitiveData(data string) string {
	if data == "" {
		return "<unset>"
	}
	runes := []rune(data)
	if len(runes) <= 2 {
		return "****"
	}
	return string(runes[0]) + "****" + string(runes[len(runes)-1])
}
