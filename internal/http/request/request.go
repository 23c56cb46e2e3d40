// Package request разбирает тела запросов в формате JSON и
// application/x-www-form-urlencoded.
package request

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"

	"github.com/ajg/form"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/exercise-tracker/internal/lib/validation"
)

// ErrBadBody возвращается, если тело запроса не удалось разобрать.
var ErrBadBody = errors.New("invalid request body")

// Value хранит поле тела запроса. В JSON принимает строку, число или
// логическое значение, число сохраняется в исходной записи. Объекты и
// массивы отклоняются.
type Value string

func (v *Value) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return nil
	}
	switch b[0] {
	case 'n':
		*v = ""
		return nil
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*v = Value(s)
		return nil
	case '{':
		return &json.UnmarshalTypeError{Value: "object", Type: reflect.TypeOf(*v)}
	case '[':
		return &json.UnmarshalTypeError{Value: "array", Type: reflect.TypeOf(*v)}
	}
	*v = Value(b)
	return nil
}

func (v Value) String() string {
	return string(v)
}

// Decode разбирает тело запроса в dst. Пустое тело и тело другого
// типа оставляют dst без изменений. Поле Value с объектом или массивом
// дает *models.ValidationError вместе с ErrBadBody.
func Decode(r *http.Request, dst any) error {
	var err error
	switch render.GetRequestContentType(r) {
	case render.ContentTypeJSON:
		err = render.DecodeJSON(r.Body, dst)
		if errors.Is(err, io.EOF) {
			err = nil
		}
	case render.ContentTypeForm:
		dec := form.NewDecoder(r.Body)
		dec.IgnoreUnknownKeys(true)
		err = dec.Decode(dst)
	}
	if err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" && typeErr.Type == reflect.TypeOf(Value("")) {
			err = validation.StringCastError(typeErr.Field, typeErr.Value)
		}
		return errors.Join(ErrBadBody, err)
	}
	return nil
}
