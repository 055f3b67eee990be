package validator

import (
	"database/sql/driver"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/bytedance/sonic"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/guregu/null/v6"

	"github.com/beanbocchi/ossclient/internal/model"
)

var (
	once     sync.Once
	validate *CustomValidator
)

type CustomValidator struct {
	uni       *ut.UniversalTranslator
	validator *validator.Validate
}

func New() (*CustomValidator, error) {
	en := en.New()
	uni := ut.New(en, en)
	validate := validator.New(
		validator.WithRequiredStructEnabled(),
	)

	// Report fields by the key users write in config files and query strings.
	validate.RegisterTagNameFunc(fieldName)

	trans, _ := uni.GetTranslator("en")
	if err := entranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, fmt.Errorf("failed to register translations: %w", err)
	}

	validate.RegisterCustomTypeFunc(
		ParseNullable,
		null.Bool{},
		null.Int32{},
		null.Int64{},
		null.String{},
		null.Time{},
	)

	return &CustomValidator{
		uni:       uni,
		validator: validate,
	}, nil
}

func (cv *CustomValidator) Validate(i interface{}) error {
	err := cv.validator.Struct(i)
	if valErr, ok := err.(validator.ValidationErrors); ok {
		trans, _ := cv.uni.GetTranslator("en")
		text, err := sonic.Marshal(valErr.Translate(trans))
		if err != nil {
			return valErr
		}

		return model.ErrValidation.Fmt(string(text))
	}

	return err
}

func fieldName(fld reflect.StructField) string {
	for _, tag := range []string{"mapstructure", "query", "json"} {
		name, _, _ := strings.Cut(fld.Tag.Get(tag), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}

type Nullable interface {
	driver.Valuer
}

// Workaround for omitnil not working with "untyped nil"
// https://github.com/go-playground/validator/issues/1209#issuecomment-1892359649
var nilValue *struct{}

// ParseNullable implements validator.CustomTypeFunc
func ParseNullable(field reflect.Value) interface{} {
	if nullValue, ok := field.Interface().(Nullable); ok {
		if val, err := nullValue.Value(); err == nil {
			if val == nil {
				return nilValue
			}
			return val
		}
	}

	return nil
}

// Validate validates i with the shared validator instance.
func Validate(i any) error {
	once.Do(func() {
		var err error
		validate, err = New()
		if err != nil {
			panic(fmt.Sprintf("failed to create validator: %v", err))
		}
	})
	return validate.Validate(i)
}
