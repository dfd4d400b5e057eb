package core

import (
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/pkg/errors"
)

// jsSpace is the white space class of browser regexps (`\s` there), wider than RE2's ASCII `\s`:
// it includes vertical tab, NBSP and the other Unicode space separators.
const jsSpace = `\t\n\v\f\r\p{Zs}\x{FEFF}\x{2028}\x{2029}`

var (
	Validate   *validator.Validate
	Translator ut.Translator

	// custom validation tags & texts
	notBlankTag  = "notblank"
	notBlankText = "{0} cannot be blank"

	alphaSpaceTag   = "alphaspace"
	alphaSpaceText  = "{0} can only contain alphabets and spaces"
	alphaSpaceRegex = regexp.MustCompile(`^[A-Za-z` + jsSpace + `]+$`)

	wholeNumTag   = "wholenum"
	wholeNumText  = "{0} must be a valid positive integer"
	wholeNumRegex = regexp.MustCompile(`^\d+$`)

	mobileTag   = "mobile"
	mobileText  = "{0} must be exactly 10 digits"
	mobileRegex = regexp.MustCompile(`^\d{10}$`)

	portalEmailTag   = "portalemail"
	portalEmailText  = "{0} must be a valid email address"
	portalEmailRegex = regexp.MustCompile(`^[^@` + jsSpace + `]+@[^@` + jsSpace + `]+\.[^@` + jsSpace + `]{3,}$`)

	// DigitsRegex matches a (possibly empty) run of digits; what numeric inputs accept while typing.
	DigitsRegex = regexp.MustCompile(`^\d*$`)
)

// Instantiate the validator for use.
func init() {
	Validate = validator.New()

	// Register the english error messages for validation errors.
	_en := en.New()
	uni := ut.New(_en, _en)
	Translator, _ = uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(Validate, Translator)

	// Use JSON tag names for errors instead of Go struct names.
	Validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// register custom validators
	_ = Validate.RegisterValidation(notBlankTag, notBlankValidation)
	RegisterCustomTranslation(notBlankTag, notBlankText)

	_ = Validate.RegisterValidation(alphaSpaceTag, regexValidation(alphaSpaceRegex))
	RegisterCustomTranslation(alphaSpaceTag, alphaSpaceText)

	_ = Validate.RegisterValidation(wholeNumTag, wholeNumValidation)
	RegisterCustomTranslation(wholeNumTag, wholeNumText)

	_ = Validate.RegisterValidation(mobileTag, regexValidation(mobileRegex))
	RegisterCustomTranslation(mobileTag, mobileText)

	_ = Validate.RegisterValidation(portalEmailTag, regexValidation(portalEmailRegex))
	RegisterCustomTranslation(portalEmailTag, portalEmailText)
}

// RegisterCustomTranslation registers a custom translation for the specified validation tag.
func RegisterCustomTranslation(tag, text string, override ...bool) {
	var ovrd bool
	if len(override) > 0 {
		ovrd = override[0]
	}
	_ = Validate.RegisterTranslation(
		tag, Translator,
		func(t ut.Translator) error { return t.Add(tag, text, ovrd) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(tag, fe.Field())
			return s
		},
	)
}

// TranslateErrors turns validator.ValidationErrors into {field: message}.
// Any other non-nil error is returned as is.
func TranslateErrors(err error) (map[string]string, error) {
	fldErrs := make(map[string]string)
	if err == nil {
		return fldErrs, nil
	}
	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return nil, err
	}
	for _, vErr := range vErrs {
		fldErrs[vErr.Field()] = vErr.Translate(Translator)
	}
	return fldErrs, nil
}

// Custom Global Validators

// notBlankValidation fails on strings made of white space only.
func notBlankValidation(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	return strings.TrimFunc(fl.Field().String(), isJSSpace) != ""
}

func isJSSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

// wholeNumValidation only allows digits that fit in an int (>= 0).
func wholeNumValidation(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	s := fl.Field().String()
	if !wholeNumRegex.MatchString(s) {
		return false
	}
	n, err := strconv.Atoi(s)
	return err == nil && n >= 0
}

func regexValidation(rx *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		if fl.Field().Kind() != reflect.String {
			return false
		}
		return rx.MatchString(fl.Field().String())
	}
}
