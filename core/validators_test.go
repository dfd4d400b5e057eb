package core

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomValidators(t *testing.T) {
	tests := []struct {
		tag   string
		value string
		valid bool
	}{
		{"notblank", "x", true},
		{"notblank", "  x ", true},
		{"notblank", "", false},
		{"notblank", " \t\n", false},
		{"notblank", "\u00a0\ufeff", false},

		{"alphaspace", "Data Structures", true},
		{"alphaspace", "Jane\tDoe", true},
		{"alphaspace", "", false},
		{"alphaspace", "Data Structures 2", false},
		{"alphaspace", "O'Neil", false},
		{"alphaspace", "Data\u00a0Structures", true},
		{"alphaspace", "Data\u2003Structures", true},
		{"alphaspace", "Data\vStructures", true},
		{"alphaspace", "Data\u200bStructures", false},

		{"wholenum", "0", true},
		{"wholenum", "042", true},
		{"wholenum", "", false},
		{"wholenum", "-1", false},
		{"wholenum", "1.5", false},
		{"wholenum", " 1", false},
		{"wholenum", "99999999999999999999999", false},

		{"mobile", "9876543210", true},
		{"mobile", "987654321", false},
		{"mobile", "98765432100", false},
		{"mobile", "98765-4321", false},

		{"portalemail", "jane@college.edu", true},
		{"portalemail", "jane.doe@mail.college.org", true},
		{"portalemail", "jane@college.in", false},
		{"portalemail", "jane@college", false},
		{"portalemail", "jane doe@college.edu", false},
		{"portalemail", "@college.edu", false},
		{"portalemail", "jane\u00a0doe@college.edu", false},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprintf("%s/%q", tc.tag, tc.value), func(t *testing.T) {
			err := Validate.Var(tc.value, tc.tag)
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestTranslateErrors(t *testing.T) {
	type form struct {
		Name   string `json:"name" validate:"notblank"`
		Mobile string `json:"mobile_no" validate:"mobile"`
		Hidden string `json:"-"`
	}

	t.Run("nil", func(t *testing.T) {
		errs, err := TranslateErrors(nil)
		require.NoError(t, err)
		assert.Empty(t, errs)
	})

	t.Run("validation errors use json names", func(t *testing.T) {
		errs, err := TranslateErrors(Validate.Struct(form{Name: " ", Mobile: "123"}))
		require.NoError(t, err)
		assert.Equal(t, map[string]string{
			"name":      "name cannot be blank",
			"mobile_no": "mobile_no must be exactly 10 digits",
		}, errs)
	})

	t.Run("wrapped validation errors", func(t *testing.T) {
		errs, err := TranslateErrors(errors.Wrap(Validate.Struct(form{Mobile: "1234567890"}), "validating"))
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"name": "name cannot be blank"}, errs)
	})

	t.Run("other errors are returned", func(t *testing.T) {
		boom := errors.New("boom")
		errs, err := TranslateErrors(boom)
		assert.Nil(t, errs)
		assert.Equal(t, boom, err)
	})
}

func TestRegisterCustomTranslation(t *testing.T) {
	RegisterCustomTranslation("mobile", "{0} needs 10 digits", true)
	defer RegisterCustomTranslation(mobileTag, mobileText, true)

	errs, err := TranslateErrors(Validate.Var("1", "mobile"))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"": " needs 10 digits"}, errs)
}

func TestDigitsRegex(t *testing.T) {
	for _, s := range []string{"", "0", "15", "0015"} {
		assert.True(t, DigitsRegex.MatchString(s), s)
	}
	for _, s := range []string{"15a", "-1", " 1", "1.0", "١٢"} {
		assert.False(t, DigitsRegex.MatchString(s), s)
	}
}
