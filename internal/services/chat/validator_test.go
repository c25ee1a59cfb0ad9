package chat

import (
	"net/url"
	"strings"
	"testing"

	"github.com/deepgram/quickchat/internal/config"
	"github.com/deepgram/quickchat/internal/services/chat/models"
	"github.com/stretchr/testify/assert"
)

func allValidators() map[string]Validator {
	return map[string]Validator{
		"trim":   TrimValidator{},
		"schema": NewSchemaValidator(),
	}
}

func TestValidatorsReject(t *testing.T) {
	tests := []struct {
		name string
		form url.Values
	}{
		{"missing field", url.Values{}},
		{"only other fields", url.Values{"message": {"hello"}}},
		{"empty string", url.Values{"input": {""}}},
		{"spaces", url.Values{"input": {"   "}}},
		{"mixed whitespace", url.Values{"input": {"\t\n \r"}}},
		{"no values", url.Values{"input": {}}},
	}

	for kind, v := range allValidators() {
		for _, tt := range tests {
			t.Run(kind+"/"+tt.name, func(t *testing.T) {
				result := v.Validate(tt.form)

				assert.False(t, result.Valid())
				assert.Equal(t, []string{models.ErrChatEmpty}, result.FieldErrors[models.InputField])
				assert.Equal(t, models.ErrChatEmpty, result.FirstError())
			})
		}
	}
}

func TestValidatorsAccept(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		trimmed   string
		extraKeys url.Values
	}{
		{name: "plain", input: "What is 2+2?", trimmed: "What is 2+2?"},
		{name: "surrounding whitespace", input: "  hi  ", trimmed: "hi"},
		{name: "unicode", input: "こんにちは 👋", trimmed: "こんにちは 👋"},
		{name: "single char", input: "x", trimmed: "x"},
		{name: "long", input: strings.Repeat("a", 10000), trimmed: strings.Repeat("a", 10000)},
		{name: "unknown keys ignored", input: "hello", trimmed: "hello", extraKeys: url.Values{"csrf": {"abc"}}},
	}

	for _, tt := range tests {
		form := url.Values{"input": {tt.input}}
		for k, v := range tt.extraKeys {
			form[k] = v
		}

		t.Run("trim/"+tt.name, func(t *testing.T) {
			result := TrimValidator{}.Validate(form)
			assert.True(t, result.Valid())
			assert.Equal(t, tt.trimmed, result.Input)
		})

		t.Run("schema/"+tt.name, func(t *testing.T) {
			result := NewSchemaValidator().Validate(form)
			assert.True(t, result.Valid())
			assert.Equal(t, tt.input, result.Input)
		})
	}
}

func TestValidatorsUseFirstValue(t *testing.T) {
	form := url.Values{"input": {"first", ""}}

	for kind, v := range allValidators() {
		t.Run(kind, func(t *testing.T) {
			result := v.Validate(form)
			assert.True(t, result.Valid())
			assert.Equal(t, "first", result.Input)
		})
	}
}

func TestValidatorIsIdempotent(t *testing.T) {
	forms := []url.Values{
		{"input": {"hello"}},
		{"input": {" "}},
		{},
	}

	for kind, v := range allValidators() {
		for _, form := range forms {
			t.Run(kind, func(t *testing.T) {
				assert.Equal(t, v.Validate(form), v.Validate(form))
			})
		}
	}
}

func TestNewValidator(t *testing.T) {
	assert.IsType(t, TrimValidator{}, NewValidator(config.ValidatorTrim))
	assert.IsType(t, &SchemaValidator{}, NewValidator(config.ValidatorSchema))
	assert.IsType(t, &SchemaValidator{}, NewValidator(""))
}
