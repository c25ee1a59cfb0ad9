package chat

import (
	"errors"
	"net/url"
	"reflect"
	"strings"

	"github.com/deepgram/quickchat/internal/config"
	"github.com/deepgram/quickchat/internal/services/chat/models"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/gorilla/schema"
	"github.com/rs/zerolog/log"
)

// Validator turns a raw form submission into a ValidationResult. Implementations are pure.
type Validator interface {
	Validate(form url.Values) models.ValidationResult
}

// NewValidator returns the validator selected by configuration
func NewValidator(kind string) Validator {
	if kind == config.ValidatorTrim {
		return TrimValidator{}
	}
	return NewSchemaValidator()
}

// TrimValidator trims the input and rejects it if nothing is left.
type TrimValidator struct{}

func (TrimValidator) Validate(form url.Values) models.ValidationResult {
	input := strings.TrimSpace(form.Get(models.InputField))
	if input == "" {
		errs := models.FieldErrors{}
		errs.Add(models.InputField, models.ErrChatEmpty)
		return models.Invalid(errs)
	}
	return models.Valid(input)
}

// SchemaValidator decodes the form into models.ChatRequest and checks its validate tags.
// The input is kept exactly as submitted.
type SchemaValidator struct {
	decoder  *schema.Decoder
	validate *validator.Validate
}

func NewSchemaValidator() *SchemaValidator {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)

	// use a single instance of Validate, it caches struct info
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.RegisterValidation("notblank", validators.NotBlank); err != nil {
		log.Fatal().Err(err).Msg("Failed to register notblank validation")
	}
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("schema"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &SchemaValidator{
		decoder:  decoder,
		validate: validate,
	}
}

func (v *SchemaValidator) Validate(form url.Values) models.ValidationResult {
	var req models.ChatRequest
	errs := models.FieldErrors{}

	if err := v.decoder.Decode(&req, firstValues(form)); err != nil {
		var multi schema.MultiError
		if errors.As(err, &multi) {
			for field := range multi {
				errs.Add(field, "Invalid value")
			}
		} else {
			errs.Add(models.InputField, "Invalid value")
		}
		return models.Invalid(errs)
	}

	if err := v.validate.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			errs.Add(models.InputField, err.Error())
			return models.Invalid(errs)
		}
		for _, fe := range fieldErrs {
			errs.Add(fe.Field(), messageFor(fe))
		}
		return models.Invalid(errs)
	}

	return models.Valid(req.Input)
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return models.ErrChatEmpty
	default:
		return "Invalid value"
	}
}

// firstValues keeps only the first value per key, matching url.Values.Get.
func firstValues(form url.Values) map[string][]string {
	out := make(map[string][]string, len(form))
	for key, values := range form {
		if len(values) > 0 {
			out[key] = values[:1]
		}
	}
	return out
}
