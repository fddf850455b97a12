package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/lakshyaag/restaurant-recommender-mvp/internal/config"
	"github.com/lakshyaag/restaurant-recommender-mvp/internal/dto"
)

const missingLocationMessage = "Either 'location' or both 'latitude' and 'longitude' must be provided"

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateSearchParams checks that a location signal is present and every field is within range.
func ValidateSearchParams(params dto.SearchParams) error {
	if !params.HasLocation() {
		return ValidationError{Message: missingLocationMessage}
	}
	if err := validate.Struct(params); err != nil {
		return ValidationError{Message: describe(err)}
	}
	return nil
}

// ValidateClientProfile checks the required profile fields.
func ValidateClientProfile(profile dto.ClientProfile) error {
	if err := validate.Struct(profile); err != nil {
		return ValidationError{Message: describe(err)}
	}
	return nil
}

// ApplyDefaults fills unset search fields from the configured defaults.
func ApplyDefaults(params dto.SearchParams, defaults config.SearchDefaults) dto.SearchParams {
	if params.Term == nil && defaults.Term != "" {
		term := defaults.Term
		params.Term = &term
	}
	if params.Limit == nil {
		limit := defaults.Limit
		if limit <= 0 {
			limit = 20
		}
		params.Limit = &limit
	}
	if params.Offset == nil {
		offset := 0
		params.Offset = &offset
	}
	if params.SortBy == nil {
		sortBy := dto.SortBy(defaults.SortBy)
		if sortBy == "" {
			sortBy = dto.SortBestMatch
		}
		params.SortBy = &sortBy
	}
	if params.ViewType == "" {
		params.ViewType = dto.ViewList
	}
	return params
}

func describe(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		name := toSnake(fe.Field())
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", name))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of: %s", name, fe.Param()))
		case "gte", "min":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s", name, fe.Param()))
		case "lte", "max":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %s", name, fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", name))
		}
	}
	return strings.Join(msgs, "; ")
}

func toSnake(field string) string {
	var b strings.Builder
	for i, r := range field {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
