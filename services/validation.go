package services

import (
	"errors"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"naya-blog/models"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("post_category", func(fl validator.FieldLevel) bool {
		return models.Category(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("post_status", func(fl validator.FieldLevel) bool {
		return models.Status(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("twitter_card", func(fl validator.FieldLevel) bool {
		return models.TwitterCard(fl.Field().String()).Valid()
	})
	return v
}

// postRules is the validated view of a post right before derivation.
type postRules struct {
	Title       string `json:"title" validate:"required"`
	Excerpt     string `json:"excerpt" validate:"required"`
	Content     string `json:"content" validate:"required"`
	Author      string `json:"author" validate:"required"`
	Category    string `json:"category" validate:"required,post_category"`
	Status      string `json:"status" validate:"required,post_status"`
	ImageURL    string `json:"image_url" validate:"omitempty,max=2048"`
	TwitterCard string `json:"twitter_card" validate:"omitempty,twitter_card"`
}

// validatePost checks required fields and enum values. Blank strings count as missing.
func validatePost(p models.BlogPost) error {
	rules := postRules{
		Title:       strings.TrimSpace(p.Title),
		Excerpt:     strings.TrimSpace(p.Excerpt),
		Content:     strings.TrimSpace(p.Content),
		Author:      strings.TrimSpace(p.Author),
		Category:    string(p.Category),
		Status:      string(p.Status),
		ImageURL:    p.ImageURL,
		TwitterCard: string(p.TwitterCard),
	}
	err := validate.Struct(rules)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return validationError("%v", err)
	}

	var missing, invalid []string
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			missing = append(missing, fe.Field())
		} else {
			invalid = append(invalid, fe.Field())
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return validationError("Missing required fields: %s", strings.Join(missing, ", "))
	}
	return validationError("invalid value for %s", strings.Join(invalid, ", "))
}
