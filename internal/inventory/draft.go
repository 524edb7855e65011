package inventory

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Draft is the caller-supplied input for a new product, before the store has
// assigned an ID.
type Draft struct {
	Name     string  `validate:"required"`
	Price    float64 `validate:"gte=0"`
	Quantity int64
}

// NewDraft builds a Draft with a normalized name.
func NewDraft(name string, price float64, quantity int64) Draft {
	return Draft{
		Name:     NormalizeName(name),
		Price:    price,
		Quantity: quantity,
	}
}

// Validate checks the draft's field constraints.
// An empty name is reported as ErrEmptyName so callers can match on it.
func (d Draft) Validate() error {
	err := validate.Struct(d)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate draft: %w", err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Field() == "Name" && fe.Tag() == "required" {
			return ErrEmptyName
		}
		msgs = append(msgs, fmt.Sprintf("%s failed %s=%s", strings.ToLower(fe.Field()), fe.Tag(), fe.Param()))
	}
	return fmt.Errorf("invalid product: %s", strings.Join(msgs, ", "))
}
